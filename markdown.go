package htmlsemdiff

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// DiffMarkdown renders two Markdown revisions to HTML and diffs the result.
func DiffMarkdown(oldMarkdown, newMarkdown string, opts ...Option) (string, error) {
	res, err := CompareMarkdown(oldMarkdown, newMarkdown, opts...)
	if err != nil {
		return "", err
	}
	return res.HTML, nil
}

// CompareMarkdown is DiffMarkdown returning a Result.
func CompareMarkdown(oldMarkdown, newMarkdown string, opts ...Option) (*Result, error) {
	oldHTML, err := renderMarkdown(oldMarkdown)
	if err != nil {
		return nil, fmt.Errorf("failed to render old Markdown: %w", err)
	}
	newHTML, err := renderMarkdown(newMarkdown)
	if err != nil {
		return nil, fmt.Errorf("failed to render new Markdown: %w", err)
	}
	return Compare(oldHTML, newHTML, opts...)
}

// renderMarkdown keeps empty input empty.
func renderMarkdown(src string) (string, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
