package htmlsemdiff

import (
	"fmt"

	"golang.org/x/net/html"
)

// Diff compares the text of oldHTML and newHTML word by word and returns
// newHTML with removed text wrapped in <del class='diff-del'> and added text
// wrapped in <ins class='diff-ins'>. Elements and attributes of newHTML are
// kept as they are; only text is diffed.
func Diff(oldHTML, newHTML string, opts ...Option) (string, error) {
	res, err := Compare(oldHTML, newHTML, opts...)
	if err != nil {
		return "", err
	}
	return res.HTML, nil
}

// Compare is Diff returning token counts along with the annotated HTML.
func Compare(oldHTML, newHTML string, opts ...Option) (*Result, error) {
	o := newOptions(opts)

	switch {
	case oldHTML == "" && newHTML == "":
		return &Result{}, nil
	case newHTML == "":
		text := html.UnescapeString(oldHTML)
		return &Result{HTML: markupDeleted(text), Deleted: countMeaningful(text)}, nil
	case oldHTML == "":
		text := html.UnescapeString(newHTML)
		return &Result{HTML: markupInserted(text), Inserted: countMeaningful(text)}, nil
	}

	if o.minify {
		var err error
		if oldHTML, err = minifyHTML(oldHTML); err != nil {
			return nil, err
		}
		if newHTML, err = minifyHTML(newHTML); err != nil {
			return nil, err
		}
	}

	oldDoc, err := ParseHTML(oldHTML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse old HTML: %w", err)
	}
	newDoc, err := ParseHTML(newHTML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse new HTML: %w", err)
	}

	oldTokens := meaningful(Tokenize(oldDoc))
	newTokens := Tokenize(newDoc)
	newMeaningful := meaningful(newTokens)

	cells := tableCells(len(oldTokens), len(newMeaningful))
	if o.maxCells > 0 && cells > o.maxCells {
		return nil, fmt.Errorf("%w: %d x %d tokens exceeds %d cells", ErrTooLarge, len(oldTokens), len(newMeaningful), o.maxCells)
	}
	o.logger.Debug("tokenized",
		"old_leaves", len(oldDoc.Leaves), "old_tokens", len(oldTokens),
		"new_leaves", len(newDoc.Leaves), "new_tokens", len(newMeaningful),
		"cells", cells)

	ops := Align(o.keys(oldTokens), o.keys(newMeaningful))
	res := &Result{}
	for _, op := range ops {
		switch op {
		case OpEqual:
			res.Equal++
		case OpInsert:
			res.Inserted++
		case OpDelete:
			res.Deleted++
		}
	}
	o.logger.Debug("aligned", "equal", res.Equal, "inserted", res.Inserted, "deleted", res.Deleted)

	buffers := mergeDiff(ops, newTokens, oldTokens, len(newDoc.Leaves))
	rewritten := applyBuffers(newDoc, buffers, o.logger)
	o.logger.Debug("merged", "leaves_rewritten", rewritten)

	res.HTML, err = newDoc.Render()
	if err != nil {
		return nil, fmt.Errorf("failed to render diff: %w", err)
	}
	return res, nil
}

func countMeaningful(text string) int {
	count := 0
	for _, part := range SplitText(text) {
		if !isBlank(part) {
			count++
		}
	}
	return count
}
