package htmlsemdiff

import (
	"fmt"
	"sync"

	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
)

var (
	minifier     *minify.M
	minifierOnce sync.Once
)

// getMinifier returns the shared HTML minifier. End and document tags are
// kept so the minified input parses into the same tree shape.
func getMinifier() *minify.M {
	minifierOnce.Do(func() {
		minifier = minify.New()
		minifier.Add("text/html", &minhtml.Minifier{
			KeepDocumentTags: true,
			KeepEndTags:      true,
			KeepQuotes:       true,
		})
	})
	return minifier
}

func minifyHTML(content string) (string, error) {
	out, err := getMinifier().String("text/html", content)
	if err != nil {
		return "", fmt.Errorf("failed to minify HTML: %w", err)
	}
	return out, nil
}
