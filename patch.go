package htmlsemdiff

import (
	"log/slog"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var textEncoder = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// encodeText escapes the characters that would otherwise be read as markup.
// Quotes are left alone.
func encodeText(s string) string {
	return textEncoder.Replace(s)
}

func markupDeleted(text string) string {
	return "<del class='" + DelClass + "'>" + encodeText(text) + "</del>"
}

func markupInserted(text string) string {
	return "<ins class='" + InsClass + "'>" + encodeText(text) + "</ins>"
}

// applyBuffers replaces the content of every leaf that has a buffer. The
// buffer already holds encoded text and change markup, so the node becomes a
// raw node and is written out unescaped by the renderer. Leaves without a
// buffer keep their text.
//
// The parser drops a newline directly after <pre>, <listing> and <textarea>,
// and the renderer puts one back for text nodes only, so raw nodes there get
// it from us.
func applyBuffers(doc *Document, buffers []*strings.Builder, logger *slog.Logger) int {
	rewritten := 0
	for i, buf := range buffers {
		if buf == nil {
			continue
		}
		leaf := doc.Leaves[i]
		data := buf.String()
		if strings.HasPrefix(data, "\n") && leadsNewlineElement(leaf.Node) {
			data = "\n" + data
		}
		leaf.Node.Type = html.RawNode
		leaf.Node.Data = data
		rewritten++
		logger.Debug("leaf rewritten", "path", leaf.Path, "bytes", buf.Len())
	}
	return rewritten
}

func leadsNewlineElement(n *html.Node) bool {
	p := n.Parent
	if p == nil || p.Type != html.ElementNode || p.FirstChild != n {
		return false
	}
	switch p.DataAtom {
	case atom.Pre, atom.Listing, atom.Textarea:
		return true
	}
	return false
}
