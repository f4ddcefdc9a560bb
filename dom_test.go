package htmlsemdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestPathing(t *testing.T) {
	htmlStr := `<html><head></head><body><div><p>Hello</p></div></body></html>`
	doc, err := ParseHTML(htmlStr)
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}
	if doc.Fragment {
		t.Fatalf("Expected a full document")
	}

	// root -> html (0) -> body (1) -> div (0) -> p (0) -> text "Hello" (0)
	targetPath := NodePath{0, 1, 0, 0, 0}

	require.Len(t, doc.Leaves, 1)
	node := doc.Leaves[0].Node

	if node.Type != html.TextNode {
		t.Errorf("Expected TextNode, got %d", node.Type)
	}
	if node.Data != "Hello" {
		t.Errorf("Expected node data 'Hello', got '%s'", node.Data)
	}

	path, err := GetPath(doc.Root, node)
	if err != nil {
		t.Fatalf("GetPath failed: %v", err)
	}
	assert.Equal(t, targetPath, path)
	assert.Equal(t, targetPath, doc.Leaves[0].Path)
	assert.Same(t, node, nodeAt(doc.Root, targetPath))
}

// nodeAt follows path from root, returning nil when a step is out of range.
func nodeAt(root *html.Node, path NodePath) *html.Node {
	n := root
	for _, idx := range path {
		c := n.FirstChild
		for i := 0; i < idx && c != nil; i++ {
			c = c.NextSibling
		}
		if c == nil {
			return nil
		}
		n = c
	}
	return n
}

func TestParseFragment(t *testing.T) {
	doc, err := ParseHTML(`<p>One <b>two</b></p><script>var x = 1;</script><style>p {}</style>three`)
	require.NoError(t, err)
	require.True(t, doc.Fragment)

	var texts []string
	for _, leaf := range doc.Leaves {
		texts = append(texts, leaf.Node.Data)
		assert.Same(t, leaf.Node, nodeAt(doc.Root, leaf.Path))
	}
	assert.Equal(t, []string{"One ", "two", "three"}, texts)

	out, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t, `<p>One <b>two</b></p><script>var x = 1;</script><style>p {}</style>three`, out)
}

func TestIsFullDocument(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"<!DOCTYPE html><p>x</p>", true},
		{"  \n<html><body></body></html>", true},
		{"<HTML>", true},
		{"<p>x</p>", false},
		{"text <html>", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isFullDocument(tt.in), tt.in)
	}
}

func TestGetPathNotUnderRoot(t *testing.T) {
	doc, err := ParseHTML(`<p>x</p>`)
	require.NoError(t, err)

	orphan := &html.Node{Type: html.TextNode, Data: "x"}
	_, err = GetPath(doc.Root, orphan)
	assert.Error(t, err)
}

func TestRawTextExcluded(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"script", `<script>a < b</script>`},
		{"style", `<style>p { }</style>`},
		{"noscript", `<noscript><p>hi</p></noscript>`},
		{"iframe", `<iframe>x <b>y</b></iframe>`},
		{"noembed", `<noembed><b>x</b></noembed>`},
		{"noframes", `<noframes><b>x</b></noframes>`},
		{"xmp", `<xmp><b>x</b></xmp>`},
		{"plaintext", `<plaintext><b>x</b>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseHTML(`<p>kept</p>` + tt.in)
			require.NoError(t, err)
			require.Len(t, doc.Leaves, 1)
			assert.Equal(t, "kept", doc.Leaves[0].Node.Data)
		})
	}
}
