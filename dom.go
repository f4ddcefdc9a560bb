package htmlsemdiff

import (
	"bytes"
	"errors"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed input together with its text leaves in document order.
type Document struct {
	// Root is the document node for full documents. For fragments it is a
	// detached <body> element holding the fragment's top-level nodes.
	Root     *html.Node
	Fragment bool
	Leaves   []Leaf
}

// Leaf is a text node that takes part in the diff.
type Leaf struct {
	Node *html.Node
	Path NodePath // Path from Document.Root.
}

// ParseHTML parses a string into a Document. Input starting with a doctype or
// an <html> tag is parsed as a whole document; anything else is treated as
// a fragment of <body> content, so no html/head/body wrappers are added.
func ParseHTML(content string) (*Document, error) {
	if isFullDocument(content) {
		root, err := html.Parse(strings.NewReader(content))
		if err != nil {
			return nil, err
		}
		return newDocument(root, false)
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return newDocument(body, true)
}

func isFullDocument(content string) bool {
	s := strings.ToLower(strings.TrimLeft(content, " \t\r\n\f"))
	return strings.HasPrefix(s, "<!doctype") || strings.HasPrefix(s, "<html")
}

func newDocument(root *html.Node, fragment bool) (*Document, error) {
	doc := &Document{Root: root, Fragment: fragment}
	for _, n := range textLeaves(root) {
		path, err := GetPath(root, n)
		if err != nil {
			return nil, err
		}
		doc.Leaves = append(doc.Leaves, Leaf{Node: n, Path: path})
	}
	return doc, nil
}

// textLeaves returns the text nodes under root in document order, skipping
// the contents of raw text elements.
func textLeaves(root *html.Node) []*html.Node {
	var leaves []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				if !isNonRendering(n) {
					leaves = append(leaves, c)
				}
			case html.ElementNode:
				walk(c)
			}
		}
	}
	walk(root)
	return leaves
}

// isNonRendering reports whether the parser keeps the content of n as raw
// text. That text is markup source, not document text.
func isNonRendering(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Noscript, atom.Iframe, atom.Noembed, atom.Noframes, atom.Xmp, atom.Plaintext:
		return true
	}
	return false
}

// Render converts the document back to a string. Fragments render their
// top-level nodes only.
func (d *Document) Render() (string, error) {
	if !d.Fragment {
		return RenderNode(d.Root)
	}
	var buf bytes.Buffer
	for c := d.Root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// RenderNode converts a node tree back to a string.
func RenderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// GetPath returns the child indexes leading from root down to target.
func GetPath(root, target *html.Node) (NodePath, error) {
	var path NodePath
	for n := target; n != root; n = n.Parent {
		if n.Parent == nil {
			return nil, errors.New("node is not under root")
		}
		path = append(path, getChildIndex(n.Parent, n))
	}
	slices.Reverse(path)
	return path, nil
}

func getChildIndex(parent, child *html.Node) int {
	i := 0
	for c := parent.FirstChild; c != child; c = c.NextSibling {
		i++
	}
	return i
}
