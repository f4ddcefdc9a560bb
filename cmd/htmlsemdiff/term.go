package main

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/dannyswat/htmlsemdiff"
	"github.com/fatih/color"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var spaceRE = regexp.MustCompile(`\s+`)

var blockAtoms = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Dd: true, atom.Div: true, atom.Dl: true, atom.Dt: true, atom.Figcaption: true,
	atom.Figure: true, atom.Footer: true, atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true, atom.Header: true, atom.Hr: true,
	atom.Li: true, atom.Main: true, atom.Nav: true, atom.Ol: true, atom.P: true,
	atom.Pre: true, atom.Section: true, atom.Table: true, atom.Tr: true, atom.Ul: true,
}

// Elements whose content is raw text rather than document text.
var hiddenAtoms = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Noscript: true, atom.Iframe: true,
	atom.Noembed: true, atom.Noframes: true, atom.Xmp: true, atom.Plaintext: true,
}

// writeTerm writes the text of a diff result, one block element per line,
// with deletions in red and insertions in green.
func writeTerm(w io.Writer, result string, colored bool) error {
	doc, err := htmlsemdiff.ParseHTML(result)
	if err != nil {
		return err
	}

	del := color.New(color.FgRed, color.CrossedOut)
	ins := color.New(color.FgGreen, color.Underline)
	for _, c := range []*color.Color{del, ins} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var b strings.Builder
	var walk func(n *html.Node, style *color.Color)
	walk = func(n *html.Node, style *color.Color) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				text := spaceRE.ReplaceAllString(c.Data, " ")
				if style != nil && strings.TrimSpace(text) != "" {
					text = style.Sprint(text)
				}
				b.WriteString(text)
			case html.ElementNode:
				switch {
				case hiddenAtoms[c.DataAtom]:
					continue
				case c.DataAtom == atom.Br:
					b.WriteString("\n")
					continue
				}
				s := style
				switch {
				case c.DataAtom == atom.Del && hasClass(c, htmlsemdiff.DelClass):
					s = del
				case c.DataAtom == atom.Ins && hasClass(c, htmlsemdiff.InsClass):
					s = ins
				}
				block := blockAtoms[c.DataAtom]
				if block {
					b.WriteString("\n")
				}
				walk(c, s)
				if block {
					b.WriteString("\n")
				}
			}
		}
	}
	walk(doc.Root, nil)

	for _, line := range strings.Split(b.String(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}
