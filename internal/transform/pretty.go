package transform

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const prettyIndent = "  "

// blockElements start on their own line when pretty-printed.
var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Body: true, atom.Dd: true, atom.Details: true, atom.Dialog: true,
	atom.Div: true, atom.Dl: true, atom.Dt: true, atom.Fieldset: true,
	atom.Figcaption: true, atom.Figure: true, atom.Footer: true, atom.Form: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Head: true, atom.Header: true, atom.Hr: true, atom.Html: true,
	atom.Li: true, atom.Link: true, atom.Main: true, atom.Meta: true,
	atom.Nav: true, atom.Ol: true, atom.P: true, atom.Pre: true,
	atom.Script: true, atom.Section: true, atom.Style: true, atom.Table: true,
	atom.Tbody: true, atom.Td: true, atom.Tfoot: true, atom.Th: true,
	atom.Thead: true, atom.Title: true, atom.Tr: true, atom.Ul: true,
}

// verbatimElements keep their content exactly as parsed.
var verbatimElements = map[atom.Atom]bool{
	atom.Pre: true, atom.Textarea: true, atom.Script: true, atom.Style: true,
}

// PrettyHTML serializes n as HTML, placing block-level children on their own
// indented lines. The result always ends with a newline.
func PrettyHTML(n *html.Node) string {
	var b strings.Builder
	writePretty(&b, n, 0)
	return b.String()
}

func writePretty(b *strings.Builder, n *html.Node, depth int) {
	indent := strings.Repeat(prettyIndent, depth)

	switch n.Type {
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writePretty(b, c, depth)
		}
		return

	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return
		}
		b.WriteString(indent)
		b.WriteString(html.EscapeString(text))
		b.WriteByte('\n')
		return

	case html.ElementNode:
		if hasBlockChild(n) && !verbatimElements[n.DataAtom] {
			b.WriteString(indent)
			writeStartTag(b, n)
			b.WriteByte('\n')
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				writePretty(b, c, depth+1)
			}
			b.WriteString(indent)
			b.WriteString("</" + n.Data + ">\n")
			return
		}
	}

	var inline strings.Builder
	if err := html.Render(&inline, n); err != nil {
		return
	}
	b.WriteString(indent)
	b.WriteString(inline.String())
	b.WriteByte('\n')
}

func hasBlockChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && blockElements[c.DataAtom] {
			return true
		}
	}
	return false
}

func writeStartTag(b *strings.Builder, n *html.Node) {
	b.WriteByte('<')
	b.WriteString(n.Data)
	for _, attr := range n.Attr {
		b.WriteByte(' ')
		if attr.Namespace != "" {
			b.WriteString(attr.Namespace)
			b.WriteByte(':')
		}
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attr.Val))
		b.WriteByte('"')
	}
	b.WriteByte('>')
}
