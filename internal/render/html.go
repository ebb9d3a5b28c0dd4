package render

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes a standalone HTML page. Each comparison becomes a two-column
// table with the headings in the table head.
type HTML struct{}

func (HTML) Extension() string { return ".html" }

func (HTML) Render(w io.Writer, doc Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	title := doc.Title()
	if title == "" {
		title = "Sermon notes"
	}
	head := element(atom.Head,
		element(atom.Meta, attr("charset", "utf-8")),
		element(atom.Title, text(title)),
	)
	body := element(atom.Body)
	if doc.Header != nil {
		body.AppendChild(element(atom.H1, text(doc.Header.Title)))
		if s := speakerLine(doc.Header); s != "" {
			body.AppendChild(element(atom.P, attr("class", "speaker"), text(s)))
		}
	}
	for _, c := range doc.Comparisons {
		thead := element(atom.Thead, element(atom.Tr,
			element(atom.Th, text(c.LeftHeading)),
			element(atom.Th, text(c.RightHeading)),
		))
		tbody := element(atom.Tbody)
		for i, left := range c.LeftContent {
			tbody.AppendChild(element(atom.Tr,
				element(atom.Td, text(left)),
				element(atom.Td, text(c.RightContent[i])),
			))
		}
		body.AppendChild(element(atom.Table, attr("class", "comparison"), thead, tbody))
	}
	root.AppendChild(element(atom.Html, attr("lang", "en"), head, body))

	return html.Render(w, root)
}

// element builds an element node. Arguments may be child nodes or attributes.
func element(a atom.Atom, parts ...any) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, p := range parts {
		switch v := p.(type) {
		case *html.Node:
			n.AppendChild(v)
		case html.Attribute:
			n.Attr = append(n.Attr, v)
		}
	}
	return n
}

func attr(key, val string) html.Attribute { return html.Attribute{Key: key, Val: val} }

func text(s string) *html.Node { return &html.Node{Type: html.TextNode, Data: s} }
