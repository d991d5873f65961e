package tagsoup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vcrobe/lisplet/sexpr"
	"github.com/vcrobe/lisplet/tags"
)

// Render serializes a form forest back to markup text. String children
// render as character data, nil children are skipped and the %text,
// %comment and %doctype pseudo-tags reconstitute their markup node
// kinds.
func Render(forest []sexpr.Node) (string, error) {
	var b strings.Builder
	for _, form := range forest {
		n, err := renderNode(form)
		if err != nil {
			return "", err
		}
		if n == nil {
			continue
		}

		if err := html.Render(&b, n); err != nil {
			return "", fmt.Errorf("failed to render markup: %w", err)
		}
	}

	return b.String(), nil
}

func renderNode(form sexpr.Node) (*html.Node, error) {
	switch v := form.(type) {
	case sexpr.Nil:
		return nil, nil
	case sexpr.String:
		return &html.Node{Type: html.TextNode, Data: string(v)}, nil
	case sexpr.List:
		return renderList(v)
	default:
		return &html.Node{Type: html.TextNode, Data: sexpr.Text(form)}, nil
	}
}

func renderList(form sexpr.List) (*html.Node, error) {
	head, ok := form.Head()
	if !ok {
		// A headless list has no markup meaning; keep its text around.
		return &html.Node{Type: html.TextNode, Data: sexpr.Write(form)}, nil
	}

	attrs, children := splitElement(form)

	switch string(head) {
	case tags.TextTag:
		return &html.Node{Type: html.TextNode, Data: childText(children)}, nil
	case tags.CommentTag:
		return &html.Node{Type: html.CommentNode, Data: childText(children)}, nil
	case doctypeTag:
		name := childText(children)
		if name == "" {
			name = "html"
		}
		return &html.Node{Type: html.DoctypeNode, Data: name}, nil
	}

	n := &html.Node{
		Type:     html.ElementNode,
		Data:     string(head),
		DataAtom: atom.Lookup([]byte(head)),
	}

	for _, e := range attrs.Entries {
		n.Attr = append(n.Attr, html.Attribute{Key: sexpr.Text(e.Key), Val: sexpr.Text(e.Value)})
	}

	for _, child := range children {
		c, err := renderNode(child)
		if err != nil {
			return nil, err
		}
		if c == nil {
			continue
		}

		n.AppendChild(c)
	}

	return n, nil
}

// splitElement separates an element form into its attribute map and
// children. A form without an attribute map yields an empty one.
func splitElement(form sexpr.List) (sexpr.Map, []sexpr.Node) {
	rest := form.Items[1:]
	if len(rest) > 0 {
		if m, ok := rest[0].(sexpr.Map); ok {
			return m, rest[1:]
		}
	}

	return sexpr.Map{}, rest
}

func childText(children []sexpr.Node) string {
	var b strings.Builder
	for _, child := range children {
		b.WriteString(sexpr.Text(child))
	}

	return b.String()
}
