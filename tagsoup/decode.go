// Package tagsoup bridges markup text and symbolic-expression forests.
// Parsing and serialization are delegated to golang.org/x/net/html; this
// package only translates between its node tree and sexpr forms.
package tagsoup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/vcrobe/lisplet/sexpr"
	"github.com/vcrobe/lisplet/tags"
)

// doctypeTag carries the document type declaration through the form
// pipeline. It never appears below the top level of a forest.
const doctypeTag = "%doctype"

// Decode parses markup text into a symbolic-expression forest. Elements
// become symbol-headed lists with an attribute map, character data
// becomes %text forms and comments become %comment forms. Text directly
// inside the body whose content starts with an opening parenthesis is
// read as embedded forms instead.
func Decode(markup string) ([]sexpr.Node, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}

	return DecodeDocument(doc)
}

// DecodeDocument converts an already-parsed markup tree into a forest.
func DecodeDocument(doc *html.Node) ([]sexpr.Node, error) {
	return decodeChildren(doc, false)
}

func decodeChildren(n *html.Node, inBody bool) ([]sexpr.Node, error) {
	var forms []sexpr.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		decoded, err := decodeNode(c, inBody)
		if err != nil {
			return nil, err
		}

		forms = append(forms, decoded...)
	}

	return forms, nil
}

func decodeNode(n *html.Node, inBody bool) ([]sexpr.Node, error) {
	switch n.Type {
	case html.ElementNode:
		children, err := decodeChildren(n, n.Data == "body")
		if err != nil {
			return nil, err
		}

		items := make([]sexpr.Node, 0, len(children)+2)
		items = append(items, sexpr.Symbol(n.Data), decodeAttrs(n.Attr))
		items = append(items, children...)

		return []sexpr.Node{sexpr.List{Items: items}}, nil
	case html.TextNode:
		return decodeText(n.Data, inBody)
	case html.CommentNode:
		return []sexpr.Node{sexpr.NewList(sexpr.Symbol(tags.CommentTag), sexpr.Map{}, sexpr.String(n.Data))}, nil
	case html.DoctypeNode:
		return []sexpr.Node{sexpr.NewList(sexpr.Symbol(doctypeTag), sexpr.Map{}, sexpr.String(n.Data))}, nil
	case html.DocumentNode:
		return decodeChildren(n, inBody)
	default:
		// Error nodes carry nothing worth keeping.
		return nil, nil
	}
}

// decodeText turns one character-data run into forms. At body level,
// runs opening with a parenthesis are read as embedded forms and
// whitespace-only runs are dropped, so indentation between forms never
// becomes content. Anywhere deeper, whitespace is inline spacing and
// stays a %text form.
func decodeText(text string, inBody bool) ([]sexpr.Node, error) {
	trimmed := strings.TrimSpace(text)

	if inBody {
		if strings.HasPrefix(trimmed, "(") {
			forms, err := sexpr.Read(text)
			if err != nil {
				return nil, fmt.Errorf("failed to read embedded forms: %w", err)
			}

			return forms, nil
		}

		if trimmed == "" {
			return nil, nil
		}
	}

	return []sexpr.Node{sexpr.NewList(sexpr.Symbol(tags.TextTag), sexpr.Map{}, sexpr.String(text))}, nil
}

func decodeAttrs(attrs []html.Attribute) sexpr.Map {
	entries := make([]sexpr.Entry, 0, len(attrs))
	for _, a := range attrs {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}

		entries = append(entries, sexpr.Entry{Key: sexpr.Keyword(key), Value: sexpr.String(a.Val)})
	}

	return sexpr.Map{Entries: entries}
}
