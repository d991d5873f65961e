package compiler

import (
	"github.com/vcrobe/lisplet/sexpr"
	"github.com/vcrobe/lisplet/tags"
)

// normalizeTags rewrites a canonicalized form so every element head is a
// legal tag, substituting the generic div container for anything else.
// Only symbol-headed lists carrying an attribute map count as elements;
// other forms pass through untouched, as do attribute maps themselves.
func normalizeTags(form sexpr.Node) sexpr.Node {
	list, ok := form.(sexpr.List)
	if !ok || len(list.Items) < 2 {
		return form
	}

	head, ok := list.Head()
	if !ok {
		return form
	}

	attrs, ok := list.Items[1].(sexpr.Map)
	if !ok {
		return form
	}

	if !tags.IsLegal(string(head)) {
		head = "div"
	}

	items := make([]sexpr.Node, 0, len(list.Items))
	items = append(items, head, attrs)
	for _, child := range list.Items[2:] {
		items = append(items, normalizeTags(child))
	}

	return sexpr.List{Items: items}
}
