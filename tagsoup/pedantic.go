package tagsoup

import "github.com/vcrobe/lisplet/sexpr"

// Pedanticize canonicalizes an element form so the attribute map is
// always present: a symbol-headed list whose second item is not a map
// gains an empty one, and its children are canonicalized the same way.
// Anything that is not a symbol-headed list comes back unchanged.
func Pedanticize(form sexpr.Node) sexpr.Node {
	list, ok := form.(sexpr.List)
	if !ok {
		return form
	}

	head, ok := list.Head()
	if !ok {
		return form
	}

	attrs, rest := splitElement(list)

	items := make([]sexpr.Node, 0, len(rest)+2)
	items = append(items, head, attrs)
	for _, child := range rest {
		items = append(items, Pedanticize(child))
	}

	return sexpr.List{Items: items}
}
