package compiler

import (
	"strings"

	"github.com/samber/lo"

	"github.com/vcrobe/lisplet/sexpr"
)

// isStyle reports whether the form is a style block.
func isStyle(n sexpr.Node) bool {
	return sexpr.HeadIs(n, "style")
}

// compileStyle turns a style block's rule literals into a CSS payload:
// (style [[:div :p] {:color "red"}]) becomes (style {:type "text/css"}
// "div p {...}"). Vectors in the block's body are selector groups, maps
// are property sets and the two are paired positionally. A block with
// no rule literals is an opaque stylesheet the author wrote by hand; it
// comes back unchanged.
func compileStyle(block sexpr.List) sexpr.List {
	attrs, body := splitStyle(block)

	items := body
	if len(items) == 1 {
		if v, ok := items[0].(sexpr.Vector); ok {
			items = v.Items
		}
	}

	selectors := lo.Filter(items, func(n sexpr.Node, _ int) bool {
		_, ok := n.(sexpr.Vector)
		return ok
	})
	props := lo.Filter(items, func(n sexpr.Node, _ int) bool {
		_, ok := n.(sexpr.Map)
		return ok
	})

	if len(selectors) == 0 && len(props) == 0 {
		return block
	}

	rules := min(len(selectors), len(props))
	groups := make([]string, 0, rules)
	for i := 0; i < rules; i++ {
		groups = append(groups, selectorText(selectors[i].(sexpr.Vector))+propText(props[i].(sexpr.Map)))
	}

	return sexpr.NewList(
		sexpr.Symbol("style"),
		attrs.Set(sexpr.Keyword("type"), sexpr.String("text/css")),
		sexpr.String(strings.Join(groups, "\n")),
	)
}

// splitStyle separates a style block into its attribute map and body
// items.
func splitStyle(block sexpr.List) (sexpr.Map, []sexpr.Node) {
	rest := block.Items[1:]
	if len(rest) > 0 {
		if m, ok := rest[0].(sexpr.Map); ok {
			return m, rest[1:]
		}
	}

	return sexpr.Map{}, rest
}

// selectorText renders a selector group. A group of plain atoms is one
// descendant path; otherwise every item is its own path, vectors spelling
// out multi-step paths, and the paths are joined as alternatives.
func selectorText(group sexpr.Vector) string {
	paths := lo.Map(selectorPaths(group), func(path []sexpr.Node, _ int) string {
		steps := lo.Map(path, func(step sexpr.Node, _ int) string {
			return sexpr.Text(step)
		})
		return strings.Join(steps, " ")
	})

	return strings.Join(paths, ",\n")
}

func selectorPaths(group sexpr.Vector) [][]sexpr.Node {
	atomsOnly := true
	for _, item := range group.Items {
		if _, ok := item.(sexpr.Vector); ok {
			atomsOnly = false
			break
		}
	}

	if atomsOnly {
		return [][]sexpr.Node{group.Items}
	}

	paths := make([][]sexpr.Node, 0, len(group.Items))
	for _, item := range group.Items {
		if v, ok := item.(sexpr.Vector); ok {
			paths = append(paths, v.Items)
			continue
		}
		paths = append(paths, []sexpr.Node{item})
	}

	return paths
}

// propText renders a property set as a brace-wrapped declaration block,
// one declaration per line, in entry order.
func propText(props sexpr.Map) string {
	var b strings.Builder
	b.WriteString(" {\n")
	for _, e := range props.Entries {
		b.WriteString("  ")
		b.WriteString(sexpr.Text(e.Key))
		b.WriteString(": ")
		b.WriteString(sexpr.Text(e.Value))
		b.WriteString(";\n")
	}
	b.WriteString("}\n")

	return b.String()
}
