package compiler

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/vcrobe/lisplet/sexpr"
	"github.com/vcrobe/lisplet/tags"
)

// assembleModule produces the text of the generated page module: the
// namespace declaration with the runtime import merged in, followed by
// the exported init entry point holding the body forms. One form per
// line.
func assembleModule(nsDecl sexpr.List, body []sexpr.Node) string {
	return sexpr.WriteForms([]sexpr.Node{
		mergeRuntimeImport(nsDecl),
		initEntryPoint(body),
	})
}

// mergeRuntimeImport adds the mandatory runtime import to a namespace
// declaration. The import lands inside the first use clause, keeping
// that clause's position and existing imports; a declaration without a
// use clause gains one at the end. Other clauses are left alone.
func mergeRuntimeImport(nsDecl sexpr.List) sexpr.List {
	items := make([]sexpr.Node, 0, len(nsDecl.Items)+1)

	merged := false
	for _, item := range nsDecl.Items {
		if !merged && isUseClause(item) {
			clause := item.(sexpr.List)
			items = append(items, sexpr.List{Items: append(append([]sexpr.Node{}, clause.Items...), runtimeImport())})
			merged = true
			continue
		}

		items = append(items, item)
	}

	if !merged {
		items = append(items, sexpr.NewList(sexpr.Symbol("use"), runtimeImport()))
	}

	return sexpr.List{Items: items}
}

// isUseClause reports whether the node is a (use ...) clause.
func isUseClause(n sexpr.Node) bool {
	return sexpr.HeadIs(n, "use")
}

// runtimeImport builds the import naming the runtime namespace and its
// full exported surface.
func runtimeImport() sexpr.List {
	names := lo.Map(tags.RuntimeSurface(), func(name string, _ int) sexpr.Node {
		return sexpr.Symbol(name)
	})

	return sexpr.List{Items: append([]sexpr.Node{sexpr.Symbol(tags.RuntimeNamespace)}, names...)}
}

// initEntryPoint wraps the body forms in the exported entry point the
// bootstrap scripts invoke: (defn-export init [] (lisplet.dom/init
// [body...])).
func initEntryPoint(body []sexpr.Node) sexpr.List {
	return sexpr.NewList(
		sexpr.Symbol("defn-export"),
		sexpr.Symbol("init"),
		sexpr.NewVector(),
		sexpr.NewList(sexpr.Symbol(tags.RuntimeInit), sexpr.Vector{Items: body}),
	)
}

// namespaceName extracts the declared name from a namespace form.
func namespaceName(nsDecl sexpr.List) (string, error) {
	if len(nsDecl.Items) < 2 {
		return "", fmt.Errorf("%w: namespace declaration has no name", ErrNoNamespace)
	}

	name, ok := nsDecl.Items[1].(sexpr.Symbol)
	if !ok {
		return "", fmt.Errorf("%w: namespace name %s is not a symbol", ErrNoNamespace, sexpr.Write(nsDecl.Items[1]))
	}

	return string(name), nil
}
