package compiler

import (
	"fmt"
	"strings"

	"github.com/vcrobe/lisplet/sexpr"
	"github.com/vcrobe/lisplet/tagsoup"
)

// findDocumentRoot locates the unique html element among the top-level
// forms.
func findDocumentRoot(forest []sexpr.Node) (sexpr.List, error) {
	var roots []sexpr.List
	for _, form := range forest {
		if sexpr.HeadIs(form, "html") {
			roots = append(roots, form.(sexpr.List))
		}
	}

	switch len(roots) {
	case 0:
		return sexpr.List{}, ErrNoDocumentRoot
	case 1:
		return roots[0], nil
	default:
		return sexpr.List{}, ErrMultipleDocumentRoots
	}
}

// findBody locates the unique body element anywhere below the document
// root.
func findBody(root sexpr.List) (sexpr.List, error) {
	var bodies []sexpr.List
	collectBodies(root, &bodies)

	switch len(bodies) {
	case 0:
		return sexpr.List{}, ErrNoBody
	case 1:
		return bodies[0], nil
	default:
		return sexpr.List{}, ErrMultipleBodies
	}
}

func collectBodies(form sexpr.List, bodies *[]sexpr.List) {
	for _, item := range form.Items {
		child, ok := item.(sexpr.List)
		if !ok {
			continue
		}

		if head, ok := child.Head(); ok && head == "body" {
			*bodies = append(*bodies, child)
			continue
		}

		collectBodies(child, bodies)
	}
}

// compileForest runs the forward pipeline over a document forest. The
// body must open with a namespace declaration; the remaining body forms
// are canonicalized, style blocks are compiled, element heads are
// normalized and the bootstrap scripts are appended. The same body
// forms, untouched, become the generated module's payload.
func compileForest(forest []sexpr.Node, jsURI, baseURI string) (*Bundle, error) {
	root, err := findDocumentRoot(forest)
	if err != nil {
		return nil, err
	}

	body, err := findBody(root)
	if err != nil {
		return nil, err
	}

	attrs, forms := splitBody(body)
	if len(forms) == 0 || !sexpr.HeadIs(forms[0], "ns") {
		return nil, ErrNoNamespace
	}

	nsDecl := forms[0].(sexpr.List)
	content := forms[1:]

	name, err := namespaceName(nsDecl)
	if err != nil {
		return nil, err
	}

	// 1. Canonicalize, compile styles and normalize the markup side.
	rendered := make([]sexpr.Node, 0, len(content))
	for _, form := range content {
		canonical := tagsoup.Pedanticize(form)
		if isStyle(canonical) {
			rendered = append(rendered, compileStyle(canonical.(sexpr.List)))
			continue
		}

		rendered = append(rendered, normalizeTags(canonical))
	}

	// 2. Rebuild the body with the bootstrap scripts appended.
	items := make([]sexpr.Node, 0, len(rendered)+7)
	items = append(items, sexpr.Symbol("body"), attrs)
	items = append(items, rendered...)
	items = append(items, bootstrapScripts(name, jsURI, baseURI)...)
	newBody := sexpr.List{Items: items}

	// 3. Substitute the assembled body back into the document.
	out, count := sexpr.Replace(forest, body, newBody)
	if count != 1 {
		return nil, fmt.Errorf("%w: %d substitutions", ErrBodyNotReplaced, count)
	}

	markup, err := tagsoup.Render(out)
	if err != nil {
		return nil, err
	}

	return &Bundle{
		Markup: markup,
		Code:   assembleModule(nsDecl, content),
	}, nil
}

// splitBody separates a body element into its attribute map and content
// forms.
func splitBody(body sexpr.List) (sexpr.Map, []sexpr.Node) {
	rest := body.Items[1:]
	if len(rest) > 0 {
		if m, ok := rest[0].(sexpr.Map); ok {
			return m, rest[1:]
		}
	}

	return sexpr.Map{}, rest
}

// bootstrapScripts builds the script elements that boot the page: wipe
// the static body, load the runtime, then invoke the page module's
// entry point. With a base URI the module loader is used; without one
// the script declares itself dependency-free.
func bootstrapScripts(namespace, jsURI, baseURI string) []sexpr.Node {
	munged := strings.ReplaceAll(namespace, "-", "_")

	clear := inlineScript("document.body.innerHTML = '';")
	invoke := inlineScript(munged + ".init();")

	if baseURI != "" {
		return []sexpr.Node{
			clear,
			srcScript(baseURI),
			srcScript(jsURI),
			inlineScript("lisplet.require('" + munged + "');"),
			invoke,
		}
	}

	return []sexpr.Node{
		clear,
		inlineScript("var LISPLET_NO_DEPS = true;"),
		srcScript(jsURI),
		invoke,
	}
}

func inlineScript(code string) sexpr.Node {
	return sexpr.NewList(
		sexpr.Symbol("script"),
		sexpr.NewMap(sexpr.Keyword("type"), sexpr.String("text/javascript")),
		sexpr.String(code),
	)
}

func srcScript(uri string) sexpr.Node {
	return sexpr.NewList(
		sexpr.Symbol("script"),
		sexpr.NewMap(
			sexpr.Keyword("type"), sexpr.String("text/javascript"),
			sexpr.Keyword("src"), sexpr.String(uri),
		),
	)
}

// liftLogicIntoBody prepares a logic-first source for the forward
// pipeline. When the first form is a namespace declaration, the final
// form must be the markup document; the declaration and the logic forms
// between them move to the front of the document's body, the logic
// wrapped in one (do ... nil) block so it always evaluates to a
// determinate value. When the first form already is a markup document
// the input passes through unchanged.
func liftLogicIntoBody(forms []sexpr.Node) ([]sexpr.Node, error) {
	if len(forms) == 0 {
		return nil, ErrNotDocument
	}

	if sexpr.HeadIs(forms[0], "html") {
		return forms, nil
	}

	if !sexpr.HeadIs(forms[0], "ns") {
		return nil, ErrNotDocument
	}

	if len(forms) < 2 {
		return nil, fmt.Errorf("%w: namespace declaration without a document", ErrNotDocument)
	}

	nsDecl := forms[0]
	logic := forms[1 : len(forms)-1]

	doc, ok := forms[len(forms)-1].(sexpr.List)
	if !ok {
		return nil, ErrNoBody
	}

	body, err := findBody(doc)
	if err != nil {
		return nil, err
	}

	attrs, rest := splitBody(body)

	doItems := make([]sexpr.Node, 0, len(logic)+2)
	doItems = append(doItems, sexpr.Symbol("do"))
	doItems = append(doItems, logic...)
	doItems = append(doItems, sexpr.Nil{})

	items := make([]sexpr.Node, 0, len(rest)+4)
	items = append(items, sexpr.Symbol("body"), attrs, nsDecl, sexpr.List{Items: doItems})
	items = append(items, rest...)

	out, count := sexpr.Replace([]sexpr.Node{doc}, body, sexpr.List{Items: items})
	if count != 1 {
		return nil, fmt.Errorf("%w: %d substitutions", ErrBodyNotReplaced, count)
	}

	return out, nil
}
