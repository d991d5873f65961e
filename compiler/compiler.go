// Package compiler turns hybrid documents, markup holding lisplet
// forms in its body, into deployable pages: a rendered markup document
// whose body boots the browser runtime, paired with the generated page
// module that rebuilds the body dynamically.
package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/vcrobe/lisplet/sexpr"
	"github.com/vcrobe/lisplet/tagsoup"
)

// Bundle is the paired output of one compilation: the rendered markup
// document and the generated module that drives it. The two are only
// meaningful together.
type Bundle struct {
	// Markup is the serialized document with the compiled body.
	Markup string

	// Code is the generated page module, one form per line.
	Code string
}

// CompileForms compiles an already-parsed document forest. jsURI is the
// location of the compiled runtime script; baseURI optionally points at
// the module loader's base script and selects the loader bootstrap when
// present.
func CompileForms(forest []sexpr.Node, jsURI, baseURI string) (*Bundle, error) {
	return compileForest(forest, jsURI, baseURI)
}

// CompileDocument compiles a parsed markup tree.
func CompileDocument(doc *html.Node, jsURI, baseURI string) (*Bundle, error) {
	forest, err := tagsoup.DecodeDocument(doc)
	if err != nil {
		return nil, err
	}

	return compileForest(forest, jsURI, baseURI)
}

// CompileString compiles markup text.
func CompileString(markup, jsURI, baseURI string) (*Bundle, error) {
	forest, err := tagsoup.Decode(markup)
	if err != nil {
		return nil, err
	}

	return compileForest(forest, jsURI, baseURI)
}

// CompileFile compiles the file at path according to its extension.
// Markup files (.html, .htm) take the forward pipeline directly; logic
// files (.lisp) are read as forms and their logic is lifted into the
// document body first. Any other extension yields no bundle and no
// error, so callers can feed whole directory trees through.
func CompileFile(path, jsURI, baseURI string) (*Bundle, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		return CompileString(string(src), jsURI, baseURI)
	case ".lisp":
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		forms, err := sexpr.Read(string(src))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		lifted, err := liftLogicIntoBody(forms)
		if err != nil {
			return nil, err
		}

		return compileForest(lifted, jsURI, baseURI)
	default:
		return nil, nil
	}
}
