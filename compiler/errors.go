package compiler

import "errors"

// Sentinel errors for document shapes the compiler refuses. They are
// wrapped with position detail where useful, so match with errors.Is.
var (
	// ErrNotDocument reports an input whose first form is neither a
	// namespace declaration nor a markup document.
	ErrNotDocument = errors.New("first form is not markup or namespace declaration")

	// ErrNoDocumentRoot reports a forest without an html element at the
	// top level.
	ErrNoDocumentRoot = errors.New("document has no html element")

	// ErrMultipleDocumentRoots reports a forest with more than one html
	// element at the top level.
	ErrMultipleDocumentRoots = errors.New("document has more than one html element")

	// ErrNoBody reports a document root without a body element.
	ErrNoBody = errors.New("document has no body element")

	// ErrMultipleBodies reports a document root with more than one body
	// element.
	ErrMultipleBodies = errors.New("document has more than one body element")

	// ErrNoNamespace reports a body whose first content form is not a
	// namespace declaration.
	ErrNoNamespace = errors.New("body does not start with a namespace declaration")

	// ErrBodyNotReplaced reports that substituting the assembled body
	// back into the document did not replace exactly one node.
	ErrBodyNotReplaced = errors.New("body substitution did not replace exactly one node")
)
