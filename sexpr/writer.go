package sexpr

import (
	"strconv"
	"strings"
)

// Write renders a node in its canonical text form. Reading the result
// back yields an equal node.
func Write(n Node) string {
	var b strings.Builder
	writeNode(&b, n)

	return b.String()
}

// WriteForms renders each top-level form on its own line with a trailing
// newline. This is the textual shape of a generated module.
func WriteForms(forms []Node) string {
	var b strings.Builder
	for _, form := range forms {
		writeNode(&b, form)
		b.WriteByte('\n')
	}

	return b.String()
}

// Text returns the plain textual value of an atom: the name of a symbol
// or keyword, the contents of a string and the literal of a number or
// boolean. Nil yields the empty string and compound forms fall back to
// their canonical written form.
func Text(n Node) string {
	switch v := n.(type) {
	case Symbol:
		return string(v)
	case Keyword:
		return string(v)
	case String:
		return string(v)
	case Int:
		return strconv.FormatInt(int64(v), 10)
	case Float:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case Bool:
		return strconv.FormatBool(bool(v))
	case Nil:
		return ""
	}

	return Write(n)
}

func writeNode(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case Symbol:
		b.WriteString(string(v))
	case Keyword:
		b.WriteByte(':')
		b.WriteString(string(v))
	case String:
		writeQuoted(b, string(v))
	case Int:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case Float:
		b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 64))
	case Bool:
		b.WriteString(strconv.FormatBool(bool(v)))
	case Nil, nil:
		b.WriteString("nil")
	case List:
		writeItems(b, '(', ')', v.Items)
	case Vector:
		writeItems(b, '[', ']', v.Items)
	case Map:
		b.WriteByte('{')
		for i, e := range v.Entries {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeNode(b, e.Key)
			b.WriteByte(' ')
			writeNode(b, e.Value)
		}
		b.WriteByte('}')
	}
}

func writeItems(b *strings.Builder, open, term byte, items []Node) {
	b.WriteByte(open)
	for i, item := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeNode(b, item)
	}
	b.WriteByte(term)
}

// writeQuoted emits a string literal using only the escapes the reader
// understands.
func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, c := range s {
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(c)
		}
	}
	b.WriteByte('"')
}
