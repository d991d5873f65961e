package sexpr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// reader is a single-pass scanner over the source runes. It tracks the
// current line so syntax errors point at the offending input.
type reader struct {
	src  []rune
	pos  int
	line int
}

// Read parses every top-level form in src and returns them in order.
// Commas count as whitespace and a semicolon starts a comment that runs
// to the end of the line.
func Read(src string) ([]Node, error) {
	r := &reader{src: []rune(src), line: 1}

	var forms []Node
	for {
		r.skipSpace()
		if r.eof() {
			return forms, nil
		}

		form, err := r.readForm()
		if err != nil {
			return nil, err
		}

		forms = append(forms, form)
	}
}

// ReadOne parses exactly one form and rejects trailing input.
func ReadOne(src string) (Node, error) {
	forms, err := Read(src)
	if err != nil {
		return nil, err
	}

	if len(forms) != 1 {
		return nil, fmt.Errorf("expected exactly one form, got %d", len(forms))
	}

	return forms[0], nil
}

func (r *reader) readForm() (Node, error) {
	switch c := r.peek(); c {
	case '(':
		return r.readCompound('(', ')')
	case '[':
		return r.readCompound('[', ']')
	case '{':
		return r.readMap()
	case '"':
		return r.readString()
	case '\'':
		r.advance()
		r.skipSpace()
		if r.eof() {
			return nil, fmt.Errorf("line %d: quote without a form", r.line)
		}
		quoted, err := r.readForm()
		if err != nil {
			return nil, err
		}
		return NewList(Symbol("quote"), quoted), nil
	case ':':
		return r.readKeyword()
	case ')', ']', '}':
		return nil, fmt.Errorf("line %d: unexpected %q", r.line, string(c))
	default:
		return r.readAtom()
	}
}

func (r *reader) readCompound(open, term rune) (Node, error) {
	openLine := r.line
	r.advance()

	var items []Node
	for {
		r.skipSpace()
		if r.eof() {
			return nil, fmt.Errorf("line %d: unclosed %q", openLine, string(open))
		}

		if r.peek() == term {
			r.advance()
			if open == '(' {
				return List{Items: items}, nil
			}
			return Vector{Items: items}, nil
		}

		item, err := r.readForm()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}
}

func (r *reader) readMap() (Node, error) {
	openLine := r.line
	r.advance()

	var items []Node
	for {
		r.skipSpace()
		if r.eof() {
			return nil, fmt.Errorf("line %d: unclosed %q", openLine, "{")
		}

		if r.peek() == '}' {
			r.advance()
			break
		}

		item, err := r.readForm()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if len(items)%2 != 0 {
		return nil, fmt.Errorf("line %d: map literal requires an even number of forms", openLine)
	}

	m := NewMap(items...)
	for i, e := range m.Entries {
		for _, prior := range m.Entries[:i] {
			if Equal(prior.Key, e.Key) {
				return nil, fmt.Errorf("line %d: duplicate map key %s", openLine, Write(e.Key))
			}
		}
	}

	return m, nil
}

func (r *reader) readString() (Node, error) {
	openLine := r.line
	r.advance()

	var b strings.Builder
	for {
		if r.eof() {
			return nil, fmt.Errorf("line %d: unclosed string literal", openLine)
		}

		c := r.peek()
		switch c {
		case '"':
			r.advance()
			return String(b.String()), nil
		case '\\':
			r.advance()
			if r.eof() {
				return nil, fmt.Errorf("line %d: unclosed string literal", openLine)
			}
			esc := r.peek()
			switch esc {
			case '"', '\\':
				b.WriteRune(esc)
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				return nil, fmt.Errorf("line %d: unsupported escape %q", r.line, "\\"+string(esc))
			}
			r.advance()
		default:
			b.WriteRune(c)
			r.advance()
		}
	}
}

func (r *reader) readKeyword() (Node, error) {
	line := r.line
	r.advance()

	name := r.readToken()
	if name == "" {
		return nil, fmt.Errorf("line %d: keyword without a name", line)
	}

	return Keyword(name), nil
}

func (r *reader) readAtom() (Node, error) {
	line := r.line

	token := r.readToken()
	if token == "" {
		return nil, fmt.Errorf("line %d: unexpected character %q", line, string(r.peek()))
	}

	switch token {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	case "nil":
		return Nil{}, nil
	}

	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return Int(i), nil
	}

	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return Float(f), nil
	}

	return Symbol(token), nil
}

// readToken consumes runes until whitespace, a delimiter or the end of
// the input.
func (r *reader) readToken() string {
	start := r.pos
	for !r.eof() && isTokenRune(r.peek()) {
		r.advance()
	}

	return string(r.src[start:r.pos])
}

func isTokenRune(c rune) bool {
	if unicode.IsSpace(c) {
		return false
	}

	switch c {
	case '(', ')', '[', ']', '{', '}', '"', ';', ',', '\'':
		return false
	}

	return true
}

// skipSpace consumes whitespace, commas and line comments.
func (r *reader) skipSpace() {
	for !r.eof() {
		c := r.peek()
		switch {
		case c == ',' || unicode.IsSpace(c):
			r.advance()
		case c == ';':
			for !r.eof() && r.peek() != '\n' {
				r.advance()
			}
		default:
			return
		}
	}
}

func (r *reader) peek() rune {
	if r.eof() {
		return 0
	}

	return r.src[r.pos]
}

func (r *reader) advance() {
	if r.eof() {
		return
	}

	if r.src[r.pos] == '\n' {
		r.line++
	}
	r.pos++
}

func (r *reader) eof() bool {
	return r.pos >= len(r.src)
}
