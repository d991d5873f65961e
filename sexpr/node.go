// Package sexpr implements the symbolic-expression data model shared by
// every stage of the lisplet compiler: atoms and compound forms, a text
// reader and writer, and a single-pass tree rewriter.
package sexpr

// Node is one value in a symbolic-expression tree: an atom (Symbol,
// Keyword, String, Int, Float, Bool, Nil) or a compound form (List,
// Vector, Map). Transformations build new nodes; existing nodes are
// never mutated in place.
type Node interface {
	node()
}

// Symbol is a bare identifier such as a tag name (div), a control word
// (ns, style, use) or a qualified name (lisplet.dom/init).
type Symbol string

// Keyword is a name written with a leading colon, e.g. :color. The
// stored value excludes the colon.
type Keyword string

// String is a string literal.
type String string

// Int is an integer literal.
type Int int64

// Float is a floating-point literal.
type Float float64

// Bool is a true or false literal.
type Bool bool

// Nil is the null value.
type Nil struct{}

// List is an ordered compound form written with parentheses. Element
// forms are lists with a Symbol head followed (once canonicalized) by an
// attribute Map and the children.
type List struct {
	Items []Node
}

// Vector is an ordered sequence written with square brackets.
type Vector struct {
	Items []Node
}

// Entry is a single key/value pair of a Map.
type Entry struct {
	Key   Node
	Value Node
}

// Map is a collection of unique keys mapped to values. Entry order is
// the insertion order so written output stays stable, but order never
// participates in equality.
type Map struct {
	Entries []Entry
}

func (Symbol) node()  {}
func (Keyword) node() {}
func (String) node()  {}
func (Int) node()     {}
func (Float) node()   {}
func (Bool) node()    {}
func (Nil) node()     {}
func (List) node()    {}
func (Vector) node()  {}
func (Map) node()     {}

// NewList builds a List from the given items.
func NewList(items ...Node) List {
	return List{Items: items}
}

// NewVector builds a Vector from the given items.
func NewVector(items ...Node) Vector {
	return Vector{Items: items}
}

// NewMap builds a Map from alternating keys and values. It panics when
// given an odd number of arguments, which is always a programming error.
func NewMap(pairs ...Node) Map {
	if len(pairs)%2 != 0 {
		panic("sexpr: NewMap requires an even number of arguments")
	}

	entries := make([]Entry, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		entries = append(entries, Entry{Key: pairs[i], Value: pairs[i+1]})
	}

	return Map{Entries: entries}
}

// Head returns the leading Symbol of the list. The second return value
// is false when the list is empty or does not start with a Symbol.
func (l List) Head() (Symbol, bool) {
	if len(l.Items) == 0 {
		return "", false
	}

	s, ok := l.Items[0].(Symbol)

	return s, ok
}

// HeadIs reports whether n is a List whose head is the given symbol.
func HeadIs(n Node, name Symbol) bool {
	l, ok := n.(List)
	if !ok {
		return false
	}

	head, ok := l.Head()

	return ok && head == name
}

// Len returns the number of entries in the map.
func (m Map) Len() int {
	return len(m.Entries)
}

// Get returns the value bound to key and whether the binding exists.
func (m Map) Get(key Node) (Node, bool) {
	for _, e := range m.Entries {
		if Equal(e.Key, key) {
			return e.Value, true
		}
	}

	return nil, false
}

// Set returns a copy of the map with key bound to value. An existing
// binding is replaced in place; a new one is appended at the end.
func (m Map) Set(key, value Node) Map {
	entries := make([]Entry, len(m.Entries))
	copy(entries, m.Entries)

	for i, e := range entries {
		if Equal(e.Key, key) {
			entries[i] = Entry{Key: key, Value: value}
			return Map{Entries: entries}
		}
	}

	return Map{Entries: append(entries, Entry{Key: key, Value: value})}
}

// Equal reports deep structural equality of two nodes. Atoms compare by
// type and value, Lists and Vectors compare element-wise in order, and
// Maps compare as key/value sets regardless of entry order.
func Equal(a, b Node) bool {
	switch av := a.(type) {
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case Keyword:
		bv, ok := b.(Keyword)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Nil:
		_, ok := b.(Nil)
		return ok
	case List:
		bv, ok := b.(List)
		return ok && equalItems(av.Items, bv.Items)
	case Vector:
		bv, ok := b.(Vector)
		return ok && equalItems(av.Items, bv.Items)
	case Map:
		bv, ok := b.(Map)
		return ok && equalMaps(av, bv)
	case nil:
		return b == nil
	}

	return false
}

func equalItems(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}

func equalMaps(a, b Map) bool {
	if len(a.Entries) != len(b.Entries) {
		return false
	}

	for _, e := range a.Entries {
		v, ok := b.Get(e.Key)
		if !ok || !Equal(e.Value, v) {
			return false
		}
	}

	return true
}
