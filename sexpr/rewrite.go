package sexpr

// Rewrite visits every node of the forest in one pre-order pass and
// substitutes fn(node) for each node matching pred. A substituted node is
// spliced in without being visited again, so fn's output is never itself
// rewritten. Non-matching compound nodes are rebuilt around their
// rewritten contents; List and Vector items and Map keys and values are
// all visited.
func Rewrite(forest []Node, pred func(Node) bool, fn func(Node) Node) []Node {
	out := make([]Node, len(forest))
	for i, n := range forest {
		out[i] = RewriteNode(n, pred, fn)
	}

	return out
}

// RewriteNode applies Rewrite to a single subtree.
func RewriteNode(n Node, pred func(Node) bool, fn func(Node) Node) Node {
	if pred(n) {
		return fn(n)
	}

	switch v := n.(type) {
	case List:
		return List{Items: rewriteItems(v.Items, pred, fn)}
	case Vector:
		return Vector{Items: rewriteItems(v.Items, pred, fn)}
	case Map:
		entries := make([]Entry, len(v.Entries))
		for i, e := range v.Entries {
			entries[i] = Entry{
				Key:   RewriteNode(e.Key, pred, fn),
				Value: RewriteNode(e.Value, pred, fn),
			}
		}
		return Map{Entries: entries}
	default:
		return n
	}
}

func rewriteItems(items []Node, pred func(Node) bool, fn func(Node) Node) []Node {
	out := make([]Node, len(items))
	for i, item := range items {
		out[i] = RewriteNode(item, pred, fn)
	}

	return out
}

// Replace substitutes next for every node equal to prev and returns the
// rewritten forest together with the number of substitutions. Callers
// that require exactly one substitution can fail fast on the count.
func Replace(forest []Node, prev, next Node) ([]Node, int) {
	count := 0
	out := Rewrite(forest,
		func(n Node) bool { return Equal(n, prev) },
		func(Node) Node {
			count++
			return next
		})

	return out, count
}
