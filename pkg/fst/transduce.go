package fst

// Transduce returns every output string reachable by a path that consumes
// the entire input and ends on a terminal vertex, in discovery order.
//
// Traversal is exhaustive depth-first backtracking: at each position every
// outgoing edge matching the next input rune is explored independently.
// Branches that strand (no matching edge, or input exhausted on a
// non-terminal vertex) contribute nothing and are pruned silently. Two
// distinct paths producing the same string both appear in the result; no
// deduplication is performed.
//
// There is no memoization, so cost is exponential in the number of
// ambiguous branch points along the input. That is a documented scaling
// limit of rule graphs, which are expected to be small and shallow.
//
// Transduce is a pure function of (graph, input): it never mutates the
// graph and is safe to call from any number of goroutines concurrently.
func (g *Graph) Transduce(input string) []string {
	var outputs []string

	var walk func(v Vertex, rest []rune, acc string)
	walk = func(v Vertex, rest []rune, acc string) {
		if len(rest) == 0 {
			if v.Status == StatusTerminal {
				outputs = append(outputs, acc)
			}
			return
		}
		for _, e := range g.OutgoingOn(v, rest[0]) {
			walk(e.To, rest[1:], acc+e.Output)
		}
	}

	walk(g.root, []rune(input), "")
	return outputs
}
