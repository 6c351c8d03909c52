package fst

// sigSep separates the consumed-input prefix from the last output fragment
// inside a vertex signature. The prefix length is fixed per traversal depth,
// so inputs containing the separator rune stay unambiguous.
const sigSep = '|'

// Item is one element of a rule: a source substring and the output it maps
// to. A literal item is simply an identity pair. Source and destination may
// have unequal rune counts; [align] reconciles them.
type Item struct {
	Src string
	Dst string
}

// Lit returns a literal item whose output equals its input, rune for rune.
func Lit(s string) Item { return Item{Src: s, Dst: s} }

// Sub returns a transformation item mapping src to dst.
func Sub(src, dst string) Item { return Item{Src: src, Dst: dst} }

// Rule is an ordered sequence of items defining one input→output pattern.
// Rules are registered into a shared graph with [Graph.AddRule].
type Rule struct {
	Items []Item
}

// NewRule builds a rule from items in order.
func NewRule(items ...Item) Rule { return Rule{Items: items} }

// AddRule threads a rule through the graph starting at the root, creating
// whatever vertices and edges are missing. Identical prefixes shared by
// previously registered rules collapse onto the same vertex chain; outputs
// diverging at the same input position fork into sibling edges.
//
// Registration order matters only for ambiguous results: outputs are
// discovered in per-vertex edge insertion order. Registering the same rules
// in the same order always yields an identical graph.
//
// The core assumes well-formed items; an item with an empty Src contributes
// no steps and its Dst is dropped. Package ruleset rejects such items at
// declaration time.
func (g *Graph) AddRule(r Rule) {
	cur := g.root
	prefix := ""
	for i, item := range r.Items {
		closing := i == len(r.Items)-1
		for _, st := range align(item.Src, item.Dst, closing) {
			cur, prefix = g.extend(cur, prefix, st)
		}
	}
}

// extend is the shared edge-creation primitive: it derives the target
// vertex identity from the advanced input prefix and the step's output
// fragment, inserts the edge idempotently, and returns the new carried
// state. A closing step yields a terminal target, which keeps terminality
// disagreements between rules as distinct vertices instead of conflicts.
func (g *Graph) extend(cur Vertex, prefix string, st step) (Vertex, string) {
	next := prefix + string(st.input)
	status := StatusTransitional
	if st.closing {
		status = StatusTerminal
	}
	target := Vertex{
		Signature: next + string(sigSep) + st.output,
		Status:    status,
	}
	g.AddEdge(Edge{From: cur, To: target, Input: st.input, Output: st.output})
	return target, next
}
