package fst

// Status classifies a vertex within the transducer lifecycle. It is part of
// vertex identity: two vertices with equal signatures but different statuses
// are distinct, which is how rules that disagree on terminality at the same
// position coexist in one graph.
type Status int

const (
	// StatusInitial marks the root vertex. The root is never terminal and
	// every traversal starts from it.
	StatusInitial Status = iota
	// StatusTransitional marks a vertex in the middle of some rule.
	StatusTransitional
	// StatusTerminal marks a vertex reached by completing the final edit
	// step of some rule. Reaching one with the input exhausted signals
	// acceptance.
	StatusTerminal
)

// String returns a human-readable status name, used in DOT export and logs.
func (s Status) String() string {
	switch s {
	case StatusInitial:
		return "initial"
	case StatusTransitional:
		return "transitional"
	case StatusTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Vertex is a graph vertex identified by its path signature and status.
// The signature is the concatenation of every input rune consumed so far, a
// separator, and the output fragment of the most recently traversed edge
// (not the cumulative output). Vertex is a comparable value type and is used
// directly as a map key; there is no pointer identity.
type Vertex struct {
	Signature string
	Status    Status
}

// Edge is a directed, labeled connection between two vertices. Several edges
// may leave one vertex with the same Input but different Outputs; that is
// the sole representation of ambiguity in the graph.
type Edge struct {
	From   Vertex
	To     Vertex
	Input  rune   // the single input rune this edge consumes
	Output string // the output fragment this edge emits (may be empty)
}

// Graph is the shared transition graph accumulated from every rule
// registered against it. It is rooted at one distinguished initial vertex
// and is append-only: edges are never removed and rules cannot be retracted.
//
// The zero value is not usable; use [New]. Construction is single-writer,
// but a built graph may be read concurrently without locking since parsing
// never mutates it.
type Graph struct {
	root     Vertex
	edges    []Edge
	vertices map[Vertex]struct{}
	outgoing map[Vertex][]Edge
	byInput  map[arcKey][]Edge
	seen     map[Edge]struct{}
}

// arcKey indexes outgoing edges by (source vertex, input rune), the
// traversal hot path.
type arcKey struct {
	from  Vertex
	input rune
}

// New creates an empty graph containing only the root vertex.
func New() *Graph {
	root := Vertex{Status: StatusInitial}
	return &Graph{
		root:     root,
		vertices: map[Vertex]struct{}{root: {}},
		outgoing: make(map[Vertex][]Edge),
		byInput:  make(map[arcKey][]Edge),
		seen:     make(map[Edge]struct{}),
	}
}

// Root returns the distinguished initial vertex every traversal starts from.
func (g *Graph) Root() Vertex { return g.root }

// AddEdge inserts a directed edge and registers both endpoints. Insertion is
// idempotent: an edge equal to one already present leaves the graph
// unchanged. It reports whether the edge was actually added.
//
// Per-vertex edge order is insertion order, which is what makes ambiguous
// outputs stable across parses.
func (g *Graph) AddEdge(e Edge) bool {
	if _, dup := g.seen[e]; dup {
		return false
	}
	g.seen[e] = struct{}{}
	g.edges = append(g.edges, e)
	g.vertices[e.From] = struct{}{}
	g.vertices[e.To] = struct{}{}
	g.outgoing[e.From] = append(g.outgoing[e.From], e)
	k := arcKey{from: e.From, input: e.Input}
	g.byInput[k] = append(g.byInput[k], e)
	return true
}

// Outgoing returns the edges leaving v in insertion order.
// The returned slice is a read-only view and must not be modified.
func (g *Graph) Outgoing(v Vertex) []Edge { return g.outgoing[v] }

// OutgoingOn returns the edges leaving v whose label consumes input, in
// insertion order. This is the traversal hot path and is indexed, not
// filtered. The returned slice is a read-only view.
func (g *Graph) OutgoingOn(v Vertex, input rune) []Edge {
	return g.byInput[arcKey{from: v, input: input}]
}

// Vertices returns all vertices in the graph, including the root.
// The order is not guaranteed.
func (g *Graph) Vertices() []Vertex {
	vs := make([]Vertex, 0, len(g.vertices))
	for v := range g.vertices {
		vs = append(vs, v)
	}
	return vs
}

// Edges returns all edges in insertion order across all rules.
// The returned slice is a read-only view and must not be modified.
func (g *Graph) Edges() []Edge { return g.edges }

// VertexCount returns the number of vertices, root included.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// TerminalCount returns the number of terminal vertices.
func (g *Graph) TerminalCount() int {
	n := 0
	for v := range g.vertices {
		if v.Status == StatusTerminal {
			n++
		}
	}
	return n
}

// Stats summarizes the size of a graph.
type Stats struct {
	Vertices  int `json:"vertices"`
	Edges     int `json:"edges"`
	Terminals int `json:"terminals"`
}

// Stats returns the vertex, edge, and terminal-vertex counts. Parsing never
// mutates the graph, so stats are identical before and after any number of
// parse calls.
func (g *Graph) Stats() Stats {
	return Stats{
		Vertices:  g.VertexCount(),
		Edges:     g.EdgeCount(),
		Terminals: g.TerminalCount(),
	}
}
