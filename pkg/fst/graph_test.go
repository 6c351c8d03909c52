package fst

import "testing"

func TestNew_RootOnly(t *testing.T) {
	g := New()

	if g.Root().Status != StatusInitial {
		t.Errorf("root status = %v, want %v", g.Root().Status, StatusInitial)
	}
	if g.Root().Signature != "" {
		t.Errorf("root signature = %q, want empty", g.Root().Signature)
	}
	if g.VertexCount() != 1 {
		t.Errorf("VertexCount() = %d, want 1", g.VertexCount())
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}

func TestAddEdge_Idempotent(t *testing.T) {
	g := New()
	e := Edge{
		From:   g.Root(),
		To:     Vertex{Signature: "a|a", Status: StatusTransitional},
		Input:  'a',
		Output: "a",
	}

	if !g.AddEdge(e) {
		t.Error("first AddEdge() = false, want true")
	}
	if g.AddEdge(e) {
		t.Error("duplicate AddEdge() = true, want false")
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if g.VertexCount() != 2 {
		t.Errorf("VertexCount() = %d, want 2", g.VertexCount())
	}
}

func TestAddEdge_SameInputDifferentOutput(t *testing.T) {
	// Two edges leaving one vertex with the same input rune but different
	// output fragments is the sole representation of ambiguity.
	g := New()
	g.AddEdge(Edge{From: g.Root(), To: Vertex{Signature: "a|a", Status: StatusTransitional}, Input: 'a', Output: "a"})
	g.AddEdge(Edge{From: g.Root(), To: Vertex{Signature: "a|b", Status: StatusTransitional}, Input: 'a', Output: "b"})

	if got := len(g.OutgoingOn(g.Root(), 'a')); got != 2 {
		t.Errorf("OutgoingOn(root, 'a') has %d edges, want 2", got)
	}
}

func TestOutgoingOn_FiltersByInput(t *testing.T) {
	g := New()
	g.AddEdge(Edge{From: g.Root(), To: Vertex{Signature: "a|a", Status: StatusTransitional}, Input: 'a', Output: "a"})
	g.AddEdge(Edge{From: g.Root(), To: Vertex{Signature: "b|b", Status: StatusTransitional}, Input: 'b', Output: "b"})

	edges := g.OutgoingOn(g.Root(), 'a')
	if len(edges) != 1 {
		t.Fatalf("OutgoingOn(root, 'a') has %d edges, want 1", len(edges))
	}
	if edges[0].Input != 'a' {
		t.Errorf("edge input = %q, want 'a'", edges[0].Input)
	}
	if g.OutgoingOn(g.Root(), 'z') != nil {
		t.Error("OutgoingOn(root, 'z') should be nil for an unknown input")
	}
}

func TestOutgoing_InsertionOrder(t *testing.T) {
	g := New()
	g.AddEdge(Edge{From: g.Root(), To: Vertex{Signature: "a|x", Status: StatusTransitional}, Input: 'a', Output: "x"})
	g.AddEdge(Edge{From: g.Root(), To: Vertex{Signature: "a|y", Status: StatusTransitional}, Input: 'a', Output: "y"})

	edges := g.Outgoing(g.Root())
	if len(edges) != 2 {
		t.Fatalf("Outgoing(root) has %d edges, want 2", len(edges))
	}
	if edges[0].Output != "x" || edges[1].Output != "y" {
		t.Errorf("edge order = [%q, %q], want [x, y]", edges[0].Output, edges[1].Output)
	}
}

func TestStatus_PartOfIdentity(t *testing.T) {
	g := New()
	g.AddEdge(Edge{From: g.Root(), To: Vertex{Signature: "a|a", Status: StatusTransitional}, Input: 'a', Output: "a"})
	g.AddEdge(Edge{From: g.Root(), To: Vertex{Signature: "a|a", Status: StatusTerminal}, Input: 'a', Output: "a"})

	// Same signature, different status: two distinct vertices, never a conflict.
	if g.VertexCount() != 3 {
		t.Errorf("VertexCount() = %d, want 3", g.VertexCount())
	}
	if g.TerminalCount() != 1 {
		t.Errorf("TerminalCount() = %d, want 1", g.TerminalCount())
	}
}

func TestStats(t *testing.T) {
	g := New()
	g.AddRule(NewRule(Lit("hi")))

	want := Stats{Vertices: 3, Edges: 2, Terminals: 1}
	if got := g.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestStatus_String(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusInitial, "initial"},
		{StatusTransitional, "transitional"},
		{StatusTerminal, "terminal"},
		{Status(99), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}
