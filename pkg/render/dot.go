// Package render converts transition graphs to Graphviz node-link diagrams.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/lexway/lexway/pkg/fst"
)

// ToDOT converts a transition graph to Graphviz DOT format. The root is
// drawn bold, terminal vertices as double circles, and every edge carries
// its input:output label (ε standing in for an empty output fragment).
// Output order follows edge insertion order, so the same graph always
// yields the same DOT text.
//
// The resulting string can be rendered with [RenderSVG] or fed to any
// Graphviz tool.
func ToDOT(g *fst.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph fst {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, fontsize=12, margin=\"0.1,0.05\"];\n")
	buf.WriteString("\n")

	for _, v := range orderedVertices(g) {
		fmt.Fprintf(&buf, "  %q [%s];\n", vertexID(v), strings.Join(vertexAttrs(v), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", vertexID(e.From), vertexID(e.To), edgeLabel(e))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// orderedVertices lists vertices in first-appearance order over the edge
// sequence, root first, to keep DOT output deterministic.
func orderedVertices(g *fst.Graph) []fst.Vertex {
	seen := map[fst.Vertex]struct{}{g.Root(): {}}
	ordered := []fst.Vertex{g.Root()}
	for _, e := range g.Edges() {
		for _, v := range [2]fst.Vertex{e.From, e.To} {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				ordered = append(ordered, v)
			}
		}
	}
	return ordered
}

// vertexID yields a DOT node name unique per vertex. Status is part of
// vertex identity, so it must be part of the name too.
func vertexID(v fst.Vertex) string {
	if v.Status == fst.StatusInitial {
		return "start"
	}
	return v.Signature + "/" + v.Status.String()
}

func vertexAttrs(v fst.Vertex) []string {
	switch v.Status {
	case fst.StatusInitial:
		return []string{`label="start"`, "style=bold"}
	case fst.StatusTerminal:
		return []string{fmt.Sprintf("label=%q", v.Signature), "shape=doublecircle"}
	default:
		return []string{fmt.Sprintf("label=%q", v.Signature)}
	}
}

func edgeLabel(e fst.Edge) string {
	out := e.Output
	if out == "" {
		out = "ε"
	}
	return fmt.Sprintf("%c:%s", e.Input, out)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
