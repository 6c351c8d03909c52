// Package fst implements a rule-driven finite-state transducer: rewrite
// rules compile into a shared transition graph, and input strings are
// transduced through that graph into output strings.
//
// # Overview
//
// A transducer reads an input tape while writing a related output tape. In
// Lexway, the mapping is declared as rules: ordered sequences of literal
// substrings (output equals input) and src→dst transformation pairs. Each
// registered rule is folded into one shared graph, so rules with a common
// prefix share a vertex chain and diverge only where their outputs diverge.
//
// # Basic Usage
//
// Create an empty graph with [New], register rules with [Graph.AddRule], and
// run inputs through it with [Graph.Parse]:
//
//	g := fst.New()
//	g.AddRule(fst.NewRule(fst.Lit("act"), fst.Sub("ing", "")))
//	res := g.Parse("acting")
//	// res.Kind == fst.KindSuccess, res.Output == "act"
//
// [Graph.Transduce] exposes the raw output set when the classified [Result]
// is not needed.
//
// # Vertex Identity
//
// A [Vertex] is a value type identified by its path signature (the input
// consumed so far plus the output fragment of the most recent edge) and its
// lifecycle [Status]. Identity is purely structural: two rules that agree on
// input and output up to some position reuse the same vertices, and rules
// that disagree on terminality at the same signature produce distinct
// vertices rather than a conflict.
//
// # Ambiguity
//
// Several edges may leave one vertex on the same input rune with different
// output fragments; this is the only representation of ambiguity. Traversal
// explores every match exhaustively with no memoization or pruning, so cost
// is exponential in the number of ambiguous branch points along the input.
// Rule graphs are expected to be small and shallow; callers needing a bound
// on pathological rule sets should cancel from outside (see package batch).
//
// # Concurrency
//
// Graph construction is single-writer: register rules from one goroutine
// during setup. Once built the graph is never mutated by parsing, so any
// number of goroutines may call [Graph.Transduce] and [Graph.Parse]
// concurrently without locking.
package fst
