package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/lexway/lexway/pkg/fst"
	"github.com/lexway/lexway/pkg/ruleset"
)

// loadGraph reads a ruleset file, validates it, and compiles a fresh graph.
// It returns the set, the compiled graph, and the raw document bytes, which
// serve commands hash into a cache fingerprint. There is no compiled-graph
// cache: graphs always rebuild from declarations.
func loadGraph(ctx context.Context, path string) (*ruleset.Set, *fst.Graph, []byte, error) {
	logger := loggerFromContext(ctx)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read ruleset: %w", err)
	}

	set, err := ruleset.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	p := newProgress(logger)
	g := set.Compile()
	p.done(fmt.Sprintf("Compiled %d rules into %d vertices and %d edges",
		len(set.Rules), g.VertexCount(), g.EdgeCount()))

	return set, g, raw, nil
}
