// Package batch fans independent parse calls across a worker pool.
//
// Parsing is a pure function of (graph, input) and the graph is immutable
// once built, so batch work is embarrassingly parallel: each input is an
// independent call with no shared mutable state. The pool is also the
// external budget surface the core deliberately lacks — a caller bounds
// exponential blow-up on pathological rule sets by cancelling the context,
// and inputs that were never parsed are reported as failures.
package batch

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lexway/lexway/pkg/fst"
)

// Outcome pairs one input with its classified result.
type Outcome struct {
	Input  string     `json:"input"`
	Result fst.Result `json:"result"`
}

// Report summarizes one batch run. Outcomes preserve input order regardless
// of which worker parsed what.
type Report struct {
	ID        string        `json:"id"` // unique run identifier
	Outcomes  []Outcome     `json:"outcomes"`
	Matched   int           `json:"matched"`   // success outcomes
	Ambiguous int           `json:"ambiguous"` // ambiguous outcomes (also matched)
	Failed    int           `json:"failed"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Run parses every input against g using up to workers goroutines and
// returns a report with one outcome per input, in input order. A workers
// value below 1 defaults to GOMAXPROCS.
//
// If ctx is cancelled, inputs not yet parsed are marked failed with the
// context error as reason and the context error is returned alongside the
// (complete-length) report.
func Run(ctx context.Context, g *fst.Graph, inputs []string, workers int) (Report, error) {
	start := time.Now()
	report := Report{
		ID:       uuid.NewString(),
		Outcomes: make([]Outcome, len(inputs)),
	}

	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				report.Outcomes[i] = Outcome{Input: inputs[i], Result: g.Parse(inputs[i])}
			}
		}()
	}

	var err error
	for i := range inputs {
		if err = ctx.Err(); err != nil {
			for j := i; j < len(inputs); j++ {
				report.Outcomes[j] = Outcome{
					Input:  inputs[j],
					Result: fst.Result{Kind: fst.KindFailure, Reason: err.Error()},
				}
			}
			break
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, o := range report.Outcomes {
		switch o.Result.Kind {
		case fst.KindSuccess:
			report.Matched++
		case fst.KindAmbiguous:
			report.Ambiguous++
		case fst.KindFailure:
			report.Failed++
		}
	}
	report.Elapsed = time.Since(start)
	return report, err
}
