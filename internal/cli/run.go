package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lexway/lexway/pkg/batch"
	"github.com/lexway/lexway/pkg/fst"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	workers   int    // parallel parse workers
	jsonOut   bool   // emit the raw report as JSON
	inputFile string // newline-separated inputs, "-" for stdin
}

func newRunCmd() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run <ruleset.toml> [inputs...]",
		Short: "Parse inputs against a ruleset",
		Long: `Run compiles the ruleset and parses every input against it.

Inputs come from the command line, from --input-file (one per line), or both.
Each input yields success (one output), ambiguous (several outputs in rule
registration order), or failure ("not possible").

Examples:
  lexway run verbs.toml acting walked
  lexway run verbs.toml --input-file words.txt --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			_, g, _, err := loadGraph(ctx, args[0])
			if err != nil {
				return err
			}

			inputs := args[1:]
			if opts.inputFile != "" {
				fromFile, err := readInputs(opts.inputFile)
				if err != nil {
					return err
				}
				inputs = append(inputs, fromFile...)
			}
			if len(inputs) == 0 {
				return errors.New("no inputs given; pass them as arguments or via --input-file")
			}

			report, err := batch.Run(ctx, g, inputs, opts.workers)
			if err != nil {
				return err
			}
			logger.Debug("batch finished", "id", report.ID, "elapsed", report.Elapsed)

			if opts.jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			fmt.Println(renderReport(report))
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "parallel workers (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "emit the report as JSON")
	cmd.Flags().StringVarP(&opts.inputFile, "input-file", "f", "", `inputs file, one per line ("-" for stdin)`)

	return cmd
}

// readInputs loads newline-separated inputs, skipping blank lines.
func readInputs(path string) ([]string, error) {
	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("read inputs: %w", err)
		}
		defer f.Close()
	}

	var inputs []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}
	return inputs, nil
}

// renderReport formats a batch report as a bordered table plus a summary line.
func renderReport(report batch.Report) string {
	rows := make([][]string, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		rows = append(rows, []string{o.Input, o.Result.Kind.String(), outcomeText(o.Result)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("Input", "Outcome", "Output").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col != 1 || row >= len(report.Outcomes) {
				return lipgloss.NewStyle()
			}
			switch report.Outcomes[row].Result.Kind {
			case fst.KindSuccess:
				return styleSuccess
			case fst.KindAmbiguous:
				return styleAmbiguous
			default:
				return styleFailure
			}
		})

	summary := styleDim.Render(fmt.Sprintf("%d matched, %d ambiguous, %d failed (%s)",
		report.Matched, report.Ambiguous, report.Failed, report.Elapsed.Round(time.Millisecond)))

	return t.String() + "\n" + summary
}

// outcomeText flattens a result into one display cell.
func outcomeText(r fst.Result) string {
	switch r.Kind {
	case fst.KindSuccess:
		return r.Output
	case fst.KindAmbiguous:
		return strings.Join(r.Outputs, " | ")
	default:
		return r.Reason
	}
}
