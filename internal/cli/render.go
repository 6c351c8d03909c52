package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexway/lexway/pkg/render"
)

func newRenderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <ruleset.toml>",
		Short: "Export the transition graph as Graphviz DOT or SVG",
		Long: `Render compiles the ruleset and exports its transition graph.

The output format follows the file extension: .svg renders through Graphviz,
anything else (or stdout) emits DOT text.

Examples:
  lexway render verbs.toml                 # DOT to stdout
  lexway render verbs.toml -o graph.dot
  lexway render verbs.toml -o graph.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			_, g, _, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			dot := render.ToDOT(g)

			if output == "" {
				fmt.Print(dot)
				return nil
			}

			data := []byte(dot)
			if strings.HasSuffix(output, ".svg") {
				p := newProgress(logger)
				data, err = render.RenderSVG(dot)
				if err != nil {
					return fmt.Errorf("render SVG: %w", err)
				}
				p.done("Rendered SVG")
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			logger.Info("wrote graph", "path", output, "bytes", len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
