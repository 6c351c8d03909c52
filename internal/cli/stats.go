package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "stats <ruleset.toml>",
		Short: "Report the size of a compiled transition graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, g, _, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			stats := g.Stats()
			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}

			name := set.Name
			if name == "" {
				name = args[0]
			}
			fmt.Println(styleTitle.Render(name))
			fmt.Printf("  rules:     %d\n", len(set.Rules))
			fmt.Printf("  vertices:  %d\n", stats.Vertices)
			fmt.Printf("  edges:     %d\n", stats.Edges)
			fmt.Printf("  terminals: %d\n", stats.Terminals)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit stats as JSON")
	return cmd
}
