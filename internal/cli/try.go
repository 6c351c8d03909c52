package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lexway/lexway/pkg/fst"
)

func newTryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "try <ruleset.toml>",
		Short: "Interactively parse inputs against a ruleset",
		Long:  `Try opens an interactive prompt: type an input and see the classified result update with every keystroke. Press esc or ctrl+c to quit.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, g, _, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			name := set.Name
			if name == "" {
				name = args[0]
			}

			p := tea.NewProgram(newTryModel(name, g), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}

// tryModel is the bubbletea model for the interactive explorer. The graph
// is immutable, so re-parsing on every keystroke is free of side effects.
type tryModel struct {
	name  string
	graph *fst.Graph
	input []rune
	res   fst.Result
}

func newTryModel(name string, g *fst.Graph) tryModel {
	return tryModel{name: name, graph: g, res: g.Parse("")}
}

func (m tryModel) Init() tea.Cmd { return nil }

func (m tryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	default:
		return m, nil
	}

	m.res = m.graph.Parse(string(m.input))
	return m, nil
}

func (m tryModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(m.name) + "\n\n")
	fmt.Fprintf(&b, "  input  %s▌\n", string(m.input))
	fmt.Fprintf(&b, "  result %s\n\n", renderOutcome(m.res))
	b.WriteString(styleDim.Render("  esc to quit"))

	return b.String()
}

func renderOutcome(r fst.Result) string {
	switch r.Kind {
	case fst.KindSuccess:
		return styleSuccess.Render(r.Output)
	case fst.KindAmbiguous:
		return styleAmbiguous.Render(strings.Join(r.Outputs, " | "))
	default:
		return styleFailure.Render(r.Reason)
	}
}
