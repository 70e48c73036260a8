package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zjrosen/pokecard/internal/card"
	"github.com/zjrosen/pokecard/internal/pokemon"
	"github.com/zjrosen/pokecard/internal/ui/cardview"
)

var renderCmd = &cobra.Command{
	Use:   "render FILE...",
	Short: "Print cards to stdout",
	Long: `Print one card per record without starting the interactive viewer.

Use "-" to read a single record from stdin (see --format). With --json the
derived display state is printed instead, as a JSON array in argument order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

var (
	renderStats   bool
	renderJSON    bool
	renderColumns int
	renderFormat  string
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().BoolVarP(&renderStats, "stats", "s", false, "include the stat list")
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "print the display state as JSON")
	renderCmd.Flags().IntVar(&renderColumns, "columns", 3, "cards per row (0 puts every card on one row)")
	renderCmd.Flags().StringVar(&renderFormat, "format", string(pokemon.FormatJSON), "record format for stdin: json, yaml or toml")
}

func runRender(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	records, err := readRecords(cmd, args)
	if err != nil {
		return err
	}

	vis := card.VisibilityFrom(renderStats || cfg.UI.ShowStats)
	states := make([]card.DisplayState, len(records))
	for i, rec := range records {
		states[i] = s.presenter.Present(rec, vis)
	}

	out := cmd.OutOrStdout()
	if renderJSON {
		data, err := json.MarshalIndent(states, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding display state: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	opts := s.card
	opts.HideButton = true
	_, err = fmt.Fprintln(out, layoutCards(states, opts, renderColumns))
	return err
}

// readRecords loads every argument, reading stdin for "-".
func readRecords(cmd *cobra.Command, args []string) ([]pokemon.Record, error) {
	if len(args) == 1 && args[0] == "-" {
		rec, err := pokemon.Decode(cmd.InOrStdin(), pokemon.Format(renderFormat))
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []pokemon.Record{rec}, nil
	}

	loader := pokemon.NewLoader(nil)
	records, err := loader.LoadAll(cmd.Context(), args)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	return records, nil
}

// layoutCards renders cards side by side, columns per row.
func layoutCards(states []card.DisplayState, opts cardview.Options, columns int) string {
	if columns <= 0 {
		columns = len(states)
	}

	var rows []string
	for start := 0; start < len(states); start += columns {
		end := min(start+columns, len(states))
		var row []string
		for i, state := range states[start:end] {
			if i > 0 {
				row = append(row, " ")
			}
			row = append(row, cardview.Render(state, opts))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}
