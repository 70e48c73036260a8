package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/pokecard/internal/app"
	"github.com/zjrosen/pokecard/internal/log"
	"github.com/zjrosen/pokecard/internal/pokemon"
)

var viewCmd = &cobra.Command{
	Use:   "view FILE...",
	Short: "Open records in the interactive card viewer",
	Long: `Open one or more records in the interactive viewer.

Keys: s/enter toggles the stat list, h/l cycle between cards, r reloads the
file from disk, ? shows all keys, q quits. The stats button also responds to
mouse clicks.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	addViewFlags(viewCmd)
}

// addViewFlags registers the viewer flags on cmd. The root command shares
// them so 'pokecard FILE' behaves like 'pokecard view FILE'.
func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("watch", "w", false, "reload records when their files change")
	cmd.Flags().BoolP("stats", "s", false, "start with the stat list expanded")
}

// applyViewFlags overrides config values with flags the user set.
func applyViewFlags(cmd *cobra.Command) {
	if cmd.Flags().Changed("watch") {
		cfg.Watch, _ = cmd.Flags().GetBool("watch")
	}
	if cmd.Flags().Changed("stats") {
		cfg.UI.ShowStats, _ = cmd.Flags().GetBool("stats")
	}
}

func runView(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	applyViewFlags(cmd)

	s, err := loadSettings()
	if err != nil {
		return err
	}

	loader := pokemon.NewCachedLoader()
	records, err := loader.LoadAll(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("loading records: %w", err)
	}
	log.Info(log.CatLoad, "Loaded records", "count", len(records), "config", viper.ConfigFileUsed())

	model := app.New(app.Config{
		Paths:         args,
		Records:       records,
		Presenter:     s.presenter,
		Card:          s.card,
		ShowStats:     cfg.UI.ShowStats,
		Loader:        loader,
		Watch:         cfg.Watch,
		WatchDebounce: cfg.WatchDebounce,
		DebugMode:     debugEnabled(),
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)

	_, err = p.Run()

	// Clean up watcher resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
