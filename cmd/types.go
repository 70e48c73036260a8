package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zjrosen/pokecard/internal/card"
	"github.com/zjrosen/pokecard/internal/config"
	"github.com/zjrosen/pokecard/internal/log"
	"github.com/zjrosen/pokecard/internal/typecolor"
	"github.com/zjrosen/pokecard/internal/ui/styles"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List type colors with their badge text color",
	Long: `List every type in the palette, built-in types first, then types added
in the config. Each row shows the color, a sample badge and the text color
chosen for it.`,
	Args: cobra.NoArgs,
	RunE: runTypes,
}

var typesSetCmd = &cobra.Command{
	Use:   "set TYPE HEX",
	Short: "Override or add a type color in the config file",
	Example: `  pokecard types set fire "#FF4422"
  pokecard types set shadow 403040`,
	Args: cobra.ExactArgs(2),
	RunE: runTypesSet,
}

var typesUnsetCmd = &cobra.Command{
	Use:   "unset TYPE",
	Short: "Remove a type color override from the config file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTypesUnset,
}

func init() {
	rootCmd.AddCommand(typesCmd)
	typesCmd.AddCommand(typesSetCmd, typesUnsetCmd)
}

func runTypes(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	return writeTypeTable(cmd.OutOrStdout(), s.presenter)
}

// nameWidth fits every built-in type name.
const nameWidth = 10

func writeTypeTable(w io.Writer, presenter card.Presenter) error {
	palette := presenter.Palette()
	picker := presenter.Picker()

	row := func(name, color string) error {
		text := picker.Pick(color)
		_, err := fmt.Fprintf(w, "%s %s %s %s\n",
			styles.PadRight(name, nameWidth),
			color,
			styles.BadgeStyle(color, text).Render(styles.PadRight(name, nameWidth)),
			text,
		)
		return err
	}

	for _, e := range palette.Entries() {
		if err := row(e.Name, e.Color); err != nil {
			return err
		}
	}
	if err := row(typecolor.UnknownType, palette.FallbackBadge()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s %s (border fallback)\n",
		styles.PadRight("", nameWidth), palette.FallbackBorder())
	return err
}

func runTypesSet(cmd *cobra.Command, args []string) error {
	path := configFilePath()
	if err := config.SaveTypeColor(path, args[0], args[1]); err != nil {
		return fmt.Errorf("saving type color: %w", err)
	}
	log.Info(log.CatConfig, "Saved type color", "type", args[0], "color", args[1], "path", path)
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", args[0], path)
	return err
}

func runTypesUnset(cmd *cobra.Command, args []string) error {
	path := configFilePath()
	if err := config.RemoveTypeColor(path, args[0]); err != nil {
		return fmt.Errorf("removing type color: %w", err)
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", args[0], path)
	return err
}
