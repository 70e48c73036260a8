package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/pokecard/internal/card"
	"github.com/zjrosen/pokecard/internal/config"
	"github.com/zjrosen/pokecard/internal/log"
	"github.com/zjrosen/pokecard/internal/ui/cardview"
	"github.com/zjrosen/pokecard/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// localConfigPath is checked before the user config.
const localConfigPath = ".pokecard/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config

	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "pokecard [FILE...]",
	Short: "Pokémon cards in your terminal",
	Long: `Render Pokémon records as type-colored cards.

Records are PokeAPI-shaped JSON, YAML or TOML files. Running pokecard with
files opens the interactive viewer, same as 'pokecard view'.`,
	Version:           version,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: setupLogging,
	RunE:              runView,
	SilenceUsage:      true,
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnFinalize(closeLogging)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/pokecard/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log (path from POKECARD_LOG, default debug.log)")

	addViewFlags(rootCmd)
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("watch", defaults.Watch)
	viper.SetDefault("watch_debounce", defaults.WatchDebounce)
	viper.SetDefault("ui.show_stats", defaults.UI.ShowStats)
	viper.SetDefault("ui.width", defaults.UI.Width)
	viper.SetDefault("ui.border", defaults.UI.Border)
	viper.SetDefault("ui.color_profile", defaults.UI.ColorProfile)
	viper.SetDefault("theme.fallback_border", defaults.Theme.FallbackBorder)
	viper.SetDefault("theme.fallback_badge", defaults.Theme.FallbackBadge)
	viper.SetDefault("contrast.threshold", defaults.Contrast.Threshold)

	// POKECARD_UI_WIDTH=40 overrides ui.width, and so on
	viper.SetEnvPrefix("pokecard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .pokecard/config.yaml (current directory)
		// 2. ~/.config/pokecard/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else if userPath := config.DefaultConfigPath(); userPath != "" {
			viper.SetConfigFile(userPath)
			if _, err := os.Stat(userPath); os.IsNotExist(err) {
				// First run - write the commented template, continue with defaults on failure
				_ = config.WriteDefaultConfig(userPath)
			}
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "pokecard: ignoring config %s: %v\n", viper.ConfigFileUsed(), err)
		}
	}

	cfg = config.Config{}
	_ = viper.Unmarshal(&cfg)
}

// setupLogging initializes the debug log when --debug or POKECARD_DEBUG is set.
func setupLogging(_ *cobra.Command, _ []string) error {
	if os.Getenv("POKECARD_DEBUG") == "" && !debugFlag {
		return nil
	}

	logPath := os.Getenv("POKECARD_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}

	cleanup, err := log.Init(logPath)
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	logCleanup = cleanup

	if name := os.Getenv("POKECARD_LOG_LEVEL"); name != "" {
		level, err := log.ParseLevel(name)
		if err != nil {
			return err
		}
		log.SetMinLevel(level)
	}

	log.Info(log.CatConfig, "Pokecard starting", "version", version, "config", viper.ConfigFileUsed())
	return nil
}

func closeLogging() {
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
}

func debugEnabled() bool {
	return debugFlag || os.Getenv("POKECARD_DEBUG") != ""
}

// configFilePath returns the config file in use, or where one would be written.
func configFilePath() string {
	if path := viper.ConfigFileUsed(); path != "" {
		return path
	}
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// settings is the validated rendering setup shared by every command.
type settings struct {
	presenter card.Presenter
	card      cardview.Options
}

// loadSettings validates cfg and builds the presenter and card options.
func loadSettings() (settings, error) {
	if err := config.ValidateConfig(cfg); err != nil {
		return settings{}, fmt.Errorf("invalid configuration: %w", err)
	}

	palette, err := cfg.Theme.Palette()
	if err != nil {
		return settings{}, fmt.Errorf("invalid theme: %w", err)
	}

	if err := styles.ApplyColorProfile(cfg.UI.ColorProfile); err != nil {
		return settings{}, err
	}

	return settings{
		presenter: card.NewPresenter(palette, cfg.Contrast.Picker()),
		card: cardview.Options{
			Width:  cfg.UI.Width,
			Border: styles.BorderByName(cfg.UI.Border),
		},
	}, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
