// Package config provides configuration types and defaults for pokecard.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zjrosen/pokecard/internal/contrast"
	"github.com/zjrosen/pokecard/internal/log"
	"github.com/zjrosen/pokecard/internal/typecolor"
)

// Config holds all configuration options for pokecard.
type Config struct {
	Watch         bool           `mapstructure:"watch"`
	WatchDebounce time.Duration  `mapstructure:"watch_debounce"`
	UI            UIConfig       `mapstructure:"ui"`
	Theme         ThemeConfig    `mapstructure:"theme"`
	Contrast      ContrastConfig `mapstructure:"contrast"`
}

// UIConfig holds card rendering options.
type UIConfig struct {
	ShowStats    bool   `mapstructure:"show_stats"`    // Initial stats visibility in the viewer
	Width        int    `mapstructure:"width"`         // Outer card width in cells
	Border       string `mapstructure:"border"`        // rounded (default), thick, double, normal
	ColorProfile string `mapstructure:"color_profile"` // auto (default), truecolor, ansi256, ansi, ascii
}

// ThemeConfig holds type color customization.
type ThemeConfig struct {
	// TypeColors overrides or adds type colors, e.g. fire: "#FF4422".
	TypeColors     map[string]string `mapstructure:"type_colors"`
	FallbackBorder string            `mapstructure:"fallback_border"`
	FallbackBadge  string            `mapstructure:"fallback_badge"`
}

// ContrastConfig holds badge text contrast options.
type ContrastConfig struct {
	// Threshold is the luminance above which badges get black text.
	Threshold float64 `mapstructure:"threshold"`
}

// Width limits for a card.
const (
	MinCardWidth = 20
	MaxCardWidth = 120
)

// Valid values for UIConfig.Border and UIConfig.ColorProfile.
var (
	BorderNames  = []string{"rounded", "thick", "double", "normal"}
	ProfileNames = []string{"auto", "truecolor", "ansi256", "ansi", "ascii"}
)

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Watch:         false,
		WatchDebounce: 250 * time.Millisecond,
		UI: UIConfig{
			ShowStats:    false,
			Width:        32,
			Border:       "rounded",
			ColorProfile: "auto",
		},
		Theme: ThemeConfig{
			FallbackBorder: typecolor.FallbackBorder,
			FallbackBadge:  typecolor.FallbackBadge,
		},
		Contrast: ContrastConfig{
			Threshold: contrast.DefaultThreshold,
		},
	}
}

// Palette builds the immutable type palette described by the theme.
func (t ThemeConfig) Palette() (typecolor.Palette, error) {
	return typecolor.NewPalette(typecolor.Options{
		Overrides:      t.TypeColors,
		FallbackBorder: t.FallbackBorder,
		FallbackBadge:  t.FallbackBadge,
	})
}

// Picker builds the contrast picker described by the config.
func (c ContrastConfig) Picker() contrast.Picker {
	return contrast.NewPicker(c.Threshold)
}

// ValidateConfig checks every section and returns the first problem found.
func ValidateConfig(cfg Config) error {
	if err := ValidateUI(cfg.UI); err != nil {
		return err
	}
	if err := ValidateTheme(cfg.Theme); err != nil {
		return err
	}
	if err := ValidateContrast(cfg.Contrast); err != nil {
		return err
	}
	if cfg.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must not be negative, got %v", cfg.WatchDebounce)
	}
	return nil
}

// ValidateUI checks UI options. Empty values use defaults.
func ValidateUI(ui UIConfig) error {
	if ui.Width != 0 && (ui.Width < MinCardWidth || ui.Width > MaxCardWidth) {
		return fmt.Errorf("ui.width must be between %d and %d, got %d", MinCardWidth, MaxCardWidth, ui.Width)
	}
	if ui.Border != "" && !contains(BorderNames, ui.Border) {
		return fmt.Errorf("ui.border must be one of %s, got %q", quoteAll(BorderNames), ui.Border)
	}
	if ui.ColorProfile != "" && !contains(ProfileNames, ui.ColorProfile) {
		return fmt.Errorf("ui.color_profile must be one of %s, got %q", quoteAll(ProfileNames), ui.ColorProfile)
	}
	return nil
}

// ValidateTheme checks that every configured color is a six digit hex color
// and that type names are lowercase.
func ValidateTheme(theme ThemeConfig) error {
	if _, err := theme.Palette(); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	return nil
}

// ValidateContrast checks the luminance threshold. Zero uses the default.
func ValidateContrast(c ContrastConfig) error {
	if c.Threshold != 0 && (c.Threshold <= 0 || c.Threshold >= 1) {
		return fmt.Errorf("contrast.threshold must be between 0 and 1 (exclusive), got %v", c.Threshold)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func quoteAll(list []string) string {
	quoted := make([]string, len(list))
	for i, v := range list {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}

// DefaultConfigPath returns ~/.config/pokecard/config.yaml, or an empty
// string if the home directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pokecard", "config.yaml")
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Pokecard Configuration

# Reload record files in the viewer when they change on disk
watch: false
# watch_debounce: 250ms

# Card rendering
ui:
  show_stats: false      # Start with the stat list expanded
  width: 32              # Card width in terminal cells (20-120)
  border: rounded        # rounded, thick, double, or normal
  color_profile: auto    # auto, truecolor, ansi256, ansi, or ascii

# Type colors
theme:
  # Override or add type colors (six digit hex, lowercase type names).
  # 'pokecard types set fire "#FF4422"' edits this map for you.
  # type_colors:
  #   fire: "#FF4422"
  #   shadow: "#403040"
  fallback_border: "#777777"   # Border color for unknown types
  fallback_badge: "#999999"    # Badge color for unknown types

# Badge text contrast
contrast:
  # Badges brighter than this luminance (0-1) get black text, others white
  threshold: 0.6
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
