// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#CCCCCC"} // Names, stat values
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"} // Stat names
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#8C8C8C", Dark: "#696969"} // Hints, help text, sprite links

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Toast notification colors
	ToastBorderSuccessColor = StatusSuccessColor
	ToastBorderErrorColor   = StatusErrorColor
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	// Card title
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)

	// Sprite reference line
	SpriteStyle = lipgloss.NewStyle().Foreground(TextMutedColor).Underline(true)

	// Stat list
	StatNameStyle  = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	StatValueStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor).Bold(true)

	// Hints under the card and the empty stat placeholder
	HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(1, 2)

	baseBadgeStyle  = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	baseButtonStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true)
)

// BadgeStyle returns the style for a type badge with the given background
// and text colors.
func BadgeStyle(background, text string) lipgloss.Style {
	return baseBadgeStyle.
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color(text))
}

// ButtonStyle returns the stats toggle button style. The button is tinted
// with the card's primary color so it reads as part of the card.
func ButtonStyle(background, text string) lipgloss.Style {
	return baseButtonStyle.
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color(text))
}

// Color profiles accepted by ui.color_profile.
var profiles = map[string]termenv.Profile{
	"truecolor": termenv.TrueColor,
	"ansi256":   termenv.ANSI256,
	"ansi":      termenv.ANSI,
	"ascii":     termenv.Ascii,
}

// ApplyColorProfile forces the lipgloss color profile. "auto" and the empty
// string keep the profile detected from the terminal.
func ApplyColorProfile(name string) error {
	if name == "" || name == "auto" {
		return nil
	}
	p, ok := profiles[name]
	if !ok {
		return fmt.Errorf("unknown color profile: %s", name)
	}
	lipgloss.SetColorProfile(p)
	return nil
}
