// Package cardview draws a Pokémon card in the terminal and holds the
// interactive card model.
package cardview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zjrosen/pokecard/internal/card"
	"github.com/zjrosen/pokecard/internal/contrast"
	"github.com/zjrosen/pokecard/internal/ui/styles"
)

// DefaultWidth is the outer card width used when Options.Width is zero.
const DefaultWidth = 32

// Options configures card rendering.
type Options struct {
	// Width is the outer width of the card in cells, borders included.
	Width int

	// Border is the border character set. The zero value uses the rounded border.
	Border lipgloss.Border

	// HideButton drops the stats toggle button, for static output.
	HideButton bool
}

func (o Options) width() int {
	if o.Width <= 0 {
		return DefaultWidth
	}
	return o.Width
}

func (o Options) border() lipgloss.Border {
	if o.Border == (lipgloss.Border{}) {
		return lipgloss.RoundedBorder()
	}
	return o.Border
}

var titleCaser = cases.Title(language.English)

// Title returns the display name for a Pokémon name: "mr-mime" becomes "Mr-Mime".
func Title(name string) string {
	if name == "" {
		return "???"
	}
	return titleCaser.String(name)
}

// Render draws the card for state.
func Render(state card.DisplayState, opts Options) string {
	return render(state, opts, "")
}

// render draws the card, marking the toggle button with zoneID when set.
func render(state card.DisplayState, opts Options, zoneID string) string {
	width := opts.width()
	innerWidth := max(width-4, 1) // borders plus one cell of padding each side

	sections := []string{
		renderSprite(state.SpriteURL, innerWidth),
		RenderBadges(state.Badges),
	}

	if !opts.HideButton {
		text := state.ButtonText
		if text == "" {
			text = contrast.Pick(state.PrimaryColor)
		}
		button := styles.ButtonStyle(state.PrimaryColor, text).
			Render(state.Visibility.ButtonLabel())
		if zoneID != "" {
			button = zone.Mark(zoneID, button)
		}
		sections = append(sections, "", button)
	}

	if state.Visibility.Visible() {
		sections = append(sections, "", renderStats(state.Stats))
	}

	body := lipgloss.NewStyle().
		Padding(0, 1).
		Width(innerWidth + 2).
		Render(strings.Join(sections, "\n"))

	return styles.RenderGradientBorder(body, Title(state.Name), width, opts.border(), state.PrimaryColor, state.SecondaryColor)
}

// renderSprite renders the sprite reference as an OSC 8 hyperlink so
// terminals that support it can open the image.
func renderSprite(url string, maxWidth int) string {
	if url == "" {
		return styles.HintStyle.Render("no sprite")
	}
	label := styles.SpriteStyle.Render(styles.TruncateString("sprite: "+url, maxWidth))
	return ansi.SetHyperlink(url) + label + ansi.ResetHyperlink()
}

// RenderBadges renders one badge per type, in order, separated by a space.
func RenderBadges(badges []card.Badge) string {
	if len(badges) == 0 {
		return styles.HintStyle.Render("no types")
	}
	parts := make([]string, len(badges))
	for i, b := range badges {
		label := b.Type
		if label == "" {
			label = "?"
		}
		parts[i] = styles.BadgeStyle(b.Background, b.Text).Render(label)
	}
	return strings.Join(parts, " ")
}

// renderStats renders the stat list with names padded to a common width.
func renderStats(stats []card.StatLine) string {
	if len(stats) == 0 {
		return styles.HintStyle.Render("no stats")
	}

	labelWidth := 0
	for _, s := range stats {
		labelWidth = max(labelWidth, runewidth.StringWidth(s.Name))
	}

	lines := make([]string, len(stats))
	for i, s := range stats {
		lines[i] = styles.StatNameStyle.Render(styles.PadRight(s.Name, labelWidth)) +
			" " + styles.StatValueStyle.Render(strconv.Itoa(s.Value))
	}
	return strings.Join(lines, "\n")
}
