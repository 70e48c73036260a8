// Package card derives everything a renderer needs to draw a Pokémon card:
// the border gradient colors, one colored badge per type, and the stats
// visibility.
package card

import (
	"github.com/zjrosen/pokecard/internal/contrast"
	"github.com/zjrosen/pokecard/internal/log"
	"github.com/zjrosen/pokecard/internal/pokemon"
	"github.com/zjrosen/pokecard/internal/typecolor"
)

// Badge is one type label with its background and readable text color.
type Badge struct {
	Type       string `json:"type"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// StatLine is one name/value row of the stat list.
type StatLine struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DisplayState is recomputed on every render and never stored.
type DisplayState struct {
	Name           string     `json:"name"`
	SpriteURL      string     `json:"sprite_url,omitempty"`
	Types          []string   `json:"types"`
	PrimaryType    string     `json:"primary_type"`
	SecondaryType  string     `json:"secondary_type"`
	PrimaryColor   string     `json:"primary_color"`
	SecondaryColor string     `json:"secondary_color"`
	ButtonText     string     `json:"button_text"` // Text color on the primary-colored toggle button
	Badges         []Badge    `json:"badges"`
	Stats          []StatLine `json:"stats"`
	Visibility     Visibility `json:"stats_visibility"`
}

// DualType reports whether the border blends two different colors.
func (d DisplayState) DualType() bool {
	return d.PrimaryColor != d.SecondaryColor
}

// Presenter composes a palette and a contrast picker.
type Presenter struct {
	palette typecolor.Palette
	picker  contrast.Picker
}

// NewPresenter returns a Presenter for the given palette and picker.
func NewPresenter(palette typecolor.Palette, picker contrast.Picker) Presenter {
	return Presenter{palette: palette, picker: picker}
}

// DefaultPresenter uses the built-in palette and the default threshold.
func DefaultPresenter() Presenter {
	return NewPresenter(typecolor.Default(), contrast.NewPicker(contrast.DefaultThreshold))
}

// Palette returns the palette colors are resolved against.
func (p Presenter) Palette() typecolor.Palette {
	return p.palette
}

// Picker returns the contrast picker used for badge and button text.
func (p Presenter) Picker() contrast.Picker {
	return p.picker
}

// Present derives the display state of rec.
//
// An empty first type counts as missing, so the primary type becomes
// typecolor.UnknownType. A missing or empty second type mirrors the
// primary. A secondary type without a palette entry reuses the primary
// color rather than introducing a second neutral.
func (p Presenter) Present(rec pokemon.Record, vis Visibility) DisplayState {
	types := rec.TypeNames()

	primary := typecolor.UnknownType
	if len(types) > 0 && types[0] != "" {
		primary = types[0]
	}
	secondary := primary
	if len(types) > 1 && types[1] != "" {
		secondary = types[1]
	}

	primaryColor := p.palette.Border(primary)
	secondaryColor, ok := p.palette.Lookup(secondary)
	if !ok {
		secondaryColor = primaryColor
	}

	badges := make([]Badge, len(types))
	for i, t := range types {
		bg := p.palette.Badge(t)
		text, err := p.picker.TextColor(bg)
		if err != nil {
			log.Warn(log.CatCard, "Badge color is not a six digit hex, using white text",
				"type", t, "color", bg)
		}
		badges[i] = Badge{Type: t, Background: bg, Text: text}
	}

	stats := make([]StatLine, len(rec.Stats))
	for i, s := range rec.Stats {
		stats[i] = StatLine{Name: s.Stat.Name, Value: s.BaseStat}
	}

	return DisplayState{
		Name:           rec.Name,
		SpriteURL:      rec.Sprites.FrontDefault,
		Types:          types,
		PrimaryType:    primary,
		SecondaryType:  secondary,
		PrimaryColor:   primaryColor,
		SecondaryColor: secondaryColor,
		ButtonText:     p.picker.Pick(primaryColor),
		Badges:         badges,
		Stats:          stats,
		Visibility:     vis,
	}
}

// Present derives rec's display state with the default presenter.
func Present(rec pokemon.Record, vis Visibility) DisplayState {
	return DefaultPresenter().Present(rec, vis)
}
