// Package typecolor maps Pokémon type names to display colors.
//
// A Palette is built once at startup from the defaults plus any configured
// overrides and is read-only afterwards, so it can be shared between
// goroutines without locking.
package typecolor

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/zjrosen/pokecard/internal/contrast"
)

// UnknownType is the type name used when a record carries no types.
const UnknownType = "unknown"

// Fallback colors for names missing from the palette. Border lookups and
// badge lookups use different neutrals.
const (
	FallbackBorder = "#777777"
	FallbackBadge  = "#999999"
)

// Canonical order of the built-in types, used for listings.
var typeOrder = []string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}

var defaultColors = map[string]string{
	"normal":   "#A8A878",
	"fire":     "#F08030",
	"water":    "#6890F0",
	"electric": "#F8D030",
	"grass":    "#78C850",
	"ice":      "#98D8D8",
	"fighting": "#C03028",
	"poison":   "#A040A0",
	"ground":   "#E0C068",
	"flying":   "#A890F0",
	"psychic":  "#F85888",
	"bug":      "#A8B820",
	"rock":     "#B8A038",
	"ghost":    "#705898",
	"dragon":   "#7038F8",
	"dark":     "#705848",
	"steel":    "#B8B8D0",
	"fairy":    "#EE99AC",
}

// Palette is an immutable type name to color table.
type Palette struct {
	colors         map[string]string
	fallbackBorder string
	fallbackBadge  string
}

// Options customizes a palette. Zero values keep the defaults.
type Options struct {
	// Overrides replaces or adds type colors. Keys must be lowercase.
	Overrides map[string]string
	// FallbackBorder replaces FallbackBorder.
	FallbackBorder string
	// FallbackBadge replaces FallbackBadge.
	FallbackBadge string
}

var defaultPalette = Palette{
	colors:         defaultColors,
	fallbackBorder: FallbackBorder,
	fallbackBadge:  FallbackBadge,
}

// Default returns the built-in palette.
func Default() Palette {
	return defaultPalette
}

// NewPalette returns the built-in palette with opts applied.
func NewPalette(opts Options) (Palette, error) {
	colors := maps.Clone(defaultColors)

	for name, hex := range opts.Overrides {
		if name == "" || name != strings.ToLower(name) {
			return Palette{}, fmt.Errorf("type color %q: type names must be lowercase", name)
		}
		if _, err := contrast.ParseHex(hex); err != nil {
			return Palette{}, fmt.Errorf("type color %q: %w", name, err)
		}
		colors[name] = normalizeHex(hex)
	}

	p := Palette{
		colors:         colors,
		fallbackBorder: FallbackBorder,
		fallbackBadge:  FallbackBadge,
	}

	if opts.FallbackBorder != "" {
		if _, err := contrast.ParseHex(opts.FallbackBorder); err != nil {
			return Palette{}, fmt.Errorf("fallback border: %w", err)
		}
		p.fallbackBorder = normalizeHex(opts.FallbackBorder)
	}
	if opts.FallbackBadge != "" {
		if _, err := contrast.ParseHex(opts.FallbackBadge); err != nil {
			return Palette{}, fmt.Errorf("fallback badge: %w", err)
		}
		p.fallbackBadge = normalizeHex(opts.FallbackBadge)
	}

	return p, nil
}

// normalizeHex upper-cases and prefixes an already validated color.
func normalizeHex(hex string) string {
	return "#" + strings.ToUpper(strings.TrimPrefix(hex, "#"))
}

// Lookup returns the color mapped to name. The match is case-sensitive.
func (p Palette) Lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	c, ok := p.colors[name]
	return c, ok
}

// Resolve returns the color mapped to name, or fallback when name is empty
// or not in the palette.
func (p Palette) Resolve(name, fallback string) string {
	if c, ok := p.Lookup(name); ok {
		return c
	}
	return fallback
}

// Border resolves a color for the card border.
func (p Palette) Border(name string) string {
	return p.Resolve(name, p.FallbackBorder())
}

// Badge resolves a background color for a type badge.
func (p Palette) Badge(name string) string {
	return p.Resolve(name, p.FallbackBadge())
}

// FallbackBorder returns the neutral used for unmapped border lookups.
func (p Palette) FallbackBorder() string {
	if p.fallbackBorder == "" {
		return FallbackBorder
	}
	return p.fallbackBorder
}

// FallbackBadge returns the neutral used for unmapped badge lookups.
func (p Palette) FallbackBadge() string {
	if p.fallbackBadge == "" {
		return FallbackBadge
	}
	return p.fallbackBadge
}

// Entry is one row of a palette listing.
type Entry struct {
	Name  string
	Color string
}

// Entries lists the built-in types in canonical order followed by any
// extra override names sorted alphabetically.
func (p Palette) Entries() []Entry {
	entries := make([]Entry, 0, len(p.colors))
	seen := make(map[string]bool, len(typeOrder))
	for _, name := range typeOrder {
		if c, ok := p.colors[name]; ok {
			entries = append(entries, Entry{Name: name, Color: c})
			seen[name] = true
		}
	}

	extra := slices.Sorted(maps.Keys(p.colors))
	for _, name := range extra {
		if seen[name] {
			continue
		}
		entries = append(entries, Entry{Name: name, Color: p.colors[name]})
	}
	return entries
}
