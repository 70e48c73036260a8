// Package contrast picks a readable text color for a colored background.
//
// Brightness is the weighted luma (0.299R + 0.587G + 0.114B) / 255. Anything
// brighter than the threshold gets black text, everything else white.
package contrast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Text colors returned by the picker.
const (
	Black = "#000"
	White = "#fff"
)

// DefaultThreshold is the luminance above which black text is used.
const DefaultThreshold = 0.6

// ErrMalformedHex is returned for a background that is not six hex digits
// with an optional leading "#".
var ErrMalformedHex = errors.New("malformed hex color")

// ParseHex parses "#RRGGBB" or "RRGGBB".
func ParseHex(hex string) (colorful.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrMalformedHex, hex)
	}
	// ParseUint rejects signs and non-hex runes, which colorful's Sscanf
	// based parser would partially accept.
	if _, err := strconv.ParseUint(digits, 16, 32); err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrMalformedHex, hex)
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrMalformedHex, hex)
	}
	return c, nil
}

// Luminance returns the weighted brightness of hex in [0, 1].
func Luminance(hex string) (float64, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return 0, err
	}
	r, g, b := c.RGB255()
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255, nil
}

// Picker chooses black or white text against a background.
type Picker struct {
	threshold float64
}

// NewPicker returns a Picker using threshold. Values outside (0, 1) fall
// back to DefaultThreshold.
func NewPicker(threshold float64) Picker {
	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultThreshold
	}
	return Picker{threshold: threshold}
}

// Threshold returns the luminance cut-off in use.
func (p Picker) Threshold() float64 {
	if p.threshold == 0 {
		return DefaultThreshold
	}
	return p.threshold
}

// TextColor returns Black for bright backgrounds and White otherwise.
// An empty background yields White. Anything else that is not a six digit
// hex color yields ErrMalformedHex.
func (p Picker) TextColor(bg string) (string, error) {
	if bg == "" {
		return White, nil
	}
	l, err := Luminance(bg)
	if err != nil {
		return White, err
	}
	if l > p.Threshold() {
		return Black, nil
	}
	return White, nil
}

// Pick is TextColor without the error: malformed backgrounds get White.
func (p Picker) Pick(bg string) string {
	c, _ := p.TextColor(bg)
	return c
}

var defaultPicker = NewPicker(DefaultThreshold)

// TextColor applies the default threshold.
func TextColor(bg string) (string, error) {
	return defaultPicker.TextColor(bg)
}

// Pick applies the default threshold and never fails.
func Pick(bg string) string {
	return defaultPicker.Pick(bg)
}
