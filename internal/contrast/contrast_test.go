package contrast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPick_Extremes(t *testing.T) {
	require.Equal(t, Black, Pick("#FFFFFF"))
	require.Equal(t, White, Pick("#000000"))
}

func TestPick_Empty(t *testing.T) {
	require.Equal(t, White, Pick(""))

	c, err := TextColor("")
	require.NoError(t, err)
	require.Equal(t, White, c)
}

func TestPick_WithoutHashPrefix(t *testing.T) {
	require.Equal(t, Black, Pick("ffffff"))
	require.Equal(t, White, Pick("000000"))
}

func TestTextColor_TypeColors(t *testing.T) {
	tests := []struct {
		name string
		bg   string
		want string
	}{
		{"grass is light", "#78C850", Black},
		{"electric is light", "#F8D030", Black},
		{"flying is light", "#A890F0", Black},
		{"fire is dark", "#F08030", White},
		{"water is dark", "#6890F0", White},
		{"poison is dark", "#A040A0", White},
		{"lowercase digits", "#78c850", Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TextColor(tt.bg)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTextColor_Malformed(t *testing.T) {
	tests := []string{
		"#777",
		"#12345",
		"#1234567",
		"#GGGGGG",
		"#12345g",
		"##FFFFFF",
		"#+12345",
		"red",
	}

	for _, bg := range tests {
		t.Run(bg, func(t *testing.T) {
			got, err := TextColor(bg)
			require.ErrorIs(t, err, ErrMalformedHex)
			require.Equal(t, White, got, "malformed input keeps white text")
			require.Equal(t, White, Pick(bg))
		})
	}
}

func TestLuminance(t *testing.T) {
	l, err := Luminance("#FFFFFF")
	require.NoError(t, err)
	require.InDelta(t, 1.0, l, 1e-9)

	l, err = Luminance("#000000")
	require.NoError(t, err)
	require.InDelta(t, 0.0, l, 1e-9)

	// Pure green carries the heaviest weight
	l, err = Luminance("#00FF00")
	require.NoError(t, err)
	require.InDelta(t, 0.587, l, 1e-9)
}

func TestNewPicker_Threshold(t *testing.T) {
	require.Equal(t, DefaultThreshold, NewPicker(0).Threshold())
	require.Equal(t, DefaultThreshold, NewPicker(1.5).Threshold())
	require.Equal(t, DefaultThreshold, Picker{}.Threshold())

	strict := NewPicker(0.9)
	require.Equal(t, 0.9, strict.Threshold())
	// Grass is bright enough for the default threshold but not for 0.9
	require.Equal(t, White, strict.Pick("#78C850"))
}

func TestPick_OnlyBlackOrWhite_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := rapid.IntRange(0, 255).Draw(rt, "r")
		g := rapid.IntRange(0, 255).Draw(rt, "g")
		b := rapid.IntRange(0, 255).Draw(rt, "b")
		hex := fmt.Sprintf("#%02X%02X%02X", r, g, b)

		first := Pick(hex)
		require.Contains(t, []string{Black, White}, first)
		require.Equal(t, first, Pick(hex), "pick must be deterministic")

		got, err := TextColor(hex)
		require.NoError(t, err)
		require.Equal(t, first, got)
	})
}

func TestPick_MatchesLuminance_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := rapid.IntRange(0, 255).Draw(rt, "r")
		g := rapid.IntRange(0, 255).Draw(rt, "g")
		b := rapid.IntRange(0, 255).Draw(rt, "b")
		hex := fmt.Sprintf("%02x%02x%02x", r, g, b)

		want := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
		l, err := Luminance(hex)
		require.NoError(t, err)
		require.InDelta(t, want, l, 1e-9)

		if l > DefaultThreshold {
			require.Equal(t, Black, Pick(hex))
		} else {
			require.Equal(t, White, Pick(hex))
		}
	})
}
