package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestRenderGradientBorder_Basic(t *testing.T) {
	result := RenderGradientBorder("content", "Title", 20, lipgloss.RoundedBorder(), "#78C850", "#A040A0")
	lines := plainLines(result)

	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "╭─ Title "), "got %q", lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "╮"))
	assert.Equal(t, "│content           │", lines[1])
	assert.Equal(t, "╰"+strings.Repeat("─", 18)+"╯", lines[2])

	for _, line := range lines {
		assert.Equal(t, 20, ansi.StringWidth(line), "line %q", line)
	}
}

func TestRenderGradientBorder_LongTitleTruncated(t *testing.T) {
	result := RenderGradientBorder("x", "A Very Long Pokemon Name Indeed", 16, lipgloss.RoundedBorder(), "#777777", "#777777")
	lines := plainLines(result)

	assert.Contains(t, lines[0], "...")
	assert.Equal(t, 16, ansi.StringWidth(lines[0]))
}

func TestRenderGradientBorder_NarrowDropsTitle(t *testing.T) {
	result := RenderGradientBorder("x", "Title", 5, lipgloss.NormalBorder(), "#777777", "#777777")
	lines := plainLines(result)

	assert.Equal(t, "┌───┐", lines[0])
}

func TestRenderGradientBorder_EmptyTitle(t *testing.T) {
	result := RenderGradientBorder("x", "", 6, lipgloss.DoubleBorder(), "#777777", "#777777")
	lines := plainLines(result)

	assert.Equal(t, "╔════╗", lines[0])
	assert.Equal(t, "╚════╝", lines[2])
}

func TestRenderGradientBorder_MultilineContent(t *testing.T) {
	result := RenderGradientBorder("one\ntwo\nthree", "T", 12, lipgloss.ThickBorder(), "#F08030", "#A890F0")
	lines := plainLines(result)

	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[3], "┃three"))
}

func TestRenderGradientBorder_UsesBothColors(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	dual := RenderGradientBorder("content", "Title", 20, lipgloss.RoundedBorder(), "#FF0000", "#0000FF")
	// Bottom-left corner takes the first color, top-right the second.
	assert.Contains(t, dual, "38;2;255;0;0m")
	assert.Contains(t, dual, "38;2;0;0;255m")

	mono := RenderGradientBorder("content", "Title", 20, lipgloss.RoundedBorder(), "#FF0000", "#FF0000")
	assert.NotContains(t, mono, "38;2;0;0;255m")
}

func TestGradientColor_Endpoints(t *testing.T) {
	assert.Equal(t, "#78C850", GradientColor("#78C850", "#A040A0", 0))
	assert.Equal(t, "#A040A0", GradientColor("#78C850", "#A040A0", 1))
	assert.Equal(t, "#78C850", GradientColor("#78C850", "#A040A0", -3))
	assert.Equal(t, "#A040A0", GradientColor("#78C850", "#A040A0", 7))
	assert.Equal(t, "#nothex", GradientColor("#nothex", "#A040A0", 0.5))
}

func TestGradientColor_SameColor_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		hex := rapid.StringMatching(`#[0-9A-F]{6}`).Draw(rt, "hex")
		tt := rapid.Float64Range(0, 1).Draw(rt, "t")

		require.Equal(t, hex, GradientColor(hex, hex, tt))
	})
}

func TestGradientColor_MidpointIsValidHex(t *testing.T) {
	mid := GradientColor("#000000", "#FFFFFF", 0.5)
	require.Len(t, mid, 7)
	require.NotEqual(t, "#000000", mid)
	require.NotEqual(t, "#FFFFFF", mid)
}

func TestBorderByName(t *testing.T) {
	assert.Equal(t, lipgloss.ThickBorder(), BorderByName("thick"))
	assert.Equal(t, lipgloss.DoubleBorder(), BorderByName("double"))
	assert.Equal(t, lipgloss.NormalBorder(), BorderByName("normal"))
	assert.Equal(t, lipgloss.RoundedBorder(), BorderByName("rounded"))
	assert.Equal(t, lipgloss.RoundedBorder(), BorderByName(""))
	assert.Equal(t, lipgloss.RoundedBorder(), BorderByName("dotted"))
}
