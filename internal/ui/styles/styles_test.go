package styles

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestApplyColorProfile(t *testing.T) {
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	require.NoError(t, ApplyColorProfile("truecolor"))
	require.Equal(t, termenv.TrueColor, lipgloss.ColorProfile())

	require.NoError(t, ApplyColorProfile("ansi256"))
	require.Equal(t, termenv.ANSI256, lipgloss.ColorProfile())

	// auto keeps whatever is active
	require.NoError(t, ApplyColorProfile("auto"))
	require.Equal(t, termenv.ANSI256, lipgloss.ColorProfile())

	require.Error(t, ApplyColorProfile("sixel"))
}

func TestBadgeStyle_Ascii(t *testing.T) {
	require.Equal(t, " fire ", BadgeStyle("#F08030", "#fff").Render("fire"))
	require.Equal(t, "  Show Stats  ", ButtonStyle("#78C850", "#000").Render("Show Stats"))
}
