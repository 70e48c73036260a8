package cardview

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pokecard/internal/card"
	"github.com/zjrosen/pokecard/internal/contrast"
	"github.com/zjrosen/pokecard/internal/pokemon"
	"github.com/zjrosen/pokecard/internal/typecolor"
)

// TestMain initializes the global zone manager and pins the color profile
// so rendered output is stable across terminals.
func TestMain(m *testing.M) {
	zone.NewGlobal()
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func bulbasaur() pokemon.Record {
	return pokemon.Record{
		Name:    "bulbasaur",
		Sprites: pokemon.Sprites{FrontDefault: "https://img.example/1.png"},
		Types:   []pokemon.RawType{pokemon.APIShaped("grass"), pokemon.APIShaped("poison")},
		Stats: []pokemon.Stat{
			{Stat: pokemon.NamedRef{Name: "hp"}, BaseStat: 45},
			{Stat: pokemon.NamedRef{Name: "attack"}, BaseStat: 49},
			{Stat: pokemon.NamedRef{Name: "special-attack"}, BaseStat: 65},
		},
	}
}

func plain(s string) string {
	return ansi.Strip(zone.Scan(s))
}

func TestRender_HiddenStats(t *testing.T) {
	out := plain(Render(card.Present(bulbasaur(), card.StatsHidden), Options{}))

	assert.Contains(t, out, "Bulbasaur")
	assert.Contains(t, out, "grass")
	assert.Contains(t, out, "poison")
	assert.Contains(t, out, "Show Stats")
	assert.NotContains(t, out, "special-attack")
	// 28 inner cells at the default width
	assert.Contains(t, out, "sprite: https://img.examp...")
}

func TestRender_VisibleStatsAligned(t *testing.T) {
	out := plain(Render(card.Present(bulbasaur(), card.StatsVisible), Options{Width: 40}))

	assert.Contains(t, out, "Hide Stats")
	assert.Contains(t, out, "hp             45")
	assert.Contains(t, out, "attack         49")
	assert.Contains(t, out, "special-attack 65")
}

func TestRender_EveryLineHasCardWidth(t *testing.T) {
	for _, width := range []int{20, 32, 48} {
		out := plain(Render(card.Present(bulbasaur(), card.StatsVisible), Options{Width: width}))
		for _, line := range strings.Split(out, "\n") {
			require.Equal(t, width, ansi.StringWidth(line), "width %d line %q", width, line)
		}
	}
}

func TestRender_DefaultWidth(t *testing.T) {
	out := plain(Render(card.Present(bulbasaur(), card.StatsHidden), Options{}))
	first := strings.Split(out, "\n")[0]
	require.Equal(t, DefaultWidth, ansi.StringWidth(first))
	require.True(t, strings.HasPrefix(first, "╭"))
}

func TestRender_BorderOption(t *testing.T) {
	out := plain(Render(card.Present(bulbasaur(), card.StatsHidden), Options{Border: lipgloss.DoubleBorder()}))
	require.True(t, strings.HasPrefix(out, "╔"))
}

func TestRender_EmptyRecord(t *testing.T) {
	out := plain(Render(card.Present(pokemon.Record{}, card.StatsVisible), Options{}))

	assert.Contains(t, out, "???")
	assert.Contains(t, out, "no sprite")
	assert.Contains(t, out, "no types")
	assert.Contains(t, out, "no stats")
}

func TestRender_HideButton(t *testing.T) {
	out := plain(Render(card.Present(bulbasaur(), card.StatsVisible), Options{HideButton: true}))

	assert.NotContains(t, out, "Hide Stats")
	assert.Contains(t, out, "special-attack")
}

func TestRender_SpriteHyperlink(t *testing.T) {
	out := Render(card.Present(bulbasaur(), card.StatsHidden), Options{})
	// OSC 8 open with the sprite URL
	require.Contains(t, out, "\x1b]8;;https://img.example/1.png")
}

func TestRender_SpriteLabelTruncatedLinkKept(t *testing.T) {
	out := Render(card.Present(bulbasaur(), card.StatsHidden), Options{Width: 24})

	// The link target keeps the full URL while the label is cut to fit
	require.Contains(t, out, "\x1b]8;;https://img.example/1.png")
	text := plain(out)
	require.NotContains(t, text, "https://img.example/1.png")
	require.Contains(t, text, "sprite: https://i...")
}

func TestRender_SpriteLabelFitsWideCard(t *testing.T) {
	out := plain(Render(card.Present(bulbasaur(), card.StatsHidden), Options{Width: 48}))
	require.Contains(t, out, "sprite: https://img.example/1.png")
	require.NotContains(t, out, "...")
}

func TestRender_ButtonUsesStateTextColor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	rec := pokemon.Record{Name: "eevee", Types: []pokemon.RawType{pokemon.PlainName("normal")}}
	strict := card.NewPresenter(typecolor.Default(), contrast.NewPicker(0.7))

	buttonLine := func(out string) string {
		for _, line := range strings.Split(out, "\n") {
			if strings.Contains(ansi.Strip(line), "Show Stats") {
				return line
			}
		}
		t.Fatalf("no button line in %q", out)
		return ""
	}

	line := buttonLine(Render(card.Present(rec, card.StatsHidden), Options{}))
	require.Regexp(t, `38;2;0;0;0[;m]`, line)

	line = buttonLine(Render(strict.Present(rec, card.StatsHidden), Options{}))
	require.Regexp(t, `38;2;255;255;255[;m]`, line)
	require.NotRegexp(t, `38;2;0;0;0[;m]`, line)
}

func TestRenderBadges_OrderAndEmptyName(t *testing.T) {
	badges := []card.Badge{
		{Type: "water", Background: "#6890F0", Text: "#fff"},
		{Type: "", Background: "#999999", Text: "#fff"},
	}
	require.Equal(t, " water   ? ", ansi.Strip(RenderBadges(badges)))
}

func TestTitle(t *testing.T) {
	require.Equal(t, "Bulbasaur", Title("bulbasaur"))
	require.Equal(t, "Mr-Mime", Title("mr-mime"))
	require.Equal(t, "???", Title(""))
}
