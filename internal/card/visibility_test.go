package card

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestVisibility_Toggle(t *testing.T) {
	require.Equal(t, StatsVisible, StatsHidden.Toggle())
	require.Equal(t, StatsHidden, StatsVisible.Toggle())
}

func TestVisibility_ZeroValueIsHidden(t *testing.T) {
	var v Visibility
	require.Equal(t, StatsHidden, v)
	require.False(t, v.Visible())
	require.Equal(t, "Show Stats", v.ButtonLabel())
}

func TestVisibility_Labels(t *testing.T) {
	require.Equal(t, "Hide Stats", StatsVisible.ButtonLabel())
	require.Equal(t, "visible", StatsVisible.String())
	require.Equal(t, "hidden", StatsHidden.String())
}

func TestVisibilityFrom(t *testing.T) {
	require.Equal(t, StatsVisible, VisibilityFrom(true))
	require.Equal(t, StatsHidden, VisibilityFrom(false))
}

func TestVisibility_EvenTogglesRoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		start := VisibilityFrom(rapid.Bool().Draw(rt, "start"))
		n := rapid.IntRange(0, 64).Draw(rt, "toggles")

		v := start
		for i := 0; i < n; i++ {
			v = v.Toggle()
		}

		if n%2 == 0 {
			require.Equal(t, start, v)
		} else {
			require.Equal(t, start.Toggle(), v)
		}
	})
}
