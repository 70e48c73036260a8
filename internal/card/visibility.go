package card

// Visibility is the two-state stats toggle: StatsHidden or StatsVisible.
// Toggle is the only transition and there is no terminal state.
type Visibility int

const (
	StatsHidden Visibility = iota
	StatsVisible
)

// Toggle flips between StatsHidden and StatsVisible.
func (v Visibility) Toggle() Visibility {
	if v == StatsVisible {
		return StatsHidden
	}
	return StatsVisible
}

// Visible reports whether the stat list is shown.
func (v Visibility) Visible() bool {
	return v == StatsVisible
}

// ButtonLabel is the text of the control that flips v.
func (v Visibility) ButtonLabel() string {
	if v == StatsVisible {
		return "Hide Stats"
	}
	return "Show Stats"
}

func (v Visibility) String() string {
	if v == StatsVisible {
		return "visible"
	}
	return "hidden"
}

// VisibilityFrom maps a boolean config flag onto a Visibility.
func VisibilityFrom(show bool) Visibility {
	if show {
		return StatsVisible
	}
	return StatsHidden
}

// MarshalText encodes v as "visible" or "hidden".
func (v Visibility) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
