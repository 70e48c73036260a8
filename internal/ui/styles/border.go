package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Borders maps ui.border names to lipgloss borders.
var Borders = map[string]lipgloss.Border{
	"rounded": lipgloss.RoundedBorder(),
	"thick":   lipgloss.ThickBorder(),
	"double":  lipgloss.DoubleBorder(),
	"normal":  lipgloss.NormalBorder(),
}

// BorderByName returns the named border, or the rounded border for unknown
// or empty names.
func BorderByName(name string) lipgloss.Border {
	if b, ok := Borders[name]; ok {
		return b
	}
	return lipgloss.RoundedBorder()
}

// GradientColor blends from toward to in CIE L*a*b* space. t is clamped to
// [0, 1]; the endpoints return the inputs unchanged. Unparseable colors
// yield from.
func GradientColor(from, to string, t float64) string {
	if from == to || t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	c1, err := colorful.Hex(from)
	if err != nil {
		return from
	}
	c2, err := colorful.Hex(to)
	if err != nil {
		return from
	}
	return strings.ToUpper(c1.BlendLab(c2, t).Clamped().Hex())
}

// gradient paints border cells along a 45 degree diagonal: from at the
// bottom-left corner, to at the top-right corner.
type gradient struct {
	from, to      string
	width, height int
}

func (g gradient) paint(x, y int, s string) string {
	color := g.from
	if g.from != g.to {
		var tx, ty float64
		if g.width > 1 {
			tx = float64(x) / float64(g.width-1)
		}
		if g.height > 1 {
			ty = float64(g.height-1-y) / float64(g.height-1)
		}
		color = GradientColor(g.from, g.to, (tx+ty)/2)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
}

// RenderGradientBorder renders content inside border with the title embedded
// in the top edge:
//
//	╭─ Title ──────╮
//	│ content      │
//	╰──────────────╯
//
// Border cells blend from `from` (bottom-left) to `to` (top-right). When the
// two colors are equal every cell uses that color.
func RenderGradientBorder(content, title string, width int, border lipgloss.Border, from, to string) string {
	innerWidth := max(width-2, 1)
	width = innerWidth + 2

	constrained := lipgloss.NewStyle().Width(innerWidth).Render(content)
	lines := strings.Split(constrained, "\n")

	g := gradient{from: from, to: to, width: width, height: len(lines) + 2}

	var b strings.Builder
	b.WriteString(buildGradientTop(g, border, title, innerWidth))
	b.WriteString("\n")

	for i, line := range lines {
		y := i + 1
		if w := lipgloss.Width(line); w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		b.WriteString(g.paint(0, y, border.Left))
		b.WriteString(line)
		b.WriteString(g.paint(width-1, y, border.Right))
		b.WriteString("\n")
	}

	bottom := g.height - 1
	b.WriteString(g.paint(0, bottom, border.BottomLeft))
	for x := 1; x <= innerWidth; x++ {
		b.WriteString(g.paint(x, bottom, border.Bottom))
	}
	b.WriteString(g.paint(width-1, bottom, border.BottomRight))

	return b.String()
}

// buildGradientTop creates the top edge with the embedded title. Titles
// that do not fit are truncated; edges narrower than four cells drop the
// title entirely.
func buildGradientTop(g gradient, border lipgloss.Border, title string, innerWidth int) string {
	var b strings.Builder
	b.WriteString(g.paint(0, 0, border.TopLeft))

	x := 1
	if title != "" && innerWidth >= 5 {
		display := TruncateString(title, innerWidth-4)
		b.WriteString(g.paint(x, 0, border.Top))
		b.WriteString(" ")
		b.WriteString(TitleStyle.Render(display))
		b.WriteString(" ")
		x += 3 + lipgloss.Width(display)
	}
	for ; x <= innerWidth; x++ {
		b.WriteString(g.paint(x, 0, border.Top))
	}

	b.WriteString(g.paint(innerWidth+1, 0, border.TopRight))
	return b.String()
}
