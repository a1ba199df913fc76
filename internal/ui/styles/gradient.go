package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders text with colors blended from one end to the other,
// one color per grapheme cluster.
func Gradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	colors := Blend(len(clusters), from, to)
	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().Foreground(colors[i]).Render(cluster))
	}
	return b.String()
}

// Blend returns n colors going from from to to in HCL space. Colors that
// are not #rrggbb blend from neutral gray. The ends are from and to
// unchanged.
func Blend(n int, from, to lipgloss.Color) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{from}
	}

	c1 := toColorful(from)
	c2 := toColorful(to)
	out := make([]lipgloss.Color, n)
	for i := 1; i < n-1; i++ {
		t := float64(i) / float64(n-1)
		out[i] = lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
	}
	out[0], out[n-1] = from, to
	return out
}

func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	gray, _ := colorful.MakeColor(color.Gray{Y: 128})
	return gray
}
