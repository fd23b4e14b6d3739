package widgets

import (
	"fmt"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/dustin/go-humanize"
)

// RangeGauge shows where a value sits inside a [Min, Max] range.
//
//	last [████████████░░░░░░░░]  13.37
type RangeGauge struct {
	Label    string  // 4-char left column, e.g. "last"
	Value    float64
	Min, Max float64
	BarWidth int // character width of the bar (excluding brackets)
	Color    vaxis.Color
}

const (
	barFilled = '█' // U+2588
	barEmpty  = '░' // U+2591
)

// fraction returns the position of Value within [Min, Max], clamped to
// [0, 1]. A flat range maps to 1: the value is at its own maximum.
func (g *RangeGauge) fraction() float64 {
	if g.Max <= g.Min {
		return 1
	}
	f := (g.Value - g.Min) / (g.Max - g.Min)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return f
}

// Draw renders the gauge as a single row.
func (g *RangeGauge) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	s := vxfw.NewSurface(ctx.Max.Width, 1, g)

	col := uint16(0)

	// Label (left-padded to 4 chars)
	label := fmt.Sprintf("%-4s ", g.Label)
	for _, ch := range ctx.Characters(label) {
		s.WriteCell(col, 0, vaxis.Cell{
			Character: ch,
			Style:     vaxis.Style{Attribute: vaxis.AttrBold},
		})
		col += uint16(ch.Width)
	}

	// Opening bracket
	for _, ch := range ctx.Characters("[") {
		s.WriteCell(col, 0, vaxis.Cell{Character: ch})
		col += uint16(ch.Width)
	}

	// Bar fill
	filled := int(g.fraction() * float64(g.BarWidth))
	for i := 0; i < g.BarWidth; i++ {
		ch := barEmpty
		style := vaxis.Style{Attribute: vaxis.AttrDim}
		if i < filled {
			ch = barFilled
			style = vaxis.Style{Foreground: g.Color}
		}
		for _, c := range ctx.Characters(string(ch)) {
			s.WriteCell(col, 0, vaxis.Cell{Character: c, Style: style})
			col += uint16(c.Width)
		}
	}

	// Closing bracket + value
	text := fmt.Sprintf("]  %s", humanize.CommafWithDigits(g.Value, 2))
	for _, ch := range ctx.Characters(text) {
		s.WriteCell(col, 0, vaxis.Cell{Character: ch})
		col += uint16(ch.Width)
	}

	return s, nil
}
