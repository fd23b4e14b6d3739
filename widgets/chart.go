package widgets

import (
	"math"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"

	"github.com/deevus/sparkline-tui/internal/series"
	"github.com/deevus/sparkline-tui/raster"
	"github.com/deevus/sparkline-tui/sparkline"
)

// Chart renders one series as a braille sparkline filling its draw
// region. The region is resolved to pixels at 2x4 dots per cell and
// handed to the geometry renderer; the resulting frame is rasterized
// back into styled cells.
type Chart struct {
	window *series.Window
	style  sparkline.Style
}

// NewChart creates a Chart that shows at most windowSize samples
// (0 = unbounded).
func NewChart(style sparkline.Style, windowSize int) *Chart {
	return &Chart{
		window: series.NewWindow(windowSize),
		style:  style,
	}
}

// SetSamples replaces the chart's samples.
func (c *Chart) SetSamples(vals []float64) {
	c.window.Reset(vals)
}

// Push appends one sample, evicting the oldest when the window is full.
func (c *Chart) Push(v float64) {
	c.window.Push(v)
}

// Samples returns the currently visible samples in order.
func (c *Chart) Samples() []float64 {
	return c.window.Values()
}

// Style returns the current style.
func (c *Chart) Style() sparkline.Style {
	return c.style
}

// SetStyle replaces the style for subsequent draws.
func (c *Chart) SetStyle(s sparkline.Style) {
	c.style = s
}

// Draw renders the sparkline into the available region. An unbounded
// axis falls back to the style's fallback dimensions; this substitution
// happens here, at the host boundary, never inside the renderer.
func (c *Chart) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	cols, rows := resolveCells(ctx.Max, c.style)
	s := vxfw.NewSurface(cols, rows, c)

	samples := c.window.Values()
	if len(samples) == 0 {
		return s, nil
	}

	size := sparkline.Size{
		Width:  float64(int(cols) * raster.CellWidth),
		Height: float64(int(rows) * raster.CellHeight),
	}
	frame, err := sparkline.Render(samples, size, c.style)
	if err != nil {
		return vxfw.Surface{}, err
	}

	// One layer per primitive so each keeps its own color.
	w, h := int(size.Width), int(size.Height)
	fill := raster.New(w, h)
	line := raster.New(w, h)
	marks := raster.New(w, h)

	fill.FillPolygon(frame.Fill)
	line.StrokePolyline(frame.Stroke)
	for _, m := range frame.Markers {
		marks.FillDisc(m, frame.PointSize)
	}

	for row := 0; row < int(rows); row++ {
		for col := 0; col < int(cols); col++ {
			mask := fill.MaskAt(col, row) | line.MaskAt(col, row) | marks.MaskAt(col, row)
			if mask == 0 {
				continue
			}
			// Markers win over the line, the line over the fill.
			color := frame.FillColor
			switch {
			case marks.MaskAt(col, row) != 0:
				color = frame.PointColor
			case line.MaskAt(col, row) != 0:
				color = frame.LineColor
			}
			for _, ch := range ctx.Characters(string(rune(0x2800 + int(mask)))) {
				s.WriteCell(uint16(col), uint16(row), vaxis.Cell{
					Character: ch,
					Style:     vaxis.Style{Foreground: CellColor(color)},
				})
			}
		}
	}

	return s, nil
}

// resolveCells maps the layout bound to a cell grid, substituting the
// style's fallback pixel dimensions on unbounded axes.
func resolveCells(max vxfw.Size, style sparkline.Style) (cols, rows uint16) {
	cols, rows = max.Width, max.Height
	if cols == 0 || cols == math.MaxUint16 {
		cols = uint16(math.Ceil(style.FallbackWidth / raster.CellWidth))
	}
	if rows == 0 || rows == math.MaxUint16 {
		rows = uint16(math.Ceil(style.FallbackHeight / raster.CellHeight))
	}
	return cols, rows
}

// CellColor converts an RGBA style color to a terminal color. Cells
// have no alpha channel, so it is dropped.
func CellColor(c sparkline.Color) vaxis.Color {
	return vaxis.RGBColor(c.R, c.G, c.B)
}
