// Package raster draws sparkline geometry onto a grid of braille
// micro-pixels. Each terminal cell holds a 2x4 block of dots, which is
// the finest monochrome resolution available without pixel graphics.
package raster

import (
	"math"
	"sort"

	"github.com/deevus/sparkline-tui/sparkline"
)

// Pixels per terminal cell on each axis.
const (
	CellWidth  = 2
	CellHeight = 4
)

// Canvas is a monochrome pixel buffer backed by per-cell braille dot
// masks. Out-of-bounds pixels are clipped silently.
type Canvas struct {
	w, h  int // in pixels
	cols  int
	rows  int
	masks [][]uint8
}

// New creates a canvas that is wPx by hPx pixels. Dimensions are
// rounded up to whole cells.
func New(wPx, hPx int) *Canvas {
	cols := (wPx + CellWidth - 1) / CellWidth
	rows := (hPx + CellHeight - 1) / CellHeight
	m := make([][]uint8, rows)
	for i := range m {
		m[i] = make([]uint8, cols)
	}
	return &Canvas{w: wPx, h: hPx, cols: cols, rows: rows, masks: m}
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (w, h int) {
	return c.w, c.h
}

// Cells returns the canvas dimensions in terminal cells.
func (c *Canvas) Cells() (cols, rows int) {
	return c.cols, c.rows
}

// Set turns on the pixel at (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.masks[y/CellHeight][x/CellWidth] |= dotBit(x%CellWidth, y%CellHeight)
}

// MaskAt returns the dot mask of the cell at (col, row), zero when the
// cell is empty or out of range.
func (c *Canvas) MaskAt(col, row int) uint8 {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return 0
	}
	return c.masks[row][col]
}

// Rune returns the braille rune for the cell at (col, row), or a space
// when no dot in the cell is set.
func (c *Canvas) Rune(col, row int) rune {
	mask := c.MaskAt(col, row)
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

// Braille dot layout: the low nibble plus 0x40 covers the left column
// top to bottom, the mirrored bits cover the right column.
func dotBit(dx, dy int) uint8 {
	left := [CellHeight]uint8{0x01, 0x02, 0x04, 0x40}
	right := [CellHeight]uint8{0x08, 0x10, 0x20, 0x80}
	if dx == 0 {
		return left[dy]
	}
	return right[dy]
}

// StrokePolyline draws line segments between consecutive vertices using
// Bresenham stepping. A single vertex degenerates to one pixel.
func (c *Canvas) StrokePolyline(pts []sparkline.Point) {
	if len(pts) == 0 {
		return
	}
	if len(pts) == 1 {
		c.Set(px(pts[0].X), px(pts[0].Y))
		return
	}
	for i := 1; i < len(pts); i++ {
		c.line(px(pts[i-1].X), px(pts[i-1].Y), px(pts[i].X), px(pts[i].Y))
	}
}

func (c *Canvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillPolygon fills the closed polygon with an even-odd scanline pass.
// The last vertex is treated as connected back to the first.
func (c *Canvas) FillPolygon(pts []sparkline.Point) {
	if len(pts) < 3 {
		return
	}
	for y := 0; y < c.h; y++ {
		fy := float64(y) + 0.5
		var xs []float64
		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			if (a.Y <= fy) == (b.Y <= fy) {
				continue
			}
			t := (fy - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Ceil(xs[i] - 0.5))
			x1 := int(math.Floor(xs[i+1] - 0.5))
			for x := x0; x <= x1; x++ {
				c.Set(x, y)
			}
		}
	}
}

// FillDisc fills a disc of the given diameter centered on p. Diameters
// up to one pixel set only the center pixel.
func (c *Canvas) FillDisc(p sparkline.Point, diameter float64) {
	r := diameter / 2
	if r <= 0.5 {
		c.Set(px(p.X), px(p.Y))
		return
	}
	x0, x1 := px(p.X-r), px(p.X+r)
	y0, y1 := px(p.Y-r), px(p.Y+r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - p.X
			dy := float64(y) + 0.5 - p.Y
			if dx*dx+dy*dy <= r*r {
				c.Set(x, y)
			}
		}
	}
}

// px maps a continuous coordinate to the pixel containing it.
func px(v float64) int {
	return int(math.Floor(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
