// Package sparkline turns a sequence of numeric samples into drawable
// geometry: a stroked polyline, an optional fill polygon and optional
// point markers. It knows nothing about terminals, SVG or layout —
// hosts rasterize the returned Frame with whatever primitives they have.
package sparkline

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by all validation failures from Render.
var ErrInvalidInput = errors.New("sparkline: invalid input")

// Point is a coordinate in the render target's pixel space.
// Y grows downward; larger sample values map to smaller Y.
type Point struct {
	X, Y float64
}

// Size is the resolved width and height of the render target in pixels.
type Size struct {
	Width, Height float64
}

// Frame is the complete drawable description of one rendered sparkline.
// It is produced fresh on every Render call and owned by the caller.
type Frame struct {
	// Stroke holds one vertex per sample, in sample order.
	Stroke []Point
	// Fill is a closed polygon bounded by the line on one side and the
	// top or bottom region edge on the other. Nil when no fill was
	// requested or when there are fewer than two samples.
	Fill []Point
	// Markers holds the subset of stroke vertices that receive a
	// visible point marker. Empty for PointsNone.
	Markers []Point

	// Stroke and marker attributes, copied from the style so hosts
	// can draw from the Frame alone. Strokes use round end caps;
	// joins are mitered when SharpCorners is set, round otherwise.
	LineWidth    float64
	LineColor    Color
	SharpCorners bool
	FillColor    Color
	PointSize    float64
	PointColor   Color
}

// Render computes the sparkline geometry for samples inside a region of
// the given size. It is a pure function: identical inputs produce
// identical output, and no state survives between calls.
//
// The drawing area is inset by half the line width on every side so the
// stroke is never clipped at the region edges. With a single sample only
// one vertex is produced (no segments, no fill). Flat data (min == max)
// maps every value to the bottom of the usable region; the vertical
// scale is defined as zero in that case so there is no division by zero.
func Render(samples []float64, size Size, style Style) (*Frame, error) {
	if err := validate(samples, size, style); err != nil {
		return nil, err
	}

	lo, hi := minMax(samples)
	usableW := size.Width - style.LineWidth
	usableH := size.Height - style.LineWidth
	inset := style.LineWidth / 2

	var hStep float64
	if len(samples) > 1 {
		hStep = usableW / float64(len(samples)-1)
	}
	var vScale float64
	if hi > lo {
		vScale = usableH / (hi - lo)
	}

	stroke := make([]Point, len(samples))
	for i, v := range samples {
		stroke[i] = Point{
			X: float64(i)*hStep + inset,
			Y: usableH - (v-lo)*vScale + inset,
		}
	}

	f := &Frame{
		Stroke:       stroke,
		LineWidth:    style.LineWidth,
		LineColor:    style.LineColor,
		SharpCorners: style.SharpCorners,
		FillColor:    style.FillColor,
		PointSize:    style.PointSize,
		PointColor:   style.PointColor,
	}

	if style.FillMode != FillNone && len(stroke) > 1 {
		f.Fill = fillPolygon(stroke, size, style.FillMode, inset)
	}

	switch style.PointsMode {
	case PointsAll:
		f.Markers = append([]Point(nil), stroke...)
	case PointsLast:
		f.Markers = []Point{stroke[len(stroke)-1]}
	}

	return f, nil
}

// fillPolygon closes the stroke against the top or bottom region edge.
// The extension nudges past the first and last vertices by the stroke
// inset so the fill reaches under the round end caps.
func fillPolygon(stroke []Point, size Size, mode FillMode, inset float64) []Point {
	edgeY := size.Height
	if mode == FillAbove {
		edgeY = 0
	}
	first := stroke[0]
	last := stroke[len(stroke)-1]

	poly := make([]Point, 0, len(stroke)+4)
	poly = append(poly, stroke...)
	poly = append(poly,
		Point{X: last.X + inset, Y: last.Y},
		Point{X: size.Width, Y: edgeY},
		Point{X: 0, Y: edgeY},
		Point{X: first.X - inset, Y: first.Y},
	)
	return poly
}

func validate(samples []float64, size Size, style Style) error {
	if len(samples) == 0 {
		return fmt.Errorf("%w: samples must not be empty", ErrInvalidInput)
	}
	for i, v := range samples {
		if !isFinite(v) {
			return fmt.Errorf("%w: sample %d (%v) is not finite", ErrInvalidInput, i, v)
		}
	}
	if !isFinite(size.Width) || !isFinite(size.Height) || size.Width < 0 || size.Height < 0 {
		return fmt.Errorf("%w: region size %gx%g must be finite and non-negative", ErrInvalidInput, size.Width, size.Height)
	}
	if !isFinite(style.LineWidth) || style.LineWidth <= 0 {
		return fmt.Errorf("%w: line width %g must be positive", ErrInvalidInput, style.LineWidth)
	}
	if !isFinite(style.PointSize) || style.PointSize <= 0 {
		return fmt.Errorf("%w: point size %g must be positive", ErrInvalidInput, style.PointSize)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func minMax(samples []float64) (lo, hi float64) {
	lo, hi = samples[0], samples[0]
	for _, v := range samples[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
