// Package export serializes rendered sparkline frames into standalone
// documents that can be viewed outside a terminal.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/deevus/sparkline-tui/sparkline"
)

// WriteSVG writes frame as a complete SVG document of the given pixel
// size. The stroke uses round end caps; the line join follows the
// frame's corner setting. The fill, when present, is drawn first so the
// line stays on top.
func WriteSVG(w io.Writer, frame *sparkline.Frame, size sparkline.Size) error {
	var b strings.Builder

	fmt.Fprintf(&b, "<svg xmlns='http://www.w3.org/2000/svg' width='%g' height='%g' viewBox='0 0 %g %g'>",
		size.Width, size.Height, size.Width, size.Height)

	if len(frame.Fill) > 0 {
		fmt.Fprintf(&b, "<polygon points='%s' fill='%s' fill-opacity='%s' stroke='none'/>",
			points(frame.Fill), hexRGB(frame.FillColor), opacity(frame.FillColor))
	}

	join := "round"
	if frame.SharpCorners {
		join = "miter"
	}
	fmt.Fprintf(&b, "<polyline points='%s' fill='none' stroke='%s' stroke-opacity='%s' stroke-width='%g' stroke-linecap='round' stroke-linejoin='%s'/>",
		points(frame.Stroke), hexRGB(frame.LineColor), opacity(frame.LineColor), frame.LineWidth, join)

	for _, m := range frame.Markers {
		fmt.Fprintf(&b, "<circle cx='%.2f' cy='%.2f' r='%g' fill='%s' fill-opacity='%s'/>",
			m.X, m.Y, frame.PointSize/2, hexRGB(frame.PointColor), opacity(frame.PointColor))
	}

	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func points(pts []sparkline.Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.2f,%.2f", p.X, p.Y)
	}
	return b.String()
}

func hexRGB(c sparkline.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func opacity(c sparkline.Color) string {
	return fmt.Sprintf("%.3f", float64(c.A)/255)
}
