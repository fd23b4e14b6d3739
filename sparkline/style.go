package sparkline

// Color is an 8-bit RGBA color value.
type Color struct {
	R, G, B, A uint8
}

// Default palette.
var (
	DefaultLineColor  = Color{R: 0x2f, G: 0x81, B: 0xf7, A: 0xff}
	DefaultFillColor  = Color{R: 0x2f, G: 0x81, B: 0xf7, A: 0x66}
	DefaultPointColor = Color{R: 0xf0, G: 0x88, B: 0x3e, A: 0xff}
)

// FillMode selects whether a solid region is drawn against the line,
// and on which side.
type FillMode int

const (
	FillNone FillMode = iota
	FillAbove // region between the line and the top edge
	FillBelow // region between the line and the bottom edge
)

func (m FillMode) String() string {
	switch m {
	case FillAbove:
		return "above"
	case FillBelow:
		return "below"
	default:
		return "none"
	}
}

// PointsMode selects which samples receive a visible marker.
type PointsMode int

const (
	PointsNone PointsMode = iota
	PointsAll
	PointsLast
)

func (m PointsMode) String() string {
	switch m {
	case PointsAll:
		return "all"
	case PointsLast:
		return "last"
	default:
		return "none"
	}
}

// Style bundles the visual attributes of one sparkline.
type Style struct {
	LineWidth    float64 // stroke thickness in pixels
	LineColor    Color
	SharpCorners bool // miter joins instead of round
	FillMode     FillMode
	FillColor    Color
	PointsMode   PointsMode
	PointSize    float64 // marker diameter in pixels
	PointColor   Color

	// Fallback dimensions used by hosts when the layout provides
	// no bound. The renderer itself never reads these; the host
	// substitutes them before calling Render.
	FallbackWidth  float64
	FallbackHeight float64
}

// DefaultStyle returns the style used when nothing is configured:
// a 2px line, no fill, no markers.
func DefaultStyle() Style {
	return Style{
		LineWidth:      2.0,
		LineColor:      DefaultLineColor,
		FillColor:      DefaultFillColor,
		PointSize:      4.0,
		PointColor:     DefaultPointColor,
		FallbackWidth:  300.0,
		FallbackHeight: 100.0,
	}
}
