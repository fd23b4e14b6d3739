package views

import (
	"fmt"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/richtext"
	"github.com/dustin/go-humanize"

	"github.com/deevus/sparkline-tui/internal/series"
	"github.com/deevus/sparkline-tui/sparkline"
	"github.com/deevus/sparkline-tui/widgets"
)

// ChartViewParams holds configuration for creating a ChartView.
type ChartViewParams struct {
	Series *series.Series
	Style  sparkline.Style
	Window int // 0 = show all samples
}

// ChartView displays one series as a sparkline with a value gauge and a
// stats footer. Style toggles (fill, points, corners) are live.
type ChartView struct {
	series *series.Series
	chart  *widgets.Chart
}

// NewChartView creates a ChartView for the given series.
func NewChartView(p ChartViewParams) *ChartView {
	cv := &ChartView{
		series: p.Series,
		chart:  widgets.NewChart(p.Style, p.Window),
	}
	cv.chart.SetSamples(p.Series.Samples)
	return cv
}

// Name returns the series name, used as the tab label.
func (cv *ChartView) Name() string {
	return cv.series.Name
}

// Reload re-reads a file-backed series from disk.
func (cv *ChartView) Reload() error {
	if err := cv.series.Reload(); err != nil {
		return err
	}
	cv.chart.SetSamples(cv.series.Samples)
	return nil
}

// stats returns min, max and last of the visible samples. ok is false
// when no samples are held.
func (cv *ChartView) stats() (lo, hi, last float64, ok bool) {
	samples := cv.chart.Samples()
	if len(samples) == 0 {
		return 0, 0, 0, false
	}
	lo, hi = samples[0], samples[0]
	for _, v := range samples[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, samples[len(samples)-1], true
}

// Draw renders the chart with a gauge and stats footer in the bottom
// two rows.
func (cv *ChartView) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, cv)

	chartHeight := ctx.Max.Height
	footer := chartHeight >= 4
	if footer {
		chartHeight -= 2
	}

	chartCtx := ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: chartHeight})
	chartSurf, err := cv.chart.Draw(chartCtx)
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, 0, chartSurf)

	if !footer {
		return s, nil
	}

	lo, hi, last, ok := cv.stats()
	if !ok {
		return s, nil
	}

	rowCtx := ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: 1})

	gauge := &widgets.RangeGauge{
		Label:    "last",
		Value:    last,
		Min:      lo,
		Max:      hi,
		BarWidth: 20,
		Color:    widgets.CellColor(cv.chart.Style().LineColor),
	}
	gaugeSurf, err := gauge.Draw(rowCtx)
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, int(ctx.Max.Height)-2, gaugeSurf)

	style := cv.chart.Style()
	corners := "round"
	if style.SharpCorners {
		corners = "sharp"
	}
	stats := richtext.New([]vaxis.Segment{
		{Text: fmt.Sprintf("%s samples  ", humanize.Comma(int64(len(cv.chart.Samples())))),
			Style: vaxis.Style{Attribute: vaxis.AttrBold}},
		{Text: fmt.Sprintf("min %s  max %s  ",
			humanize.CommafWithDigits(lo, 2), humanize.CommafWithDigits(hi, 2))},
		{Text: fmt.Sprintf("[f]ill:%s [p]oints:%s [s]corners:%s",
			style.FillMode, style.PointsMode, corners),
			Style: vaxis.Style{Attribute: vaxis.AttrDim}},
	})
	statsSurf, err := stats.Draw(rowCtx)
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, int(ctx.Max.Height)-1, statsSurf)

	return s, nil
}

// HandleEvent toggles style options.
func (cv *ChartView) HandleEvent(ev vaxis.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	key, isKey := ev.(vaxis.Key)
	if !isKey {
		return nil, nil
	}

	style := cv.chart.Style()
	switch {
	case key.Matches('f'):
		style.FillMode = nextFillMode(style.FillMode)
	case key.Matches('p'):
		style.PointsMode = nextPointsMode(style.PointsMode)
	case key.Matches('s'):
		style.SharpCorners = !style.SharpCorners
	default:
		return nil, nil
	}
	cv.chart.SetStyle(style)
	return vxfw.ConsumeAndRedraw(), nil
}

func nextFillMode(m sparkline.FillMode) sparkline.FillMode {
	switch m {
	case sparkline.FillNone:
		return sparkline.FillBelow
	case sparkline.FillBelow:
		return sparkline.FillAbove
	default:
		return sparkline.FillNone
	}
}

func nextPointsMode(m sparkline.PointsMode) sparkline.PointsMode {
	switch m {
	case sparkline.PointsNone:
		return sparkline.PointsLast
	case sparkline.PointsLast:
		return sparkline.PointsAll
	default:
		return sparkline.PointsNone
	}
}
