package app

import (
	"log"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"

	"github.com/deevus/sparkline-tui/internal/series"
	"github.com/deevus/sparkline-tui/sparkline"
	"github.com/deevus/sparkline-tui/views"
	"github.com/deevus/sparkline-tui/widgets"
)

// App is the root vxfw widget: one tab per loaded series, each showing
// a single chart view.
type App struct {
	tabBar *widgets.TabBar
	charts []*views.ChartView
}

// New creates the root App widget for the given series, all sharing the
// same initial style and sample window.
func New(list []*series.Series, style sparkline.Style, window int) *App {
	charts := make([]*views.ChartView, len(list))
	labels := make([]string, len(list))
	for i, s := range list {
		charts[i] = views.NewChartView(views.ChartViewParams{
			Series: s,
			Style:  style,
			Window: window,
		})
		labels[i] = s.Name
	}
	return &App{
		tabBar: widgets.NewTabBar(labels),
		charts: charts,
	}
}

// ActiveTab returns the current tab index.
func (a *App) ActiveTab() int {
	return a.tabBar.Active()
}

// SetTab switches to the given tab index.
func (a *App) SetTab(i int) {
	a.tabBar.SetActive(i)
}

func (a *App) activeView() *views.ChartView {
	return a.charts[a.tabBar.Active()]
}

// Draw renders the tab bar and active chart. With a single series the
// tab bar row is omitted.
func (a *App) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, a)

	viewRow := uint16(0)
	if a.tabBar.Len() > 1 {
		tabCtx := ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: 1})
		tabSurf, err := a.tabBar.Draw(tabCtx)
		if err != nil {
			return vxfw.Surface{}, err
		}
		s.AddChild(0, 0, tabSurf)
		viewRow = 1
	}

	viewCtx := ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: ctx.Max.Height - viewRow})
	viewSurf, err := a.activeView().Draw(viewCtx)
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, int(viewRow), viewSurf)

	return s, nil
}

// CaptureEvent handles global keybindings before views process them.
func (a *App) CaptureEvent(ev vaxis.Event) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case vaxis.Key:
		switch {
		case ev.Matches('q'):
			return vxfw.QuitCmd{}, nil
		case ev.Matches('r'):
			if err := a.activeView().Reload(); err != nil {
				log.Printf("error reloading %s: %v", a.activeView().Name(), err)
			}
			return vxfw.ConsumeAndRedraw(), nil
		case ev.Matches(vaxis.KeyTab):
			a.tabBar.Next()
		case ev.Matches(vaxis.KeyTab, vaxis.ModShift):
			a.tabBar.Prev()
		case ev.Keycode >= '1' && ev.Keycode <= '9':
			a.tabBar.SetActive(int(ev.Keycode - '1'))
		default:
			return nil, nil
		}
		return vxfw.ConsumeAndRedraw(), nil
	}
	return nil, nil
}

// HandleEvent delegates to the active view.
func (a *App) HandleEvent(ev vaxis.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	return a.activeView().HandleEvent(ev, phase)
}
