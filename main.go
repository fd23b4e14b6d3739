package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"golang.org/x/sync/errgroup"

	"github.com/deevus/sparkline-tui/app"
	"github.com/deevus/sparkline-tui/config"
	"github.com/deevus/sparkline-tui/export"
	"github.com/deevus/sparkline-tui/internal/series"
	"github.com/deevus/sparkline-tui/sparkline"
)

func main() {
	configFlag := flag.String("config", config.DefaultPath(), "path to config file")
	svgFlag := flag.String("svg", "", "write the chart as SVG to this file instead of opening the TUI")
	widthFlag := flag.Float64("width", 0, "SVG width in pixels (default: fallback_width from config)")
	heightFlag := flag.Float64("height", 0, "SVG height in pixels (default: fallback_height from config)")
	windowFlag := flag.Int("window", -1, "show only the last N samples, 0 for all (default: window from config)")
	flag.Parse()

	cfg, err := config.LoadFrom(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	style, err := cfg.Style()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	window := cfg.Data.Window
	if *windowFlag >= 0 {
		window = *windowFlag
	}

	files := flag.Args()
	if len(files) == 0 {
		files = cfg.Data.Files
	}

	loaded, err := loadAll(files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *svgFlag != "" {
		if err := writeSVG(*svgFlag, loaded[0], style, *widthFlag, *heightFlag, window); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	root := app.New(loaded, style, window)

	vxApp, err := vxfw.NewApp(vaxis.Options{})
	if err != nil {
		log.Fatal(err)
	}

	if err := vxApp.Run(root); err != nil {
		log.Fatal(err)
	}
}

// loadAll reads every data file in parallel, preserving argument order.
// With no files it falls back to a generated demo series.
func loadAll(files []string) ([]*series.Series, error) {
	if len(files) == 0 {
		return []*series.Series{series.Demo(240)}, nil
	}

	loaded := make([]*series.Series, len(files))
	var g errgroup.Group
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			s, err := series.LoadFile(path)
			if err != nil {
				return err
			}
			loaded[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return loaded, nil
}

// writeSVG renders one series headlessly. There is no layout system
// here, so the region is unbounded by definition and the style's
// fallback dimensions apply unless overridden by flags.
func writeSVG(path string, s *series.Series, style sparkline.Style, w, h float64, window int) error {
	size := sparkline.Size{Width: style.FallbackWidth, Height: style.FallbackHeight}
	if w > 0 {
		size.Width = w
	}
	if h > 0 {
		size.Height = h
	}

	samples := s.Samples
	if window > 0 && len(samples) > window {
		samples = samples[len(samples)-window:]
	}

	frame, err := sparkline.Render(samples, size, style)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := export.WriteSVG(f, frame, size); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
