package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/deevus/sparkline-tui/config"
	"github.com/deevus/sparkline-tui/sparkline"
)

func TestLoad_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	err := os.WriteFile(path, []byte(`
[chart]
line_width = 1.5
line_color = "#ff0000"
sharp_corners = true
fill = "below"
fill_color = "#00ff0080"
points = "last"
point_size = 3
point_color = "#00f"

[data]
files = ["a.dat", "b.dat"]
window = 120
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Data.Files) != 2 {
		t.Fatalf("expected 2 data files, got %d", len(cfg.Data.Files))
	}
	if cfg.Data.Window != 120 {
		t.Errorf("expected window 120, got %d", cfg.Data.Window)
	}

	style, err := cfg.Style()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if style.LineWidth != 1.5 {
		t.Errorf("expected line width 1.5, got %g", style.LineWidth)
	}
	if !style.SharpCorners {
		t.Error("expected sharp corners")
	}
	if style.FillMode != sparkline.FillBelow {
		t.Errorf("expected fill below, got %v", style.FillMode)
	}
	if style.PointsMode != sparkline.PointsLast {
		t.Errorf("expected points last, got %v", style.PointsMode)
	}
	if style.LineColor != (sparkline.Color{R: 0xff, A: 0xff}) {
		t.Errorf("unexpected line color: %+v", style.LineColor)
	}
	if style.FillColor != (sparkline.Color{G: 0xff, A: 0x80}) {
		t.Errorf("unexpected fill color: %+v", style.FillColor)
	}
	if style.PointColor != (sparkline.Color{B: 0xff, A: 0xff}) {
		t.Errorf("unexpected point color: %+v", style.PointColor)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	style, err := cfg.Style()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := sparkline.DefaultStyle()
	if style != want {
		t.Errorf("expected default style, got %+v", style)
	}
}

func TestLoad_PartialConfigKeepsOtherDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[chart]\nline_width = 3.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	style, err := cfg.Style()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if style.LineWidth != 3.0 {
		t.Errorf("expected line width 3, got %g", style.LineWidth)
	}
	if style.PointSize != 4.0 {
		t.Errorf("expected default point size, got %g", style.PointSize)
	}
	if style.FallbackWidth != 300 || style.FallbackHeight != 100 {
		t.Errorf("expected default fallback size, got %gx%g", style.FallbackWidth, style.FallbackHeight)
	}
}

func TestStyle_BadFillMode(t *testing.T) {
	cfg := &config.Config{}
	cfg.Chart.Fill = "sideways"
	if _, err := cfg.Style(); err == nil {
		t.Error("expected an error for unknown fill mode")
	}
}

func TestStyle_BadColor(t *testing.T) {
	cfg := &config.Config{}
	cfg.Chart.LineColor = "red"
	if _, err := cfg.Style(); err == nil {
		t.Error("expected an error for a non-hex color")
	}
}

func TestLoad_ExpandsDataFilePaths(t *testing.T) {
	t.Setenv("HOME", "/home/test")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[data]\nfiles = [\"~/stats/lat.dat\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Data.Files[0] != "/home/test/stats/lat.dat" {
		t.Errorf("expected expanded path, got %q", cfg.Data.Files[0])
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    sparkline.Color
		wantErr bool
	}{
		{in: "#2f81f7", want: sparkline.Color{R: 0x2f, G: 0x81, B: 0xf7, A: 0xff}},
		{in: "2f81f7", want: sparkline.Color{R: 0x2f, G: 0x81, B: 0xf7, A: 0xff}},
		{in: "#2f81f766", want: sparkline.Color{R: 0x2f, G: 0x81, B: 0xf7, A: 0x66}},
		{in: "#fff", want: sparkline.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "#12345", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := config.ParseColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected an error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %+v, got %+v", tt.in, tt.want, got)
		}
	}
}
