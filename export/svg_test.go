package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/deevus/sparkline-tui/export"
	"github.com/deevus/sparkline-tui/sparkline"
)

func renderFrame(t *testing.T, style sparkline.Style) *sparkline.Frame {
	t.Helper()
	f, err := sparkline.Render([]float64{0, 10, 5}, sparkline.Size{Width: 100, Height: 50}, style)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return f
}

func TestWriteSVG_StrokeOnly(t *testing.T) {
	f := renderFrame(t, sparkline.DefaultStyle())

	var buf bytes.Buffer
	if err := export.WriteSVG(&buf, f, sparkline.Size{Width: 100, Height: 50}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "viewBox='0 0 100 50'") {
		t.Errorf("missing viewBox: %s", out)
	}
	if !strings.Contains(out, "<polyline points='1.00,49.00 50.00,1.00 99.00,25.00'") {
		t.Errorf("unexpected polyline: %s", out)
	}
	if !strings.Contains(out, "stroke-linecap='round'") {
		t.Error("stroke must use round caps")
	}
	if !strings.Contains(out, "stroke-linejoin='round'") {
		t.Error("default joins are round")
	}
	if strings.Contains(out, "<polygon") || strings.Contains(out, "<circle") {
		t.Error("no fill or markers were requested")
	}
}

func TestWriteSVG_SharpCornersUseMiterJoin(t *testing.T) {
	style := sparkline.DefaultStyle()
	style.SharpCorners = true
	f := renderFrame(t, style)

	var buf bytes.Buffer
	if err := export.WriteSVG(&buf, f, sparkline.Size{Width: 100, Height: 50}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "stroke-linejoin='miter'") {
		t.Error("sharp corners should emit miter joins")
	}
}

func TestWriteSVG_FillAndMarkers(t *testing.T) {
	style := sparkline.DefaultStyle()
	style.FillMode = sparkline.FillBelow
	style.PointsMode = sparkline.PointsLast
	f := renderFrame(t, style)

	var buf bytes.Buffer
	if err := export.WriteSVG(&buf, f, sparkline.Size{Width: 100, Height: 50}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<polygon") {
		t.Error("expected a fill polygon")
	}
	if strings.Index(out, "<polygon") > strings.Index(out, "<polyline") {
		t.Error("fill must be drawn before the stroke")
	}
	if !strings.Contains(out, "<circle cx='99.00' cy='25.00' r='2'") {
		t.Errorf("expected a marker on the last vertex: %s", out)
	}
}
