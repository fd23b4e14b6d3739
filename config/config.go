package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/deevus/sparkline-tui/sparkline"
)

// Config is the top-level configuration.
type Config struct {
	Chart ChartConfig `toml:"chart"`
	Data  DataConfig  `toml:"data"`
}

// ChartConfig holds the sparkline style as it appears in TOML. Colors
// are hex strings, modes are lower-case words; zero values mean "use
// the default".
type ChartConfig struct {
	LineWidth      float64 `toml:"line_width"`
	LineColor      string  `toml:"line_color"`
	SharpCorners   bool    `toml:"sharp_corners"`
	Fill           string  `toml:"fill"` // none|above|below
	FillColor      string  `toml:"fill_color"`
	Points         string  `toml:"points"` // none|all|last
	PointSize      float64 `toml:"point_size"`
	PointColor     string  `toml:"point_color"`
	FallbackWidth  float64 `toml:"fallback_width"`
	FallbackHeight float64 `toml:"fallback_height"`
}

// DataConfig lists default data files and the sample window.
type DataConfig struct {
	Files  []string `toml:"files"`
	Window int      `toml:"window"` // 0 = show all samples
}

// DefaultPath returns the default config file path using XDG conventions.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "sparkline-tui", "config.toml")
}

// LoadFrom reads and parses the config file at the given path. A
// missing file is not an error: everything has a default.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	for i, f := range cfg.Data.Files {
		cfg.Data.Files[i] = expandPath(f)
	}
	return &cfg, nil
}

// Style converts the chart section into a renderer style, applying
// defaults for unset fields.
func (c *Config) Style() (sparkline.Style, error) {
	style := sparkline.DefaultStyle()
	cc := c.Chart

	if cc.LineWidth != 0 {
		style.LineWidth = cc.LineWidth
	}
	if cc.PointSize != 0 {
		style.PointSize = cc.PointSize
	}
	if cc.FallbackWidth != 0 {
		style.FallbackWidth = cc.FallbackWidth
	}
	if cc.FallbackHeight != 0 {
		style.FallbackHeight = cc.FallbackHeight
	}
	style.SharpCorners = cc.SharpCorners

	var err error
	if style.FillMode, err = ParseFillMode(cc.Fill); err != nil {
		return sparkline.Style{}, err
	}
	if style.PointsMode, err = ParsePointsMode(cc.Points); err != nil {
		return sparkline.Style{}, err
	}
	if cc.LineColor != "" {
		if style.LineColor, err = ParseColor(cc.LineColor); err != nil {
			return sparkline.Style{}, fmt.Errorf("line_color: %w", err)
		}
	}
	if cc.FillColor != "" {
		if style.FillColor, err = ParseColor(cc.FillColor); err != nil {
			return sparkline.Style{}, fmt.Errorf("fill_color: %w", err)
		}
	}
	if cc.PointColor != "" {
		if style.PointColor, err = ParseColor(cc.PointColor); err != nil {
			return sparkline.Style{}, fmt.Errorf("point_color: %w", err)
		}
	}
	return style, nil
}

// ParseFillMode maps a config word to a fill mode. Empty means none.
func ParseFillMode(s string) (sparkline.FillMode, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return sparkline.FillNone, nil
	case "above":
		return sparkline.FillAbove, nil
	case "below":
		return sparkline.FillBelow, nil
	}
	return sparkline.FillNone, fmt.Errorf("fill: unknown mode %q (want none, above or below)", s)
}

// ParsePointsMode maps a config word to a points mode. Empty means none.
func ParsePointsMode(s string) (sparkline.PointsMode, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return sparkline.PointsNone, nil
	case "all":
		return sparkline.PointsAll, nil
	case "last":
		return sparkline.PointsLast, nil
	}
	return sparkline.PointsNone, fmt.Errorf("points: unknown mode %q (want none, all or last)", s)
}

// ParseColor parses #rgb, #rrggbb and #rrggbbaa hex colors.
func ParseColor(s string) (sparkline.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = hex[i]
			expanded[2*i+1] = hex[i]
		}
		hex = string(expanded)
	case 6, 8:
	default:
		return sparkline.Color{}, fmt.Errorf("invalid color %q (want #rgb, #rrggbb or #rrggbbaa)", s)
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return sparkline.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	c := sparkline.Color{A: 0xff}
	if len(hex) == 8 {
		c.A = uint8(v & 0xff)
		v >>= 8
	}
	c.B = uint8(v & 0xff)
	c.G = uint8(v >> 8 & 0xff)
	c.R = uint8(v >> 16 & 0xff)
	return c, nil
}

// expandPath expands ~ to $HOME and then expands all environment variables.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		path = "$HOME" + path[1:]
	}
	return os.ExpandEnv(path)
}
