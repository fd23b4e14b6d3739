// Package series loads and holds the sample sequences fed to charts.
package series

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Series is one named, ordered sequence of finite samples.
type Series struct {
	Name    string
	Path    string // empty for generated data
	Samples []float64
}

// LoadFile reads samples from a text file, one per line. The last
// comma-separated field of each line is parsed, so single-column files
// and simple CSV exports both work. Blank lines and lines starting with
// '#' are skipped. Non-finite values are rejected at this boundary so
// the renderer never sees them.
func LoadFile(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var samples []float64
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.LastIndex(line, ","); i >= 0 {
			line = strings.TrimSpace(line[i+1:])
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: parsing %q: %w", path, lineNo, line, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s:%d: sample %q is not finite", path, lineNo, line)
		}
		samples = append(samples, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%s: no samples found", path)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Series{Name: name, Path: path, Samples: samples}, nil
}

// Reload re-reads a file-backed series from disk, replacing its samples.
// Generated series reload to themselves.
func (s *Series) Reload() error {
	if s.Path == "" {
		return nil
	}
	fresh, err := LoadFile(s.Path)
	if err != nil {
		return err
	}
	s.Samples = fresh.Samples
	return nil
}

// Demo returns a deterministic damped sine wave with n samples, used
// when no data files are given.
func Demo(n int) *Series {
	if n < 1 {
		n = 1
	}
	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / float64(n)
		samples[i] = math.Exp(-2*t) * math.Sin(4*math.Pi*t)
	}
	return &Series{Name: "demo", Samples: samples}
}
