// SPDX-License-Identifier: MIT
// Package: ellpack/spy
//
// spy.go: sparsity-pattern ("spy") plots.
//
// Every stored entry becomes one square glyph at (column, row), with row 0 at
// the top like a printed matrix. Matrices with more entries than the point
// budget are thinned with a fixed stride, so the picture keeps its overall
// shape at bounded cost.

// Package spy renders the non-zero pattern of an ELLPACK matrix with gonum/plot.
package spy

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/katalvlaran/ellpack"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNothingToPlot indicates a matrix with zero rows or columns.
var ErrNothingToPlot = errors.New("spy: matrix has no cells")

const (
	defaultSize      = 12 * vg.Centimeter
	defaultMaxPoints = 200_000
	glyphRadius      = vg.Length(0.8)
)

// Option customizes a plot.
type Option func(*config)

type config struct {
	title     string
	width     vg.Length
	height    vg.Length
	maxPoints int
}

func newConfig(opts ...Option) config {
	cfg := config{width: defaultSize, height: defaultSize, maxPoints: defaultMaxPoints}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithSize sets the canvas size. Panics on non-positive lengths.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic("spy: WithSize requires positive lengths")
	}
	return func(c *config) { c.width, c.height = width, height }
}

// WithMaxPoints caps the number of drawn glyphs. Panics when n < 1.
func WithMaxPoints(n int) Option {
	if n < 1 {
		panic("spy: WithMaxPoints requires n >= 1")
	}
	return func(c *config) { c.maxPoints = n }
}

// Plot builds the spy plot of m.
func Plot(m *ellpack.Matrix, opts ...Option) (*plot.Plot, error) {
	const method = "Plot"
	if m == nil {
		return nil, fmt.Errorf("%s: %w", method, ellpack.ErrNilMatrix)
	}
	if m.Rows == 0 || m.Cols == 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", method, m.Rows, m.Cols, ErrNothingToPlot)
	}
	cfg := newConfig(opts...)

	p := plot.New()
	p.Title.Text = cfg.title
	if p.Title.Text == "" {
		p.Title.Text = fmt.Sprintf("%d×%d, nnz=%d", m.Rows, m.Cols, m.TotalNonZero())
	}
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row (top = 0)"
	p.X.Min, p.X.Max = -0.5, float64(m.Cols)-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(m.Rows)-0.5

	pts := Points(m, cfg.maxPoints)
	if len(pts) == 0 {
		return p, nil
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	sc.GlyphStyle.Shape = draw.BoxGlyph{}
	sc.GlyphStyle.Radius = glyphRadius
	sc.GlyphStyle.Color = color.Black
	p.Add(sc)

	return p, nil
}

// Points returns at most maxPoints glyph positions for the entries of m,
// x = column and y = rows-1-row.
func Points(m *ellpack.Matrix, maxPoints int) plotter.XYs {
	nnz := m.TotalNonZero()
	if nnz == 0 || maxPoints < 1 {
		return nil
	}
	stride := (nnz + uint64(maxPoints) - 1) / uint64(maxPoints)
	pts := make(plotter.XYs, 0, nnz/stride+1)

	off := m.Offsets()
	top := float64(m.Rows - 1)
	var seen uint64
	for j := 0; j+1 < len(off); j++ {
		for k := off[j]; k < off[j+1]; k++ {
			if seen%stride == 0 {
				pts = append(pts, plotter.XY{X: float64(j), Y: top - float64(m.Indices[k])})
			}
			seen++
		}
	}
	return pts
}

// Save plots m into path; the format follows the file extension
// (png, svg, pdf, eps, jpg, tif).
func Save(path string, m *ellpack.Matrix, opts ...Option) error {
	p, err := Plot(m, opts...)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	cfg := newConfig(opts...)
	if err = p.Save(cfg.width, cfg.height, path); err != nil {
		return fmt.Errorf("Save: %w: %w", ellpack.ErrIO, err)
	}
	return nil
}

// Render writes the plot of m to w in the given format ("png", "svg", ...).
func Render(w io.Writer, m *ellpack.Matrix, format string, opts ...Option) error {
	p, err := Plot(m, opts...)
	if err != nil {
		return fmt.Errorf("Render: %w", err)
	}
	cfg := newConfig(opts...)
	wt, err := p.WriterTo(cfg.width, cfg.height, format)
	if err != nil {
		return fmt.Errorf("Render: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("Render: %w: %w", ellpack.ErrIO, err)
	}
	return nil
}
