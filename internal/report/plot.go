package report

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"turbofanvpf/internal/aero/compress"
	"turbofanvpf/internal/aero/polar"
	"turbofanvpf/internal/domain"
)

// ErrNothingToPlot is returned when no phase produced a result.
var ErrNothingToPlot = errors.New("report: no successful phase to plot")

// Figure file names written by Plotter.WriteAll.
const (
	FigureCDvsAlpha  = "cd_vs_alpha.png"
	FigureDeltaCD    = "delta_cd_bars.png"
	FigureDeltaAlpha = "delta_alpha_pitch.png"
	FigureDragPolar  = "polar_cl_cd_phases.png"
)

// Plotter renders comparison figures. The corrector must match the one
// used for evaluation so that plotted curves pass through the reported
// operating points.
type Plotter struct {
	Corrector compress.Corrector
	Width     vg.Length
	Height    vg.Length
}

// NewPlotter returns a Plotter with a 10x6 inch canvas.
func NewPlotter(c compress.Corrector) Plotter {
	return Plotter{Corrector: c, Width: 10 * vg.Inch, Height: 6 * vg.Inch}
}

// WriteAll writes every figure into dir and returns the paths written.
func (pl Plotter) WriteAll(dir string, base polar.Table, outcomes []domain.Outcome) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	jobs := []struct {
		name string
		fn   func(string) error
	}{
		{FigureCDvsAlpha, func(p string) error { return pl.CDvsAlpha(p, base, outcomes) }},
		{FigureDeltaCD, func(p string) error { return pl.DeltaCDBars(p, outcomes) }},
		{FigureDeltaAlpha, func(p string) error { return pl.DeltaAlphaBars(p, outcomes) }},
		{FigureDragPolar, func(p string) error { return pl.DragPolar(p, base, outcomes) }},
	}
	paths := make([]string, 0, len(jobs))
	for _, j := range jobs {
		p := filepath.Join(dir, j.name)
		if err := j.fn(p); err != nil {
			return paths, fmt.Errorf("plot %s: %w", j.name, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// CDvsAlpha plots each phase's corrected CD curve with its FPF and VPF
// operating points marked.
func (pl Plotter) CDvsAlpha(path string, base polar.Table, outcomes []domain.Outcome) error {
	return pl.curves(path, base, outcomes, curveSpec{
		title:  "CD vs α by flight phase",
		xLabel: "α [deg]",
		yLabel: "CD",
		xy: func(p domain.PolarPoint) (float64, float64) { return p.AlphaDeg, p.CD },
		op: func(o domain.OperatingPoint) (float64, float64) { return o.AlphaDeg, o.CD },
	})
}

// DragPolar plots CL against CD for each phase with operating points marked.
func (pl Plotter) DragPolar(path string, base polar.Table, outcomes []domain.Outcome) error {
	return pl.curves(path, base, outcomes, curveSpec{
		title:  "Drag polar by flight phase",
		xLabel: "CD",
		yLabel: "CL",
		xy: func(p domain.PolarPoint) (float64, float64) { return p.CD, p.CL },
		op: func(o domain.OperatingPoint) (float64, float64) { return o.CD, o.CL },
	})
}

type curveSpec struct {
	title, xLabel, yLabel string
	xy                    func(domain.PolarPoint) (float64, float64)
	op                    func(domain.OperatingPoint) (float64, float64)
}

func (pl Plotter) curves(path string, base polar.Table, outcomes []domain.Outcome, spec curveSpec) error {
	p := plot.New()
	p.Title.Text = spec.title
	p.X.Label.Text = spec.xLabel
	p.Y.Label.Text = spec.yLabel
	p.Legend.Top = true

	var fpfPts, vpfPts plotter.XYs
	for i, o := range succeeded(outcomes) {
		corrected, _, err := pl.Corrector.Correct(base, o.Phase.Mach)
		if err != nil {
			return err
		}
		pts := corrected.Points()
		xys := make(plotter.XYs, len(pts))
		for k, pt := range pts {
			xys[k].X, xys[k].Y = spec.xy(pt)
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s (M%.2f)", o.Phase.Name, o.Phase.Mach), line)

		var pt plotter.XY
		pt.X, pt.Y = spec.op(o.Result.FPF)
		fpfPts = append(fpfPts, pt)
		pt.X, pt.Y = spec.op(o.Result.VPF)
		vpfPts = append(vpfPts, pt)
	}
	if len(fpfPts) == 0 {
		return ErrNothingToPlot
	}

	fpf, err := marker(fpfPts, draw.CircleGlyph{}, color.Black)
	if err != nil {
		return err
	}
	vpf, err := marker(vpfPts, draw.TriangleGlyph{}, color.RGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 0xFF})
	if err != nil {
		return err
	}
	p.Add(fpf, vpf)
	p.Legend.Add("FPF", fpf)
	p.Legend.Add("VPF", vpf)
	p.Add(plotter.NewGrid())

	return p.Save(pl.Width, pl.Height, path)
}

func marker(xys plotter.XYs, shape draw.GlyphDrawer, c color.Color) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Shape = shape
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(4)
	return s, nil
}

// DeltaCDBars plots cd_delta per phase; bars below zero are VPF savings.
func (pl Plotter) DeltaCDBars(path string, outcomes []domain.Outcome) error {
	return pl.bars(path, outcomes, "VPF drag change per phase", "ΔCD (VPF − FPF)",
		func(m domain.ComparisonMetrics) float64 { return m.CDDelta })
}

// DeltaAlphaBars plots the pitch change VPF applies per phase.
func (pl Plotter) DeltaAlphaBars(path string, outcomes []domain.Outcome) error {
	return pl.bars(path, outcomes, "VPF pitch change per phase", "Δα [deg]",
		func(m domain.ComparisonMetrics) float64 { return m.DeltaAlpha })
}

func (pl Plotter) bars(path string, outcomes []domain.Outcome, title, yLabel string, value func(domain.ComparisonMetrics) float64) error {
	ok := succeeded(outcomes)
	if len(ok) == 0 {
		return ErrNothingToPlot
	}
	vals := make(plotter.Values, len(ok))
	names := make([]string, len(ok))
	for i, o := range ok {
		vals[i] = value(o.Result.Metrics)
		names[i] = string(o.Phase.Name)
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(vals, vg.Points(30))
	if err != nil {
		return err
	}
	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars, plotter.NewGrid())
	p.NominalX(names...)

	return p.Save(pl.Width, pl.Height, path)
}

func succeeded(outcomes []domain.Outcome) []domain.Outcome {
	out := make([]domain.Outcome, 0, len(outcomes))
	for _, o := range outcomes {
		if o.OK() {
			out = append(out, o)
		}
	}
	return out
}
