package report_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turbofanvpf/internal/aero/compress"
	"turbofanvpf/internal/aero/polar"
	"turbofanvpf/internal/domain"
	"turbofanvpf/internal/report"
)

func result(name domain.PhaseName, mach, cdDelta, dAlpha float64, warn bool) domain.Outcome {
	r := &domain.PhaseResult{
		Phase: domain.FlightPhase{Name: name, AltitudeM: 1000, Mach: mach},
		FPF:   domain.OperatingPoint{AlphaDeg: 4, CL: 0.7, CD: 0.025},
		VPF:   domain.OperatingPoint{AlphaDeg: 4 + dAlpha, CL: 0.5, CD: 0.025 + cdDelta},
		Metrics: domain.ComparisonMetrics{
			CDDelta:    cdDelta,
			CDRatio:    (0.025 + cdDelta) / 0.025,
			DeltaAlpha: dAlpha,
		},
	}
	if warn {
		r.Warning = &domain.CompressibilityWarning{Phase: name, Mach: mach, MachMaxValid: 0.7}
	}
	return domain.Outcome{Phase: r.Phase, Result: r}
}

func sample() []domain.Outcome {
	return []domain.Outcome{
		result("takeoff", 0.25, -0.004, -2, false),
		{Phase: domain.FlightPhase{Name: "climb", Mach: 0.6}, Err: domain.ErrOutOfDomain},
		result("cruise", 0.80, -0.001, 1, true),
		result("approach", 0.30, -0.004, -3, false),
	}
}

func TestSummarize(t *testing.T) {
	s := report.Summarize(sample())

	assert.Equal(t, 4, s.Phases)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 3, s.Succeeded())
	assert.Equal(t, 1, s.Warnings)
	assert.InDelta(t, -0.003, s.MeanCDDelta, 1e-12)
	assert.InDelta(t, 2.0, s.MeanAbsDeltaAlpha, 1e-12)
	assert.Equal(t, 3.0, s.MaxAbsDeltaAlpha)
	assert.Equal(t, domain.PhaseName("takeoff"), s.Best, "ties keep the earlier phase")
	assert.Equal(t, domain.PhaseName("cruise"), s.Worst)
}

func TestSummarize_AllFailed(t *testing.T) {
	s := report.Summarize([]domain.Outcome{{Err: domain.ErrInvalidMach}})
	assert.Equal(t, 0, s.Succeeded())
	assert.Zero(t, s.MeanCDDelta)
	assert.Empty(t, s.Best)
}

func TestNewRun(t *testing.T) {
	run := report.NewRun("fp", domain.MinCD(), sample())
	_, err := uuid.Parse(run.ID.String())
	require.NoError(t, err)
	require.Len(t, run.Outcomes, 4)
	assert.NotEmpty(t, run.Outcomes[1].Error)
	assert.Equal(t, 1, run.Summary.Failed)
	assert.NotEqual(t, run.ID, report.NewRunID())
}

func TestRenderTable(t *testing.T) {
	out := report.RenderTable(sample())

	for _, want := range []string{"Phase", "takeoff", "cruise", "approach", "-0.004000", "⚠", "✗"} {
		assert.Contains(t, out, want)
	}
	rows := report.Rows(sample())
	require.Len(t, rows, 4)
	assert.True(t, rows[1].Failed)
	assert.True(t, rows[2].Warning)
	assert.Len(t, rows[0].Cells, len(report.TableHeaders))
	assert.Len(t, rows[1].Cells, len(report.TableHeaders))
}

func TestRenderSummary(t *testing.T) {
	out := report.RenderSummary(report.Summarize(sample()))
	assert.Contains(t, out, "3/4")
	assert.Contains(t, out, "takeoff")
	assert.Contains(t, out, "compressibility warnings")

	empty := report.RenderSummary(report.Summary{Phases: 2, Failed: 2})
	assert.Contains(t, empty, "0/2")
	assert.NotContains(t, empty, "best")
}

func TestPlotter_WriteAll(t *testing.T) {
	base := polar.MustNew([]domain.PolarPoint{
		{AlphaDeg: -2, CL: 0.1, CD: 0.02},
		{AlphaDeg: 0, CL: 0.3, CD: 0.018},
		{AlphaDeg: 4, CL: 0.7, CD: 0.025},
		{AlphaDeg: 8, CL: 1.0, CD: 0.05},
	})
	dir := filepath.Join(t.TempDir(), "figures")

	paths, err := report.NewPlotter(compress.New()).WriteAll(dir, base, sample())
	require.NoError(t, err)
	require.Len(t, paths, 4)
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
		assert.True(t, strings.HasSuffix(p, ".png"))
	}
}

func TestPlotter_NothingToPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.png")
	err := report.NewPlotter(compress.New()).DeltaCDBars(path, []domain.Outcome{{Err: domain.ErrEmptyTable}})
	assert.ErrorIs(t, err, report.ErrNothingToPlot)
}
