package evaluation_test

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turbofanvpf/internal/aero/compress"
	"turbofanvpf/internal/aero/incidence"
	"turbofanvpf/internal/aero/polar"
	"turbofanvpf/internal/aero/solver"
	"turbofanvpf/internal/domain"
	"turbofanvpf/internal/logging"
	"turbofanvpf/internal/services/evaluation"
)

func scenarioPolar() polar.Table {
	return polar.MustNew([]domain.PolarPoint{
		{AlphaDeg: -2, CL: 0.1, CD: 0.02},
		{AlphaDeg: 0, CL: 0.3, CD: 0.018},
		{AlphaDeg: 4, CL: 0.7, CD: 0.025},
		{AlphaDeg: 8, CL: 1.0, CD: 0.05},
	})
}

func TestEvaluate_ReferenceScenario(t *testing.T) {
	svc := evaluation.New()
	phase := domain.FlightPhase{Name: "mid", AltitudeM: 3000, Mach: 0.5}

	res, err := svc.Evaluate(phase, scenarioPolar(), domain.MinCD())
	require.NoError(t, err)

	beta := math.Sqrt(0.75)
	assert.Equal(t, phase, res.Phase)
	assert.Equal(t, 4.0, res.FPF.AlphaDeg)
	assert.InDelta(t, 0.7/beta, res.FPF.CL, 1e-12)
	assert.InDelta(t, 0.025/0.75, res.FPF.CD, 1e-12)

	// Lowest corrected CD sits where the lowest base CD does.
	assert.Equal(t, 0.0, res.VPF.AlphaDeg)
	assert.InDelta(t, 0.018/0.75, res.VPF.CD, 1e-12)
	assert.Less(t, res.VPF.CD, res.FPF.CD)
	assert.Less(t, res.Metrics.CDDelta, 0.0)
	assert.InDelta(t, res.VPF.CD, res.Metrics.CDRatio*res.FPF.CD, 1e-12)
	assert.Nil(t, res.Warning)
}

func TestEvaluate_MaxLDMatchesFPFAtReferenceMach(t *testing.T) {
	res, err := evaluation.New().Evaluate(
		domain.FlightPhase{Name: "ref", Mach: 0.5}, scenarioPolar(), domain.MaxLoverD())
	require.NoError(t, err)

	assert.Equal(t, res.FPF, res.VPF)
	assert.Equal(t, 0.0, res.Metrics.CDDelta)
	assert.Equal(t, 0.0, res.Metrics.LDDelta)
}

func TestEvaluate_WarningAboveThreshold(t *testing.T) {
	svc := evaluation.New()

	cruise, err := svc.Evaluate(domain.FlightPhase{Name: "cruise", AltitudeM: 11000, Mach: 0.80},
		scenarioPolar(), domain.MaxLoverD())
	require.NoError(t, err)
	require.NotNil(t, cruise.Warning)
	assert.Equal(t, domain.PhaseName("cruise"), cruise.Warning.Phase)
	assert.InDelta(t, 4.6, cruise.FPF.AlphaDeg, 1e-12)

	climb, err := svc.Evaluate(domain.FlightPhase{Name: "climb", AltitudeM: 5000, Mach: 0.60},
		scenarioPolar(), domain.MaxLoverD())
	require.NoError(t, err)
	assert.Nil(t, climb.Warning)
}

func TestEvaluate_FailsFast(t *testing.T) {
	narrow := polar.MustNew([]domain.PolarPoint{
		{AlphaDeg: 0, CL: 0.3, CD: 0.018},
		{AlphaDeg: 4, CL: 0.7, CD: 0.025},
	})
	svc := evaluation.New()

	_, err := svc.Evaluate(domain.FlightPhase{Name: "cruise", Mach: 0.8}, narrow, domain.MinCD())
	assert.ErrorIs(t, err, domain.ErrOutOfDomain)
	assert.Contains(t, err.Error(), "cruise")

	_, err = svc.Evaluate(domain.FlightPhase{Name: "dash", Mach: 1.1}, narrow, domain.MinCD())
	assert.ErrorIs(t, err, domain.ErrInvalidMach)

	zeroDrag := polar.MustNew([]domain.PolarPoint{
		{AlphaDeg: 0, CL: 0.3, CD: 0.0},
		{AlphaDeg: 8, CL: 0.7, CD: 0.0},
	})
	_, err = svc.Evaluate(domain.FlightPhase{Name: "ref", Mach: 0.5}, zeroDrag, domain.Fixed(2))
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)
}

func TestEvaluate_CustomSchedule(t *testing.T) {
	svc := evaluation.New(evaluation.WithSchedule(incidence.Constant(-1)))
	res, err := svc.Evaluate(domain.FlightPhase{Name: "x", Mach: 0.3}, scenarioPolar(), domain.MinCD())
	require.NoError(t, err)
	assert.Equal(t, -1.0, res.FPF.AlphaDeg)
}

func TestEvaluateAll_OrderAndIsolation(t *testing.T) {
	narrow := polar.MustNew([]domain.PolarPoint{
		{AlphaDeg: 0, CL: 0.3, CD: 0.018},
		{AlphaDeg: 4.4, CL: 0.7, CD: 0.025},
	})
	phases := domain.DefaultPhases()

	outcomes, err := evaluation.New().EvaluateAll(context.Background(), phases, narrow, domain.MinCD())
	require.NoError(t, err)
	require.Len(t, outcomes, len(phases))

	for i, o := range outcomes {
		assert.Equal(t, phases[i], o.Phase)
	}
	// cruise (4.6°) is past the table; every other phase stays inside it.
	assert.True(t, outcomes[0].OK())
	assert.True(t, outcomes[1].OK())
	assert.False(t, outcomes[2].OK())
	assert.ErrorIs(t, outcomes[2].Err, domain.ErrOutOfDomain)
	assert.True(t, outcomes[3].OK())
	assert.True(t, outcomes[4].OK())
}

func TestEvaluateAll_ParallelMatchesSequential(t *testing.T) {
	phases := domain.DefaultPhases()
	seq, err := evaluation.New().EvaluateAll(context.Background(), phases, scenarioPolar(), domain.MaxLoverD())
	require.NoError(t, err)
	par, err := evaluation.New(evaluation.WithWorkers(4)).EvaluateAll(context.Background(), phases, scenarioPolar(), domain.MaxLoverD())
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}

func TestEvaluateAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes, err := evaluation.New().EvaluateAll(ctx, domain.DefaultPhases(), scenarioPolar(), domain.MinCD())
	assert.ErrorIs(t, err, context.Canceled)
	for _, o := range outcomes {
		assert.ErrorIs(t, o.Err, context.Canceled)
	}
}

func TestEvaluateAll_LogsWarnings(t *testing.T) {
	var buf bytes.Buffer
	svc := evaluation.New(evaluation.WithLogger(logging.New(logging.Config{Output: &buf})))

	_, err := svc.EvaluateAll(context.Background(), domain.DefaultPhases(), scenarioPolar(), domain.MinCD())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "compressibility correction beyond validity range")
	assert.Contains(t, out, "phase=cruise")
	assert.Contains(t, out, "phase evaluated")
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "", evaluation.ErrorKind(nil))
	assert.Equal(t, "out_of_domain", evaluation.ErrorKind(&domain.OutOfDomainError{}))
	assert.Equal(t, "invalid_mach", evaluation.ErrorKind(domain.ErrInvalidMach))
	assert.Equal(t, "empty_table", evaluation.ErrorKind(domain.ErrEmptyTable))
	assert.Equal(t, "division_by_zero", evaluation.ErrorKind(domain.ErrDivisionByZero))
	assert.Equal(t, "canceled", evaluation.ErrorKind(context.Canceled))
	assert.Equal(t, "other", evaluation.ErrorKind(assert.AnError))
}

func TestDesignPoint(t *testing.T) {
	cruise := domain.FlightPhase{Name: "cruise", AltitudeM: 11000, Mach: 0.8}
	sched, err := evaluation.DesignPoint(scenarioPolar(), cruise, domain.MinCD(), compress.New(), solver.Solver{})
	require.NoError(t, err)
	assert.Equal(t, incidence.Constant(0), sched)

	sched, err = evaluation.DesignPoint(scenarioPolar(), cruise, domain.MaxLoverD(), compress.New(), solver.Solver{})
	require.NoError(t, err)
	assert.Equal(t, incidence.Constant(4), sched)

	_, err = evaluation.DesignPoint(scenarioPolar(), domain.FlightPhase{Name: "x", Mach: 1}, domain.MinCD(), compress.New(), solver.Solver{})
	assert.ErrorIs(t, err, domain.ErrInvalidMach)
}

func TestFindPhase(t *testing.T) {
	p, ok := evaluation.FindPhase(domain.DefaultPhases(), "cruise")
	require.True(t, ok)
	assert.Equal(t, 0.8, p.Mach)

	_, ok = evaluation.FindPhase(domain.DefaultPhases(), "taxi")
	assert.False(t, ok)
}

func TestScheduleSpecRoundTrip(t *testing.T) {
	for _, sc := range []incidence.Schedule{incidence.DefaultLaw(), incidence.Constant(2.5)} {
		spec := evaluation.ScheduleSpec(sc)
		require.NotNil(t, spec)
		assert.Equal(t, sc, evaluation.ScheduleFromSpec(*spec))
	}
}
