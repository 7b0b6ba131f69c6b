package evaluation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"turbofanvpf/internal/aero/compare"
	"turbofanvpf/internal/aero/compress"
	"turbofanvpf/internal/aero/incidence"
	"turbofanvpf/internal/aero/polar"
	"turbofanvpf/internal/aero/solver"
	"turbofanvpf/internal/domain"
	"turbofanvpf/internal/logging"
	"turbofanvpf/internal/telemetry"
)

// Service evaluates phases with a fixed corrector, FPF schedule and solver.
type Service struct {
	corrector compress.Corrector
	schedule  incidence.Schedule
	solver    solver.Solver
	workers   int
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithCorrector replaces the default Prandtl-Glauert corrector.
func WithCorrector(c compress.Corrector) Option { return func(s *Service) { s.corrector = c } }

// WithSchedule replaces the default FPF incidence law.
func WithSchedule(sc incidence.Schedule) Option { return func(s *Service) { s.schedule = sc } }

// WithRefinement toggles sub-grid refinement of optimised strategies.
func WithRefinement(on bool) Option { return func(s *Service) { s.solver.Refine = on } }

// WithWorkers bounds EvaluateAll parallelism; n <= 1 runs sequentially.
func WithWorkers(n int) Option { return func(s *Service) { s.workers = n } }

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(s *Service) { s.logger = l } }

// New returns a Service with the reference configuration: default
// corrector (MACH_MAX_VALID 0.7), default incidence law, grid-only solver,
// sequential batches.
func New(opts ...Option) *Service {
	s := &Service{
		corrector: compress.New(),
		schedule:  incidence.DefaultLaw(),
		workers:   1,
		logger:    logging.Discard(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Corrector returns the compressibility corrector applied to every phase.
func (s *Service) Corrector() compress.Corrector { return s.corrector }

// Evaluate runs the pipeline for one phase.
func (s *Service) Evaluate(
	phase domain.FlightPhase,
	base polar.Table,
	vpf domain.Strategy,
) (domain.PhaseResult, error) {
	s.logger.Debug("evaluating phase", "phase", phase.Name, "mach", phase.Mach, "vpf", vpf.String())

	corrected, warn, err := s.corrector.Correct(base, phase.Mach)
	if err != nil {
		return domain.PhaseResult{}, fmt.Errorf("phase %s: compressibility: %w", phase.Name, err)
	}
	if warn != nil {
		warn.Phase = phase.Name
		telemetry.ObserveWarning()
		s.logger.Warn("compressibility correction beyond validity range",
			"phase", phase.Name, "mach", warn.Mach, "mach_max_valid", warn.MachMaxValid)
	}

	fpfAlpha := s.schedule.AngleDeg(phase.Mach)
	fpf, err := s.solver.Resolve(corrected, domain.Fixed(fpfAlpha))
	if err != nil {
		return domain.PhaseResult{}, fmt.Errorf("phase %s: fpf operating point: %w", phase.Name, err)
	}
	vop, err := s.solver.Resolve(corrected, vpf)
	if err != nil {
		return domain.PhaseResult{}, fmt.Errorf("phase %s: vpf operating point: %w", phase.Name, err)
	}
	metrics, err := compare.Compare(fpf, vop)
	if err != nil {
		return domain.PhaseResult{}, fmt.Errorf("phase %s: metrics: %w", phase.Name, err)
	}

	return domain.PhaseResult{
		Phase:   phase,
		FPF:     fpf,
		VPF:     vop,
		Metrics: metrics,
		Warning: warn,
	}, nil
}

// EvaluateAll evaluates every phase and returns outcomes in input order.
// The returned error is non-nil only when ctx ends before all phases ran;
// phases that never started carry ctx.Err() in their outcome.
func (s *Service) EvaluateAll(
	ctx context.Context,
	phases []domain.FlightPhase,
	base polar.Table,
	vpf domain.Strategy,
) ([]domain.Outcome, error) {
	start := time.Now()
	defer func() { telemetry.ObserveBatch(time.Since(start)) }()

	outcomes := make([]domain.Outcome, len(phases))
	run := func(i int) {
		phase := phases[i]
		outcomes[i].Phase = phase
		if err := ctx.Err(); err != nil {
			outcomes[i].Err = err
			return
		}
		res, err := s.Evaluate(phase, base, vpf)
		telemetry.ObservePhase(err == nil, ErrorKind(err))
		if err != nil {
			outcomes[i].Err = err
			s.logger.Error("phase evaluation failed", "phase", phase.Name, "error", err)
			return
		}
		outcomes[i].Result = &res
		s.logger.Info("phase evaluated",
			"phase", phase.Name,
			"alpha_fpf", res.FPF.AlphaDeg,
			"alpha_vpf", res.VPF.AlphaDeg,
			"delta_cd", res.Metrics.CDDelta)
	}

	if s.workers <= 1 {
		for i := range phases {
			run(i)
		}
		return outcomes, ctx.Err()
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range phases {
		g.Go(func() error {
			run(i)
			return nil // phase failures live in their outcome
		})
	}
	_ = g.Wait()
	return outcomes, ctx.Err()
}

// ErrorKind maps an evaluation error to a short label for metrics and
// reports; nil maps to "".
func ErrorKind(err error) string {
	var ood *domain.OutOfDomainError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &ood), errors.Is(err, domain.ErrOutOfDomain):
		return "out_of_domain"
	case errors.Is(err, domain.ErrInvalidMach):
		return "invalid_mach"
	case errors.Is(err, domain.ErrEmptyTable):
		return "empty_table"
	case errors.Is(err, domain.ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "other"
	}
}

// Compile-time assertion that Service implements domain.EvaluationService.
var _ domain.EvaluationService = (*Service)(nil)
