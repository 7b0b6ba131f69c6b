package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	"turbofanvpf/internal/aero/compress"
	"turbofanvpf/internal/aero/incidence"
	"turbofanvpf/internal/aero/polar"
	"turbofanvpf/internal/aero/solver"
	"turbofanvpf/internal/digest"
	"turbofanvpf/internal/domain"
	"turbofanvpf/internal/relay"
	"turbofanvpf/internal/report"
	"turbofanvpf/internal/services/evaluation"
	"turbofanvpf/internal/store"
)

// Wire bundles the loaded polar, services and clients for one run.
type Wire struct {
	Config   Config
	Base     polar.Table
	Polar    domain.Fingerprint
	Target   domain.Strategy
	Schedule incidence.Schedule

	Polars    domain.PolarStore
	Results   domain.ResultStore
	Evaluator domain.EvaluationService
	Relay     domain.RelayClient // nil for local evaluation
	Plotter   report.Plotter
	Logger    *slog.Logger
}

// NewWire validates cfg, loads the base polar and constructs the dependency
// graph. httpClient is used for the relay and may be nil.
func NewWire(cfg Config, logger *slog.Logger, httpClient *http.Client) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	target, err := cfg.Target()
	if err != nil {
		return nil, err
	}

	var polars domain.PolarStore = store.NewFileStore("")
	base, err := polars.LoadPolar(cfg.Polar)
	if err != nil {
		return nil, err
	}
	corrector := cfg.Corrector()
	sv := solver.Solver{Refine: cfg.VPF.Refine}

	var schedule incidence.Schedule = cfg.Incidence
	if cfg.FPF.Schedule == ScheduleDesignPoint {
		design, _ := evaluation.FindPhase(cfg.Phases, domain.PhaseName(cfg.FPF.DesignPhase))
		designTarget := target
		if cfg.FPF.DesignTarget != "" {
			if designTarget, err = domain.ParseTarget(cfg.FPF.DesignTarget); err != nil {
				return nil, err
			}
		}
		c, err := evaluation.DesignPoint(base, design, designTarget, corrector, sv)
		if err != nil {
			return nil, err
		}
		logger.Info("fpf fixed at design point", "phase", design.Name, "alpha_deg", float64(c))
		schedule = c
	}

	w := &Wire{
		Config:   cfg,
		Base:     base,
		Polar:    digest.Polar(base),
		Target:   target,
		Schedule: schedule,
		Polars:   polars,
		Results:  store.NewFileStore(cfg.Output.Dir),
		Evaluator: evaluation.New(
			evaluation.WithCorrector(corrector),
			evaluation.WithSchedule(schedule),
			evaluation.WithRefinement(cfg.VPF.Refine),
			evaluation.WithWorkers(cfg.Workers),
			evaluation.WithLogger(logger),
		),
		Plotter: report.NewPlotter(corrector),
		Logger:  logger,
	}
	if cfg.Server != "" {
		rc := relay.NewHTTP(cfg.Server)
		if httpClient != nil {
			rc.HTTP = httpClient
		}
		w.Relay = rc
	}
	return w, nil
}

// Evaluate runs every configured phase, remotely when a relay is wired.
func (w *Wire) Evaluate(ctx context.Context) ([]domain.Outcome, error) {
	if w.Relay == nil {
		return w.Evaluator.EvaluateAll(ctx, w.Config.Phases, w.Base, w.Target)
	}

	fp, err := w.Relay.RegisterPolar(ctx, w.Base)
	if err != nil {
		return nil, err
	}
	if fp != w.Polar {
		return nil, fmt.Errorf("server fingerprint %s does not match local %s", fp, w.Polar)
	}
	w.Logger.Debug("polar registered", "server", w.Config.Server, "fingerprint", fp)
	resp, err := w.Relay.Evaluate(ctx, fp, domain.EvaluateRequest{
		Phases:   w.Config.Phases,
		Target:   w.Target,
		Refine:   w.Config.VPF.Refine,
		Schedule: evaluation.ScheduleSpec(w.Schedule),
	})
	if err != nil {
		return nil, err
	}
	if c := resp.Correction; c != nil {
		w.Plotter.Corrector = compress.Corrector{MachMaxValid: c.MachMaxValid, Disabled: !c.Enabled}
		w.Logger.Debug("server correction", "enabled", c.Enabled, "mach_max_valid", c.MachMaxValid)
	}
	return resp.Results(), nil
}

// Export writes the outputs enabled in cfg.Output and returns their paths.
func (w *Wire) Export(run report.Run, outcomes []domain.Outcome) ([]string, error) {
	out := w.Config.Output
	var paths []string
	if out.CSV {
		if err := w.Results.SaveResultsCSV(ResultsCSV, outcomes); err != nil {
			return paths, fmt.Errorf("export csv: %w", err)
		}
		paths = append(paths, filepath.Join(out.Dir, ResultsCSV))
	}
	if out.JSON {
		if err := w.Results.SaveJSON(ResultsJSON, run); err != nil {
			return paths, fmt.Errorf("export json: %w", err)
		}
		paths = append(paths, filepath.Join(out.Dir, ResultsJSON))
	}
	if out.Plots && run.Summary.Succeeded() > 0 {
		figs, err := w.Plotter.WriteAll(filepath.Join(out.Dir, FiguresDir), w.Base, outcomes)
		paths = append(paths, figs...)
		if err != nil {
			return paths, err
		}
	}
	return paths, nil
}

// Output file names under Output.Dir.
const (
	ResultsCSV  = "results_by_phase.csv"
	ResultsJSON = "results.json"
	FiguresDir  = "figures"
)
