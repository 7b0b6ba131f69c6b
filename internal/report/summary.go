package report

import (
	"math"

	"github.com/google/uuid"

	"turbofanvpf/internal/domain"
)

// Summary aggregates the successful phases of a run.
type Summary struct {
	Phases   int `json:"phases"`
	Failed   int `json:"failed"`
	Warnings int `json:"warnings"`

	MeanCDDelta       float64 `json:"mean_cd_delta"`
	MeanCDRatio       float64 `json:"mean_cd_ratio"`
	MeanAbsDeltaAlpha float64 `json:"mean_abs_delta_alpha_deg"`
	MaxAbsDeltaAlpha  float64 `json:"max_abs_delta_alpha_deg"`

	// Best is the phase where VPF saves the most drag (most negative
	// cd_delta); Worst the least. Empty when no phase succeeded.
	Best  domain.PhaseName `json:"best_phase,omitempty"`
	Worst domain.PhaseName `json:"worst_phase,omitempty"`
}

// Succeeded returns the number of phases that produced a result.
func (s Summary) Succeeded() int { return s.Phases - s.Failed }

// Summarize computes run statistics. Ties for best or worst keep the
// earlier phase.
func Summarize(outcomes []domain.Outcome) Summary {
	s := Summary{Phases: len(outcomes)}
	var n int
	best, worst := math.Inf(1), math.Inf(-1)
	for _, o := range outcomes {
		if !o.OK() {
			s.Failed++
			continue
		}
		r := o.Result
		m := r.Metrics
		n++
		if r.Warning != nil {
			s.Warnings++
		}
		s.MeanCDDelta += m.CDDelta
		s.MeanCDRatio += m.CDRatio
		da := math.Abs(m.DeltaAlpha)
		s.MeanAbsDeltaAlpha += da
		s.MaxAbsDeltaAlpha = math.Max(s.MaxAbsDeltaAlpha, da)
		if m.CDDelta < best {
			best, s.Best = m.CDDelta, r.Phase.Name
		}
		if m.CDDelta > worst {
			worst, s.Worst = m.CDDelta, r.Phase.Name
		}
	}
	if n > 0 {
		k := float64(n)
		s.MeanCDDelta /= k
		s.MeanCDRatio /= k
		s.MeanAbsDeltaAlpha /= k
	}
	return s
}

// Run is the JSON document written for a complete run.
type Run struct {
	ID       domain.RunID           `json:"run_id"`
	Polar    domain.Fingerprint     `json:"polar"`
	Target   domain.Strategy        `json:"target"`
	Outcomes []domain.OutcomeRecord `json:"outcomes"`
	Summary  Summary                `json:"summary"`
}

// NewRun assembles the run document with a fresh ID.
func NewRun(fp domain.Fingerprint, target domain.Strategy, outcomes []domain.Outcome) Run {
	return Run{
		ID:       NewRunID(),
		Polar:    fp,
		Target:   target,
		Outcomes: domain.Records(outcomes),
		Summary:  Summarize(outcomes),
	}
}

// NewRunID returns a random run identifier.
func NewRunID() domain.RunID { return domain.RunID(uuid.NewString()) }
