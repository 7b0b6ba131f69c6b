package types

import "errors"

// EvaluateRequest asks the evaluation server to run a batch against a
// stored polar.
type EvaluateRequest struct {
	Phases []FlightPhase `json:"phases"`
	Target Strategy      `json:"target"`
	Refine bool          `json:"refine,omitempty"`
	// Schedule overrides the server's FPF incidence schedule.
	Schedule *ScheduleSpec `json:"schedule,omitempty"`
}

// ScheduleSpec describes an FPF incidence schedule on the wire: the linear
// law, or a constant angle when ConstantDeg is set.
type ScheduleSpec struct {
	Alpha0Deg   float64  `json:"alpha0_deg"`
	MachRef     float64  `json:"mach_ref"`
	KMach       float64  `json:"k_mach_deg_per_mach"`
	ConstantDeg *float64 `json:"constant_deg,omitempty"`
}

// OutcomeRecord is the JSON form of an Outcome.
type OutcomeRecord struct {
	Phase  FlightPhase  `json:"phase"`
	Result *PhaseResult `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// EvaluateResponse carries one record per requested phase, in order.
type EvaluateResponse struct {
	RunID    RunID           `json:"run_id"`
	Polar    Fingerprint     `json:"polar"`
	Outcomes []OutcomeRecord `json:"outcomes"`
	// Correction is the compressibility correction the server applied.
	Correction *CorrectionSpec `json:"correction,omitempty"`
}

// CorrectionSpec describes a compressibility corrector on the wire.
type CorrectionSpec struct {
	Enabled      bool    `json:"enabled"`
	MachMaxValid float64 `json:"mach_max_valid"`
}

// Records converts outcomes to their wire form.
func Records(outcomes []Outcome) []OutcomeRecord {
	out := make([]OutcomeRecord, len(outcomes))
	for i, o := range outcomes {
		out[i] = OutcomeRecord{Phase: o.Phase, Result: o.Result}
		if o.Err != nil {
			out[i].Error = o.Err.Error()
		}
	}
	return out
}

// Results converts wire records back. Remote errors lose their kind and
// come back as plain errors carrying the server's message.
func (r EvaluateResponse) Results() []Outcome {
	out := make([]Outcome, len(r.Outcomes))
	for i, rec := range r.Outcomes {
		out[i] = Outcome{Phase: rec.Phase, Result: rec.Result}
		if rec.Error != "" {
			out[i].Err = errors.New(rec.Error)
		}
	}
	return out
}

// PolarRegistered acknowledges a stored polar.
type PolarRegistered struct {
	Fingerprint Fingerprint `json:"fingerprint"`
	Points      int         `json:"points"`
}

// ErrorBody is the JSON body of a non-2xx server response.
type ErrorBody struct {
	Error string `json:"error"`
}
