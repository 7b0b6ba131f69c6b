package types

// ComparisonMetrics are derived purely from the FPF and VPF operating points.
type ComparisonMetrics struct {
	CDDelta     float64 `json:"cd_delta"`
	CDRatio     float64 `json:"cd_ratio"`
	CDPctChange float64 `json:"cd_pct_change"`
	LDFPF       float64 `json:"ld_fpf"`
	LDVPF       float64 `json:"ld_vpf"`
	LDDelta     float64 `json:"ld_delta"`

	// DeltaAlpha is the pitch change VPF applies relative to FPF.
	DeltaAlpha float64 `json:"delta_alpha_deg"`
	// CDReductionPct is positive when VPF drags less than FPF.
	CDReductionPct float64 `json:"cd_reduction_pct"`
	// LDImprovementPct is nil unless FPF L/D is positive.
	LDImprovementPct *float64 `json:"ld_improvement_pct,omitempty"`
}

// CompressibilityWarning is advisory: the Prandtl-Glauert correction was
// applied above its trusted Mach range. It never halts computation.
type CompressibilityWarning struct {
	Phase        PhaseName `json:"phase,omitempty"`
	Mach         float64   `json:"mach"`
	MachMaxValid float64   `json:"mach_max_valid"`
}

// PhaseResult is the all-or-nothing outcome of evaluating one phase.
type PhaseResult struct {
	Phase   FlightPhase             `json:"phase"`
	FPF     OperatingPoint          `json:"fpf"`
	VPF     OperatingPoint          `json:"vpf"`
	Metrics ComparisonMetrics       `json:"metrics"`
	Warning *CompressibilityWarning `json:"warning,omitempty"`
}

// Outcome pairs a phase with either its result or the error that aborted it.
type Outcome struct {
	Phase  FlightPhase
	Result *PhaseResult
	Err    error
}

// OK reports whether the phase evaluated successfully.
func (o Outcome) OK() bool { return o.Err == nil && o.Result != nil }
