package interfaces

import (
	"context"

	"turbofanvpf/internal/aero/polar"
	domaintypes "turbofanvpf/internal/domain/types"
)

// EvaluationService runs the FPF vs VPF pipeline.
type EvaluationService interface {
	// Evaluate is all-or-nothing for a single phase.
	Evaluate(
		phase domaintypes.FlightPhase,
		base polar.Table,
		vpf domaintypes.Strategy,
	) (domaintypes.PhaseResult, error)

	// EvaluateAll returns one outcome per phase in input order. A failed
	// phase does not affect the others.
	EvaluateAll(
		ctx context.Context,
		phases []domaintypes.FlightPhase,
		base polar.Table,
		vpf domaintypes.Strategy,
	) ([]domaintypes.Outcome, error)
}
