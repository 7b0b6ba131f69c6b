package interfaces

import (
	"context"

	"turbofanvpf/internal/aero/polar"
	domaintypes "turbofanvpf/internal/domain/types"
)

// RelayClient talks to a remote evaluation server, all with context.
type RelayClient interface {
	RegisterPolar(ctx context.Context, t polar.Table) (domaintypes.Fingerprint, error)
	FetchPolar(ctx context.Context, fp domaintypes.Fingerprint) (polar.Table, error)
	Evaluate(
		ctx context.Context,
		fp domaintypes.Fingerprint,
		req domaintypes.EvaluateRequest,
	) (domaintypes.EvaluateResponse, error)
}
