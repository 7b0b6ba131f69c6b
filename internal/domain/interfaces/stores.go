package interfaces

import (
	"turbofanvpf/internal/aero/polar"
	domaintypes "turbofanvpf/internal/domain/types"
)

// PolarStore loads base polar tables.
type PolarStore interface {
	LoadPolar(path string) (polar.Table, error)
}

// ResultStore persists the outcomes of a run.
type ResultStore interface {
	SaveResultsCSV(path string, outcomes []domaintypes.Outcome) error
	SaveJSON(path string, v any) error
}

// PolarRegistry keeps polars addressable by fingerprint.
type PolarRegistry interface {
	PutPolar(t polar.Table) domaintypes.Fingerprint
	GetPolar(fp domaintypes.Fingerprint) (polar.Table, bool)
}
