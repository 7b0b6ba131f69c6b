// Package compress applies the Prandtl-Glauert subsonic compressibility
// correction to polar tables.
package compress

import (
	"fmt"
	"math"

	"turbofanvpf/internal/aero/polar"
	"turbofanvpf/internal/domain/types"
)

// DefaultMachMaxValid is the Mach number above which Prandtl-Glauert
// accuracy is no longer trusted.
const DefaultMachMaxValid = 0.7

// Corrector scales CL by 1/β and CD by 1/β² where β = √(1 − M²).
type Corrector struct {
	// MachMaxValid is the advisory threshold; a zero value means
	// DefaultMachMaxValid.
	MachMaxValid float64
	// Disabled returns the input table unchanged and never warns.
	Disabled bool
}

// New returns a Corrector with the default validity threshold.
func New() Corrector { return Corrector{MachMaxValid: DefaultMachMaxValid} }

// Beta returns √(1 − M²). Mach numbers outside [0, 1) are rejected.
func Beta(mach float64) (float64, error) {
	if math.IsNaN(mach) || mach < 0 {
		return 0, fmt.Errorf("%w: %.3f is negative", types.ErrInvalidMach, mach)
	}
	if mach >= 1.0 {
		return 0, fmt.Errorf("%w: %.3f is not subsonic", types.ErrInvalidMach, mach)
	}
	return math.Sqrt(1.0 - mach*mach), nil
}

// Threshold returns the effective MachMaxValid.
func (c Corrector) Threshold() float64 {
	if c.MachMaxValid <= 0 {
		return DefaultMachMaxValid
	}
	return c.MachMaxValid
}

// Correct returns the corrected table for mach. The returned warning is
// non-nil iff mach > MachMaxValid; the table is still usable in that case.
func (c Corrector) Correct(t polar.Table, mach float64) (polar.Table, *types.CompressibilityWarning, error) {
	if t.Len() < 2 {
		return polar.Table{}, nil, types.ErrEmptyTable
	}
	if c.Disabled {
		return t, nil, nil
	}
	beta, err := Beta(mach)
	if err != nil {
		return polar.Table{}, nil, err
	}
	beta2 := beta * beta
	out, err := t.Map(func(cl, cd float64) (float64, float64) {
		return cl / beta, cd / beta2
	})
	if err != nil {
		return polar.Table{}, nil, fmt.Errorf("correct polar at mach %.3f: %w", mach, err)
	}
	var warn *types.CompressibilityWarning
	if limit := c.Threshold(); mach > limit {
		warn = &types.CompressibilityWarning{Mach: mach, MachMaxValid: limit}
	}
	return out, warn, nil
}
