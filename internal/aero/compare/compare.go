// Package compare derives FPF vs VPF comparison metrics from two
// operating points.
package compare

import (
	"fmt"

	"turbofanvpf/internal/domain/types"
)

// LiftToDrag returns CL/CD, failing on a zero drag coefficient.
func LiftToDrag(op types.OperatingPoint) (float64, error) {
	if op.CD == 0 {
		return 0, fmt.Errorf("%w: L/D at alpha %.2f°", types.ErrDivisionByZero, op.AlphaDeg)
	}
	return op.CL / op.CD, nil
}

// Compare computes VPF relative to FPF. A zero FPF or VPF drag coefficient
// fails with ErrDivisionByZero. The L/D improvement percentage is left unset
// when FPF L/D is zero or negative.
func Compare(fpf, vpf types.OperatingPoint) (types.ComparisonMetrics, error) {
	if fpf.CD == 0 {
		return types.ComparisonMetrics{}, fmt.Errorf("%w: FPF CD is zero", types.ErrDivisionByZero)
	}
	ldFPF, err := LiftToDrag(fpf)
	if err != nil {
		return types.ComparisonMetrics{}, err
	}
	ldVPF, err := LiftToDrag(vpf)
	if err != nil {
		return types.ComparisonMetrics{}, err
	}

	delta := vpf.CD - fpf.CD
	pct := 100 * delta / fpf.CD
	m := types.ComparisonMetrics{
		CDDelta:        delta,
		CDRatio:        vpf.CD / fpf.CD,
		CDPctChange:    pct,
		LDFPF:          ldFPF,
		LDVPF:          ldVPF,
		LDDelta:        ldVPF - ldFPF,
		DeltaAlpha:     vpf.AlphaDeg - fpf.AlphaDeg,
		CDReductionPct: -pct,
	}
	if ldFPF > 0 {
		imp := 100 * (ldVPF - ldFPF) / ldFPF
		m.LDImprovementPct = &imp
	}
	return m, nil
}
