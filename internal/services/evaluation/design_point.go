package evaluation

import (
	"fmt"

	"turbofanvpf/internal/aero/compress"
	"turbofanvpf/internal/aero/incidence"
	"turbofanvpf/internal/aero/polar"
	"turbofanvpf/internal/aero/solver"
	"turbofanvpf/internal/domain"
)

// DesignPoint fixes the FPF incidence at the optimum of the design phase:
// the base polar is corrected for the design Mach number and target is
// resolved on it. The returned schedule holds that angle for every phase.
func DesignPoint(
	base polar.Table,
	design domain.FlightPhase,
	target domain.Strategy,
	c compress.Corrector,
	sv solver.Solver,
) (incidence.Constant, error) {
	if target.Kind == domain.StrategyFixed {
		return incidence.Constant(target.AlphaDeg), nil
	}
	corrected, _, err := c.Correct(base, design.Mach)
	if err != nil {
		return 0, fmt.Errorf("design phase %s: %w", design.Name, err)
	}
	op, err := sv.Resolve(corrected, target)
	if err != nil {
		return 0, fmt.Errorf("design phase %s: %w", design.Name, err)
	}
	return incidence.Constant(op.AlphaDeg), nil
}

// FindPhase returns the phase called name.
func FindPhase(phases []domain.FlightPhase, name domain.PhaseName) (domain.FlightPhase, bool) {
	for _, p := range phases {
		if p.Name == name {
			return p, true
		}
	}
	return domain.FlightPhase{}, false
}

// ScheduleSpec returns the wire form of sc. Schedules other than Law and
// Constant have no wire form and yield nil.
func ScheduleSpec(sc incidence.Schedule) *domain.ScheduleSpec {
	switch v := sc.(type) {
	case incidence.Law:
		return &domain.ScheduleSpec{Alpha0Deg: v.Alpha0Deg, MachRef: v.MachRef, KMach: v.KMach}
	case incidence.Constant:
		a := float64(v)
		return &domain.ScheduleSpec{ConstantDeg: &a}
	default:
		return nil
	}
}

// ScheduleFromSpec is the inverse of ScheduleSpec.
func ScheduleFromSpec(spec domain.ScheduleSpec) incidence.Schedule {
	if spec.ConstantDeg != nil {
		return incidence.Constant(*spec.ConstantDeg)
	}
	return incidence.Law{Alpha0Deg: spec.Alpha0Deg, MachRef: spec.MachRef, KMach: spec.KMach}
}
