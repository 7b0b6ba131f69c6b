package solver

import (
	"fmt"
	"math"

	"turbofanvpf/internal/aero/polar"
	"turbofanvpf/internal/domain/types"
)

// Solver resolves strategies into operating points.
type Solver struct {
	Refine bool
}

// Resolve resolves s against t with grid-only optimisation.
func Resolve(t polar.Table, s types.Strategy) (types.OperatingPoint, error) {
	return Solver{}.Resolve(t, s)
}

// Resolve returns the operating point strategy s realises on t.
func (v Solver) Resolve(t polar.Table, s types.Strategy) (types.OperatingPoint, error) {
	switch s.Kind {
	case types.StrategyFixed:
		return t.OperatingPoint(s.AlphaDeg)
	case types.StrategyMaxLD, types.StrategyMinCD:
		if t.Len() < 2 {
			return types.OperatingPoint{}, types.ErrEmptyTable
		}
		score, err := objective(t, s.Kind)
		if err != nil {
			return types.OperatingPoint{}, err
		}
		k := argBest(score, s.Kind)
		if v.Refine {
			if op, ok := refine(t, score, k, s.Kind); ok {
				return op, nil
			}
		}
		p := t.At(k)
		return types.OperatingPoint{AlphaDeg: p.AlphaDeg, CL: p.CL, CD: p.CD}, nil
	default:
		return types.OperatingPoint{}, fmt.Errorf("unknown strategy kind %d", s.Kind)
	}
}

// objective evaluates CL/CD or CD at every grid point.
func objective(t polar.Table, kind types.StrategyKind) ([]float64, error) {
	out := make([]float64, t.Len())
	for i := range out {
		p := t.At(i)
		if kind == types.StrategyMinCD {
			out[i] = p.CD
			continue
		}
		if p.CD == 0 {
			return nil, fmt.Errorf("%w: at alpha %.2f°", types.ErrDivisionByZero, p.AlphaDeg)
		}
		out[i] = p.CL / p.CD
	}
	return out, nil
}

// argBest returns the first index holding the extremum.
func argBest(score []float64, kind types.StrategyKind) int {
	best := 0
	for i := 1; i < len(score); i++ {
		if kind == types.StrategyMinCD && score[i] < score[best] {
			best = i
		}
		if kind == types.StrategyMaxLD && score[i] > score[best] {
			best = i
		}
	}
	return best
}

// refine fits a parabola through grid points k-1, k, k+1. Endpoints,
// degenerate (collinear) triples and refined points that score no better
// than grid point k keep the grid answer.
func refine(t polar.Table, score []float64, k int, kind types.StrategyKind) (types.OperatingPoint, bool) {
	if k == 0 || k == t.Len()-1 {
		return types.OperatingPoint{}, false
	}
	a, b, c := t.At(k-1), t.At(k), t.At(k+1)
	x, ok := vertex(a.AlphaDeg, b.AlphaDeg, c.AlphaDeg, score[k-1], score[k], score[k+1])
	if !ok {
		return types.OperatingPoint{}, false
	}
	x = math.Max(a.AlphaDeg, math.Min(c.AlphaDeg, x))
	op := types.OperatingPoint{
		AlphaDeg: x,
		CL:       quadratic(a.AlphaDeg, b.AlphaDeg, c.AlphaDeg, a.CL, b.CL, c.CL, x),
		CD:       quadratic(a.AlphaDeg, b.AlphaDeg, c.AlphaDeg, a.CD, b.CD, c.CD, x),
	}
	switch kind {
	case types.StrategyMinCD:
		if !(op.CD < score[k]) {
			return types.OperatingPoint{}, false
		}
	case types.StrategyMaxLD:
		if op.CD <= 0 || !(op.CL/op.CD > score[k]) {
			return types.OperatingPoint{}, false
		}
	}
	return op, true
}

// vertex returns the abscissa of the parabola through (a,fa), (b,fb), (c,fc).
func vertex(a, b, c, fa, fb, fc float64) (float64, bool) {
	num := (b-a)*(b-a)*(fb-fc) - (b-c)*(b-c)*(fb-fa)
	den := (b-a)*(fb-fc) - (b-c)*(fb-fa)
	if den == 0 {
		return 0, false
	}
	return b - 0.5*num/den, true
}

// quadratic evaluates the Lagrange polynomial through three points at x.
func quadratic(a, b, c, fa, fb, fc, x float64) float64 {
	la := (x - b) * (x - c) / ((a - b) * (a - c))
	lb := (x - a) * (x - c) / ((b - a) * (b - c))
	lc := (x - a) * (x - b) / ((c - a) * (c - b))
	return fa*la + fb*lb + fc*lc
}
