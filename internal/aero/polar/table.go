package polar

import (
	"fmt"
	"math"
	"sort"

	"turbofanvpf/internal/domain/types"
)

// Table is an immutable polar. The zero value has no points and fails every
// query with ErrEmptyTable.
type Table struct {
	alpha []float64
	cl    []float64
	cd    []float64
}

// New validates points and returns a Table that owns a private copy of them.
func New(points []types.PolarPoint) (Table, error) {
	if len(points) < 2 {
		return Table{}, fmt.Errorf("%w: got %d", types.ErrEmptyTable, len(points))
	}
	t := Table{
		alpha: make([]float64, len(points)),
		cl:    make([]float64, len(points)),
		cd:    make([]float64, len(points)),
	}
	for i, p := range points {
		if !finite(p.AlphaDeg) || !finite(p.CL) || !finite(p.CD) {
			return Table{}, fmt.Errorf("%w: row %d (%v, %v, %v)", types.ErrNonFiniteValue, i, p.AlphaDeg, p.CL, p.CD)
		}
		if i > 0 && p.AlphaDeg <= points[i-1].AlphaDeg {
			return Table{}, fmt.Errorf("%w: row %d alpha %.4f after %.4f",
				types.ErrUnsortedAngles, i, p.AlphaDeg, points[i-1].AlphaDeg)
		}
		t.alpha[i], t.cl[i], t.cd[i] = p.AlphaDeg, p.CL, p.CD
	}
	return t, nil
}

// MustNew is New for literal tables in tests and examples; it panics on error.
func MustNew(points []types.PolarPoint) Table {
	t, err := New(points)
	if err != nil {
		panic(err)
	}
	return t
}

// FromColumns builds a Table from parallel alpha, CL and CD slices.
func FromColumns(alpha, cl, cd []float64) (Table, error) {
	if len(alpha) != len(cl) || len(alpha) != len(cd) {
		return Table{}, fmt.Errorf("column lengths differ: alpha=%d cl=%d cd=%d", len(alpha), len(cl), len(cd))
	}
	pts := make([]types.PolarPoint, len(alpha))
	for i := range alpha {
		pts[i] = types.PolarPoint{AlphaDeg: alpha[i], CL: cl[i], CD: cd[i]}
	}
	return New(pts)
}

// Len returns the number of tabulated points.
func (t Table) Len() int { return len(t.alpha) }

// At returns the i-th tabulated point.
func (t Table) At(i int) types.PolarPoint {
	return types.PolarPoint{AlphaDeg: t.alpha[i], CL: t.cl[i], CD: t.cd[i]}
}

// Points returns a copy of the tabulated points in ascending angle order.
func (t Table) Points() []types.PolarPoint {
	out := make([]types.PolarPoint, t.Len())
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

// Angles returns a copy of the tabulated angles.
func (t Table) Angles() []float64 { return append([]float64(nil), t.alpha...) }

// Domain returns the smallest and largest tabulated angle.
func (t Table) Domain() (lo, hi float64) {
	if t.Len() == 0 {
		return math.NaN(), math.NaN()
	}
	return t.alpha[0], t.alpha[len(t.alpha)-1]
}

// Map returns a new Table with the same angles and coefficients produced by
// fn. The receiver is left untouched.
func (t Table) Map(fn func(cl, cd float64) (float64, float64)) (Table, error) {
	pts := t.Points()
	for i := range pts {
		pts[i].CL, pts[i].CD = fn(pts[i].CL, pts[i].CD)
	}
	return New(pts)
}

// Interpolate returns CL and CD at alphaDeg. A tabulated angle returns that
// row exactly; anything outside [min, max] is an *types.OutOfDomainError.
func (t Table) Interpolate(alphaDeg float64) (cl, cd float64, err error) {
	if t.Len() < 2 {
		return 0, 0, types.ErrEmptyTable
	}
	lo, hi := t.Domain()
	if math.IsNaN(alphaDeg) || alphaDeg < lo || alphaDeg > hi {
		return 0, 0, &types.OutOfDomainError{AlphaDeg: alphaDeg, Min: lo, Max: hi}
	}

	// First index with alpha >= alphaDeg.
	j := sort.SearchFloat64s(t.alpha, alphaDeg)
	if t.alpha[j] == alphaDeg {
		return t.cl[j], t.cd[j], nil
	}
	i := j - 1
	f := (alphaDeg - t.alpha[i]) / (t.alpha[j] - t.alpha[i])
	return lerp(t.cl[i], t.cl[j], f), lerp(t.cd[i], t.cd[j], f), nil
}

// OperatingPoint interpolates the table at alphaDeg.
func (t Table) OperatingPoint(alphaDeg float64) (types.OperatingPoint, error) {
	cl, cd, err := t.Interpolate(alphaDeg)
	if err != nil {
		return types.OperatingPoint{}, err
	}
	return types.OperatingPoint{AlphaDeg: alphaDeg, CL: cl, CD: cd}, nil
}

func lerp(a, b, f float64) float64 { return a + (b-a)*f }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
