package polar_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turbofanvpf/internal/aero/polar"
	"turbofanvpf/internal/domain/types"
)

// scenarioPoints is the four-point reference polar.
func scenarioPoints() []types.PolarPoint {
	return []types.PolarPoint{
		{AlphaDeg: -2, CL: 0.1, CD: 0.02},
		{AlphaDeg: 0, CL: 0.3, CD: 0.018},
		{AlphaDeg: 4, CL: 0.7, CD: 0.025},
		{AlphaDeg: 8, CL: 1.0, CD: 0.05},
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		points []types.PolarPoint
		want   error
	}{
		{"empty", nil, types.ErrEmptyTable},
		{"single point", scenarioPoints()[:1], types.ErrEmptyTable},
		{"unsorted", []types.PolarPoint{{AlphaDeg: 2}, {AlphaDeg: 1}}, types.ErrUnsortedAngles},
		{"duplicate angle", []types.PolarPoint{{AlphaDeg: 1}, {AlphaDeg: 1}}, types.ErrUnsortedAngles},
		{"nan cd", []types.PolarPoint{{AlphaDeg: 0}, {AlphaDeg: 1, CD: math.NaN()}}, types.ErrNonFiniteValue},
		{"inf alpha", []types.PolarPoint{{AlphaDeg: 0}, {AlphaDeg: math.Inf(1)}}, types.ErrNonFiniteValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := polar.New(tt.points)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	pts := scenarioPoints()
	tbl := polar.MustNew(pts)
	pts[2].CL = 99

	cl, _, err := tbl.Interpolate(4)
	require.NoError(t, err)
	assert.Equal(t, 0.7, cl)
}

func TestInterpolate_ExactAtTabulatedAngles(t *testing.T) {
	tbl := polar.MustNew(scenarioPoints())
	for _, p := range scenarioPoints() {
		cl, cd, err := tbl.Interpolate(p.AlphaDeg)
		require.NoError(t, err)
		assert.Equal(t, p.CL, cl, "CL at %v", p.AlphaDeg)
		assert.Equal(t, p.CD, cd, "CD at %v", p.AlphaDeg)
	}
}

func TestInterpolate_Linear(t *testing.T) {
	tbl := polar.MustNew(scenarioPoints())

	cl, cd, err := tbl.Interpolate(2)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, cl, 1e-12)
	assert.InDelta(t, 0.0215, cd, 1e-12)

	cl, cd, err = tbl.Interpolate(-1)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, cl, 1e-12)
	assert.InDelta(t, 0.019, cd, 1e-12)
}

func TestInterpolate_OutOfDomain(t *testing.T) {
	tbl := polar.MustNew(scenarioPoints())

	for _, alpha := range []float64{-2.0001, -10, 8.0001, 45, math.NaN()} {
		_, _, err := tbl.Interpolate(alpha)
		require.Error(t, err, "alpha %v", alpha)
		assert.ErrorIs(t, err, types.ErrOutOfDomain)

		var ood *types.OutOfDomainError
		require.True(t, errors.As(err, &ood))
		assert.Equal(t, -2.0, ood.Min)
		assert.Equal(t, 8.0, ood.Max)
	}
}

func TestInterpolate_ZeroTable(t *testing.T) {
	var tbl polar.Table
	_, _, err := tbl.Interpolate(0)
	assert.ErrorIs(t, err, types.ErrEmptyTable)
}

func TestFromColumns(t *testing.T) {
	tbl, err := polar.FromColumns([]float64{0, 1}, []float64{0.1, 0.2}, []float64{0.01, 0.02})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())

	_, err = polar.FromColumns([]float64{0, 1}, []float64{0.1}, []float64{0.01, 0.02})
	assert.Error(t, err)
}

func TestMap_LeavesReceiverUntouched(t *testing.T) {
	tbl := polar.MustNew(scenarioPoints())
	doubled, err := tbl.Map(func(cl, cd float64) (float64, float64) { return 2 * cl, 2 * cd })
	require.NoError(t, err)

	assert.Equal(t, 0.7, tbl.At(2).CL)
	assert.Equal(t, 1.4, doubled.At(2).CL)
	assert.Equal(t, tbl.Angles(), doubled.Angles())
}

func TestJSON_RoundTripValidates(t *testing.T) {
	in := polar.MustNew(scenarioPoints())
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"alpha_deg":-2,"cl":0.1,"cd":0.02},{"alpha_deg":0,"cl":0.3,"cd":0.018},
		{"alpha_deg":4,"cl":0.7,"cd":0.025},{"alpha_deg":8,"cl":1,"cd":0.05}]`, string(b))

	var out polar.Table
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in.Points(), out.Points())

	err = json.Unmarshal([]byte(`[{"alpha_deg":1,"cl":0,"cd":0},{"alpha_deg":0,"cl":0,"cd":0}]`), &out)
	assert.ErrorIs(t, err, types.ErrUnsortedAngles)
}
