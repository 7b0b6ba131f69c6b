package store_test

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turbofanvpf/internal/aero/polar"
	"turbofanvpf/internal/domain"
	"turbofanvpf/internal/store"
)

func TestReadPolarCSV(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantLen int
		wantErr error
	}{
		{
			name:    "plain",
			in:      "alpha_deg,cl,cd\n-2,0.1,0.02\n0,0.3,0.018\n4,0.7,0.025\n",
			wantLen: 3,
		},
		{
			name:    "reordered mixed case with blanks",
			in:      "CD, Alpha_Deg ,CL,re\n\n0.02,-2,0.1,1e6\n\n0.018,0,0.3,1e6\n",
			wantLen: 2,
		},
		{
			name:    "nan rows dropped",
			in:      "alpha_deg,cl,cd\n-2,0.1,0.02\n0,NaN,0.018\n4,0.7,0.025\n",
			wantLen: 2,
		},
		{
			name:    "missing cd",
			in:      "alpha_deg,cl\n0,0.3\n",
			wantErr: store.ErrMissingColumn,
		},
		{
			name:    "no rows",
			in:      "alpha_deg,cl,cd\n",
			wantErr: store.ErrNoRows,
		},
		{
			name:    "unsorted",
			in:      "alpha_deg,cl,cd\n4,0.7,0.025\n0,0.3,0.018\n",
			wantErr: domain.ErrUnsortedAngles,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab, err := store.ReadPolarCSV(strings.NewReader(tt.in))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, tab.Len())
		})
	}
}

func TestReadPolarCSV_BadNumber(t *testing.T) {
	_, err := store.ReadPolarCSV(strings.NewReader("alpha_deg,cl,cd\n0,abc,0.01\n1,0.2,0.01\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestFileStore_PolarRoundTrip(t *testing.T) {
	s := store.NewFileStore(t.TempDir())
	in := polar.MustNew([]domain.PolarPoint{
		{AlphaDeg: -2, CL: 0.1, CD: 0.02},
		{AlphaDeg: 0.5, CL: 0.35, CD: 0.0181},
	})

	require.NoError(t, s.SavePolar("base.csv", in))
	out, err := s.LoadPolar("base.csv")
	require.NoError(t, err)
	assert.Equal(t, in.Points(), out.Points())

	_, err = s.LoadPolar("missing.csv")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func sampleOutcomes() []domain.Outcome {
	ok := domain.PhaseResult{
		Phase: domain.FlightPhase{Name: "cruise", AltitudeM: 11000, Mach: 0.8},
		FPF:   domain.OperatingPoint{AlphaDeg: 4.6, CL: 1.2, CD: 0.05},
		VPF:   domain.OperatingPoint{AlphaDeg: 0, CL: 0.5, CD: 0.03},
		Metrics: domain.ComparisonMetrics{
			CDDelta: -0.02, CDRatio: 0.6, CDPctChange: -40, DeltaAlpha: -4.6,
		},
		Warning: &domain.CompressibilityWarning{Phase: "cruise", Mach: 0.8, MachMaxValid: 0.7},
	}
	return []domain.Outcome{
		{Phase: ok.Phase, Result: &ok},
		{Phase: domain.FlightPhase{Name: "dash", Mach: 0.95}, Err: domain.ErrOutOfDomain},
	}
}

func TestFileStore_SaveResultsCSV(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStore(dir)

	require.NoError(t, s.SaveResultsCSV(filepath.Join("out", "results_by_phase.csv"), sampleOutcomes()))

	f, err := os.Open(filepath.Join(dir, "out", "results_by_phase.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 2, "failed phase is not exported")
	assert.Equal(t, store.ResultColumns, rows[0])
	assert.Equal(t, "cruise", rows[1][0])
	assert.Equal(t, "11000.000000", rows[1][1])
	assert.Equal(t, "-0.020000", rows[1][10])
	assert.Equal(t, "", rows[1][len(rows[1])-2], "zero FPF L/D has no improvement pct")
	assert.Equal(t, "true", rows[1][len(rows[1])-1])
}

func TestFileStore_SaveJSON(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStore(dir)

	resp := domain.EvaluateResponse{RunID: "r1", Polar: "abc", Outcomes: domain.Records(sampleOutcomes())}
	require.NoError(t, s.SaveJSON("results.json", resp))

	b, err := os.ReadFile(filepath.Join(dir, "results.json"))
	require.NoError(t, err)
	var got domain.EvaluateResponse
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, resp, got)

	leftovers, _ := filepath.Glob(filepath.Join(dir, "*.tmp-*"))
	assert.Empty(t, leftovers)
}

func TestYAML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.yaml")
	in := struct {
		Phases []domain.FlightPhase `yaml:"phases"`
	}{Phases: domain.DefaultPhases()}

	require.NoError(t, store.SaveYAML(path, in))
	out := in
	out.Phases = nil
	require.NoError(t, store.LoadYAML(path, &out))
	assert.Equal(t, in, out)

	assert.Error(t, store.LoadYAML(filepath.Join(t.TempDir(), "nope.yaml"), &out))
}

func TestRegistry(t *testing.T) {
	r := store.NewRegistry()
	tab := polar.MustNew([]domain.PolarPoint{{AlphaDeg: 0, CL: 0.3, CD: 0.02}, {AlphaDeg: 4, CL: 0.7, CD: 0.03}})

	fp := r.PutPolar(tab)
	assert.Equal(t, fp, r.PutPolar(tab))
	assert.Equal(t, 1, r.Len())

	got, ok := r.GetPolar(fp)
	require.True(t, ok)
	assert.Equal(t, tab.Points(), got.Points())

	_, ok = r.GetPolar("missing")
	assert.False(t, ok)
}
