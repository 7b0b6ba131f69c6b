package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	s, err := ParseTarget("max_ld")
	require.NoError(t, err)
	assert.Equal(t, MaxLoverD(), s)

	s, err = ParseTarget(" MIN_CD ")
	require.NoError(t, err)
	assert.Equal(t, MinCD(), s)

	_, err = ParseTarget("fixed")
	assert.Error(t, err)
}

func TestStrategy_JSON(t *testing.T) {
	for _, s := range []Strategy{Fixed(3.5), MaxLoverD(), MinCD()} {
		b, err := json.Marshal(s)
		require.NoError(t, err)

		var got Strategy
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, s, got, string(b))
	}
}

func TestStrategy_JSONFixedNeedsAngle(t *testing.T) {
	var s Strategy
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"fixed"}`), &s))
}

func TestEvaluateResponse_Results(t *testing.T) {
	resp := EvaluateResponse{Outcomes: []OutcomeRecord{
		{Phase: FlightPhase{Name: "climb"}, Result: &PhaseResult{}},
		{Phase: FlightPhase{Name: "cruise"}, Error: "boom"},
	}}
	got := resp.Results()
	require.Len(t, got, 2)
	assert.True(t, got[0].OK())
	assert.False(t, got[1].OK())
	assert.EqualError(t, got[1].Err, "boom")
}
