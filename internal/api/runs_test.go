package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEquityPointArray(t *testing.T) {
	raw := json.RawMessage(`[
		{"time":"2024-01-01","equity":1.0,"drawdown":0,"log_return":0},
		{"time":"2024-01-02","equity":1.1,"drawdown":0,"log_return":0.0953},
		{"time":"2024-01-03","equity":1.05,"drawdown":-0.0455}
	]`)

	points, err := normalizeEquity(raw)
	require.NoError(t, err)
	require.Len(t, points, 3)

	for i, p := range points {
		assert.Equal(t, i, p.Time, "time is the positional index")
	}
	assert.Equal(t, 1.1, points[1].Equity)
	require.NotNil(t, points[2].Drawdown)
	assert.InDelta(t, -0.0455, *points[2].Drawdown, 1e-9)
	assert.Nil(t, points[2].LogReturn, "missing per-point field stays nil")
}

func TestNormalizeEquityColumnar(t *testing.T) {
	raw := json.RawMessage(`{
		"equity": [1.0, 1.1, 1.05],
		"drawdown": [0, 0, -0.045],
		"log_return": [0, 0.0953, -0.0465]
	}`)

	points, err := normalizeEquity(raw)
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.Equal(t, 0, points[0].Time)
	assert.Equal(t, 1, points[1].Time)
	assert.Equal(t, 2, points[2].Time)
	assert.Equal(t, 1.05, points[2].Equity)
	require.NotNil(t, points[2].Drawdown)
	assert.Equal(t, -0.045, *points[2].Drawdown)
	require.NotNil(t, points[1].LogReturn)
	assert.Equal(t, 0.0953, *points[1].LogReturn)
}

func TestNormalizeEquityColumnarShortColumn(t *testing.T) {
	raw := json.RawMessage(`{
		"equity": [1.0, 1.1, 1.05],
		"drawdown": [0, -0.01]
	}`)

	points, err := normalizeEquity(raw)
	require.NoError(t, err)
	require.Len(t, points, 3)

	require.NotNil(t, points[0].Drawdown)
	assert.Equal(t, 0.0, *points[0].Drawdown)
	require.NotNil(t, points[1].Drawdown)
	assert.Equal(t, -0.01, *points[1].Drawdown)
	assert.Nil(t, points[2].Drawdown, "point past the short column stays unset")
	for _, p := range points {
		assert.Nil(t, p.LogReturn, "absent column stays unset")
	}
}

func TestNormalizeEquityEmpty(t *testing.T) {
	points, err := normalizeEquity(nil)
	require.NoError(t, err)
	assert.Empty(t, points)

	points, err = normalizeEquity(json.RawMessage(`[]`))
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestNormalizeEquityGarbage(t *testing.T) {
	_, err := normalizeEquity(json.RawMessage(`"nope"`))
	assert.Error(t, err)
}
