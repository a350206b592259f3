package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/gtobot/internal/game"
	"github.com/lox/gtobot/internal/table"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}
	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Median())
	assert.Error(t, stats.Validate())
}

func TestStatistics_Add(t *testing.T) {
	stats := &Statistics{}
	stats.Add(HandResult{NetBB: 2.5, Position: table.Late, Showdown: true, Pot: 60, Street: game.River})
	stats.Add(HandResult{NetBB: -1, Position: table.BigBlind, Street: game.Preflop, Pot: 15})
	stats.Add(HandResult{NetBB: 1.5, Position: table.Late, Street: game.Flop, Pot: 30})

	require.NoError(t, stats.Validate())
	assert.Equal(t, 3, stats.Hands)
	assert.InDelta(t, 1.0, stats.Mean(), 1e-9)
	assert.Equal(t, 1, stats.ShowdownWins)
	assert.Equal(t, 1, stats.NonShowdownWins)
	assert.InDelta(t, 2.5, stats.ShowdownBB, 1e-9)
	assert.InDelta(t, 0.5, stats.NonShowdownBB, 1e-9)
	assert.Equal(t, 2, stats.Positions[table.Late].Hands)
	assert.InDelta(t, 2.0, stats.Positions[table.Late].Mean(), 1e-9)
	assert.Equal(t, [4]int{1, 1, 0, 1}, stats.Streets)
	assert.Equal(t, 60, stats.MaxPot)
	assert.InDelta(t, 1.5, stats.Median(), 1e-9)
}

func TestStatistics_Variance(t *testing.T) {
	stats := &Statistics{}
	for _, v := range []float64{1, 2, 3, 4, 5} {
		stats.Add(HandResult{NetBB: v, Position: table.Early})
	}
	assert.InDelta(t, 2.5, stats.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(2.5), stats.StdDev(), 1e-9)

	low, high := stats.ConfidenceInterval95()
	assert.Less(t, low, 3.0)
	assert.Greater(t, high, 3.0)
	assert.InDelta(t, 3.0, (low+high)/2, 1e-9)
}

func TestStatistics_Percentile(t *testing.T) {
	stats := &Statistics{}
	for _, v := range []float64{4, 1, 3, 2} {
		stats.Add(HandResult{NetBB: v, Position: table.Middle})
	}
	assert.InDelta(t, 1.0, stats.Percentile(0), 1e-9)
	assert.InDelta(t, 4.0, stats.Percentile(1), 1e-9)
	assert.InDelta(t, 2.5, stats.Percentile(0.5), 1e-9)
	assert.Equal(t, []float64{4, 1, 3, 2}, stats.Values, "percentile must not reorder values")
}

func TestStatistics_Merge(t *testing.T) {
	a := &Statistics{}
	a.Add(HandResult{NetBB: 1, Position: table.SmallBlind, Pot: 10})
	b := &Statistics{}
	b.Add(HandResult{NetBB: -2, Position: table.SmallBlind, Showdown: true, Pot: 40, Street: game.River})
	b.Add(HandResult{NetBB: 3, Position: table.Late, Pot: 20, Street: game.Turn})

	total := &Statistics{}
	total.Merge(a)
	total.Merge(b)

	require.NoError(t, total.Validate())
	assert.Equal(t, 3, total.Hands)
	assert.InDelta(t, 2.0/3.0, total.Mean(), 1e-9)
	assert.Equal(t, 2, total.Positions[table.SmallBlind].Hands)
	assert.Equal(t, 40, total.MaxPot)
	assert.Equal(t, [4]int{1, 0, 1, 1}, total.Streets)
}

func TestStatistics_ValidateLedger(t *testing.T) {
	stats := &Statistics{}
	stats.Add(HandResult{NetBB: 1, Position: table.Early})
	stats.ShowdownBB += 5
	assert.ErrorContains(t, stats.Validate(), "ledger mismatch")
}
