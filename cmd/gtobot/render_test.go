package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/gtobot/internal/deck"
	"github.com/lox/gtobot/internal/game"
	"github.com/lox/gtobot/internal/player"
	"github.com/lox/gtobot/internal/policy"
	"github.com/lox/gtobot/internal/randutil"
	"github.com/lox/gtobot/internal/simulator"
)

func TestRenderDecision(t *testing.T) {
	p := player.New("hero", policy.DefaultConfig(), randutil.New(1), nil)
	state := game.RoundState{
		Street:    game.Flop,
		Community: deck.MustParseCards("AsKs7h"),
		Pot:       40,
		Seats: []game.Seat{
			{UUID: "hero", Stack: 80},
			{UUID: "villain", Stack: 80},
		},
		BigBlindPos: 1,
		Round:       2,
	}
	p.DeclareAction(game.LegalActions{CallAmount: 10, MinRaise: 20, MaxRaise: 80}, deck.MustParseCards("AhAd"), state)

	out := renderDecision(p.LastDecision())
	assert.Contains(t, out, "trips")
	assert.Contains(t, out, "sb")
	assert.Contains(t, out, "pot odds")
}

func TestRenderReport(t *testing.T) {
	report, err := simulator.Run(context.Background(), simulator.Config{
		HandsPerTable: 12,
		Seed:          7,
		Policy:        policy.DefaultConfig(),
		Clock:         quartz.NewMock(t),
	})
	require.NoError(t, err)

	out := renderReport(report, 7)
	assert.Contains(t, out, "12 hands (seed 7)")
	assert.Contains(t, out, "bb/hand")
	assert.Contains(t, out, "preflop")
}

func TestGlobalsPolicyConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gtobot.hcl")
	require.NoError(t, os.WriteFile(path, []byte("policy {\n  small_blind = 50\n}\n"), 0o644))

	g := &Globals{Config: path}
	cfg, err := g.policyConfig()
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.SmallBlind)

	g.Config = filepath.Join(t.TempDir(), "missing.hcl")
	cfg, err = g.policyConfig()
	require.NoError(t, err)
	assert.Equal(t, policy.DefaultConfig(), cfg)
}

func TestGlobalsRngUsesSeed(t *testing.T) {
	g := &Globals{Seed: 99}
	a, seed := g.rng()
	b, _ := g.rng()
	assert.Equal(t, int64(99), seed)
	assert.Equal(t, a.Float64(), b.Float64())
}

func TestConfigCmdWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "effective.hcl")
	cmd := &ConfigCmd{Output: out}
	require.NoError(t, cmd.Run(&Globals{Config: filepath.Join(t.TempDir(), "missing.hcl")}))

	cfg, err := policy.LoadConfig(out)
	require.NoError(t, err)
	assert.Equal(t, policy.DefaultConfig().StartingStack, cfg.StartingStack)
	assert.InDelta(t, policy.DefaultConfig().BluffThreshold, cfg.BluffThreshold, 1e-9)
}
