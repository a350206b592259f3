package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/gtobot/internal/table"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0.6, cfg.PositionValue(table.Early))
	assert.Equal(t, 0.8, cfg.PositionValue(table.Middle))
	assert.Equal(t, 1.0, cfg.PositionValue(table.Late))
	assert.Equal(t, 0.7, cfg.PositionValue(table.SmallBlind))
	assert.Equal(t, 0.9, cfg.PositionValue(table.BigBlind))
	assert.Equal(t, 0.7, cfg.PositionValue(table.Position(42)))

	for round, want := range map[int]float64{1: 0.7, 2: 0.8, 3: 0.9, 4: 1.0, 5: 1.1, 0: 1.0, 6: 1.0, -1: 1.0} {
		assert.Equal(t, want, cfg.RoundMultiplier(round), "round %d", round)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartingStack = 0
	cfg.SmallBlind = -1
	cfg.BluffThreshold = 1.5
	cfg.PositionValues[table.Late] = -1
	cfg.RoundAggression[3] = -0.5

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"starting_stack", "small_blind", "bluff_threshold", "position late", "round 3"} {
		assert.Contains(t, err.Error(), want)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
policy {
  starting_stack  = 1000
  small_blind     = 10
  bluff_threshold = 0.2

  position = {
    late        = 1.1
    small_blind = 0.5
  }

  round_aggression = {
    "1" = 0.5
    "9" = 1.3
  }
}
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.StartingStack)
	assert.Equal(t, 10, cfg.SmallBlind)
	assert.Equal(t, 5, cfg.TotalRounds, "unset values keep defaults")
	assert.Equal(t, 0.2, cfg.BluffThreshold)
	assert.Equal(t, 1.1, cfg.PositionValue(table.Late))
	assert.Equal(t, 0.5, cfg.PositionValue(table.SmallBlind))
	assert.Equal(t, 0.6, cfg.PositionValue(table.Early))
	assert.Equal(t, 0.5, cfg.RoundMultiplier(1))
	assert.Equal(t, 0.8, cfg.RoundMultiplier(2))
	assert.Equal(t, 1.3, cfg.RoundMultiplier(9))
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax error", "policy {", "failed to parse HCL"},
		{"unknown attribute", "policy {\n  aggression = 1\n}\n", "failed to decode HCL"},
		{"unknown position", "policy {\n  position = { hijack = 1 }\n}\n", `unknown position "hijack"`},
		{"bad round key", "policy {\n  round_aggression = { first = 1 }\n}\n", `invalid round "first"`},
		{"invalid value", "policy {\n  bluff_threshold = 2\n}\n", "bluff_threshold"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMarshalHCLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartingStack = 1500
	cfg.SmallBlind = 25
	cfg.TotalRounds = 8
	cfg.BluffThreshold = 0.25
	cfg.PositionValues[table.Early] = 0.55
	cfg.RoundAggression[8] = 1.3

	data := cfg.MarshalHCL()
	assert.Contains(t, string(data), "policy {")

	loaded, err := LoadConfig(writeConfig(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, 1500, loaded.StartingStack)
	assert.Equal(t, 25, loaded.SmallBlind)
	assert.Equal(t, 8, loaded.TotalRounds)
	assert.InDelta(t, 0.25, loaded.BluffThreshold, 1e-9)
	assert.InDelta(t, 0.55, loaded.PositionValues[table.Early], 1e-9)
	assert.InDelta(t, 1.3, loaded.RoundAggression[8], 1e-9)
	assert.Len(t, loaded.PositionValues, len(cfg.PositionValues))
	assert.Len(t, loaded.RoundAggression, len(cfg.RoundAggression))
}
