package policy

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/lox/gtobot/internal/table"
)

// Config is the process-wide policy configuration. An Engine takes its own
// copy at construction, so a Config can be reused or modified afterwards
// without affecting running engines.
type Config struct {
	// StartingStack is the stack every player starts the game with.
	StartingStack int
	// SmallBlind sizes big-blind multiple raises when the engine does not
	// report it.
	SmallBlind int
	// TotalRounds is the number of hands in the game.
	TotalRounds int
	// BluffThreshold is the probability of a bluff raise where one is
	// allowed.
	BluffThreshold float64
	// PositionValues weights hand strength by seat class.
	PositionValues map[table.Position]float64
	// RoundAggression weights hand strength by hand number.
	RoundAggression map[int]float64
}

const (
	defaultPositionValue   = 0.7
	defaultRoundAggression = 1.0
)

// DefaultConfig returns the stock policy tables.
func DefaultConfig() Config {
	return Config{
		StartingStack:  100,
		SmallBlind:     5,
		TotalRounds:    5,
		BluffThreshold: 0.15,
		PositionValues: map[table.Position]float64{
			table.Early:      0.6,
			table.Middle:     0.8,
			table.Late:       1.0,
			table.SmallBlind: 0.7,
			table.BigBlind:   0.9,
		},
		RoundAggression: map[int]float64{1: 0.7, 2: 0.8, 3: 0.9, 4: 1.0, 5: 1.1},
	}
}

// PositionValue returns the multiplier for p, or 0.7 when the table has no
// entry.
func (c Config) PositionValue(p table.Position) float64 {
	if v, ok := c.PositionValues[p]; ok {
		return v
	}
	return defaultPositionValue
}

// RoundMultiplier returns the aggression for hand number round, or 1.0 when
// the table has no entry.
func (c Config) RoundMultiplier(round int) float64 {
	if v, ok := c.RoundAggression[round]; ok {
		return v
	}
	return defaultRoundAggression
}

// Validate checks the configuration for values the policy cannot use.
func (c Config) Validate() error {
	var errs []error
	if c.StartingStack <= 0 {
		errs = append(errs, fmt.Errorf("starting_stack must be positive, got %d", c.StartingStack))
	}
	if c.SmallBlind <= 0 {
		errs = append(errs, fmt.Errorf("small_blind must be positive, got %d", c.SmallBlind))
	}
	if c.TotalRounds < 0 {
		errs = append(errs, fmt.Errorf("total_rounds must not be negative, got %d", c.TotalRounds))
	}
	if c.BluffThreshold < 0 || c.BluffThreshold > 1 {
		errs = append(errs, fmt.Errorf("bluff_threshold must be within [0,1], got %g", c.BluffThreshold))
	}
	for _, p := range slices.Sorted(maps.Keys(c.PositionValues)) {
		if v := c.PositionValues[p]; v < 0 {
			errs = append(errs, fmt.Errorf("position %s multiplier must not be negative, got %g", p, v))
		}
	}
	for _, r := range slices.Sorted(maps.Keys(c.RoundAggression)) {
		if v := c.RoundAggression[r]; v < 0 {
			errs = append(errs, fmt.Errorf("round %d aggression must not be negative, got %g", r, v))
		}
	}
	return errors.Join(errs...)
}

// clone returns a deep copy so engines never share mutable maps.
func (c Config) clone() Config {
	c.PositionValues = maps.Clone(c.PositionValues)
	c.RoundAggression = maps.Clone(c.RoundAggression)
	return c
}

type fileConfig struct {
	Policy *policyBlock `hcl:"policy,block"`
}

type policyBlock struct {
	StartingStack   int                `hcl:"starting_stack,optional"`
	SmallBlind      int                `hcl:"small_blind,optional"`
	TotalRounds     int                `hcl:"total_rounds,optional"`
	BluffThreshold  float64            `hcl:"bluff_threshold,optional"`
	Position        map[string]float64 `hcl:"position,optional"`
	RoundAggression map[string]float64 `hcl:"round_aggression,optional"`
}

// LoadConfig reads policy configuration from an HCL file. A missing file
// yields DefaultConfig. Values left out of the file keep their defaults and
// table entries override the stock entries key by key.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	if filename == "" {
		return cfg, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	if fc.Policy == nil {
		return cfg, nil
	}

	if err := fc.Policy.apply(&cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

func (b *policyBlock) apply(cfg *Config) error {
	if b.StartingStack != 0 {
		cfg.StartingStack = b.StartingStack
	}
	if b.SmallBlind != 0 {
		cfg.SmallBlind = b.SmallBlind
	}
	if b.TotalRounds != 0 {
		cfg.TotalRounds = b.TotalRounds
	}
	if b.BluffThreshold != 0 {
		cfg.BluffThreshold = b.BluffThreshold
	}
	for name, v := range b.Position {
		p, ok := table.ParsePosition(name)
		if !ok {
			return fmt.Errorf("unknown position %q", name)
		}
		cfg.PositionValues[p] = v
	}
	for key, v := range b.RoundAggression {
		round, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("invalid round %q: %w", key, err)
		}
		cfg.RoundAggression[round] = v
	}
	return nil
}

// MarshalHCL renders the configuration in the form LoadConfig reads.
func (c Config) MarshalHCL() []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body().AppendNewBlock("policy", nil).Body()
	body.SetAttributeValue("starting_stack", cty.NumberIntVal(int64(c.StartingStack)))
	body.SetAttributeValue("small_blind", cty.NumberIntVal(int64(c.SmallBlind)))
	body.SetAttributeValue("total_rounds", cty.NumberIntVal(int64(c.TotalRounds)))
	body.SetAttributeValue("bluff_threshold", cty.NumberFloatVal(c.BluffThreshold))

	if len(c.PositionValues) > 0 {
		positions := make(map[string]cty.Value, len(c.PositionValues))
		for p, v := range c.PositionValues {
			positions[p.String()] = cty.NumberFloatVal(v)
		}
		body.SetAttributeValue("position", cty.ObjectVal(positions))
	}
	if len(c.RoundAggression) > 0 {
		rounds := make(map[string]cty.Value, len(c.RoundAggression))
		for r, v := range c.RoundAggression {
			rounds[strconv.Itoa(r)] = cty.NumberFloatVal(v)
		}
		body.SetAttributeValue("round_aggression", cty.ObjectVal(rounds))
	}
	return f.Bytes()
}
