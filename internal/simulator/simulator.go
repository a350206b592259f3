// Package simulator plays the policy against scripted opponents on
// independent tables to sanity-check its behaviour end to end. Each table
// runs in its own goroutine with its own seeded streams, so a fixed seed
// replays the same hands regardless of scheduling.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/gtobot/internal/policy"
	"github.com/lox/gtobot/internal/statistics"
)

const (
	defaultHands      = 100
	defaultSeats      = 6
	defaultAggression = 0.2
	maxSeats          = 10
)

// Config controls a simulation run.
type Config struct {
	Tables            int
	HandsPerTable     int
	Seats             int // Players per table, hero included
	Seed              int64
	StartingStack     int // Defaults to Policy.StartingStack
	SmallBlind        int // Defaults to Policy.SmallBlind
	VillainAggression float64
	Policy            policy.Config
	HistoryDir        string // When set, each hand is written there as PHH
	Logger            *log.Logger
	Clock             quartz.Clock
}

func (c Config) withDefaults() Config {
	if c.Policy.StartingStack == 0 && c.Policy.SmallBlind == 0 {
		c.Policy = policy.DefaultConfig()
	}
	if c.Tables == 0 {
		c.Tables = 1
	}
	if c.HandsPerTable == 0 {
		c.HandsPerTable = defaultHands
	}
	if c.Seats == 0 {
		c.Seats = defaultSeats
	}
	if c.StartingStack == 0 {
		c.StartingStack = c.Policy.StartingStack
	}
	if c.SmallBlind == 0 {
		c.SmallBlind = c.Policy.SmallBlind
	}
	if c.VillainAggression == 0 {
		c.VillainAggression = defaultAggression
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	if c.Clock == nil {
		c.Clock = quartz.NewReal()
	}
	return c
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Tables < 1 {
		errs = append(errs, fmt.Errorf("tables must be positive, got %d", c.Tables))
	}
	if c.HandsPerTable < 1 {
		errs = append(errs, fmt.Errorf("hands per table must be positive, got %d", c.HandsPerTable))
	}
	if c.Seats < 2 || c.Seats > maxSeats {
		errs = append(errs, fmt.Errorf("seats must be between 2 and %d, got %d", maxSeats, c.Seats))
	}
	if c.SmallBlind < 1 {
		errs = append(errs, fmt.Errorf("small blind must be positive, got %d", c.SmallBlind))
	}
	if c.StartingStack < 2*c.SmallBlind {
		errs = append(errs, fmt.Errorf("starting stack %d cannot cover the big blind", c.StartingStack))
	}
	if c.VillainAggression < 0 || c.VillainAggression > 1 {
		errs = append(errs, fmt.Errorf("villain aggression must be within [0,1], got %v", c.VillainAggression))
	}
	if err := c.Policy.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Report summarises a run across all tables.
type Report struct {
	Tables    int
	Hands     int
	Decisions int
	Actions   [4][3]int // Hero actions by street and action kind
	Rebuys    int
	Stats     *statistics.Statistics
	Elapsed   time.Duration
}

// Run plays every table concurrently and merges the results. The first
// table error cancels the rest.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	start := cfg.Clock.Now()
	logger := cfg.Logger.WithPrefix("simulator")
	logger.Info("Starting simulation",
		"tables", cfg.Tables,
		"handsPerTable", cfg.HandsPerTable,
		"seats", cfg.Seats,
		"seed", cfg.Seed)

	results := make([]*tableResult, cfg.Tables)
	g, ctx := errgroup.WithContext(ctx)
	for i := range cfg.Tables {
		g.Go(func() error {
			res, err := newTable(i, cfg, logger).play(ctx)
			if err != nil {
				return fmt.Errorf("table %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Tables: cfg.Tables, Stats: &statistics.Statistics{}}
	for _, res := range results {
		report.Hands += res.stats.Hands
		report.Decisions += res.decisions
		report.Rebuys += res.rebuys
		for s := range report.Actions {
			for k := range report.Actions[s] {
				report.Actions[s][k] += res.actions[s][k]
			}
		}
		report.Stats.Merge(res.stats)
	}
	if err := report.Stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	report.Elapsed = cfg.Clock.Now().Sub(start)

	logger.Info("Simulation complete",
		"hands", report.Hands,
		"bbPerHand", report.Stats.Mean(),
		"elapsed", report.Elapsed)
	return report, nil
}
