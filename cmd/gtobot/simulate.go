package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/coder/quartz"

	"github.com/lox/gtobot/internal/randutil"
	"github.com/lox/gtobot/internal/simulator"
)

type SimulateCmd struct {
	Tables     int     `short:"t" default:"4" help:"Number of independent tables"`
	Hands      int     `short:"n" default:"1000" help:"Hands per table"`
	Seats      int     `default:"6" help:"Players per table, including the policy"`
	Stack      int     `help:"Starting stack (defaults to the policy's starting_stack)"`
	SmallBlind int     `help:"Small blind (defaults to the policy's small_blind)"`
	Aggression float64 `default:"0.2" help:"Probability that a scripted opponent raises"`
	History    string  `help:"Directory to write PHH hand histories to" type:"path"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.policyConfig()
	if err != nil {
		return err
	}
	logger := g.logger()
	seed := randutil.Seed(g.Seed)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	report, err := simulator.Run(ctx, simulator.Config{
		Tables:            c.Tables,
		HandsPerTable:     c.Hands,
		Seats:             c.Seats,
		Seed:              seed,
		StartingStack:     c.Stack,
		SmallBlind:        c.SmallBlind,
		VillainAggression: c.Aggression,
		Policy:            cfg,
		HistoryDir:        c.History,
		Logger:            logger,
		Clock:             quartz.NewReal(),
	})
	if err != nil {
		return err
	}

	fmt.Println(renderReport(report, seed))
	return nil
}
