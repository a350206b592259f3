package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/gtobot/internal/player"
	"github.com/lox/gtobot/internal/policy"
	"github.com/lox/gtobot/internal/protocol"
	"github.com/lox/gtobot/internal/randutil"
)

type DecideCmd struct {
	File    string `short:"f" help:"Read decision messages from a file instead of stdin" type:"existingfile"`
	Explain bool   `short:"e" help:"Print the reasoning behind each decision to stderr"`
}

func (c *DecideCmd) Run(g *Globals) error {
	cfg, err := g.policyConfig()
	if err != nil {
		return err
	}
	logger := g.logger()

	in := io.Reader(os.Stdin)
	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", c.File, err)
		}
		defer f.Close()
		in = f
	}

	var explain io.Writer
	if c.Explain {
		explain = os.Stderr
	}

	rng, seed := g.rng()
	logger.Debug("Deciding", "seed", seed, "config", g.Config)
	return decide(in, os.Stdout, explain, cfg, rng, logger)
}

// decide answers each decision message on in with one action line on out.
// A message carrying game_info resets the rules for it and later decisions.
// When explain is non-nil each decision's breakdown is written there.
func decide(in io.Reader, out, explain io.Writer, cfg policy.Config, rng randutil.Source, logger *log.Logger) error {
	var p *player.Player
	dec := protocol.NewDecoder(in)
	for {
		msg, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if p == nil || p.UUID() != msg.UUID {
			p = player.New(msg.UUID, cfg, rng, logger)
		}
		if msg.GameInfo != nil {
			p.ReceiveGameStart(msg.GameInfo.Rules())
		}

		req := msg.Request()
		action := p.DeclareAction(req.Legal, req.Hole, req.State)
		if err := protocol.EncodeAction(out, action); err != nil {
			return fmt.Errorf("failed to write action: %w", err)
		}
		if explain != nil {
			fmt.Fprintln(explain, renderDecision(p.LastDecision()))
		}
	}
}
