// Package player adapts the policy engine to the host engine's player
// lifecycle: game start, round start, street start, decision, game update
// and round result.
package player

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/gtobot/internal/deck"
	"github.com/lox/gtobot/internal/game"
	"github.com/lox/gtobot/internal/policy"
	"github.com/lox/gtobot/internal/randutil"
)

// Player owns one policy engine for one seat. It is not safe for concurrent
// use.
type Player struct {
	uuid   string
	cfg    policy.Config
	rng    randutil.Source
	logger *log.Logger
	engine *policy.Engine

	last policy.Decision
}

// New creates a Player for the seat identified by uuid.
func New(uuid string, cfg policy.Config, rng randutil.Source, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		uuid:   uuid,
		cfg:    cfg,
		rng:    rng,
		logger: logger.With("player", uuid),
	}
	p.engine = policy.New(cfg, rng, p.logger)
	return p
}

// UUID returns the seat identifier.
func (p *Player) UUID() string { return p.uuid }

// Config returns the configuration currently in force.
func (p *Player) Config() policy.Config { return p.engine.Config() }

// LastDecision returns the most recent decision, including its signals and
// reasoning.
func (p *Player) LastDecision() policy.Decision { return p.last }

// ReceiveGameStart adopts the announced starting stack, round count and
// small blind. Non-positive values keep the current setting.
func (p *Player) ReceiveGameStart(rules game.Rules) {
	if rules.InitialStack > 0 {
		p.cfg.StartingStack = rules.InitialStack
	}
	if rules.MaxRound > 0 {
		p.cfg.TotalRounds = rules.MaxRound
	}
	if rules.SmallBlind > 0 {
		p.cfg.SmallBlind = rules.SmallBlind
	}
	p.engine = policy.New(p.cfg, p.rng, p.logger)
	p.logger.Debug("Game started",
		"startingStack", p.cfg.StartingStack,
		"rounds", p.cfg.TotalRounds,
		"smallBlind", p.cfg.SmallBlind)
}

// ReceiveRoundStart is called when a new hand is dealt.
func (p *Player) ReceiveRoundStart(round int, hole []deck.Card) {
	p.logger.Debug("Round started", "round", round, "hole", deck.FormatCards(hole))
}

// ReceiveStreetStart is called when a betting round opens.
func (p *Player) ReceiveStreetStart(street game.Street, state game.RoundState) {
	p.logger.Debug("Street started", "street", street.String(), "board", deck.FormatCards(state.Community), "pot", state.Pot)
}

// ReceiveGameUpdate is called after any seat acts.
func (p *Player) ReceiveGameUpdate(w game.Wager, state game.RoundState) {
	p.logger.Debug("Action observed", "uuid", w.UUID, "action", w.Action, "amount", w.Amount, "pot", state.Pot)
}

// ReceiveRoundResult is called when a hand finishes.
func (p *Player) ReceiveRoundResult(winners []string, state game.RoundState) {
	p.logger.Debug("Round finished", "round", state.Round, "winners", winners)
}

// DeclareAction returns exactly one legal action for the decision point.
func (p *Player) DeclareAction(legal game.LegalActions, hole []deck.Card, state game.RoundState) game.Action {
	p.last = p.engine.Decide(game.DecisionRequest{
		UUID:  p.uuid,
		Hole:  hole,
		Legal: legal,
		State: state,
	})
	return p.last.Action
}
