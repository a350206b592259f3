// Package policy chooses one action per betting decision by combining hand
// strength, board texture, seat position, pot odds and round progression
// into a weighted strength and walking a fixed decision tree. Some branches
// mix actions with a draw from an injected random source, so a seeded
// source replays the same decisions.
package policy

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/gtobot/internal/deck"
	"github.com/lox/gtobot/internal/game"
	"github.com/lox/gtobot/internal/randutil"
	"github.com/lox/gtobot/internal/table"
)

// Engine decides actions. It holds no per-hand state; an Engine must not be
// shared between goroutines because its random source is not synchronised.
type Engine struct {
	cfg    Config
	rng    randutil.Source
	logger *log.Logger
}

// Decision is the chosen action together with what produced it.
type Decision struct {
	Action    game.Action
	Signals   Signals
	Context   table.Context
	Reasoning string
}

// New creates an Engine. The config is copied. A nil logger discards.
func New(cfg Config, rng randutil.Source, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		cfg:    cfg.clone(),
		rng:    rng,
		logger: logger.WithPrefix("policy"),
	}
}

// Config returns a copy of the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg.clone()
}

// Decide chooses exactly one legal action for req.
func (e *Engine) Decide(req game.DecisionRequest) Decision {
	thinking := &ThinkingContext{}

	tc := table.Resolve(req, e.cfg.StartingStack)
	signals := e.cfg.signals(req, tc)
	adjusted := signals.Adjusted()

	thinking.AddThought(fmt.Sprintf("I have %s (%s, %.2f)", holeString(req.Hole), signals.Hand, signals.Strength))
	thinking.AddThought(fmt.Sprintf("Position %s x%.1f, round %d x%.1f, stack x%.1f: adjusted %.3f",
		tc.Position, signals.PositionMultiplier, tc.Round, signals.RoundMultiplier, signals.StackMultiplier, adjusted))
	if req.Legal.FacingBet() {
		thinking.AddThought(fmt.Sprintf("Facing %d into %d, pot odds %.2f", req.Legal.CallAmount, req.State.Pot, signals.PotOdds))
	}

	e.logger.Debug("Decision analysis",
		"street", req.State.Street.String(),
		"hole", holeString(req.Hole),
		"hand", signals.Hand,
		"strength", signals.Strength,
		"position", tc.Position.String(),
		"round", tc.Round,
		"stackRatio", tc.StackRatio,
		"adjusted", adjusted,
		"potOdds", signals.PotOdds,
		"board", signals.Texture.String())

	var action game.Action
	if req.State.Street == game.Preflop {
		action = e.preflop(req, signals, tc.Position, thinking)
	} else {
		action = e.postflop(req, signals, thinking)
	}

	reasoning := thinking.GetThoughts()
	e.logger.Debug("Decision made",
		"action", action.Kind.String(),
		"amount", action.Amount,
		"reasoning", reasoning)

	return Decision{
		Action:    action,
		Signals:   signals,
		Context:   tc,
		Reasoning: reasoning,
	}
}

// draw consumes one uniform [0,1) value from the random source.
func (e *Engine) draw() float64 {
	return e.rng.Float64()
}

// smallBlind prefers the amount the engine reports over the configured one.
func (e *Engine) smallBlind(state game.RoundState) int {
	if state.SmallBlind > 0 {
		return state.SmallBlind
	}
	return e.cfg.SmallBlind
}

func holeString(hole []deck.Card) string {
	if len(hole) != 2 {
		return "no hole cards"
	}
	return hole[0].String() + " " + hole[1].String()
}
