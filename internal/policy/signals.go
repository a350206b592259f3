package policy

import (
	"github.com/lox/gtobot/internal/classification"
	"github.com/lox/gtobot/internal/evaluator"
	"github.com/lox/gtobot/internal/game"
	"github.com/lox/gtobot/internal/odds"
	"github.com/lox/gtobot/internal/table"
)

// Signals are the inputs the decision tree combines. They are built fresh
// for every decision.
type Signals struct {
	Strength           float64
	Hand               string
	PotOdds            float64
	PositionMultiplier float64
	RoundMultiplier    float64
	StackMultiplier    float64
	Texture            classification.Texture
}

// Adjusted is the hand strength weighted by position, round and stack.
func (s Signals) Adjusted() float64 {
	return s.Strength * s.PositionMultiplier * s.RoundMultiplier * s.StackMultiplier
}

// StackMultiplier is 1.2 for stacks above 70% of the starting stack and 0.8
// otherwise.
func StackMultiplier(ratio float64) float64 {
	if ratio > 0.7 {
		return 1.2
	}
	return 0.8
}

func (c Config) signals(req game.DecisionRequest, tc table.Context) Signals {
	s := req.State
	return Signals{
		Strength:           evaluator.Strength(req.Hole, s.Community, s.Street),
		Hand:               evaluator.Describe(req.Hole, s.Community, s.Street),
		PotOdds:            odds.PotOdds(req.Legal.CallAmount, s.Pot),
		PositionMultiplier: c.PositionValue(tc.Position),
		RoundMultiplier:    c.RoundMultiplier(tc.Round),
		StackMultiplier:    StackMultiplier(tc.StackRatio),
		Texture:            classification.AnalyzeBoard(s.Community),
	}
}
