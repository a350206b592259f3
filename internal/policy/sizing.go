package policy

import "github.com/lox/gtobot/internal/game"

// raiseTo turns a target amount into a legal action. A disallowed raise
// degrades to a call, and a range no wider than one chip (an all-in) raises
// to the maximum.
func raiseTo(legal game.LegalActions, target int) game.Action {
	if !legal.CanRaise() {
		return legal.Call()
	}
	if legal.MaxRaise <= legal.MinRaise+1 {
		return game.Action{Kind: game.Raise, Amount: legal.MaxRaise}
	}
	return legal.RaiseTo(target)
}

// potFractionTarget sizes a raise as a fraction of every chip wagered this
// hand. The history spans all streets, so on later streets it overstates
// the live pot.
func potFractionTarget(state game.RoundState, fraction float64) int {
	return int(float64(state.TotalWagered()) * fraction)
}

// bigBlindTarget sizes a raise as a multiple of the big blind.
func bigBlindTarget(smallBlind int, multiplier float64) int {
	return int(float64(2*smallBlind) * multiplier)
}
