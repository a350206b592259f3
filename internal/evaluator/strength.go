// Package evaluator estimates hand strength on a 0..1 scale from hole cards
// alone (preflop) or hole plus community cards (postflop).
package evaluator

import (
	"github.com/lox/gtobot/internal/deck"
	"github.com/lox/gtobot/internal/game"
)

// Strength scores the hand for the given street. Missing or incomplete hole
// cards score 0.
func Strength(hole, board []deck.Card, street game.Street) float64 {
	if len(hole) != 2 {
		return 0
	}
	if street == game.Preflop || len(board) == 0 {
		return PreflopStrength(hole)
	}
	return PostflopStrength(hole, board)
}

// Describe names the bucket Strength used.
func Describe(hole, board []deck.Card, street game.Street) string {
	if len(hole) != 2 {
		return "no hand"
	}
	if street == game.Preflop || len(board) == 0 {
		return PreflopClass(hole)
	}
	return PostflopClass(hole, board)
}
