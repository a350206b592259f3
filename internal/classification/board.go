// Package classification provides board texture analysis: whether the
// community cards are paired and whether they leave flush or straight draws
// open.
package classification

import (
	"slices"

	"github.com/lox/gtobot/internal/deck"
)

// Texture summarises the community cards.
type Texture struct {
	Paired    bool
	DrawHeavy bool
}

func (t Texture) String() string {
	switch {
	case t.Paired && t.DrawHeavy:
		return "paired draw-heavy"
	case t.Paired:
		return "paired"
	case t.DrawHeavy:
		return "draw-heavy"
	default:
		return "dry"
	}
}

// AnalyzeBoard classifies the community cards.
func AnalyzeBoard(board []deck.Card) Texture {
	return Texture{
		Paired:    HasPair(board),
		DrawHeavy: HasDrawPotential(board),
	}
}

// HasPair reports whether any rank appears at least twice on the board.
func HasPair(board []deck.Card) bool {
	if len(board) < 2 {
		return false
	}
	seen := make(map[deck.Rank]bool, len(board))
	for _, c := range board {
		if seen[c.Rank] {
			return true
		}
		seen[c.Rank] = true
	}
	return false
}

// HasDrawPotential reports whether a board of three or more cards shows
// three of one suit, or any three rank-sorted neighbours spanning at most
// four ranks.
func HasDrawPotential(board []deck.Card) bool {
	if len(board) < 3 {
		return false
	}

	var suits [4]int
	for _, c := range board {
		if c.Suit < deck.Spades || c.Suit > deck.Clubs {
			continue
		}
		suits[c.Suit]++
		if suits[c.Suit] >= 3 {
			return true
		}
	}

	ranks := make([]int, len(board))
	for i, c := range board {
		ranks[i] = c.Value()
	}
	slices.Sort(ranks)
	for i := 0; i+2 < len(ranks); i++ {
		if ranks[i+2]-ranks[i] <= 4 {
			return true
		}
	}
	return false
}
