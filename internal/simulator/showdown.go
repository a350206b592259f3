package simulator

import (
	"slices"

	poker "github.com/paulhankin/poker"

	"github.com/lox/gtobot/internal/deck"
)

// toPH converts a card to the evaluator's representation, which numbers the
// Ace as 1.
func toPH(c deck.Card) poker.Card {
	var s poker.Suit
	switch c.Suit {
	case deck.Clubs:
		s = poker.Club
	case deck.Diamonds:
		s = poker.Diamond
	case deck.Hearts:
		s = poker.Heart
	default:
		s = poker.Spade
	}
	r := poker.Rank(c.Rank)
	if c.Rank == deck.Ace {
		r = 1
	}
	card, _ := poker.MakeCard(s, r)
	return card
}

// score evaluates the best five of seven cards; higher is better.
func score(hole, board []deck.Card) int16 {
	var cards [7]poker.Card
	for i, c := range append(slices.Clone(hole), board...) {
		cards[i] = toPH(c)
	}
	return poker.Eval7(&cards)
}

func describe(hole, board []deck.Card) string {
	cards := make([]poker.Card, 0, 7)
	for _, c := range append(slices.Clone(hole), board...) {
		cards = append(cards, toPH(c))
	}
	desc, err := poker.Describe(cards)
	if err != nil {
		return "unknown"
	}
	return desc
}

// settle pays out the pot and reports whether the hand reached showdown and
// which seats won chips.
func (h *hand) settle() (bool, []string) {
	totals := make([]int, len(h.seats))
	folded := make([]bool, len(h.seats))
	for i, s := range h.seats {
		totals[i] = s.total
		folded[i] = s.folded
	}

	var scores []int16
	showdown := h.live() > 1
	if showdown {
		scores = make([]int16, len(h.seats))
		for i, s := range h.seats {
			if !s.folded {
				scores[i] = score(s.hole, h.board)
			}
		}
		if !h.seats[0].folded {
			h.t.logger.Debug("Showdown", "hero", describe(h.seats[0].hole, h.board), "board", deck.FormatCards(h.board))
		}
	}

	var winners []string
	h.showdown = showdown
	h.payouts = awardPots(totals, folded, scores)
	for i, won := range h.payouts {
		h.seats[i].stack += won
		if won > 0 {
			winners = append(winners, h.seats[i].uuid)
		}
	}
	return showdown, winners
}

// awardPots splits the chips committed in totals between the seats that did
// not fold. Each distinct commitment level forms a pot contested by the live
// seats that reached it; ties split evenly with any odd chip going to the
// earliest seat. A nil scores slice means a single live seat takes
// everything.
func awardPots(totals []int, folded []bool, scores []int16) []int {
	payouts := make([]int, len(totals))

	if scores == nil {
		sum := 0
		for _, t := range totals {
			sum += t
		}
		for i := range totals {
			if !folded[i] {
				payouts[i] = sum
				break
			}
		}
		return payouts
	}

	levels := slices.Clone(totals)
	slices.Sort(levels)
	levels = slices.Compact(levels)

	prev := 0
	carry := 0
	for _, level := range levels {
		if level == 0 {
			continue
		}
		layer := carry
		for _, t := range totals {
			layer += min(t, level) - min(t, prev)
		}
		prev = level

		var best []int
		for i, t := range totals {
			if folded[i] || t < level {
				continue
			}
			switch {
			case len(best) == 0 || scores[i] > scores[best[0]]:
				best = []int{i}
			case scores[i] == scores[best[0]]:
				best = append(best, i)
			}
		}
		if len(best) == 0 {
			// Only folded seats reached this level; roll it into the next pot
			// or, failing that, back to the best live hand below.
			carry = layer
			continue
		}
		carry = 0
		share := layer / len(best)
		for _, i := range best {
			payouts[i] += share
		}
		payouts[best[0]] += layer - share*len(best)
	}

	if carry > 0 {
		best := -1
		for i := range totals {
			if !folded[i] && (best < 0 || scores[i] > scores[best]) {
				best = i
			}
		}
		payouts[best] += carry
	}
	return payouts
}
