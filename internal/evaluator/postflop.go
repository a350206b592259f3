package evaluator

import "github.com/lox/gtobot/internal/deck"

// PostflopStrength buckets hole plus community cards by rank and suit counts.
// It is a coarse made-hand classifier, not a best-five ranker: flush and
// straight are detected independently, so a flush plus an unrelated straight
// lands in the straight flush bucket, and the full house bucket counts the
// trip rank itself among the ranks seen at least twice.
func PostflopStrength(hole, board []deck.Card) float64 {
	strength, _ := postflop(hole, board)
	return strength
}

// PostflopClass names the bucket PostflopStrength matched.
func PostflopClass(hole, board []deck.Card) string {
	_, class := postflop(hole, board)
	return class
}

type counts struct {
	ranks   [deck.Ace + 1]int
	suits   [4]int
	highest int
}

func count(cards []deck.Card) counts {
	var c counts
	for _, card := range cards {
		if !card.Rank.Valid() || card.Suit < deck.Spades || card.Suit > deck.Clubs {
			continue
		}
		c.ranks[card.Rank]++
		c.suits[card.Suit]++
		c.highest = max(c.highest, card.Value())
	}
	return c
}

func (c counts) maxRank() int {
	best := 0
	for _, n := range c.ranks {
		best = max(best, n)
	}
	return best
}

// ranksWith counts ranks whose count satisfies keep.
func (c counts) ranksWith(keep func(int) bool) int {
	n := 0
	for _, k := range c.ranks {
		if k > 0 && keep(k) {
			n++
		}
	}
	return n
}

func (c counts) flush() bool {
	for _, n := range c.suits {
		if n >= 5 {
			return true
		}
	}
	return false
}

// straight looks for five consecutive ranks with the low end in 2..10. The
// wheel (A-2-3-4-5) is not counted.
func (c counts) straight() bool {
	for low := deck.Two; low <= deck.Ten; low++ {
		run := true
		for r := low; r < low+5; r++ {
			if c.ranks[r] == 0 {
				run = false
				break
			}
		}
		if run {
			return true
		}
	}
	return false
}

func postflop(hole, board []deck.Card) (float64, string) {
	all := make([]deck.Card, 0, len(hole)+len(board))
	all = append(all, hole...)
	all = append(all, board...)
	c := count(all)

	flush, straight := c.flush(), c.straight()
	most := c.maxRank()
	pairedOrBetter := c.ranksWith(func(n int) bool { return n >= 2 })
	exactPairs := c.ranksWith(func(n int) bool { return n == 2 })

	switch {
	case flush && straight:
		return 0.95, "straight flush"
	case most == 4:
		return 0.9, "quads"
	case most == 3 && pairedOrBetter >= 2:
		return 0.85, "full house"
	case flush:
		return 0.8, "flush"
	case straight:
		return 0.75, "straight"
	case most == 3:
		return 0.7, "trips"
	case exactPairs >= 2:
		return 0.6, "two pair"
	case most == 2:
		return 0.5, "pair"
	default:
		return 0.2 + float64(c.highest)/14*0.3, "high card"
	}
}
