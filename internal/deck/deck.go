package deck

import rand "math/rand/v2"

// Deck represents a deck of playing cards
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a standard 52-card deck drawing shuffles from rng.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	return d
}

// Shuffle restores every card to the deck and randomizes the order.
func (d *Deck) Shuffle() {
	d.next = 0
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// DealN deals n cards from the deck, or nil if not enough remain.
func (d *Deck) DealN(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
