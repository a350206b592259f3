package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Letter returns the single-letter suit code used in card notation.
func (s Suit) Letter() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// Rank represents a card rank. Ranks are numeric with the Ace high (14).
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

// String returns the string representation of a rank
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankChars[r-Two])
}

// Valid reports whether the rank is in 2..14.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Notation returns the ASCII form of the card (e.g., "As").
func (c Card) Notation() string {
	return c.Rank.String() + c.Suit.Letter()
}

// Value returns the numeric rank of the card, Ace high.
func (c Card) Value() int {
	return int(c.Rank)
}

func parseRank(b byte) (Rank, bool) {
	i := strings.IndexByte(rankChars, upper(b))
	if i < 0 {
		return 0, false
	}
	return Two + Rank(i), true
}

func parseSuit(b byte) (Suit, bool) {
	switch upper(b) {
	case 'S':
		return Spades, true
	case 'H':
		return Hearts, true
	case 'D':
		return Diamonds, true
	case 'C':
		return Clubs, true
	}
	return 0, false
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// ParseCard parses a two-character card. Both rank-first ("As", "Td") and
// suit-first engine notation ("SA", "DT") are accepted; rank and suit letters
// never overlap so the order is unambiguous.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: expected 2 characters", s)
	}
	if rank, ok := parseRank(s[0]); ok {
		suit, ok := parseSuit(s[1])
		if !ok {
			return Card{}, fmt.Errorf("invalid card %q: unknown suit %q", s, s[1])
		}
		return NewCard(suit, rank), nil
	}
	if suit, ok := parseSuit(s[0]); ok {
		rank, ok := parseRank(s[1])
		if !ok {
			return Card{}, fmt.Errorf("invalid card %q: unknown rank %q", s, s[1])
		}
		return NewCard(suit, rank), nil
	}
	return Card{}, fmt.Errorf("invalid card %q", s)
}

// ParseCards parses a run of concatenated two-character cards, e.g. "AsKsQs".
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string %q: odd length", s)
	}
	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests
// and fixed tables.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards joins cards with spaces, e.g. "A♠ K♥".
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
