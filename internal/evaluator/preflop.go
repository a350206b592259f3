package evaluator

import "github.com/lox/gtobot/internal/deck"

// PreflopStrength scores two hole cards on a fixed lookup ladder. Rules are
// checked in order and the first match wins; hands that match none scale
// from 0.1 to 0.3 with the high card.
func PreflopStrength(hole []deck.Card) float64 {
	strength, _ := preflop(hole)
	return strength
}

// PreflopClass names the ladder rung PreflopStrength matched.
func PreflopClass(hole []deck.Card) string {
	_, class := preflop(hole)
	return class
}

func preflop(hole []deck.Card) (float64, string) {
	if len(hole) != 2 {
		return 0, "no hand"
	}

	high, low := hole[0].Value(), hole[1].Value()
	if low > high {
		high, low = low, high
	}
	pair := high == low
	suited := hole[0].Suit == hole[1].Suit
	gap := high - low
	ace := high == int(deck.Ace)

	switch {
	case pair && high >= int(deck.Jack):
		return 0.9, "high pair"
	case pair && high >= int(deck.Nine):
		return 0.8, "medium pair"
	case pair:
		return 0.7, "low pair"
	case suited && ace && low >= int(deck.Jack):
		return 0.85, "suited big ace"
	case ace && low >= int(deck.Queen):
		return 0.8, "big ace"
	case suited && high >= int(deck.Ten) && gap == 1:
		return 0.75, "suited broadway connector"
	case suited && ace:
		return 0.7, "suited ace"
	case high >= int(deck.Ten) && low >= int(deck.Ten):
		return 0.65, "broadway"
	case suited && gap == 1:
		return 0.6, "suited connector"
	case suited && gap <= 3:
		return 0.55, "suited gapper"
	case ace:
		return 0.5, "ace high"
	case high >= int(deck.Jack):
		return 0.45, "face card"
	case suited:
		return 0.4, "suited"
	case gap == 1:
		return 0.35, "connector"
	default:
		return 0.1 + float64(high)/14*0.2, "trash"
	}
}
