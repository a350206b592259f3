package game

import "strings"

// Street identifies the betting round within a hand.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// ParseStreet maps an engine street tag to a Street. Unknown tags are
// reported as not ok.
func ParseStreet(s string) (Street, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "preflop", "pre-flop":
		return Preflop, true
	case "flop":
		return Flop, true
	case "turn":
		return Turn, true
	case "river":
		return River, true
	}
	return Preflop, false
}
