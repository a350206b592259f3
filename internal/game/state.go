package game

import "github.com/lox/gtobot/internal/deck"

// SeatState is the engine's status for a seat in the current hand.
type SeatState int

const (
	Participating SeatState = iota
	AllIn
	Folded
)

func (s SeatState) String() string {
	return [...]string{"participating", "allin", "folded"}[s]
}

// ParseSeatState maps an engine seat state tag; unknown tags count as
// participating.
func ParseSeatState(s string) SeatState {
	switch s {
	case "folded":
		return Folded
	case "allin":
		return AllIn
	}
	return Participating
}

// Seat is a read-only view of one seat at the table.
type Seat struct {
	UUID  string
	Name  string
	Stack int
	State SeatState
}

// Wager is one entry of the hand's action history.
type Wager struct {
	Street Street
	UUID   string
	Action string
	Amount int
}

// RoundState is the engine's snapshot of the current hand at a decision
// point. It is passed by value into each decision and never retained.
type RoundState struct {
	Street        Street
	Community     []deck.Card
	Pot           int
	Seats         []Seat
	DealerButton  int
	SmallBlindPos int
	BigBlindPos   int
	Round         int
	SmallBlind    int
	ActionHistory []Wager
}

// TotalWagered sums every wagered amount recorded this hand, across all
// streets.
func (r RoundState) TotalWagered() int {
	total := 0
	for _, w := range r.ActionHistory {
		total += w.Amount
	}
	return total
}

// DecisionRequest is everything the policy needs for one decision.
type DecisionRequest struct {
	UUID  string
	Hole  []deck.Card
	Legal LegalActions
	State RoundState
}

// Rules are the game-level settings announced at game start.
type Rules struct {
	InitialStack int
	MaxRound     int
	SmallBlind   int
}
