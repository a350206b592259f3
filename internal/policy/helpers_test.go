package policy

import (
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/gtobot/internal/deck"
	"github.com/lox/gtobot/internal/game"
)

// scripted replays fixed draws and fails the test if the engine asks for
// more than were scripted.
type scripted struct {
	t     *testing.T
	draws []float64
	used  int
}

func script(t *testing.T, draws ...float64) *scripted {
	return &scripted{t: t, draws: draws}
}

func (s *scripted) Float64() float64 {
	s.t.Helper()
	require.Less(s.t, s.used, len(s.draws), "unexpected random draw")
	v := s.draws[s.used]
	s.used++
	return v
}

// Seat indices for a six-handed table with the button on seat 0 and the
// blinds on seats 1 and 2.
const (
	seatEarly  = 0
	seatSB     = 1
	seatBB     = 2
	seatMiddle = 3
	seatLate   = 4
)

type scenario struct {
	street game.Street
	hole   string
	board  string
	seat   int
	stack  int
	round  int
	pot    int
	legal  game.LegalActions
	wagers []int
}

func (sc scenario) request() game.DecisionRequest {
	seats := make([]game.Seat, 6)
	for i := range seats {
		seats[i] = game.Seat{UUID: fmt.Sprintf("p%d", i), Stack: 100}
	}
	stack := sc.stack
	if stack == 0 {
		stack = 100
	}
	seats[sc.seat].UUID = "hero"
	seats[sc.seat].Stack = stack

	round := sc.round
	if round == 0 {
		round = 4
	}

	history := make([]game.Wager, len(sc.wagers))
	for i, amount := range sc.wagers {
		history[i] = game.Wager{Street: game.Preflop, Action: "CALL", Amount: amount}
	}

	return game.DecisionRequest{
		UUID:  "hero",
		Hole:  deck.MustParseCards(sc.hole),
		Legal: sc.legal,
		State: game.RoundState{
			Street:        sc.street,
			Community:     deck.MustParseCards(sc.board),
			Pot:           sc.pot,
			Seats:         seats,
			DealerButton:  0,
			SmallBlindPos: seatSB,
			BigBlindPos:   seatBB,
			Round:         round,
			ActionHistory: history,
		},
	}
}

func newEngine(src interface{ Float64() float64 }) *Engine {
	return New(DefaultConfig(), src, log.New(io.Discard))
}
