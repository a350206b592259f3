package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/lox/gtobot/internal/deck"
	"github.com/lox/gtobot/internal/game"
)

// Decoder reads a stream of DecisionMessages, one JSON value after another.
type Decoder struct {
	dec *json.Decoder
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: json.NewDecoder(r)}
}

// Next returns the next message, or io.EOF once the stream is exhausted.
func (d *Decoder) Next() (*DecisionMessage, error) {
	var msg DecisionMessage
	if err := d.dec.Decode(&msg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to decode decision message: %w", err)
	}
	return &msg, nil
}

// DecodeDecision reads one DecisionMessage from r.
func DecodeDecision(r io.Reader) (*DecisionMessage, error) {
	msg, err := NewDecoder(r).Next()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode decision message: %w", io.ErrUnexpectedEOF)
	}
	return msg, err
}

// EncodeAction writes the action in wire form.
func EncodeAction(w io.Writer, a game.Action) error {
	return json.NewEncoder(w).Encode(ActionMessage{Action: a.Kind.String(), Amount: a.Amount})
}

// Request converts the message into a game.DecisionRequest.
func (m *DecisionMessage) Request() game.DecisionRequest {
	return game.DecisionRequest{
		UUID:  m.UUID,
		Hole:  HoleCards(m.HoleCard),
		Legal: Legal(m.ValidActions),
		State: m.RoundState.State(),
	}
}

// Rules converts the optional game info into game.Rules.
func (g *GameInfo) Rules() game.Rules {
	return game.Rules{
		InitialStack: g.Rule.InitialStack,
		MaxRound:     g.Rule.MaxRound,
		SmallBlind:   g.Rule.SmallBlindAmount,
	}
}

// Legal finds fold, call and raise by name. A missing call entry means a
// free check; a missing raise entry means raising is not permitted.
func Legal(actions []ValidAction) game.LegalActions {
	legal := game.LegalActions{MinRaise: game.NoRaise, MaxRaise: game.NoRaise}
	for _, a := range actions {
		switch a.Action {
		case ActionCall:
			legal.CallAmount = a.Amount.Value
		case ActionRaise:
			legal.MinRaise = a.Amount.Min
			legal.MaxRaise = a.Amount.Max
		}
	}
	return legal
}

// Cards parses card codes, skipping any that are malformed.
func Cards(codes []string) []deck.Card {
	cards := make([]deck.Card, 0, len(codes))
	for _, code := range codes {
		if c, err := deck.ParseCard(code); err == nil {
			cards = append(cards, c)
		}
	}
	return cards
}

// HoleCards parses hole card codes. Anything other than two valid cards is
// reported as no hole cards.
func HoleCards(codes []string) []deck.Card {
	cards := Cards(codes)
	if len(cards) != 2 {
		return nil
	}
	return cards
}

// Seats converts wire seats.
func Seats(seats []Seat) []game.Seat {
	out := make([]game.Seat, len(seats))
	for i, s := range seats {
		out[i] = game.Seat{UUID: s.UUID, Name: s.Name, Stack: s.Stack, State: game.ParseSeatState(s.State)}
	}
	return out
}

var streetOrder = []string{"preflop", "flop", "turn", "river"}

// State converts the round state. Action histories are flattened street by
// street in play order; unknown street keys follow in name order.
func (r RoundState) State() game.RoundState {
	street, _ := game.ParseStreet(r.Street)

	keys := make([]string, 0, len(r.ActionHistories))
	for k := range r.ActionHistories {
		if !slices.Contains(streetOrder, k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	keys = append(slices.Clone(streetOrder), keys...)

	var history []game.Wager
	for _, k := range keys {
		s, _ := game.ParseStreet(k)
		for _, h := range r.ActionHistories[k] {
			history = append(history, game.Wager{Street: s, UUID: h.UUID, Action: h.Action, Amount: h.Amount})
		}
	}

	return game.RoundState{
		Street:        street,
		Community:     Cards(r.CommunityCard),
		Pot:           r.Pot.Main.Amount,
		Seats:         Seats(r.Seats),
		DealerButton:  r.DealerBtn,
		SmallBlindPos: r.SmallBlindPos,
		BigBlindPos:   r.BigBlindPos,
		Round:         r.RoundCount,
		SmallBlind:    r.SmallBlindAmount,
		ActionHistory: history,
	}
}
