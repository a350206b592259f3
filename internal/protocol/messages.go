// Package protocol decodes the host engine's JSON messages into game values
// and encodes the chosen action back.
//
// Messages follow the engine's shape: a list of valid actions where the
// raise entry carries {min,max} bounds, suit-first card codes ("SA", "HT"),
// and a round_state object holding seats, blind positions and per-street
// action histories.
package protocol

import (
	"encoding/json"
	"fmt"
)

// Action names used on the wire.
const (
	ActionFold  = "fold"
	ActionCall  = "call"
	ActionRaise = "raise"
)

// Amount is a valid action's amount: a plain number for fold and call, a
// {min,max} object for raise.
type Amount struct {
	Value int
	Min   int
	Max   int
}

type amountRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*a = Amount{Value: n}
		return nil
	}
	var r amountRange
	if err := json.Unmarshal(b, &r); err != nil {
		return fmt.Errorf("amount must be a number or {min,max}: %w", err)
	}
	*a = Amount{Min: r.Min, Max: r.Max}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Min != 0 || a.Max != 0 {
		return json.Marshal(amountRange{Min: a.Min, Max: a.Max})
	}
	return json.Marshal(a.Value)
}

// ValidAction is one entry of valid_actions.
type ValidAction struct {
	Action string `json:"action"`
	Amount Amount `json:"amount"`
}

// Seat is one entry of round_state.seats.
type Seat struct {
	UUID  string `json:"uuid"`
	Name  string `json:"name,omitempty"`
	Stack int    `json:"stack"`
	State string `json:"state"`
}

// HistoryEntry is one action in round_state.action_histories.
type HistoryEntry struct {
	Action string `json:"action"`
	Amount int    `json:"amount,omitempty"`
	UUID   string `json:"uuid"`
}

// Pot mirrors round_state.pot; side pots are not used by the policy.
type Pot struct {
	Main struct {
		Amount int `json:"amount"`
	} `json:"main"`
}

// RoundState is the engine's round_state object.
type RoundState struct {
	Street           string                    `json:"street"`
	Pot              Pot                       `json:"pot"`
	CommunityCard    []string                  `json:"community_card"`
	Seats            []Seat                    `json:"seats"`
	DealerBtn        int                       `json:"dealer_btn"`
	SmallBlindPos    int                       `json:"small_blind_pos"`
	BigBlindPos      int                       `json:"big_blind_pos"`
	RoundCount       int                       `json:"round_count"`
	SmallBlindAmount int                       `json:"small_blind_amount"`
	ActionHistories  map[string][]HistoryEntry `json:"action_histories"`
}

// Rule is game_info.rule.
type Rule struct {
	InitialStack     int `json:"initial_stack"`
	MaxRound         int `json:"max_round"`
	SmallBlindAmount int `json:"small_blind_amount"`
}

// GameInfo is the game start notification.
type GameInfo struct {
	PlayerNum int    `json:"player_num"`
	Rule      Rule   `json:"rule"`
	Seats     []Seat `json:"seats"`
}

// DecisionMessage asks the player for an action. GameInfo is optional and
// lets a standalone request carry the game rules.
type DecisionMessage struct {
	UUID         string        `json:"uuid"`
	GameInfo     *GameInfo     `json:"game_info,omitempty"`
	ValidActions []ValidAction `json:"valid_actions"`
	HoleCard     []string      `json:"hole_card"`
	RoundState   RoundState    `json:"round_state"`
}

// ActionMessage is the reply to a DecisionMessage.
type ActionMessage struct {
	Action string `json:"action"`
	Amount int    `json:"amount"`
}
