package protocol

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/gtobot/internal/deck"
	"github.com/lox/gtobot/internal/game"
)

const decisionJSON = `{
  "uuid": "hero",
  "game_info": {"player_num": 3, "rule": {"initial_stack": 200, "max_round": 10, "small_blind_amount": 10}},
  "valid_actions": [
    {"action": "fold", "amount": 0},
    {"action": "call", "amount": 20},
    {"action": "raise", "amount": {"min": 40, "max": 200}}
  ],
  "hole_card": ["SA", "HK"],
  "round_state": {
    "street": "flop",
    "pot": {"main": {"amount": 75}, "side": []},
    "community_card": ["C2", "D7", "HT"],
    "seats": [
      {"uuid": "hero", "name": "gtobot", "stack": 180, "state": "participating"},
      {"uuid": "v1", "name": "villain", "stack": 150, "state": "allin"},
      {"uuid": "v2", "name": "other", "stack": 200, "state": "folded"}
    ],
    "dealer_btn": 2,
    "small_blind_pos": 0,
    "big_blind_pos": 1,
    "round_count": 3,
    "small_blind_amount": 10,
    "action_histories": {
      "flop": [{"action": "RAISE", "amount": 20, "uuid": "v1"}],
      "preflop": [
        {"action": "SMALLBLIND", "amount": 10, "uuid": "hero"},
        {"action": "BIGBLIND", "amount": 20, "uuid": "v1"},
        {"action": "CALL", "amount": 20, "uuid": "hero"}
      ]
    }
  }
}`

func TestDecodeDecision(t *testing.T) {
	msg, err := DecodeDecision(strings.NewReader(decisionJSON))
	require.NoError(t, err)

	req := msg.Request()
	assert.Equal(t, "hero", req.UUID)
	assert.Equal(t, []deck.Card{
		deck.NewCard(deck.Spades, deck.Ace),
		deck.NewCard(deck.Hearts, deck.King),
	}, req.Hole)
	assert.Equal(t, game.LegalActions{CallAmount: 20, MinRaise: 40, MaxRaise: 200}, req.Legal)

	state := req.State
	assert.Equal(t, game.Flop, state.Street)
	assert.Equal(t, 75, state.Pot)
	assert.Len(t, state.Community, 3)
	assert.Equal(t, 2, state.DealerButton)
	assert.Equal(t, 0, state.SmallBlindPos)
	assert.Equal(t, 1, state.BigBlindPos)
	assert.Equal(t, 3, state.Round)
	assert.Equal(t, 10, state.SmallBlind)
	require.Len(t, state.Seats, 3)
	assert.Equal(t, game.AllIn, state.Seats[1].State)
	assert.Equal(t, game.Folded, state.Seats[2].State)

	require.NotNil(t, msg.GameInfo)
	assert.Equal(t, game.Rules{InitialStack: 200, MaxRound: 10, SmallBlind: 10}, msg.GameInfo.Rules())
}

func TestHistoryFollowsStreetOrder(t *testing.T) {
	msg, err := DecodeDecision(strings.NewReader(decisionJSON))
	require.NoError(t, err)

	history := msg.RoundState.State().ActionHistory
	require.Len(t, history, 4)
	assert.Equal(t, "SMALLBLIND", history[0].Action)
	assert.Equal(t, game.Preflop, history[0].Street)
	assert.Equal(t, "RAISE", history[3].Action)
	assert.Equal(t, game.Flop, history[3].Street)
	assert.Equal(t, 70, msg.RoundState.State().TotalWagered())
}

func TestLegalWithoutRaise(t *testing.T) {
	legal := Legal([]ValidAction{
		{Action: ActionFold},
		{Action: ActionCall, Amount: Amount{Value: 50}},
	})
	assert.False(t, legal.CanRaise())
	assert.Equal(t, game.NoRaise, legal.MinRaise)
	assert.Equal(t, 50, legal.CallAmount)
}

func TestLegalWithoutCallIsCheck(t *testing.T) {
	legal := Legal([]ValidAction{{Action: ActionFold}})
	assert.False(t, legal.FacingBet())
	assert.Equal(t, 0, legal.CallAmount)
}

func TestHoleCardsRequireTwoValidCards(t *testing.T) {
	assert.Len(t, HoleCards([]string{"SA", "HK"}), 2)
	assert.Nil(t, HoleCards([]string{"SA", "??"}))
	assert.Nil(t, HoleCards([]string{"SA"}))
	assert.Nil(t, HoleCards(nil))
}

func TestCardsSkipMalformed(t *testing.T) {
	cards := Cards([]string{"C2", "X9", "", "DT"})
	assert.Equal(t, []deck.Card{
		deck.NewCard(deck.Clubs, deck.Two),
		deck.NewCard(deck.Diamonds, deck.Ten),
	}, cards)
}

func TestAmountRejectsGarbage(t *testing.T) {
	var a Amount
	assert.Error(t, json.Unmarshal([]byte(`"lots"`), &a))
}

func TestAmountMarshalsBothForms(t *testing.T) {
	b, err := json.Marshal(Amount{Value: 15})
	require.NoError(t, err)
	assert.JSONEq(t, `15`, string(b))

	b, err = json.Marshal(Amount{Min: 20, Max: 100})
	require.NoError(t, err)
	assert.JSONEq(t, `{"min":20,"max":100}`, string(b))
}

func TestEncodeAction(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeAction(&buf, game.Action{Kind: game.Raise, Amount: 60}))
	assert.JSONEq(t, `{"action":"raise","amount":60}`, buf.String())

	buf.Reset()
	require.NoError(t, EncodeAction(&buf, game.Action{Kind: game.Fold}))
	assert.JSONEq(t, `{"action":"fold","amount":0}`, buf.String())
}

func TestDecodeDecisionError(t *testing.T) {
	_, err := DecodeDecision(strings.NewReader(`{"uuid": 1`))
	assert.Error(t, err)
}

func TestUnknownStreetDefaultsToPreflop(t *testing.T) {
	state := RoundState{Street: "showdown"}.State()
	assert.Equal(t, game.Preflop, state.Street)
}

func TestDecoderStreamsMessages(t *testing.T) {
	stream := `{"uuid":"a","hole_card":["SA","SK"],"round_state":{"street":"preflop"}}
{"uuid":"b","hole_card":["H2","D7"],"round_state":{"street":"river"}}`
	dec := NewDecoder(strings.NewReader(stream))

	first, err := dec.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", first.UUID)

	second, err := dec.Next()
	require.NoError(t, err)
	assert.Equal(t, game.River, second.Request().State.Street)

	_, err = dec.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecodeDecisionEmptyInput(t *testing.T) {
	_, err := DecodeDecision(strings.NewReader(""))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
