package phh

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lox/gtobot/internal/deck"
)

// Encode writes the hand history as TOML.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a hand history written by Encode.
func Decode(r io.Reader) (*HandHistory, error) {
	var hand HandHistory
	if _, err := toml.NewDecoder(r).Decode(&hand); err != nil {
		return nil, fmt.Errorf("phh: %w", err)
	}
	return &hand, nil
}

// Cards renders cards in PHH notation, e.g. "AsKd".
func Cards(cards []deck.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.Notation())
	}
	return b.String()
}

func playerName(index int) string {
	return fmt.Sprintf("p%d", index+1)
}

// DealHole is the dealer action giving hole cards to a player.
func DealHole(index int, hole []deck.Card) string {
	return fmt.Sprintf("d dh %s %s", playerName(index), Cards(hole))
}

// DealBoard is the dealer action for community cards.
func DealBoard(cards []deck.Card) string {
	return "d db " + Cards(cards)
}

// ShowMuck is a player showing their hole cards at showdown.
func ShowMuck(index int, hole []deck.Card) string {
	return fmt.Sprintf("%s sm %s", playerName(index), Cards(hole))
}

// FormatAction converts a recorded wager to a PHH action. Blind posts are
// carried by blinds_or_straddles and are not emitted.
func FormatAction(index int, action string, amount int) (string, bool) {
	player := playerName(index)
	switch strings.ToUpper(action) {
	case "FOLD":
		return player + " f", true
	case "CALL", "CHECK":
		return player + " cc", true
	case "RAISE", "BET":
		if amount <= 0 {
			return "", false
		}
		return fmt.Sprintf("%s cbr %d", player, amount), true
	case "SMALLBLIND", "BIGBLIND", "ANTE":
		return "", false
	default:
		return fmt.Sprintf("# %s %s %d", player, strings.ToLower(action), amount), true
	}
}
