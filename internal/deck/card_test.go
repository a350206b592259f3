package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "royal flush",
			input: "AsKsQsJsTs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
				{Suit: Spades, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Ten},
			},
		},
		{
			name:  "engine suit-first notation",
			input: "SAHKD2CT",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Two},
				{Suit: Clubs, Rank: Ten},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{name: "invalid rank", input: "XsKs", wantErr: true},
		{name: "invalid suit", input: "AsKx", wantErr: true},
		{name: "suit first invalid rank", input: "S1", wantErr: true},
		{name: "odd length", input: "AsK", wantErr: true},
		{name: "empty string", input: "", expected: []Card{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	assert.Equal(t, []Card{{Suit: Spades, Rank: Ace}, {Suit: Spades, Rank: King}}, MustParseCards("AsKs"))
	assert.Panics(t, func() { MustParseCards("invalid") })
}

func TestCardStrings(t *testing.T) {
	c := NewCard(Hearts, Ten)
	assert.Equal(t, "T♥", c.String())
	assert.Equal(t, "Th", c.Notation())
	assert.Equal(t, 10, c.Value())
	assert.Equal(t, "?", Rank(1).String())
	assert.False(t, Rank(15).Valid())
	assert.True(t, Ace.Valid())
}

func TestFormatCards(t *testing.T) {
	assert.Equal(t, "A♠ K♥", FormatCards(MustParseCards("AsKh")))
	assert.Equal(t, "", FormatCards(nil))
}
