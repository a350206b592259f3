package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/gtobot/internal/game"
)

func TestStackRatio(t *testing.T) {
	assert.Equal(t, 1.0, StackRatio(100, 100))
	assert.Equal(t, 0.5, StackRatio(50, 100))
	assert.Zero(t, StackRatio(50, 0))
	assert.Zero(t, StackRatio(50, -10))
}

func TestResolve(t *testing.T) {
	s := seats(6)
	s[4].Stack = 60
	req := game.DecisionRequest{
		UUID: "p4",
		State: game.RoundState{
			Seats:         s,
			DealerButton:  0,
			SmallBlindPos: 1,
			BigBlindPos:   2,
			Round:         3,
		},
	}

	ctx := Resolve(req, 120)
	assert.Equal(t, Context{Position: Late, Stack: 60, StackRatio: 0.5, Round: 3}, ctx)
}

func TestResolveUnseatedIdentity(t *testing.T) {
	req := game.DecisionRequest{UUID: "ghost", State: game.RoundState{Seats: seats(3)}}
	ctx := Resolve(req, 100)
	assert.Equal(t, Middle, ctx.Position)
	assert.Zero(t, ctx.Stack)
	assert.Zero(t, ctx.StackRatio)
}
