package table

import "github.com/lox/gtobot/internal/game"

// Context is the seat-relative picture of one decision. It is recomputed
// for every request and never cached across hands.
type Context struct {
	Position   Position
	Stack      int
	StackRatio float64
	Round      int
}

// Resolve builds the Context for the acting seat in req.
func Resolve(req game.DecisionRequest, startingStack int) Context {
	s := req.State
	stack := Stack(req.UUID, s.Seats)
	return Context{
		Position:   ResolvePosition(req.UUID, s.Seats, s.DealerButton, s.SmallBlindPos, s.BigBlindPos),
		Stack:      stack,
		StackRatio: StackRatio(stack, startingStack),
		Round:      s.Round,
	}
}

// Stack returns the stack of the seat held by uuid, or 0 if it is not
// seated.
func Stack(uuid string, seats []game.Seat) int {
	for _, s := range seats {
		if s.UUID == uuid {
			return s.Stack
		}
	}
	return 0
}

// StackRatio is the current stack over the configured starting stack. A
// non-positive starting stack yields 0.
func StackRatio(stack, startingStack int) float64 {
	if startingStack <= 0 {
		return 0
	}
	return float64(stack) / float64(startingStack)
}
