package game

import "fmt"

// ActionKind is the kind of action a player takes.
type ActionKind int

const (
	Fold ActionKind = iota
	Call
	Raise
)

func (k ActionKind) String() string {
	return [...]string{"fold", "call", "raise"}[k]
}

// ParseActionKind maps an engine action tag to an ActionKind.
func ParseActionKind(s string) (ActionKind, error) {
	switch s {
	case "fold":
		return Fold, nil
	case "call", "check":
		return Call, nil
	case "raise", "bet":
		return Raise, nil
	}
	return Fold, fmt.Errorf("unknown action %q", s)
}

// Action is a single decision. Amount is the call amount for Call, the
// raise-to amount for Raise and zero for Fold.
type Action struct {
	Kind   ActionKind
	Amount int
}

func (a Action) String() string {
	if a.Kind == Fold {
		return "fold"
	}
	return fmt.Sprintf("%s %d", a.Kind, a.Amount)
}

// NoRaise is the raise minimum the engine reports when raising is not
// permitted.
const NoRaise = -1

// LegalActions are the options the engine offers at a decision point. Fold
// is always legal; CallAmount may be zero (a check).
type LegalActions struct {
	CallAmount int
	MinRaise   int
	MaxRaise   int
}

// CanRaise reports whether the engine permits a raise.
func (l LegalActions) CanRaise() bool {
	return l.MinRaise != NoRaise
}

// FacingBet reports whether calling costs chips.
func (l LegalActions) FacingBet() bool {
	return l.CallAmount > 0
}

// Fold returns the fold action.
func (l LegalActions) Fold() Action {
	return Action{Kind: Fold}
}

// Call returns the call (or check) action at the engine's call amount.
func (l LegalActions) Call() Action {
	return Action{Kind: Call, Amount: l.CallAmount}
}

// RaiseTo returns a raise clamped into [MinRaise, MaxRaise]. When raising is
// not permitted it degrades to a call.
func (l LegalActions) RaiseTo(amount int) Action {
	if !l.CanRaise() {
		return l.Call()
	}
	return Action{Kind: Raise, Amount: max(l.MinRaise, min(l.MaxRaise, amount))}
}
