package policy

import (
	"fmt"

	"github.com/lox/gtobot/internal/game"
	"github.com/lox/gtobot/internal/table"
)

func (e *Engine) preflop(req game.DecisionRequest, s Signals, pos table.Position, thinking *ThinkingContext) game.Action {
	adjusted := s.Adjusted()
	legal := req.Legal
	raise := func(multiplier float64) game.Action {
		return raiseTo(legal, bigBlindTarget(e.smallBlind(req.State), multiplier))
	}

	switch {
	case adjusted > 0.8:
		if e.draw() < 0.8 {
			thinking.AddThought("Premium hand, raising 2.5x")
			return raise(2.5)
		}
		thinking.AddThought("Premium hand, flatting to mix it up")
		return legal.Call()

	case adjusted > 0.6:
		if e.draw() < s.PositionMultiplier {
			thinking.AddThought("Strong hand, raising 2.2x")
			return raise(2.2)
		}
		thinking.AddThought("Strong hand, calling")
		return legal.Call()

	case adjusted > 0.4:
		if (pos == table.Late || pos == table.BigBlind) && e.draw() < 0.4 {
			thinking.AddThought(fmt.Sprintf("Playable hand from %s, raising 2x", pos))
			return raise(2.0)
		}
		if s.PotOdds > adjusted {
			thinking.AddThought("Playable hand with the price to call")
			return legal.Call()
		}
		thinking.AddThought("Playable hand without the price, folding")
		return legal.Fold()

	default:
		if pos == table.Late && e.draw() < e.cfg.BluffThreshold {
			thinking.AddThought("Weak hand in late position, bluff raising")
			return raise(2.0)
		}
		if s.PotOdds > 0.5 && adjusted > 0.3 {
			thinking.AddThought("Weak hand but very good pot odds, calling")
			return legal.Call()
		}
		thinking.AddThought("Weak hand, folding")
		return legal.Fold()
	}
}
