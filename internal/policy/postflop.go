package policy

import "github.com/lox/gtobot/internal/game"

func (e *Engine) postflop(req game.DecisionRequest, s Signals, thinking *ThinkingContext) game.Action {
	adjusted := s.Adjusted()
	legal := req.Legal
	river := req.State.Street == game.River
	drawHeavy := s.Texture.DrawHeavy
	raise := func(fraction float64) game.Action {
		return raiseTo(legal, potFractionTarget(req.State, fraction))
	}

	switch {
	case adjusted > 0.8:
		if drawHeavy && !river {
			thinking.AddThought("Strong hand on a draw-heavy board, betting 70% to charge draws")
			return raise(0.7)
		}
		thinking.AddThought("Strong hand, value betting 60%")
		return raise(0.6)

	case adjusted > 0.65:
		if river {
			thinking.AddThought("Good hand on the river, value betting 50%")
			return raise(0.5)
		}
		if e.draw() < 0.7 {
			thinking.AddThought("Good hand, betting 50%")
			return raise(0.5)
		}
		thinking.AddThought("Good hand, calling")
		return legal.Call()

	case adjusted > 0.5:
		if s.PotOdds > adjusted && legal.FacingBet() {
			thinking.AddThought("Medium hand with the price to call")
			return legal.Call()
		}
		if !legal.FacingBet() && e.draw() < 0.3 {
			thinking.AddThought("Medium hand checked to me, small bet")
			return raise(0.4)
		}
		thinking.AddThought("Medium hand, calling")
		return legal.Call()

	case adjusted > 0.3 && drawHeavy && !river:
		if s.PotOdds > adjusted*1.5 {
			thinking.AddThought("Weak hand with draws on board, implied odds to call")
			return legal.Call()
		}
		thinking.AddThought("Weak hand, draws not priced in, folding")
		return legal.Fold()

	case river && e.draw() < e.cfg.BluffThreshold:
		thinking.AddThought("Missed on the river, bluffing 70%")
		return raise(0.7)

	default:
		if !legal.FacingBet() {
			thinking.AddThought("Weak hand, checking")
			return legal.Call()
		}
		if s.PotOdds > adjusted*1.2 {
			thinking.AddThought("Weak hand but very good pot odds, calling")
			return legal.Call()
		}
		thinking.AddThought("Weak hand, folding")
		return legal.Fold()
	}
}
