package simulator

import (
	"fmt"
	"slices"

	"github.com/lox/gtobot/internal/deck"
	"github.com/lox/gtobot/internal/game"
)

// maxVillainRaises caps villain raises per street so betting terminates
// quickly between scripted opponents.
const maxVillainRaises = 2

type seat struct {
	uuid   string
	hole   []deck.Card
	stack  int
	street int // committed this street
	total  int // committed this hand
	folded bool
}

func (s *seat) canAct() bool { return !s.folded && s.stack > 0 }

// commit moves up to amount chips from the stack into the pot.
func (s *seat) commit(amount int) int {
	amount = min(amount, s.stack)
	s.stack -= amount
	s.street += amount
	s.total += amount
	return amount
}

type hand struct {
	t       *tableRunner
	seats   []*seat
	dealer  int
	sbPos   int
	bbPos   int
	round   int
	street  game.Street
	board   []deck.Card
	history []game.Wager
	start   []int // stacks before the blinds

	showdown bool
	payouts  []int

	currentBet int
	minRaise   int
	raises     int
}

func newHand(t *tableRunner, n int) *hand {
	count := len(t.stacks)
	h := &hand{
		t:      t,
		dealer: n % count,
		round:  n%t.rounds() + 1,
		street: game.Preflop,
	}
	if count == 2 {
		h.sbPos, h.bbPos = h.dealer, (h.dealer+1)%count
	} else {
		h.sbPos, h.bbPos = (h.dealer+1)%count, (h.dealer+2)%count
	}

	t.deck.Shuffle()
	h.seats = make([]*seat, count)
	h.start = slices.Clone(t.stacks)
	for i := range h.seats {
		h.seats[i] = &seat{uuid: t.uuids[i], stack: t.stacks[i], hole: t.deck.DealN(2)}
	}
	return h
}

func (h *hand) bigBlind() int { return 2 * h.t.cfg.SmallBlind }

func (h *hand) pot() int {
	total := 0
	for _, s := range h.seats {
		total += s.total
	}
	return total
}

func (h *hand) live() int {
	n := 0
	for _, s := range h.seats {
		if !s.folded {
			n++
		}
	}
	return n
}

func (h *hand) record(i int, action string, amount int) game.Wager {
	w := game.Wager{Street: h.street, UUID: h.seats[i].uuid, Action: action, Amount: amount}
	h.history = append(h.history, w)
	return w
}

func (h *hand) seatViews() []game.Seat {
	views := make([]game.Seat, len(h.seats))
	for i, s := range h.seats {
		state := game.Participating
		switch {
		case s.folded:
			state = game.Folded
		case s.stack == 0:
			state = game.AllIn
		}
		views[i] = game.Seat{UUID: s.uuid, Name: s.uuid, Stack: s.stack, State: state}
	}
	return views
}

// state is the hero's view of the hand.
func (h *hand) state() game.RoundState {
	return game.RoundState{
		Street:        h.street,
		Community:     slices.Clone(h.board),
		Pot:           h.pot(),
		Seats:         h.seatViews(),
		DealerButton:  h.dealer,
		SmallBlindPos: h.sbPos,
		BigBlindPos:   h.bbPos,
		Round:         h.round,
		SmallBlind:    h.t.cfg.SmallBlind,
		ActionHistory: slices.Clone(h.history),
	}
}

func (h *hand) play() error {
	sb := h.seats[h.sbPos].commit(h.t.cfg.SmallBlind)
	h.record(h.sbPos, "SMALLBLIND", sb)
	bb := h.seats[h.bbPos].commit(h.bigBlind())
	h.record(h.bbPos, "BIGBLIND", bb)
	h.currentBet = max(sb, bb)
	h.minRaise = h.bigBlind()

	if err := h.bettingRound((h.bbPos + 1) % len(h.seats)); err != nil {
		return err
	}
	for _, next := range []struct {
		street game.Street
		cards  int
	}{{game.Flop, 3}, {game.Turn, 1}, {game.River, 1}} {
		if h.live() <= 1 {
			return nil
		}
		h.street = next.street
		h.board = append(h.board, h.t.deck.DealN(next.cards)...)
		for _, s := range h.seats {
			s.street = 0
		}
		h.currentBet, h.minRaise, h.raises = 0, h.bigBlind(), 0
		h.t.hero.ReceiveStreetStart(h.street, h.state())
		if err := h.bettingRound((h.dealer + 1) % len(h.seats)); err != nil {
			return err
		}
	}
	return nil
}

// settled reports whether no further action is needed this street: every
// seat with chips has matched the bet, and has acted unless it is the only
// one left who could.
func (h *hand) settled(acted []bool) bool {
	if h.live() <= 1 {
		return true
	}
	active := 0
	pending := false
	for i, s := range h.seats {
		if !s.canAct() {
			continue
		}
		if s.street < h.currentBet {
			return false
		}
		active++
		pending = pending || !acted[i]
	}
	return active < 2 || !pending
}

func (h *hand) bettingRound(first int) error {
	acted := make([]bool, len(h.seats))
	for i := first; !h.settled(acted); i = (i + 1) % len(h.seats) {
		s := h.seats[i]
		if !s.canAct() || (acted[i] && s.street == h.currentBet) {
			continue
		}

		var raised bool
		var err error
		if i == 0 {
			raised, err = h.heroAct()
		} else {
			raised = h.villainAct(i)
		}
		if err != nil {
			return err
		}
		acted[i] = true
		if raised {
			for j := range acted {
				if j != i {
					acted[j] = false
				}
			}
		}
	}
	return nil
}

// othersCanAct reports whether anyone besides seat i could respond to a raise.
func (h *hand) othersCanAct(i int) bool {
	for j, s := range h.seats {
		if j != i && s.canAct() {
			return true
		}
	}
	return false
}

func (h *hand) legal(i int) game.LegalActions {
	s := h.seats[i]
	toCall := h.currentBet - s.street
	legal := game.LegalActions{CallAmount: min(toCall, s.stack), MinRaise: game.NoRaise, MaxRaise: game.NoRaise}
	if s.stack > toCall && h.othersCanAct(i) {
		maxTo := s.street + s.stack
		legal.MinRaise = min(h.currentBet+h.minRaise, maxTo)
		legal.MaxRaise = maxTo
	}
	return legal
}

func (h *hand) heroAct() (bool, error) {
	s := h.seats[0]
	legal := h.legal(0)
	action := h.t.hero.DeclareAction(legal, s.hole, h.state())

	h.t.result.decisions++
	if h.street >= game.Preflop && h.street <= game.River {
		h.t.result.actions[h.street][action.Kind]++
	}

	switch action.Kind {
	case game.Fold:
		s.folded = true
		h.record(0, "FOLD", 0)
		return false, nil
	case game.Call:
		if action.Amount != legal.CallAmount {
			return false, fmt.Errorf("call of %d does not match call amount %d", action.Amount, legal.CallAmount)
		}
		s.commit(legal.CallAmount)
		h.record(0, "CALL", s.street)
		return false, nil
	case game.Raise:
		if !legal.CanRaise() || action.Amount < legal.MinRaise || action.Amount > legal.MaxRaise {
			return false, fmt.Errorf("raise to %d outside legal range [%d, %d]", action.Amount, legal.MinRaise, legal.MaxRaise)
		}
		return h.raiseTo(0, action.Amount), nil
	}
	return false, fmt.Errorf("unknown action %v", action.Kind)
}

// raiseTo brings seat i's street commitment to amount.
func (h *hand) raiseTo(i, amount int) bool {
	s := h.seats[i]
	s.commit(amount - s.street)
	if inc := s.street - h.currentBet; inc >= h.minRaise {
		h.minRaise = inc
	}
	raised := s.street > h.currentBet
	h.currentBet = max(h.currentBet, s.street)
	h.raises++
	h.record(i, "RAISE", s.street)
	return raised
}

// villainAct plays a loose-passive opponent: it never folds, and raises the
// minimum with the configured probability while the street's raise cap
// allows.
func (h *hand) villainAct(i int) bool {
	legal := h.legal(i)
	var w game.Wager
	raised := false
	if legal.CanRaise() && h.raises < maxVillainRaises && h.t.villain.Float64() < h.t.cfg.VillainAggression {
		raised = h.raiseTo(i, legal.MinRaise)
		w = h.history[len(h.history)-1]
	} else {
		s := h.seats[i]
		s.commit(legal.CallAmount)
		w = h.record(i, "CALL", s.street)
	}
	h.t.hero.ReceiveGameUpdate(w, h.state())
	return raised
}
