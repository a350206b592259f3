package simulator

import (
	"fmt"
	"path/filepath"

	"github.com/lox/gtobot/internal/deck"
	"github.com/lox/gtobot/internal/fileutil"
	"github.com/lox/gtobot/internal/game"
	"github.com/lox/gtobot/internal/phh"
)

// boardFor returns the community cards dealt on street.
func (h *hand) boardFor(street game.Street) []deck.Card {
	lo, hi := 0, 0
	switch street {
	case game.Flop:
		lo, hi = 0, 3
	case game.Turn:
		lo, hi = 3, 4
	case game.River:
		lo, hi = 4, 5
	}
	if hi > len(h.board) {
		return nil
	}
	return h.board[lo:hi]
}

// handHistory converts a settled hand to PHH, reindexing seats so that p1
// is the small blind.
func (h *hand) handHistory(tableName, id string) *phh.HandHistory {
	n := len(h.seats)
	order := make([]int, n)
	index := make(map[string]int, n)
	for k := range n {
		seat := (h.sbPos + k) % n
		order[k] = seat
		index[h.seats[seat].uuid] = k
	}

	hh := &phh.HandHistory{
		Variant:           "NT",
		Table:             tableName,
		SeatCount:         n,
		Antes:             make([]int, n),
		BlindsOrStraddles: make([]int, n),
		MinBet:            h.bigBlind(),
		HandID:            id,
		Metadata: map[string]any{
			"round":  h.round,
			"dealer": h.dealer + 1,
		},
	}
	hh.BlindsOrStraddles[0] = h.t.cfg.SmallBlind
	hh.BlindsOrStraddles[1] = h.bigBlind()

	for k, seat := range order {
		s := h.seats[seat]
		hh.Seats = append(hh.Seats, seat+1)
		hh.Players = append(hh.Players, s.uuid)
		hh.StartingStacks = append(hh.StartingStacks, h.start[seat])
		hh.FinishingStacks = append(hh.FinishingStacks, s.stack)
		hh.Winnings = append(hh.Winnings, h.payouts[seat])
		hh.Actions = append(hh.Actions, phh.DealHole(k, s.hole))
	}

	dealt := game.Preflop
	dealTo := func(street game.Street) {
		for dealt < street {
			dealt++
			if cards := h.boardFor(dealt); cards != nil {
				hh.Actions = append(hh.Actions, phh.DealBoard(cards))
			}
		}
	}
	for _, w := range h.history {
		dealTo(w.Street)
		if action, ok := phh.FormatAction(index[w.UUID], w.Action, w.Amount); ok {
			hh.Actions = append(hh.Actions, action)
		}
	}
	dealTo(h.street)

	if h.showdown {
		for k, seat := range order {
			if s := h.seats[seat]; !s.folded {
				hh.Actions = append(hh.Actions, phh.ShowMuck(k, s.hole))
			}
		}
	}
	return hh
}

// writeHistory stores the hand under the configured history directory.
func (t *tableRunner) writeHistory(h *hand, n int) error {
	tableName := fmt.Sprintf("table-%02d", t.id)
	data, err := phh.EncodeToBytes(h.handHistory(tableName, t.ids.Generate()))
	if err != nil {
		return fmt.Errorf("failed to encode hand history: %w", err)
	}
	path := filepath.Join(t.cfg.HistoryDir, tableName, fmt.Sprintf("hand-%05d.phh", n))
	return fileutil.WriteFileAtomicAll(path, data, 0o644)
}
