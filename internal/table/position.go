// Package table derives the seat-relative context of a decision: the acting
// seat's position class and its effective stack ratio.
package table

import (
	"strings"

	"github.com/lox/gtobot/internal/game"
)

// Position is a coarse seat class relative to the dealer button.
type Position int

const (
	Early Position = iota
	Middle
	Late
	SmallBlind
	BigBlind
)

func (p Position) String() string {
	switch p {
	case Early:
		return "early"
	case Middle:
		return "middle"
	case Late:
		return "late"
	case SmallBlind:
		return "sb"
	case BigBlind:
		return "bb"
	default:
		return "unknown"
	}
}

// ParsePosition maps a position name as used in configuration. Both the
// short ("sb") and long ("small_blind") blind names are accepted.
func ParsePosition(s string) (Position, bool) {
	switch strings.ToLower(s) {
	case "early":
		return Early, true
	case "middle":
		return Middle, true
	case "late":
		return Late, true
	case "sb", "small_blind":
		return SmallBlind, true
	case "bb", "big_blind":
		return BigBlind, true
	}
	return Middle, false
}

// ResolvePosition classifies the seat held by uuid. The blinds override the
// button-relative classes. Tables of six or more active seats are split in
// thirds by distance from the button; shorter tables treat the first two
// seats after the button as early and the seat at activeCount-1 as late. An
// identity not seated at the table resolves to Middle.
func ResolvePosition(uuid string, seats []game.Seat, dealer, smallBlind, bigBlind int) Position {
	seat := -1
	active := 0
	for i, s := range seats {
		if s.State != game.Folded {
			active++
		}
		if s.UUID == uuid && seat < 0 {
			seat = i
		}
	}
	if seat < 0 {
		return Middle
	}

	if seat == smallBlind {
		return SmallBlind
	}
	if seat == bigBlind {
		return BigBlind
	}

	total := len(seats)
	offset := ((seat-dealer)%total + total) % total

	if active >= 6 {
		switch {
		case offset < active/3:
			return Early
		case offset < 2*active/3:
			return Middle
		default:
			return Late
		}
	}

	switch {
	case offset <= 1:
		return Early
	case offset == active-1:
		return Late
	default:
		return Middle
	}
}
