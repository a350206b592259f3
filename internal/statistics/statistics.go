// Package statistics accumulates per-hand results from simulated play and
// summarises them in big blinds per hand.
package statistics

import (
	"fmt"
	"math"
	"slices"

	"github.com/lox/gtobot/internal/game"
	"github.com/lox/gtobot/internal/table"
)

// HandResult is the outcome of one hand from the hero's seat.
type HandResult struct {
	NetBB    float64        // Net big blinds won or lost
	Seed     int64          // Table seed, for replay
	Position table.Position // Hero's position class this hand
	Showdown bool           // Hand reached showdown
	Pot      int            // Final pot in chips
	Street   game.Street    // Last street dealt
}

// PositionStats tracks results for one position class.
type PositionStats struct {
	Hands int
	SumBB float64
}

// Mean returns big blinds per hand for the position.
func (p PositionStats) Mean() float64 {
	if p.Hands == 0 {
		return 0
	}
	return p.SumBB / float64(p.Hands)
}

// Statistics is a running summary. The zero value is ready to use.
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
	Values []float64

	ShowdownWins    int
	NonShowdownWins int
	ShowdownBB      float64
	NonShowdownBB   float64

	Positions map[table.Position]PositionStats
	Streets   [4]int // Hands ending on each street

	MaxPot int
}

// Add records one hand.
func (s *Statistics) Add(r HandResult) {
	s.Hands++
	s.SumBB += r.NetBB
	s.SumBB2 += r.NetBB * r.NetBB
	s.Values = append(s.Values, r.NetBB)

	if r.Showdown {
		s.ShowdownBB += r.NetBB
		if r.NetBB > 0 {
			s.ShowdownWins++
		}
	} else {
		s.NonShowdownBB += r.NetBB
		if r.NetBB > 0 {
			s.NonShowdownWins++
		}
	}

	if s.Positions == nil {
		s.Positions = make(map[table.Position]PositionStats)
	}
	ps := s.Positions[r.Position]
	ps.Hands++
	ps.SumBB += r.NetBB
	s.Positions[r.Position] = ps

	if r.Street >= game.Preflop && r.Street <= game.River {
		s.Streets[r.Street]++
	}
	s.MaxPot = max(s.MaxPot, r.Pot)
}

// Merge folds another summary into s.
func (s *Statistics) Merge(o *Statistics) {
	s.Hands += o.Hands
	s.SumBB += o.SumBB
	s.SumBB2 += o.SumBB2
	s.Values = append(s.Values, o.Values...)
	s.ShowdownWins += o.ShowdownWins
	s.NonShowdownWins += o.NonShowdownWins
	s.ShowdownBB += o.ShowdownBB
	s.NonShowdownBB += o.NonShowdownBB
	if len(o.Positions) > 0 && s.Positions == nil {
		s.Positions = make(map[table.Position]PositionStats)
	}
	for pos, ps := range o.Positions {
		cur := s.Positions[pos]
		cur.Hands += ps.Hands
		cur.SumBB += ps.SumBB
		s.Positions[pos] = cur
	}
	for i := range s.Streets {
		s.Streets[i] += o.Streets[i]
	}
	s.MaxPot = max(s.MaxPot, o.MaxPot)
}

// Mean returns big blinds per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% interval around the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the middle result.
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the interpolated value at p in [0,1].
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Values)
	slices.Sort(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	if lower+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[lower+1]*weight
}

// Validate checks the summary's internal accounting.
func (s *Statistics) Validate() error {
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values length (%d) does not match hands count (%d)", len(s.Values), s.Hands)
	}
	if math.Abs(s.SumBB-s.ShowdownBB-s.NonShowdownBB) > 1e-6 {
		return fmt.Errorf("ledger mismatch: total=%.6f showdown=%.6f non-showdown=%.6f",
			s.SumBB, s.ShowdownBB, s.NonShowdownBB)
	}
	if wins := s.ShowdownWins + s.NonShowdownWins; wins > s.Hands {
		return fmt.Errorf("total wins (%d) exceeds total hands (%d)", wins, s.Hands)
	}
	positionHands := 0
	for _, ps := range s.Positions {
		positionHands += ps.Hands
	}
	if positionHands != s.Hands {
		return fmt.Errorf("position hands total (%d) does not match total hands (%d)", positionHands, s.Hands)
	}
	return nil
}
