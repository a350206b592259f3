package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPotOdds(t *testing.T) {
	tests := []struct {
		name      string
		call, pot int
		want      float64
	}{
		{"no bet facing", 0, 100, 1},
		{"no bet empty pot", 0, 0, 1},
		{"negative call treated as free", -5, 40, 1},
		{"empty pot facing bet", 10, 0, 0},
		{"half pot bet", 50, 100, 100.0 / 150},
		{"pot sized bet", 100, 100, 0.5},
		{"negative pot clamps to zero", 10, -5, 0},
		{"pot cancels call", 10, -10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PotOdds(tt.call, tt.pot)
			assert.InDelta(t, tt.want, got, 1e-12)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestPotOddsFreeForAnyPot(t *testing.T) {
	for pot := 0; pot <= 1000; pot += 37 {
		assert.Equal(t, 1.0, PotOdds(0, pot))
	}
}
