// Package odds converts bet sizes into pot odds.
package odds

// PotOdds is the share of the final pot already in the middle when calling:
// pot / (pot + call). With nothing to call it is 1. The result is clamped to
// [0,1] so a malformed negative pot cannot escape the range.
func PotOdds(callAmount, pot int) float64 {
	if callAmount <= 0 {
		return 1
	}
	total := pot + callAmount
	if total <= 0 {
		return 0
	}
	return min(1, max(0, float64(pot)/float64(total)))
}
