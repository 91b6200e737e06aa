// Package wrr implements Weighted Round Robin, a sequential fair-division
// procedure that hands indivisible objects to players with unequal
// entitlements ("rights").
//
// 🚀 What is Weighted Round Robin?
//
//	Every round, the player with the largest portion
//
//	    portion(p) = right(p) / (taken(p) + y)
//
//	picks their most valued remaining object. A player's portion shrinks each
//	time they take something, so players with larger rights choose more often
//	but never monopolize the pool. y tunes how fast that priority decays.
//
// ✨ Key features:
//   - deterministic, documented tie-breaks (lowest player, lowest object)
//   - caller data untouched by default; WithInPlace for reference mutation
//   - explicit zero-denominator policy (typed error or saturation)
//   - explicit portion floor (zero or -Inf)
//   - Observer hooks for tracing and metrics (see package observe)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fairdiv/wrr"
//
//	rights := []float64{1, 2, 4}
//	vals := [][]float64{
//	  {11, 11, 22, 33, 44},
//	  {11, 22, 44, 55, 66},
//	  {11, 33, 22, 11, 66},
//	}
//	records, err := wrr.Allocate(rights, vals, 0.5)
//	for _, r := range records {
//	  fmt.Println(r) // Player 2 takes item 4 with value 66 ...
//	}
//
// Errors:
//   - ErrInvalidInput      empty rights, bad right, shape mismatch, ragged or non-finite valuations, bad y.
//   - ErrDivisionByZero    taken+y == 0 (as *DivisionByZeroError) unless WithSaturation.
//   - ErrNoEligiblePlayer  no portion above the floor (as *RoundError).
//
// Performance:
//
//   - Time:   O(M·(N+M)) for N players and M objects
//   - Memory: O(N·M), or O(N+M) with WithInPlace
package wrr
