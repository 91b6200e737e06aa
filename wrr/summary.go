// SPDX-License-Identifier: MIT
package wrr

// Counts returns how many objects each of numPlayers players received.
// Records naming a player outside [0, numPlayers) are ignored.
func Counts(records []Record, numPlayers int) []int {
	counts := make([]int, numPlayers)
	for _, r := range records {
		if r.Player >= 0 && r.Player < numPlayers {
			counts[r.Player]++
		}
	}

	return counts
}

// Bundles groups object indices per player, each bundle in pick order.
// Every bundle is non-nil.
func Bundles(records []Record, numPlayers int) [][]int {
	bundles := make([][]int, numPlayers)
	var p int
	for p = range bundles {
		bundles[p] = []int{}
	}
	for _, r := range records {
		if r.Player >= 0 && r.Player < numPlayers {
			bundles[r.Player] = append(bundles[r.Player], r.Object)
		}
	}

	return bundles
}

// Utilities sums, per player, the values at choice of the objects they took.
func Utilities(records []Record, numPlayers int) []float64 {
	utils := make([]float64, numPlayers)
	for _, r := range records {
		if r.Player >= 0 && r.Player < numPlayers {
			utils[r.Player] += r.Value
		}
	}

	return utils
}
