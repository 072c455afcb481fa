package seating

// Polish runs a deterministic all-pairs local search to a fixed
// point: repeatedly scan every pair of free coordinates, keep a swap
// if it strictly improves the two affected tables' combined score,
// revert it otherwise, and repeat the full scan until a pass makes no
// improvement. Mutates arrangement in place.
//
// Grounded on the local search phase embedded after the SA loop in
// the original optimize_seating_simulated_annealing, split out here
// as its own component per the spec's Local Polisher boundary.
func Polish(arrangement *Arrangement, free []Coordinate, scorer *Scorer) float64 {
	var delta float64
	improved := true
	for improved {
		improved = false
		for i := 0; i < len(free); i++ {
			for j := i + 1; j < len(free); j++ {
				c1, c2 := free[i], free[j]
				oldLocal := scorer.ScoreLocal(arrangement, c1, c2)
				Swap(arrangement, c1, c2)
				newLocal := scorer.ScoreLocal(arrangement, c1, c2)
				if newLocal > oldLocal {
					delta += newLocal - oldLocal
					improved = true
				} else {
					Swap(arrangement, c1, c2)
				}
			}
		}
	}
	return delta
}
