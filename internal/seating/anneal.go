package seating

import (
	"math"
	"math/rand"
)

// AnnealResult is what one SA Engine run produces: the best
// arrangement it found, that arrangement's score (a ScoreArrangement
// baseline plus the accumulated local deltas, so it can drift from a
// fresh ScoreArrangement by floating-point error), and whether it
// stopped early because it reached a perfect seating.
type AnnealResult struct {
	Best         *Arrangement
	BestScore    float64
	StoppedEarly bool
	Iterations   int
}

// Anneal runs simulated annealing starting from current, using rng for
// every random choice. It mutates current in place as it explores and
// returns the best arrangement it observed as a separate clone, so the
// caller's current is left in its final (possibly worse) state for the
// Local Polisher to pick up from the returned best instead.
//
// Grounded on optimize_seating_simulated_annealing's SA phase in the
// original implementation: free-coordinate sampling, local delta
// evaluation via Scorer.ScoreLocal, Metropolis acceptance, revert by
// re-swapping on rejection, geometric cooling floored at 1e-8, and a
// best-snapshot taken only on strict improvement.
func Anneal(current *Arrangement, free []Coordinate, scorer *Scorer, sched ScheduleParams, rng *rand.Rand, log *Logger, worker int) AnnealResult {
	currentScore := scorer.ScoreArrangement(current)
	best := current.Clone()
	bestScore := currentScore
	temperature := sched.InitialTemperature

	result := AnnealResult{Best: best, BestScore: bestScore}

	if len(free) < 2 {
		return result
	}

	for iter := 0; iter < sched.Iterations; iter++ {
		if log != nil && iter%100_000 == 0 {
			log.Progress(worker, iter, currentScore, bestScore, temperature)
		}

		idx1 := rng.Intn(len(free))
		idx2 := rng.Intn(len(free))
		for idx2 == idx1 {
			idx2 = rng.Intn(len(free))
		}
		c1, c2 := free[idx1], free[idx2]

		oldLocal := scorer.ScoreLocal(current, c1, c2)
		Swap(current, c1, c2)
		newLocal := scorer.ScoreLocal(current, c1, c2)
		delta := newLocal - oldLocal
		candidateScore := currentScore + delta

		accept := delta >= 0
		if !accept {
			p := math.Exp(delta / temperature)
			if p > 1 {
				p = 1
			}
			accept = rng.Float64() < p
		}

		if accept {
			currentScore = candidateScore
			if currentScore > bestScore {
				best = current.Clone()
				bestScore = currentScore
				if sched.EarlyStop && scorer.IsPerfect(best) {
					if log != nil {
						log.EarlyStop(worker, iter)
					}
					result.StoppedEarly = true
					result.Iterations = iter + 1
					result.Best = best
					result.BestScore = bestScore
					return result
				}
			}
		} else {
			Swap(current, c1, c2)
		}

		temperature *= sched.CoolingRate
		if temperature < 1e-8 {
			temperature = 1e-8
		}
	}

	result.Iterations = sched.Iterations
	result.Best = best
	result.BestScore = bestScore
	return result
}
