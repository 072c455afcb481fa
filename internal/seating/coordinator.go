package seating

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Result is the outcome of one full Optimize call: the winning
// arrangement, its score, whether it's a perfect seating, and a
// per-worker log for diagnostics.
type Result struct {
	Arrangement *Arrangement
	Score       float64
	Perfect     bool
	Workers     []WorkerSummary
}

// WorkerSummary reports one worker's contribution to a Parallel
// Coordinator run, supplementing the original PerformanceLog.
type WorkerSummary struct {
	Worker       int
	Score        float64
	Iterations   int
	StoppedEarly bool
	Elapsed      time.Duration
}

type workerOutput struct {
	WorkerSummary
	arrangement *Arrangement
}

// Optimize is the package's single external operation (spec.md §6):
// given an initial arrangement, the coordinates that must not move,
// a student directory, and a Config, it runs Config.Workers
// independent simulated-annealing + local-polish searches in parallel
// and returns the best result any of them found, defensively
// re-scored with the full Arrangement Scorer.
//
// Grounded on parallel_annealing_search in the original implementation
// and on steepestDescentParallel's channel+WaitGroup fan-out idiom in
// keycraft's bls.go.
func Optimize(initial *Arrangement, fixed []Coordinate, dir StudentDirectory, cfg Config, log *Logger) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if err := validateStructure(initial, fixed); err != nil {
		return Result{}, err
	}

	scorer := NewScorer(dir, cfg.Score)
	free := FreeCoordinates(initial, fixed, cfg.Score.BonusConfig)

	numWorkers := cfg.Workers

	results := make(chan workerOutput, numWorkers)
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		workerID := w
		seed := cfg.Schedule.Seed + int64(workerID)
		go func() {
			defer wg.Done()
			results <- runWorker(workerID, initial, free, scorer, cfg.Schedule, seed, log)
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var (
		best       *Arrangement
		bestScore  = -math.MaxFloat64
		bestWorker int
		summaries  []WorkerSummary
		haveBest   bool
	)
	for out := range results {
		summaries = append(summaries, out.WorkerSummary)
		// Defensive re-verification: never trust a worker's
		// accumulated delta score over a fresh full-arrangement score.
		verified := scorer.ScoreArrangement(out.arrangement)
		if !haveBest || verified > bestScore {
			haveBest = true
			bestScore = verified
			best = out.arrangement
			bestWorker = out.Worker
		}
	}
	if !haveBest {
		return Result{}, fmt.Errorf("%w: no worker produced a result", ErrStructural)
	}

	if log != nil {
		log.Summary(bestWorker, bestScore)
	}

	return Result{
		Arrangement: best,
		Score:       bestScore,
		Perfect:     scorer.IsPerfect(best),
		Workers:     summaries,
	}, nil
}

func runWorker(workerID int, initial *Arrangement, free []Coordinate, scorer *Scorer, sched ScheduleParams, seed int64, log *Logger) workerOutput {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	working := initial.Clone()
	annealResult := Anneal(working, free, scorer, sched, rng, log, workerID)

	polished := annealResult.Best
	polishStart := time.Now()
	Polish(polished, free, scorer)
	if log != nil {
		log.PhaseDone(workerID, "polish", time.Since(polishStart))
		log.PhaseDone(workerID, "total", time.Since(start))
	}

	finalScore := scorer.ScoreArrangement(polished)
	return workerOutput{
		WorkerSummary: WorkerSummary{
			Worker:       workerID,
			Score:        finalScore,
			Iterations:   annealResult.Iterations,
			StoppedEarly: annealResult.StoppedEarly,
			Elapsed:      time.Since(start),
		},
		arrangement: polished,
	}
}

// validateStructure checks that every fixed coordinate refers to a
// table, section, and index that actually exists in the initial
// arrangement. Per spec.md §1 Non-goals, the core does not validate
// that seated occupants are known students — that's the host's
// concern, not the optimizer's.
func validateStructure(a *Arrangement, fixed []Coordinate) error {
	for _, c := range fixed {
		if c.Table < 0 || c.Table >= len(a.Tables) {
			return &StructuralErr{Coord: c, Msg: fmt.Sprintf("fixed coordinate references table %d, arrangement has %d tables", c.Table, len(a.Tables))}
		}
		t := &a.Tables[c.Table]
		switch c.Section {
		case SectionTop:
			if c.TopIdx < 0 || c.TopIdx >= len(t.Top) {
				return &StructuralErr{Coord: c, Msg: fmt.Sprintf("fixed coordinate references top index %d, table %d has %d top seats", c.TopIdx, c.Table, len(t.Top))}
			}
		case SectionBottom:
			if c.BottomIdx < 0 || c.BottomIdx >= len(t.Bottom) {
				return &StructuralErr{Coord: c, Msg: fmt.Sprintf("fixed coordinate references bottom index %d, table %d has %d bottom seats", c.BottomIdx, c.Table, len(t.Bottom))}
			}
		case SectionBonusLeft, SectionBonusRight:
			// Singleton bonus slots always exist on every table;
			// whether they're scored is governed by BonusConfig.
		default:
			return &StructuralErr{Coord: c, Msg: fmt.Sprintf("fixed coordinate has unrecognized section %v", c.Section)}
		}
	}
	return nil
}
