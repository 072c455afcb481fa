package seating

import "fmt"

// BonusConfig selects which of a table's bonus seats participate in
// scoring and in the free-coordinate pool.
type BonusConfig string

const (
	BonusNone  BonusConfig = "none"
	BonusLeft  BonusConfig = "left"
	BonusRight BonusConfig = "right"
	BonusBoth  BonusConfig = "both"
)

func (b BonusConfig) usesLeft() bool  { return b == BonusLeft || b == BonusBoth }
func (b BonusConfig) usesRight() bool { return b == BonusRight || b == BonusBoth }

func (b BonusConfig) valid() bool {
	switch b {
	case BonusNone, BonusLeft, BonusRight, BonusBoth:
		return true
	default:
		return false
	}
}

// gapPenaltyWeight is the fixed per-gap penalty applied by the Table
// Scorer, matching the original implementation's hardcoded constant.
const gapPenaltyWeight = 100.0

// ScoreParams configures the Table Scorer and Arrangement Scorer.
type ScoreParams struct {
	// BonusParameter multiplies a student's fulfillment score whenever
	// that student has at least one satisfied wish (fulfilled > 0).
	BonusParameter float64
	// BonusConfig selects which bonus seats are scored/swappable.
	BonusConfig BonusConfig
}

// Validate reports whether p is usable, wrapping ErrInvalidConfig
// with a description of what's wrong.
func (p ScoreParams) Validate() error {
	if !p.BonusConfig.valid() {
		return fmt.Errorf("%w: bonus_config %q is not one of none/left/right/both", ErrInvalidConfig, p.BonusConfig)
	}
	if p.BonusParameter < 0 {
		return fmt.Errorf("%w: bonus_parameter must be >= 0, got %v", ErrInvalidConfig, p.BonusParameter)
	}
	return nil
}

// ScheduleParams configures the simulated-annealing schedule shared by
// every worker in a Parallel Coordinator run.
type ScheduleParams struct {
	Iterations         int
	InitialTemperature float64
	CoolingRate        float64
	EarlyStop          bool
	// Seed seeds this worker's RNG stream. Workers in the same run use
	// distinct seeds so they explore independently.
	Seed int64
}

// Validate reports whether p is usable.
func (p ScheduleParams) Validate() error {
	if p.Iterations < 0 {
		return fmt.Errorf("%w: iterations must be >= 0, got %d", ErrInvalidConfig, p.Iterations)
	}
	if p.InitialTemperature <= 0 {
		return fmt.Errorf("%w: initial_temperature must be > 0, got %v", ErrInvalidConfig, p.InitialTemperature)
	}
	if p.CoolingRate <= 0 || p.CoolingRate > 1 {
		return fmt.Errorf("%w: cooling_rate must be in (0, 1], got %v", ErrInvalidConfig, p.CoolingRate)
	}
	return nil
}

// Config bundles everything one Optimize call needs beyond the
// arrangement, directory, and fixed coordinates themselves.
type Config struct {
	Score    ScoreParams
	Schedule ScheduleParams
	// Workers is the number of independent parallel SA+polish runs.
	// Must be positive: per spec.md §4.9, N = 0 is InvalidConfig, not
	// a request to pick a default worker count.
	Workers int
}

// Validate reports whether c is usable in its entirety.
func (c Config) Validate() error {
	if err := c.Score.Validate(); err != nil {
		return err
	}
	if err := c.Schedule.Validate(); err != nil {
		return err
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be > 0, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// DefaultWorkers is the worker count DefaultConfig and the external
// boundary fall back to when a host doesn't supply one, matching the
// "6" build of the original source (spec.md §9 Open Question #1).
const DefaultWorkers = 6

// DefaultConfig returns sane defaults scaled to a room with numFree
// free seats, mirroring DefaultBLSParams's size-aware defaults.
func DefaultConfig(numFree int) Config {
	iterations := numFree * 2000
	if iterations < 50_000 {
		iterations = 50_000
	}
	return Config{
		Score: ScoreParams{
			BonusParameter: 1.5,
			BonusConfig:    BonusBoth,
		},
		Schedule: ScheduleParams{
			Iterations:         iterations,
			InitialTemperature: 10.0,
			CoolingRate:        0.9995,
			EarlyStop:          true,
			Seed:               1,
		},
		Workers: DefaultWorkers,
	}
}
