package seating

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimize_RejectsInvalidConfig(t *testing.T) {
	arr := &Arrangement{Tables: []Table{{Top: []string{"a"}}}}
	dir := NewStudentDirectory([]Student{{Name: "a"}})
	cfg := Config{Schedule: ScheduleParams{InitialTemperature: -1}}

	_, err := Optimize(arr, nil, dir, cfg, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestOptimize_DoesNotRejectUnknownOccupant(t *testing.T) {
	// spec.md §1 Non-goals: the core does not validate that seated
	// occupants are known students. An occupant absent from the
	// directory simply never fulfills or gets fulfilled (scorer.go's
	// studentScore/neighborFulfillment treat it as weight-less).
	arr := &Arrangement{Tables: []Table{{Top: []string{"ghost"}}}}
	dir := StudentDirectory{}
	cfg := DefaultConfig(1)
	cfg.Schedule.Iterations = 10

	_, err := Optimize(arr, nil, dir, cfg, nil)
	assert.NoError(t, err)
}

func TestOptimize_RejectsZeroWorkers(t *testing.T) {
	arr := &Arrangement{Tables: []Table{{Top: []string{"a"}}}}
	dir := NewStudentDirectory([]Student{{Name: "a"}})
	cfg := DefaultConfig(1)
	cfg.Workers = 0

	_, err := Optimize(arr, nil, dir, cfg, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestOptimize_RejectsFixedCoordOutOfRange(t *testing.T) {
	arr := &Arrangement{Tables: []Table{{Top: []string{"a"}}}}
	dir := NewStudentDirectory([]Student{{Name: "a"}})
	cfg := DefaultConfig(1)

	_, err := Optimize(arr, []Coordinate{TopCoord(5, 0)}, dir, cfg, nil)
	assert.ErrorIs(t, err, ErrStructural)
}

func TestOptimize_ImprovesOrMatchesInitialScore(t *testing.T) {
	dir := fourStudentDirectory()
	arr := &Arrangement{Tables: []Table{
		{Top: []string{"a", "c"}, Bottom: []string{"d", "b"}},
	}}
	scorer := NewScorer(dir, ScoreParams{BonusParameter: 1.0, BonusConfig: BonusNone})
	before := scorer.ScoreArrangement(arr)

	var logBuf bytes.Buffer
	cfg := Config{
		Score:    ScoreParams{BonusParameter: 1.0, BonusConfig: BonusNone},
		Schedule: ScheduleParams{Iterations: 500, InitialTemperature: 3.0, CoolingRate: 0.99, EarlyStop: true, Seed: 42},
		Workers:  2,
	}
	logger := NewLogger(&logBuf, nil)

	result, err := Optimize(arr, nil, dir, cfg, logger)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Score, before)
	assert.Len(t, result.Workers, 2)
	// Each worker ID 0..N-1 is seeded distinctly (Seed + workerID), so
	// both workers in this run are expected to report in.
	seen := map[int]bool{}
	for _, w := range result.Workers {
		seen[w.Worker] = true
	}
	assert.True(t, seen[0] && seen[1])
}

func TestOptimize_ScoreMatchesIndependentRescoring(t *testing.T) {
	dir := fourStudentDirectory()
	arr := &Arrangement{Tables: []Table{
		{Top: []string{"a", "c"}, Bottom: []string{"d", "b"}},
	}}
	cfg := Config{
		Score:    ScoreParams{BonusParameter: 1.2, BonusConfig: BonusNone},
		Schedule: ScheduleParams{Iterations: 200, InitialTemperature: 2.0, CoolingRate: 0.98, EarlyStop: false, Seed: 3},
		Workers:  1,
	}
	result, err := Optimize(arr, nil, dir, cfg, nil)
	require.NoError(t, err)

	scorer := NewScorer(dir, cfg.Score)
	assert.Equal(t, scorer.ScoreArrangement(result.Arrangement), result.Score)
}
