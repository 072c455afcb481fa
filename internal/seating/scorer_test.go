package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoStudentDirectory() StudentDirectory {
	return NewStudentDirectory([]Student{
		{Name: "alice", Wishes: []string{"bob"}, Weight: 1.0},
		{Name: "bob", Wishes: []string{"alice"}, Weight: 1.0},
		{Name: "carol", Wishes: nil, Weight: 1.0},
	})
}

func TestScoreTable_OrthogonalWishFulfilled(t *testing.T) {
	dir := twoStudentDirectory()
	scorer := NewScorer(dir, ScoreParams{BonusParameter: 2.0, BonusConfig: BonusNone})

	table := &Table{
		Top:    []string{"alice", ""},
		Bottom: []string{"bob", ""},
	}
	// alice and bob are orthogonal (same column, top/bottom) so each
	// contributes 1.0*weight fulfillment, doubled by the bonus
	// parameter since fulfilled > 0, with no gaps in either row.
	score := scorer.ScoreTable(table)
	assert.Equal(t, 2.0*2.0, score)
}

func TestScoreTable_DiagonalWeightsLessThanOrthogonal(t *testing.T) {
	dir := twoStudentDirectory()
	scorer := NewScorer(dir, ScoreParams{BonusParameter: 1.0, BonusConfig: BonusNone})

	table := &Table{
		Top:    []string{"alice", ""},
		Bottom: []string{"", "bob"},
	}
	// alice (top,0) and bob (bottom,1) are diagonal neighbors only.
	score := scorer.ScoreTable(table)
	assert.Equal(t, 0.8*2, score)
}

func TestScoreTable_GapPenalty(t *testing.T) {
	dir := twoStudentDirectory()
	scorer := NewScorer(dir, ScoreParams{BonusParameter: 1.0, BonusConfig: BonusNone})

	table := &Table{
		Top:    []string{"carol", "", "alice"},
		Bottom: []string{"", "", ""},
	}
	// occupied indices {0,2}: block size 3, count 2, 1 gap -> -100.
	score := scorer.ScoreTable(table)
	assert.Equal(t, -100.0, score)
}

func TestScoreTable_NoGapWhenContiguous(t *testing.T) {
	dir := twoStudentDirectory()
	scorer := NewScorer(dir, ScoreParams{BonusParameter: 1.0, BonusConfig: BonusNone})

	table := &Table{
		Top:    []string{"carol", "alice"},
		Bottom: []string{"", ""},
	}
	score := scorer.ScoreTable(table)
	assert.Equal(t, 0.0, score)
}

func TestScoreTable_BonusSeatOnlyCountsWhenEnabled(t *testing.T) {
	dir := twoStudentDirectory()
	table := &Table{
		Top:       []string{"alice"},
		Bottom:    []string{""},
		BonusLeft: "bob",
	}

	withoutBonus := NewScorer(dir, ScoreParams{BonusParameter: 1.0, BonusConfig: BonusNone})
	assert.Equal(t, 0.0, withoutBonus.ScoreTable(table))

	withBonus := NewScorer(dir, ScoreParams{BonusParameter: 3.0, BonusConfig: BonusLeft})
	// bob (bonus_left) is orthogonal to top[0]=alice -> fulfilled 1.0,
	// weight 1.0, times bonus_parameter 3.0.
	assert.Equal(t, 3.0, withBonus.ScoreTable(table))
}

func TestScoreArrangement_SumsAllTables(t *testing.T) {
	dir := twoStudentDirectory()
	scorer := NewScorer(dir, ScoreParams{BonusParameter: 1.0, BonusConfig: BonusNone})

	arr := &Arrangement{Tables: []Table{
		{Top: []string{"alice", ""}, Bottom: []string{"bob", ""}},
		{Top: []string{"carol"}, Bottom: []string{""}},
	}}
	total := scorer.ScoreArrangement(arr)
	assert.Equal(t, scorer.ScoreTable(&arr.Tables[0])+scorer.ScoreTable(&arr.Tables[1]), total)
}

func TestScoreLocal_MatchesSumOfTouchedTables(t *testing.T) {
	dir := twoStudentDirectory()
	scorer := NewScorer(dir, ScoreParams{BonusParameter: 1.0, BonusConfig: BonusNone})

	arr := &Arrangement{Tables: []Table{
		{Top: []string{"alice"}, Bottom: []string{"bob"}},
		{Top: []string{"carol"}, Bottom: []string{""}},
	}}
	local := scorer.ScoreLocal(arr, TopCoord(0, 0), TopCoord(1, 0))
	require.Equal(t, scorer.ScoreTable(&arr.Tables[0])+scorer.ScoreTable(&arr.Tables[1]), local)

	sameTableLocal := scorer.ScoreLocal(arr, TopCoord(0, 0), BottomCoord(0, 0))
	assert.Equal(t, scorer.ScoreTable(&arr.Tables[0]), sameTableLocal)
}

func TestIsPerfect(t *testing.T) {
	dir := twoStudentDirectory()
	scorer := NewScorer(dir, ScoreParams{BonusParameter: 1.0, BonusConfig: BonusNone})

	perfect := &Arrangement{Tables: []Table{
		{Top: []string{"alice"}, Bottom: []string{"bob"}},
	}}
	assert.True(t, scorer.IsPerfect(perfect))

	imperfect := &Arrangement{Tables: []Table{
		{Top: []string{"alice", "carol"}, Bottom: []string{"", ""}},
	}}
	assert.False(t, scorer.IsPerfect(imperfect))

	// carol has no wishes, so an arrangement with only carol seated is
	// trivially perfect regardless of neighbors.
	noWishes := &Arrangement{Tables: []Table{
		{Top: []string{"carol"}, Bottom: []string{""}},
	}}
	assert.True(t, scorer.IsPerfect(noWishes))
}
