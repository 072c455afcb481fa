package seating

// Scorer evaluates tables and whole arrangements under one fixed set
// of ScoreParams and one WishIndex/StudentDirectory. It is stateless
// and safe for concurrent use by multiple workers: every method is a
// pure function of its arguments and Scorer's own immutable fields.
//
// Grounded on evaluate_table / evaluate_seating / compute_gap_penalty
// in the original Rust implementation.
type Scorer struct {
	Directory StudentDirectory
	Wishes    WishIndex
	Params    ScoreParams
}

// NewScorer builds a Scorer over a fixed student directory and score
// parameters, precomputing the WishIndex once so repeated scoring
// never re-walks each student's wish list.
func NewScorer(dir StudentDirectory, params ScoreParams) *Scorer {
	return &Scorer{
		Directory: dir,
		Wishes:    BuildWishIndex(dir),
		Params:    params,
	}
}

// neighborFulfillment computes a single student's fulfillment score
// given their orthogonal neighbors (weight 1.0 each) and diagonal
// neighbors (weight 0.8 each). Empty-string neighbors never fulfill.
func (s *Scorer) neighborFulfillment(who string, orthogonal, diagonal []string) float64 {
	wishes := s.Wishes[who]
	if len(wishes) == 0 {
		return 0
	}
	var fulfilled float64
	for _, n := range orthogonal {
		if n != "" && wishes[n] {
			fulfilled += 1.0
		}
	}
	for _, n := range diagonal {
		if n != "" && wishes[n] {
			fulfilled += 0.8
		}
	}
	return fulfilled
}

// studentScore applies a student's weight and the bonus multiplier to
// a raw fulfillment value, exactly as base_score/bonus_parameter does
// in the original: the multiplier only applies once fulfilled > 0.
func (s *Scorer) studentScore(name string, fulfilled float64) float64 {
	student, ok := s.Directory[name]
	if !ok {
		return 0
	}
	base := fulfilled * student.Weight
	if fulfilled > 0 {
		return base * s.Params.BonusParameter
	}
	return base
}

// gapPenalty computes the occupied-block gap penalty for one row:
// gaps = (max(occupied) - min(occupied) + 1) - count(occupied).
func gapPenalty(row []string) float64 {
	first, last, count := -1, -1, 0
	for i, name := range row {
		if name == "" {
			continue
		}
		count++
		if first == -1 {
			first = i
		}
		last = i
	}
	if first == -1 {
		return 0
	}
	blockSize := last - first + 1
	gaps := blockSize - count
	if gaps < 0 {
		gaps = 0
	}
	return -(gapPenaltyWeight * float64(gaps))
}

func at(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// ScoreTable scores a single table in isolation: the fulfillment
// score of every occupant plus the gap penalty of its top and bottom
// rows. This is the function the SA Engine and Local Polisher call
// twice per candidate swap (once before, once after) instead of
// rescoring the whole arrangement.
func (s *Scorer) ScoreTable(t *Table) float64 {
	var score float64
	topLen, bottomLen := len(t.Top), len(t.Bottom)

	for i, name := range t.Top {
		if name == "" {
			continue
		}
		orth := []string{at(t.Top, i-1), at(t.Top, i+1), at(t.Bottom, i)}
		diag := []string{at(t.Bottom, i-1), at(t.Bottom, i+1)}
		score += s.studentScore(name, s.neighborFulfillment(name, orth, diag))
	}
	for i, name := range t.Bottom {
		if name == "" {
			continue
		}
		orth := []string{at(t.Bottom, i-1), at(t.Bottom, i+1), at(t.Top, i)}
		diag := []string{at(t.Top, i-1), at(t.Top, i+1)}
		score += s.studentScore(name, s.neighborFulfillment(name, orth, diag))
	}
	if s.Params.BonusConfig.usesLeft() && t.BonusLeft != "" {
		orth := []string{at(t.Top, 0), at(t.Bottom, 0)}
		score += s.studentScore(t.BonusLeft, s.neighborFulfillment(t.BonusLeft, orth, nil))
	}
	if s.Params.BonusConfig.usesRight() && t.BonusRight != "" {
		// spec.md §4.3 step 2 says bonus_right looks at bottom[T_bot-1];
		// the Rust reference instead saturating_subs top_len-1 for both
		// lookups (§9 Open Question 2). The two agree when T_top == T_bot,
		// which is the normal case; this follows the spec's literal wording.
		lastTop, lastBottom := topLen-1, bottomLen-1
		orth := []string{at(t.Top, lastTop), at(t.Bottom, lastBottom)}
		score += s.studentScore(t.BonusRight, s.neighborFulfillment(t.BonusRight, orth, nil))
	}

	score += gapPenalty(t.Top)
	score += gapPenalty(t.Bottom)
	return score
}

// ScoreArrangement scores every table and sums the result. Used to
// establish a baseline score and, defensively, to re-verify a
// worker's accumulated-delta result before the Parallel Coordinator
// picks a winner.
func (s *Scorer) ScoreArrangement(a *Arrangement) float64 {
	var total float64
	for i := range a.Tables {
		total += s.ScoreTable(&a.Tables[i])
	}
	return total
}

// ScoreLocal scores just the table(s) touched by a candidate swap
// between c1 and c2: one table's score if both coordinates are in the
// same table, or the sum of both tables' scores otherwise. This is
// the delta-evaluation primitive the SA Engine and Local Polisher
// build their accept/reject decisions on.
func (s *Scorer) ScoreLocal(a *Arrangement, c1, c2 Coordinate) float64 {
	if c1.Table == c2.Table {
		return s.ScoreTable(&a.Tables[c1.Table])
	}
	return s.ScoreTable(&a.Tables[c1.Table]) + s.ScoreTable(&a.Tables[c2.Table])
}
