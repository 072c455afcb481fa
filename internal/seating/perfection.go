package seating

// IsPerfect reports whether every seated student who listed at least
// one wish has that wish satisfied by an orthogonal neighbor. Diagonal
// neighbors do not count toward perfection, matching
// is_perfect_seating in the original implementation.
func (s *Scorer) IsPerfect(a *Arrangement) bool {
	for i := range a.Tables {
		if !s.isTablePerfect(&a.Tables[i]) {
			return false
		}
	}
	return true
}

func (s *Scorer) isTablePerfect(t *Table) bool {
	for i, name := range t.Top {
		if name == "" {
			continue
		}
		if !s.seatSatisfied(name, at(t.Top, i-1), at(t.Top, i+1), at(t.Bottom, i)) {
			return false
		}
	}
	for i, name := range t.Bottom {
		if name == "" {
			continue
		}
		if !s.seatSatisfied(name, at(t.Bottom, i-1), at(t.Bottom, i+1), at(t.Top, i)) {
			return false
		}
	}
	if s.Params.BonusConfig.usesLeft() && t.BonusLeft != "" {
		if !s.seatSatisfied(t.BonusLeft, at(t.Top, 0), at(t.Bottom, 0)) {
			return false
		}
	}
	if s.Params.BonusConfig.usesRight() && t.BonusRight != "" {
		// see scorer.go's ScoreTable for the bottom-index note (§4.3/§9).
		lastTop, lastBottom := len(t.Top)-1, len(t.Bottom)-1
		if !s.seatSatisfied(t.BonusRight, at(t.Top, lastTop), at(t.Bottom, lastBottom)) {
			return false
		}
	}
	return true
}

func (s *Scorer) seatSatisfied(who string, orthogonalNeighbors ...string) bool {
	if !s.Wishes.HasAnyWishes(who) {
		return true
	}
	for _, n := range orthogonalNeighbors {
		if n != "" && s.Wishes.Wishes(who, n) {
			return true
		}
	}
	return false
}
