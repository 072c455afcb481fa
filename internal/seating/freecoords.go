package seating

// FreeCoordinates enumerates every seat eligible to be swapped: every
// top/bottom row position across all tables, plus bonus seats enabled
// by bonusCfg, excluding anything named in fixed. Built once per run
// and shared by the SA Engine and the Local Polisher, matching the
// original implementation's single free_coords pass.
func FreeCoordinates(a *Arrangement, fixed []Coordinate, bonusCfg BonusConfig) []Coordinate {
	isFixed := make(map[Coordinate]bool, len(fixed))
	for _, c := range fixed {
		isFixed[normalize(c)] = true
	}

	var free []Coordinate
	for ti, t := range a.Tables {
		for i := range t.Top {
			c := TopCoord(ti, i)
			if !isFixed[normalize(c)] {
				free = append(free, c)
			}
		}
		for i := range t.Bottom {
			c := BottomCoord(ti, i)
			if !isFixed[normalize(c)] {
				free = append(free, c)
			}
		}
		if bonusCfg.usesLeft() {
			c := BonusLeftCoord(ti)
			if !isFixed[normalize(c)] {
				free = append(free, c)
			}
		}
		if bonusCfg.usesRight() {
			c := BonusRightCoord(ti)
			if !isFixed[normalize(c)] {
				free = append(free, c)
			}
		}
	}
	return free
}

// normalize zeroes out the coordinate field that isn't meaningful for
// its Section, so two Coordinate values addressing the same seat
// always compare equal as map keys.
func normalize(c Coordinate) Coordinate {
	switch c.Section {
	case SectionTop:
		return Coordinate{Table: c.Table, Section: SectionTop, TopIdx: c.TopIdx}
	case SectionBottom:
		return Coordinate{Table: c.Table, Section: SectionBottom, BottomIdx: c.BottomIdx}
	default:
		return Coordinate{Table: c.Table, Section: c.Section}
	}
}
