package seating

// Swap exchanges the occupants of two coordinates in place. It
// implements every case the original swap_seats switches on: same
// table/same section (a row-index swap, or a no-op for bonus seats
// which have nothing to swap against themselves), same table/
// different section (top<->bottom, any row<->bonus pairing, or
// bonus_left<->bonus_right), and different tables (exchanged through the two
// table values directly — Go slices of structs don't need Rust's
// split_at_mut borrow dance to mutate two elements at once).
func Swap(a *Arrangement, c1, c2 Coordinate) {
	if c1.Table == c2.Table {
		t := &a.Tables[c1.Table]
		swapWithinTable(t, c1, c2)
		return
	}
	t1, t2 := &a.Tables[c1.Table], &a.Tables[c2.Table]
	s1, s2 := t1.occupant(c1), t2.occupant(c2)
	t1.setOccupant(c1, s2)
	t2.setOccupant(c2, s1)
}

func swapWithinTable(t *Table, c1, c2 Coordinate) {
	if c1.Section == c2.Section {
		switch c1.Section {
		case SectionTop:
			t.Top[c1.TopIdx], t.Top[c2.TopIdx] = t.Top[c2.TopIdx], t.Top[c1.TopIdx]
		case SectionBottom:
			t.Bottom[c1.BottomIdx], t.Bottom[c2.BottomIdx] = t.Bottom[c2.BottomIdx], t.Bottom[c1.BottomIdx]
		default:
			// bonus_left<->bonus_left or bonus_right<->bonus_right: nothing to swap.
		}
		return
	}
	s1, s2 := t.occupant(c1), t.occupant(c2)
	t.setOccupant(c1, s2)
	t.setOccupant(c2, s1)
}
