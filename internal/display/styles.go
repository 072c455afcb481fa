// Package display renders optimization results as tables for a
// terminal host, using the same go-pretty style conventions the
// teacher repo uses for its layout-ranking tables.
package display

import "github.com/jedib0t/go-pretty/v6/table"

// roundedStyle is go-pretty's default style with rounded box corners,
// grounded on tui.EmptyStyle's box-rounding approach.
func roundedStyle() table.Style {
	s := table.StyleDefault
	s.Box = table.StyleBoxRounded
	return s
}
