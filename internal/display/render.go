package display

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/AnttoSalo/seatfinder/internal/seating"
)

// RenderArrangement writes one table block per classroom table,
// showing the top row, bottom row, and any bonus seats. Repurposed
// from tui.RenderView's layout-grid rendering into a seating-grid
// rendering.
func RenderArrangement(w io.Writer, arr *seating.Arrangement) {
	for i, t := range arr.Tables {
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.SetStyle(roundedStyle())
		tw.SetTitle(fmt.Sprintf("Table %d", i))

		if t.BonusLeft != "" || t.BonusRight != "" {
			tw.AppendHeader(table.Row{"bonus L", "top", "bottom", "bonus R"})
			tw.AppendRow(table.Row{t.BonusLeft, rowCell(t.Top), rowCell(t.Bottom), t.BonusRight})
		} else {
			tw.AppendHeader(table.Row{"top", "bottom"})
			tw.AppendRow(table.Row{rowCell(t.Top), rowCell(t.Bottom)})
		}
		tw.Render()
		fmt.Fprintln(w)
	}
}

func rowCell(row []string) string {
	out := ""
	for i, name := range row {
		if i > 0 {
			out += " | "
		}
		if name == "" {
			out += "-"
		} else {
			out += name
		}
	}
	return out
}

// RenderWorkerSummary renders the Parallel Coordinator's per-worker
// results as a comparison table, repurposed from
// tui.RankingDisplayOptions's ranking-table shape.
func RenderWorkerSummary(w io.Writer, workers []seating.WorkerSummary) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(roundedStyle())
	tw.AppendHeader(table.Row{"worker", "score", "iterations", "early stop", "elapsed"})
	for _, ws := range workers {
		tw.AppendRow(table.Row{ws.Worker, fmt.Sprintf("%.3f", ws.Score), ws.Iterations, ws.StoppedEarly, ws.Elapsed})
	}
	tw.Render()
}
