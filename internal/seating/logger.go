package seating

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// LogEvent is one structured record written to the JSONL log file.
// Optional fields are pointers so omitempty drops them when unused,
// matching the style of keycraft's BLSLogger.LogEvent.
type LogEvent struct {
	Worker      int      `json:"worker"`
	Iteration   *int     `json:"iteration,omitempty"`
	Score       *float64 `json:"score,omitempty"`
	BestScore   *float64 `json:"best_score,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	Phase       string   `json:"phase,omitempty"`
	Message     string   `json:"message,omitempty"`
	ElapsedMs   *int64   `json:"elapsed_ms,omitempty"`
}

// Logger writes human-readable progress to Console and, if File is
// non-nil, a JSONL record per event to File. Grounded on
// keycraft's BLSLogger dual-writer pattern.
type Logger struct {
	Console io.Writer
	File    io.Writer
}

// NewLogger returns a Logger writing to console and, optionally, a
// JSONL file. Either writer may be nil to suppress that stream.
func NewLogger(console, file io.Writer) *Logger {
	return &Logger{Console: console, File: file}
}

// Progress logs a periodic SA-loop progress line.
func (l *Logger) Progress(worker, iteration int, score, best, temperature float64) {
	if l.Console != nil {
		fmt.Fprintf(l.Console, "worker %d: iteration %d: score=%.3f best=%.3f temperature=%.6f\n",
			worker, iteration, score, best, temperature)
	}
	l.emit(LogEvent{
		Worker: worker, Iteration: &iteration, Score: &score,
		BestScore: &best, Temperature: &temperature, Phase: "anneal",
	})
}

// EarlyStop logs an early-stop event.
func (l *Logger) EarlyStop(worker, iteration int) {
	if l.Console != nil {
		fmt.Fprintf(l.Console, "worker %d: early stopping at iteration %d\n", worker, iteration)
	}
	l.emit(LogEvent{Worker: worker, Iteration: &iteration, Phase: "anneal", Message: "early stop"})
}

// PhaseDone logs the completion of a named phase (polish, or total for
// a worker's whole anneal+polish run) with elapsed wall time.
func (l *Logger) PhaseDone(worker int, phase string, elapsed time.Duration) {
	ms := elapsed.Milliseconds()
	if l.Console != nil {
		fmt.Fprintf(l.Console, "worker %d: %s completed in %s\n", worker, phase, elapsed)
	}
	l.emit(LogEvent{Worker: worker, Phase: phase, Message: "completed", ElapsedMs: &ms})
}

// Summary logs the coordinator's final pick across all workers.
func (l *Logger) Summary(winner int, best float64) {
	if l.Console != nil {
		fmt.Fprintf(l.Console, "--- parallel search summary ---\nworker %d wins with score %.3f\n", winner, best)
	}
	l.emit(LogEvent{Worker: winner, BestScore: &best, Phase: "summary"})
}

func (l *Logger) emit(ev LogEvent) {
	if l.File == nil {
		return
	}
	enc := json.NewEncoder(l.File)
	_ = enc.Encode(ev)
}
