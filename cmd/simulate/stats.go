package main

import (
	"fmt"
	"github.com/chewxy/math32"
	"github.com/dustin/go-humanize"
	. "github.com/janpfeifer/colonyGo/internal/state"
	"golang.org/x/exp/constraints"
	"strings"
	"sync"
	"time"
)

// meanAndStdDev of the values. It returns zeros for an empty slice.
func meanAndStdDev[T constraints.Integer | constraints.Float](values []T) (mean, stddev float32) {
	if len(values) == 0 {
		return
	}
	n := float32(len(values))
	for _, v := range values {
		mean += float32(v)
	}
	mean /= n
	for _, v := range values {
		diff := float32(v) - mean
		stddev += diff * diff
	}
	stddev = math32.Sqrt(stddev / n)
	return
}

// Results of the simulated games. It's safe for concurrent use.
type Results struct {
	mu    sync.Mutex
	start time.Time
	total int

	// turns taken by each game, indexed by Outcome.
	turns  [3][]int
	failed int
}

// NewResults for a batch of total games.
func NewResults(total int) *Results {
	return &Results{start: time.Now(), total: total}
}

// Record a finished game.
func (r *Results) Record(outcome Outcome, turns int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.turns[outcome] = append(r.turns[outcome], turns)
}

// RecordFailure of a game that returned an error.
func (r *Results) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed++
}

// Played returns the number of games recorded, including failures.
func (r *Results) Played() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.played()
}

func (r *Results) played() int {
	return len(r.turns[Won]) + len(r.turns[Lost]) + len(r.turns[Undecided]) + r.failed
}

// Count returns the number of games with the given outcome.
func (r *Results) Count(outcome Outcome) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.turns[outcome])
}

// WinRate returns the fraction of played games that were won.
func (r *Results) WinRate() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	played := r.played()
	if played == 0 {
		return 0
	}
	return float32(len(r.turns[Won])) / float32(played)
}

// String returns the report of the results.
func (r *Results) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	played := r.played()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Played %s of %s games in %s:\n",
		humanize.Comma(int64(played)), humanize.Comma(int64(r.total)), time.Since(r.start).Round(time.Millisecond))
	for _, outcome := range []Outcome{Won, Lost, Undecided} {
		turns := r.turns[outcome]
		name := outcome.String()
		if outcome == Undecided {
			name = "Unfinished"
		}
		fmt.Fprintf(&sb, "  - %-10s %s", name+":", humanize.Comma(int64(len(turns))))
		if played > 0 {
			fmt.Fprintf(&sb, " (%.1f%%)", 100*float32(len(turns))/float32(played))
		}
		if len(turns) > 0 {
			mean, stddev := meanAndStdDev(turns)
			fmt.Fprintf(&sb, ", turns: %.1f ± %.1f", mean, stddev)
		}
		sb.WriteString("\n")
	}
	if r.failed > 0 {
		fmt.Fprintf(&sb, "  - Failed:    %s\n", humanize.Comma(int64(r.failed)))
	}
	return sb.String()
}
