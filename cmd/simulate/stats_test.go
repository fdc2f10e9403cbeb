package main

import (
	. "github.com/janpfeifer/colonyGo/internal/state"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMeanAndStdDev(t *testing.T) {
	mean, stddev := meanAndStdDev([]int{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5.0, mean, 1e-6)
	assert.InDelta(t, 2.0, stddev, 1e-6)

	mean, stddev = meanAndStdDev([]float64{})
	assert.Zero(t, mean)
	assert.Zero(t, stddev)
}

func TestResults(t *testing.T) {
	r := NewResults(1500)
	r.Record(Won, 20)
	r.Record(Won, 30)
	r.Record(Lost, 12)
	r.RecordFailure()
	assert.Equal(t, 4, r.Played())
	assert.Equal(t, 2, r.Count(Won))
	assert.Equal(t, 0, r.Count(Undecided))
	assert.InDelta(t, 0.5, r.WinRate(), 1e-6)

	report := r.String()
	assert.Contains(t, report, "Played 4 of 1,500 games")
	assert.Contains(t, report, "Won:       2 (50.0%), turns: 25.0 ± 5.0")
	assert.Contains(t, report, "Lost:      1 (25.0%), turns: 12.0 ± 0.0")
	assert.Contains(t, report, "Unfinished: 0 (0.0%)\n")
	assert.Contains(t, report, "Failed:    1")
}
