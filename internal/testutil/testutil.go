// Package testutil provides deterministic helpers shared by canonry tests:
// compact note builders and accessors over collected melodies.
package testutil

import "github.com/roach88/canonry/internal/melody"

// N builds a pitched note.
func N(time, duration, pitch float64) melody.Note {
	return melody.Note{Time: time, Duration: duration, Pitch: &pitch}
}

// R builds a rest.
func R(time, duration float64) melody.Note {
	return melody.Note{Time: time, Duration: duration}
}

// Times collects every note's time from a finite melody.
func Times(m melody.Melody) []float64 {
	var out []float64
	for n := range m {
		out = append(out, n.Time)
	}
	return out
}

// Pitches collects every pitched note's pitch from a finite melody,
// skipping rests.
func Pitches(m melody.Melody) []float64 {
	var out []float64
	for n := range m {
		if n.Pitch != nil {
			out = append(out, *n.Pitch)
		}
	}
	return out
}
