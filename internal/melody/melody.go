package melody

import (
	"iter"
	"sort"
)

// Melody is an ordered sequence of Notes. It is a range-over-func sequence:
// production is lazy and pull-based, so a Melody may be unbounded (consumers
// must not assume eager materialization). Ordering by time is a logical
// invariant of merge-engine outputs, not a storage invariant - transforms
// such as time reversal produce descending melodies that callers re-anchor
// and sort before merging again.
type Melody func(yield func(Note) bool)

// FromNotes builds a melody over the given notes in argument order.
func FromNotes(notes ...Note) Melody {
	return func(yield func(Note) bool) {
		for _, n := range notes {
			if !yield(n) {
				return
			}
		}
	}
}

// Collect materializes a finite melody into a slice.
func Collect(m Melody) []Note {
	var out []Note
	for n := range m {
		out = append(out, n)
	}
	return out
}

// Take yields at most n notes from m. It is the usual way to consume a
// bounded view of an unbounded melody.
func Take(n int, m Melody) Melody {
	return func(yield func(Note) bool) {
		remaining := n
		for note := range m {
			if remaining <= 0 {
				return
			}
			if !yield(note) {
				return
			}
			remaining--
		}
	}
}

// Rests is an unbounded melody of rests, each of the given duration,
// starting at time 0. Useful as indefinite padding merged under finite
// material.
func Rests(duration float64) Melody {
	return func(yield func(Note) bool) {
		for t := 0.0; ; t += duration {
			if !yield(Note{Time: t, Duration: duration}) {
				return
			}
		}
	}
}

// SortByTime materializes a finite melody and restores non-decreasing time
// order. The sort is stable, so simultaneous notes keep their relative
// order. Needed after transforms that reverse time (crab canons) before the
// result is merged again.
func SortByTime(m Melody) Melody {
	return func(yield func(Note) bool) {
		notes := Collect(m)
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[i].Time < notes[j].Time
		})
		for _, n := range notes {
			if !yield(n) {
				return
			}
		}
	}
}

// pull converts a melody into a pull iterator. Callers must invoke stop.
func pull(m Melody) (next func() (Note, bool), stop func()) {
	return iter.Pull(iter.Seq[Note](m))
}
