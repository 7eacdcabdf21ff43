package melody

// With merges melodies while preserving global, non-decreasing time order.
// Each input is assumed (not re-verified) to be time-ordered already. The
// variadic form left-folds pairwise merges in argument order.
//
// Tie-break: when two notes carry the same time, the note from the earlier
// argument wins. The rule holds for the whole merge - a first-argument note
// is never displaced by a simultaneous later-argument note - and downstream
// canon layering depends on it being deterministic.
//
// Inputs may be unbounded on every side: the merge pulls incrementally and
// emits as soon as a head comparison is decided.
func With(ms ...Melody) Melody {
	switch len(ms) {
	case 0:
		return FromNotes()
	case 1:
		return ms[0]
	}
	out := ms[0]
	for _, m := range ms[1:] {
		out = mergeTwo(out, m)
	}
	return out
}

// mergeTwo is the binary stable merge underlying With. a's head wins ties.
func mergeTwo(a, b Melody) Melody {
	return func(yield func(Note) bool) {
		nextA, stopA := pull(a)
		defer stopA()
		nextB, stopB := pull(b)
		defer stopB()

		na, okA := nextA()
		nb, okB := nextB()
		for okA || okB {
			if okA && (!okB || na.Time <= nb.Time) {
				if !yield(na) {
					return
				}
				na, okA = nextA()
			} else {
				if !yield(nb) {
					return
				}
				nb, okB = nextB()
			}
		}
	}
}

// TotalDuration is the total extent of a melody: the maximum of
// time+duration over all notes, or 0 for an empty melody. The melody must
// be finite.
func TotalDuration(m Melody) float64 {
	max := 0.0
	for n := range m {
		if end := n.Time + n.Duration; end > max {
			max = end
		}
	}
	return max
}

// Then sequences later immediately after earlier: later is shifted forward
// by TotalDuration(earlier), then merged with earlier (which wins any
// boundary tie). The argument order mirrors pipeline usage, where the
// continuation wraps the material already built. earlier must be finite.
func Then(later, earlier Melody) Melody {
	shifted := func(yield func(Note) bool) {
		After(TotalDuration(earlier), later)(yield)
	}
	return With(earlier, shifted)
}

// MapThen applies f position-wise across items and chains the resulting
// melodies with Then, so each piece plays immediately after the previous
// one. Parallel sequences zip into the item type before the call.
func MapThen[T any](f func(T) Melody, items []T) Melody {
	var out Melody
	for _, item := range items {
		piece := f(item)
		if out == nil {
			out = piece
		} else {
			out = Then(piece, out)
		}
	}
	if out == nil {
		return FromNotes()
	}
	return out
}

// Times repeats a melody n times back-to-back: the same content transposed
// in time by successive multiples of its total duration.
func Times(n int, m Melody) Melody {
	copies := make([]Melody, 0, n)
	for range n {
		copies = append(copies, m)
	}
	return MapThen(func(c Melody) Melody { return c }, copies)
}

// But replaces the time window [start, end) of notes with variation, the
// latter shifted to begin at start.
//
// Window policy: a note whose time falls inside the window is dropped
// entirely, even if its extent reaches past end. A note starting before the
// window whose extent crosses into it is clipped so it stops exactly at
// start. Everything else passes through untouched. The survivors are merged
// against the shifted variation, surviving notes winning boundary ties.
//
// end < start describes an empty window: nothing is dropped or clipped and
// the variation is merged in at start unchanged.
func But(start, end float64, variation, notes Melody) Melody {
	kept := func(yield func(Note) bool) {
		for n := range notes {
			switch {
			case n.Time >= start && n.Time < end:
				// Dropped: starts inside the window.
			case n.Time < start && n.Time+n.Duration > start:
				if !yield(n.Set(KeyDuration, start-n.Time)) {
					return
				}
			default:
				if !yield(n) {
					return
				}
			}
		}
	}
	return With(kept, After(start, variation))
}
