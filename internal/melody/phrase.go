package melody

// Span is a sealed interface over the shapes a duration specification can
// take: a plain beat count, or a subdivision that splits one pitch slot
// into several sequential sub-notes. Raw input resolves onto the sum via
// NormalizeSpan, once, at the boundary.
type Span interface {
	span() // Sealed - only Beats and Split implement it
}

// Beats is a simple duration in beats.
type Beats float64

func (Beats) span() {}

// Split is a compound duration: its elements render the same pitch slot
// back-to-back (a repeated note or a tuplet-like subdivision). Elements may
// nest.
type Split []Span

func (Split) span() {}

// NormalizeSpan resolves a raw value onto the Span sum: numerics become
// Beats, slices become Splits with elements normalized recursively, and a
// Span passes through. Anything else degrades to Beats(0).
func NormalizeSpan(v any) Span {
	switch x := v.(type) {
	case Span:
		return x
	case []any:
		s := make(Split, len(x))
		for i, e := range x {
			s[i] = NormalizeSpan(e)
		}
		return s
	case []float64:
		s := make(Split, len(x))
		for i, e := range x {
			s[i] = Beats(e)
		}
		return s
	default:
		if f, ok := asFloat(v); ok {
			return Beats(f)
		}
		return Beats(0)
	}
}

// Phrase translates parallel duration/pitch/velocity specifications into a
// melody starting at time 0, each slot rendered independently and the
// results concatenated with Then.
//
// A Beats duration expands its pitch value via Utter; a Split duration
// renders the same pitch value against each element sequentially. A nil
// velocities slice selects the reduced form: notes carry no velocity
// attribute at all, not a default value. The positional zip stops at the
// shortest input; surplus entries on any side are ignored.
func Phrase(durations []Span, pitches []PitchValue, velocities []float64) Melody {
	n := min(len(durations), len(pitches))
	if velocities != nil {
		n = min(n, len(velocities))
	}
	type slot struct {
		span     Span
		pitch    PitchValue
		velocity *float64
	}
	slots := make([]slot, n)
	for i := range n {
		slots[i] = slot{span: durations[i], pitch: pitches[i]}
		if velocities != nil {
			v := velocities[i]
			slots[i].velocity = &v
		}
	}
	return MapThen(func(s slot) Melody {
		return fragment(s.span, s.pitch, s.velocity)
	}, slots)
}

// fragment renders one duration/pitch slot at time 0.
func fragment(s Span, pv PitchValue, velocity *float64) Melody {
	switch sp := s.(type) {
	case Beats:
		return FromNotes(Utter(pv, 0, float64(sp), velocity)...)
	case Split:
		return MapThen(func(sub Span) Melody {
			return fragment(sub, pv, velocity)
		}, []Span(sp))
	default:
		// Unreachable: Span is sealed.
		return FromNotes()
	}
}

// Rhythm is the degenerate phrase: every slot is a rest. The result is a
// timing skeleton useful for merging other material against.
func Rhythm(durations []Span) Melody {
	pitches := make([]PitchValue, len(durations))
	for i := range pitches {
		pitches[i] = Rest{}
	}
	return Phrase(durations, pitches, nil)
}
