package melody

import "sort"

// PitchValue is a sealed interface over the shapes a pitch specification
// can take. Only Rest, Pitch, Cluster, and Chord implement it, so consumers
// can type-switch exhaustively.
//
// Raw dynamic input (score files, literals decoded from configuration) is
// resolved onto the sum exactly once, at the boundary, by NormalizePitch;
// the rest of the pipeline never inspects runtime types.
type PitchValue interface {
	pitchValue() // Sealed - only these types implement it
}

// Rest marks an absent pitch: a silence that still occupies its time span.
type Rest struct{}

func (Rest) pitchValue() {}

// Pitch is a scalar pitch, typically a MIDI-style note number or a scale
// degree awaiting a key mapping.
type Pitch float64

func (Pitch) pitchValue() {}

// Cluster is an ordered group of pitch values sounding simultaneously,
// e.g. a grace-note group or an unpitched percussion ensemble. Elements may
// themselves be clusters.
type Cluster []PitchValue

func (Cluster) pitchValue() {}

// Chord is a cluster specified as an unordered label->pitch mapping
// ("i", "iii", "v", ...). The labels are not musically significant:
// rendering sorts the values ascending so note order is deterministic
// regardless of input key order.
type Chord map[string]float64

func (Chord) pitchValue() {}

// NormalizePitch resolves a raw value onto the PitchValue sum:
//
//   - nil -> Rest
//   - any numeric -> Pitch
//   - []any (or typed numeric slices) -> Cluster, elements normalized
//     recursively
//   - map[string]<numeric> -> Chord
//   - a PitchValue -> itself
//
// Malformed values are not rejected: anything else degrades to a Rest, the
// closest total analogue of "treat unknown shapes as scalar" available once
// pitches are typed numbers.
func NormalizePitch(v any) PitchValue {
	switch x := v.(type) {
	case nil:
		return Rest{}
	case PitchValue:
		return x
	case []any:
		c := make(Cluster, len(x))
		for i, e := range x {
			c[i] = NormalizePitch(e)
		}
		return c
	case []float64:
		c := make(Cluster, len(x))
		for i, e := range x {
			c[i] = Pitch(e)
		}
		return c
	case []int:
		c := make(Cluster, len(x))
		for i, e := range x {
			c[i] = Pitch(e)
		}
		return c
	case map[string]any:
		ch := make(Chord, len(x))
		for k, e := range x {
			f, ok := asFloat(e)
			if !ok {
				return Rest{}
			}
			ch[k] = f
		}
		return ch
	case map[string]float64:
		return Chord(x)
	default:
		if f, ok := asFloat(v); ok {
			return Pitch(f)
		}
		return Rest{}
	}
}

// sorted returns the chord's pitches in ascending order.
func (c Chord) sorted() []float64 {
	vals := make([]float64, 0, len(c))
	for _, v := range c {
		vals = append(vals, v)
	}
	sort.Float64s(vals)
	return vals
}
