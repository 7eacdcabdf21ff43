package score

import (
	"fmt"
	"math"

	"github.com/roach88/canonry/internal/canon"
	"github.com/roach88/canonry/internal/melody"
	"github.com/roach88/canonry/internal/perform"
	"github.com/roach88/canonry/internal/scale"
)

// Score is a compiled score file.
type Score struct {
	Title     string
	Tempo     float64 // beats per minute; 0 leaves the melody in beats
	Root      float64 // key root pitch
	ScaleName string  // named mode, exclusive with Intervals
	Intervals []int   // explicit interval pattern
	Start     float64 // lead-in offset in beats
	Voices    []VoiceSpec
}

// VoiceSpec is one voice of a score: either literal duration/pitch
// specifications, or a derivation from an earlier voice.
type VoiceSpec struct {
	Name       string
	Durations  []melody.Span
	Pitches    []melody.PitchValue
	Velocities []float64
	Repeat     int
	Source     string
	Canon      *CanonSpec
}

// CanonSpec describes a voice derivation. The transform applies crab
// first, then mirror, then the delay/transpose shift, so the shift offsets
// the already-inverted material.
type CanonSpec struct {
	Delay     float64
	Transpose float64
	Mirror    bool
	Crab      bool
}

func (c CanonSpec) transform() canon.Transform {
	ts := []canon.Transform{canon.Shift(c.Delay, c.Transpose)}
	if c.Mirror {
		ts = append(ts, canon.Mirror)
	}
	if c.Crab {
		ts = append(ts, canon.Crab)
	}
	composed := canon.Compose(ts...)
	if !c.Crab {
		return composed
	}
	// Crab output runs backwards; restore storage order before merging.
	return func(m melody.Melody) melody.Melody {
		return melody.SortByTime(composed(m))
	}
}

// Key returns the score's degree -> pitch mapping, or nil when the score
// names no scale (pitches are already absolute).
func (s *Score) Key() (func(float64) float64, error) {
	var sc scale.Scale
	switch {
	case len(s.Intervals) > 0:
		sc = scale.New(s.Intervals...)
	case s.ScaleName != "":
		named, ok := scale.ByName(s.ScaleName)
		if !ok {
			return nil, &CompileError{
				Field:   "scale",
				Message: fmt.Sprintf("unknown scale %q", s.ScaleName),
			}
		}
		sc = named
	default:
		return nil, nil
	}
	root := s.Root
	return func(degree float64) float64 {
		return root + float64(sc(int(math.Round(degree))))
	}, nil
}

// Arrangement lowers the score onto the composition engine. Voice order is
// preserved, so the first-declared voice wins simultaneous ties in the
// merged performance.
func (s *Score) Arrangement() (perform.Arrangement, error) {
	key, err := s.Key()
	if err != nil {
		return perform.Arrangement{}, err
	}

	arr := perform.Arrangement{Start: s.Start, Key: key}
	if s.Tempo > 0 {
		arr.Timing = perform.BPM(s.Tempo)
	}

	built := make(map[string]melody.Melody, len(s.Voices))
	for _, v := range s.Voices {
		var m melody.Melody
		if v.Source != "" {
			source, ok := built[v.Source]
			if !ok {
				return perform.Arrangement{}, &CompileError{
					Field:   "voices",
					Message: fmt.Sprintf("voice %q derives from unknown voice %q (sources must be declared earlier)", v.Name, v.Source),
				}
			}
			m = source
			if v.Canon != nil {
				m = v.Canon.transform()(m)
			}
		} else {
			m = melody.Phrase(v.Durations, v.Pitches, v.Velocities)
		}
		if v.Repeat > 1 {
			m = melody.Times(v.Repeat, m)
		}
		built[v.Name] = m
		arr.Voices = append(arr.Voices, perform.Voice{Name: v.Name, Notes: m})
	}
	return arr, nil
}
