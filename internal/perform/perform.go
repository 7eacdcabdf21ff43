package perform

import (
	"github.com/roach88/canonry/internal/canon"
	"github.com/roach88/canonry/internal/melody"
)

// Renderer consumes a finished performance melody. Implementations
// schedule, serialize, or otherwise dispose of the notes; the engine only
// guarantees the sequence is non-decreasing in time.
type Renderer interface {
	Render(m melody.Melody) error
}

// BPM returns the beats -> seconds mapping for a metronome marking.
func BPM(beatsPerMinute float64) func(float64) float64 {
	return func(beats float64) float64 {
		return beats * 60 / beatsPerMinute
	}
}

// Tempo applies a timing function to a melody's time and duration axes.
// Durations scale along with onsets so note extents survive the mapping.
func Tempo(f func(float64) float64, m melody.Melody) melody.Melody {
	apply := func(v any) any {
		x, _ := v.(float64)
		return f(x)
	}
	return melody.Where(melody.KeyDuration, apply,
		melody.Where(melody.KeyTime, apply, m))
}

// Voice is one strand of an arrangement: a named melody, optionally
// derived through a canon transform before the arrangement-wide mappings
// apply.
type Voice struct {
	Name      string
	Notes     melody.Melody
	Transform canon.Transform // optional derivation, applied first
}

// Arrangement drives several voices through the shared key and tempo
// mappings into one merged performance.
type Arrangement struct {
	// Start offsets every voice, in beats, before the tempo mapping.
	Start float64

	// Timing maps beats to performance-time units (e.g. BPM(90)).
	// nil leaves the melody in beats.
	Timing func(float64) float64

	// Key maps a scale degree to an absolute pitch. nil means the voices
	// already carry absolute pitches.
	Key func(float64) float64

	Voices []Voice
}

// Melody assembles the arrangement into a single merged melody. Voices
// merge in declaration order; the earlier voice wins simultaneous ties.
func (a Arrangement) Melody() melody.Melody {
	parts := make([]melody.Melody, 0, len(a.Voices))
	for _, v := range a.Voices {
		parts = append(parts, a.assemble(v))
	}
	return melody.With(parts...)
}

func (a Arrangement) assemble(v Voice) melody.Melody {
	m := v.Notes
	if v.Transform != nil {
		m = v.Transform(m)
	}
	if v.Name != "" {
		m = melody.All("part", v.Name, m)
	}
	if a.Start != 0 {
		m = melody.After(a.Start, m)
	}
	if a.Key != nil {
		m = canon.SkewPitch(a.Key)(m)
	}
	if a.Timing != nil {
		m = Tempo(a.Timing, m)
	}
	return m
}

// Perform renders the assembled arrangement.
func (a Arrangement) Perform(r Renderer) error {
	return r.Render(a.Melody())
}
