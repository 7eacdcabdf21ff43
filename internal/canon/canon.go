package canon

import (
	"github.com/roach88/canonry/internal/melody"
)

// Transform is a pure melody-to-melody derivation.
type Transform func(melody.Melody) melody.Melody

// Compose chains transforms into one, rightmost applied first (function
// composition order).
func Compose(ts ...Transform) Transform {
	return func(m melody.Melody) melody.Melody {
		for i := len(ts) - 1; i >= 0; i-- {
			m = ts[i](m)
		}
		return m
	}
}

// Shift translates every note by constant offsets added independently to
// time and pitch. Either component may be zero; rests keep their missing
// pitch.
func Shift(time, pitch float64) Transform {
	return Compose(SkewTime(plus(time)), SkewPitch(plus(pitch)))
}

// Delay is a pure time translation - the canonic entry offset.
func Delay(time float64) Transform {
	return Shift(time, 0)
}

// Interval is a pure pitch translation, in whatever pitch space the melody
// currently lives in (scale degrees before a key mapping, semitones after).
func Interval(pitch float64) Transform {
	return Shift(0, pitch)
}

// SkewTime applies f to the time axis of every note, leaving pitch
// unchanged - the general tempo remapping.
func SkewTime(f func(float64) float64) Transform {
	return skew(melody.KeyTime, f)
}

// SkewPitch applies f to the pitch axis of every note, leaving time
// unchanged - the general transposition/scale mapping. Rests pass through.
func SkewPitch(f func(float64) float64) Transform {
	return skew(melody.KeyPitch, f)
}

func skew(key string, f func(float64) float64) Transform {
	return func(m melody.Melody) melody.Melody {
		return melody.Where(key, func(v any) any {
			x, _ := v.(float64)
			return f(x)
		}, m)
	}
}

func plus(delta float64) func(float64) float64 {
	return func(x float64) float64 { return x + delta }
}

func negate(x float64) float64 { return -x }

// Mirror is pitch inversion around zero.
var Mirror = SkewPitch(negate)

// Crab is time reversal (retrograde). The melody must be finite; negation
// alone yields negative, descending times, so re-anchor with Shift and
// melody.SortByTime before merging.
var Crab = SkewTime(negate)

// Table is retrograde inversion: Mirror after Crab.
var Table = Compose(Mirror, Crab)

// Canon plays a melody against its transformed copy.
func Canon(f Transform, m melody.Melody) melody.Melody {
	return melody.With(m, f(m))
}
