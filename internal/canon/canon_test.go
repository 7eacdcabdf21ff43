package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/canonry/internal/melody"
	"github.com/roach88/canonry/internal/testutil"
)

func line() melody.Melody {
	return melody.FromNotes(
		testutil.N(0, 1, 0),
		testutil.N(1, 1, 2),
		testutil.N(2, 2, 4),
	)
}

func TestShift_TranslatesBothAxes(t *testing.T) {
	got := melody.Collect(Shift(4, -3)(line()))

	assert.Equal(t, []float64{4, 5, 6}, testutil.Times(melody.FromNotes(got...)))
	assert.Equal(t, []float64{-3, -1, 1}, testutil.Pitches(melody.FromNotes(got...)))
}

func TestShift_LeavesRestsUnpitched(t *testing.T) {
	got := melody.Collect(Shift(1, 12)(melody.FromNotes(testutil.R(0, 1))))

	require.Len(t, got, 1)
	assert.True(t, got[0].IsRest())
	assert.Equal(t, 1.0, got[0].Time)
}

func TestMirror_InvertsPitchAroundZero(t *testing.T) {
	got := Mirror(line())
	assert.Equal(t, []float64{0, -2, -4}, testutil.Pitches(got))
}

func TestMirror_TwiceIsIdentity(t *testing.T) {
	original := melody.Collect(line())
	roundTrip := melody.Collect(Mirror(Mirror(line())))
	assert.Equal(t, original, roundTrip)
}

func TestCrab_ReversesTime(t *testing.T) {
	got := testutil.Times(Crab(line()))
	assert.Equal(t, []float64{0, -1, -2}, got)
}

func TestCrab_TwiceWithReanchorIsIdentity(t *testing.T) {
	m := line()
	there := Crab(m)
	back := melody.SortByTime(Crab(there))

	assert.Equal(t, melody.Collect(m), melody.Collect(back))
}

func TestTable_IsRetrogradeInversion(t *testing.T) {
	got := melody.Collect(Table(line()))

	assert.Equal(t, []float64{0, -1, -2}, testutil.Times(melody.FromNotes(got...)))
	assert.Equal(t, []float64{0, -2, -4}, testutil.Pitches(melody.FromNotes(got...)))
}

func TestCompose_RightmostAppliesFirst(t *testing.T) {
	// Shift after a pitch skew offsets the already-transformed pitch:
	// -(p) + 3 rather than -(p + 3).
	transform := Compose(Interval(3), Mirror)

	got := testutil.Pitches(transform(line()))
	assert.Equal(t, []float64{3, 1, -1}, got)

	// The other order gives the other answer.
	other := Compose(Mirror, Interval(3))
	assert.Equal(t, []float64{-3, -5, -7}, testutil.Pitches(other(line())))
}

func TestCanon_LayersSourceWithTransformedCopy(t *testing.T) {
	// A delayed canon at the octave below: the source enters first and
	// wins simultaneous ties against the follower.
	got := melody.Collect(Canon(Compose(Delay(1), Interval(-12)), line()))

	require.Len(t, got, 6)
	assert.Equal(t, []float64{0, 1, 1, 2, 2, 3},
		testutil.Times(melody.FromNotes(got...)))
	assert.Equal(t, 2.0, *got[1].Pitch, "source note leads at the tie")
	assert.Equal(t, -12.0, *got[2].Pitch)
}
