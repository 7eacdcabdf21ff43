package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DegreeZeroIsZero(t *testing.T) {
	assert.Equal(t, 0, Major(0))
}

func TestNew_FullCycleIsOctave(t *testing.T) {
	assert.Equal(t, 12, Major(7), "seven major steps span an octave")
	assert.Equal(t, 12, Minor(7))
	assert.Equal(t, 12, Pentatonic(5))
}

func TestNew_CyclesBeyondOnePattern(t *testing.T) {
	assert.Equal(t, 2, Major(1))
	assert.Equal(t, 4, Major(2))
	assert.Equal(t, 14, Major(8), "degree 8 is an octave plus one step")
	assert.Equal(t, 24, Major(14))
}

func TestNew_NegativeDegreesMirrorReversedIntervals(t *testing.T) {
	ivals := []int{2, 2, 1, 2, 2, 2, 1}
	reversed := []int{1, 2, 2, 2, 1, 2, 2}

	s := New(ivals...)
	r := New(reversed...)

	for n := 1; n <= 10; n++ {
		assert.Equal(t, -r(n), s(-n), "degree %d", -n)
	}
	assert.Equal(t, -1, s(-1), "one step below the major root is a semitone")
	assert.Equal(t, -12, s(-7), "an octave below")
}

func TestNew_EmptyIntervalsDegenerate(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s(5))
	assert.Equal(t, 0, s(-5))
}

func TestByName_CaseInsensitive(t *testing.T) {
	s, ok := ByName("Major")
	assert.True(t, ok)
	assert.Equal(t, 12, s(7))

	_, ok = ByName("locrian")
	assert.False(t, ok)
}

func TestRun_Ascending(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4}, Run(0, 4))
}

func TestRun_Descending(t *testing.T) {
	assert.Equal(t, []int{4, 3, 2, 1, 0}, Run(4, 0))
}

func TestRun_UpAndDownSharesPivot(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4, 3, 2, 1, 0}, Run(0, 4, 0),
		"the turning pivot appears exactly once")
}

func TestRun_SinglePivot(t *testing.T) {
	assert.Equal(t, []int{3}, Run(3))
	assert.Nil(t, Run())
}

func TestAccumulate_InclusivePrefixSums(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 4}, Accumulate([]float64{1, 1, 2}))
	assert.Empty(t, Accumulate(nil))
}

func TestRepeats_ExpandsGroups(t *testing.T) {
	assert.Equal(t, []float64{1, 1, 1, 0.5, 0.5},
		Repeats(Group{3, 1}, Group{2, 0.5}))
	assert.Nil(t, Repeats())
}

func TestRuns_ConcatenatesRuns(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 7, 6, 5},
		Runs([]int{0, 2}, []int{7, 5}))
}
