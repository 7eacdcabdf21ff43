package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/canonry/internal/melody"
)

func TestN_BuildsPitchedNote(t *testing.T) {
	n := N(1, 2, 60)
	assert.Equal(t, 1.0, n.Time)
	assert.Equal(t, 2.0, n.Duration)
	assert.False(t, n.IsRest())
}

func TestR_BuildsRest(t *testing.T) {
	assert.True(t, R(0, 1).IsRest())
}

func TestPitches_SkipsRests(t *testing.T) {
	m := melody.FromNotes(N(0, 1, 60), R(1, 1), N(2, 1, 64))
	assert.Equal(t, []float64{60, 64}, Pitches(m))
	assert.Equal(t, []float64{0, 1, 2}, Times(m))
}
