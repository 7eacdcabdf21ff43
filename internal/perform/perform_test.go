package perform

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/canonry/internal/canon"
	"github.com/roach88/canonry/internal/melody"
	"github.com/roach88/canonry/internal/scale"
	"github.com/roach88/canonry/internal/testutil"
)

func TestBPM_MapsBeatsToSeconds(t *testing.T) {
	timing := BPM(90)
	assert.InDelta(t, 0.0, timing(0), 1e-9)
	assert.InDelta(t, 2.0/3.0, timing(1), 1e-9)
	assert.InDelta(t, 2.0, timing(3), 1e-9)
}

func TestTempo_ScalesTimeAndDuration(t *testing.T) {
	m := melody.FromNotes(testutil.N(1, 2, 60))

	got := melody.Collect(Tempo(BPM(120), m))

	require.Len(t, got, 1)
	assert.InDelta(t, 0.5, got[0].Time, 1e-9)
	assert.InDelta(t, 1.0, got[0].Duration, 1e-9)
	assert.Equal(t, 60.0, *got[0].Pitch, "pitch untouched by tempo")
}

func TestArrangement_AppliesKeyTempoAndStart(t *testing.T) {
	major := scale.Major
	arr := Arrangement{
		Start:  1,
		Timing: BPM(60), // identity numerically: one beat per second
		Key: func(degree float64) float64 {
			return 60 + float64(major(int(degree)))
		},
		Voices: []Voice{{
			Name: "melody",
			Notes: melody.FromNotes(
				testutil.N(0, 1, 0),
				testutil.N(1, 1, 4),
			),
		}},
	}

	got := melody.Collect(arr.Melody())

	require.Len(t, got, 2)
	assert.Equal(t, 1.0, got[0].Time, "start shift applied")
	assert.Equal(t, 60.0, *got[0].Pitch, "degree 0 lands on the root")
	assert.Equal(t, 67.0, *got[1].Pitch, "degree 4 is a fifth above")
	part, _ := got[0].Get("part")
	assert.Equal(t, "melody", part)
}

func TestArrangement_RestsSurviveKeyMapping(t *testing.T) {
	arr := Arrangement{
		Key:    func(d float64) float64 { return d + 60 },
		Voices: []Voice{{Notes: melody.FromNotes(testutil.R(0, 1))}},
	}

	got := melody.Collect(arr.Melody())
	require.Len(t, got, 1)
	assert.True(t, got[0].IsRest())
}

func TestArrangement_VoiceTransformAppliesBeforeSharedMappings(t *testing.T) {
	source := melody.FromNotes(testutil.N(0, 1, 0), testutil.N(1, 1, 2))
	arr := Arrangement{
		Key: func(d float64) float64 { return d + 60 },
		Voices: []Voice{
			{Name: "lead", Notes: source},
			{Name: "echo", Notes: source, Transform: canon.Compose(canon.Delay(1), canon.Mirror)},
		},
	}

	got := melody.Collect(arr.Melody())

	require.Len(t, got, 4)
	// The echo is mirrored in degree space, then mapped into the key.
	assert.Equal(t, []float64{0, 1, 1, 2}, testutil.Times(melody.FromNotes(got...)))
	lead, _ := got[1].Get("part")
	assert.Equal(t, "lead", lead, "declaration order wins the tie")
	echo, _ := got[2].Get("part")
	assert.Equal(t, "echo", echo)
	assert.Equal(t, 60.0, *got[2].Pitch, "mirrored degree 0 maps to the root")
	assert.Equal(t, 58.0, *got[3].Pitch, "mirrored degree -2 maps below the root")
}

func TestJSONRenderer_StreamsOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	m := melody.FromNotes(testutil.N(0, 1, 60), testutil.R(1, 0.5))

	require.NoError(t, JSONRenderer{W: &buf}.Render(m))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"time":0,"duration":1,"pitch":60}`, lines[0])
	assert.JSONEq(t, `{"time":1,"duration":0.5}`, lines[1])
}

func TestYAMLRenderer_WritesSequence(t *testing.T) {
	var buf bytes.Buffer
	m := melody.FromNotes(testutil.N(0, 1, 60), testutil.R(1, 0.5))

	require.NoError(t, YAMLRenderer{W: &buf}.Render(m))

	out := buf.String()
	assert.Contains(t, out, "pitch: 60")
	assert.Contains(t, out, "duration: 0.5")
	assert.NotContains(t, out, "velocity", "reduced-form notes stay reduced")
}

func TestTextRenderer_WritesAlignedTable(t *testing.T) {
	var buf bytes.Buffer
	m := melody.All("part", "bass", melody.FromNotes(testutil.N(0, 1, 60)))

	require.NoError(t, TextRenderer{W: &buf}.Render(m))

	out := buf.String()
	assert.Contains(t, out, "TIME")
	assert.Contains(t, out, "bass")
	assert.Contains(t, out, "60")
}
