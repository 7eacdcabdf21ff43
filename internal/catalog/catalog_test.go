package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/canonry/internal/melody"
	"github.com/roach88/canonry/internal/testutil"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func samplePerformance(t *testing.T, title string) Performance {
	t.Helper()
	m := melody.All("part", "melody", melody.FromNotes(
		testutil.N(0, 1, 60),
		testutil.R(1, 0.5),
		testutil.N(1.5, 1, 64),
	))
	p, err := NewPerformance(title, FixedGenerator{Token: "session-1"}.Generate(), m)
	require.NoError(t, err)
	return p
}

func TestPerformanceID_DeterministicOverContent(t *testing.T) {
	a := samplePerformance(t, "one")
	b := samplePerformance(t, "two")

	assert.Equal(t, a.ID, b.ID, "identity covers the notes, not the title")
	assert.Len(t, a.ID, 64, "hex-encoded SHA-256")
}

func TestPerformanceID_ChangesWithContent(t *testing.T) {
	a, err := PerformanceID([]melody.Note{testutil.N(0, 1, 60)})
	require.NoError(t, err)
	b, err := PerformanceID([]melody.Note{testutil.N(0, 1, 61)})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestPerformanceID_AttrOrderIrrelevant(t *testing.T) {
	n1 := testutil.N(0, 1, 60).Set("part", "a").Set("drum", "kick")
	n2 := testutil.N(0, 1, 60).Set("drum", "kick").Set("part", "a")

	a, err := PerformanceID([]melody.Note{n1})
	require.NoError(t, err)
	b, err := PerformanceID([]melody.Note{n2})
	require.NoError(t, err)
	assert.Equal(t, a, b, "canonical JSON sorts keys")
}

func TestCatalog_PutGetRoundTrip(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()
	p := samplePerformance(t, "study")

	require.NoError(t, c.Put(ctx, p))

	got, err := c.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Title, got.Title)
	assert.Equal(t, p.SessionToken, got.SessionToken)
	require.Len(t, got.Notes, 3)

	assert.Equal(t, p.Notes[0].Time, got.Notes[0].Time)
	require.NotNil(t, got.Notes[0].Pitch)
	assert.Equal(t, 60.0, *got.Notes[0].Pitch)
	part, _ := got.Notes[0].Get("part")
	assert.Equal(t, "melody", part)

	assert.True(t, got.Notes[1].IsRest(), "rests survive the round trip")
	assert.Equal(t, 0.5, got.Notes[1].Duration)
}

func TestCatalog_PutIsIdempotent(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()
	p := samplePerformance(t, "study")

	require.NoError(t, c.Put(ctx, p))
	require.NoError(t, c.Put(ctx, p), "same content stores as a no-op")

	list, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCatalog_ListSummaries(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	first := samplePerformance(t, "first")
	require.NoError(t, c.Put(ctx, first))

	second, err := NewPerformance("second", "session-2",
		melody.FromNotes(testutil.N(0, 4, 48)))
	require.NoError(t, err)
	require.NoError(t, c.Put(ctx, second))

	list, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "first", list[0].Title)
	assert.Equal(t, 3, list[0].NoteCount)
	assert.Equal(t, 2.5, list[0].TotalDuration)
	assert.Equal(t, "second", list[1].Title)
	assert.Equal(t, 4.0, list[1].TotalDuration)
}

func TestCatalog_GetMissingPerformance(t *testing.T) {
	c := openTestCatalog(t)
	_, err := c.Get(context.Background(), "no-such-id")
	assert.ErrorContains(t, err, "not found")
}

func TestTokenGenerators(t *testing.T) {
	fixed := FixedGenerator{Token: "tok"}
	assert.Equal(t, "tok", fixed.Generate())
	assert.Equal(t, "tok", fixed.Generate())

	g := UUIDGenerator{}
	a, b := g.Generate(), g.Generate()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}
