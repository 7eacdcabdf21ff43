package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_ValidScore(t *testing.T) {
	out, _, err := execute(t, "check", "testdata/study.cue")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Score valid: Study in C (2 voice(s))")
	assert.Contains(t, out, "lead")
	assert.Contains(t, out, "echo")
}

func TestCheck_ValidScoreJSON(t *testing.T) {
	out, _, err := execute(t, "check", "testdata/study.cue", "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data := resp.Data.(map[string]any)
	assert.Equal(t, true, data["valid"])
	assert.Equal(t, "Study in C", data["title"])
	assert.Equal(t, []any{"lead", "echo"}, data["voices"])
}

func TestCheck_InvalidScore(t *testing.T) {
	out, _, err := execute(t, "check", "testdata/untitled.cue")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "title is required")
}

func TestCheck_MissingFile(t *testing.T) {
	_, _, err := execute(t, "check", "testdata/no-such-score.cue")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
