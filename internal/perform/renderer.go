package perform

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/roach88/canonry/internal/melody"
)

// JSONRenderer writes one JSON object per note, one per line, in melody
// order. The output streams: unbounded melodies write until the underlying
// writer fails.
type JSONRenderer struct {
	W io.Writer
}

// Render implements Renderer.
func (r JSONRenderer) Render(m melody.Melody) error {
	enc := json.NewEncoder(r.W)
	for n := range m {
		if err := enc.Encode(n); err != nil {
			return fmt.Errorf("render note at %v: %w", n.Time, err)
		}
	}
	return nil
}

// YAMLRenderer writes the notes as a single YAML sequence. Unlike the JSON
// renderer it materializes the whole melody first, so it requires a finite
// input.
type YAMLRenderer struct {
	W io.Writer
}

// Render implements Renderer.
func (r YAMLRenderer) Render(m melody.Melody) error {
	var maps []map[string]any
	for n := range m {
		maps = append(maps, n.Map())
	}
	enc := yaml.NewEncoder(r.W)
	defer enc.Close()
	if err := enc.Encode(maps); err != nil {
		return fmt.Errorf("render yaml: %w", err)
	}
	return nil
}

// TextRenderer writes an aligned human-readable table of notes.
type TextRenderer struct {
	W io.Writer
}

// Render implements Renderer.
func (r TextRenderer) Render(m melody.Melody) error {
	tw := tabwriter.NewWriter(r.W, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tDURATION\tPITCH\tVELOCITY\tPART")
	for n := range m {
		pitch := "-"
		if n.Pitch != nil {
			pitch = strconv.FormatFloat(*n.Pitch, 'g', -1, 64)
		}
		vel := "-"
		if n.Velocity != nil {
			vel = strconv.FormatFloat(*n.Velocity, 'g', -1, 64)
		}
		part := "-"
		if p, ok := n.Get("part"); ok {
			part = fmt.Sprintf("%v", p)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			strconv.FormatFloat(n.Time, 'g', -1, 64),
			strconv.FormatFloat(n.Duration, 'g', -1, 64),
			pitch, vel, part)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
