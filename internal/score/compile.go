package score

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/canonry/internal/melody"
)

// CompileFile reads and compiles a CUE score file.
func CompileFile(path string) (*Score, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read score: %w", err)
	}
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	return Compile(v)
}

// Compile parses a CUE value into a Score. The value must contain a
// top-level "score" struct. Uses the CUE SDK's Go API directly.
func Compile(root cue.Value) (*Score, error) {
	if err := root.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	v := root.LookupPath(cue.ParsePath("score"))
	if !v.Exists() {
		return nil, &CompileError{
			Field:   "score",
			Message: "top-level score struct is required",
			Pos:     root.Pos(),
		}
	}

	s := &Score{}

	titleVal := v.LookupPath(cue.ParsePath("title"))
	if !titleVal.Exists() {
		return nil, &CompileError{
			Field:   "title",
			Message: "title is required",
			Pos:     v.Pos(),
		}
	}
	title, err := titleVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	s.Title = title

	if s.Tempo, err = optionalFloat(v, "tempo"); err != nil {
		return nil, err
	}
	if s.Root, err = optionalFloat(v, "root"); err != nil {
		return nil, err
	}
	if s.Start, err = optionalFloat(v, "start"); err != nil {
		return nil, err
	}

	if scaleVal := v.LookupPath(cue.ParsePath("scale")); scaleVal.Exists() {
		name, err := scaleVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		s.ScaleName = name
	}
	if ivalVal := v.LookupPath(cue.ParsePath("intervals")); ivalVal.Exists() {
		ivals, err := parseIntList(ivalVal)
		if err != nil {
			return nil, err
		}
		s.Intervals = ivals
	}

	voicesVal := v.LookupPath(cue.ParsePath("voices"))
	if !voicesVal.Exists() {
		return nil, &CompileError{
			Field:   "voices",
			Message: "at least one voice is required",
			Pos:     v.Pos(),
		}
	}
	iter, err := voicesVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for iter.Next() {
		voice, err := parseVoice(iter.Value())
		if err != nil {
			return nil, err
		}
		s.Voices = append(s.Voices, voice)
	}
	if len(s.Voices) == 0 {
		return nil, &CompileError{
			Field:   "voices",
			Message: "at least one voice is required",
			Pos:     voicesVal.Pos(),
		}
	}

	// Arrangement re-checks source resolution; surface scale problems now.
	if _, err := s.Key(); err != nil {
		return nil, err
	}
	return s, nil
}

func parseVoice(v cue.Value) (VoiceSpec, error) {
	var voice VoiceSpec

	nameVal := v.LookupPath(cue.ParsePath("name"))
	if !nameVal.Exists() {
		return voice, &CompileError{
			Field:   "voice",
			Message: "name is required",
			Pos:     v.Pos(),
		}
	}
	name, err := nameVal.String()
	if err != nil {
		return voice, formatCUEError(err)
	}
	voice.Name = name

	if srcVal := v.LookupPath(cue.ParsePath("source")); srcVal.Exists() {
		src, err := srcVal.String()
		if err != nil {
			return voice, formatCUEError(err)
		}
		voice.Source = src
		if canonVal := v.LookupPath(cue.ParsePath("canon")); canonVal.Exists() {
			spec, err := parseCanon(canonVal)
			if err != nil {
				return voice, err
			}
			voice.Canon = &spec
		}
	} else {
		durVal := v.LookupPath(cue.ParsePath("durations"))
		pitchVal := v.LookupPath(cue.ParsePath("pitches"))
		if !durVal.Exists() || !pitchVal.Exists() {
			return voice, &CompileError{
				Field:   "voice",
				Message: fmt.Sprintf("voice %q needs durations and pitches (or a source to derive from)", name),
				Pos:     v.Pos(),
			}
		}
		if voice.Durations, err = parseSpans(durVal); err != nil {
			return voice, err
		}
		if voice.Pitches, err = parsePitches(pitchVal); err != nil {
			return voice, err
		}
		if velVal := v.LookupPath(cue.ParsePath("velocities")); velVal.Exists() {
			if voice.Velocities, err = parseFloatList(velVal); err != nil {
				return voice, err
			}
		}
	}

	if repVal := v.LookupPath(cue.ParsePath("repeat")); repVal.Exists() {
		n, err := repVal.Int64()
		if err != nil {
			return voice, formatCUEError(err)
		}
		voice.Repeat = int(n)
	}
	return voice, nil
}

func parseCanon(v cue.Value) (CanonSpec, error) {
	var spec CanonSpec
	var err error
	if spec.Delay, err = optionalFloat(v, "delay"); err != nil {
		return spec, err
	}
	if spec.Transpose, err = optionalFloat(v, "transpose"); err != nil {
		return spec, err
	}
	if spec.Mirror, err = optionalBool(v, "mirror"); err != nil {
		return spec, err
	}
	if spec.Crab, err = optionalBool(v, "crab"); err != nil {
		return spec, err
	}
	return spec, nil
}

// parseSpans decodes a duration list; nested lists subdivide one slot.
func parseSpans(v cue.Value) ([]melody.Span, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	var out []melody.Span
	for iter.Next() {
		span, err := parseSpan(iter.Value())
		if err != nil {
			return nil, err
		}
		out = append(out, span)
	}
	return out, nil
}

func parseSpan(v cue.Value) (melody.Span, error) {
	switch {
	case v.Kind()&cue.NumberKind != 0:
		f, err := v.Float64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		return melody.Beats(f), nil
	case v.Kind() == cue.ListKind:
		sub, err := parseSpans(v)
		if err != nil {
			return nil, err
		}
		return melody.Split(sub), nil
	default:
		return nil, &CompileError{
			Field:   "durations",
			Message: "duration must be a number or a list of durations",
			Pos:     v.Pos(),
		}
	}
}

// parsePitches decodes a pitch list: numbers are degrees, null is a rest,
// a list is a cluster, a struct is a chord.
func parsePitches(v cue.Value) ([]melody.PitchValue, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	var out []melody.PitchValue
	for iter.Next() {
		pv, err := parsePitch(iter.Value())
		if err != nil {
			return nil, err
		}
		out = append(out, pv)
	}
	return out, nil
}

func parsePitch(v cue.Value) (melody.PitchValue, error) {
	switch {
	case v.Kind() == cue.NullKind:
		return melody.Rest{}, nil
	case v.Kind()&cue.NumberKind != 0:
		f, err := v.Float64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		return melody.Pitch(f), nil
	case v.Kind() == cue.ListKind:
		sub, err := parsePitches(v)
		if err != nil {
			return nil, err
		}
		return melody.Cluster(sub), nil
	case v.Kind() == cue.StructKind:
		fields, err := v.Fields()
		if err != nil {
			return nil, formatCUEError(err)
		}
		chord := melody.Chord{}
		for fields.Next() {
			f, err := fields.Value().Float64()
			if err != nil {
				return nil, formatCUEError(err)
			}
			chord[fields.Label()] = f
		}
		return chord, nil
	default:
		return nil, &CompileError{
			Field:   "pitches",
			Message: "pitch must be a number, null, a list, or a struct",
			Pos:     v.Pos(),
		}
	}
}

func parseFloatList(v cue.Value) ([]float64, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	var out []float64
	for iter.Next() {
		f, err := iter.Value().Float64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		out = append(out, f)
	}
	return out, nil
}

func parseIntList(v cue.Value) ([]int, error) {
	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	var out []int
	for iter.Next() {
		n, err := iter.Value().Int64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		out = append(out, int(n))
	}
	return out, nil
}

func optionalFloat(v cue.Value, field string) (float64, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return 0, nil
	}
	f, err := fv.Float64()
	if err != nil {
		return 0, formatCUEError(err)
	}
	return f, nil
}

func optionalBool(v cue.Value, field string) (bool, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return false, nil
	}
	b, err := fv.Bool()
	if err != nil {
		return false, formatCUEError(err)
	}
	return b, nil
}
