package melody

import (
	"encoding/json"
	"fmt"
	"maps"
)

// Attribute keys addressing the fixed core fields of a Note. Any other key
// passed to a combinator addresses the auxiliary attribute bag.
const (
	KeyTime     = "time"
	KeyDuration = "duration"
	KeyPitch    = "pitch"
	KeyVelocity = "velocity"
)

// Note is the atomic timed musical event.
//
// Time and Duration are always defined, in beats (or performance-time units
// once a tempo skew has been applied). Pitch and Velocity are optional; a
// nil Pitch marks a rest - a silence placeholder that still occupies its
// time span. Attrs carries arbitrary named attributes ("part",
// "drum-voice", ...) attached by the combinator layer; nothing in this
// package assumes a fixed schema beyond Time and Duration.
//
// Notes are immutable values: Set returns a modified copy and never aliases
// the receiver's attribute bag.
type Note struct {
	Time     float64
	Duration float64
	Pitch    *float64
	Velocity *float64
	Attrs    map[string]any
}

// IsRest reports whether the note is a silence placeholder.
func (n Note) IsRest() bool {
	return n.Pitch == nil
}

// Get returns the value of the named attribute and whether it is present.
// Core fields come back as float64; Pitch and Velocity report absent when
// unset.
func (n Note) Get(key string) (any, bool) {
	switch key {
	case KeyTime:
		return n.Time, true
	case KeyDuration:
		return n.Duration, true
	case KeyPitch:
		if n.Pitch == nil {
			return nil, false
		}
		return *n.Pitch, true
	case KeyVelocity:
		if n.Velocity == nil {
			return nil, false
		}
		return *n.Velocity, true
	default:
		v, ok := n.Attrs[key]
		return v, ok
	}
}

// Set returns a copy of the note with the named attribute replaced.
//
// Core fields require a numeric value; setting Pitch or Velocity to nil
// clears them, and setting a nil value for an auxiliary key deletes it from
// the bag. Time and Duration ignore nil (they are always defined).
func (n Note) Set(key string, v any) Note {
	switch key {
	case KeyTime:
		if f, ok := asFloat(v); ok {
			n.Time = f
		}
		return n
	case KeyDuration:
		if f, ok := asFloat(v); ok {
			n.Duration = f
		}
		return n
	case KeyPitch:
		if v == nil {
			n.Pitch = nil
		} else if f, ok := asFloat(v); ok {
			n.Pitch = &f
		}
		return n
	case KeyVelocity:
		if v == nil {
			n.Velocity = nil
		} else if f, ok := asFloat(v); ok {
			n.Velocity = &f
		}
		return n
	default:
		attrs := maps.Clone(n.Attrs)
		if attrs == nil {
			attrs = make(map[string]any, 1)
		}
		if v == nil {
			delete(attrs, key)
		} else {
			attrs[key] = v
		}
		n.Attrs = attrs
		return n
	}
}

// Map flattens the note into a single key->value map, auxiliary attributes
// alongside the core fields. Core keys shadow any colliding attribute (Set
// routes core names to the fields, so collisions only arise from hand-built
// Attrs maps). The map is fresh on every call.
func (n Note) Map() map[string]any {
	m := make(map[string]any, 4+len(n.Attrs))
	for k, v := range n.Attrs {
		m[k] = v
	}
	m[KeyTime] = n.Time
	m[KeyDuration] = n.Duration
	if n.Pitch != nil {
		m[KeyPitch] = *n.Pitch
	}
	if n.Velocity != nil {
		m[KeyVelocity] = *n.Velocity
	}
	return m
}

// MarshalJSON flattens the note into one JSON object with the auxiliary
// attributes inlined next to time/duration/pitch/velocity. Keys are emitted
// in sorted order (encoding/json sorts map keys), which keeps rendered
// output deterministic.
func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Map())
}

// UnmarshalJSON is the inverse of MarshalJSON: core keys populate the fixed
// fields, everything else lands in Attrs.
func (n *Note) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := Note{}
	for k, v := range raw {
		switch k {
		case KeyTime, KeyDuration, KeyPitch, KeyVelocity:
			f, ok := asFloat(v)
			if !ok {
				return fmt.Errorf("note field %q: expected number, got %T", k, v)
			}
			out = out.Set(k, f)
		default:
			out = out.Set(k, v)
		}
	}
	*n = out
	return nil
}

// asFloat widens any Go numeric to float64. Combinator results and decoded
// configuration both funnel through here so the core fields stay float64.
func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
