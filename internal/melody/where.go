package melody

// The attribute combinators rewrite one attribute per note. They are
// structural no-ops: they never reorder, insert, or delete notes.

// Where applies f to the named attribute on every note that has it. Notes
// lacking the attribute pass through unchanged - this is the default,
// safest combinator (a pitch transform leaves rests alone).
func Where(key string, f func(any) any, m Melody) Melody {
	return func(yield func(Note) bool) {
		for n := range m {
			if v, ok := n.Get(key); ok {
				n = n.Set(key, f(v))
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Wherever applies f to the named attribute on every note for which the
// predicate holds, whether or not the attribute is present. When it is
// absent, f receives nil and must tolerate it.
func Wherever(pred func(Note) bool, key string, f func(any) any, m Melody) Melody {
	return func(yield func(Note) bool) {
		for n := range m {
			if pred(n) {
				v, _ := n.Get(key)
				n = n.Set(key, f(v))
			}
			if !yield(n) {
				return
			}
		}
	}
}

// All unconditionally sets the named attribute to a constant value on every
// note.
func All(key string, value any, m Melody) Melody {
	return func(yield func(Note) bool) {
		for n := range m {
			if !yield(n.Set(key, value)) {
				return
			}
		}
	}
}

// Having zips values onto the named attribute of successive notes, one
// value per note by position. The zip stops at the shorter side: notes
// beyond the value sequence pass through unchanged (the combinator layer
// never deletes notes), and surplus values are ignored.
func Having(key string, values []any, m Melody) Melody {
	return func(yield func(Note) bool) {
		i := 0
		for n := range m {
			if i < len(values) {
				n = n.Set(key, values[i])
				i++
			}
			if !yield(n) {
				return
			}
		}
	}
}

// After shifts every note's time forward by wait. A pure offset on the time
// attribute; negative waits are permitted transiently (callers normalize
// before rendering).
func After(wait float64, m Melody) Melody {
	return Where(KeyTime, func(v any) any {
		t, _ := v.(float64)
		return t + wait
	}, m)
}
