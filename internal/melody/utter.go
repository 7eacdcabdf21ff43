package melody

// Utter expands a pitch value at the given time into one or more Notes of
// the given duration. The expansion is polymorphic over the shape of the
// pitch value:
//
//   - Rest: exactly one Note carrying only time and duration
//   - Pitch: exactly one Note with pitch (and velocity, when given)
//   - Cluster: each element expanded recursively with the same time,
//     duration, and velocity, results concatenated in element order
//   - Chord: values sorted ascending, then treated as a cluster
//
// velocity may be nil, in which case the produced notes carry no velocity
// attribute at all. Expansion is pure; there are no error conditions.
func Utter(pv PitchValue, time, duration float64, velocity *float64) []Note {
	switch x := pv.(type) {
	case Rest:
		return []Note{{Time: time, Duration: duration}}
	case Pitch:
		p := float64(x)
		n := Note{Time: time, Duration: duration, Pitch: &p}
		if velocity != nil {
			v := *velocity
			n.Velocity = &v
		}
		return []Note{n}
	case Cluster:
		var out []Note
		for _, e := range x {
			out = append(out, Utter(e, time, duration, velocity)...)
		}
		return out
	case Chord:
		c := make(Cluster, 0, len(x))
		for _, p := range x.sorted() {
			c = append(c, Pitch(p))
		}
		return Utter(c, time, duration, velocity)
	default:
		// Unreachable: PitchValue is sealed.
		return nil
	}
}
