package scale

import (
	"slices"
	"strings"
)

// Scale maps an integer scale degree (possibly negative) to an integer
// pitch offset from the key root.
type Scale func(degree int) int

// New builds a scale from the steps between consecutive degrees. For a
// non-negative degree n the offset is the sum of the first n intervals of
// the pattern cycled indefinitely. For negative degrees the pattern is
// reflected through zero using the reversed interval list.
func New(intervals ...int) Scale {
	ivals := slices.Clone(intervals)
	return func(degree int) int {
		if len(ivals) == 0 {
			return 0
		}
		if degree < 0 {
			reversed := slices.Clone(ivals)
			slices.Reverse(reversed)
			return -New(reversed...)(-degree)
		}
		sum := 0
		for i := 0; i < degree; i++ {
			sum += ivals[i%len(ivals)]
		}
		return sum
	}
}

// The standard modes shipped with the engine. Offsets are semitones, so a
// full cycle of Major or Minor spans an octave (12).
var (
	Major      = New(2, 2, 1, 2, 2, 2, 1)
	Minor      = New(2, 1, 2, 2, 1, 2, 2)
	Pentatonic = New(2, 2, 3, 2, 3)
	Blues      = New(3, 2, 1, 1, 3, 2)
	Chromatic  = New(1)
)

var byName = map[string]Scale{
	"major":      Major,
	"minor":      Minor,
	"pentatonic": Pentatonic,
	"blues":      Blues,
	"chromatic":  Chromatic,
}

// ByName looks up one of the named modes, case-insensitively.
func ByName(name string) (Scale, bool) {
	s, ok := byName[strings.ToLower(name)]
	return s, ok
}
