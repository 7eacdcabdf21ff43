// Package canon derives new melodies from existing ones via the classical
// counterpoint transforms: translation (shift), axis remapping (skew),
// pitch inversion (mirror), time reversal (crab), and their composites.
//
// A Transform is a pure Melody -> Melody function, closed under Compose.
// Composition order matters: a shift after a pitch skew offsets the
// already-transformed pitch, which is exactly how "canon at the fourth
// below, delayed, inverted" is assembled.
//
// Crab reverses time by negation, so its raw output runs backwards with
// negative times; callers re-anchor with a shift and restore storage order
// (melody.SortByTime) before merging the result against other material.
package canon
