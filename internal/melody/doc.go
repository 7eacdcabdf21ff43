// Package melody implements the canonry temporal event model and its
// transformation algebra.
//
// The package is the heart of canonry - it defines the Note record, the
// lazy Melody sequence, the pitch value expansion, the attribute
// combinators, the order-preserving merge engine, and the phrase renderer.
//
// ARCHITECTURE:
//
// Pure Values, Pull-Based Sequences:
// Every operation is a pure function over immutable values. A Melody is a
// range-over-func sequence (func(yield func(Note) bool)); consumers pull
// exactly as many notes as they need, so melodies may be unbounded (for
// example an indefinite rest pad merged under a finite line). No operation
// in this package touches wall-clock time, I/O, or shared mutable state.
//
// Layering:
//  1. Note + pitch values (note.go, pitch.go, utter.go) - the event model
//  2. Attribute combinators (where.go) - rewrite one attribute per note,
//     never reorder, insert, or delete
//  3. Merge engine (merge.go) - combine melodies preserving non-decreasing
//     time order, with a deterministic first-argument-wins tie-break
//  4. Phrase renderer (phrase.go) - expand duration/pitch/velocity
//     specifications into melodies using 1-3
//
// INVARIANTS:
//
// Time Order:
// Melodies produced by With, Then, Times, MapThen, and Phrase are
// non-decreasing in time provided their inputs are. Merge inputs are
// assumed ordered and are not re-verified.
//
// Tie-Break:
// When two merged notes carry the same time, the note from the first
// argument is emitted first. The rule holds for the whole merge, however
// deep the recursion, and downstream canon layering depends on it.
//
// Structure Preservation:
// The attribute combinators (Where, Wherever, All, Having, After) are
// structural no-ops: they only rewrite attribute values. A note lacking
// the target attribute passes through Where unchanged; that is the
// default, safest behavior.
package melody
