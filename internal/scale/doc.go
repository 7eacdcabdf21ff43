// Package scale maps integer scale degrees to pitch offsets and provides
// the series helpers used to build duration and pitch specifications.
//
// A Scale is a pure function from degree to offset, defined by a finite
// interval pattern that repeats cyclically upward and mirrors through zero
// downward: New(ivals)(n) == -New(reverse(ivals))(-n) for n < 0. The
// recursion terminates because the negative branch immediately re-enters
// the non-negative branch of the reversed pattern.
//
// The series helpers (Run, Accumulate, Repeats, Runs) are decoders for
// compact melodic specifications: runs between pivot degrees, cumulative
// onset series, and run-length-encoded duration lists.
package scale
