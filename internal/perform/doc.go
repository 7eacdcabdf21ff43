// Package perform assembles voices into a single performance melody and
// hands it to a renderer.
//
// The driver applies, per voice: the voice's canon transform, a part tag,
// the arrangement's key mapping (scale degree -> absolute pitch), its
// tempo mapping (beats -> performance-time units, scaling both time and
// duration), and finally the start offset. Voices are then merged in
// declaration order, so the earlier voice wins simultaneous ties - keep
// the leading voice first when layering canons.
//
// The Renderer interface is the core's only outward boundary. Sound
// production, scheduling, and anything touching wall-clock time live on
// the other side of it; the renderers shipped here only serialize.
package perform
