// Package score compiles CUE score files into arrangements.
//
// A score is declarative data: a title, an optional tempo and key, and a
// list of voices. A voice either spells out parallel duration/pitch
// (/velocity) specifications, or derives from an earlier voice through a
// canon block (delay, transpose, mirror, crab). Compilation lowers the
// score onto the composition engine - phrase rendering, canon transforms,
// key and tempo mappings - and yields a perform.Arrangement ready for a
// renderer.
//
// Score shape:
//
//	score: {
//	    title: "Canone alla quarta"
//	    tempo: 90          // beats per minute, optional
//	    root:  60          // key root pitch, optional
//	    scale: "major"     // named mode, or intervals: [2,2,1,2,2,2,1]
//	    start: 0           // lead-in offset in beats, optional
//	    voices: [{
//	        name:      "lead"
//	        durations: [1, 1, [0.5, 0.5], 2]   // lists subdivide a slot
//	        pitches:   [0, 1, null, {i: 0, iii: 2}]
//	        velocities: [1.0, 0.8, 0.8, 1.0]   // optional
//	        repeat:    2                        // optional
//	    }, {
//	        name:   "echo"
//	        source: "lead"                      // derive from earlier voice
//	        canon: {delay: 4, transpose: -3, mirror: true}
//	    }]
//	}
//
// Pitch literals: numbers are scale degrees (or absolute pitches when the
// score names no scale), null is a rest, a list is a cluster, and a struct
// is a chord whose values render pitch-ascending.
//
// Uses the CUE SDK's Go API directly (not CLI subprocess); compile errors
// carry CUE file positions.
package score
