// Package song loads YAML song scripts.
//
// A script names the song, its audio file, a lead-in offset and the
// ordered movement entries:
//
//	title: 青空Jumping Heart
//	filename: aozora-jumping-heart.wav
//	initial_offset: 0.25
//	patterns:
//	  - type: slow
//	    bpm: 87
//	    left: chika
//	    center: aqours rainbow
//	    right: [dia, kanan, mari]
//	    count: 2
//	  - type: normal
//	    count: 4
//	    kwargs:
//	      hold: true
//
// Colors accept a member name, a unit name, or a list of member names
// forming a custom rotation. Entries may omit bpm and colors to carry the
// previous entry's values forward; the engine resolves that during
// playback. Pattern tags and color names are validated at load time so a
// broken script is rejected before the show starts.
package song
