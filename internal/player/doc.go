// Package player owns the playback lifecycle and the LED surface.
//
// A Manager loads the playlist at startup, answers status queries, and
// serializes every writer of the LED surface: playing a song, setting a
// static color and running the test wipe all stop whatever was driving
// the blades first. Stop is synchronous — it cancels the playback
// goroutine and waits for it, which is bounded by one tick of the show
// clock.
//
// Audio is deliberately decoupled from the show: the backing track plays
// through the Audio interface (aplay/amixer on the controller, a no-op in
// the simulator) and failures there are logged without stopping the
// lights.
package player
