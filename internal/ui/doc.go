// Package ui renders the LED grid in the terminal.
//
// The simulator is a Bubble Tea program showing the 3x9 blade layout with
// true-color blocks; the playback goroutine pushes frames into it through
// the same Surface interface the hardware strip implements, so a song
// plays identically against the terminal and the bag.
package ui
