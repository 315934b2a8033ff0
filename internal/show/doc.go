// Package show implements the show clock and the choreography engine.
//
// # Clock
//
// The clock runs at 8 ticks per beat; one tick lasts 1min/(bpm*8). Tick
// deadlines accumulate absolutely — each deadline is the previous deadline
// plus the interval — so the time spent rendering and pushing a frame does
// not stretch the schedule. When a tick misses its deadline the overrun is
// recorded as drift and the chain continues from the missed deadline
// without catch-up; a stall therefore shifts the phase of everything after
// it rather than causing a burst of rushed ticks.
//
// # Engine
//
// The engine walks a Script: for each step it resolves the pattern tag,
// retunes the clock and runs count repetitions of the pattern period,
// rendering one full frame per tick and applying it to the Surface.
// Fields a step leaves unspecified (tempo, column colors) carry over from
// the previous step. Cancellation is cooperative at tick granularity: Play
// returns after the current tick and the surface keeps whatever frame was
// last applied.
package show
