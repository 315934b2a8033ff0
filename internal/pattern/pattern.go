package pattern

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPattern indicates a script referenced a tag with no registered
// render implementation.
var ErrUnknownPattern = errors.New("pattern: unknown pattern tag")

// Params carries everything a render call may depend on besides the tick
// counter. Palettes are passed explicitly here, never read from globals.
type Params struct {
	// Colors holds the left, center and right column color rotations.
	Colors [Columns]Cycle

	// Rainbow, when non-nil, overrides Colors with a per-row rainbow.
	Rainbow Cycle

	// Reverse mirrors direction for patterns that spin or sweep.
	Reverse bool

	// Hold keeps the final frame lit instead of blanking at the end of
	// the movement.
	Hold bool

	// Loop marks the movement as part of a repeating sequence; looping
	// movements animate their tail back into the next repetition.
	Loop bool
}

// ColorAt resolves the color for position (column, row) from the rainbow
// override or the column's rotation table.
func (p Params) ColorAt(x, y int) Color {
	if p.Rainbow != nil {
		return p.Rainbow.At(y)
	}
	return p.Colors[x].At(y)
}

// RenderFunc computes the full LED frame for one tick of a movement. It
// must be a pure function of its arguments: the engine reduces the tick
// counter modulo the pattern period before calling, and rendering the same
// inputs twice must yield identical frames.
type RenderFunc func(f *Frame, tick, period int, p Params)

// Pattern is one registered choreography effect.
type Pattern struct {
	// Tag is the name scripts use to select this pattern.
	Tag string

	// Beats is the length of one movement; the period is Beats * 8 ticks.
	Beats int

	// Render computes the frame for a tick in [0, period).
	Render RenderFunc
}

// Period returns the movement length in ticks.
func (p Pattern) Period() int {
	return p.Beats * TicksPerBeat
}

var registry = make(map[string]Pattern)

// Register adds a pattern to the tag table. Duplicate tags panic: the
// catalog is assembled at init time and a collision is a programming error.
func Register(p Pattern) {
	if _, exists := registry[p.Tag]; exists {
		panic(fmt.Sprintf("pattern: duplicate tag %q", p.Tag))
	}
	registry[p.Tag] = p
}

// Lookup resolves a tag to its registered pattern.
func Lookup(tag string) (Pattern, error) {
	p, ok := registry[tag]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, tag)
	}
	return p, nil
}

// Tags returns all registered tags in sorted order.
func Tags() []string {
	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
