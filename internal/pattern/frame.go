package pattern

const (
	// Columns is the number of blade columns on the bag (left, center, right).
	Columns = 3

	// Rows is the number of LEDs per column.
	Rows = 9

	// NumPixels is the total LED count of the surface.
	NumPixels = Columns * Rows

	// TicksPerBeat is the fixed subdivision of the show clock.
	TicksPerBeat = 8
)

// Color is one RGB LED color value.
type Color struct {
	R, G, B uint8
}

// Off is the all-dark color.
var Off = Color{}

// Index maps a (column, row) position to the physical pixel index. The
// strip is wired column-major: pixel 0 is the bottom of the left column.
func Index(x, y int) int {
	return Rows*x + y
}

// Frame is one full raster of LED output, mutated in place by pattern
// render calls and applied whole to the hardware surface.
type Frame [NumPixels]Color

// Set assigns the color of the pixel at (column, row).
func (f *Frame) Set(x, y int, c Color) {
	f[Index(x, y)] = c
}

// At returns the color of the pixel at (column, row).
func (f *Frame) At(x, y int) Color {
	return f[Index(x, y)]
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c Color) {
	for i := range f {
		f[i] = c
	}
}

// Clear turns every pixel off.
func (f *Frame) Clear() {
	f.Fill(Off)
}
