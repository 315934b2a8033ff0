// Package pattern implements the choreography strategy table: the LED
// frame model, the blade color palette, and one registered render function
// per movement tag.
//
// # Frame Model
//
// The LED surface is 27 pixels arranged as 3 columns of 9 rows, wired
// column-major (Index(x, y) = 9x + y). A Frame is one complete raster;
// render calls mutate it in place and the engine applies it whole.
//
// # Render Contract
//
// Every movement implements a single contract:
//
//	func(f *Frame, tick, period int, p Params)
//
// The engine reduces its tick counter modulo the pattern period before
// calling, so a render function is a pure state function of the
// movement-local tick: stateless, deterministic, and restartable by
// resetting the counter to zero. Palettes and flags arrive in Params,
// never from package globals.
//
// # Catalog
//
// The movement catalog is registered at init time and looked up by tag:
//
//	pat, err := pattern.Lookup("senohai")
//	if err != nil {
//	    // unknown tag: the script referencing it fails to load
//	}
//	frame := &pattern.Frame{}
//	pat.Render(frame, tick%pat.Period(), pat.Period(), params)
//
// # Colors
//
// Blade colors approximate official penlight colors on WS2812 LEDs.
// Columns take either a single color or a rotation table (Cycle); the
// rainbow flag substitutes a fixed 9-color per-row rainbow. ColorByName
// and CycleByName resolve the names accepted by scripts and by the
// set_color RPC method.
package pattern
