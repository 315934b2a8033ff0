// Package rpc exposes the playback manager over JSON-RPC 2.0.
//
// Every method is namespaced under "lumibag.": get_playlist, get_status,
// get_volume, set_volume, get_colors, set_color, play, play_index, stop,
// test_pattern and power_off. Parameters are positional.
//
// The same dispatcher serves two fronts: an HTTP POST endpoint for
// development and the datagram transport for the constrained link, where
// one reassembled message is one request and one reply message is one
// response.
package rpc
