// Package palette turns a name into a reproducible list of RGB colours.
//
// The pipeline is linear and pure:
//
//	Encode -> Seed -> GenerateFiller -> ChunkAndPad -> Adjustment.Apply -> Flatten
//
// Every word of the input is rendered as a hex string (one code point or one
// UTF-8 byte at a time), the hex strings are cut into 6-digit colour blocks,
// and a short trailing block is completed with a filler drawn from a Mersenne
// Twister seeded with the SHA-256 of all the hex. The same input therefore
// always yields the same palette, across processes and across ports that pin
// the same generator (see package prng).
//
// Adjustments (brighten, darken, saturate) are optional and lossy: once
// applied, the palette no longer identifies the name it came from.
package palette
