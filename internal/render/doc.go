// Package render rasterises a palette into a flag image.
//
// It is a thin adapter over package palette: it only reads the ordered colour
// list and never influences which colours are produced.
package render
