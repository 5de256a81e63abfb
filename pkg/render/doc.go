// Package render serializes a diagram surface to image formats.
//
// Two sinks share one coordinate transform (surface units, origin
// bottom-left, one unit per inch → device pixels, origin top-left):
//
//   - [RenderSVG] writes vector output by hand into a buffer. No
//     timestamps or randomness; the same surface always yields the same
//     bytes.
//   - [RenderPNG] rasterizes through fogleman/gg using the embedded Go
//     fonts, so raster output is host-independent. The default scale is
//     300 pixels per unit (300 DPI).
//
// Both sinks draw the same primitives in the same order, so the raster
// and vector outputs are shape-equivalent renderings of one surface.
package render
