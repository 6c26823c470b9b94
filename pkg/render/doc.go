// Package render provides page surfaces and output conversion for sheets.
//
// # Overview
//
// Two surface implementations satisfy the sheet drawing contract:
//
//   - [SVGSurface] builds an SVG document in memory; this is the native
//     format and the input for PDF conversion.
//   - [RasterSurface] draws into a fogleman/gg context and encodes PNG.
//
// Both accept bottom-left-origin coordinates and flip internally. A surface
// is single-use: draw, then [SVGSurface.Finalize] (or the raster equivalent),
// then read the encoded bytes. Nothing touches the filesystem here; callers
// write the returned bytes after the whole sequence succeeds, so a failed
// render never leaves partial output behind.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert SVG bytes to other formats using the external
// rsvg-convert tool (from librsvg):
//
//	svg := surface.Bytes()
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
package render
