// Package sheet computes and draws engineering grid sheets.
//
// # Overview
//
// The package converts declarative sheet parameters (page geometry, margins,
// grid spacing, line styles) into concrete line coordinates and issues draw
// calls against a [Surface]. The whole computation is a single deterministic
// pass with no state surviving past one invocation:
//
//  1. [Compute] derives a [Layout] from the inputs: space counts floored to
//     a multiple of the major interval, optional stretch rescaling, grid
//     bounds, and centering offsets.
//  2. [Draw] walks the layout and emits background, grid, border, and
//     divider draw calls.
//
// [Render] runs both steps and returns the layout so callers can log the
// derived values.
//
// # Coordinates
//
// All coordinates are bottom-left origin in page units (typically PostScript
// points). Surfaces whose native origin differs own the flip.
//
// # Errors
//
// Degenerate geometry (margins consuming the whole page, or stretch
// requested with a zero space count) fails with an INVALID_LAYOUT error
// before any drawing starts.
package sheet
