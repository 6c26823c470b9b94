package sheet

import (
	"github.com/kweiler/papergrid/pkg/errors"
)

// Layout holds the derived line positions and bounds for one sheet.
// It is computed once per render call, immutable thereafter, and carries
// everything Draw needs plus the adjustment deltas for diagnostics.
type Layout struct {
	// GridSize is the effective cell size after optional stretching.
	GridSize float64
	// MajorInterval is carried over from the GridSpec for line
	// classification during drawing.
	MajorInterval int

	// NumVSpaces and NumHSpaces are the cell counts along each axis,
	// always a multiple of MajorInterval.
	NumVSpaces int
	NumHSpaces int

	// NumVLines and NumHLines include both boundary lines.
	NumVLines int
	NumHLines int

	// MarginLeft and MarginBottom are the grid origin after centering.
	MarginLeft   float64
	MarginBottom float64

	// RightStop and TopStop mark the far edges of the drawn grid.
	RightStop float64
	TopStop   float64

	// HDelta and VDelta are the centering shifts applied per axis.
	HDelta float64
	VDelta float64
}

// multFloor rounds n down to the nearest multiple of interval.
// Both arguments are non-negative, so truncating division is a floor.
func multFloor(n, interval int) int {
	return (n / interval) * interval
}

// maxSpacesPerAxis bounds the cell count so a tiny grid size fails with a
// diagnostic instead of overflowing the float-to-int conversion.
const maxSpacesPerAxis = 1 << 20

// Compute derives a Layout from the sheet parameters.
//
// The raw per-axis space counts are floored to a multiple of the major
// interval so the grid always ends on a major line. With opts.Stretch the
// cell size is recomputed per axis and the minimum of the two is used for
// both, preserving square cells at the cost of residual margin on one axis.
// Centering runs after stretching and so only compensates slack that the
// stretch did not consume.
//
// It fails with an INVALID_LAYOUT error when the margins leave no usable
// space, when the grid parameters are non-positive or the cell size is too
// small to draw, or when stretching is requested with a zero space count.
func Compute(geom Geometry, m Margins, grid GridSpec, opts Options) (Layout, error) {
	if grid.Size <= 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidLayout,
			"grid size must be positive, got %g", grid.Size)
	}
	if grid.MajorInterval <= 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidLayout,
			"major line interval must be positive, got %d", grid.MajorInterval)
	}
	if m.Top < 0 || m.Left < 0 || m.Bottom < 0 || m.Right < 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidLayout,
			"margins must be non-negative, got top=%g left=%g bottom=%g right=%g",
			m.Top, m.Left, m.Bottom, m.Right)
	}

	usableW := geom.Width - m.Left - m.Right
	usableH := geom.Height - m.Top - m.Bottom
	if usableW <= 0 || usableH <= 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidLayout,
			"margins leave no usable space on a %gx%g page (usable %gx%g)",
			geom.Width, geom.Height, usableW, usableH)
	}

	rawV := usableW / grid.Size
	rawH := usableH / grid.Size
	if rawV > maxSpacesPerAxis || rawH > maxSpacesPerAxis {
		return Layout{}, errors.New(errors.ErrCodeInvalidLayout,
			"grid size %g yields more than %d cells per axis", grid.Size, maxSpacesPerAxis)
	}

	numVSpaces := multFloor(int(rawV), grid.MajorInterval)
	numHSpaces := multFloor(int(rawH), grid.MajorInterval)

	size := grid.Size
	if opts.Stretch {
		if numVSpaces == 0 || numHSpaces == 0 {
			return Layout{}, errors.New(errors.ErrCodeInvalidLayout,
				"grid size %g leaves no full major cell in usable space %gx%g",
				grid.Size, usableW, usableH)
		}
		sizeV := usableW / float64(numVSpaces)
		sizeH := usableH / float64(numHSpaces)
		size = min(sizeV, sizeH)
	}

	l := Layout{
		GridSize:      size,
		MajorInterval: grid.MajorInterval,
		NumVSpaces:    numVSpaces,
		NumHSpaces:    numHSpaces,
		NumVLines:     numVSpaces + 1,
		NumHLines:     numHSpaces + 1,
		MarginLeft:    m.Left,
		MarginBottom:  m.Bottom,
		RightStop:     m.Left + float64(numVSpaces)*size,
		TopStop:       m.Bottom + float64(numHSpaces)*size,
	}

	if opts.CenterHorizontal {
		l.HDelta = (geom.Width - m.Right - l.RightStop) / 2
		l.RightStop += l.HDelta
		l.MarginLeft += l.HDelta
	}
	if opts.CenterVertical {
		l.VDelta = (geom.Height - m.Top - l.TopStop) / 2
		l.TopStop += l.VDelta
		l.MarginBottom += l.VDelta
	}

	return l, nil
}
