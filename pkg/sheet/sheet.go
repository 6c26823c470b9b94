package sheet

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/kweiler/papergrid/pkg/colorname"
)

// Geometry holds the page dimensions in page units.
type Geometry struct {
	Width  float64
	Height float64
}

// Margins holds the four page margins. All values are non-negative and use
// the same units as Geometry.
type Margins struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// GridSpec describes the requested grid: the nominal cell size and how many
// minor cells sit between consecutive major lines.
type GridSpec struct {
	Size          float64
	MajorInterval int
}

// LineStyle holds the stroke settings for one line class.
type LineStyle struct {
	Color colorful.Color
	Width float64
}

// Style holds the per-class stroke settings and the background fill.
type Style struct {
	Major      LineStyle
	Minor      LineStyle
	Border     LineStyle
	Background colorful.Color
}

// Options controls the layout adjustments applied after the raw space
// counts are known.
type Options struct {
	// Stretch rescales the cell size so an integer number of cells exactly
	// fills the usable area on the tighter axis.
	Stretch bool
	// CenterHorizontal distributes leftover horizontal space evenly into
	// the left and right margins.
	CenterHorizontal bool
	// CenterVertical distributes leftover vertical space evenly into the
	// top and bottom margins.
	CenterVertical bool
}

// DefaultMargins returns a fresh copy of the standard margins.
func DefaultMargins() Margins {
	return Margins{Top: 30, Left: 30, Bottom: 30, Right: 30}
}

// DefaultGrid returns a fresh copy of the standard grid parameters.
func DefaultGrid() GridSpec {
	return GridSpec{Size: 10, MajorInterval: 5}
}

// DefaultStyle returns a fresh copy of the standard sheet style: dark green
// major and border lines, light green minor lines, pale yellow background.
func DefaultStyle() Style {
	return Style{
		Major:      LineStyle{Color: colorname.MustParse("darkgreen"), Width: 0.5},
		Minor:      LineStyle{Color: colorname.MustParse("lightgreen"), Width: 0.2},
		Border:     LineStyle{Color: colorname.MustParse("darkgreen"), Width: 1.5},
		Background: colorname.MustParse("#faf3bd"),
	}
}

// DefaultOptions returns a fresh copy of the standard layout options.
func DefaultOptions() Options {
	return Options{Stretch: true, CenterHorizontal: true, CenterVertical: true}
}
