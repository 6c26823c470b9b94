package sheet

import colorful "github.com/lucasb-eyer/go-colorful"

// Surface is the page-drawing collaborator the engine draws against.
// Coordinates are bottom-left origin; implementations whose native origin
// differs own the flip. A surface instance must not be shared between
// concurrent renders.
type Surface interface {
	SetFillColor(c colorful.Color)
	FillRect(x, y, w, h float64)
	SetStrokeColor(c colorful.Color)
	SetLineWidth(w float64)
	DrawLine(x1, y1, x2, y2 float64)
}

// Draw issues the full draw sequence for a computed layout: background
// fill, grid lines, border, and the thirds dividers above the grid.
func Draw(s Surface, geom Geometry, l Layout, style Style) {
	s.SetFillColor(style.Background)
	s.FillRect(0, 0, geom.Width, geom.Height)

	// Vertical grid lines, left to right.
	for i := 0; i < l.NumVLines; i++ {
		applyClass(s, style, i, l.MajorInterval)
		x := l.MarginLeft + float64(i)*l.GridSize
		s.DrawLine(x, l.MarginBottom, x, l.TopStop)
	}

	// Horizontal grid lines, bottom to top.
	for i := 0; i < l.NumHLines; i++ {
		applyClass(s, style, i, l.MajorInterval)
		y := l.MarginBottom + float64(i)*l.GridSize
		s.DrawLine(l.MarginLeft, y, l.RightStop, y)
	}

	// Border segments span the full page extent on the perpendicular axis,
	// which keeps them visually distinct from the grid lines they overlay.
	s.SetStrokeColor(style.Border.Color)
	s.SetLineWidth(style.Border.Width)
	s.DrawLine(l.MarginLeft, 0, l.MarginLeft, geom.Height)
	s.DrawLine(0, l.TopStop, geom.Width, l.TopStop)
	s.DrawLine(l.RightStop, 0, l.RightStop, geom.Height)
	s.DrawLine(0, l.MarginBottom, geom.Width, l.MarginBottom)

	// Thirds dividers occupy only the top margin region above the grid.
	thirds := (l.RightStop - l.MarginLeft) / 3
	s.DrawLine(l.MarginLeft+thirds, l.TopStop, l.MarginLeft+thirds, geom.Height)
	s.DrawLine(l.MarginLeft+2*thirds, l.TopStop, l.MarginLeft+2*thirds, geom.Height)
}

// applyClass selects the major or minor stroke settings for line index i.
// Every MajorInterval-th line is major; because the space counts are floored
// to a multiple of the interval, both boundary lines are always major.
func applyClass(s Surface, style Style, i, interval int) {
	if i%interval == 0 {
		s.SetStrokeColor(style.Major.Color)
		s.SetLineWidth(style.Major.Width)
		return
	}
	s.SetStrokeColor(style.Minor.Color)
	s.SetLineWidth(style.Minor.Width)
}

// Render computes the layout and draws it in one call, returning the
// layout so callers can log the derived values. Nothing is drawn when the
// layout fails.
func Render(s Surface, geom Geometry, m Margins, grid GridSpec, style Style, opts Options) (Layout, error) {
	l, err := Compute(geom, m, grid, opts)
	if err != nil {
		return Layout{}, err
	}
	Draw(s, geom, l, style)
	return l, nil
}
