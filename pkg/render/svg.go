package render

import (
	"bytes"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/kweiler/papergrid/pkg/errors"
)

// SVGSurface accumulates draw calls into an SVG document.
// Coordinates are bottom-left origin; the surface flips them into SVG's
// top-left space. The zero value is not usable; construct with NewSVG.
type SVGSurface struct {
	width, height float64

	buf       bytes.Buffer
	fill      colorful.Color
	stroke    colorful.Color
	lineWidth float64
	finalized bool
}

// NewSVG creates a surface for one page of the given dimensions (points).
func NewSVG(width, height float64) *SVGSurface {
	s := &SVGSurface{width: width, height: height}
	fmt.Fprintf(&s.buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.3f %.3f" width="%.3fpt" height="%.3fpt">`+"\n",
		width, height, width, height)
	return s
}

// flip converts a bottom-left-origin y coordinate to SVG space.
func (s *SVGSurface) flip(y float64) float64 {
	return s.height - y
}

// SetFillColor sets the color used by subsequent FillRect calls.
func (s *SVGSurface) SetFillColor(c colorful.Color) { s.fill = c }

// SetStrokeColor sets the color used by subsequent DrawLine calls.
func (s *SVGSurface) SetStrokeColor(c colorful.Color) { s.stroke = c }

// SetLineWidth sets the stroke width used by subsequent DrawLine calls.
func (s *SVGSurface) SetLineWidth(w float64) { s.lineWidth = w }

// FillRect fills the axis-aligned rectangle with the current fill color.
// (x, y) names the bottom-left corner.
func (s *SVGSurface) FillRect(x, y, w, h float64) {
	fmt.Fprintf(&s.buf,
		`  <rect x="%.3f" y="%.3f" width="%.3f" height="%.3f" fill="%s"/>`+"\n",
		x, s.flip(y+h), w, h, s.fill.Hex())
}

// DrawLine strokes a straight segment with the current stroke settings.
func (s *SVGSurface) DrawLine(x1, y1, x2, y2 float64) {
	fmt.Fprintf(&s.buf,
		`  <line x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke="%s" stroke-width="%.3f" stroke-linecap="square"/>`+"\n",
		x1, s.flip(y1), x2, s.flip(y2), s.stroke.Hex(), s.lineWidth)
}

// Finalize closes the document. The surface accepts no further draw calls.
func (s *SVGSurface) Finalize() error {
	if s.finalized {
		return errors.New(errors.ErrCodeInternal, "surface already finalized")
	}
	s.buf.WriteString("</svg>\n")
	s.finalized = true
	return nil
}

// Bytes returns the encoded document. Valid only after Finalize.
func (s *SVGSurface) Bytes() []byte {
	return s.buf.Bytes()
}
