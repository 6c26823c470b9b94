package render

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/kweiler/papergrid/pkg/errors"
)

// DefaultRasterScale is the pixels-per-point factor for PNG output.
// 2.0 roughly matches screen-resolution output for a point-sized page.
const DefaultRasterScale = 2.0

// RasterSurface draws into a fogleman/gg context and encodes PNG.
// Coordinates are bottom-left origin in points; the surface flips and
// scales them into pixel space itself rather than relying on the context
// transform, so stroke widths scale with the page.
type RasterSurface struct {
	width, height float64
	scale         float64

	dc        *gg.Context
	fill      colorful.Color
	stroke    colorful.Color
	lineWidth float64
	encoded   []byte
}

// NewRaster creates a raster surface for one page of the given dimensions
// (points) at the given pixels-per-point scale. A scale <= 0 falls back to
// DefaultRasterScale.
func NewRaster(width, height, scale float64) *RasterSurface {
	if scale <= 0 {
		scale = DefaultRasterScale
	}
	dc := gg.NewContext(int(math.Ceil(width*scale)), int(math.Ceil(height*scale)))
	return &RasterSurface{width: width, height: height, scale: scale, dc: dc}
}

// tx and ty map bottom-left-origin point coordinates to pixel space.
func (s *RasterSurface) tx(x float64) float64 { return x * s.scale }
func (s *RasterSurface) ty(y float64) float64 { return (s.height - y) * s.scale }

// SetFillColor sets the color used by subsequent FillRect calls.
func (s *RasterSurface) SetFillColor(c colorful.Color) { s.fill = c }

// SetStrokeColor sets the color used by subsequent DrawLine calls.
func (s *RasterSurface) SetStrokeColor(c colorful.Color) { s.stroke = c }

// SetLineWidth sets the stroke width in points for subsequent DrawLine calls.
func (s *RasterSurface) SetLineWidth(w float64) { s.lineWidth = w }

// FillRect fills the axis-aligned rectangle with the current fill color.
// (x, y) names the bottom-left corner.
func (s *RasterSurface) FillRect(x, y, w, h float64) {
	s.dc.SetColor(s.fill)
	s.dc.DrawRectangle(s.tx(x), s.ty(y+h), w*s.scale, h*s.scale)
	s.dc.Fill()
}

// DrawLine strokes a straight segment with the current stroke settings.
func (s *RasterSurface) DrawLine(x1, y1, x2, y2 float64) {
	s.dc.SetColor(s.stroke)
	s.dc.SetLineWidth(s.lineWidth * s.scale)
	s.dc.SetLineCapSquare()
	s.dc.DrawLine(s.tx(x1), s.ty(y1), s.tx(x2), s.ty(y2))
	s.dc.Stroke()
}

// Finalize encodes the image. The surface accepts no further draw calls.
func (s *RasterSurface) Finalize() error {
	if s.encoded != nil {
		return errors.New(errors.ErrCodeInternal, "surface already finalized")
	}
	var buf bytes.Buffer
	if err := s.dc.EncodePNG(&buf); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	s.encoded = buf.Bytes()
	return nil
}

// Bytes returns the encoded PNG. Valid only after Finalize.
func (s *RasterSurface) Bytes() []byte {
	return s.encoded
}
