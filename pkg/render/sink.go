package render

import (
	"github.com/kweiler/papergrid/pkg/errors"
	"github.com/kweiler/papergrid/pkg/sheet"
)

// Output formats accepted by Render.
const (
	FormatSVG = "svg"
	FormatPDF = "pdf"
	FormatPNG = "png"
)

// Both surfaces must satisfy the sheet drawing contract.
var (
	_ sheet.Surface = (*SVGSurface)(nil)
	_ sheet.Surface = (*RasterSurface)(nil)
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{FormatSVG: true, FormatPDF: true, FormatPNG: true}

// ValidateFormats checks that all requested formats are valid.
// It returns an error if any format is not in validFormats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"invalid format: %s (must be 'svg', 'pdf', or 'png')", f)
		}
	}
	return nil
}

// Params bundles the sheet inputs for one render call.
type Params struct {
	Geometry sheet.Geometry
	Margins  sheet.Margins
	Grid     sheet.GridSpec
	Style    sheet.Style
	Options  sheet.Options
}

// Render produces one page in the requested format and returns the encoded
// bytes together with the computed layout for diagnostics. SVG is native;
// PDF goes through rsvg-convert. PNG prefers rsvg-convert so it matches the
// PDF output stroke for stroke, and falls back to the gg raster surface
// when librsvg is not installed.
func Render(format string, p Params) ([]byte, sheet.Layout, error) {
	switch format {
	case FormatSVG:
		return renderSVG(p)
	case FormatPDF:
		svg, l, err := renderSVG(p)
		if err != nil {
			return nil, sheet.Layout{}, err
		}
		pdf, err := ToPDF(svg)
		if err != nil {
			return nil, sheet.Layout{}, err
		}
		return pdf, l, nil
	case FormatPNG:
		svg, l, err := renderSVG(p)
		if err != nil {
			return nil, sheet.Layout{}, err
		}
		if png, err := ToPNG(svg, DefaultRasterScale); err == nil {
			return png, l, nil
		}
		return renderPNG(p, DefaultRasterScale)
	default:
		return nil, sheet.Layout{}, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}

func renderSVG(p Params) ([]byte, sheet.Layout, error) {
	s := NewSVG(p.Geometry.Width, p.Geometry.Height)
	l, err := sheet.Render(s, p.Geometry, p.Margins, p.Grid, p.Style, p.Options)
	if err != nil {
		return nil, sheet.Layout{}, err
	}
	if err := s.Finalize(); err != nil {
		return nil, sheet.Layout{}, err
	}
	return s.Bytes(), l, nil
}

func renderPNG(p Params, scale float64) ([]byte, sheet.Layout, error) {
	s := NewRaster(p.Geometry.Width, p.Geometry.Height, scale)
	l, err := sheet.Render(s, p.Geometry, p.Margins, p.Grid, p.Style, p.Options)
	if err != nil {
		return nil, sheet.Layout{}, err
	}
	if err := s.Finalize(); err != nil {
		return nil, sheet.Layout{}, err
	}
	return s.Bytes(), l, nil
}
