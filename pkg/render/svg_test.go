package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kweiler/papergrid/pkg/colorname"
	"github.com/kweiler/papergrid/pkg/errors"
	"github.com/kweiler/papergrid/pkg/sheet"
)

func TestSVGSurfaceDocumentStructure(t *testing.T) {
	s := NewSVG(612, 792)
	s.SetFillColor(colorname.MustParse("#faf3bd"))
	s.FillRect(0, 0, 612, 792)
	s.SetStrokeColor(colorname.MustParse("darkgreen"))
	s.SetLineWidth(0.5)
	s.DrawLine(30, 30, 30, 762)

	if err := s.Finalize(); err != nil {
		t.Fatalf("Finalize() unexpected error: %v", err)
	}

	out := string(s.Bytes())
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("output does not start with svg element:\n%s", out[:80])
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("output does not end with closing svg tag")
	}
	if !strings.Contains(out, `viewBox="0 0 612.000 792.000"`) {
		t.Error("viewBox missing or wrong")
	}
	if !strings.Contains(out, `fill="#faf3bd"`) {
		t.Error("background fill color missing")
	}
	if !strings.Contains(out, `stroke="#006400"`) {
		t.Error("stroke color missing")
	}
}

func TestSVGSurfaceFlipsY(t *testing.T) {
	s := NewSVG(612, 792)
	s.SetStrokeColor(colorname.MustParse("black"))
	s.SetLineWidth(1)
	// A horizontal segment along the page bottom must land at SVG y=792.
	s.DrawLine(0, 0, 612, 0)
	if err := s.Finalize(); err != nil {
		t.Fatalf("Finalize() unexpected error: %v", err)
	}

	out := string(s.Bytes())
	if !strings.Contains(out, `y1="792.000" x2="612.000" y2="792.000"`) {
		t.Errorf("bottom line not flipped to SVG space:\n%s", out)
	}
}

func TestSVGSurfaceFillRectAnchorsTopLeft(t *testing.T) {
	s := NewSVG(100, 200)
	s.SetFillColor(colorname.MustParse("white"))
	// Bottom-left rect (10,20) size 30x40 has its SVG top edge at 200-(20+40)=140.
	s.FillRect(10, 20, 30, 40)
	if err := s.Finalize(); err != nil {
		t.Fatalf("Finalize() unexpected error: %v", err)
	}

	if !strings.Contains(string(s.Bytes()), `<rect x="10.000" y="140.000" width="30.000" height="40.000"`) {
		t.Errorf("rect not anchored correctly:\n%s", s.Bytes())
	}
}

func TestSVGSurfaceDoubleFinalize(t *testing.T) {
	s := NewSVG(10, 10)
	if err := s.Finalize(); err != nil {
		t.Fatalf("first Finalize() unexpected error: %v", err)
	}
	if err := s.Finalize(); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("second Finalize() error = %v, want code %v", err, errors.ErrCodeInternal)
	}
}

func TestRasterSurfaceEncodesPNG(t *testing.T) {
	s := NewRaster(100, 100, 1)
	s.SetFillColor(colorname.MustParse("white"))
	s.FillRect(0, 0, 100, 100)
	s.SetStrokeColor(colorname.MustParse("black"))
	s.SetLineWidth(1)
	s.DrawLine(0, 50, 100, 50)

	if err := s.Finalize(); err != nil {
		t.Fatalf("Finalize() unexpected error: %v", err)
	}

	sig := []byte{0x89, 'P', 'N', 'G'}
	if got := s.Bytes(); len(got) < 8 || !bytes.Equal(got[:4], sig) {
		t.Error("Finalize() did not produce a PNG stream")
	}
}

func TestRenderSVGFormat(t *testing.T) {
	p := Params{
		Geometry: sheet.Geometry{Width: 612, Height: 792},
		Margins:  sheet.DefaultMargins(),
		Grid:     sheet.DefaultGrid(),
		Style:    sheet.DefaultStyle(),
		Options:  sheet.DefaultOptions(),
	}

	data, l, err := Render(FormatSVG, p)
	if err != nil {
		t.Fatalf("Render(svg) unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Render(svg) produced no output")
	}
	if l.NumVLines != 56 {
		t.Errorf("layout NumVLines = %d, want 56", l.NumVLines)
	}
	// One <line> element per grid line, border segment, and divider.
	want := l.NumVLines + l.NumHLines + 4 + 2
	if got := strings.Count(string(data), "<line "); got != want {
		t.Errorf("svg contains %d line elements, want %d", got, want)
	}
}

func TestRenderReportsLayoutErrors(t *testing.T) {
	p := Params{
		Geometry: sheet.Geometry{Width: 612, Height: 792},
		Margins:  sheet.Margins{Top: 30, Left: 400, Bottom: 30, Right: 400},
		Grid:     sheet.DefaultGrid(),
		Style:    sheet.DefaultStyle(),
		Options:  sheet.DefaultOptions(),
	}

	if _, _, err := Render(FormatSVG, p); !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("Render() error = %v, want code %v", err, errors.ErrCodeInvalidLayout)
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "pdf", "png"}); err != nil {
		t.Errorf("ValidateFormats(valid) = %v, want nil", err)
	}
	if err := ValidateFormats([]string{"svg", "gif"}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormats(gif) error = %v, want code %v", err, errors.ErrCodeInvalidFormat)
	}
}
