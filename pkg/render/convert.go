package render

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/kweiler/papergrid/pkg/errors"
)

// ToPDF converts an SVG document to PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin
// (Linux). Returns ErrCodeMissingTool when the binary is not on PATH.
func ToPDF(svg []byte) ([]byte, error) {
	return rsvgConvert(svg, "pdf")
}

// ToPNG rasterizes an SVG document to PNG using rsvg-convert at the given
// pixels-per-point scale. It shares librsvg's rasterizer with the PDF path,
// so PNG and PDF output of the same sheet match stroke for stroke.
// Returns ErrCodeMissingTool when the binary is not on PATH.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// rsvgConvert pipes the SVG document through rsvg-convert.
func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errors.New(errors.ErrCodeMissingTool,
			"%s conversion requires librsvg (brew install librsvg / apt install librsvg2-bin)", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command("rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err,
			"rsvg-convert failed: %s", errBuf.String())
	}
	return out.Bytes(), nil
}
