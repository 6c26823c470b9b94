package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kweiler/papergrid/pkg/colorname"
	apperrors "github.com/kweiler/papergrid/pkg/errors"
	"github.com/kweiler/papergrid/pkg/pagesize"
	"github.com/kweiler/papergrid/pkg/render"
	"github.com/kweiler/papergrid/pkg/sheet"
)

// renderOpts holds the command-line flags for the render command.
// These options mirror the sheet parameters plus output selection.
type renderOpts struct {
	preset    string // optional TOML preset file
	pageSize  string // named page size
	landscape bool   // rotate the page to landscape orientation

	margin        []int   // top, left, bottom, right
	gridSize      float64 // nominal cell size in points
	majorInterval int     // minor cells per major line

	majorColor      string
	majorThickness  float64
	minorColor      string
	minorThickness  float64
	borderColor     string
	borderThickness float64
	backgroundColor string

	stretch bool // rescale the grid to exactly fill the usable area
	hCenter bool // center the grid horizontally
	vCenter bool // center the grid vertically
}

// newRenderCmd creates the render command for generating grid sheets.
// The positional argument is the output file; the format is taken from
// --format, or the file extension, or defaults to PDF.
//
// Default settings match a classic engineering pad: 15pt cells, a major
// line every 5 cells, green linework on a pale yellow background, with the
// grid stretched and centered on a letter page.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := defaultRenderOpts()

	cmd := &cobra.Command{
		Use:   "render [filename]",
		Short: "Render a grid sheet to PDF, SVG, or PNG",
		Long: `Render a single-page engineering grid sheet to the given file.

The output format is taken from --format if set, otherwise from the file
extension, otherwise PDF. Multiple comma-separated formats write one file
per format next to the given path.

Colors accept the names listed by 'papergrid colors' or hex strings
("#rgb" or "#rrggbb"); page sizes accept the names listed by
'papergrid sizes'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.preset != "" {
				if err := applyPreset(cmd, opts.preset, &opts); err != nil {
					return err
				}
			}
			formats := resolveFormats(formatsStr, args[0])
			if err := render.ValidateFormats(formats); err != nil {
				return err
			}
			p, err := buildParams(&opts)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], formats, p)
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): pdf (default), svg, png (comma-separated)")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "TOML preset file with sheet settings")
	cmd.Flags().StringVar(&opts.pageSize, "page_size", opts.pageSize, "named page size")
	cmd.Flags().BoolVar(&opts.landscape, "landscape", false, "rotate the page to landscape orientation")
	cmd.Flags().IntSliceVar(&opts.margin, "margin", opts.margin, "margins: top,left,bottom,right")
	cmd.Flags().Float64Var(&opts.gridSize, "grid_size", opts.gridSize, "size of a grid cell in points")
	cmd.Flags().IntVar(&opts.majorInterval, "major_line_interval", opts.majorInterval, "minor cells between major lines")
	cmd.Flags().StringVar(&opts.majorColor, "major_line_color", opts.majorColor, "color of the major lines")
	cmd.Flags().Float64Var(&opts.majorThickness, "major_line_thickness", opts.majorThickness, "thickness of the major lines")
	cmd.Flags().StringVar(&opts.minorColor, "minor_line_color", opts.minorColor, "color of the minor lines")
	cmd.Flags().Float64Var(&opts.minorThickness, "minor_line_thickness", opts.minorThickness, "thickness of the minor lines")
	cmd.Flags().StringVar(&opts.borderColor, "border_line_color", opts.borderColor, "color of the border lines")
	cmd.Flags().Float64Var(&opts.borderThickness, "border_line_thickness", opts.borderThickness, "thickness of the border lines")
	cmd.Flags().StringVar(&opts.backgroundColor, "background_color", opts.backgroundColor, "background color of the sheet")
	cmd.Flags().BoolVar(&opts.stretch, "stretch_grid", opts.stretch, "stretch the grid to exactly fill the usable area")
	cmd.Flags().BoolVar(&opts.hCenter, "horizontal_center", opts.hCenter, "center the grid horizontally")
	cmd.Flags().BoolVar(&opts.vCenter, "vertical_center", opts.vCenter, "center the grid vertically")

	return cmd
}

// defaultRenderOpts returns a fresh copy of the render command defaults,
// shared with the preview server as its base settings.
func defaultRenderOpts() renderOpts {
	return renderOpts{
		pageSize:        "letter",
		margin:          []int{30, 40, 30, 20},
		gridSize:        15,
		majorInterval:   5,
		majorColor:      "green",
		majorThickness:  0.5,
		minorColor:      "lightgreen",
		minorThickness:  0.2,
		borderColor:     "darkgreen",
		borderThickness: 1.5,
		backgroundColor: "#faf3bd",
		stretch:         true,
		hCenter:         true,
		vCenter:         true,
	}
}

// resolveFormats decides the output formats: the --format flag wins, then
// a recognized file extension, then PDF.
func resolveFormats(formatsStr, filename string) []string {
	if formatsStr != "" {
		return strings.Split(formatsStr, ",")
	}
	if ext := strings.TrimPrefix(filepath.Ext(filename), "."); ext != "" {
		if render.ValidateFormats([]string{ext}) == nil {
			return []string{ext}
		}
	}
	return []string{render.FormatPDF}
}

// basePath strips a recognized format extension from path, so multi-format
// output can append per-format extensions.
func basePath(path string) string {
	ext := filepath.Ext(path)
	if render.ValidateFormats([]string{strings.TrimPrefix(ext, ".")}) == nil {
		return strings.TrimSuffix(path, ext)
	}
	return path
}

// buildParams validates the flag values and assembles the render parameters.
// All name lookups happen here, at the boundary, so the layout engine only
// ever sees concrete values.
func buildParams(o *renderOpts) (render.Params, error) {
	if len(o.margin) != 4 {
		return render.Params{}, apperrors.New(apperrors.ErrCodeInvalidMargin,
			"--margin expects 4 values (top,left,bottom,right), got %d", len(o.margin))
	}

	size, err := pagesize.Lookup(o.pageSize)
	if err != nil {
		return render.Params{}, err
	}
	if o.landscape {
		size = size.Landscape()
	}

	majorColor, err := colorname.Parse(o.majorColor)
	if err != nil {
		return render.Params{}, err
	}
	minorColor, err := colorname.Parse(o.minorColor)
	if err != nil {
		return render.Params{}, err
	}
	borderColor, err := colorname.Parse(o.borderColor)
	if err != nil {
		return render.Params{}, err
	}
	background, err := colorname.Parse(o.backgroundColor)
	if err != nil {
		return render.Params{}, err
	}

	return render.Params{
		Geometry: sheet.Geometry{Width: size.Width, Height: size.Height},
		Margins: sheet.Margins{
			Top:    float64(o.margin[0]),
			Left:   float64(o.margin[1]),
			Bottom: float64(o.margin[2]),
			Right:  float64(o.margin[3]),
		},
		Grid: sheet.GridSpec{Size: o.gridSize, MajorInterval: o.majorInterval},
		Style: sheet.Style{
			Major:      sheet.LineStyle{Color: majorColor, Width: o.majorThickness},
			Minor:      sheet.LineStyle{Color: minorColor, Width: o.minorThickness},
			Border:     sheet.LineStyle{Color: borderColor, Width: o.borderThickness},
			Background: background,
		},
		Options: sheet.Options{
			Stretch:          o.stretch,
			CenterHorizontal: o.hCenter,
			CenterVertical:   o.vCenter,
		},
	}, nil
}

// runRender renders every requested format and writes the output files.
// Output is only written after the full draw sequence succeeds, so a
// failed render never leaves a partial file behind.
func runRender(ctx context.Context, filename string, formats []string, p render.Params) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	logger.Debugf("Page: %gx%g, margins top=%g left=%g bottom=%g right=%g",
		p.Geometry.Width, p.Geometry.Height,
		p.Margins.Top, p.Margins.Left, p.Margins.Bottom, p.Margins.Right)

	for _, format := range formats {
		path := filename
		if len(formats) > 1 {
			path = fmt.Sprintf("%s.%s", basePath(filename), format)
		}

		data, l, err := render.Render(format, p)
		if err != nil {
			return err
		}
		logger.Debugf("Layout: %dx%d cells, grid size %.3f, deltas h=%.3f v=%.3f",
			l.NumVSpaces, l.NumHSpaces, l.GridSize, l.HDelta, l.VDelta)
		logger.Debugf("Rendered %s: %d bytes", format, len(data))

		out, err := openOutput(path)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}
		if path != "-" {
			printFile(path)
		}
	}

	prog.done(fmt.Sprintf("Generated %d file(s)", len(formats)))
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is "-", it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
