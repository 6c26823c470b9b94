package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	apperrors "github.com/kweiler/papergrid/pkg/errors"
)

// linePreset holds the optional per-class stroke settings of a preset file.
type linePreset struct {
	Color *string  `toml:"color"`
	Width *float64 `toml:"width"`
}

// preset mirrors the TOML preset file layout. All fields are pointers so
// absent keys are distinguishable from zero values.
type preset struct {
	Page struct {
		Size      *string `toml:"size"`
		Landscape *bool   `toml:"landscape"`
	} `toml:"page"`
	Margins struct {
		Top    *int `toml:"top"`
		Left   *int `toml:"left"`
		Bottom *int `toml:"bottom"`
		Right  *int `toml:"right"`
	} `toml:"margins"`
	Grid struct {
		Size          *float64 `toml:"size"`
		MajorInterval *int     `toml:"major_interval"`
	} `toml:"grid"`
	Style struct {
		Major      *linePreset `toml:"major"`
		Minor      *linePreset `toml:"minor"`
		Border     *linePreset `toml:"border"`
		Background *string     `toml:"background"`
	} `toml:"style"`
	Layout struct {
		Stretch          *bool `toml:"stretch"`
		CenterHorizontal *bool `toml:"center_horizontal"`
		CenterVertical   *bool `toml:"center_vertical"`
	} `toml:"layout"`
}

// loadPreset parses a TOML preset file.
func loadPreset(path string) (*preset, error) {
	var p preset
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidPreset, err, "failed to load preset %s", path)
	}
	return &p, nil
}

// applyPreset overlays preset values onto opts for every flag the user did
// not set explicitly: built-in defaults < preset < explicit flags.
func applyPreset(cmd *cobra.Command, path string, opts *renderOpts) error {
	p, err := loadPreset(path)
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed

	if p.Page.Size != nil && !changed("page_size") {
		opts.pageSize = *p.Page.Size
	}
	if p.Page.Landscape != nil && !changed("landscape") {
		opts.landscape = *p.Page.Landscape
	}

	if !changed("margin") {
		m := opts.margin
		if len(m) == 4 {
			if p.Margins.Top != nil {
				m[0] = *p.Margins.Top
			}
			if p.Margins.Left != nil {
				m[1] = *p.Margins.Left
			}
			if p.Margins.Bottom != nil {
				m[2] = *p.Margins.Bottom
			}
			if p.Margins.Right != nil {
				m[3] = *p.Margins.Right
			}
		}
	}

	if p.Grid.Size != nil && !changed("grid_size") {
		opts.gridSize = *p.Grid.Size
	}
	if p.Grid.MajorInterval != nil && !changed("major_line_interval") {
		opts.majorInterval = *p.Grid.MajorInterval
	}

	applyLinePreset(p.Style.Major, changed, "major_line_color", "major_line_thickness", &opts.majorColor, &opts.majorThickness)
	applyLinePreset(p.Style.Minor, changed, "minor_line_color", "minor_line_thickness", &opts.minorColor, &opts.minorThickness)
	applyLinePreset(p.Style.Border, changed, "border_line_color", "border_line_thickness", &opts.borderColor, &opts.borderThickness)
	if p.Style.Background != nil && !changed("background_color") {
		opts.backgroundColor = *p.Style.Background
	}

	if p.Layout.Stretch != nil && !changed("stretch_grid") {
		opts.stretch = *p.Layout.Stretch
	}
	if p.Layout.CenterHorizontal != nil && !changed("horizontal_center") {
		opts.hCenter = *p.Layout.CenterHorizontal
	}
	if p.Layout.CenterVertical != nil && !changed("vertical_center") {
		opts.vCenter = *p.Layout.CenterVertical
	}

	return nil
}

// applyLinePreset overlays one line class unless the matching flags were set.
func applyLinePreset(lp *linePreset, changed func(string) bool, colorFlag, widthFlag string, c *string, w *float64) {
	if lp == nil {
		return
	}
	if lp.Color != nil && !changed(colorFlag) {
		*c = *lp.Color
	}
	if lp.Width != nil && !changed(widthFlag) {
		*w = *lp.Width
	}
}
