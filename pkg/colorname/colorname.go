// Package colorname resolves user-supplied color strings to concrete colors.
//
// Two forms are accepted: a named color from a closed registry (the common
// CSS/SVG names), or a hex string ("#rgb" or "#rrggbb"). Unknown names and
// malformed hex strings produce a typed error at the boundary, before any
// drawing starts.
package colorname

import (
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/kweiler/papergrid/pkg/errors"
)

// registry maps lowercase color names to hex values. This is the complete
// set of accepted color names; everything else must be supplied as hex.
var registry = map[string]string{
	"black":          "#000000",
	"dimgray":        "#696969",
	"gray":           "#808080",
	"darkgray":       "#a9a9a9",
	"silver":         "#c0c0c0",
	"lightgray":      "#d3d3d3",
	"gainsboro":      "#dcdcdc",
	"whitesmoke":     "#f5f5f5",
	"white":          "#ffffff",
	"maroon":         "#800000",
	"darkred":        "#8b0000",
	"red":            "#ff0000",
	"crimson":        "#dc143c",
	"firebrick":      "#b22222",
	"indianred":      "#cd5c5c",
	"salmon":         "#fa8072",
	"orangered":      "#ff4500",
	"orange":         "#ffa500",
	"gold":           "#ffd700",
	"yellow":         "#ffff00",
	"lightyellow":    "#ffffe0",
	"khaki":          "#f0e68c",
	"olive":          "#808000",
	"darkgreen":      "#006400",
	"green":          "#008000",
	"forestgreen":    "#228b22",
	"seagreen":       "#2e8b57",
	"mediumseagreen": "#3cb371",
	"limegreen":      "#32cd32",
	"lime":           "#00ff00",
	"lightgreen":     "#90ee90",
	"palegreen":      "#98fb98",
	"springgreen":    "#00ff7f",
	"teal":           "#008080",
	"darkcyan":       "#008b8b",
	"cyan":           "#00ffff",
	"lightcyan":      "#e0ffff",
	"cadetblue":      "#5f9ea0",
	"steelblue":      "#4682b4",
	"lightblue":      "#add8e6",
	"skyblue":        "#87ceeb",
	"deepskyblue":    "#00bfff",
	"dodgerblue":     "#1e90ff",
	"royalblue":      "#4169e1",
	"blue":           "#0000ff",
	"mediumblue":     "#0000cd",
	"darkblue":       "#00008b",
	"navy":           "#000080",
	"midnightblue":   "#191970",
	"indigo":         "#4b0082",
	"purple":         "#800080",
	"darkviolet":     "#9400d3",
	"violet":         "#ee82ee",
	"orchid":         "#da70d6",
	"magenta":        "#ff00ff",
	"hotpink":        "#ff69b4",
	"pink":           "#ffc0cb",
	"brown":          "#a52a2a",
	"sienna":         "#a0522d",
	"saddlebrown":    "#8b4513",
	"chocolate":      "#d2691e",
	"peru":           "#cd853f",
	"tan":            "#d2b48c",
	"wheat":          "#f5deb3",
	"beige":          "#f5f5dc",
	"ivory":          "#fffff0",
	"lavender":       "#e6e6fa",
}

// Parse resolves a color string to a colorful.Color.
// Strings starting with '#' are parsed as hex; anything else is looked up
// as a case-insensitive name. Failures return ErrCodeInvalidColor.
func Parse(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		// colorful.Hex scans leniently and would accept 5-digit or
		// over-long strings as a different color, so the shape is
		// checked here first.
		if len(s) != 4 && len(s) != 7 {
			return colorful.Color{}, errors.New(errors.ErrCodeInvalidColor,
				"invalid hex color %q (use #rgb or #rrggbb)", s)
		}
		c, err := colorful.Hex(strings.ToLower(s))
		if err != nil {
			return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err,
				"invalid hex color %q", s)
		}
		return c, nil
	}

	hex, ok := registry[strings.ToLower(s)]
	if !ok {
		return colorful.Color{}, errors.New(errors.ErrCodeInvalidColor,
			"unknown color name %q (see 'papergrid colors' for the full list)", s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		// Registry values are validated by tests; reaching this is a bug.
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInternal, err,
			"bad registry entry for %q", s)
	}
	return c, nil
}

// MustParse is like Parse but panics on error. Intended for package-level
// defaults built from registry names.
func MustParse(s string) colorful.Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the registered hex value for a color name, or "" if unknown.
func Hex(name string) string {
	return registry[strings.ToLower(strings.TrimSpace(name))]
}

// Names returns all registered color names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
