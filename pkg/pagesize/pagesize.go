// Package pagesize resolves named page sizes to dimensions in PostScript
// points (1/72 inch). Names are matched case-insensitively against a closed
// registry; unknown names produce a typed error rather than a reflective
// lookup failure.
package pagesize

import (
	"sort"
	"strings"

	"github.com/kweiler/papergrid/pkg/errors"
)

// Size holds page dimensions in points, portrait orientation.
type Size struct {
	Width  float64
	Height float64
}

// Landscape returns the size rotated so the longer edge is horizontal.
func (s Size) Landscape() Size {
	if s.Width >= s.Height {
		return s
	}
	return Size{Width: s.Height, Height: s.Width}
}

// Portrait returns the size rotated so the longer edge is vertical.
func (s Size) Portrait() Size {
	if s.Height >= s.Width {
		return s
	}
	return Size{Width: s.Height, Height: s.Width}
}

// Common ANSI and ISO page sizes.
var (
	Letter          = Size{612, 792}
	Legal           = Size{612, 1008}
	Tabloid         = Size{792, 1224}
	Ledger          = Size{1224, 792}
	ElevenSeventeen = Size{792, 1224}
	HalfLetter      = Size{396, 612}
	GovLetter       = Size{576, 756}
	GovLegal        = Size{612, 936}
	JuniorLegal     = Size{360, 576}

	A0 = Size{2383.94, 3370.39}
	A1 = Size{1683.78, 2383.94}
	A2 = Size{1190.55, 1683.78}
	A3 = Size{841.89, 1190.55}
	A4 = Size{595.28, 841.89}
	A5 = Size{419.53, 595.28}
	A6 = Size{297.64, 419.53}

	B4 = Size{708.66, 1000.63}
	B5 = Size{498.90, 708.66}
)

// registry maps lowercase names to sizes. This is the complete set of
// accepted page-size names.
var registry = map[string]Size{
	"letter":          Letter,
	"legal":           Legal,
	"tabloid":         Tabloid,
	"ledger":          Ledger,
	"elevenseventeen": ElevenSeventeen,
	"halfletter":      HalfLetter,
	"govletter":       GovLetter,
	"govlegal":        GovLegal,
	"juniorlegal":     JuniorLegal,
	"a0":              A0,
	"a1":              A1,
	"a2":              A2,
	"a3":              A3,
	"a4":              A4,
	"a5":              A5,
	"a6":              A6,
	"b4":              B4,
	"b5":              B5,
}

// Lookup resolves a page-size name to its dimensions.
// Names are case-insensitive. Unknown names return ErrCodeInvalidPageSize.
func Lookup(name string) (Size, error) {
	s, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Size{}, errors.New(errors.ErrCodeInvalidPageSize,
			"unknown page size %q (see 'papergrid sizes' for the full list)", name)
	}
	return s, nil
}

// Names returns all registered page-size names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
