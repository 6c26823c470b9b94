package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kweiler/papergrid/pkg/colorname"
	"github.com/kweiler/papergrid/pkg/pagesize"
)

// newSizesCmd creates the sizes command listing the accepted page sizes.
func newSizesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sizes",
		Short: "List the known page-size names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Page sizes") + StyleDim.Render(" (points, portrait)"))
			for _, name := range pagesize.Names() {
				s, err := pagesize.Lookup(name)
				if err != nil {
					return err
				}
				printKeyValue(name, fmt.Sprintf("%g × %g", s.Width, s.Height))
			}
			printDetail("%d sizes; pass --landscape to swap width and height", len(pagesize.Names()))
			return nil
		},
	}
}

// newColorsCmd creates the colors command listing the accepted color names.
func newColorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List the known color names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Color names") + StyleDim.Render(" (hex also accepted: #rgb or #rrggbb)"))
			for _, name := range colorname.Names() {
				hex := colorname.Hex(name)
				swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
				printKeyValue(name, swatch+" "+hex)
			}
			printDetail("%d colors", len(colorname.Names()))
			return nil
		},
	}
}
