package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kitplan/kitplan/pkg/measure"
	"github.com/kitplan/kitplan/pkg/render"
)

// newScalesCmd creates the scales command, listing the named model
// scales the tool recognizes.
func newScalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scales",
		Short: "List the supported model scales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Model scales"))
			for _, s := range measure.Scales() {
				ratio := fmt.Sprintf("1:%g", 1/s.Ratio)
				fmt.Printf("  %s %s  %s\n",
					StyleNumber.Width(10).Render(s.Name),
					StyleValue.Width(8).Render(ratio),
					StyleDim.Render(s.Description))
			}
			printDetail("custom ratios like 1:87 or 2:1 are accepted anywhere a scale is")
			return nil
		},
	}
}

// newPapersCmd creates the papers command, listing the supported page
// formats with their sizes.
func newPapersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "papers",
		Short: "List the supported paper formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Paper formats"))
			for _, name := range render.PaperNames() {
				paper, err := render.PaperSize(name)
				if err != nil {
					return err
				}
				size := fmt.Sprintf("%.0f × %.0f pt (%.0f × %.0f mm)",
					paper.Width, paper.Height,
					paper.Width/72*25.4, paper.Height/72*25.4)
				fmt.Printf("  %s %s\n",
					StyleNumber.Width(10).Render(paper.Name),
					StyleDim.Render(size))
			}
			return nil
		},
	}
}
