package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kitplan/kitplan/pkg/measure"
)

// newConvertCmd creates the convert command, a calculator for the
// measurement grammar: it parses a spec like "3 ft 6 in" and prints the
// value in the requested unit, optionally scaled down to printed size.
func newConvertCmd() *cobra.Command {
	var scaleSpec string

	cmd := &cobra.Command{
		Use:   "convert <measurement> <unit>",
		Short: "Convert a measurement to another unit",
		Long: `Convert parses a human-readable measurement and prints its value in
the requested unit.

With --scale the value is additionally reduced to printed size, which
answers "how big is this part on paper".`,
		Example: `  kitplan convert "3 ft 6 in" cm
  kitplan convert "4.56 m" ft
  kitplan convert --scale HO "4 m" mm`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], args[1], scaleSpec)
		},
	}

	cmd.Flags().StringVar(&scaleSpec, "scale", "", "reduce to printed size at this scale, named or N:D")

	return cmd
}

func runConvert(spec, unit, scaleSpec string) error {
	m, err := measure.Parse(measure.World, spec)
	if err != nil {
		return err
	}

	value, err := m.In(unit)
	if err != nil {
		return err
	}
	printKeyValue("full size", fmt.Sprintf("%g %s", value, unit))

	if scaleSpec != "" {
		scale, err := measure.LookupScale(scaleSpec)
		if err != nil {
			return err
		}
		printKeyValue("scale", scale.Name)
		printKeyValue("printed", fmt.Sprintf("%g %s", value*scale.Ratio, unit))
	}
	return nil
}
