package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-spin-mcp/internal/spin"
)

func newSpinCmd(opts *globalOpts) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "spin [--strict] <color> <degrees>",
		Short: "Rotate a colour's hue by an angle",
		Long: `Rotate a colour's hue by an angle in degrees.

Flags must come before the colour; everything after it is positional, so
negative angles need no "--" separator.`,
		Example: `  colorspin spin '#ff0000' 120     # #00ff00
  colorspin spin '#3366ff' -120`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			degrees, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid degrees %q: %w", args[1], err)
			}
			if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
				return fmt.Errorf("invalid degrees %q: must be a finite number", args[1])
			}

			var result string
			if strict {
				result, err = spin.SpinStrict(args[0], degrees)
				if err != nil {
					return err
				}
			} else {
				if spin.DecodeHex(args[0]).Defaulted() {
					opts.logger().Warn("color is not #RRGGBB, using black", "color", args[0])
				}
				result = spin.Spin(args[0], degrees)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on colours that are not #RRGGBB")
	cmd.Flags().SetInterspersed(false)
	return cmd
}
