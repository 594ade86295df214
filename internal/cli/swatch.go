package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-spin-mcp/internal/harmony"
	"github.com/ironsheep/color-spin-mcp/internal/swatch"
)

func newSwatchCmd(opts *globalOpts) *cobra.Command {
	var (
		scheme string
		size   int
		out    string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "swatch <color>",
		Short: "Render a colour scheme as a PNG strip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := harmony.Build(args[0], harmony.Scheme(scheme), strict)
			if err != nil {
				return err
			}
			if p.Defaulted {
				opts.logger().Warn("color is not #RRGGBB, using black", "color", args[0])
			}

			img, err := swatch.Render(p, size)
			if err != nil {
				return err
			}
			if err := swatch.Save(img, out); err != nil {
				return err
			}

			opts.logger().Debug("wrote swatch", "path", out, "swatches", len(p.Swatches))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&scheme, "scheme", string(harmony.Triadic), schemeUsage())
	cmd.Flags().IntVar(&size, "size", swatch.DefaultCellSize, "swatch edge length in pixels")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output PNG path")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on colours that are not #RRGGBB")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
