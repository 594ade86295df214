package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-spin-mcp/internal/harmony"
)

func schemeUsage() string {
	names := make([]string, 0, 3)
	for _, s := range harmony.Schemes() {
		names = append(names, string(s))
	}
	return "harmony scheme: " + strings.Join(names, ", ")
}

func newHarmonyCmd(opts *globalOpts) *cobra.Command {
	var (
		scheme string
		strict bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "harmony <color>",
		Short: "Print a colour scheme built from a base colour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := harmony.Build(args[0], harmony.Scheme(scheme), strict)
			if err != nil {
				return err
			}
			if p.Defaulted {
				opts.logger().Warn("color is not #RRGGBB, using black", "color", args[0])
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			}
			for _, sw := range p.Swatches {
				if _, err := fmt.Fprintf(out, "%g\t%s\n", sw.Offset, sw.Hex); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scheme, "scheme", string(harmony.Triadic), schemeUsage())
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on colours that are not #RRGGBB")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the palette as JSON")
	return cmd
}
