// Package cli wires the colorspin commands.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-spin-mcp/internal/buildinfo"
	"github.com/ironsheep/color-spin-mcp/internal/logging"
	"github.com/ironsheep/color-spin-mcp/internal/server"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globalOpts struct {
	debug  bool
	stderr io.Writer
}

func (g *globalOpts) logger() *slog.Logger {
	return logging.New(logging.Config{
		Output: g.stderr,
		Level:  os.Getenv(logging.EnvLevel),
		Debug:  g.debug,
	})
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &globalOpts{stderr: stderr}

	cmd := &cobra.Command{
		Use:   "colorspin",
		Short: "Rotate colours around the hue wheel",
		Long: `colorspin rotates "#rrggbb" colours around the HSL hue wheel.

Without a subcommand it runs an MCP server over stdin/stdout.
Configure it in your MCP client (e.g., Claude Desktop).

Environment variables:
  ` + logging.EnvLevel + `=debug    Enable debug logging`,
		Version:      buildinfo.String(),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger := opts.logger()
			logger.Debug("starting MCP server", "name", server.ServerName, "version", buildinfo.Version)
			return server.NewWithIO(stdin, stdout, logger).Run()
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging to stderr")

	cmd.AddCommand(
		newSpinCmd(opts),
		newHarmonyCmd(opts),
		newSwatchCmd(opts),
	)
	return cmd
}
