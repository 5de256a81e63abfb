// Package cli implements the flowviz command-line interface.
//
// The root command renders the built-in FlowMind architecture diagram and
// writes it to PNG and SVG files; the layout subcommand dumps the
// built-in layout table as TOML so it can be edited and fed back in with
// --layout. The CLI is built using cobra with verbose logging via the
// charmbracelet/log library; loggers are passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/flowmind/flowviz/pkg/buildinfo"
)

// Execute runs the flowviz CLI and returns an error if the run fails.
//
// Logging goes to stderr at info level, or debug level with --verbose
// (-v). The logger is attached to the command context and retrieved by
// commands via loggerFromContext. Confirmation output goes to stdout.
func Execute(ctx context.Context) error {
	var verbose bool
	var formatsStr string
	opts := generateOpts{scale: defaultRasterScale}

	root := &cobra.Command{
		Use:          "flowviz",
		Short:        "flowviz renders the FlowMind architecture diagram",
		Long:         `flowviz draws the FlowMind chat application's five-layer architecture diagram (frontend, state, API, AI services, data) and writes it as PNG and SVG image files.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return runGenerate(cmd.Context(), &opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default public/architecture-diagram)")
	root.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png, svg (comma-separated; default both)")
	root.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster resolution in pixels per surface unit")
	root.Flags().StringVar(&opts.layoutPath, "layout", "", "TOML layout file replacing the built-in layout")

	root.AddCommand(newLayoutCmd())

	return root.ExecuteContext(ctx)
}
