package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/flowmind/flowviz/pkg/diagram"
	"github.com/flowmind/flowviz/pkg/layoutfile"
)

// newLayoutCmd creates the layout command, which writes the built-in
// FlowMind layout table to stdout as TOML. The output is a valid starting
// template for a customized layout passed back via --layout.
func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the built-in layout table as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return layoutfile.Encode(os.Stdout, diagram.FlowMindLayout())
		},
	}
}
