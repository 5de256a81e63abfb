package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/flowmind/flowviz/pkg/diagram"
	"github.com/flowmind/flowviz/pkg/export"
	"github.com/flowmind/flowviz/pkg/layoutfile"
	"github.com/flowmind/flowviz/pkg/render"
)

// defaultOutputBase matches the path the FlowMind repository serves its
// documentation assets from.
const defaultOutputBase = "public/architecture-diagram"

// defaultRasterScale is the PNG resolution in pixels per surface unit.
const defaultRasterScale = render.DefaultPNGScale

// generateOpts holds the command-line flags for diagram generation.
type generateOpts struct {
	output     string   // output base path (or full path with format extension)
	formats    []string // output formats: "png", "svg"
	scale      float64  // raster pixels per surface unit
	layoutPath string   // optional TOML layout file
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to both png and svg.
func parseFormats(s string) []string {
	if s == "" {
		return export.DefaultFormats
	}
	return strings.Split(s, ",")
}

// basePath derives the output base path. If output is empty it falls back
// to the default; if output carries a known format extension (.png, .svg)
// that extension is stripped.
func basePath(output string) string {
	if output == "" {
		return defaultOutputBase
	}
	ext := filepath.Ext(output)
	if export.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runGenerate composes the diagram surface and exports it in the
// requested formats. Any failure (unknown style key, unreadable layout
// file, unwritable output path) aborts the whole run; there is no
// partial-output recovery.
func runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	if err := export.ValidateFormats(opts.formats); err != nil {
		return err
	}

	layout := diagram.FlowMindLayout()
	if opts.layoutPath != "" {
		logger.Infof("Loading layout from %s", opts.layoutPath)
		var err error
		layout, err = layoutfile.Load(opts.layoutPath)
		if err != nil {
			return err
		}
	}
	logger.Debugf("Layout: %d nodes, %d connectors, %d labels",
		len(layout.Nodes), len(layout.Connectors), len(layout.Labels))

	surface, err := diagram.Compose(layout)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	paths, err := export.Files(surface, basePath(opts.output), opts.formats,
		export.WithPNGScale(opts.scale))
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %d file(s)", len(paths)))

	fmt.Println(styleSuccess.Render("✅ Architecture diagram generated successfully!"))
	fmt.Println(styleDim.Render("📁 Saved as: ") + stylePath.Render(strings.Join(paths, " & ")))
	return nil
}
