// Package export writes a rendered diagram surface to image files.
//
// Export is the terminal stage of a run: every requested format is
// rendered in memory first, and files are written only after all
// rendering has succeeded. A failure therefore leaves either all outputs
// or none on disk from the rendering side; an unwritable directory fails
// at file creation before any bytes are written.
package export

import (
	"fmt"
	"os"

	"github.com/flowmind/flowviz/pkg/diagram"
	"github.com/flowmind/flowviz/pkg/render"
)

// Supported output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// DefaultFormats is the format set used when the caller requests none.
var DefaultFormats = []string{FormatPNG, FormatSVG}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{FormatPNG: true, FormatSVG: true}

// ValidateFormats checks that all requested formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if !ValidFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'png' or 'svg')", f)
		}
	}
	return nil
}

// Option configures an export run.
type Option func(*exporter)

type exporter struct {
	pngScale float64
	svgScale float64
}

// WithPNGScale overrides the raster resolution in pixels per surface unit.
func WithPNGScale(s float64) Option {
	return func(e *exporter) { e.pngScale = s }
}

// WithSVGScale overrides the vector viewBox scale in pixels per surface unit.
func WithSVGScale(s float64) Option {
	return func(e *exporter) { e.svgScale = s }
}

// Files renders the surface in each requested format and writes one file
// per format at base + "." + format. It returns the written paths in
// format order.
func Files(s *diagram.Surface, base string, formats []string, opts ...Option) ([]string, error) {
	e := exporter{pngScale: render.DefaultPNGScale, svgScale: render.DefaultSVGScale}
	for _, opt := range opts {
		opt(&e)
	}
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}

	// Render everything before touching the filesystem.
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		data, err := e.renderFormat(s, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := base + "." + format
		if err := writeFile(path, artifacts[format]); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (e *exporter) renderFormat(s *diagram.Surface, format string) ([]byte, error) {
	switch format {
	case FormatSVG:
		return render.RenderSVG(s, render.WithSVGScale(e.svgScale)), nil
	case FormatPNG:
		return render.RenderPNG(s, render.WithPNGScale(e.pngScale))
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
