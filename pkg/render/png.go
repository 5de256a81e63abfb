package render

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/gg"

	"github.com/flowmind/flowviz/pkg/diagram"
	"github.com/flowmind/flowviz/pkg/fonts"
)

// DefaultPNGScale is the raster resolution in pixels per surface unit.
// One unit is one inch, so 300 gives 300 DPI output (4800×3600 for the
// default 16×12 surface).
const DefaultPNGScale = 300.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	background string
}

// WithPNGScale overrides the pixels-per-unit raster scale.
func WithPNGScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGBackground overrides the background color (default white).
func WithPNGBackground(c string) PNGOption {
	return func(r *pngRenderer) { r.background = c }
}

// RenderPNG rasterizes the surface and encodes it as PNG. Text uses the
// embedded Go fonts, so output does not depend on fonts installed on the
// host.
func RenderPNG(s *diagram.Surface, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultPNGScale, background: "#FFFFFF"}
	for _, opt := range opts {
		opt(&r)
	}
	t := transform{scale: r.scale, height: s.Height}

	faces, err := fonts.NewCache(r.scale)
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	dc := gg.NewContext(int(math.Round(t.len(s.Width))), int(math.Round(t.len(s.Height))))
	dc.SetHexColor(r.background)
	dc.Clear()

	for _, n := range s.Nodes {
		renderPNGNode(dc, n, t, faces)
	}
	for _, c := range s.Connectors {
		renderPNGConnector(dc, c, t)
	}
	for _, l := range s.Labels {
		renderPNGLabel(dc, l, t, faces)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func renderPNGNode(dc *gg.Context, n diagram.Node, t transform, faces *fonts.Cache) {
	x, y, w, h, radius := t.nodeBox(n)
	dc.DrawRoundedRectangle(x, y, w, h, radius)
	dc.SetHexColor(n.Fill)
	dc.FillPreserve()
	dc.SetHexColor(n.Border)
	dc.SetLineWidth(t.pt(nodeBorderPt))
	dc.Stroke()

	label := diagram.Label{
		X: n.CenterX(), Y: n.CenterY(),
		Text:  n.Label,
		Align: diagram.AlignCenter, VAlign: diagram.VAlignCenter,
		Size: nodeFontPt, Bold: true, Color: "#000000",
	}
	renderPNGText(dc, label, t, faces)
}

func renderPNGConnector(dc *gg.Context, c diagram.Connector, t transform) {
	a, ok := arrowFor(c, t)
	if !ok {
		return
	}
	cr, cg, cb := hexRGB(diagram.ArrowColor)
	dc.SetRGBA(cr, cg, cb, diagram.ArrowAlpha)

	dc.SetLineWidth(t.pt(1.5))
	dc.DrawLine(a.X1, a.Y1, a.X2, a.Y2)
	dc.Stroke()

	dc.MoveTo(a.TipX, a.TipY)
	dc.LineTo(a.LX, a.LY)
	dc.LineTo(a.RX, a.RY)
	dc.ClosePath()
	dc.Fill()
}

func renderPNGLabel(dc *gg.Context, l diagram.Label, t transform, faces *fonts.Cache) {
	if l.Boxed {
		b := layoutText(l, t)
		x, y, w, h, radius := legendBox(b, t)
		dc.DrawRoundedRectangle(x, y, w, h, radius)
		dc.SetHexColor(legendFill)
		dc.FillPreserve()
		dc.SetHexColor(legendBorder)
		dc.SetLineWidth(1)
		dc.Stroke()
	}
	renderPNGText(dc, l, t, faces)
}

func renderPNGText(dc *gg.Context, l diagram.Label, t transform, faces *fonts.Cache) {
	b := layoutText(l, t)

	ax := 0.0
	if l.Align == diagram.AlignCenter {
		ax = 0.5
	}
	color := l.Color
	if color == "" {
		color = "#000000"
	}
	dc.SetHexColor(color)
	dc.SetFontFace(faces.Face(l.Size, l.Bold))

	for i, line := range b.Lines {
		dc.DrawStringAnchored(line, b.X, b.CenterYs[i], ax, 0.5)
	}
}

// hexRGB parses "#RRGGBB" into component floats in [0,1]. Malformed input
// falls back to black rather than failing mid-render; palette colors are
// validated literals, so this only matters for user-supplied layouts.
func hexRGB(s string) (r, g, b float64) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return float64(v>>16&0xFF) / 255, float64(v>>8&0xFF) / 255, float64(v&0xFF) / 255
}
