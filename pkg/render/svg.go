package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/flowmind/flowviz/pkg/diagram"
	"github.com/flowmind/flowviz/pkg/fonts"
)

// DefaultSVGScale is the vector output resolution in pixels per surface
// unit (a 16×12 surface renders as a 1600×1200 viewBox).
const DefaultSVGScale = 100.0

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale      float64
	background string
}

// WithSVGScale overrides the pixels-per-unit scale of the viewBox.
func WithSVGScale(s float64) SVGOption {
	return func(r *svgRenderer) { r.scale = s }
}

// WithSVGBackground overrides the background color (default white).
func WithSVGBackground(c string) SVGOption {
	return func(r *svgRenderer) { r.background = c }
}

// RenderSVG serializes the surface as an SVG document. Output is fully
// deterministic: primitives are emitted in placement order with fixed
// number formatting and no timestamps.
func RenderSVG(s *diagram.Surface, opts ...SVGOption) []byte {
	r := svgRenderer{scale: DefaultSVGScale, background: "#FFFFFF"}
	for _, opt := range opts {
		opt(&r)
	}
	t := transform{scale: r.scale, height: s.Height}

	w := t.len(s.Width)
	h := t.len(s.Height)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <rect width="%.0f" height="%.0f" fill="%s"/>`+"\n", w, h, r.background)

	for _, n := range s.Nodes {
		renderSVGNode(&buf, n, t)
	}
	for _, c := range s.Connectors {
		renderSVGConnector(&buf, c, t)
	}
	for _, l := range s.Labels {
		renderSVGLabel(&buf, l, t)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderSVGNode(buf *bytes.Buffer, n diagram.Node, t transform) {
	x, y, w, h, radius := t.nodeBox(n)
	fmt.Fprintf(buf, `  <rect class="node" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" fill="%s" stroke="%s" stroke-width="%.2f"/>`+"\n",
		x, y, w, h, radius, n.Fill, n.Border, t.pt(nodeBorderPt))

	label := diagram.Label{
		X: n.CenterX(), Y: n.CenterY(),
		Text:  n.Label,
		Align: diagram.AlignCenter, VAlign: diagram.VAlignCenter,
		Size: nodeFontPt, Bold: true, Color: "#000000",
	}
	renderSVGText(buf, label, t)
}

func renderSVGConnector(buf *bytes.Buffer, c diagram.Connector, t transform) {
	a, ok := arrowFor(c, t)
	if !ok {
		return
	}
	fmt.Fprintf(buf, `  <g class="connector" stroke="%s" fill="%s" opacity="%.2f">`+"\n", diagram.ArrowColor, diagram.ArrowColor, diagram.ArrowAlpha)
	fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke-width="%.2f"/>`+"\n", a.X1, a.Y1, a.X2, a.Y2, t.pt(1.5))
	fmt.Fprintf(buf, `    <path d="M %.2f %.2f L %.2f %.2f L %.2f %.2f Z" stroke="none"/>`+"\n", a.TipX, a.TipY, a.LX, a.LY, a.RX, a.RY)
	buf.WriteString("  </g>\n")
}

func renderSVGLabel(buf *bytes.Buffer, l diagram.Label, t transform) {
	if l.Boxed {
		b := layoutText(l, t)
		x, y, w, h, radius := legendBox(b, t)
		fmt.Fprintf(buf, `  <rect class="legend" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			x, y, w, h, radius, legendFill, legendBorder)
	}
	renderSVGText(buf, l, t)
}

func renderSVGText(buf *bytes.Buffer, l diagram.Label, t transform) {
	b := layoutText(l, t)

	anchor := "start"
	if l.Align == diagram.AlignCenter {
		anchor = "middle"
	}
	weight := "normal"
	if l.Bold {
		weight = "bold"
	}
	color := l.Color
	if color == "" {
		color = "#000000"
	}

	fmt.Fprintf(buf, `  <text font-family="%s" font-size="%.2f" font-weight="%s" fill="%s" text-anchor="%s">`+"\n",
		fonts.Family, b.FontPx, weight, color, anchor)
	for i, line := range b.Lines {
		fmt.Fprintf(buf, `    <tspan x="%.2f" y="%.2f" dominant-baseline="central">%s</tspan>`+"\n",
			b.X, b.CenterYs[i], escapeXML(line))
	}
	buf.WriteString("  </text>\n")
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
