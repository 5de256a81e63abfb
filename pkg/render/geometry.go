package render

import (
	"math"
	"strings"

	"github.com/flowmind/flowviz/pkg/diagram"
)

// One logical surface unit corresponds to one inch, so point-denominated
// quantities (font sizes, line widths, arrow shrink) convert to device
// pixels through the scale factor.
const pointsPerUnit = 72.0

const (
	// nodePad is the outward padding and corner radius of node boxes,
	// in surface units.
	nodePad = 0.05
	// nodeBorderPt is the node border stroke width in points.
	nodeBorderPt = 2.0
	// nodeFontPt is the node label font size in points.
	nodeFontPt = 9.0
	// shrinkPt pulls arrow endpoints back from their anchor points so
	// heads do not touch node borders.
	shrinkPt = 5.0
	// headLenPt and headWidthPt size the arrowhead triangle.
	headLenPt   = 14.0
	headWidthPt = 10.0
	// lineSpacing is the label line height as a multiple of font size.
	lineSpacing = 1.3
	// charWidthRatio approximates glyph advance as a fraction of font
	// size, used to size the legend background box.
	charWidthRatio = 0.55
	// legendFill and legendBorder color the legend background box.
	legendFill   = "#F7FAFC"
	legendBorder = "#E2E8F0"
)

// transform maps surface coordinates (origin bottom-left, y up) to device
// coordinates (origin top-left, y down) at a fixed pixels-per-unit scale.
type transform struct {
	scale  float64 // device pixels per surface unit
	height float64 // surface height in units
}

func (t transform) x(v float64) float64   { return v * t.scale }
func (t transform) y(v float64) float64   { return (t.height - v) * t.scale }
func (t transform) len(v float64) float64 { return v * t.scale }

// pt converts a point-denominated size to device pixels.
func (t transform) pt(p float64) float64 { return p / pointsPerUnit * t.scale }

// nodeBox returns the device-space bounds and corner radius of a node's
// rounded rectangle, including the outward pad.
func (t transform) nodeBox(n diagram.Node) (x, y, w, h, r float64) {
	x = t.x(n.X - nodePad)
	y = t.y(n.Y + n.H + nodePad)
	w = t.len(n.W + 2*nodePad)
	h = t.len(n.H + 2*nodePad)
	r = t.len(nodePad)
	return
}

// arrowShape is a connector resolved to device space: a shaft segment and
// a filled head triangle with its tip at the (shrunk) end point.
type arrowShape struct {
	X1, Y1, X2, Y2 float64 // shaft, shortened to the head base
	TipX, TipY     float64
	LX, LY, RX, RY float64 // head base corners
}

// arrowFor computes the device-space shape of a connector. It reports
// false for degenerate connectors whose endpoints collapse to one point
// after the shrink is applied.
func arrowFor(c diagram.Connector, t transform) (arrowShape, bool) {
	x1, y1 := t.x(c.X1), t.y(c.Y1)
	x2, y2 := t.x(c.X2), t.y(c.Y2)

	dx, dy := x2-x1, y2-y1
	dist := math.Hypot(dx, dy)
	shrink := t.pt(shrinkPt)
	if dist <= 2*shrink {
		return arrowShape{}, false
	}
	ux, uy := dx/dist, dy/dist

	sx, sy := x1+ux*shrink, y1+uy*shrink
	ex, ey := x2-ux*shrink, y2-uy*shrink

	headLen := t.pt(headLenPt)
	headW := t.pt(headWidthPt)
	bx, by := ex-ux*headLen, ey-uy*headLen
	px, py := -uy, ux // unit perpendicular

	return arrowShape{
		X1: sx, Y1: sy, X2: bx, Y2: by,
		TipX: ex, TipY: ey,
		LX: bx + px*headW/2, LY: by + py*headW/2,
		RX: bx - px*headW/2, RY: by - py*headW/2,
	}, true
}

// textBlock lays a multi-line label out in device space: one center point
// per line, top to bottom.
type textBlock struct {
	Lines    []string
	X        float64   // anchor x (meaning depends on alignment)
	CenterYs []float64 // vertical center of each line
	FontPx   float64
}

// layoutText resolves a label's lines and per-line vertical centers.
// Center alignment spreads lines around the anchor; bottom alignment
// stacks them upward from it.
func layoutText(l diagram.Label, t transform) textBlock {
	lines := strings.Split(l.Text, "\n")
	fontPx := t.pt(l.Size)
	lh := fontPx * lineSpacing
	anchorY := t.y(l.Y)

	centers := make([]float64, len(lines))
	n := float64(len(lines))
	for i := range lines {
		switch l.VAlign {
		case diagram.VAlignBottom:
			centers[i] = anchorY - lh*(n-float64(i)) + lh/2
		default: // center
			centers[i] = anchorY + lh*(float64(i)-(n-1)/2)
		}
	}
	return textBlock{Lines: lines, X: t.x(l.X), CenterYs: centers, FontPx: fontPx}
}

// legendBox estimates the background box of a boxed label from its line
// count and longest line. Device coordinates, top-left plus size.
func legendBox(b textBlock, t transform) (x, y, w, h, r float64) {
	longest := 0
	for _, line := range b.Lines {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}
	pad := b.FontPx * 0.6
	lh := b.FontPx * lineSpacing

	w = float64(longest)*b.FontPx*charWidthRatio + 2*pad
	h = lh*float64(len(b.Lines)) + 2*pad
	x = b.X - pad
	y = b.CenterYs[0] - lh/2 - pad
	r = pad / 2
	return
}
