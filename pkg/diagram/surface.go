package diagram

import "fmt"

// Align is the horizontal anchor of a text label.
type Align string

// VAlign is the vertical anchor of a text label.
type VAlign string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"

	VAlignCenter VAlign = "center"
	VAlignBottom VAlign = "bottom"
)

// Node is a labeled rounded rectangle placed on the surface. X/Y is the
// bottom-left corner in surface units; Fill and Border are resolved from
// the palette at placement time.
type Node struct {
	X, Y, W, H float64
	Label      string
	Style      string
	Fill       string
	Border     string
}

// CenterX returns the horizontal center of the node.
func (n Node) CenterX() float64 { return n.X + n.W/2 }

// CenterY returns the vertical center of the node.
func (n Node) CenterY() float64 { return n.Y + n.H/2 }

// Connector is a directional arrow between two absolute points.
// Endpoints are chosen by the caller; the surface does not tie them to
// node geometry.
type Connector struct {
	X1, Y1, X2, Y2 float64
}

// Label is a free-standing text element. Size is in points. Boxed labels
// get a rounded background box (used for the legend callout).
type Label struct {
	X, Y   float64
	Text   string
	Align  Align
	VAlign VAlign
	Size   float64
	Bold   bool
	Color  string
	Boxed  bool
}

// Surface is the in-memory drawing canvas. It accumulates nodes,
// connectors, and labels in placement order and is serialized once by the
// render sinks. The zero value is not usable; construct with NewSurface.
type Surface struct {
	Width, Height float64
	Palette       Palette

	Nodes      []Node
	Connectors []Connector
	Labels     []Label
}

// NewSurface creates an empty surface with the given logical extent and
// the default palette. Dimensions are assumed positive.
func NewSurface(width, height float64) *Surface {
	return &Surface{Width: width, Height: height, Palette: DefaultPalette()}
}

// PlaceNode adds a labeled rounded rectangle at the given bounds. The
// style key is resolved against the palette before the surface is touched,
// so a failed lookup leaves the surface unchanged.
func (s *Surface) PlaceNode(x, y, w, h float64, label, styleKey string) error {
	c, err := s.Palette.Lookup(styleKey)
	if err != nil {
		return fmt.Errorf("place node %q: %w", label, err)
	}
	s.Nodes = append(s.Nodes, Node{
		X: x, Y: y, W: w, H: h,
		Label: label, Style: styleKey,
		Fill: c.Fill, Border: c.Border,
	})
	return nil
}

// DrawConnector adds a directional arrow from (x1,y1) to (x2,y2).
// Coordinates are not validated against node positions; a wrong endpoint
// draws a misplaced but well-formed arrow.
func (s *Surface) DrawConnector(x1, y1, x2, y2 float64) {
	s.Connectors = append(s.Connectors, Connector{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// PlaceText adds a free-standing label. Empty alignment fields default to
// left/center anchoring.
func (s *Surface) PlaceText(l Label) {
	if l.Align == "" {
		l.Align = AlignLeft
	}
	if l.VAlign == "" {
		l.VAlign = VAlignCenter
	}
	s.Labels = append(s.Labels, l)
}
