// Package layoutfile reads and writes diagram layouts as TOML.
//
// The built-in FlowMind layout is a table of literal coordinates; this
// package gives that table an on-disk form so a layout can be tweaked
// without recompiling. Decode validates the document shape (surface
// extent, connector endpoints, required fields) but not style keys —
// those are checked against the palette when the layout is composed.
package layoutfile

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/flowmind/flowviz/pkg/diagram"
)

// defaultLabelSize is used for label records that omit a font size.
const defaultLabelSize = 10.0

type document struct {
	Width      float64        `toml:"width"`
	Height     float64        `toml:"height"`
	Nodes      []nodeRecord   `toml:"nodes"`
	Connectors []connectorRec `toml:"connectors"`
	Labels     []labelRecord  `toml:"labels"`
}

type nodeRecord struct {
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	W     float64 `toml:"w"`
	H     float64 `toml:"h"`
	Label string  `toml:"label"`
	Style string  `toml:"style"`
}

type connectorRec struct {
	From []float64 `toml:"from"`
	To   []float64 `toml:"to"`
}

type labelRecord struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Text   string  `toml:"text"`
	Align  string  `toml:"align,omitempty"`
	VAlign string  `toml:"valign,omitempty"`
	Size   float64 `toml:"size,omitempty"`
	Bold   bool    `toml:"bold,omitempty"`
	Color  string  `toml:"color,omitempty"`
	Boxed  bool    `toml:"boxed,omitempty"`
}

// Load reads and decodes a layout file at path.
func Load(path string) (diagram.Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return diagram.Layout{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	l, err := Decode(f)
	if err != nil {
		return diagram.Layout{}, fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}

// Decode parses a TOML layout document from r.
func Decode(r io.Reader) (diagram.Layout, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return diagram.Layout{}, fmt.Errorf("decode: %w", err)
	}
	return doc.toLayout()
}

func (doc document) toLayout() (diagram.Layout, error) {
	if doc.Width <= 0 || doc.Height <= 0 {
		return diagram.Layout{}, fmt.Errorf("surface extent must be positive, got %gx%g", doc.Width, doc.Height)
	}

	l := diagram.Layout{Width: doc.Width, Height: doc.Height}

	for i, n := range doc.Nodes {
		if n.Label == "" {
			return diagram.Layout{}, fmt.Errorf("node %d: missing label", i)
		}
		if n.Style == "" {
			return diagram.Layout{}, fmt.Errorf("node %d (%s): missing style", i, n.Label)
		}
		l.Nodes = append(l.Nodes, diagram.NodeSpec{
			X: n.X, Y: n.Y, W: n.W, H: n.H,
			Label: n.Label, Style: n.Style,
		})
	}

	for i, c := range doc.Connectors {
		if len(c.From) != 2 || len(c.To) != 2 {
			return diagram.Layout{}, fmt.Errorf("connector %d: from and to must each be [x, y]", i)
		}
		l.Connectors = append(l.Connectors, diagram.ConnectorSpec{
			X1: c.From[0], Y1: c.From[1],
			X2: c.To[0], Y2: c.To[1],
		})
	}

	for i, t := range doc.Labels {
		if t.Text == "" {
			return diagram.Layout{}, fmt.Errorf("label %d: missing text", i)
		}
		size := t.Size
		if size == 0 {
			size = defaultLabelSize
		}
		l.Labels = append(l.Labels, diagram.Label{
			X: t.X, Y: t.Y,
			Text:   t.Text,
			Align:  diagram.Align(t.Align),
			VAlign: diagram.VAlign(t.VAlign),
			Size:   size,
			Bold:   t.Bold,
			Color:  t.Color,
			Boxed:  t.Boxed,
		})
	}

	return l, nil
}

// Encode writes a layout as a TOML document to w. Encode and Decode
// round-trip, so dumping the built-in layout gives a valid starting
// template for a custom one.
func Encode(w io.Writer, l diagram.Layout) error {
	doc := document{Width: l.Width, Height: l.Height}

	for _, n := range l.Nodes {
		doc.Nodes = append(doc.Nodes, nodeRecord{
			X: n.X, Y: n.Y, W: n.W, H: n.H,
			Label: n.Label, Style: n.Style,
		})
	}
	for _, c := range l.Connectors {
		doc.Connectors = append(doc.Connectors, connectorRec{
			From: []float64{c.X1, c.Y1},
			To:   []float64{c.X2, c.Y2},
		})
	}
	for _, t := range l.Labels {
		doc.Labels = append(doc.Labels, labelRecord{
			X: t.X, Y: t.Y,
			Text:   t.Text,
			Align:  string(t.Align),
			VAlign: string(t.VAlign),
			Size:   t.Size,
			Bold:   t.Bold,
			Color:  t.Color,
			Boxed:  t.Boxed,
		})
	}

	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
