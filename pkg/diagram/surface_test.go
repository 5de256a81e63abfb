package diagram

import (
	"errors"
	"testing"
)

func TestPlaceNodeResolvesColors(t *testing.T) {
	s := NewSurface(16, 12)

	if err := s.PlaceNode(1, 9.5, 2, 1, "User Interface", "frontend"); err != nil {
		t.Fatalf("PlaceNode() error: %v", err)
	}

	if len(s.Nodes) != 1 {
		t.Fatalf("node count = %d, want 1", len(s.Nodes))
	}
	n := s.Nodes[0]
	if n.Fill != "#E8F4FD" {
		t.Errorf("Fill = %q, want %q", n.Fill, "#E8F4FD")
	}
	if n.Border != "#1976D2" {
		t.Errorf("Border = %q, want %q", n.Border, "#1976D2")
	}
	if got := n.CenterX(); got != 2 {
		t.Errorf("CenterX() = %v, want 2", got)
	}
	if got := n.CenterY(); got != 10 {
		t.Errorf("CenterY() = %v, want 10", got)
	}
}

func TestPlaceNodeUnknownStyleLeavesSurfaceUnchanged(t *testing.T) {
	s := NewSurface(16, 12)

	err := s.PlaceNode(1, 1, 2, 1, "Mystery", "unknown")
	if err == nil {
		t.Fatal("PlaceNode() with unknown style succeeded, want error")
	}
	if !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("error = %v, want ErrUnknownStyle", err)
	}
	if len(s.Nodes) != 0 {
		t.Errorf("node count = %d after failed placement, want 0", len(s.Nodes))
	}
}

func TestDrawConnector(t *testing.T) {
	s := NewSurface(16, 12)

	s.DrawConnector(2, 9.5, 8, 8.5)
	s.DrawConnector(7, 9.5, 8, 8.5)

	if len(s.Connectors) != 2 {
		t.Fatalf("connector count = %d, want 2", len(s.Connectors))
	}
	c := s.Connectors[0]
	if c.X1 != 2 || c.Y1 != 9.5 || c.X2 != 8 || c.Y2 != 8.5 {
		t.Errorf("connector = %+v, want {2 9.5 8 8.5}", c)
	}
}

func TestPlaceTextDefaultsAlignment(t *testing.T) {
	s := NewSurface(16, 12)

	s.PlaceText(Label{X: 8, Y: 11.5, Text: "Title", Size: 20})

	if len(s.Labels) != 1 {
		t.Fatalf("label count = %d, want 1", len(s.Labels))
	}
	l := s.Labels[0]
	if l.Align != AlignLeft {
		t.Errorf("Align = %q, want %q", l.Align, AlignLeft)
	}
	if l.VAlign != VAlignCenter {
		t.Errorf("VAlign = %q, want %q", l.VAlign, VAlignCenter)
	}
}
