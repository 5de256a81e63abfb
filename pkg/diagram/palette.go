package diagram

import (
	"errors"
	"fmt"
)

// ErrUnknownStyle is returned when a node references a style key that is
// not present in the palette. Use errors.Is to test for it.
var ErrUnknownStyle = errors.New("unknown style key")

// Colors holds the fill and border colors of one node category.
// Values are hex strings of the form "#RRGGBB".
type Colors struct {
	Fill   string
	Border string
}

// Palette maps style keys to their fill/border color pair. The key set is
// closed: looking up a key outside the palette is a configuration error,
// not a case to default silently.
type Palette map[string]Colors

// ArrowColor is the stroke and head color of connector arrows.
const ArrowColor = "#666666"

// ArrowAlpha is the opacity applied to connector arrows.
const ArrowAlpha = 0.7

// DefaultPalette returns the FlowMind category palette: one fill/border
// pair per architecture layer.
func DefaultPalette() Palette {
	return Palette{
		"frontend": {Fill: "#E8F4FD", Border: "#1976D2"},
		"state":    {Fill: "#FFF3E0", Border: "#F57C00"},
		"api":      {Fill: "#E8F5E8", Border: "#388E3C"},
		"ai":       {Fill: "#F3E5F5", Border: "#7B1FA2"},
		"data":     {Fill: "#FFF8E1", Border: "#FBC02D"},
	}
}

// Lookup resolves a style key to its color pair.
// It returns ErrUnknownStyle (wrapped with the offending key) when the key
// is not part of the palette.
func (p Palette) Lookup(key string) (Colors, error) {
	c, ok := p[key]
	if !ok {
		return Colors{}, fmt.Errorf("%w: %q", ErrUnknownStyle, key)
	}
	return c, nil
}

// Keys returns the style keys of the palette in unspecified order.
func (p Palette) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	return keys
}
