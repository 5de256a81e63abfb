// Package diagram holds the in-memory model of the architecture diagram.
//
// A [Surface] accumulates visual primitives — labeled rounded-rectangle
// nodes, directional connector arrows, and free-standing text labels — in
// a logical coordinate space with the origin at the bottom-left. Node
// colors come from a closed [Palette]; referencing a key outside it is a
// configuration error that surfaces as [ErrUnknownStyle] before the
// surface is mutated.
//
// A [Layout] is the plain-data form of a diagram: node, connector, and
// label records with literal coordinates. [FlowMindLayout] is the built-in
// table describing the FlowMind chat application's five-layer
// architecture; [Compose] replays any layout onto a fresh surface.
//
// The package draws nothing itself. Rendering to SVG and PNG lives in
// pkg/render, file output in pkg/export.
package diagram
