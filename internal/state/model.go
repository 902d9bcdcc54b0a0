package state

import (
	"image/color"

	"github.com/google/uuid"

	"InkPad/internal/geom"
)

// Tool selects how the next gesture is recorded.
type Tool uint8

const (
	ToolPen Tool = iota
	ToolEraser
)

// ToolSettings is the live tool configuration supplied by the toolbar.
// The state machine samples it once at pointer-down; later changes never
// affect a stroke already in flight.
type ToolSettings struct {
	Tool    Tool
	Color   color.NRGBA
	Width   float32
	Opacity float32
}

// StrokeStyle is the immutable per-command snapshot of the tool settings.
type StrokeStyle struct {
	Color   color.NRGBA
	Width   float32
	Opacity float32
}

// CommandKind tags the command variants.
type CommandKind uint8

const (
	KindStroke CommandKind = iota
	KindErase
	KindClear
)

// Command is one entry of the draw history. Points and Style are only set
// for KindStroke and KindErase; KindClear carries neither. Once a command
// has been appended to the log its fields are never mutated again.
type Command struct {
	ID     string
	Kind   CommandKind
	Points []geom.Point
	Style  StrokeStyle
}

// newCommand creates an in-progress command from the sampled tool settings,
// starting at the given point.
func newCommand(start geom.Point, ts ToolSettings) *Command {
	kind := KindStroke
	if ts.Tool == ToolEraser {
		kind = KindErase
	}
	return &Command{
		ID:     uuid.NewString(),
		Kind:   kind,
		Points: []geom.Point{start},
		Style: StrokeStyle{
			Color:   ts.Color,
			Width:   ts.Width,
			Opacity: ts.Opacity,
		},
	}
}

// ViewTransform maps canvas-local coordinates to device coordinates.
type ViewTransform struct {
	Scale   float32
	OffsetX float32
	OffsetY float32
}

// ToDevice converts a canvas-local point to device space.
func (v ViewTransform) ToDevice(p geom.Point) geom.Point {
	return geom.Point{
		X:        p.X*v.Scale + v.OffsetX,
		Y:        p.Y*v.Scale + v.OffsetY,
		Pressure: p.Pressure,
	}
}

// ToCanvas converts a device point back to canvas-local space.
func (v ViewTransform) ToCanvas(p geom.Point) geom.Point {
	return geom.Point{
		X:        (p.X - v.OffsetX) / v.Scale,
		Y:        (p.Y - v.OffsetY) / v.Scale,
		Pressure: p.Pressure,
	}
}
