package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InkPad/internal/geom"
	"InkPad/internal/state"
)

func press(pos fyne.Position) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: pos},
		Button:     desktop.MouseButtonPrimary,
	}
}

func release() *desktop.MouseEvent {
	return &desktop.MouseEvent{Button: desktop.MouseButtonPrimary}
}

func drag(pos fyne.Position, dx, dy float32) *fyne.DragEvent {
	return &fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: pos},
		Dragged:    fyne.Delta{DX: dx, DY: dy},
	}
}

func TestBoardGestureCommitsStroke(t *testing.T) {
	_ = test.NewApp()
	b := NewBoardWidget()

	b.MouseDown(press(fyne.NewPos(10, 10)))
	b.Dragged(drag(fyne.NewPos(20, 10), 10, 0))
	b.MouseUp(release())

	cmds := b.Canvas.Commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, []geom.Point{geom.Pt(10, 10), geom.Pt(20, 10)}, cmds[0].Points)
	assert.False(t, b.Canvas.Drawing())
	assert.Equal(t, b.Settings().Color, cmds[0].Style.Color)
	assert.Equal(t, b.Settings().Width, cmds[0].Style.Width)
}

func TestBoardSecondaryButtonIgnored(t *testing.T) {
	_ = test.NewApp()
	b := NewBoardWidget()

	b.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)},
		Button:     desktop.MouseButtonSecondary,
	})
	assert.False(t, b.Canvas.Drawing())
}

func TestBoardDragWithoutGesturePans(t *testing.T) {
	_ = test.NewApp()
	b := NewBoardWidget()

	b.Dragged(drag(fyne.NewPos(50, 50), 7, -2))
	v := b.Canvas.View()
	assert.Equal(t, float32(7), v.OffsetX)
	assert.Equal(t, float32(-2), v.OffsetY)
	assert.Empty(t, b.Canvas.Commands())
}

func TestBoardMapsDeviceToCanvasCoordinates(t *testing.T) {
	_ = test.NewApp()
	b := NewBoardWidget()

	// Pan first, then draw: captured points must be canvas-local.
	b.Dragged(drag(fyne.NewPos(0, 0), 5, 10))
	b.MouseDown(press(fyne.NewPos(15, 30)))
	b.MouseUp(release())

	cmds := b.Canvas.Commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, geom.Pt(10, 20), cmds[0].Points[0])
}

func TestBoardScrollZooms(t *testing.T) {
	_ = test.NewApp()
	b := NewBoardWidget()

	b.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 1}})
	assert.InDelta(t, 1.2, float64(b.Canvas.View().Scale), 1e-5)

	b.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: -1}})
	assert.InDelta(t, 1.0, float64(b.Canvas.View().Scale), 1e-5)
}

func TestBoardRendererPaintsEraseWithBackground(t *testing.T) {
	_ = test.NewApp()
	b := NewBoardWidget()
	b.SetTool(state.ToolEraser)
	b.SetColor(color.NRGBA{R: 255, A: 255})

	b.MouseDown(press(fyne.NewPos(0, 0)))
	b.Dragged(drag(fyne.NewPos(40, 0), 40, 0))
	b.MouseUp(release())

	r := test.WidgetRenderer(b)
	objects := r.Objects()
	require.Greater(t, len(objects), 1, "background plus at least one segment")

	for _, o := range objects[1:] {
		line, ok := o.(*canvas.Line)
		require.True(t, ok)
		assert.Equal(t, boardBackground, line.StrokeColor)
	}
}

func TestBoardRendererScalesStrokeWidth(t *testing.T) {
	_ = test.NewApp()
	b := NewBoardWidget()
	b.SetWidth(4)
	b.Canvas.Zoom(2)

	b.MouseDown(press(fyne.NewPos(0, 0)))
	b.Dragged(drag(fyne.NewPos(40, 0), 40, 0))
	b.MouseUp(release())

	r := test.WidgetRenderer(b)
	objects := r.Objects()
	require.Greater(t, len(objects), 1)
	line, ok := objects[1].(*canvas.Line)
	require.True(t, ok)
	assert.InDelta(t, 8, float64(line.StrokeWidth), 1e-5)
}

func TestBoardOnChangeFires(t *testing.T) {
	_ = test.NewApp()
	b := NewBoardWidget()
	calls := 0
	b.OnChange = func() { calls++ }

	b.MouseDown(press(fyne.NewPos(0, 0)))
	b.Dragged(drag(fyne.NewPos(10, 0), 10, 0))
	b.MouseUp(release())
	assert.Equal(t, 1, calls)

	b.Undo()
	assert.Equal(t, 2, calls)

	b.ClearAll()
	assert.Equal(t, 3, calls)
}
