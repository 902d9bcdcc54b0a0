package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"InkPad/internal/geom"
	"InkPad/internal/render"
	"InkPad/internal/state"
)

// Chords per quadratic segment when flattening curves for canvas.Line.
const flattenSteps = 8

var boardBackground = color.NRGBA{R: 245, G: 246, B: 248, A: 255}

// BoardWidget is the interactive drawing surface. It translates fyne mouse
// and drag events into pointer events for the canvas state machine and
// paints the pipeline's primitive list. Dragging with no gesture active pans
// the view; the scroll wheel zooms.
type BoardWidget struct {
	widget.BaseWidget

	Canvas   *state.Canvas
	pipeline *render.Pipeline
	settings state.ToolSettings

	// OnChange fires after any mutation of the committed history
	// (commit, undo, clear) so the shell can refresh its status line.
	OnChange func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

// NewBoardWidget creates a board around an empty canvas with the pen
// selected.
func NewBoardWidget() *BoardWidget {
	b := &BoardWidget{
		Canvas:   state.NewCanvas(),
		pipeline: render.NewPipeline(),
		settings: state.ToolSettings{
			Tool:    state.ToolPen,
			Color:   color.NRGBA{A: 255},
			Width:   3,
			Opacity: 1,
		},
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) SetTool(t state.Tool)   { b.settings.Tool = t }
func (b *BoardWidget) SetColor(c color.NRGBA) { b.settings.Color = c }
func (b *BoardWidget) SetWidth(w float32)     { b.settings.Width = w }
func (b *BoardWidget) SetOpacity(o float32)   { b.settings.Opacity = o }

// Settings returns the live tool settings the next gesture will snapshot.
func (b *BoardWidget) Settings() state.ToolSettings { return b.settings }

// Undo removes the most recent committed stroke.
func (b *BoardWidget) Undo() {
	if b.Canvas.Undo() {
		b.changed()
	}
	b.Refresh()
}

// ClearAll wipes the whole board.
func (b *BoardWidget) ClearAll() {
	b.Canvas.Clear()
	b.changed()
	b.Refresh()
}

// ResetView restores the identity pan/zoom.
func (b *BoardWidget) ResetView() {
	b.Canvas.ResetView()
	b.Refresh()
}

func (b *BoardWidget) changed() {
	if b.OnChange != nil {
		b.OnChange()
	}
}

// canvasPoint converts a widget-local event position to canvas-local space.
func (b *BoardWidget) canvasPoint(pos fyne.Position) geom.Point {
	return b.Canvas.View().ToCanvas(geom.Pt(pos.X, pos.Y))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.Canvas.PointerDown(b.canvasPoint(e.Position), b.settings)
	b.Refresh()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.Canvas.PointerUp()
	b.changed()
	b.Refresh()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.Canvas.Drawing() {
		b.Canvas.PointerMove(b.canvasPoint(e.Position))
	} else {
		b.Canvas.Pan(e.Dragged.DX, e.Dragged.DY)
	}
	b.Refresh()
}

func (b *BoardWidget) DragEnd() {}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	if e.Scrolled.DY > 0 {
		b.Canvas.Zoom(1.2)
	} else if e.Scrolled.DY < 0 {
		b.Canvas.Zoom(1 / 1.2)
	}
	b.Refresh()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.background = canvas.NewRectangle(boardBackground)
	return r
}

// boardRenderer paints the primitive list as line segments. The background
// rectangle is a presentation choice of this shell; the primitive list
// itself carries no backdrop, so a capture of the primitives alone stays
// fully transparent. Erase primitives paint with the background color.
type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	view := r.board.Canvas.View()
	prims := r.board.pipeline.Scene(r.board.Canvas)

	objects := []fyne.CanvasObject{r.background}
	for _, prim := range prims {
		col := prim.Color
		if prim.Erase {
			col = boardBackground
		}
		col.A = uint8(float32(col.A) * prim.Opacity)

		pts := prim.Path.Flatten(flattenSteps)
		for i := 0; i+1 < len(pts); i++ {
			p0 := view.ToDevice(pts[i])
			p1 := view.ToDevice(pts[i+1])
			seg := canvas.NewLine(col)
			seg.StrokeWidth = prim.Width * view.Scale
			seg.Position1 = fyne.NewPos(p0.X, p0.Y)
			seg.Position2 = fyne.NewPos(p1.X, p1.Y)
			objects = append(objects, seg)
		}
	}
	return objects
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.Canvas.Resize(size.Width, size.Height)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}
