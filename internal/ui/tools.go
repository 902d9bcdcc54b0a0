package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/colornames"

	"InkPad/internal/state"
)

// The color to restore when switching back to the pen from the eraser.
var lastSelectedColor = nrgba(colornames.Black)

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// --- Custom widget for color swatches ---

type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// NewToolbar builds the tool strip: pen/eraser, undo, clear, view reset,
// a color palette, and stroke width and opacity sliders. Tool changes only
// affect the next gesture; the board snapshots settings at pointer-down.
func NewToolbar(board *BoardWidget) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			board.SetTool(state.ToolPen)
			board.SetColor(lastSelectedColor)
		}),
		widget.NewToolbarAction(theme.ContentRemoveIcon(), func() {
			board.SetTool(state.ToolEraser)
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() {
			board.Undo()
		}),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			board.ClearAll()
		}),
		widget.NewToolbarAction(theme.ZoomFitIcon(), func() {
			board.ResetView()
		}),
	)

	onColorTapped := func(c color.NRGBA) {
		lastSelectedColor = c
		board.SetTool(state.ToolPen)
		board.SetColor(c)
	}
	colorBox := container.NewHBox(
		newColorSwatch(nrgba(colornames.Black), onColorTapped),
		newColorSwatch(nrgba(colornames.Red), onColorTapped),
		newColorSwatch(nrgba(colornames.Green), onColorTapped),
		newColorSwatch(nrgba(colornames.Blue), onColorTapped),
		newColorSwatch(nrgba(colornames.Orange), onColorTapped),
	)

	widthSlider := widget.NewSlider(1.0, 50.0)
	widthSlider.SetValue(3.0)
	widthSlider.OnChanged = func(val float64) {
		board.SetWidth(float32(val))
	}

	opacitySlider := widget.NewSlider(0.1, 1.0)
	opacitySlider.Step = 0.05
	opacitySlider.SetValue(1.0)
	opacitySlider.OnChanged = func(val float64) {
		board.SetOpacity(float32(val))
	}

	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)),
		widthSlider, opacitySlider)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size / Opacity:"),
		sliderBox,
		layout.NewSpacer(),
	)
}
