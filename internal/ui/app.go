package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RunApp builds the window around the drawing board and blocks until the
// window closes.
func RunApp() {
	myApp := app.New()
	myWindow := myApp.NewWindow("InkPad")
	myWindow.Resize(fyne.NewSize(1024, 768))

	board := NewBoardWidget()
	toolbar := NewToolbar(board)

	status := widget.NewLabel("Ready")
	board.OnChange = func() {
		status.SetText(fmt.Sprintf("%d strokes", board.Canvas.Len()))
	}

	content := container.NewBorder(toolbar, status, nil, nil, board)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
