package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"SketchBoard/internal/board"
	"SketchBoard/internal/colorutil"
	"SketchBoard/internal/config"
	"SketchBoard/internal/render"
)

// RunApp opens the main window on b and blocks until it is closed.
func RunApp(b *board.Board, r *render.Renderer, cfg config.Config) {
	myApp := app.NewWithID("io.sketchboard")
	myWindow := myApp.NewWindow("SketchBoard")
	myWindow.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	background := colorutil.ParseOr(cfg.Window.Background, colorutil.White)
	bw := NewBoardWidget(b, background)
	toolbar := NewToolbar(bw, myWindow, NewExporter(bw, r))

	addShortcuts(myWindow.Canvas(), bw)

	content := container.NewBorder(toolbar.Object(), bw.StatusBar(), nil, nil, bw)
	myWindow.SetContent(content)
	myWindow.Canvas().Focus(bw)
	myWindow.ShowAndRun()
}

// addShortcuts routes undo and redo to the board while another widget has
// focus.
func addShortcuts(c fyne.Canvas, bw *BoardWidget) {
	for _, mod := range []fyne.KeyModifier{fyne.KeyModifierControl, fyne.KeyModifierSuper} {
		for _, sc := range []*desktop.CustomShortcut{
			{KeyName: fyne.KeyZ, Modifier: mod},
			{KeyName: fyne.KeyZ, Modifier: mod | fyne.KeyModifierShift},
		} {
			c.AddShortcut(sc, bw.TypedShortcut)
		}
	}
}
