package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/board"
	"SketchBoard/internal/colorutil"
	"SketchBoard/internal/state"
)

// zoomStep is the scale change of the zoom buttons.
const zoomStep = 0.1

// noFill is the fill choice that leaves shapes hollow.
const noFill = "none"

var palette = []color.Color{
	color.Black,
	color.White,
	color.NRGBA{R: 255, A: 255},
	color.NRGBA{G: 200, A: 255},
	color.NRGBA{B: 255, A: 255},
	color.NRGBA{R: 255, G: 200, A: 255},
}

var fills = []string{noFill, "red", "green", "blue", "yellow", "gray"}

type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

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

// Toolbar holds the controls that edit the board's tool and style.
type Toolbar struct {
	board    *BoardWidget
	window   fyne.Window
	exporter *Exporter

	tools     *widget.RadioGroup
	fill      *widget.Select
	stroke    *widget.Slider
	roughness *widget.Slider
}

// NewToolbar builds the toolbar for w inside window.
func NewToolbar(w *BoardWidget, window fyne.Window, exporter *Exporter) *Toolbar {
	t := &Toolbar{board: w, window: window, exporter: exporter}
	b := w.Board()
	style := b.Style()

	names := make([]string, len(state.Kinds))
	for i, k := range state.Kinds {
		names[i] = string(k)
	}
	t.tools = widget.NewRadioGroup(names, func(s string) {
		k, err := state.ParseKind(s)
		if err != nil {
			return
		}
		b.SetTool(k)
	})
	t.tools.Horizontal = true
	t.tools.Required = true
	t.tools.SetSelected(string(b.Tool()))

	t.fill = widget.NewSelect(fills, func(s string) {
		if s == noFill {
			s = ""
		}
		t.updateStyle(func(st *board.Style) { st.FillColor = s })
	})
	if style.FillColor == "" {
		t.fill.SetSelected(noFill)
	} else {
		t.fill.SetSelected(style.FillColor)
	}

	t.stroke = widget.NewSlider(1, 10)
	t.stroke.Step = 1
	t.stroke.SetValue(style.StrokeWidth)
	t.stroke.OnChanged = func(v float64) {
		t.updateStyle(func(st *board.Style) { st.StrokeWidth = v })
	}

	t.roughness = widget.NewSlider(0, 3)
	t.roughness.Step = 0.5
	t.roughness.SetValue(style.Roughness)
	t.roughness.OnChanged = func(v float64) {
		t.updateStyle(func(st *board.Style) { st.Roughness = v })
	}
	return t
}

func (t *Toolbar) updateStyle(fn func(*board.Style)) {
	b := t.board.Board()
	st := b.Style()
	fn(&st)
	b.SetStyle(st)
}

// SetStrokeColor selects c for new elements.
func (t *Toolbar) SetStrokeColor(c color.Color) {
	t.updateStyle(func(st *board.Style) { st.StrokeColor = colorutil.Hex(c) })
}

func (t *Toolbar) confirmNewCanvas() {
	dialog.ShowConfirm("New Canvas", "Start over? The current canvas and its undo history are discarded.",
		func(ok bool) {
			if ok {
				t.board.Board().Reset()
			}
		}, t.window)
}

func (t *Toolbar) confirmDeleteAll() {
	dialog.ShowConfirm("Delete All", "Remove every element from the canvas? This can be undone.",
		func(ok bool) {
			if ok {
				t.board.Board().DeleteAll()
			}
		}, t.window)
}

// Object lays the controls out in one row.
func (t *Toolbar) Object() fyne.CanvasObject {
	b := t.board.Board()
	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() { b.Undo() }),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() { b.Redo() }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ZoomOutIcon(), func() { b.Zoom(-zoomStep, false) }),
		widget.NewToolbarAction(theme.ZoomFitIcon(), func() { b.Zoom(0, true) }),
		widget.NewToolbarAction(theme.ZoomInIcon(), func() { b.Zoom(zoomStep, false) }),
		widget.NewToolbarAction(theme.HomeIcon(), b.ResetView),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentCreateIcon(), t.confirmNewCanvas),
		widget.NewToolbarAction(theme.DeleteIcon(), t.confirmDeleteAll),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { t.exporter.Show(t.window) }),
	)

	swatches := container.NewHBox()
	for _, c := range palette {
		swatches.Add(newColorSwatch(c, t.SetStrokeColor))
	}

	return container.NewVBox(
		container.NewHBox(
			widget.NewLabel("Tool:"),
			t.tools,
			layout.NewSpacer(),
			actions,
		),
		container.NewHBox(
			widget.NewLabel("Color:"),
			swatches,
			widget.NewSeparator(),
			widget.NewLabel("Fill:"),
			t.fill,
			widget.NewSeparator(),
			widget.NewLabel("Size:"),
			container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), t.stroke),
			widget.NewLabel("Roughness:"),
			container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), t.roughness),
			layout.NewSpacer(),
		),
	)
}
