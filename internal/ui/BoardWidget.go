package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/board"
	"SketchBoard/internal/raster"
	"SketchBoard/internal/stroke"
	"SketchBoard/internal/view"
)

// BoardWidget shows a board and feeds it mouse, wheel and keyboard input.
type BoardWidget struct {
	widget.BaseWidget
	board      *board.Board
	raster     *canvas.Raster
	background color.Color
	statusBar  *widget.Label
	last       fyne.Position
	pressed    bool
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ fyne.Focusable = (*BoardWidget)(nil)
var _ fyne.Shortcutable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

// NewBoardWidget wraps b. The canvas is cleared to background before every
// frame.
func NewBoardWidget(b *board.Board, background color.Color) *BoardWidget {
	w := &BoardWidget{
		board:      b,
		background: background,
		statusBar:  widget.NewLabel("Ready"),
	}
	w.raster = canvas.NewRaster(w.draw)
	w.raster.SetMinSize(fyne.NewSize(300, 300))
	b.OnChange(w.changed)
	w.ExtendBaseWidget(w)
	return w
}

// Board returns the wrapped board.
func (w *BoardWidget) Board() *board.Board { return w.board }

// StatusBar is the label reporting zoom and history state.
func (w *BoardWidget) StatusBar() *widget.Label { return w.statusBar }

func (w *BoardWidget) changed() {
	fyne.Do(func() {
		w.statusBar.SetText(w.status())
		w.raster.Refresh()
	})
}

func (w *BoardWidget) status() string {
	scale := int(math.Round(w.board.Scale() * 100))
	return fmt.Sprintf("%s | %d%% | %d elements", w.board.Tool(), scale, len(w.board.Elements()))
}

// SetStatus replaces the status text.
func (w *BoardWidget) SetStatus(text string) {
	fyne.Do(func() { w.statusBar.SetText(text) })
}

// draw renders one frame at the raster's pixel size. Board coordinates are
// in fyne units, so the pixel density is applied first.
func (w *BoardWidget) draw(pw, ph int) image.Image {
	s := raster.New(pw, ph, w.background)
	size := w.Size()
	if size.Width > 0 && size.Height > 0 {
		s.Scale(float64(pw)/float64(size.Width), float64(ph)/float64(size.Height))
	}
	w.board.Draw(s)
	return s.Image()
}

// Resize keeps the board's zoom center in the middle of the widget.
func (w *BoardWidget) Resize(size fyne.Size) {
	w.BaseWidget.Resize(size)
	w.board.Resize(float64(size.Width), float64(size.Height))
}

func pointer(pos fyne.Position) board.Pointer {
	return board.Pointer{X: float64(pos.X), Y: float64(pos.Y), Pressure: stroke.DefaultPressure}
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(w); c != nil {
		c.Focus(w)
	}
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.pressed = true
	w.last = e.Position
	w.board.PointerDown(pointer(e.Position))
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.release(e.Position)
}

func (w *BoardWidget) release(pos fyne.Position) {
	if !w.pressed {
		return
	}
	w.pressed = false
	w.board.PointerUp(pointer(pos))
}

func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !w.pressed {
		return
	}
	w.last = e.Position
	w.board.PointerMove(pointer(e.Position))
}

func (w *BoardWidget) DragEnd() {
	w.release(w.last)
}

func (w *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	var mods fyne.KeyModifier
	if d, ok := fyne.CurrentApp().Driver().(desktop.Driver); ok {
		mods = d.CurrentKeyModifiers()
	}
	w.board.Wheel(wheelEvent(e.Scrolled, mods))
}

// wheelEvent converts a fyne scroll into a browser-style wheel event. Some
// drivers report shift+wheel as a horizontal delta only; that becomes a
// shifted vertical delta.
func wheelEvent(d fyne.Delta, mods fyne.KeyModifier) view.WheelEvent {
	ev := view.WheelEvent{
		DeltaY: -float64(d.DY),
		Ctrl:   mods&fyne.KeyModifierControl != 0,
		Alt:    mods&fyne.KeyModifierAlt != 0,
		Meta:   mods&fyne.KeyModifierSuper != 0,
		Shift:  mods&fyne.KeyModifierShift != 0,
	}
	if d.DY == 0 && d.DX != 0 {
		ev.DeltaY = -float64(d.DX)
		ev.Shift = true
	}
	return ev
}

func (w *BoardWidget) FocusGained() {}
func (w *BoardWidget) FocusLost()   {}

func (w *BoardWidget) TypedRune(r rune) {
	w.board.TypeRune(r)
}

func (w *BoardWidget) TypedKey(e *fyne.KeyEvent) {
	switch e.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		w.board.Key(board.KeyEvent{Key: "Enter"})
	case fyne.KeyEscape:
		w.board.Key(board.KeyEvent{Key: "Escape"})
	case fyne.KeyBackspace:
		w.board.Key(board.KeyEvent{Key: "Backspace"})
	}
}

func (w *BoardWidget) TypedShortcut(s fyne.Shortcut) {
	cs, ok := s.(*desktop.CustomShortcut)
	if !ok {
		return
	}
	w.board.Key(keyEvent(cs))
}

func keyEvent(cs *desktop.CustomShortcut) board.KeyEvent {
	return board.KeyEvent{
		Key:   string(cs.KeyName),
		Ctrl:  cs.Modifier&fyne.KeyModifierControl != 0,
		Meta:  cs.Modifier&fyne.KeyModifierSuper != 0,
		Shift: cs.Modifier&fyne.KeyModifierShift != 0,
	}
}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.raster)
}
