// Package board turns pointer, wheel and keyboard input into element edits,
// history entries and view changes.
package board

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"unicode/utf8"

	"SketchBoard/internal/render"
	"SketchBoard/internal/state"
	"SketchBoard/internal/view"
)

// Rough advance of one glyph relative to the font size, used to size text
// boxes while typing.
const glyphAdvance = 0.6

// Pointer is a primary-button input in screen coordinates.
type Pointer struct {
	X, Y     float64
	Pressure float64
}

// KeyEvent is a named key together with the held modifiers. Key uses the
// names "Enter", "Escape", "Backspace" or the key's letter.
type KeyEvent struct {
	Key   string
	Ctrl  bool
	Meta  bool
	Shift bool
}

// Style is applied to every element the board creates.
type Style struct {
	StrokeColor string
	FillColor   string
	StrokeWidth float64
	Roughness   float64
	FontFamily  string
}

// Board owns the editing session of one canvas.
type Board struct {
	mu       sync.Mutex
	factory  *state.Factory
	history  *state.History
	view     *view.Transform
	renderer *render.Renderer

	tool  state.Kind
	style Style

	draft    state.Element
	drawing  bool
	editing  bool
	originX  float64
	originY  float64
	text     []rune
	onChange func()

	newID   func() string
	newSeed func() int64
}

// New returns a board drawing with tool and style.
func New(f *state.Factory, h *state.History, t *view.Transform, r *render.Renderer, tool state.Kind, style Style) *Board {
	return &Board{
		factory:  f,
		history:  h,
		view:     t,
		renderer: r,
		tool:     tool,
		style:    style,
		newID:    state.NewID,
		newSeed:  state.NewSeed,
	}
}

// OnChange registers fn to be called after every edit or view change.
func (b *Board) OnChange(fn func()) {
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

func (b *Board) changed() {
	b.mu.Lock()
	fn := b.onChange
	b.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Tool returns the active tool.
func (b *Board) Tool() state.Kind {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tool
}

// SetTool switches the active tool. A text being edited is committed first.
func (b *Board) SetTool(k state.Kind) {
	b.mu.Lock()
	b.commitTextLocked()
	b.tool = k
	b.mu.Unlock()
	b.changed()
}

// Style returns the style used for new elements.
func (b *Board) Style() Style {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.style
}

// SetStyle replaces the style used for new elements.
func (b *Board) SetStyle(s Style) {
	b.mu.Lock()
	b.style = s
	b.mu.Unlock()
}

// Editing reports whether a text element is being typed.
func (b *Board) Editing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.editing
}

// PointerDown starts a new element at p.
func (b *Board) PointerDown(p Pointer) {
	b.mu.Lock()
	b.commitTextLocked()
	b.dropDraftLocked()

	x, y := b.view.ToCanvas(p.X, p.Y)
	el, err := b.factory.Create(b.newID(), b.tool, x, y, x, y, state.Options{
		StrokeColor: b.style.StrokeColor,
		FillColor:   b.style.FillColor,
		StrokeWidth: b.style.StrokeWidth,
		Roughness:   b.style.Roughness,
		Seed:        b.newSeed(),
		Pressure:    p.Pressure,
	})
	if err != nil {
		b.mu.Unlock()
		log.Printf("[BOARD] Cannot start element: %v", err)
		return
	}

	b.originX, b.originY = x, y
	b.draft = el
	if b.tool == state.KindText {
		b.editing = true
		b.text = b.text[:0]
		el, err = b.updateTextLocked()
		if err == nil {
			b.draft = el
		}
	} else {
		b.drawing = true
	}
	b.mu.Unlock()
	b.changed()
}

// PointerMove updates the shape or stroke being drawn.
func (b *Board) PointerMove(p Pointer) {
	b.mu.Lock()
	if !b.drawing || b.draft == nil {
		b.mu.Unlock()
		return
	}
	x, y := b.view.ToCanvas(p.X, p.Y)
	el, err := b.factory.Update(b.draft, state.UpdateOptions{
		Kind:     b.draft.Kind(),
		X1:       b.originX,
		Y1:       b.originY,
		X2:       x,
		Y2:       y,
		Pressure: p.Pressure,
	})
	if err != nil {
		b.mu.Unlock()
		log.Printf("[BOARD] Cannot update %s: %v", b.draft.Header().ID, err)
		return
	}
	b.draft = el
	b.mu.Unlock()
	b.changed()
}

// PointerUp finishes the drawn element and records it in the history.
func (b *Board) PointerUp(p Pointer) {
	b.mu.Lock()
	if !b.drawing || b.draft == nil {
		b.mu.Unlock()
		return
	}
	el := b.draft
	b.draft = nil
	b.drawing = false
	b.history.Push(b.history.Current().Append(el))
	b.mu.Unlock()
	b.changed()
}

// Cancel drops the element being drawn or typed without touching the
// history.
func (b *Board) Cancel() {
	b.mu.Lock()
	had := b.draft != nil
	b.dropDraftLocked()
	b.mu.Unlock()
	if had {
		b.changed()
	}
}

func (b *Board) dropDraftLocked() {
	b.draft = nil
	b.drawing = false
	b.editing = false
	b.text = b.text[:0]
}

// TypeRune appends r to the text being edited.
func (b *Board) TypeRune(r rune) {
	b.mu.Lock()
	if !b.editing {
		b.mu.Unlock()
		return
	}
	b.text = append(b.text, r)
	b.retypeLocked()
	b.mu.Unlock()
	b.changed()
}

// Backspace removes the last rune of the text being edited.
func (b *Board) Backspace() {
	b.mu.Lock()
	if !b.editing || len(b.text) == 0 {
		b.mu.Unlock()
		return
	}
	b.text = b.text[:len(b.text)-1]
	b.retypeLocked()
	b.mu.Unlock()
	b.changed()
}

func (b *Board) retypeLocked() {
	el, err := b.updateTextLocked()
	if err != nil {
		log.Printf("[BOARD] Cannot update text: %v", err)
		return
	}
	b.draft = el
}

func (b *Board) updateTextLocked() (state.Element, error) {
	t, ok := b.draft.(state.Text)
	if !ok {
		return nil, fmt.Errorf("draft %T is not text: %w", b.draft, state.ErrUnsupportedShapeKind)
	}
	size := t.FontSize
	width := float64(len(b.text)) * size * glyphAdvance
	return b.factory.Update(t, state.UpdateOptions{
		Kind: state.KindText,
		X1:   t.X1,
		Y1:   t.Y1,
		X2:   t.X1 + width,
		Y2:   t.Y1 + size,
		Text: string(b.text),
		Font: Font(size, b.style.FontFamily),
	})
}

// Font formats a font descriptor for the renderer.
func Font(size float64, family string) string {
	if family == "" {
		family = "sans-serif"
	}
	return fmt.Sprintf("%gpx %s", size, family)
}

// commitTextLocked pushes the edited text unless it is blank.
func (b *Board) commitTextLocked() {
	if !b.editing {
		return
	}
	el := b.draft
	text := string(b.text)
	b.dropDraftLocked()
	if el == nil || strings.TrimSpace(text) == "" {
		return
	}
	b.history.Push(b.history.Current().Append(el))
	log.Printf("[BOARD] Committed text %s (%d runes)", el.Header().ID, utf8.RuneCountInString(text))
}

// Key handles editing keys and the undo/redo shortcuts. It reports whether
// the key was consumed.
func (b *Board) Key(e KeyEvent) bool {
	if e.Ctrl || e.Meta {
		if !strings.EqualFold(e.Key, "z") {
			return false
		}
		if e.Shift {
			b.Redo()
		} else {
			b.Undo()
		}
		return true
	}

	switch e.Key {
	case "Enter":
		b.mu.Lock()
		editing := b.editing
		b.commitTextLocked()
		b.mu.Unlock()
		if editing {
			b.changed()
		}
		return editing
	case "Escape":
		if b.Editing() || b.drafting() {
			b.Cancel()
			return true
		}
	case "Backspace":
		if b.Editing() {
			b.Backspace()
			return true
		}
	}
	return false
}

func (b *Board) drafting() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.draft != nil
}

// Wheel zooms or pans the view.
func (b *Board) Wheel(e view.WheelEvent) {
	b.mu.Lock()
	b.view.Wheel(e)
	b.mu.Unlock()
	b.changed()
}

// Zoom changes the view scale by delta; reset returns to 100%.
func (b *Board) Zoom(delta float64, reset bool) {
	b.mu.Lock()
	b.view.Zoom(delta, reset)
	b.mu.Unlock()
	b.changed()
}

// Scale returns the current view scale.
func (b *Board) Scale() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.view.Scale
}

// Resize tells the view the size of the drawing surface.
func (b *Board) Resize(width, height float64) {
	b.mu.Lock()
	b.view.Resize(width, height)
	b.mu.Unlock()
}

// Undo steps back one history entry. A text being edited is committed first;
// an unfinished shape or stroke is dropped.
func (b *Board) Undo() bool {
	b.mu.Lock()
	b.commitTextLocked()
	b.dropDraftLocked()
	ok := b.history.Undo()
	b.mu.Unlock()
	b.changed()
	return ok
}

// Redo steps forward one history entry.
func (b *Board) Redo() bool {
	b.mu.Lock()
	b.commitTextLocked()
	b.dropDraftLocked()
	ok := b.history.Redo()
	b.mu.Unlock()
	b.changed()
	return ok
}

// CanUndo reports whether Undo would move.
func (b *Board) CanUndo() bool { return b.history.CanUndo() }

// CanRedo reports whether Redo would move.
func (b *Board) CanRedo() bool { return b.history.CanRedo() }

// DeleteAll clears the canvas as an undoable edit.
func (b *Board) DeleteAll() {
	b.mu.Lock()
	b.dropDraftLocked()
	b.history.DeleteAll()
	b.mu.Unlock()
	log.Println("[BOARD] Cleared canvas")
	b.changed()
}

// ResetView moves the view back to the canvas origin. Zoom and history are
// left alone.
func (b *Board) ResetView() {
	b.mu.Lock()
	b.view.PanOffset = view.Vec{}
	b.mu.Unlock()
	b.changed()
}

// Reset starts a new canvas: all history is forgotten and the view returns
// to its initial state.
func (b *Board) Reset() {
	b.mu.Lock()
	b.dropDraftLocked()
	b.history.Reset()
	b.view.Zoom(0, true)
	b.view.PanOffset = view.Vec{}
	b.mu.Unlock()
	b.changed()
}

// Elements returns the elements of the current history entry followed by
// the element being drawn, if any.
func (b *Board) Elements() []state.Element {
	b.mu.Lock()
	defer b.mu.Unlock()
	els := b.history.Current().Elements()
	if b.draft != nil {
		els = append(els, b.draft)
	}
	return els
}

// Draw renders the board through the current view.
func (b *Board) Draw(s render.Surface) {
	els := b.Elements()
	b.mu.Lock()
	t := *b.view
	b.mu.Unlock()
	b.renderer.DrawScene(s, &t, els)
}
