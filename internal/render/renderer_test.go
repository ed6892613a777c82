package render

import (
	"fmt"
	"image/color"
	"testing"

	"SketchBoard/internal/rough"
	"SketchBoard/internal/state"
	"SketchBoard/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	calls []string
	fill  color.Color
	line  color.Color
	font  string
}

func (f *fakeSurface) log(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeSurface) Push()                        { f.log("push") }
func (f *fakeSurface) Pop()                         { f.log("pop") }
func (f *fakeSurface) SetStrokeColor(c color.Color) { f.line = c; f.log("strokeColor") }
func (f *fakeSurface) SetFillColor(c color.Color)   { f.fill = c; f.log("fillColor") }
func (f *fakeSurface) SetLineWidth(w float64)       { f.log("lineWidth %g", w) }
func (f *fakeSurface) MoveTo(x, y float64)          { f.log("move") }
func (f *fakeSurface) LineTo(x, y float64)          { f.log("line") }
func (f *fakeSurface) CubicTo(_, _, _, _, _, _ float64) {
	f.log("cubic")
}
func (f *fakeSurface) QuadraticTo(_, _, _, _ float64) { f.log("quad") }
func (f *fakeSurface) ClosePath()                     { f.log("close") }
func (f *fakeSurface) Stroke()                        { f.log("stroke") }
func (f *fakeSurface) Fill()                          { f.log("fill") }
func (f *fakeSurface) Translate(x, y float64)         { f.log("translate %g %g", x, y) }
func (f *fakeSurface) Scale(x, y float64)             { f.log("scale %g %g", x, y) }
func (f *fakeSurface) SetFont(desc string)            { f.font = desc; f.log("font") }
func (f *fakeSurface) FillText(s string, x, y float64) {
	f.log("text %s %g %g", s, x, y)
}

type fakeRough struct {
	drawn []*rough.Drawable
}

func (r *fakeRough) Draw(_ rough.Pen, d *rough.Drawable) { r.drawn = append(r.drawn, d) }

type unknownElement struct{ state.Meta }

func (unknownElement) Kind() state.Kind { return "triangle" }

func newFactory() *state.Factory {
	return state.NewFactory(rough.NewGenerator())
}

func TestDrawShapeForwardsDrawable(t *testing.T) {
	el, err := newFactory().Create("r", state.KindRectangle, 0, 0, 10, 10, state.Options{StrokeColor: "red", StrokeWidth: 1, Seed: 1})
	require.NoError(t, err)

	rr := &fakeRough{}
	s := &fakeSurface{}
	New(rr).Draw(s, el)

	require.Len(t, rr.drawn, 1)
	assert.Same(t, el.(state.Rectangle).Drawable, rr.drawn[0])
	assert.Equal(t, color.RGBA{R: 255, A: 255}, s.fill)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, s.line)
}

func TestDrawFreedrawFillsPath(t *testing.T) {
	f := newFactory()
	el, err := f.Create("f", state.KindFreedraw, 0, 0, 0, 0, state.Options{StrokeColor: "black", StrokeWidth: 1})
	require.NoError(t, err)
	for i := 1; i < 10; i++ {
		el, err = f.Update(el, state.UpdateOptions{X2: float64(i * 10), Y2: float64(i * 3), Pressure: 0.5})
		require.NoError(t, err)
	}

	s := &fakeSurface{}
	New(&fakeRough{}).Draw(s, el)

	require.NotEmpty(t, s.calls)
	assert.Equal(t, []string{"fillColor", "strokeColor", "move"}, s.calls[:3])
	assert.Contains(t, s.calls, "quad")
	assert.Equal(t, "close", s.calls[len(s.calls)-2])
	assert.Equal(t, "fill", s.calls[len(s.calls)-1])
}

func TestDrawText(t *testing.T) {
	f := newFactory()
	el, err := f.Create("t", state.KindText, 5, 7, 5, 7, state.Options{StrokeColor: "blue", StrokeWidth: 2})
	require.NoError(t, err)
	el, err = f.Update(el, state.UpdateOptions{X1: 5, Y1: 7, X2: 50, Y2: 28, Text: "hi", Font: "21px sans-serif"})
	require.NoError(t, err)

	s := &fakeSurface{}
	New(&fakeRough{}).Draw(s, el)

	assert.Equal(t, "21px sans-serif", s.font)
	assert.Equal(t, "text hi 5 7", s.calls[len(s.calls)-1])
	assert.Equal(t, color.RGBA{B: 255, A: 255}, s.fill)
}

func TestDrawUnknownKindIsSilent(t *testing.T) {
	s := &fakeSurface{}
	rr := &fakeRough{}
	r := New(rr)

	assert.NotPanics(t, func() {
		r.Draw(s, unknownElement{state.Meta{ID: "x", StrokeColor: "red"}})
		r.Draw(s, nil)
	})
	assert.Empty(t, s.calls)
	assert.Empty(t, rr.drawn)
}

func TestDrawBadColorFallsBackToBlack(t *testing.T) {
	s := &fakeSurface{}
	New(&fakeRough{}).Draw(s, state.Text{Meta: state.Meta{ID: "t", StrokeColor: "sparkly"}})
	assert.Equal(t, color.RGBA{A: 255}, s.fill)
}

func TestDrawSceneAppliesTransform(t *testing.T) {
	tr := view.NewTransform(200, 100)
	tr.Zoom(1, false)

	s := &fakeSurface{}
	els := []state.Element{
		state.Text{Meta: state.Meta{ID: "a", StrokeColor: "black"}, Text: "a"},
		state.Text{Meta: state.Meta{ID: "b", StrokeColor: "black"}, Text: "b", X1: 3},
	}
	New(&fakeRough{}).DrawScene(s, tr, els)

	assert.Equal(t, "push", s.calls[0])
	assert.Equal(t, "translate -100 -50", s.calls[1])
	assert.Equal(t, "scale 2 2", s.calls[2])
	assert.Contains(t, s.calls, "text a 0 0")
	assert.Contains(t, s.calls, "text b 3 0")
	assert.Equal(t, "pop", s.calls[len(s.calls)-1])
}

func TestFreedrawPathIsCachedAcrossFrames(t *testing.T) {
	f := newFactory()
	el, _ := f.Create("f", state.KindFreedraw, 0, 0, 0, 0, state.Options{StrokeWidth: 1})
	el, _ = f.Update(el, state.UpdateOptions{X2: 30, Y2: 30, Pressure: 0.5})
	fd := el.(state.Freedraw)

	first := fd.Path(FreedrawOptions(fd.StrokeWidth))
	second := fd.Path(FreedrawOptions(fd.StrokeWidth))
	require.NotEmpty(t, first.Cmds)
	assert.Same(t, &first.Cmds[0], &second.Cmds[0])
}
