package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingTransformer struct {
	tx, ty, sx, sy float64
}

func (r *recordingTransformer) Translate(x, y float64) { r.tx, r.ty = x, y }
func (r *recordingTransformer) Scale(x, y float64)     { r.sx, r.sy = x, y }

func TestZoomClamp(t *testing.T) {
	tr := NewTransform(800, 600)
	tr.Zoom(100, false)
	assert.Equal(t, 10.0, tr.Scale)

	tr.Zoom(-100, false)
	assert.Equal(t, 0.1, tr.Scale)
}

func TestZoomCentersOnSurface(t *testing.T) {
	tr := NewTransform(800, 600)
	tr.Zoom(1, false)

	assert.Equal(t, 2.0, tr.Scale)
	assert.Equal(t, Vec{X: 400, Y: 300}, tr.ScaleOffset)

	// The surface midpoint maps to the same canvas point before and after.
	x, y := tr.ToCanvas(400, 300)
	assert.InDelta(t, 400, x, 1e-9)
	assert.InDelta(t, 300, y, 1e-9)
}

func TestZoomReset(t *testing.T) {
	tr := NewTransform(800, 600)
	tr.Zoom(3, false)
	tr.Pan(10, 20)
	tr.Zoom(5, true)

	assert.Equal(t, 1.0, tr.Scale)
	assert.Equal(t, Vec{}, tr.ScaleOffset)
	assert.Equal(t, Vec{X: 10, Y: 20}, tr.PanOffset, "reset leaves the pan alone")
}

func TestWheel(t *testing.T) {
	tests := []struct {
		name      string
		event     WheelEvent
		wantPan   Vec
		wantScale float64
	}{
		{"vertical pan", WheelEvent{DeltaY: 30}, Vec{Y: -30}, 1},
		{"horizontal pan", WheelEvent{DeltaY: 30, Shift: true}, Vec{X: -30}, 1},
		{"ctrl zooms in on scroll up", WheelEvent{DeltaY: -100, Ctrl: true}, Vec{}, 1.4},
		{"alt zooms", WheelEvent{DeltaY: 50, Alt: true}, Vec{}, 0.8},
		{"meta zooms", WheelEvent{DeltaY: -25, Meta: true, Shift: true}, Vec{}, 1.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransform(100, 100)
			tr.Wheel(tt.event)
			assert.Equal(t, tt.wantPan, tr.PanOffset)
			assert.InDelta(t, tt.wantScale, tr.Scale, 1e-9)
		})
	}
}

func TestCanvasScreenRoundTrip(t *testing.T) {
	tr := NewTransform(1024, 768)
	tr.Pan(-35, 80)
	tr.Zoom(0.75, false)

	sx, sy := tr.ToScreen(120, -40)
	x, y := tr.ToCanvas(sx, sy)
	assert.InDelta(t, 120, x, 1e-9)
	assert.InDelta(t, -40, y, 1e-9)
}

func TestApply(t *testing.T) {
	tr := NewTransform(200, 100)
	tr.Pan(10, 5)
	tr.Zoom(1, false)

	rec := &recordingTransformer{}
	tr.Apply(rec)

	assert.Equal(t, 2.0, rec.sx)
	assert.Equal(t, 2.0, rec.sy)
	assert.Equal(t, 10*2-100.0, rec.tx)
	assert.Equal(t, 5*2-50.0, rec.ty)
}

func TestResizeKeepsCentering(t *testing.T) {
	tr := NewTransform(100, 100)
	tr.Zoom(1, false)
	tr.Resize(400, 200)

	assert.Equal(t, Vec{X: 200, Y: 100}, tr.ScaleOffset)
	w, h := tr.Size()
	assert.Equal(t, 400.0, w)
	assert.Equal(t, 200.0, h)
}
