// Package view maps between screen space and canvas space.
package view

import "math"

const (
	MinScale = 0.1
	MaxScale = 10
	// WheelZoomFactor converts a wheel delta into a scale delta. It is
	// negative so that scrolling up zooms in.
	WheelZoomFactor = -0.004
)

// Vec is an offset in screen pixels.
type Vec struct {
	X, Y float64
}

// Transformer is the part of a drawing context a Transform is applied to.
type Transformer interface {
	Translate(x, y float64)
	Scale(sx, sy float64)
}

// WheelEvent is a mouse wheel input together with the held modifiers.
type WheelEvent struct {
	DeltaY float64
	Ctrl   bool
	Alt    bool
	Meta   bool
	Shift  bool
}

// Transform holds the zoom and pan of the canvas. ScaleOffset is derived
// from the surface size so that zooming stays centered on the surface.
type Transform struct {
	Scale       float64
	PanOffset   Vec
	ScaleOffset Vec

	width, height float64
}

// NewTransform returns an identity transform for a surface of the given
// size.
func NewTransform(width, height float64) *Transform {
	return &Transform{Scale: 1, width: width, height: height}
}

// Resize records the drawing-surface size used to center zooming. The
// scale offset follows the new midpoint.
func (t *Transform) Resize(width, height float64) {
	t.width, t.height = width, height
	t.ScaleOffset = t.centerOffset(t.Scale)
}

// Size returns the drawing-surface size.
func (t *Transform) Size() (width, height float64) {
	return t.width, t.height
}

// Zoom changes the scale by delta, clamped to [MinScale, MaxScale]. With
// reset the transform goes back to scale 1 and delta is ignored.
func (t *Transform) Zoom(delta float64, reset bool) {
	if reset {
		t.Scale = 1
		t.ScaleOffset = Vec{}
		return
	}
	t.Scale = math.Min(math.Max(t.Scale+delta, MinScale), MaxScale)
	t.ScaleOffset = t.centerOffset(t.Scale)
}

func (t *Transform) centerOffset(scale float64) Vec {
	return Vec{X: t.width / 2 * (scale - 1), Y: t.height / 2 * (scale - 1)}
}

// Pan moves the canvas by (dx, dy) screen pixels.
func (t *Transform) Pan(dx, dy float64) {
	t.PanOffset.X += dx
	t.PanOffset.Y += dy
}

// Wheel routes a wheel event: ctrl, alt or meta zoom, shift pans
// horizontally, anything else pans vertically.
func (t *Transform) Wheel(e WheelEvent) {
	switch {
	case e.Ctrl || e.Alt || e.Meta:
		t.Zoom(e.DeltaY*WheelZoomFactor, false)
	case e.Shift:
		t.Pan(-e.DeltaY, 0)
	default:
		t.Pan(0, -e.DeltaY)
	}
}

// ToCanvas maps a point on the surface to canvas coordinates.
func (t *Transform) ToCanvas(x, y float64) (float64, float64) {
	return (x - t.PanOffset.X*t.Scale + t.ScaleOffset.X) / t.Scale,
		(y - t.PanOffset.Y*t.Scale + t.ScaleOffset.Y) / t.Scale
}

// ToScreen maps a canvas point onto the surface; it is the inverse of
// ToCanvas.
func (t *Transform) ToScreen(x, y float64) (float64, float64) {
	return x*t.Scale + t.PanOffset.X*t.Scale - t.ScaleOffset.X,
		y*t.Scale + t.PanOffset.Y*t.Scale - t.ScaleOffset.Y
}

// Apply sets up tr so that canvas coordinates land where ToScreen puts them.
func (t *Transform) Apply(tr Transformer) {
	tr.Translate(t.PanOffset.X*t.Scale-t.ScaleOffset.X, t.PanOffset.Y*t.Scale-t.ScaleOffset.Y)
	tr.Scale(t.Scale, t.Scale)
}
