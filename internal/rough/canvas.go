package rough

import (
	"image/color"
	"log"

	"SketchBoard/internal/colorutil"
)

// Pen is the subset of a 2D drawing context a Drawable is replayed on.
type Pen interface {
	Push()
	Pop()
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetLineWidth(w float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	Stroke()
	Fill()
}

// Canvas replays Drawables onto a Pen.
type Canvas struct{}

// NewCanvas returns a Canvas.
func NewCanvas() *Canvas { return &Canvas{} }

// Draw paints d. Fill sets are filled with the fill color, path sets are
// stroked with the stroke color and width. A nil Drawable draws nothing.
func (c *Canvas) Draw(p Pen, d *Drawable) {
	if d == nil {
		return
	}

	for _, set := range d.Sets {
		switch set.Kind {
		case SetFillPath:
			if colorutil.IsNone(d.Options.Fill) {
				continue
			}
			p.Push()
			p.SetFillColor(resolve(d.Options.Fill))
			replay(p, set.Ops)
			p.ClosePath()
			p.Fill()
			p.Pop()
		case SetPath:
			if colorutil.IsNone(d.Options.Stroke) {
				continue
			}
			p.Push()
			p.SetStrokeColor(resolve(d.Options.Stroke))
			p.SetLineWidth(d.Options.StrokeWidth)
			replay(p, set.Ops)
			p.Stroke()
			p.Pop()
		}
	}
}

func resolve(s string) color.Color {
	c, err := colorutil.Parse(s)
	if err != nil {
		log.Printf("[ROUGH] %v, using black", err)
		return colorutil.Black
	}
	return c
}

func replay(p Pen, ops []Op) {
	for _, op := range ops {
		switch op.Kind {
		case OpMove:
			p.MoveTo(op.Data[0], op.Data[1])
		case OpLineTo:
			p.LineTo(op.Data[0], op.Data[1])
		case OpCurveTo:
			p.CubicTo(op.Data[0], op.Data[1], op.Data[2], op.Data[3], op.Data[4], op.Data[5])
		}
	}
}
