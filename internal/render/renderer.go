// Package render paints elements onto a drawing surface.
package render

import (
	"log"

	"SketchBoard/internal/colorutil"
	"SketchBoard/internal/rough"
	"SketchBoard/internal/state"
	"SketchBoard/internal/stroke"
	"SketchBoard/internal/view"
)

// Surface is a 2D drawing context.
type Surface interface {
	rough.Pen
	view.Transformer
	QuadraticTo(cx, cy, x, y float64)
	// SetFont applies a CSS-like font descriptor such as "21px sans-serif".
	SetFont(desc string)
	// FillText draws s with the fill color; y is the top of the text.
	FillText(s string, x, y float64)
}

// DrawableRenderer replays a cached rough drawable. *rough.Canvas
// implements it.
type DrawableRenderer interface {
	Draw(p rough.Pen, d *rough.Drawable)
}

// Renderer draws elements. It is not safe for concurrent draws into the same
// surface; callers render at most once per frame.
type Renderer struct {
	rough DrawableRenderer
}

// New returns a Renderer that hands shape drawables to rr.
func New(rr DrawableRenderer) *Renderer {
	return &Renderer{rough: rr}
}

// FreedrawOptions are the outline parameters used for freehand strokes of
// the given width.
func FreedrawOptions(size float64) stroke.Options {
	return stroke.Options{
		Size:             size,
		Smoothing:        0.5,
		Thinning:         0.5,
		Streamline:       0.5,
		Easing:           stroke.Linear,
		SimulatePressure: true,
		Start:            stroke.Cap{Taper: 0, Cap: true},
		End:              stroke.Cap{Taper: 0, Cap: true},
	}
}

// Draw paints el onto s. Elements of unknown kinds are skipped without
// touching the surface, so one bad element never breaks a frame; the
// factory, by contrast, rejects them.
func (r *Renderer) Draw(s Surface, el state.Element) {
	switch e := el.(type) {
	case state.Line:
		r.drawShape(s, e.Shape)
	case state.Rectangle:
		r.drawShape(s, e.Shape)
	case state.Ellipse:
		r.drawShape(s, e.Shape)
	case state.Freedraw:
		setColors(s, e.StrokeColor)
		fillPath(s, e.Path(FreedrawOptions(e.StrokeWidth)))
	case state.Text:
		setColors(s, e.StrokeColor)
		s.SetFont(e.Font)
		s.FillText(e.Text, e.X1, e.Y1)
	default:
		if el != nil {
			log.Printf("[RENDER] Skipping element %s of unknown kind %q", el.Header().ID, el.Kind())
		}
	}
}

// DrawScene applies the view transform and paints elements in order.
func (r *Renderer) DrawScene(s Surface, t *view.Transform, elements []state.Element) {
	s.Push()
	defer s.Pop()

	t.Apply(s)
	for _, el := range elements {
		r.Draw(s, el)
	}
}

func (r *Renderer) drawShape(s Surface, sh state.Shape) {
	setColors(s, sh.StrokeColor)
	r.rough.Draw(s, sh.Drawable)
}

func setColors(s Surface, name string) {
	c, err := colorutil.Parse(name)
	if err != nil {
		log.Printf("[RENDER] %v, using black", err)
		c = colorutil.Black
	}
	s.SetFillColor(c)
	s.SetStrokeColor(c)
}

func fillPath(s Surface, p stroke.Path) {
	if p.Empty() {
		return
	}
	for _, cmd := range p.Cmds {
		switch cmd.Op {
		case stroke.MoveTo:
			s.MoveTo(cmd.Args[0], cmd.Args[1])
		case stroke.QuadTo:
			s.QuadraticTo(cmd.Args[0], cmd.Args[1], cmd.Args[2], cmd.Args[3])
		case stroke.Close:
			s.ClosePath()
		}
	}
	s.Fill()
}
