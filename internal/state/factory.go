package state

import (
	"fmt"

	"SketchBoard/internal/rough"
	"SketchBoard/internal/stroke"
)

const (
	shapeStrokeScale    = 2
	freedrawStrokeScale = 4
	baseFontSize        = 15
	fontSizeStep        = 6
	defaultStrokeColor  = "white"
	solidFill           = "solid"
)

// DrawableGenerator builds the cached drawables of line, rectangle and
// ellipse elements. *rough.Generator implements it.
type DrawableGenerator interface {
	Line(x1, y1, x2, y2 float64, o rough.Options) *rough.Drawable
	Rectangle(x, y, w, h float64, o rough.Options) *rough.Drawable
	Ellipse(cx, cy, w, h float64, o rough.Options) *rough.Drawable
}

// Options carry the style of a new element.
type Options struct {
	StrokeColor string
	FillColor   string
	StrokeWidth float64
	Roughness   float64
	Seed        int64
	// Pressure of the first freedraw sample.
	Pressure float64
}

// UpdateOptions describe an edit of an existing element.
type UpdateOptions struct {
	// Kind, when set, must match the kind of the element being updated.
	Kind           Kind
	X1, Y1, X2, Y2 float64
	// Pressure of the freedraw sample appended at (X2,Y2).
	Pressure float64
	Text     string
	Font     string
}

// Factory creates and updates elements. It owns the generator used for
// rough drawables instead of relying on a package-level instance.
type Factory struct {
	gen DrawableGenerator
}

// NewFactory returns a Factory that builds drawables with gen.
func NewFactory(gen DrawableGenerator) *Factory {
	return &Factory{gen: gen}
}

// Create builds a new element of the given kind. For freedraw only (x1,y1)
// is used; it becomes the first point of the stroke.
func (f *Factory) Create(id string, kind Kind, x1, y1, x2, y2 float64, o Options) (Element, error) {
	if o.StrokeColor == "" {
		o.StrokeColor = defaultStrokeColor
	}
	meta := Meta{ID: id, StrokeColor: o.StrokeColor}

	switch kind {
	case KindFreedraw:
		return Freedraw{
			Meta:        meta,
			Points:      []stroke.Point{{X: x1, Y: y1, Pressure: o.Pressure}},
			StrokeWidth: o.StrokeWidth * freedrawStrokeScale,
			path:        &stroke.Cache{},
		}, nil
	case KindText:
		return Text{
			Meta:        meta,
			X1:          x1,
			Y1:          y1,
			X2:          x2,
			Y2:          y2,
			Width:       x2 - x1,
			Height:      y2 - y1,
			FontSize:    FontSize(o.StrokeWidth),
			StrokeWidth: o.StrokeWidth,
		}, nil
	case KindLine, KindRectangle, KindEllipse:
		s := Shape{
			Meta:        meta,
			StrokeWidth: o.StrokeWidth * shapeStrokeScale,
			FillColor:   o.FillColor,
			Roughness:   o.Roughness,
			Seed:        o.Seed,
		}
		return f.shape(kind, s, x1, y1, x2, y2), nil
	}
	return nil, fmt.Errorf("create %q: %w", kind, ErrUnsupportedShapeKind)
}

// shape lays out s between the two corners and builds its drawable. The
// stroke width of s is used as is.
func (f *Factory) shape(kind Kind, s Shape, x1, y1, x2, y2 float64) Element {
	s.X1, s.Y1, s.X2, s.Y2 = x1, y1, x2, y2
	s.Width, s.Height = x2-x1, y2-y1

	ro := rough.Options{
		StrokeWidth: s.StrokeWidth,
		Stroke:      s.StrokeColor,
		Fill:        s.FillColor,
		FillStyle:   solidFill,
		Roughness:   s.Roughness,
		Seed:        s.Seed,
	}

	switch kind {
	case KindRectangle:
		s.Drawable = f.gen.Rectangle(x1, y1, s.Width, s.Height, ro)
		return Rectangle{s}
	case KindEllipse:
		s.Drawable = f.gen.Ellipse((x1+x2)/2, (y1+y2)/2, s.Width, s.Height, ro)
		return Ellipse{s}
	default:
		s.Drawable = f.gen.Line(x1, y1, x2, y2, ro)
		return Line{s}
	}
}

// Update returns a new element reflecting the edit; el is left untouched.
// Shapes are rebuilt with a fresh drawable, freedraw strokes gain one point
// and text is rebuilt with the new content.
func (f *Factory) Update(el Element, o UpdateOptions) (Element, error) {
	if el == nil {
		return nil, fmt.Errorf("update nil element: %w", ErrUnsupportedShapeKind)
	}
	if o.Kind != "" && o.Kind != el.Kind() {
		return nil, fmt.Errorf("update %s from %q to %q: %w", el.Header().ID, el.Kind(), o.Kind, ErrUnsupportedShapeKind)
	}

	switch e := el.(type) {
	case Line:
		return f.shape(KindLine, e.Shape, o.X1, o.Y1, o.X2, o.Y2), nil
	case Rectangle:
		return f.shape(KindRectangle, e.Shape, o.X1, o.Y1, o.X2, o.Y2), nil
	case Ellipse:
		return f.shape(KindEllipse, e.Shape, o.X1, o.Y1, o.X2, o.Y2), nil
	case Freedraw:
		points := make([]stroke.Point, len(e.Points), len(e.Points)+1)
		copy(points, e.Points)
		points = append(points, stroke.Point{X: o.X2, Y: o.Y2, Pressure: o.Pressure})

		size := stroke.Bounds(points)
		e.Points = points
		e.Width, e.Height = size.Width, size.Height
		e.path = &stroke.Cache{}
		return e, nil
	case Text:
		next, err := f.Create(e.ID, KindText, o.X1, o.Y1, o.X2, o.Y2, Options{
			StrokeColor: e.StrokeColor,
			StrokeWidth: e.StrokeWidth,
		})
		if err != nil {
			return nil, err
		}
		t := next.(Text)
		t.Text = o.Text
		t.Font = o.Font
		return t, nil
	}
	return nil, fmt.Errorf("update %s of kind %q: %w", el.Header().ID, el.Kind(), ErrUnsupportedShapeKind)
}
