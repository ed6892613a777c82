package state

import (
	"errors"
	"fmt"

	"SketchBoard/internal/rough"
	"SketchBoard/internal/stroke"
)

// ErrUnsupportedShapeKind is returned when an element kind is outside the
// closed set the factory knows how to build.
var ErrUnsupportedShapeKind = errors.New("unsupported shape kind")

// Kind names an element variant.
type Kind string

const (
	KindLine      Kind = "line"
	KindRectangle Kind = "rectangle"
	KindEllipse   Kind = "ellipse"
	KindFreedraw  Kind = "freedraw"
	KindText      Kind = "text"
)

// Kinds lists every supported kind in toolbar order.
var Kinds = []Kind{KindLine, KindRectangle, KindEllipse, KindFreedraw, KindText}

// ParseKind maps a kind name onto a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedShapeKind, s)
}

// Element is one drawable object on the canvas. The variants are Line,
// Rectangle, Ellipse, Freedraw and Text; all are immutable values.
type Element interface {
	Header() Meta
	Kind() Kind
	isElement()
}

// Meta holds the fields shared by every element.
type Meta struct {
	ID          string `json:"id"`
	StrokeColor string `json:"strokeColor"`
}

// Header returns the shared fields.
func (m Meta) Header() Meta { return m }

func (Meta) isElement() {}

// Shape is the geometry and style of a rough-rendered element.
type Shape struct {
	Meta
	X1, Y1, X2, Y2 float64
	Width, Height  float64
	// StrokeWidth is the display width, twice the width that was asked for.
	StrokeWidth float64
	FillColor   string
	Roughness   float64
	Seed        int64
	// Drawable is built when the element is created and never patched.
	Drawable *rough.Drawable `json:"-"`
}

type (
	Line      struct{ Shape }
	Rectangle struct{ Shape }
	Ellipse   struct{ Shape }
)

func (Line) Kind() Kind      { return KindLine }
func (Rectangle) Kind() Kind { return KindRectangle }
func (Ellipse) Kind() Kind   { return KindEllipse }

// Freedraw is a freehand stroke.
type Freedraw struct {
	Meta
	Points []stroke.Point
	// StrokeWidth is four times the width that was asked for.
	StrokeWidth   float64
	Width, Height float64

	path *stroke.Cache
}

func (Freedraw) Kind() Kind { return KindFreedraw }

// Path returns the fillable outline of the stroke, cached until the point
// set grows.
func (f Freedraw) Path(o stroke.Options) stroke.Path {
	if f.path == nil {
		return stroke.StrokeToPath(f.Points, o)
	}
	return f.path.Path(f.Points, o)
}

// Text is a single line of text anchored at its top-left corner.
type Text struct {
	Meta
	X1, Y1, X2, Y2 float64
	Width, Height  float64
	Text           string
	Font           string
	FontSize       float64
	StrokeWidth    float64
}

func (Text) Kind() Kind { return KindText }

// FontSize derives the text size from a stroke width.
func FontSize(strokeWidth float64) float64 {
	return baseFontSize + (strokeWidth-1)*fontSizeStep
}
