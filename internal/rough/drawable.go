// Package rough generates hand-drawn looking outlines for simple shapes.
//
// A Generator turns geometry plus style Options into a Drawable: a list of
// operation sets that only need to be replayed on every frame. The jitter is
// driven by Options.Seed, so equal geometry and seed always produce the same
// Drawable.
package rough

// OpKind is a single drawing operation.
type OpKind uint8

const (
	OpMove OpKind = iota
	OpLineTo
	OpCurveTo // cubic bezier: c1x, c1y, c2x, c2y, x, y
)

// Op is one drawing operation with its coordinates.
type Op struct {
	Kind OpKind
	Data []float64
}

// SetKind tells the canvas how to paint an OpSet.
type SetKind uint8

const (
	SetPath SetKind = iota
	SetFillPath
)

// OpSet is a run of operations painted in one go.
type OpSet struct {
	Kind SetKind
	Ops  []Op
}

// Options control the style and the randomness of a Drawable.
type Options struct {
	StrokeWidth float64
	Stroke      string
	Fill        string
	FillStyle   string
	Roughness   float64
	Seed        int64

	Bowing              float64
	MaxRandomnessOffset float64
	CurveFitting        float64
	CurveStepCount      float64
	DisableMultiStroke  bool
}

// Drawable is the precomputed result of a Generator call.
type Drawable struct {
	Shape   string
	Options Options
	Sets    []OpSet
}

func withDefaults(o Options) Options {
	if o.FillStyle == "" {
		o.FillStyle = "solid"
	}
	if o.Bowing == 0 {
		o.Bowing = 1
	}
	if o.MaxRandomnessOffset == 0 {
		o.MaxRandomnessOffset = 2
	}
	if o.CurveFitting == 0 {
		o.CurveFitting = 0.95
	}
	if o.CurveStepCount == 0 {
		o.CurveStepCount = 9
	}
	return o
}
