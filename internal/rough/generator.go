package rough

import (
	"math"

	"SketchBoard/internal/colorutil"
)

// Generator builds Drawables. It keeps no state between calls; the zero
// value is ready to use.
type Generator struct{}

// NewGenerator returns a Generator.
func NewGenerator() *Generator { return &Generator{} }

// Line returns a sketchy line from (x1,y1) to (x2,y2).
func (g *Generator) Line(x1, y1, x2, y2 float64, o Options) *Drawable {
	e := newEngine(o)
	return &Drawable{
		Shape:   "line",
		Options: e.o,
		Sets:    []OpSet{{Kind: SetPath, Ops: e.doubleLine(x1, y1, x2, y2)}},
	}
}

// Rectangle returns a sketchy rectangle with its corner at (x,y).
func (g *Generator) Rectangle(x, y, w, h float64, o Options) *Drawable {
	e := newEngine(o)
	corners := [][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}

	var sets []OpSet
	if e.filled() {
		sets = append(sets, OpSet{Kind: SetFillPath, Ops: e.solidFill(corners)})
	}
	var ops []Op
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		ops = append(ops, e.doubleLine(a[0], a[1], b[0], b[1])...)
	}
	sets = append(sets, OpSet{Kind: SetPath, Ops: ops})

	return &Drawable{Shape: "rectangle", Options: e.o, Sets: sets}
}

// Ellipse returns a sketchy ellipse centered at (cx,cy) with the given full
// width and height.
func (g *Generator) Ellipse(cx, cy, w, h float64, o Options) *Drawable {
	e := newEngine(o)

	psq := math.Sqrt(math.Pi * 2 * math.Sqrt((math.Pow(w/2, 2)+math.Pow(h/2, 2))/2))
	steps := math.Ceil(math.Max(e.o.CurveStepCount, (e.o.CurveStepCount/math.Sqrt(200))*psq))
	increment := math.Pi * 2 / steps
	rx, ry := math.Abs(w/2), math.Abs(h/2)
	fit := 1 - e.o.CurveFitting
	rx += e.offsetOpt(rx*fit, 1)
	ry += e.offsetOpt(ry*fit, 1)

	overlap := increment * e.offset(0.1, e.offset(0.4, 1, 1), 1)
	all, core := e.ellipsePoints(increment, cx, cy, rx, ry, 1, overlap)
	ops := e.curve(all)
	if !e.o.DisableMultiStroke && e.o.Roughness != 0 {
		second, _ := e.ellipsePoints(increment, cx, cy, rx, ry, 1.5, 0)
		ops = append(ops, e.curve(second)...)
	}

	var sets []OpSet
	if e.filled() && len(core) > 0 {
		sets = append(sets, OpSet{Kind: SetFillPath, Ops: e.solidFill(core)})
	}
	sets = append(sets, OpSet{Kind: SetPath, Ops: ops})

	return &Drawable{Shape: "ellipse", Options: e.o, Sets: sets}
}

type engine struct {
	o   Options
	rnd *random
}

func newEngine(o Options) *engine {
	o = withDefaults(o)
	return &engine{o: o, rnd: newRandom(o.Seed)}
}

func (e *engine) filled() bool {
	return !colorutil.IsNone(e.o.Fill)
}

func (e *engine) offset(lo, hi, gain float64) float64 {
	return e.o.Roughness * gain * (e.rnd.next()*(hi-lo) + lo)
}

func (e *engine) offsetOpt(x, gain float64) float64 {
	return e.offset(-x, x, gain)
}

func (e *engine) doubleLine(x1, y1, x2, y2 float64) []Op {
	ops := e.line(x1, y1, x2, y2, false)
	if e.o.DisableMultiStroke {
		return ops
	}
	return append(ops, e.line(x1, y1, x2, y2, true)...)
}

func (e *engine) line(x1, y1, x2, y2 float64, overlay bool) []Op {
	lengthSq := math.Pow(x1-x2, 2) + math.Pow(y1-y2, 2)
	length := math.Sqrt(lengthSq)

	gain := 1.0
	switch {
	case length > 500:
		gain = 0.4
	case length >= 200:
		gain = -0.0016668*length + 1.233334
	}

	off := e.o.MaxRandomnessOffset
	if off*off*100 > lengthSq {
		off = length / 10
	}
	half := off / 2
	diverge := 0.2 + e.rnd.next()*0.2

	midX := e.o.Bowing * e.o.MaxRandomnessOffset * (y2 - y1) / 200
	midY := e.o.Bowing * e.o.MaxRandomnessOffset * (x1 - x2) / 200
	midX = e.offsetOpt(midX, gain)
	midY = e.offsetOpt(midY, gain)

	jitter := func() float64 { return e.offsetOpt(off, gain) }
	if overlay {
		jitter = func() float64 { return e.offsetOpt(half, gain) }
	}

	return []Op{
		{Kind: OpMove, Data: []float64{x1 + jitter(), y1 + jitter()}},
		{Kind: OpCurveTo, Data: []float64{
			midX + x1 + (x2-x1)*diverge + jitter(),
			midY + y1 + (y2-y1)*diverge + jitter(),
			midX + x1 + 2*(x2-x1)*diverge + jitter(),
			midY + y1 + 2*(y2-y1)*diverge + jitter(),
			x2 + jitter(),
			y2 + jitter(),
		}},
	}
}

func (e *engine) ellipsePoints(increment, cx, cy, rx, ry, offset, overlap float64) (all, core [][2]float64) {
	if e.o.Roughness == 0 {
		for angle := 0.0; angle < math.Pi*2; angle += increment {
			p := [2]float64{cx + rx*math.Cos(angle), cy + ry*math.Sin(angle)}
			core = append(core, p)
		}
		all = append(all, core[len(core)-1])
		all = append(all, core...)
		all = append(all, core[0], core[1%len(core)])
		return all, core
	}

	rad := e.offsetOpt(0.5, 1) - math.Pi/2
	at := func(scale, angle float64) [2]float64 {
		return [2]float64{
			e.offsetOpt(offset, 1) + cx + scale*rx*math.Cos(angle),
			e.offsetOpt(offset, 1) + cy + scale*ry*math.Sin(angle),
		}
	}

	all = append(all, at(0.9, rad-increment))
	end := math.Pi*2 + rad - 0.01
	for angle := rad; angle < end; angle += increment {
		p := at(1, angle)
		core = append(core, p)
		all = append(all, p)
	}
	all = append(all,
		at(1, rad+math.Pi*2+overlap*0.5),
		at(0.98, rad+overlap),
		at(0.9, rad+overlap*0.5),
	)
	return all, core
}

// curve fits a Catmull-Rom spline through points as cubic beziers.
func (e *engine) curve(points [][2]float64) []Op {
	switch {
	case len(points) > 3:
		ops := []Op{{Kind: OpMove, Data: []float64{points[1][0], points[1][1]}}}
		for i := 1; i+2 < len(points); i++ {
			p0, p1, p2, p3 := points[i-1], points[i], points[i+1], points[i+2]
			ops = append(ops, Op{Kind: OpCurveTo, Data: []float64{
				p1[0] + (p2[0]-p0[0])/6, p1[1] + (p2[1]-p0[1])/6,
				p2[0] + (p1[0]-p3[0])/6, p2[1] + (p1[1]-p3[1])/6,
				p2[0], p2[1],
			}})
		}
		return ops
	case len(points) == 3:
		return []Op{
			{Kind: OpMove, Data: []float64{points[0][0], points[0][1]}},
			{Kind: OpCurveTo, Data: []float64{points[1][0], points[1][1], points[2][0], points[2][1], points[2][0], points[2][1]}},
		}
	case len(points) == 2:
		return e.doubleLine(points[0][0], points[0][1], points[1][0], points[1][1])
	}
	return nil
}

func (e *engine) solidFill(points [][2]float64) []Op {
	off := e.o.MaxRandomnessOffset
	ops := make([]Op, 0, len(points))
	for i, p := range points {
		kind := OpLineTo
		if i == 0 {
			kind = OpMove
		}
		ops = append(ops, Op{Kind: kind, Data: []float64{p[0] + e.offsetOpt(off, 1), p[1] + e.offsetOpt(off, 1)}})
	}
	return ops
}
