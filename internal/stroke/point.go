// Package stroke holds the geometry used for freehand strokes: point sets,
// their bounding boxes and the variable-width outline that is filled when a
// stroke is rendered.
package stroke

import "math"

// DefaultPressure is used for samples recorded without a pressure value.
const DefaultPressure = 0.5

// Point is one pointer sample of a freehand stroke, in canvas space.
type Point struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Pressure float64 `json:"pressure"`
}

// Size is the extent of an axis-aligned bounding box.
type Size struct {
	Width  float64
	Height float64
}

// Bounds returns the size of the box spanned by the x,y of all points.
// Pressure is ignored. An empty set has a zero size.
func Bounds(points []Point) Size {
	if len(points) == 0 {
		return Size{}
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y

	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	return Size{Width: maxX - minX, Height: maxY - minY}
}

// Vec is a 2D vector used while building outlines.
type Vec struct {
	X, Y float64
}

func (a Vec) add(b Vec) Vec             { return Vec{a.X + b.X, a.Y + b.Y} }
func (a Vec) sub(b Vec) Vec             { return Vec{a.X - b.X, a.Y - b.Y} }
func (a Vec) mul(n float64) Vec         { return Vec{a.X * n, a.Y * n} }
func (a Vec) neg() Vec                  { return Vec{-a.X, -a.Y} }
func (a Vec) per() Vec                  { return Vec{a.Y, -a.X} }
func (a Vec) dot(b Vec) float64         { return a.X*b.X + a.Y*b.Y }
func (a Vec) length() float64           { return math.Hypot(a.X, a.Y) }
func (a Vec) dist(b Vec) float64        { return a.sub(b).length() }
func (a Vec) dist2(b Vec) float64       { d := a.sub(b); return d.X*d.X + d.Y*d.Y }
func (a Vec) lerp(b Vec, t float64) Vec { return a.add(b.sub(a).mul(t)) }

func (a Vec) unit() Vec {
	l := a.length()
	if l == 0 {
		return Vec{}
	}
	return Vec{a.X / l, a.Y / l}
}

// rotateAround rotates a around c by r radians.
func (a Vec) rotateAround(c Vec, r float64) Vec {
	s, co := math.Sin(r), math.Cos(r)
	px, py := a.X-c.X, a.Y-c.Y
	return Vec{px*co - py*s + c.X, px*s + py*co + c.Y}
}
