package stroke

import "math"

const (
	pressureChangeRate = 0.275
	// Slightly more than pi so that rotated cap points do not land exactly
	// on the opposite side of the stroke.
	fixedPi = math.Pi + 0.0001
)

// Easing maps a value in [0,1] to [0,1].
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// Cap configures one end of a stroke.
type Cap struct {
	// Taper is the distance over which the end narrows. Zero disables it.
	Taper float64
	// Cap draws a round cap when the end is not tapered.
	Cap    bool
	Easing Easing
}

// Options parameterize the variable-width outline.
type Options struct {
	Size       float64
	Thinning   float64
	Smoothing  float64
	Streamline float64
	Easing     Easing
	// SimulatePressure derives the width from the pointer velocity instead
	// of the recorded pressure.
	SimulatePressure bool
	Start            Cap
	End              Cap
	// Last marks the stroke as complete; the final sample is then used
	// verbatim instead of being streamlined.
	Last bool
}

type samplePoint struct {
	point         Vec
	pressure      float64
	vector        Vec
	distance      float64
	runningLength float64
}

// samples streamlines the raw input and annotates each kept point with its
// direction and running length.
func samples(points []Point, o Options) []samplePoint {
	if len(points) == 0 {
		return nil
	}

	t := 0.15 + (1-o.Streamline)*0.85

	pts := make([]Point, len(points))
	copy(pts, points)

	if len(pts) == 2 {
		last := pts[1]
		pts = pts[:1]
		for i := 1; i < 5; i++ {
			f := float64(i) / 4
			pts = append(pts, Point{
				X:        pts[0].X + (last.X-pts[0].X)*f,
				Y:        pts[0].Y + (last.Y-pts[0].Y)*f,
				Pressure: pts[0].Pressure + (last.Pressure-pts[0].Pressure)*f,
			})
		}
	}
	if len(pts) == 1 {
		pts = append(pts, Point{X: pts[0].X + 1, Y: pts[0].Y + 1, Pressure: pts[0].Pressure})
	}

	pressureOf := func(p Point, fallback float64) float64 {
		if p.Pressure > 0 {
			return p.Pressure
		}
		return fallback
	}

	out := make([]samplePoint, 0, len(pts))
	out = append(out, samplePoint{
		point:    Vec{pts[0].X, pts[0].Y},
		pressure: pressureOf(pts[0], 0.25),
		vector:   Vec{1, 1},
	})

	reachedMinimum := false
	running := 0.0
	prev := out[0]
	last := len(pts) - 1

	for i := 1; i < len(pts); i++ {
		raw := Vec{pts[i].X, pts[i].Y}
		var point Vec
		if o.Last && i == last {
			point = raw
		} else {
			point = prev.point.lerp(raw, t)
		}
		if point == prev.point {
			continue
		}

		distance := point.dist(prev.point)
		running += distance

		if i < last && !reachedMinimum {
			if running < o.Size {
				continue
			}
			reachedMinimum = true
		}

		prev = samplePoint{
			point:         point,
			pressure:      pressureOf(pts[i], DefaultPressure),
			vector:        prev.point.sub(point).unit(),
			distance:      distance,
			runningLength: running,
		}
		out = append(out, prev)
	}

	if len(out) > 1 {
		out[0].vector = out[1].vector
	} else {
		out[0].vector = Vec{}
	}
	return out
}

func radius(size, thinning, pressure float64, easing Easing) float64 {
	return size * easing(0.5-thinning*(0.5-pressure))
}

func simulatedPressure(prev, distance, size float64) float64 {
	sp := math.Min(1, distance/size)
	rp := math.Min(1, 1-sp)
	return math.Min(1, prev+(rp-prev)*(sp*pressureChangeRate))
}

// Outline returns the closed polygon enclosing a variable-width stroke
// through points. The polygon is empty when there are no points or the size
// is not positive.
func Outline(points []Point, o Options) []Vec {
	return outline(samples(points, o), o)
}

func outline(pts []samplePoint, o Options) []Vec {
	if len(pts) == 0 || o.Size <= 0 {
		return nil
	}

	easing := o.Easing
	if easing == nil {
		easing = Linear
	}
	startEase := o.Start.Easing
	if startEase == nil {
		startEase = func(t float64) float64 { return t * (2 - t) }
	}
	endEase := o.End.Easing
	if endEase == nil {
		endEase = func(t float64) float64 { t--; return t*t*t + 1 }
	}

	total := pts[len(pts)-1].runningLength
	taperStart, taperEnd := o.Start.Taper, o.End.Taper
	minDistance := math.Pow(o.Size*o.Smoothing, 2)

	var left, right []Vec

	prevPressure := pts[0].pressure
	for i := 0; i < len(pts) && i < 10; i++ {
		p := pts[i].pressure
		if o.SimulatePressure {
			p = simulatedPressure(prevPressure, pts[i].distance, o.Size)
		}
		prevPressure = (prevPressure + p) / 2
	}

	r := radius(o.Size, o.Thinning, pts[len(pts)-1].pressure, easing)
	firstRadius := -1.0
	prevVector := pts[0].vector
	pl, pr := pts[0].point, pts[0].point
	tl, tr := pl, pr
	prevSharp := false

	for i, cur := range pts {
		pressure := cur.pressure

		if i < len(pts)-1 && total-cur.runningLength < 3 {
			continue
		}

		if o.Thinning != 0 {
			if o.SimulatePressure {
				pressure = simulatedPressure(prevPressure, cur.distance, o.Size)
			}
			r = radius(o.Size, o.Thinning, pressure, easing)
		} else {
			r = o.Size / 2
		}
		if firstRadius < 0 {
			firstRadius = r
		}

		ts, te := 1.0, 1.0
		if cur.runningLength < taperStart {
			ts = startEase(cur.runningLength / taperStart)
		}
		if total-cur.runningLength < taperEnd {
			te = endEase((total - cur.runningLength) / taperEnd)
		}
		r = math.Max(0.01, r*math.Min(ts, te))

		next := cur
		nextDpr := 1.0
		if i < len(pts)-1 {
			next = pts[i+1]
			nextDpr = cur.vector.dot(next.vector)
		}
		prevDpr := cur.vector.dot(prevVector)

		sharp := prevDpr < 0 && !prevSharp
		nextSharp := nextDpr < 0

		if sharp || nextSharp {
			offset := prevVector.per().mul(r)
			for step, t := 1.0/13, 0.0; t <= 1; t += step {
				tl = cur.point.sub(offset).rotateAround(cur.point, fixedPi*t)
				left = append(left, tl)
				tr = cur.point.add(offset).rotateAround(cur.point, fixedPi*-t)
				right = append(right, tr)
			}
			pl, pr = tl, tr
			if nextSharp {
				prevSharp = true
			}
			continue
		}
		prevSharp = false

		if i == len(pts)-1 {
			offset := cur.vector.per().mul(r)
			left = append(left, cur.point.sub(offset))
			right = append(right, cur.point.add(offset))
			continue
		}

		offset := next.vector.lerp(cur.vector, nextDpr).per().mul(r)

		tl = cur.point.sub(offset)
		if i <= 1 || pl.dist2(tl) > minDistance {
			left = append(left, tl)
			pl = tl
		}
		tr = cur.point.add(offset)
		if i <= 1 || pr.dist2(tr) > minDistance {
			right = append(right, tr)
			pr = tr
		}

		prevPressure = pressure
		prevVector = cur.vector
	}

	first := pts[0].point
	last := first.add(Vec{1, 1})
	if len(pts) > 1 {
		last = pts[len(pts)-1].point
	}

	if len(pts) == 1 {
		if (taperStart == 0 && taperEnd == 0) || o.Last {
			if firstRadius < 0 {
				firstRadius = r
			}
			start := first.add(first.sub(last).per().unit().mul(-firstRadius))
			var dot []Vec
			for step, t := 1.0/13, 1.0/13; t <= 1; t += step {
				dot = append(dot, start.rotateAround(first, fixedPi*2*t))
			}
			return dot
		}
	}

	var startCap, endCap []Vec

	if len(left) == 0 || len(right) == 0 {
		return append(left, right...)
	}

	switch {
	case taperStart != 0:
	case o.Start.Cap:
		for step, t := 1.0/13, 1.0/13; t <= 1; t += step {
			startCap = append(startCap, right[0].rotateAround(first, fixedPi*t))
		}
	default:
		corners := left[0].sub(right[0])
		a, b := corners.mul(0.5), corners.mul(0.51)
		startCap = append(startCap, first.sub(a), first.sub(b), first.add(b), first.add(a))
	}

	direction := pts[len(pts)-1].vector.neg().per()
	switch {
	case taperEnd != 0:
		endCap = append(endCap, last)
	case o.End.Cap:
		start := last.add(direction.mul(r))
		for step, t := 1.0/29, 1.0/29; t < 1; t += step {
			endCap = append(endCap, start.rotateAround(last, fixedPi*3*t))
		}
	default:
		endCap = append(endCap,
			last.add(direction.mul(r)),
			last.add(direction.mul(r*0.99)),
			last.sub(direction.mul(r*0.99)),
			last.sub(direction.mul(r)),
		)
	}

	poly := make([]Vec, 0, len(left)+len(endCap)+len(right)+len(startCap))
	poly = append(poly, left...)
	poly = append(poly, endCap...)
	for i := len(right) - 1; i >= 0; i-- {
		poly = append(poly, right[i])
	}
	poly = append(poly, startCap...)
	return poly
}
