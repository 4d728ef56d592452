package hull

import (
	"math"
)

// Arc is a circular arc, traced from StartAngle over SweepAngle radians.
//
// Angles follow the package convention (see [VecFromAngle]): zero points
// toward positive x and positive angles rotate toward positive y. A
// positive sweep therefore runs clockwise on a y-down canvas, a negative
// sweep counterclockwise.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

// CCW reports whether the arc is traced through decreasing angles, which
// is counterclockwise on a y-down canvas.
func (a Arc) CCW() bool {
	return a.SweepAngle < 0
}

// Eval returns the point at curve parameter t, where t = 0 is the start
// of the arc and t = 1 its end.
func (a Arc) Eval(t float64) Point {
	return pointOnCircle(a.Center, a.Radius, a.StartAngle+t*a.SweepAngle)
}

func (a Arc) Start() Point { return a.Eval(0) }
func (a Arc) End() Point   { return a.Eval(1) }

// Arclen returns the length of the arc.
func (a Arc) Arclen() float64 {
	return a.Radius * math.Abs(a.SweepAngle)
}

func (a Arc) IsInf() bool {
	return a.Center.IsInf() ||
		math.IsInf(a.Radius, 0) ||
		math.IsInf(a.StartAngle, 0) ||
		math.IsInf(a.SweepAngle, 0)
}

func (a Arc) IsNaN() bool {
	return a.Center.IsNaN() ||
		math.IsNaN(a.Radius) ||
		math.IsNaN(a.StartAngle) ||
		math.IsNaN(a.SweepAngle)
}

// BoundingBox returns the tight bounding box of the arc: the box around
// its endpoints, grown by any axis extremum the sweep passes through.
func (a Arc) BoundingBox() Rect {
	bbox := NewRectFromPoints(a.Start(), a.End())
	start := a.StartAngle
	if a.SweepAngle < 0 {
		start += a.SweepAngle
	}
	sweep := math.Abs(a.SweepAngle)
	for k := 0; k < 4; k++ {
		th := float64(k) * (math.Pi / 2)
		if normAngle(th-start) <= sweep {
			bbox = bbox.UnionPoint(pointOnCircle(a.Center, a.Radius, th))
		}
	}
	return bbox
}

// Nearest returns the squared distance from pt to the closest point on the
// arc, and that point's curve parameter.
func (a Arc) Nearest(pt Point) (distSq, t float64) {
	th := pt.Sub(a.Center).Angle()
	// Fraction of the sweep covered before the probe's angle is reached.
	var frac float64
	if a.SweepAngle >= 0 {
		frac = normAngle(th-a.StartAngle) / a.SweepAngle
	} else {
		frac = normAngle(a.StartAngle-th) / -a.SweepAngle
	}
	if frac <= 1 {
		return pt.Sub(a.Eval(frac)).Hypot2(), frac
	}
	d0 := pt.Sub(a.Start()).Hypot2()
	d1 := pt.Sub(a.End()).Hypot2()
	if d0 <= d1 {
		return d0, 0
	}
	return d1, 1
}

// Stretched deforms the arc into an elliptical arc spanning the same
// endpoints: the chord becomes the ellipse's x axis, and the bulge height
// becomes the arc's sagitta scaled by 1+stretch. A stretch of zero keeps
// the circular bulge, negative values flatten the arc toward its chord,
// and positive values exaggerate it.
//
// The result is always a half-ellipse over the chord. For sweeps other
// than a half turn it agrees with the arc at the endpoints and the apex,
// not pointwise.
func (a Arc) Stretched(stretch float64) EllipseArc {
	p0 := a.Start()
	p1 := a.End()
	chord := p1.Sub(p0)
	mid := p0.Midpoint(p1)
	// Perpendicular bulge of the circular arc, measured from the chord.
	bulge := a.Eval(0.5).Sub(mid)
	ry := max(1, bulge.Hypot()*(1+stretch))
	rx := max(chord.Hypot()/2, minEllipseRadius)
	// Traverse the half-ellipse in whichever direction keeps the bulge
	// on the arc's side of the chord.
	sweep := math.Pi
	if chord.Cross(bulge) > 0 {
		sweep = -math.Pi
	}
	return EllipseArc{
		Center:     mid,
		Radii:      Vec2{X: rx, Y: ry},
		XRotation:  chord.Angle(),
		StartAngle: math.Pi,
		SweepAngle: sweep,
	}
}

// Seg wraps the arc in a [Segment].
func (a Arc) Seg() Segment {
	return Segment{
		Kind:       ArcKind,
		Center:     a.Center,
		Radii:      Vec2{X: a.Radius, Y: a.Radius},
		StartAngle: a.StartAngle,
		SweepAngle: a.SweepAngle,
		Length:     a.Arclen(),
	}
}

// Degenerate chords and bulges are clamped rather than special-cased, so
// stretching a hairline arc yields a hairline ellipse.
const minEllipseRadius = 1e-9

// normAngle reduces an angle to the range [0, 2π).
func normAngle(th float64) float64 {
	th = math.Mod(th, 2*math.Pi)
	if th < 0 {
		th += 2 * math.Pi
	}
	return th
}

// sweepBetween returns the signed sweep from the entry angle to the exit
// angle when traveling in the given angular direction: a positive sign
// sweeps through increasing angles, a negative one through decreasing
// angles.
func sweepBetween(entry, exit, sign float64) float64 {
	if sign >= 0 {
		return normAngle(exit - entry)
	}
	return -normAngle(entry - exit)
}
