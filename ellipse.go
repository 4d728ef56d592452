package hull

import (
	"math"
)

// EllipseArc is an elliptical arc, traced from StartAngle over SweepAngle
// radians.
//
// The angles are eccentric angles: they are measured on the unit circle
// before the radii scaling and the x-axis rotation are applied, so for
// unequal radii they do not coincide with the polar angle of the evaluated
// point. As with [Arc], a positive sweep runs clockwise on a y-down
// canvas.
type EllipseArc struct {
	Center Point
	// Radii holds the x and y radius, before rotation.
	Radii      Vec2
	XRotation  float64
	StartAngle float64
	SweepAngle float64
}

// CCW reports whether the arc is traced through decreasing angles, which
// is counterclockwise on a y-down canvas.
func (e EllipseArc) CCW() bool {
	return e.SweepAngle < 0
}

// Eval returns the point at curve parameter t, where t = 0 is the start
// of the arc and t = 1 its end.
func (e EllipseArc) Eval(t float64) Point {
	return e.Center.Translate(sampleEllipse(e.Radii, e.XRotation, e.StartAngle+t*e.SweepAngle))
}

func (e EllipseArc) Start() Point { return e.Eval(0) }
func (e EllipseArc) End() Point   { return e.Eval(1) }

// Arclen returns the approximate length of the arc, using Ramanujan's
// approximation for the circumference of an ellipse scaled by the swept
// fraction of a full turn. The scaling is exact for circles and for
// half-turn sweeps; other sweeps of eccentric ellipses only approximate
// the swept fraction.
func (e EllipseArc) Arclen() float64 {
	rx := math.Abs(e.Radii.X)
	ry := math.Abs(e.Radii.Y)
	c := math.Pi * (3*(rx+ry) - math.Sqrt((3*rx+ry)*(rx+3*ry)))
	return c * math.Abs(e.SweepAngle) / (2 * math.Pi)
}

func (e EllipseArc) IsInf() bool {
	return e.Center.IsInf() ||
		e.Radii.IsInf() ||
		math.IsInf(e.XRotation, 0) ||
		math.IsInf(e.StartAngle, 0) ||
		math.IsInf(e.SweepAngle, 0)
}

func (e EllipseArc) IsNaN() bool {
	return e.Center.IsNaN() ||
		e.Radii.IsNaN() ||
		math.IsNaN(e.XRotation) ||
		math.IsNaN(e.StartAngle) ||
		math.IsNaN(e.SweepAngle)
}

// BoundingBox returns the tight bounding box of the arc: the box around
// its endpoints, grown by any extremum of the rotated ellipse the sweep
// passes through.
func (e EllipseArc) BoundingBox() Rect {
	bbox := NewRectFromPoints(e.Start(), e.End())
	start := e.StartAngle
	if e.SweepAngle < 0 {
		start += e.SweepAngle
	}
	sweep := math.Abs(e.SweepAngle)
	sin, cos := math.Sincos(e.XRotation)
	// Eccentric angles of the axis extrema, obtained by setting the
	// derivative of the rotated parametrization to zero.
	ux := math.Atan2(-e.Radii.Y*sin, e.Radii.X*cos)
	uy := math.Atan2(e.Radii.Y*cos, e.Radii.X*sin)
	for _, u := range [...]float64{ux, ux + math.Pi, uy, uy + math.Pi} {
		if normAngle(u-start) <= sweep {
			bbox = bbox.UnionPoint(e.Center.Translate(sampleEllipse(e.Radii, e.XRotation, u)))
		}
	}
	return bbox
}

// Nearest returns the squared distance from pt to the closest point on
// the arc, and that point's curve parameter. It samples the arc at a
// fixed resolution rather than solving the quartic analytically, which
// is plenty for hit testing.
func (e EllipseArc) Nearest(pt Point) (distSq, t float64) {
	return sampleNearest(e.Eval, pt)
}

// Seg wraps the arc in a [Segment].
func (e EllipseArc) Seg() Segment {
	return Segment{
		Kind:       EllipseKind,
		Center:     e.Center,
		Radii:      e.Radii,
		XRotation:  e.XRotation,
		StartAngle: e.StartAngle,
		SweepAngle: e.SweepAngle,
		Length:     e.Arclen(),
	}
}

// / Take the ellipse radii, how the radii are rotated, and the sweep angle, and return a
// / point on the ellipse.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotatePt(Vec2{u, v}, xRotation)
}

// / Rotate `pt` about the origin by `angle` radians.
func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}
