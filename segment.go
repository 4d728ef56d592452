package hull

import (
	"math"
)

type SegmentKind int

const (
	// A circular arc along a node's boundary.
	ArcKind SegmentKind = iota + 1
	// An elliptical arc, the stretched form of a node's boundary arc.
	EllipseKind
	// A straight tangent connector between two nodes.
	LineKind
	// A curved connector between two nodes.
	BezierKind
)

// Segment is one piece of an assembled path. This type acts as a sort of
// tagged union representing all possible pieces ([Arc], [EllipseArc],
// [Line], and [CubicBez]), plus the path bookkeeping shared by all of
// them.
//
// Which geometry fields are meaningful depends on Kind: arcs use Center,
// Radii, StartAngle and SweepAngle (elliptical ones also XRotation);
// lines use P0 and P1; Béziers use P0 through P3.
type Segment struct {
	// We don't use an interface for Segment because the geometry types'
	// methods should keep returning their respective types, not Segment.
	// But we cannot encode that in Go interfaces.
	//
	// This also avoids having to allocate for path segments.

	Kind SegmentKind

	Center     Point
	Radii      Vec2
	XRotation  float64
	StartAngle float64
	SweepAngle float64

	P0 Point
	P1 Point
	P2 Point
	P3 Point

	// Length is the segment's arclength, computed once at construction.
	// Arc lengths are exact, ellipse and Bézier lengths approximate.
	Length float64
	// Subpath marks a segment that does not connect to its predecessor
	// and starts a new subpath. The first segment of a path always does.
	Subpath bool
	// Node is the index, in the caller's node slice, of the node this
	// segment belongs to. Connectors belong to the node they leave.
	Node int
}

// Line returns the line represented by this segment. This is only valid
// when Kind == LineKind.
func (seg Segment) Line() Line { return Line{seg.P0, seg.P1} }

// Bezier returns the cubic Bézier represented by this segment. This is
// only valid when Kind == BezierKind.
func (seg Segment) Bezier() CubicBez { return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3} }

// Arc returns the circular arc represented by this segment. This is only
// valid when Kind == ArcKind.
func (seg Segment) Arc() Arc {
	return Arc{
		Center:     seg.Center,
		Radius:     seg.Radii.X,
		StartAngle: seg.StartAngle,
		SweepAngle: seg.SweepAngle,
	}
}

// Ellipse returns the elliptical arc represented by this segment. This
// is valid when Kind is EllipseKind or ArcKind; a circular arc is
// returned with equal radii and no rotation.
func (seg Segment) Ellipse() EllipseArc {
	return EllipseArc{
		Center:     seg.Center,
		Radii:      seg.Radii,
		XRotation:  seg.XRotation,
		StartAngle: seg.StartAngle,
		SweepAngle: seg.SweepAngle,
	}
}

// CCW reports whether an arc segment runs counterclockwise on a y-down
// canvas. It is meaningful for ArcKind and EllipseKind segments.
func (seg Segment) CCW() bool {
	return seg.SweepAngle < 0
}

// Eval returns the point at curve parameter t, where t = 0 is the start
// of the segment and t = 1 its end.
func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case ArcKind:
		return seg.Arc().Eval(t)
	case EllipseKind:
		return seg.Ellipse().Eval(t)
	case LineKind:
		return seg.Line().Eval(t)
	case BezierKind:
		return seg.Bezier().Eval(t)
	default:
		return Point{}
	}
}

func (seg Segment) Start() Point { return seg.Eval(0) }
func (seg Segment) End() Point   { return seg.Eval(1) }

// Nearest returns the squared distance from pt to the closest point on
// the segment, and that point's curve parameter. Lines and circular arcs
// are solved in closed form, ellipses and Béziers by sampling.
func (seg Segment) Nearest(pt Point) (distSq, t float64) {
	switch seg.Kind {
	case ArcKind:
		return seg.Arc().Nearest(pt)
	case EllipseKind:
		return seg.Ellipse().Nearest(pt)
	case LineKind:
		return seg.Line().Nearest(pt)
	case BezierKind:
		return seg.Bezier().Nearest(pt)
	default:
		return math.Inf(1), 0
	}
}

// BoundingBox returns the segment's bounding box. Arc and ellipse boxes
// are tight; Bézier boxes cover the control polygon.
func (seg Segment) BoundingBox() Rect {
	switch seg.Kind {
	case ArcKind:
		return seg.Arc().BoundingBox()
	case EllipseKind:
		return seg.Ellipse().BoundingBox()
	case LineKind:
		return seg.Line().BoundingBox()
	case BezierKind:
		return seg.Bezier().BoundingBox()
	default:
		return Rect{}
	}
}

// Connector reports whether the segment joins two nodes rather than
// tracing a node's boundary.
func (seg Segment) Connector() bool {
	return seg.Kind == LineKind || seg.Kind == BezierKind
}

func (seg Segment) IsInf() bool {
	return seg.Center.IsInf() || seg.Radii.IsInf() ||
		math.IsInf(seg.XRotation, 0) || math.IsInf(seg.StartAngle, 0) || math.IsInf(seg.SweepAngle, 0) ||
		seg.P0.IsInf() || seg.P1.IsInf() || seg.P2.IsInf() || seg.P3.IsInf() ||
		math.IsInf(seg.Length, 0)
}

func (seg Segment) IsNaN() bool {
	return seg.Center.IsNaN() || seg.Radii.IsNaN() ||
		math.IsNaN(seg.XRotation) || math.IsNaN(seg.StartAngle) || math.IsNaN(seg.SweepAngle) ||
		seg.P0.IsNaN() || seg.P1.IsNaN() || seg.P2.IsNaN() || seg.P3.IsNaN() ||
		math.IsNaN(seg.Length)
}

// Path is an assembled hull outline: segments in travel order, and their
// combined length.
type Path struct {
	Segments []Segment
	Length   float64
}

func (p Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// BoundingBox returns the union of the segments' bounding boxes. The
// zero rectangle is returned for an empty path.
func (p Path) BoundingBox() Rect {
	var bbox Rect
	for i, seg := range p.Segments {
		if i == 0 {
			bbox = seg.BoundingBox()
		} else {
			bbox = bbox.Union(seg.BoundingBox())
		}
	}
	return bbox
}
