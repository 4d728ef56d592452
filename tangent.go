package hull

import (
	"math"
)

// Tangent describes how a path traveling around one circle hands over to
// the next: the contact angle on each circle, and the contact points
// themselves.
type Tangent struct {
	// FromAngle and ToAngle are the contact angles, measured on the
	// first and second circle respectively.
	FromAngle float64
	ToAngle   float64
	// From and To are the contact points.
	From Point
	To   Point
	// Intersection marks a degenerate result: the circles overlap with
	// opposite travel directions, so no crossing tangent exists and
	// both contact points collapse onto an intersection of the two
	// boundaries.
	Intersection bool
}

// TangentBetween computes the tangent line along which a path leaves
// from and reaches to.
//
// Circles traveled in the same direction are joined by an external
// tangent, touching both on the same side of the center line; circles
// traveled in opposite directions by an internal tangent, which crosses
// between them. The side is chosen from the travel direction of from, so
// that the arc flows into the connector without a kink.
//
// Overlapping circles with opposite directions have no internal tangent;
// the contact degrades to the boundary intersection point on the travel
// side, flagged with Intersection. fromReflected flips which
// intersection is picked and is set for nodes in reflected mirror
// sectors, whose arcs wind the other way around the chosen point.
//
// The second return value is false when no tangent exists: coincident
// centers, one circle containing the other, or a non-finite
// configuration.
func TangentBetween(from, to Node, fromReflected bool) (Tangent, bool) {
	cc := to.Center.Sub(from.Center)
	d := cc.Hypot()
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return Tangent{}, false
	}
	th := cc.Angle()
	side := -from.Direction.Sign()

	if from.Direction == to.Direction {
		k := (from.Radius - to.Radius) / d
		if k < -1 || k > 1 {
			// One circle contains the other; no external tangent.
			return Tangent{}, false
		}
		// The external tangent's contact angle is the same on both
		// circles.
		angle := th + side*math.Acos(k)
		return Tangent{
			FromAngle: angle,
			ToAngle:   angle,
			From:      pointOnCircle(from.Center, from.Radius, angle),
			To:        pointOnCircle(to.Center, to.Radius, angle),
		}, true
	}

	if s := (from.Radius + to.Radius) / d; s <= 1 {
		gamma := math.Asin(s)
		a1 := th + side*(math.Pi/2-gamma)
		a2 := a1 + math.Pi
		return Tangent{
			FromAngle: a1,
			ToAngle:   a2,
			From:      pointOnCircle(from.Center, from.Radius, a1),
			To:        pointOnCircle(to.Center, to.Radius, a2),
		}, true
	}

	// Overlapping circles: fall back to the intersection point of the
	// two boundaries on the travel side.
	a := (d*d + from.Radius*from.Radius - to.Radius*to.Radius) / (2 * d)
	h2 := from.Radius*from.Radius - a*a
	if h2 < 0 {
		return Tangent{}, false
	}
	if fromReflected {
		side = -side
	}
	u := cc.Div(d)
	perp := Vec2{X: -u.Y, Y: u.X}
	p := from.Center.Translate(u.Mul(a)).Translate(perp.Mul(side * math.Sqrt(h2)))
	return Tangent{
		FromAngle:    p.Sub(from.Center).Angle(),
		ToAngle:      p.Sub(to.Center).Angle(),
		From:         p,
		To:           p,
		Intersection: true,
	}, true
}
