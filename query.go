package hull

import (
	"math"
)

// sampleNearest approximates the nearest point on a parametric curve by
// sampling it at a fixed resolution and refining the best interval with
// a ternary search.
func sampleNearest(eval func(float64) Point, pt Point) (distSq, t float64) {
	const samples = 64
	dist := func(t float64) float64 {
		return eval(t).DistanceSquared(pt)
	}
	best := 0.0
	bestDist := dist(0)
	for i := 1; i <= samples; i++ {
		t := float64(i) / samples
		if d := dist(t); d < bestDist {
			bestDist, best = d, t
		}
	}
	lo := max(best-1.0/samples, 0)
	hi := min(best+1.0/samples, 1)
	for i := 0; i < 40; i++ {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if dist(m1) <= dist(m2) {
			hi = m2
		} else {
			lo = m1
		}
	}
	t = (lo + hi) / 2
	return dist(t), t
}

// Hit describes the result of a nearest-point query against a path.
type Hit struct {
	// Segment is the index of the hit segment in [Path.Segments].
	Segment int
	// Node is the hit segment's source node index.
	Node int
	// Point is the closest point on the path.
	Point Point
	// Distance is the distance from the query point to Point.
	Distance float64
}

func (p Path) nearest(pt Point, match func(Segment) bool) (Hit, bool) {
	if pt.IsNaN() || pt.IsInf() {
		return Hit{}, false
	}
	bestDist := math.Inf(1)
	var hit Hit
	found := false
	for i, seg := range p.Segments {
		if !match(seg) {
			continue
		}
		d, t := seg.Nearest(pt)
		if d < bestDist {
			bestDist = d
			hit = Hit{
				Segment:  i,
				Node:     seg.Node,
				Point:    seg.Eval(t),
				Distance: math.Sqrt(d),
			}
			found = true
		}
	}
	return hit, found
}

// Nearest returns the point on the path closest to pt. It reports false
// for an empty path or a non-finite query point.
func (p Path) Nearest(pt Point) (Hit, bool) {
	return p.nearest(pt, func(seg Segment) bool { return true })
}

// NearestConnector returns the point on the connector segment closest
// to pt, provided its distance is at most threshold. Boundary arcs are
// ignored.
func (p Path) NearestConnector(pt Point, threshold float64) (Hit, bool) {
	hit, ok := p.nearest(pt, func(seg Segment) bool { return seg.Connector() })
	if !ok || hit.Distance > threshold {
		return Hit{}, false
	}
	return hit, true
}
