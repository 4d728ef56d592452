package hull

import (
	"math"
	"testing"
)

func TestArcEval(t *testing.T) {
	const epsilon = 1e-12
	a := Arc{Center: Pt(1, 2), Radius: 2, StartAngle: 0, SweepAngle: math.Pi / 2}

	assertNear(t, a.Eval(0), Pt(3, 2), epsilon)
	assertNear(t, a.Eval(0.5), Pt(1+math.Sqrt2, 2+math.Sqrt2), epsilon)
	assertNear(t, a.Eval(1), Pt(1, 4), epsilon)
	assertNear(t, a.Start(), a.Eval(0), epsilon)
	assertNear(t, a.End(), a.Eval(1), epsilon)

	// A negative sweep traces the same angles the other way around.
	b := Arc{Center: Pt(1, 2), Radius: 2, StartAngle: math.Pi / 2, SweepAngle: -math.Pi / 2}
	assertNear(t, b.Start(), a.End(), epsilon)
	assertNear(t, b.Eval(0.5), a.Eval(0.5), epsilon)
	assertNear(t, b.End(), a.Start(), epsilon)
}

func TestArcArclen(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-12
	}

	a := Arc{Center: Pt(5, -3), Radius: 2, StartAngle: 1, SweepAngle: math.Pi}
	if got := a.Arclen(); !approxEqual(got, 2*math.Pi) {
		t.Errorf("got arc length %v, want %v", got, 2*math.Pi)
	}
	a.SweepAngle = -math.Pi / 2
	if got := a.Arclen(); !approxEqual(got, math.Pi) {
		t.Errorf("got arc length %v, want %v", got, math.Pi)
	}
}

func TestArcCCW(t *testing.T) {
	if (Arc{SweepAngle: 1}).CCW() {
		t.Error("positive sweep should not be CCW")
	}
	if !(Arc{SweepAngle: -1}).CCW() {
		t.Error("negative sweep should be CCW")
	}
}

func TestArcBoundingBox(t *testing.T) {
	approxEqual := func(r0, r1 Rect) bool {
		return math.Abs(r0.X0-r1.X0) < 1e-9 &&
			math.Abs(r0.Y0-r1.Y0) < 1e-9 &&
			math.Abs(r0.X1-r1.X1) < 1e-9 &&
			math.Abs(r0.Y1-r1.Y1) < 1e-9
	}

	// Quarter arc; both endpoints are axis extrema.
	a := Arc{Center: Pt(0, 0), Radius: 1, StartAngle: 0, SweepAngle: math.Pi / 2}
	if got, want := a.BoundingBox().Abs(), (Rect{0, 0, 1, 1}); !approxEqual(got, want) {
		t.Errorf("got bounding box %v, want %v", got, want)
	}

	// Half arc through the positive x axis; the extremum at angle zero
	// sticks out beyond the endpoints.
	b := Arc{Center: Pt(0, 0), Radius: 1, StartAngle: -math.Pi / 2, SweepAngle: math.Pi}
	if got, want := b.BoundingBox().Abs(), (Rect{0, -1, 1, 1}); !approxEqual(got, want) {
		t.Errorf("got bounding box %v, want %v", got, want)
	}

	// The same arc with a negative sweep covers the same points.
	c := Arc{Center: Pt(0, 0), Radius: 1, StartAngle: math.Pi / 2, SweepAngle: -math.Pi}
	if got, want := c.BoundingBox().Abs(), b.BoundingBox().Abs(); !approxEqual(got, want) {
		t.Errorf("got bounding box %v, want %v", got, want)
	}

	// Full circle.
	d := Arc{Center: Pt(2, 3), Radius: 1, SweepAngle: 2 * math.Pi}
	if got, want := d.BoundingBox().Abs(), (Rect{1, 2, 3, 4}); !approxEqual(got, want) {
		t.Errorf("got bounding box %v, want %v", got, want)
	}
}

func TestArcNearest(t *testing.T) {
	verify := func(a Arc, pt Point, wantDist, wantT float64) {
		t.Helper()
		distSq, got := a.Nearest(pt)
		if math.Abs(got-wantT) > 1e-9 {
			t.Errorf("got t %v, want %v", got, wantT)
		}
		if d := math.Sqrt(distSq); math.Abs(d-wantDist) > 1e-9 {
			t.Errorf("got distance %v, want %v", d, wantDist)
		}
	}

	// Half arc through the positive y axis.
	a := Arc{Center: Pt(0, 0), Radius: 1, StartAngle: 0, SweepAngle: math.Pi}

	// Radially outside and inside the covered sweep.
	verify(a, Pt(0, 2), 1, 0.5)
	verify(a, Pt(0, 0.5), 0.5, 0.5)
	verify(a, Pt(2, 0), 1, 0)

	// Opposite the covered sweep the endpoints are closest.
	verify(a, Pt(0.5, -2), math.Hypot(0.5, 2), 0)
	verify(a, Pt(-0.5, -2), math.Hypot(0.5, 2), 1)

	// Negative sweep.
	b := Arc{Center: Pt(0, 0), Radius: 1, StartAngle: math.Pi, SweepAngle: -math.Pi / 2}
	verify(b, Pt(-2, 2), 2*math.Sqrt2-1, 0.5)
	verify(b, Pt(0, 3), 2, 1)
}

func TestArcStretched(t *testing.T) {
	const epsilon = 1e-9

	// Half circle bulging toward negative x.
	a := Arc{Center: Pt(0, 0), Radius: 2, StartAngle: math.Pi / 2, SweepAngle: math.Pi}

	// Stretch zero reproduces the endpoints and the apex.
	e := a.Stretched(0)
	assertNear(t, e.Start(), a.Start(), epsilon)
	assertNear(t, e.End(), a.End(), epsilon)
	assertNear(t, e.Eval(0.5), Pt(-2, 0), epsilon)
	if got := math.Abs(e.SweepAngle); math.Abs(got-math.Pi) > epsilon {
		t.Errorf("got sweep magnitude %v, want %v", got, math.Pi)
	}

	// Positive stretch pushes the apex out, negative pulls it in. The
	// endpoints stay put.
	e = a.Stretched(0.5)
	assertNear(t, e.Start(), a.Start(), epsilon)
	assertNear(t, e.End(), a.End(), epsilon)
	assertNear(t, e.Eval(0.5), Pt(-3, 0), epsilon)

	e = a.Stretched(-0.5)
	assertNear(t, e.Eval(0.5), Pt(-1, 0), epsilon)

	// The bulge side follows the sweep direction: the reversed arc
	// bulges toward positive x.
	b := Arc{Center: Pt(0, 0), Radius: 2, StartAngle: -math.Pi / 2, SweepAngle: math.Pi}
	e = b.Stretched(0.5)
	assertNear(t, e.Eval(0.5), Pt(3, 0), epsilon)

	// Shallow arcs keep a minimum bulge of one.
	c := Arc{Center: Pt(0, 0), Radius: 1, StartAngle: 0, SweepAngle: 0.5}
	if got := c.Stretched(0).Radii.Y; got != 1 {
		t.Errorf("got y radius %v, want 1", got)
	}
}

func TestNormAngle(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-12
	}

	if got := normAngle(0); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
	if got := normAngle(-math.Pi / 2); !approxEqual(got, 3*math.Pi/2) {
		t.Errorf("got %v, want %v", got, 3*math.Pi/2)
	}
	if got := normAngle(5 * math.Pi); !approxEqual(got, math.Pi) {
		t.Errorf("got %v, want %v", got, math.Pi)
	}
	if got := normAngle(2 * math.Pi); !approxEqual(got, 0) {
		t.Errorf("got %v, want 0", got)
	}
}

func TestSweepBetween(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-12
	}

	if got := sweepBetween(0, math.Pi/2, 1); !approxEqual(got, math.Pi/2) {
		t.Errorf("got %v, want %v", got, math.Pi/2)
	}
	// Going the long way around when the exit lies behind the entry.
	if got := sweepBetween(math.Pi/2, 0, 1); !approxEqual(got, 3*math.Pi/2) {
		t.Errorf("got %v, want %v", got, 3*math.Pi/2)
	}
	if got := sweepBetween(0, math.Pi/2, -1); !approxEqual(got, -3*math.Pi/2) {
		t.Errorf("got %v, want %v", got, -3*math.Pi/2)
	}
	if got := sweepBetween(math.Pi/2, 0, -1); !approxEqual(got, -math.Pi/2) {
		t.Errorf("got %v, want %v", got, -math.Pi/2)
	}
	if got := sweepBetween(1, 1, 1); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}
