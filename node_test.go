package hull

import (
	"math"
	"testing"
)

func TestDirectionSign(t *testing.T) {
	if got := Clockwise.Sign(); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
	if got := Counterclockwise.Sign(); got != -1 {
		t.Errorf("got %v, want -1", got)
	}
}

func TestNodeIsValid(t *testing.T) {
	n := Node{Center: Pt(1, 2), Radius: 3}
	if !n.IsValid() {
		t.Error("expected node to be valid")
	}

	invalid := []Node{
		{Center: Pt(1, 2), Radius: 0},
		{Center: Pt(1, 2), Radius: -1},
		{Center: Pt(1, 2), Radius: math.Inf(1)},
		{Center: Pt(1, 2), Radius: math.NaN()},
		{Center: Pt(math.NaN(), 2), Radius: 3},
		{Center: Pt(1, math.Inf(-1)), Radius: 3},
	}
	for i, n := range invalid {
		if n.IsValid() {
			t.Errorf("expected node %d to be invalid", i)
		}
	}
}

func TestResolveLength(t *testing.T) {
	if got := resolveLength(0); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
	if got := resolveLength(1.7); got != 1.7 {
		t.Errorf("got %v, want 1.7", got)
	}
	if got := resolveLength(0.05); got != MinTangentLength {
		t.Errorf("got %v, want %v", got, MinTangentLength)
	}
	if got := resolveLength(5); got != MaxTangentLength {
		t.Errorf("got %v, want %v", got, MaxTangentLength)
	}
}

func TestResolveStretch(t *testing.T) {
	// Without an override the path-wide default applies.
	if got := resolveStretch(Node{}, 0.5); got != 0.5 {
		t.Errorf("got %v, want 0.5", got)
	}
	// An override replaces the default, even when it is zero.
	if got := resolveStretch(Node{Stretch: -0.3, StretchSet: true}, 0.5); got != -0.3 {
		t.Errorf("got %v, want -0.3", got)
	}
	if got := resolveStretch(Node{Stretch: 0, StretchSet: true}, 0.5); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
	// Both sources are clamped.
	if got := resolveStretch(Node{}, 2); got != MaxStretch {
		t.Errorf("got %v, want %v", got, MaxStretch)
	}
	if got := resolveStretch(Node{Stretch: -5, StretchSet: true}, 0); got != -MaxStretch {
		t.Errorf("got %v, want %v", got, -MaxStretch)
	}
}

func TestMirrorSectors(t *testing.T) {
	if (Mirror{}).Enabled() {
		t.Error("zero mirror should be disabled")
	}
	m := Mirror{Planes: 2}
	if !m.Enabled() {
		t.Error("mirror with planes should be enabled")
	}
	if got := m.Sectors(); got != 4 {
		t.Errorf("got %d sectors, want 4", got)
	}
}

func TestMirrorNodeReflected(t *testing.T) {
	for sector, want := range []bool{false, true, false, true} {
		mn := MirrorNode{Sector: sector}
		if got := mn.Reflected(); got != want {
			t.Errorf("sector %d: got %v, want %v", sector, got, want)
		}
	}
}

func TestTravelDir(t *testing.T) {
	const epsilon = 1e-12
	near := func(got, want Vec2) {
		t.Helper()
		if got.Sub(want).Hypot() > epsilon {
			t.Errorf("got %s, want %s", got, want)
		}
	}

	// At the rightmost point of a circle, clockwise travel heads into
	// positive y, counterclockwise into negative y.
	near(travelDir(0, Clockwise), Vec(0, 1))
	near(travelDir(0, Counterclockwise), Vec(0, -1))
	near(travelDir(math.Pi/2, Clockwise), Vec(-1, 0))
	near(travelDir(math.Pi/2, Counterclockwise), Vec(1, 0))
}

func TestPointOnCircle(t *testing.T) {
	const epsilon = 1e-12
	assertNear(t, pointOnCircle(Pt(1, 2), 2, 0), Pt(3, 2), epsilon)
	assertNear(t, pointOnCircle(Pt(1, 2), 2, math.Pi/2), Pt(1, 4), epsilon)
	assertNear(t, pointOnCircle(Pt(1, 2), 2, math.Pi), Pt(-1, 2), epsilon)
}
