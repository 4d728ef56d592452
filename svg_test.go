package hull

import (
	"math"
	"strings"
	"testing"
)

func TestSVGLines(t *testing.T) {
	segs := []Segment{
		Line{Pt(0, 0), Pt(10, 0)}.Seg(),
		Line{Pt(10, 0), Pt(10, 5)}.Seg(),
	}
	diff(t, "M0,0 L10,0 L10,5", SVG(segs, SVGOptions{}))

	// A subpath break emits a fresh move.
	segs[1].Subpath = true
	diff(t, "M0,0 L10,0 M10,0 L10,5", SVG(segs, SVGOptions{}))
}

func TestSVGArc(t *testing.T) {
	opts := SVGOptions{MaxPrecision: 3}

	// Quarter turn through increasing angles: positive sweep flag.
	seg := Arc{Center: Pt(0, 0), Radius: 1, StartAngle: 0, SweepAngle: math.Pi / 2}.Seg()
	diff(t, "M1,0 A1,1 0 0 1 0,1", SVG([]Segment{seg}, opts))

	// Decreasing angles clear it.
	seg = Arc{Center: Pt(0, 0), Radius: 1, StartAngle: 0, SweepAngle: -math.Pi / 2}.Seg()
	diff(t, "M1,0 A1,1 0 0 0 0,-1", SVG([]Segment{seg}, opts))

	// More than a half turn sets the large-arc flag.
	seg = Arc{Center: Pt(0, 0), Radius: 1, StartAngle: 0, SweepAngle: 7 * math.Pi / 6}.Seg()
	diff(t, "M1,0 A1,1 0 1 1 -0.866,-0.5", SVG([]Segment{seg}, opts))
}

func TestSVGFullCircle(t *testing.T) {
	opts := SVGOptions{MaxPrecision: 3}

	// A full turn cannot be one arc command; it is split in half.
	seg := Arc{Center: Pt(5, 5), Radius: 1, StartAngle: 0, SweepAngle: 2 * math.Pi}.Seg()
	diff(t, "M6,5 A1,1 0 0 1 4,5 A1,1 0 0 1 6,5", SVG([]Segment{seg}, opts))

	seg = Arc{Center: Pt(5, 5), Radius: 1, StartAngle: 0, SweepAngle: -2 * math.Pi}.Seg()
	diff(t, "M6,5 A1,1 0 0 0 4,5 A1,1 0 0 0 6,5", SVG([]Segment{seg}, opts))
}

func TestSVGEllipse(t *testing.T) {
	// The x-axis rotation is emitted in degrees.
	seg := EllipseArc{
		Center:     Pt(0, 0),
		Radii:      Vec(2, 1),
		XRotation:  math.Pi / 2,
		StartAngle: 0,
		SweepAngle: math.Pi / 2,
	}.Seg()
	diff(t, "M0,2 A2,1 90 0 1 -1,0", SVG([]Segment{seg}, SVGOptions{MaxPrecision: 3}))
}

func TestSVGBezier(t *testing.T) {
	seg := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)}.Seg()
	diff(t, "M0,0 C1,2 3,2 4,0", SVG([]Segment{seg}, SVGOptions{}))
}

func TestSVGPrecision(t *testing.T) {
	segs := []Segment{Line{Pt(1.26, 0.04), Pt(2.5, 3)}.Seg()}

	// Trailing zeros and bare decimal points are trimmed.
	diff(t, "M1.3,0 L2.5,3", SVG(segs, SVGOptions{MaxPrecision: 1}))
	diff(t, "M1.26,0.04 L2.5,3", SVG(segs, SVGOptions{MaxPrecision: 2}))

	// Zero means full precision.
	diff(t, "M1.26,0.04 L2.5,3", SVG(segs, SVGOptions{}))
}

func TestPathSVG(t *testing.T) {
	nodes := []Node{
		{Center: Pt(0, 0), Radius: 2, Direction: Clockwise},
		{Center: Pt(10, 0), Radius: 1, Direction: Clockwise},
	}
	p := Assemble(nodes, DefaultOptions)
	want := "M0.2,2 A2,2 0 1 1 0.2,-2 L10.1,-1 A1,1 0 0 1 10.1,1 L0.2,2"
	diff(t, want, p.SVG(SVGOptions{MaxPrecision: 1}))

	sb := &strings.Builder{}
	if err := p.WriteSVG(sb, SVGOptions{MaxPrecision: 1}); err != nil {
		t.Fatal(err)
	}
	diff(t, want, sb.String())
}
