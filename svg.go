package hull

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path segments to a string of SVG path
// commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func SVG(segs []Segment, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, segs, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path segments to a string of SVG path
// commands and writes it to w.
//
// A move command is emitted for the first segment and for every segment
// that starts a new subpath. Full-turn arcs are emitted as two half
// turns, as a single SVG arc command cannot represent them.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, segs []Segment, opts SVGOptions) error {
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			s = strings.TrimRight(s, "0")
			return strings.TrimRight(s, ".")
		}
	}
	space := []byte(" ")
	first := true
	sep := func() {
		if !first {
			write(space)
		}
		first = false
	}
	arc := func(radii Vec2, rot, sweep float64, end Point) {
		largeArc := 0
		if math.Abs(sweep) > math.Pi {
			largeArc = 1
		}
		// SVG's sweep flag means "direction of increasing angle", which
		// on a y-down canvas is clockwise.
		sweepFlag := 0
		if sweep > 0 {
			sweepFlag = 1
		}
		writef("A%s,%s %s %d %d %s,%s",
			format(radii.X), format(radii.Y),
			format(rot*180/math.Pi),
			largeArc, sweepFlag,
			format(end.X), format(end.Y))
	}
	for _, seg := range segs {
		if err != nil {
			return err
		}
		if first || seg.Subpath {
			start := seg.Start()
			sep()
			writef("M%s,%s", format(start.X), format(start.Y))
		}
		switch seg.Kind {
		case ArcKind, EllipseKind:
			if math.Abs(seg.SweepAngle) >= 2*math.Pi {
				sep()
				arc(seg.Radii, seg.XRotation, seg.SweepAngle/2, seg.Eval(0.5))
				sep()
				arc(seg.Radii, seg.XRotation, seg.SweepAngle/2, seg.End())
			} else {
				sep()
				arc(seg.Radii, seg.XRotation, seg.SweepAngle, seg.End())
			}
		case LineKind:
			sep()
			writef("L%s,%s", format(seg.P1.X), format(seg.P1.Y))
		case BezierKind:
			sep()
			writef("C%s,%s %s,%s %s,%s",
				format(seg.P1.X), format(seg.P1.Y),
				format(seg.P2.X), format(seg.P2.Y),
				format(seg.P3.X), format(seg.P3.Y))
		default:
			panic("unreachable")
		}
	}
	return err
}

// SVG converts the path to a string of SVG path commands.
func (p Path) SVG(opts SVGOptions) string {
	return SVG(p.Segments, opts)
}

// WriteSVG converts the path to a string of SVG path commands and
// writes it to w.
func (p Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Segments, opts)
}
