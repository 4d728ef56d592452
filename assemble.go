package hull

import (
	"math"
)

const (
	// connectorTension is the control point distance of curved
	// connectors, as a fraction of the chord length.
	connectorTension = 0.4
	// minStretch is the stretch magnitude below which arcs stay
	// circular.
	minStretch = 0.01
	// connectorEpsilon is the chord length under which a connector
	// collapses to a point and is dropped.
	connectorEpsilon = 1e-9
)

// Options control how Assemble turns nodes into a path.
type Options struct {
	// Closed joins the last node back to the first.
	Closed bool
	// WrapStart caps an open path's first node with an arc that enters
	// on the far side of the circle, opposite the node's exit. Without
	// it the first node contributes no arc, only its connector. It is
	// ignored for closed paths.
	WrapStart bool
	// WrapEnd does the same for an open path's last node.
	WrapEnd bool
	// Stretch is the stretch factor for nodes that don't carry their
	// own. See [Node.Stretch] for its meaning and range.
	Stretch float64
	// Mirror expands the node sequence symmetrically before assembly.
	Mirror Mirror
}

// DefaultOptions describe a closed path with no stretch and no
// mirroring. Wrapping is enabled so that merely clearing Closed yields
// capped ends.
var DefaultOptions = Options{
	Closed:    true,
	WrapStart: true,
	WrapEnd:   true,
}

// WithClosed returns a copy of the options with the closed flag set to
// closed.
func (opts Options) WithClosed(closed bool) Options {
	opts.Closed = closed
	return opts
}

// WithWrap returns a copy of the options with the open-end wrapping
// flags set to start and end.
func (opts Options) WithWrap(start, end bool) Options {
	opts.WrapStart = start
	opts.WrapEnd = end
	return opts
}

// WithStretch returns a copy of the options with the default stretch
// factor set to stretch.
func (opts Options) WithStretch(stretch float64) Options {
	opts.Stretch = stretch
	return opts
}

// WithMirror returns a copy of the options with the mirror set to m.
func (opts Options) WithMirror(m Mirror) Options {
	opts.Mirror = m
	return opts
}

// Assemble builds the outline path for a sequence of nodes.
//
// Each node contributes an arc along its circle, traversed in the
// node's rotation direction, and consecutive nodes are joined by
// connectors that leave and meet the circles tangentially. Connectors
// are straight lines unless entry/exit offsets or lengths bend them
// into cubic Béziers. For closed paths the last node connects back to
// the first; open paths can cap their first and last arcs per the
// wrapping options.
//
// If mirroring is enabled, the node sequence is expanded first. Each
// segment reports the index of the node in nodes it was generated
// from.
//
// Pairs of nodes without a common tangent (concentric circles, or one
// containing the other) get neither arcs nor a connector there; the
// path continues as a new subpath. An empty path is returned if nodes
// is empty or any node is invalid.
func Assemble(nodes []Node, opts Options) Path {
	if len(nodes) == 0 {
		return Path{}
	}
	for _, nd := range nodes {
		if !nd.IsValid() {
			return Path{}
		}
	}

	x := ExpandMirror(nodes, opts.Mirror)
	n := len(x)
	last := n - 1

	if n == 1 {
		// A lone node is a full circle. Stretch doesn't apply, as
		// there is no chord to stretch against.
		seg := Arc{
			Center:     x[0].Center,
			Radius:     x[0].Radius,
			SweepAngle: x[0].Direction.Sign() * 2 * math.Pi,
		}.Seg()
		seg.Node = x[0].Source
		seg.Subpath = true
		return Path{Segments: []Segment{seg}, Length: seg.Length}
	}

	// Tangents between consecutive nodes, including the wraparound pair,
	// so that entry lookups below can index uniformly.
	tans := make([]Tangent, n)
	tanOK := make([]bool, n)
	for i := range x {
		j := (i + 1) % n
		tans[i], tanOK[i] = TangentBetween(x[i].Node, x[j].Node, x[i].Reflected())
	}

	// Entry and exit angles per node, from the adjacent tangents. Open
	// paths have no wraparound tangent; their end nodes stay
	// half-specified and are completed, or dropped, below.
	entry := make([]float64, n)
	exit := make([]float64, n)
	hasEntry := make([]bool, n)
	hasExit := make([]bool, n)
	for i := range x {
		prev := (i - 1 + n) % n
		if tanOK[prev] && (opts.Closed || i > 0) {
			entry[i] = tans[prev].ToAngle
			hasEntry[i] = true
		}
		if tanOK[i] && (opts.Closed || i < last) {
			exit[i] = tans[i].FromAngle
			hasExit[i] = true
		}
	}

	// emitArc[i] is true when both angles are known. The ends of an
	// open path have only one; wrapping completes the missing angle
	// with the far side of the circle, otherwise the arc is dropped and
	// only the end node's connector is drawn.
	emitArc := make([]bool, n)
	for i := range x {
		emitArc[i] = hasEntry[i] && hasExit[i]
		if opts.Closed {
			continue
		}
		if i == 0 && opts.WrapStart && !hasEntry[i] && hasExit[i] {
			entry[i] = exit[i] + math.Pi
			emitArc[i] = true
		}
		if i == last && opts.WrapEnd && hasEntry[i] && !hasExit[i] {
			exit[i] = entry[i] + math.Pi
			emitArc[i] = true
		}
	}

	// The offsets rotate the contact angles along the travel direction.
	for i := range x {
		s := x[i].Direction.Sign()
		entry[i] += x[i].EntryOffset * s
		exit[i] += x[i].ExitOffset * s
	}

	var segs []Segment
	pending := true
	add := func(seg Segment, node int) {
		if seg.IsNaN() || seg.IsInf() {
			pending = true
			return
		}
		seg.Node = node
		seg.Subpath = pending
		pending = false
		segs = append(segs, seg)
	}

	for i := range x {
		nd := x[i]
		s := nd.Direction.Sign()

		if emitArc[i] {
			a := Arc{
				Center:     nd.Center,
				Radius:     nd.Radius,
				StartAngle: entry[i],
				SweepAngle: sweepBetween(entry[i], exit[i], s),
			}
			if st := resolveStretch(nd.Node, opts.Stretch); math.Abs(st) >= minStretch {
				add(a.Stretched(st).Seg(), nd.Source)
			} else {
				add(a.Seg(), nd.Source)
			}
		} else if hasEntry[i] || hasExit[i] {
			// Half-specified: an unwrapped open end, or a neighbor of
			// a failed tangent. No arc, but a valid connector still
			// gets drawn.
		} else {
			pending = true
		}

		if i == last && !opts.Closed {
			continue
		}
		if !tanOK[i] {
			pending = true
			continue
		}
		j := (i + 1) % n
		from := pointOnCircle(nd.Center, nd.Radius, exit[i])
		to := pointOnCircle(x[j].Center, x[j].Radius, entry[j])
		chord := to.Sub(from).Hypot()
		if chord <= connectorEpsilon {
			// The circles touch; the arcs share the point and no
			// connector is needed.
			continue
		}
		curved := nd.ExitOffset != 0 || x[j].EntryOffset != 0 ||
			resolveLength(nd.ExitLength) != 1 || resolveLength(x[j].EntryLength) != 1
		if curved {
			exitDir := travelDir(exit[i], nd.Direction)
			entryDir := travelDir(entry[j], x[j].Direction)
			cp1 := from.Translate(exitDir.Mul(chord * connectorTension * resolveLength(nd.ExitLength)))
			cp2 := to.Translate(entryDir.Mul(-chord * connectorTension * resolveLength(x[j].EntryLength)))
			add(CubicBez{from, cp1, cp2, to}.Seg(), nd.Source)
		} else {
			add(Line{from, to}.Seg(), nd.Source)
		}
	}

	var total float64
	for _, seg := range segs {
		total += seg.Length
	}
	return Path{Segments: segs, Length: total}
}
