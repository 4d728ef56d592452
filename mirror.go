package hull

import (
	"math"
)

// coincideTolerance is the center distance below which two path-adjacent
// expanded nodes count as the same circle. Nodes sitting exactly on a
// mirror plane reflect onto themselves and would otherwise appear twice.
const coincideTolerance = 0.01

// ExpandMirror replicates the nodes marked Mirrored around the planes of
// m, returning the base nodes followed by their images, in path order.
//
// The planes divide the plane into 2×Planes dihedral sectors. Sector 0
// holds the input nodes unchanged. Odd sectors reflect the mirrored
// nodes across the next plane boundary; even sectors rotate them. The
// nodes of odd sectors are listed in reverse, so that the assembled
// boundary sweeps around the origin wedge by wedge without doubling
// back. Images that land on their path predecessor (or, wrapping around,
// on the first node) are dropped.
//
// Reflection reverses the roles of a node's entry and exit sides, so
// reflected images swap and negate the angular offsets and swap the
// length multipliers. Travel directions are never flipped; the tangent
// solver compensates when it must pick a side for a reflected node.
func ExpandMirror(nodes []Node, m Mirror) []MirrorNode {
	out := make([]MirrorNode, 0, len(nodes))
	for i, n := range nodes {
		out = append(out, MirrorNode{Node: n, Source: i})
	}
	if !m.Enabled() {
		return out
	}

	var mirrored []MirrorNode
	for i, n := range nodes {
		if n.Mirrored {
			mirrored = append(mirrored, MirrorNode{Node: n, Source: i})
		}
	}
	if len(mirrored) == 0 {
		return out
	}

	step := math.Pi / float64(m.Planes)
	for sector := 1; sector < m.Sectors(); sector++ {
		reflected := sector%2 == 1
		var aff Affine
		if reflected {
			plane := m.StartAngle + float64((sector+1)/2)*step
			aff = Reflect(Point{}, VecFromAngle(plane))
		} else {
			aff = Rotate(float64(sector) * step)
		}
		for j := range mirrored {
			src := mirrored[j]
			if reflected {
				src = mirrored[len(mirrored)-1-j]
			}
			img := src.Node
			img.Center = img.Center.Transform(aff)
			if reflected {
				img.EntryOffset, img.ExitOffset = -src.ExitOffset, -src.EntryOffset
				img.EntryLength, img.ExitLength = src.ExitLength, src.EntryLength
			}
			out = append(out, MirrorNode{Node: img, Source: src.Source, Sector: sector})
		}
	}

	return dedupExpanded(out)
}

// dedupExpanded drops expanded nodes that coincide with their path
// predecessor, and a trailing node that coincides with the first.
func dedupExpanded(nodes []MirrorNode) []MirrorNode {
	if len(nodes) < 2 {
		return nodes
	}
	out := nodes[:1]
	for _, n := range nodes[1:] {
		if n.Center.Distance(out[len(out)-1].Center) < coincideTolerance {
			continue
		}
		out = append(out, n)
	}
	if len(out) > 1 && out[len(out)-1].Center.Distance(out[0].Center) < coincideTolerance {
		out = out[:len(out)-1]
	}
	return out
}
