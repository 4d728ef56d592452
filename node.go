package hull

import (
	"math"
)

// Direction is the direction of travel around a circle.
type Direction int

const (
	// Travel through increasing angles, which is clockwise on a y-down
	// canvas.
	Clockwise Direction = iota
	// Travel through decreasing angles.
	Counterclockwise
)

// Sign returns the angular sign of travel: +1 when angles increase along
// the path, -1 when they decrease. Every direction-dependent decision in
// the package funnels through this mapping.
func (d Direction) Sign() float64 {
	if d == Counterclockwise {
		return -1
	}
	return 1
}

const (
	// MinTangentLength and MaxTangentLength bound a node's EntryLength
	// and ExitLength multipliers.
	MinTangentLength = 0.1
	MaxTangentLength = 3.0

	// MaxStretch bounds the magnitude of the stretch deformation.
	MaxStretch = 1.0
)

// Node is one circle of a hull. The assembled path wraps part of the
// circle's boundary in the node's travel direction and hands over to the
// next node along a connector.
type Node struct {
	// Optional identifier. It is carried through symmetry expansion but
	// has no geometric meaning.
	ID     string
	Center Point
	Radius float64
	// Direction the path travels around the circle.
	Direction Direction
	// EntryOffset and ExitOffset rotate the computed contact angles, in
	// radians, along the travel direction. Nonzero offsets detach the
	// connectors from their tangent points, so they become curves.
	EntryOffset float64
	ExitOffset  float64
	// EntryLength and ExitLength scale the control distances of curved
	// connectors attached to this node, clamped to [MinTangentLength,
	// MaxTangentLength]. The zero value means a multiplier of one.
	EntryLength float64
	ExitLength  float64
	// Stretch overrides the path-wide stretch for this node's arc when
	// StretchSet is true.
	Stretch    float64
	StretchSet bool
	// Mirrored marks the node for symmetry expansion.
	Mirrored bool
}

// IsValid reports whether the node can take part in a path: a finite
// center and a positive, finite radius.
func (n Node) IsValid() bool {
	return !n.Center.IsNaN() && !n.Center.IsInf() &&
		n.Radius > 0 && !math.IsInf(n.Radius, 0)
}

// Mirror configures dihedral symmetry: Planes mirror planes through the
// origin, spaced π/Planes apart, the set anchored at StartAngle radians.
// The zero value disables expansion.
type Mirror struct {
	Planes     int
	StartAngle float64
}

// Enabled reports whether the mirror describes at least one plane.
func (m Mirror) Enabled() bool {
	return m.Planes > 0
}

// Sectors returns the number of dihedral sectors, twice the plane count.
func (m Mirror) Sectors() int {
	return 2 * m.Planes
}

// MirrorNode is a node placed by symmetry expansion, together with its
// provenance.
type MirrorNode struct {
	Node
	// Source is the index of the originating node in the input slice.
	Source int
	// Sector is the dihedral sector the node was placed in. Sector 0
	// holds the input itself; even sectors are rotated images, odd
	// sectors reflected ones.
	Sector int
}

// Reflected reports whether the node lives in a reflected sector.
func (mn MirrorNode) Reflected() bool {
	return mn.Sector%2 == 1
}

// resolveStretch returns the stretch to apply to a node's arc: the
// node's own override when set, otherwise the path-wide default, clamped
// to [-MaxStretch, MaxStretch].
func resolveStretch(n Node, def float64) float64 {
	s := def
	if n.StretchSet {
		s = n.Stretch
	}
	return min(max(s, -MaxStretch), MaxStretch)
}

// resolveLength clamps a tangent length multiplier to its valid range.
// The zero value selects the default multiplier of one.
func resolveLength(l float64) float64 {
	if l == 0 {
		return 1
	}
	return min(max(l, MinTangentLength), MaxTangentLength)
}

// travelDir returns the unit direction of travel at the given contact
// angle on a circle traversed in direction d.
func travelDir(angle float64, d Direction) Vec2 {
	return VecFromAngle(angle + d.Sign()*math.Pi/2)
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return center.Translate(
		Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
}
