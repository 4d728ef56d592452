// Package hull builds smooth outlines around ordered sequences of
// circles.
//
// The package implements the geometric core of a path editor: the user
// places circles ("nodes"), assigns each a rotation direction, and the
// editor threads a single continuous path around them. Each node
// contributes an arc along its circle, and consecutive nodes are joined
// by connectors that leave one circle and meet the next tangentially,
// so the assembled path has a continuous tangent everywhere.
//
// # Nodes and paths
//
// [Node] describes one circle: center, radius, rotation direction, and
// optional fine-tuning of where the path enters and leaves the circle.
// [Assemble] turns a sequence of nodes into a [Path], a flat list of
// [Segment] values. Segments are circular arcs, elliptical arcs,
// straight lines, or cubic Béziers; every segment remembers the node it
// was generated from, which lets an editor map clicks on the path back
// to nodes.
//
// Whether two consecutive nodes are joined by an outer or a crossing
// tangent follows from their rotation directions: nodes rotating in the
// same direction share an outer tangent, nodes rotating in opposite
// directions a crossing one. This is the same rule that governs a belt
// around two pulleys.
//
// Arcs can be stretched into elliptical arcs to exaggerate or flatten
// the path's bulge around a node; see [Node.Stretch].
//
// # Coordinate system
//
// Points are interpreted as being part of a graphics coordinate system,
// where the Y axis grows downwards. Positive angles then rotate from
// the positive X axis towards the positive Y axis, which appears
// clockwise on screen, and arcs with a positive sweep run clockwise.
//
// # Mirroring
//
// [Mirror] repeats nodes kaleidoscopically: k mirror planes through the
// origin, at equal angular spacing, expand each mirrored node into up
// to 2k images, alternating between rotated and reflected copies. The
// expanded sequence orders the images so that the assembled path is
// itself symmetric. [ExpandMirror] exposes the expansion.
//
// # Queries and rendering
//
// [Path.Nearest] returns the point on the path closest to a query
// point; [Path.NearestConnector] restricts the search to connector
// segments. Paths render to SVG path data with [SVG] and [WriteSVG].
package hull
