// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

// miterClampFactor bounds the corner-offset multiplier k = 1/(1+n1·n2)
// used at each interior vertex: when the two edges meeting at a vertex
// nearly double back on themselves, k grows without bound, so corners
// sharper than this are not mitered: offsetVertex places the corner's
// single vertex at the incoming edge's plain offset (p + half*n1), and
// the outgoing edge's offset point is not emitted.
const miterClampFactor = 2

// strokeOutline turns the points of one flattened subpath into the
// filled outline of its stroke, appended to out: one closed contour
// for an open subpath, two (outer and inner ring) for a closed one.
// Only butt caps and miter joins are supported; this rasteriser has no
// notion of round or square caps, or bevel or round joins, other than
// the automatic fallback above.
//
// Consecutive coincident points are removed first; a subpath of fewer
// than two distinct points contributes nothing to the outline.
func strokeOutline(points []Vec2, closed bool, width float32, out *PathBuilder) {
	points = dedupPoints(points)
	if closed && len(points) > 1 && points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}
	if len(points) < 2 {
		return
	}

	half := width / 2

	if closed {
		strokeClosed(points, half, out)
		return
	}
	strokeOpen(points, half, out)
}

// dedupPoints removes consecutive duplicate points, which otherwise
// produce degenerate zero-length edges with undefined normals.
func dedupPoints(points []Vec2) []Vec2 {
	if len(points) == 0 {
		return points
	}
	out := points[:1]
	for _, p := range points[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// edgeNormal returns the unit normal to the edge from a to b, rotated
// 90 degrees counter-clockwise from the edge direction.
func edgeNormal(a, b Vec2) Vec2 {
	d := b.Sub(a).Normalized()
	return Vec2{X: -d.Y, Y: d.X}
}

// offsetVertex returns the point offset from p by half the stroke
// width along the miter direction of the two adjacent edge normals n1
// (incoming edge) and n2 (outgoing edge), or their bevel fallback when
// the corner is too sharp. The offset formula is
// P + half*k*(n1+n2), k = 1/(1+n1·n2)
// with the clamp on k applied symmetrically so a sharp reflex corner
// falls back to a bevel the same way a sharp convex one does.
func offsetVertex(p Vec2, n1, n2 Vec2, half float32) Vec2 {
	sum := n1.Add(n2)
	denom := 1 + n1.Dot(n2)

	const epsilon = 1e-6
	if denom < epsilon {
		// Near-180-degree turn: the miter direction is undefined, and a
		// bevel (the incoming normal's offset) is used instead.
		return p.Add(n1.Mul(half))
	}

	k := 1 / denom
	if k > miterClampFactor || k < -miterClampFactor {
		return p.Add(n1.Mul(half))
	}

	return p.Add(sum.Mul(half * k))
}

// strokeClosed emits the two offset rings (outer and inner) of a
// closed polyline as one contour each, which the nonzero winding rule
// turns into the stroked annulus.
func strokeClosed(points []Vec2, half float32, out *PathBuilder) {
	n := len(points)
	left := make([]Vec2, n)
	right := make([]Vec2, n)

	for i := 0; i < n; i++ {
		prev := points[(i+n-1)%n]
		cur := points[i]
		next := points[(i+1)%n]

		n1 := edgeNormal(prev, cur)
		n2 := edgeNormal(cur, next)

		left[i] = offsetVertex(cur, n1, n2, half)
		right[i] = offsetVertex(cur, n1.Mul(-1), n2.Mul(-1), half)
	}

	out.Move(left[0])
	for i := 1; i < n; i++ {
		out.Line(left[i])
	}
	out.Close()

	out.Move(right[n-1])
	for i := n - 2; i >= 0; i-- {
		out.Line(right[i])
	}
	out.Close()
}

// strokeOpen emits a single contour: the left offsets forward, a butt
// cap at the end, the right offsets backward, and a butt cap at the
// start.
func strokeOpen(points []Vec2, half float32, out *PathBuilder) {
	n := len(points)
	left := make([]Vec2, n)
	right := make([]Vec2, n)

	startNormal := edgeNormal(points[0], points[1])
	left[0] = points[0].Add(startNormal.Mul(half))
	right[0] = points[0].Add(startNormal.Mul(-half))

	endNormal := edgeNormal(points[n-2], points[n-1])
	left[n-1] = points[n-1].Add(endNormal.Mul(half))
	right[n-1] = points[n-1].Add(endNormal.Mul(-half))

	for i := 1; i < n-1; i++ {
		n1 := edgeNormal(points[i-1], points[i])
		n2 := edgeNormal(points[i], points[i+1])
		left[i] = offsetVertex(points[i], n1, n2, half)
		right[i] = offsetVertex(points[i], n1.Mul(-1), n2.Mul(-1), half)
	}

	out.Move(left[0])
	for i := 1; i < n; i++ {
		out.Line(left[i])
	}
	// Butt cap at the end: straight across to the matching right offset.
	out.Line(right[n-1])
	for i := n - 2; i >= 0; i-- {
		out.Line(right[i])
	}
	// Butt cap at the start closes the contour back to left[0].
	out.Close()
}
