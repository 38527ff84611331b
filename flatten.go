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

import "math"

// flattenTolerance is the parametric error bound (device-space units)
// that flattening guarantees. It is a compile-time constant, not a
// runtime knob: the rasterizer always flattens to this precision.
const flattenTolerance = 0.1

// flattenEmit receives Move/Line/Close commands produced by flattening.
// point is meaningless for Close.
type flattenEmit func(tag CmdTag, point Vec2)

// flattenCmd flattens a single command of the given tag, reading its
// control points from pts (already transformed to device space), and
// emits the resulting Move/Line/Close commands to emit. last is the
// current pen position, also in device space; it is only used (and
// required) for Quadratic/Cubic/Conic, whose own "start point" is
// implicit.
func flattenCmd(tag CmdTag, last Vec2, pts []Vec2, weight float32, tolerance float32, emit flattenEmit) {
	switch tag {
	case CmdMove:
		emit(CmdMove, pts[0])
	case CmdLine:
		emit(CmdLine, pts[0])
	case CmdClose:
		emit(CmdClose, Vec2{})
	case CmdQuadratic:
		flattenQuadratic(last, pts[0], pts[1], tolerance, emit)
	case CmdCubic:
		flattenCubic(last, pts[0], pts[1], pts[2], tolerance, emit)
	case CmdConic:
		flattenConic(last, pts[0], pts[1], weight, tolerance, emit)
	}
}

// flattenQuadratic emits Line commands approximating the quadratic
// Bezier with control c and endpoint p2, starting at p0, to within
// tolerance.
func flattenQuadratic(p0, c, p2 Vec2, tolerance float32, emit flattenEmit) {
	a := p0.Sub(c.Mul(2)).Add(p2)
	aLen := a.Length()
	if aLen == 0 {
		emit(CmdLine, p2)
		return
	}

	dt := float32(math.Sqrt(float64(4 * tolerance / aLen)))
	if dt <= 0 || dt >= 1 {
		emit(CmdLine, p2)
		return
	}

	for t := dt; t < 1; t += dt {
		emit(CmdLine, quadraticAt(p0, c, p2, t))
	}
	emit(CmdLine, p2)
}

func quadraticAt(p0, c, p2 Vec2, t float32) Vec2 {
	p01 := Lerp(t, p0, c)
	p12 := Lerp(t, c, p2)
	return Lerp(t, p01, p12)
}

// flattenCubic emits Line commands approximating the cubic Bezier with
// controls c1, c2 and endpoint p3, starting at p0, to within tolerance,
// using Wang's formula to pick the segment count.
func flattenCubic(p0, c1, c2, p3 Vec2, tolerance float32, emit flattenEmit) {
	a := p0.Mul(-1).Add(c1.Mul(3)).Sub(c2.Mul(3)).Add(p3)
	b := p0.Sub(c1.Mul(2)).Add(c2).Mul(3)
	ab := a.Add(b)

	denom := maxFloat32(b.Length(), ab.Length())
	if denom == 0 {
		emit(CmdLine, p3)
		return
	}

	dt := float32(math.Sqrt(math.Sqrt(8) * float64(tolerance) / float64(denom)))
	if dt <= 0 || dt >= 1 {
		emit(CmdLine, p3)
		return
	}

	for t := dt; t < 1; t += dt {
		emit(CmdLine, cubicAt(p0, c1, c2, p3, t))
	}
	emit(CmdLine, p3)
}

func cubicAt(p0, c1, c2, p3 Vec2, t float32) Vec2 {
	p01 := Lerp(t, p0, c1)
	p12 := Lerp(t, c1, c2)
	p23 := Lerp(t, c2, p3)
	p012 := Lerp(t, p01, p12)
	p123 := Lerp(t, p12, p23)
	return Lerp(t, p012, p123)
}

// flattenConic recursively subdivides the rational quadratic Bezier
// (control c, endpoint p1, weight w) starting at p0, splitting a
// parameter interval whenever the chord midpoint and the curve's true
// midpoint differ by more than tolerance.
func flattenConic(p0, c, p1 Vec2, w float32, tolerance float32, emit flattenEmit) {
	conicSubdivide(p0, c, p1, w, tolerance, emit, 0)
}

const maxConicDepth = 24

func conicSubdivide(p0, c, p1 Vec2, w float32, tolerance float32, emit flattenEmit, depth int) {
	chordMid := Lerp(0.5, p0, p1)
	curveMid := conicAt(p0, c, p1, w, 0.5)

	if depth >= maxConicDepth || chordMid.Sub(curveMid).Length() <= tolerance {
		emit(CmdLine, curveMid)
		emit(CmdLine, p1)
		return
	}

	// Split the conic at t=0.5 into two conics that share one weight:
	// the standard midpoint split for conics gives each half the
	// control point (p0 + w*c)/(1+w) or (w*c + p1)/(1+w) and the weight
	// sqrt((1+w)/2), and the two halves together trace the original
	// curve exactly.
	halfW := float32(math.Sqrt((1 + float64(w)) / 2))
	c0 := p0.Add(c.Mul(w)).Mul(1 / (1 + w))
	c1 := c.Mul(w).Add(p1).Mul(1 / (1 + w))

	conicSubdivide(p0, c0, curveMid, halfW, tolerance, emit, depth+1)
	conicSubdivide(curveMid, c1, p1, halfW, tolerance, emit, depth+1)
}

// conicAt evaluates the rational quadratic Bezier at parameter t.
func conicAt(p0, c, p1 Vec2, w float32, t float32) Vec2 {
	omt := 1 - t
	w0 := omt * omt
	w1 := 2 * omt * t * w
	w2 := t * t
	denom := w0 + w1 + w2
	num := p0.Mul(w0).Add(c.Mul(w1)).Add(p1.Mul(w2))
	return num.Mul(1 / denom)
}

func maxFloat32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// flattenPath flattens every command in p under transform, emitting the
// resulting Move/Line/Close stream to emit. It threads the "current
// point" (last) the way a real pen would, and preserves subpath
// structure: each input Move/Close produces exactly one output
// Move/Close.
func flattenPath(p *Path, transform Transform, tolerance float32, emit flattenEmit) {
	w := newWalker(p)
	var last, subpathStart Vec2
	devPts := make([]Vec2, 0, 3)

	for _, tag := range p.cmds {
		n := tag.pointsFor()
		devPts = devPts[:0]
		for i := 0; i < n; i++ {
			devPts = append(devPts, transform.Apply(w.cmdPoint(i)))
		}

		var weight float32
		if tag == CmdConic {
			weight = w.conicWeight()
		}

		switch tag {
		case CmdMove:
			last = devPts[0]
			subpathStart = last
			emit(CmdMove, last)
		case CmdClose:
			emit(CmdClose, Vec2{})
			last = subpathStart
		default:
			flattenCmd(tag, last, devPts, weight, tolerance, func(t CmdTag, pt Vec2) {
				emit(t, pt)
				last = pt
			})
		}

		w.advance(tag)
	}
}

// FlattenForVector flattens p, translated by (dx, dy), into a stream
// of move/line-to calls suitable for feeding directly into
// golang.org/x/image/vector.Rasterizer: emit is called with move=true
// once per subpath start and move=false for every line segment
// thereafter. Close commands are not reported separately, since
// vector.Rasterizer's own ClosePath call plays that role for callers.
func FlattenForVector(p *Path, dx, dy float32, emit func(move bool, x, y float32)) {
	flattenPath(p, Translate(dx, dy), flattenTolerance, func(tag CmdTag, pt Vec2) {
		switch tag {
		case CmdMove:
			emit(true, pt.X, pt.Y)
		case CmdClose:
			// handled by the caller's own ClosePath
		default:
			emit(false, pt.X, pt.Y)
		}
	})
}
