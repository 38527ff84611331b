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

// Rasterizer accumulates a flattened path incrementally and rasterizes
// it against a TileBuilder. Create one instance and reuse it across
// paths (calling Finish in between); its segment buffers grow as
// needed but never shrink. Rasterization itself still allocates its
// per-call tile bins.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	transform Transform

	segments []segment

	strokeSubpaths []strokeSubpathPoints
	curStroke      []Vec2

	point        Vec2
	subpathStart Vec2
	hasSubpath   bool
}

// strokeSubpathPoints is one subpath's worth of flattened points,
// buffered for Stroke, along with whether it was explicitly closed.
type strokeSubpathPoints struct {
	points []Vec2
	closed bool
}

// NewRasterizer returns an empty Rasterizer with the identity
// transform. Call SetTransform before the first MoveTo call if the path
// to be rasterized is not already in device space.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{transform: Identity}
}

// SetTransform installs the affine map applied to every subsequent
// point, until the next SetTransform call (Finish leaves it in place).
func (r *Rasterizer) SetTransform(t Transform) {
	r.transform = t
}

// MoveTo starts a new subpath at p (in the Rasterizer's current input
// space; it is transformed before use).
func (r *Rasterizer) MoveTo(p Vec2) {
	r.flushStrokeSubpath(false)
	r.closeSubpathIfOpen()
	dp := r.transform.Apply(p)
	r.point = dp
	r.subpathStart = dp
	r.hasSubpath = true
	r.curStroke = append(r.curStroke[:0], dp)
}

// LineTo appends a line segment to p.
func (r *Rasterizer) LineTo(p Vec2) {
	dp := r.transform.Apply(p)
	r.segments = append(r.segments, segment{p0: r.point, p1: dp})
	r.curStroke = append(r.curStroke, dp)
	r.point = dp
}

// flushStrokeSubpath moves the in-progress subpath's points into
// strokeSubpaths, recording whether it ended in an explicit Close.
func (r *Rasterizer) flushStrokeSubpath(closed bool) {
	if len(r.curStroke) == 0 {
		return
	}
	points := make([]Vec2, len(r.curStroke))
	copy(points, r.curStroke)
	r.strokeSubpaths = append(r.strokeSubpaths, strokeSubpathPoints{points: points, closed: closed})
	r.curStroke = r.curStroke[:0]
}

// Command appends one path command (Move/Line/Quadratic/Cubic/Conic/
// Close), flattening curves as it goes. pts and weight are interpreted
// the same way PathBuilder's methods use them: pts holds the command's
// control points and endpoint in order, weight is used only for
// CmdConic.
func (r *Rasterizer) Command(tag CmdTag, pts []Vec2, weight float32) {
	switch tag {
	case CmdMove:
		r.MoveTo(pts[0])
	case CmdLine:
		r.LineTo(pts[0])
	case CmdClose:
		r.closeSubpathIfOpen()
		r.flushStrokeSubpath(true)
	default:
		last := r.point
		devPts := make([]Vec2, len(pts))
		for i, p := range pts {
			devPts[i] = r.transform.Apply(p)
		}
		flattenCmd(tag, last, devPts, weight, flattenTolerance, func(t CmdTag, pt Vec2) {
			r.segments = append(r.segments, segment{p0: r.point, p1: pt})
			r.curStroke = append(r.curStroke, pt)
			r.point = pt
		})
	}
}

// closeSubpathIfOpen adds the implicit closing segment back to the
// subpath's start point, regardless of whether an explicit Close
// command was given: the fill accumulator only has meaning for closed
// contours.
func (r *Rasterizer) closeSubpathIfOpen() {
	if !r.hasSubpath {
		return
	}
	if r.point != r.subpathStart {
		r.segments = append(r.segments, segment{p0: r.point, p1: r.subpathStart})
	}
	r.point = r.subpathStart
	r.hasSubpath = false
}

// Fill rasterizes every subpath accumulated so far against the nonzero
// winding rule and calls builder.Tile/builder.Span with the result.
func (r *Rasterizer) Fill(builder TileBuilder) {
	r.closeSubpathIfOpen()
	rasterize(r.segments, builder)
}

// Stroke replaces the accumulated path with the filled outline of
// stroking every accumulated subpath at the given width. It does not
// itself call Fill; call Fill afterwards (or use FillStroke) to
// rasterize the outline and produce output.
//
// Stroke assumes its input is already flattened to line segments: it
// is a programmer error to call it on a Rasterizer holding unflattened
// curve commands added via the low-level segment path, though in
// practice every path reaches Stroke through Command, which flattens
// as it accumulates.
func (r *Rasterizer) Stroke(width float32) {
	r.flushStrokeSubpath(r.hasSubpath && r.point == r.subpathStart)
	r.closeSubpathIfOpen()
	subpaths := r.strokeSubpaths

	out := NewPathBuilder()
	for _, sp := range subpaths {
		strokeOutline(sp.points, sp.closed, width, out)
	}

	r.segments = r.segments[:0]
	r.strokeSubpaths = r.strokeSubpaths[:0]
	r.point = Vec2{}
	r.subpathStart = Vec2{}
	r.hasSubpath = false

	flattenPath(out.Path(), Identity, flattenTolerance, func(tag CmdTag, pt Vec2) {
		switch tag {
		case CmdMove:
			r.point = pt
			r.subpathStart = pt
			r.hasSubpath = true
		case CmdClose:
			r.closeSubpathIfOpen()
		default:
			r.segments = append(r.segments, segment{p0: r.point, p1: pt})
			r.point = pt
		}
	})
}

// FillStroke strokes the accumulated path at width and rasterizes the
// resulting outline, in one call.
func (r *Rasterizer) FillStroke(width float32, builder TileBuilder) {
	r.Stroke(width)
	r.Fill(builder)
}

// Finish resets the Rasterizer to accept a new path, discarding any
// accumulated segments, buffered stroke subpaths and pen state without
// rasterizing them; the transform is kept. Call this between unrelated
// paths that share a Rasterizer instance but whose coverage should not
// be rasterized together: Fill leaves the accumulated segments in
// place, and Stroke replaces them with the stroke outline.
func (r *Rasterizer) Finish() {
	r.segments = r.segments[:0]
	r.strokeSubpaths = r.strokeSubpaths[:0]
	r.curStroke = r.curStroke[:0]
	r.point = Vec2{}
	r.subpathStart = Vec2{}
	r.hasSubpath = false
}

// FillPath is a convenience wrapper that flattens and fills path p
// under transform in a single call, without needing a persistent
// Rasterizer.
func FillPath(p *Path, transform Transform, builder TileBuilder) {
	r := NewRasterizer()
	r.SetTransform(transform)
	w := newWalker(p)
	for _, tag := range p.cmds {
		n := tag.pointsFor()
		pts := make([]Vec2, n)
		for i := 0; i < n; i++ {
			pts[i] = w.cmdPoint(i)
		}
		var weight float32
		if tag == CmdConic {
			weight = w.conicWeight()
		}
		r.Command(tag, pts, weight)
		w.advance(tag)
	}
	r.Fill(builder)
}

// StrokePath is a convenience wrapper that flattens path p under
// transform, strokes it at width, and fills the resulting outline, in
// a single call.
func StrokePath(p *Path, transform Transform, width float32, builder TileBuilder) {
	r := NewRasterizer()
	r.SetTransform(transform)
	w := newWalker(p)
	for _, tag := range p.cmds {
		n := tag.pointsFor()
		pts := make([]Vec2, n)
		for i := 0; i < n; i++ {
			pts[i] = w.cmdPoint(i)
		}
		var weight float32
		if tag == CmdConic {
			weight = w.conicWeight()
		}
		r.Command(tag, pts, weight)
		w.advance(tag)
	}
	r.FillStroke(width, builder)
}
