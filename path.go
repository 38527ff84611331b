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

// CmdTag identifies the kind of a path command. Commands are stored as
// parallel tag/point arrays rather than a tagged union: the point and
// weight payload for a command is cache-friendly to scan linearly and
// the per-variant arity (0-3 points) is fixed, so an enum-indexed
// variant type would only add an extra pointer indirection for no gain.
type CmdTag uint8

const (
	CmdMove CmdTag = iota
	CmdLine
	CmdQuadratic
	CmdCubic
	CmdConic
	CmdClose
)

// pointsFor reports how many Vec2 control/endpoints a command of this
// tag consumes from Path.pts.
func (c CmdTag) pointsFor() int {
	switch c {
	case CmdMove, CmdLine:
		return 1
	case CmdQuadratic:
		return 2
	case CmdCubic:
		return 3
	case CmdConic:
		return 2
	case CmdClose:
		return 0
	default:
		return 0
	}
}

// Path is an immutable-once-built command stream: Move/Line/Quadratic/
// Cubic/Conic/Close tags plus their point data. A Conic command also
// carries a rational weight, stored in weights indexed by the command's
// position among Conic commands.
//
// The same Path can be flattened or rasterized repeatedly; nothing in
// this package mutates a Path after PathBuilder returns it.
type Path struct {
	cmds    []CmdTag
	pts     []Vec2
	weights []float32
}

// PathBuilder appends commands to a Path under construction.
type PathBuilder struct {
	p Path
}

// NewPathBuilder returns an empty builder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{}
}

// Move begins a new subpath at p.
func (b *PathBuilder) Move(p Vec2) *PathBuilder {
	b.p.cmds = append(b.p.cmds, CmdMove)
	b.p.pts = append(b.p.pts, p)
	return b
}

// Line appends a line segment to p.
func (b *PathBuilder) Line(p Vec2) *PathBuilder {
	b.p.cmds = append(b.p.cmds, CmdLine)
	b.p.pts = append(b.p.pts, p)
	return b
}

// Quadratic appends a quadratic Bezier segment with control point c and
// endpoint p.
func (b *PathBuilder) Quadratic(c, p Vec2) *PathBuilder {
	b.p.cmds = append(b.p.cmds, CmdQuadratic)
	b.p.pts = append(b.p.pts, c, p)
	return b
}

// Cubic appends a cubic Bezier segment with controls c1, c2 and
// endpoint p.
func (b *PathBuilder) Cubic(c1, c2, p Vec2) *PathBuilder {
	b.p.cmds = append(b.p.cmds, CmdCubic)
	b.p.pts = append(b.p.pts, c1, c2, p)
	return b
}

// Conic appends a rational (conic) Bezier segment with control c,
// endpoint p and weight w.
func (b *PathBuilder) Conic(c, p Vec2, w float32) *PathBuilder {
	b.p.cmds = append(b.p.cmds, CmdConic)
	b.p.pts = append(b.p.pts, c, p)
	b.p.weights = append(b.p.weights, w)
	return b
}

// Close returns the pen to the current subpath's first point.
func (b *PathBuilder) Close() *PathBuilder {
	b.p.cmds = append(b.p.cmds, CmdClose)
	return b
}

// Path returns the built path.
func (b *PathBuilder) Path() *Path {
	return &b.p
}

// walker reads a Path command-by-command, threading point and weight
// cursors the way flatten.go and rasterizer.go need.
type walker struct {
	p         *Path
	ptIdx     int
	weightIdx int
}

func newWalker(p *Path) walker {
	return walker{p: p}
}

// cmdPoint returns the i-th point argument (0-based) of the command at
// the walker's current cursor, without advancing it.
func (w *walker) cmdPoint(i int) Vec2 {
	return w.p.pts[w.ptIdx+i]
}

func (w *walker) advance(tag CmdTag) {
	w.ptIdx += tag.pointsFor()
	if tag == CmdConic {
		w.weightIdx++
	}
}

func (w *walker) conicWeight() float32 {
	return w.p.weights[w.weightIdx]
}
