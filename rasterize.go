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

// tileSize is the edge length, in pixels, of a coverage tile (see
// TileBuilder). It is fixed at build time, not configurable.
const tileSize = 8

// Increment is one pixel's contribution to the signed-area coverage
// accumulator. Area is the antialiasing correction local to pixel
// (X, Y); Height is the winding-number delta that applies to (X, Y)
// itself and carries forward into every pixel to its right in the same
// row, added to the Heights of any further Increments in that row.
//
// A pixel's final coverage is area[x] plus the running sum of height
// over every column at or to its left in the same row.
type Increment struct {
	X, Y   int
	Area   float32
	Height float32
}

// TileIncrement records that, for local pixel row Row (0..tileSize-1)
// of tile row TileY, the accumulated winding number to the left of
// tile column TileX changes by Sign. A segment contributes one of
// these per pixel row it crosses, not per tile: a diagonal edge that
// only grazes the top of a tile's height must not be treated as
// covering the tile's full height. rasterize stores these in the bin
// of tile (TileX, TileY), so that tile gets a bin of its own, but the
// tile assembler does not add their signs to its carry: the carry that
// emitTile threads along the row already contains every segment's
// Heights, and gap detection works from that carry.
type TileIncrement struct {
	TileX, TileY, Row int
	Sign              float32
}

// floorDiv and floorMod implement Euclidean (floored) integer division:
// unlike Go's built-in / and %, which truncate toward zero, these round
// toward negative infinity. Tile indexing requires this, since a path
// can extend to negative device coordinates and a pixel at x=-1 must
// fall in tile -1, not tile 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// accumulateLine walks the line from p0 to p1 in device space, emitting
// one Increment per pixel cell the line's bounding scanlines touch.
// Horizontal lines (p0.Y == p1.Y) contribute nothing and are skipped,
// matching the standard signed-area rasterization identity that only
// vertical extent produces a winding change.
func accumulateLine(p0, p1 Vec2, emit func(Increment)) {
	if p0.Y == p1.Y {
		return
	}

	dir := float32(1)
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
		dir = -1
	}

	dxdy := (p1.X - p0.X) / (p1.Y - p0.Y)
	x := p0.X
	y0 := int(math.Floor(float64(p0.Y)))
	y1 := int(math.Floor(float64(p1.Y)))
	if float32(y1) == p1.Y {
		y1--
	}

	for y := y0; y <= y1; y++ {
		rowTop := float32(y)
		rowBot := float32(y + 1)

		segTop := rowTop
		if p0.Y > rowTop {
			segTop = p0.Y
		}
		segBot := rowBot
		if p1.Y < rowBot {
			segBot = p1.Y
		}

		dy := segBot - segTop
		if dy <= 0 {
			continue
		}

		xNext := x + dxdy*dy
		accumulateRow(y, x, xNext, dy*dir, emit)
		x = xNext
	}
}

// cellDelta is one pixel's raw signed-area delta, in the classic
// single-channel sense: the true antialiased coverage at a pixel is
// the prefix sum of every delta at or to its left in the row.
type cellDelta struct {
	x     int
	delta float32
}

// accumulateRow distributes a signed height d, contributed by a line
// segment that stays within pixel row y while its x coordinate moves
// from x0 to x1, across every pixel column the segment crosses. The
// per-pixel trapezoidal split below follows the standard signed-area
// coverage algorithm (as used by font-rs and, analytically, by
// _examples/gogpu-gg/backend/native/analytic_filler.go).
func accumulateRow(y int, x0, x1, d float32, emit func(Increment)) {
	lo, hi := x0, x1
	if lo > hi {
		lo, hi = hi, lo
	}

	loFloor := float32(math.Floor(float64(lo)))
	loCell := int(loFloor)
	hiCeil := float32(math.Ceil(float64(hi)))
	hiCell := int(hiCeil) - 1

	var deltas []cellDelta

	switch {
	case hiCell <= loCell:
		xmf := 0.5*(x0+x1) - loFloor
		deltas = []cellDelta{
			{loCell, d * (1 - xmf)},
			{loCell + 1, d * xmf},
		}

	default:
		s := 1 / (hi - lo)
		loFrac := lo - loFloor
		a0 := 0.5 * s * (1 - loFrac) * (1 - loFrac)
		hiFrac := hi - hiCeil + 1
		am := s * hiFrac * hiFrac * 0.5

		if hiCell == loCell+1 {
			deltas = []cellDelta{
				{loCell, d * a0},
				{loCell + 1, d * (1 - a0 - am)},
				{hiCell + 1, d * am},
			}
		} else {
			a1 := s * (1.5 - loFrac)
			deltas = append(deltas, cellDelta{loCell, d * a0})
			deltas = append(deltas, cellDelta{loCell + 1, d * (a1 - a0)})
			for x := loCell + 2; x < hiCell; x++ {
				deltas = append(deltas, cellDelta{x, d * s})
			}
			a2 := a1 + float32(hiCell-loCell-2)*s
			deltas = append(deltas, cellDelta{hiCell, d * (1 - a2 - am)})
			deltas = append(deltas, cellDelta{hiCell + 1, d * am})
		}
	}

	emitCells(y, deltas, emit)
}

// emitCells converts a sequence of per-pixel signed-area deltas (whose
// prefix sum across the whole row is the true antialiased coverage)
// into Increment's Area/Height split. The first touched pixel's delta
// is purely local (Area, does not carry); the second touched pixel's
// Height absorbs it back into the running carry, so that every
// pixel's coverage — carry-in, plus every Height at or left of it,
// plus its own Area — reproduces that prefix sum exactly, and the
// carry exiting the row equals the deltas' full total.
func emitCells(y int, deltas []cellDelta, emit func(Increment)) {
	if len(deltas) == 0 {
		return
	}
	emit(Increment{X: deltas[0].x, Y: y, Area: deltas[0].delta})
	if len(deltas) == 1 {
		return
	}
	emit(Increment{X: deltas[1].x, Y: y, Height: deltas[0].delta + deltas[1].delta})
	for _, c := range deltas[2:] {
		emit(Increment{X: c.x, Y: y, Height: c.delta})
	}
}

// TileBuilder receives the output of rasterization. Tile is called once
// per 8x8 pixel tile that holds a bin (and per tile of a gap whose
// coverage differs between pixel rows) at tile coordinates (x, y) —
// i.e. the tile's pixel origin is (x*tileSize, y*tileSize) — with data
// holding row-major coverage values in [0, 255], 64 entries for an 8x8
// tile; such a tile's data may still be uniformly full or empty.
// Span is called instead for runs of gap tiles that are fully covered,
// with x, y and width in pixels, to avoid materializing redundant
// per-pixel data.
type TileBuilder interface {
	Tile(x, y int, data *[64]uint8)
	Span(x, y, width int)
}

// bin accumulates the Increments and TileIncrements that land in one
// tile, keyed by tile coordinates.
type bin struct {
	incs     []Increment
	tileIncs []TileIncrement
}

// rasterize converts a flattened, already-closed polyline walk (see
// flattenPath and Rasterizer.closeSubpathIfOpen) into Tile/Span calls
// on builder. lines is a sequence of device-space segments; each
// contour must already be closed by the caller, since accumulateLine
// does not special-case open contours.
func rasterize(lines []segment, builder TileBuilder) {
	bins := map[[2]int]*bin{}

	touch := func(tx, ty int) *bin {
		key := [2]int{tx, ty}
		b := bins[key]
		if b == nil {
			b = &bin{}
			bins[key] = b
		}
		return b
	}

	for _, seg := range lines {
		accumulateLine(seg.p0, seg.p1, func(inc Increment) {
			tx := floorDiv(inc.X, tileSize)
			ty := floorDiv(inc.Y, tileSize)
			b := touch(tx, ty)
			b.incs = append(b.incs, inc)
		})

		if seg.p0.Y == seg.p1.Y {
			continue
		}
		// A segment that lies entirely to the left of a tile's left
		// edge, for the full height of one pixel row, changes the
		// winding number of every pixel in that tile and every tile to
		// its right in the same row. Record that as a TileIncrement at
		// the tile immediately to the right of the segment's rightmost
		// x, for the row(s) it spans. The assembler does not apply these
		// to its carry (see TileIncrement).
		lo, hi := seg.p0, seg.p1
		if lo.Y > hi.Y {
			lo, hi = hi, lo
		}
		dir := float32(1)
		if seg.p0.Y > seg.p1.Y {
			dir = -1
		}
		xRight := seg.p0.X
		if seg.p1.X > xRight {
			xRight = seg.p1.X
		}
		tx := floorDiv(int(math.Floor(float64(xRight))), tileSize) + 1
		y0 := int(math.Floor(float64(lo.Y)))
		y1 := int(math.Floor(float64(hi.Y)))
		if float32(y1) == hi.Y {
			y1--
		}
		for y := y0; y <= y1; y++ {
			ty := floorDiv(y, tileSize)
			row := floorMod(y, tileSize)
			b := touch(tx, ty)
			b.tileIncs = append(b.tileIncs, TileIncrement{TileX: tx, TileY: ty, Row: row, Sign: dir})
		}
	}

	assembleTiles(bins, builder)
}

// segment is a device-space line, one edge of a flattened, closed
// contour.
type segment struct {
	p0, p1 Vec2
}
