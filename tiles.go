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

import "sort"

// assembleTiles walks every affected tile row left to right, threading
// a per-pixel-row winding carry across tile boundaries, and calls
// builder.Tile for every tile that holds a bin (and for gap tiles whose
// rows differ) or builder.Span for runs of gap tiles that the carry
// covers fully.
func assembleTiles(bins map[[2]int]*bin, builder TileBuilder) {
	rows := map[int][]int{} // ty -> tx values with a bin, unsorted
	for key := range bins {
		tx, ty := key[0], key[1]
		rows[ty] = append(rows[ty], tx)
	}

	tys := make([]int, 0, len(rows))
	for ty := range rows {
		tys = append(tys, ty)
	}
	sort.Ints(tys)

	for _, ty := range tys {
		txs := rows[ty]
		sort.Ints(txs)
		assembleRow(ty, txs, bins, builder)
	}
}

// assembleRow processes one tile row. carry[r] is the winding number
// accumulated, for local pixel row r (0..tileSize-1), from every tile
// already processed to the left in this row, including gaps.
func assembleRow(ty int, txs []int, bins map[[2]int]*bin, builder TileBuilder) {
	var carry [tileSize]float32
	prevTx := 0

	for i, tx := range txs {
		if i > 0 && tx > prevTx+1 {
			emitGap(prevTx+1, tx, ty, carry, builder)
		}

		b := bins[[2]int{tx, ty}]
		emitTile(tx, ty, carry[:], b, builder)
		prevTx = tx
	}
}

// emitGap fills the tile columns [fromTx, toTx) in row ty, none of
// which received any Increment, purely from the carried winding
// number. A carry that gives full coverage in every pixel row becomes
// a Span; a carry that gives zero coverage in every row needs no
// output at all; anything else (the carry differs between pixel rows,
// which happens when the edges to the left only partially overlap the
// tile row vertically) falls back to explicit per-tile coverage.
func emitGap(fromTx, toTx, ty int, carry [tileSize]float32, builder TileBuilder) {
	full, empty := true, true
	for r := 0; r < tileSize; r++ {
		switch coverageToAlpha(carry[r]) {
		case 0:
			full = false
		case 255:
			empty = false
		default:
			full, empty = false, false
		}
	}

	switch {
	case full:
		builder.Span(fromTx*tileSize, ty*tileSize, (toTx-fromTx)*tileSize)
	case empty:
		// Nothing to draw.
	default:
		for tx := fromTx; tx < toTx; tx++ {
			emitUniformTile(tx, ty, carry, builder)
		}
	}
}

// cellKey identifies one pixel's accumulated contribution within a
// tile during assembly.
type cellKey struct{ x, y int }

// emitTile computes one tile's 8x8 coverage mask from its increments
// and the carry entering each of its rows, updates carry in place to
// the value exiting this tile, and calls builder.Tile.
func emitTile(tx, ty int, carry []float32, b *bin, builder TileBuilder) {
	cells := map[cellKey]*Increment{}
	for i := range b.incs {
		inc := b.incs[i]
		localY := inc.Y - ty*tileSize
		if localY < 0 || localY >= tileSize {
			continue
		}
		localX := inc.X - tx*tileSize
		key := cellKey{localX, localY}
		c := cells[key]
		if c == nil {
			c = &Increment{}
			cells[key] = c
		}
		c.Area += inc.Area
		c.Height += inc.Height
	}

	var data [tileSize * tileSize]uint8
	for r := 0; r < tileSize; r++ {
		acc := carry[r]
		for c := 0; c < tileSize; c++ {
			if cell, ok := cells[cellKey{c, r}]; ok {
				acc += cell.Height
				data[r*tileSize+c] = coverageToAlpha(acc + cell.Area)
			} else {
				data[r*tileSize+c] = coverageToAlpha(acc)
			}
		}
		carry[r] = acc
	}

	builder.Tile(tx, ty, &data)
}

// emitUniformTile fills a tile whose coverage is constant per row
// (no Increments landed in it) directly from the carry, without going
// through emitTile's increment bookkeeping.
func emitUniformTile(tx, ty int, carry [tileSize]float32, builder TileBuilder) {
	var data [tileSize * tileSize]uint8
	for r := 0; r < tileSize; r++ {
		v := coverageToAlpha(carry[r])
		for c := 0; c < tileSize; c++ {
			data[r*tileSize+c] = v
		}
	}
	builder.Tile(tx, ty, &data)
}

// coverageToAlpha converts a signed winding-number coverage value to an
// 8-bit alpha using the nonzero fill rule: any nonzero winding number
// is fully covered, clamped smoothly near the boundary.
func coverageToAlpha(coverage float32) uint8 {
	a := coverage
	if a < 0 {
		a = -a
	}
	if a > 1 {
		a = 1
	}
	return uint8(a*255 + 0.5)
}

// roundWinding reports whether carry rounds to a nonzero integer
// winding number, which under the nonzero fill rule counts as covered.
func roundWinding(carry float32) int {
	a := carry
	if a < 0 {
		a = -a
	}
	if a >= 0.5 {
		return 1
	}
	return 0
}
