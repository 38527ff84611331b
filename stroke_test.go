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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupPointsRemovesConsecutiveDuplicates(t *testing.T) {
	in := []Vec2{Pt(0, 0), Pt(0, 0), Pt(1, 0), Pt(1, 0), Pt(1, 1)}
	got := dedupPoints(in)
	assert.Equal(t, []Vec2{Pt(0, 0), Pt(1, 0), Pt(1, 1)}, got)
}

func TestOffsetVertexStraightLineOffsetsAlongNormal(t *testing.T) {
	n := Pt(0, 1)
	got := offsetVertex(Pt(5, 5), n, n, 1)
	assert.InDelta(t, 5, got.X, 1e-5)
	assert.InDelta(t, 6, got.Y, 1e-5)
}

func TestOffsetVertexRightAngleMiter(t *testing.T) {
	// A corner turning from +X to +Y: the two edge normals are
	// (0,1) and (-1,0); the miter point should be offset diagonally
	// and farther from the corner than half the stroke width.
	n1 := Pt(0, 1)
	n2 := Pt(-1, 0)
	p := Pt(0, 0)
	got := offsetVertex(p, n1, n2, 1)
	dist := got.Sub(p).Length()
	assert.Greater(t, float64(dist), 1.0)
}

func TestOffsetVertexSharpCornerFallsBackToBevel(t *testing.T) {
	// Nearly antiparallel normals: k blows up, so the result must fall
	// back to the simple n1 offset rather than diverge to infinity.
	n1 := Pt(1, 0)
	n2 := Pt(-0.999, 0.045)
	p := Pt(0, 0)
	got := offsetVertex(p, n1, n2, 1)
	assert.InDelta(t, 1, got.X, 1e-3)
	assert.InDelta(t, 0, got.Y, 1e-3)
}

func TestStrokeOpenProducesSingleClosedContour(t *testing.T) {
	points := []Vec2{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	out := NewPathBuilder()
	strokeOutline(points, false, 2, out)

	p := out.Path()
	closes := 0
	for _, tag := range p.cmds {
		if tag == CmdClose {
			closes++
		}
	}
	require.Equal(t, 1, closes)
}

func TestStrokeClosedProducesTwoContours(t *testing.T) {
	points := []Vec2{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	out := NewPathBuilder()
	strokeOutline(points, true, 2, out)

	p := out.Path()
	moves, closes := 0, 0
	for _, tag := range p.cmds {
		switch tag {
		case CmdMove:
			moves++
		case CmdClose:
			closes++
		}
	}
	require.Equal(t, 2, moves)
	require.Equal(t, 2, closes)
}

func TestStrokeOutlineDegenerateInputIsNoop(t *testing.T) {
	out := NewPathBuilder()
	strokeOutline([]Vec2{Pt(1, 1)}, false, 2, out)
	assert.Empty(t, out.Path().cmds)

	strokeOutline(nil, false, 2, out)
	assert.Empty(t, out.Path().cmds)
}

// Stroking a horizontal segment at width w should cover roughly its
// length times width (within antialiasing slop), exercising the full
// Rasterizer.FillStroke path.
func TestStrokeHorizontalSegmentCoversExpectedArea(t *testing.T) {
	p := NewPathBuilder().Move(Pt(2, 5)).Line(Pt(22, 5)).Path()

	b := newRecordingBuilder()
	StrokePath(p, Identity, 4, b)

	wantArea := 20.0 * 4.0
	assert.InDelta(t, wantArea, b.totalCoverage(), 8)
}
