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
)

func TestRasterizerMoveLineFillClosesImplicitly(t *testing.T) {
	r := NewRasterizer()
	r.MoveTo(Pt(0, 0))
	r.LineTo(Pt(8, 0))
	r.LineTo(Pt(8, 8))
	r.LineTo(Pt(0, 8))
	// No explicit Close call: Fill must still treat this as a closed
	// contour.

	b := newRecordingBuilder()
	r.Fill(b)

	assert.InDelta(t, 64, b.totalCoverage(), 1)
}

func TestRasterizerCommandFlattensCurves(t *testing.T) {
	r := NewRasterizer()
	r.Command(CmdMove, []Vec2{Pt(0, 0)}, 0)
	r.Command(CmdQuadratic, []Vec2{Pt(4, 8), Pt(8, 0)}, 0)
	r.Command(CmdClose, nil, 0)

	b := newRecordingBuilder()
	r.Fill(b)

	assert.Greater(t, b.totalCoverage(), 0.0)
}

func TestRasterizerFinishDiscardsPath(t *testing.T) {
	r := NewRasterizer()
	r.MoveTo(Pt(0, 0))
	r.LineTo(Pt(8, 0))
	r.LineTo(Pt(8, 8))
	r.Finish()

	b := newRecordingBuilder()
	r.Fill(b)

	assert.Equal(t, 0, b.tileCalls)
	assert.Equal(t, 0, b.spanCalls)
}

func TestRasterizerFillStrokeProducesCoverage(t *testing.T) {
	r := NewRasterizer()
	r.MoveTo(Pt(0, 0))
	r.LineTo(Pt(20, 0))

	b := newRecordingBuilder()
	r.FillStroke(4, b)

	assert.InDelta(t, 80, b.totalCoverage(), 16)
}

func TestRasterizerSetTransformAppliesBeforeAccumulation(t *testing.T) {
	r := NewRasterizer()
	r.SetTransform(Translate(8, 0))
	r.MoveTo(Pt(0, 0))
	r.LineTo(Pt(8, 0))
	r.LineTo(Pt(8, 8))
	r.LineTo(Pt(0, 8))

	b := newRecordingBuilder()
	r.Fill(b)

	for key := range b.coverage {
		assert.GreaterOrEqual(t, key[0], 8)
	}
}

func TestFillPathConvenienceWrapper(t *testing.T) {
	p := rectanglePath(0, 0, 8, 8, false)

	b := newRecordingBuilder()
	FillPath(p, Identity, b)

	assert.InDelta(t, 64, b.totalCoverage(), 1)
}
