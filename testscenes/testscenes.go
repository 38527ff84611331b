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

// Package testscenes provides reusable Path fixtures, used by the
// ochredump command.
package testscenes

import (
	"math"

	"github.com/glowcoil/ochre"
)

// Scene names one fixture for table-driven tests.
type Scene struct {
	Name  string
	Path  *raster.Path
	Width float32 // stroke width; 0 means the scene is fill-only
}

// All returns every fixture this package defines.
func All() []Scene {
	return []Scene{
		{Name: "square", Path: Square(8)},
		{Name: "wide-rectangle", Path: Rectangle(24, 8)},
		{Name: "triangle", Path: Triangle(16, 16)},
		{Name: "star", Path: Star(5, 10, 4)},
		{Name: "concentric-rings", Path: ConcentricRings(20, 8)},
		{Name: "open-polyline", Path: OpenPolyline(), Width: 3},
		{Name: "closed-polyline", Path: ClosedPolyline(), Width: 3},
	}
}

// Square returns an axis-aligned square with side s, origin at (0,0).
func Square(s float32) *raster.Path {
	return Rectangle(s, s)
}

// Rectangle returns an axis-aligned rectangle from the origin with the
// given width and height.
func Rectangle(w, h float32) *raster.Path {
	return raster.NewPathBuilder().
		Move(raster.Pt(0, 0)).
		Line(raster.Pt(w, 0)).
		Line(raster.Pt(w, h)).
		Line(raster.Pt(0, h)).
		Close().
		Path()
}

// Triangle returns a right triangle with legs w and h, the right
// angle at the origin.
func Triangle(w, h float32) *raster.Path {
	return raster.NewPathBuilder().
		Move(raster.Pt(0, 0)).
		Line(raster.Pt(w, 0)).
		Line(raster.Pt(0, h)).
		Close().
		Path()
}

// Star returns a points-pointed star with the given outer and inner
// radii, centered at the origin.
func Star(points int, outerR, innerR float32) *raster.Path {
	b := raster.NewPathBuilder()
	n := points * 2
	for i := 0; i < n; i++ {
		angle := float64(i) * math.Pi / float64(points)
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		x := float32(math.Cos(angle)) * r
		y := float32(math.Sin(angle)) * r
		if i == 0 {
			b.Move(raster.Pt(x, y))
		} else {
			b.Line(raster.Pt(x, y))
		}
	}
	b.Close()
	return b.Path()
}

// ConcentricRings returns two circles of the given radii, traced in
// opposite winding directions so that, under the nonzero fill rule,
// the inner disk is excluded from the outer one.
func ConcentricRings(outerR, innerR float32) *raster.Path {
	const k = float32(0.5522847498)
	b := raster.NewPathBuilder()
	addCircle(b, 0, 0, outerR, false, k)
	addCircle(b, 0, 0, innerR, true, k)
	return b.Path()
}

func addCircle(b *raster.PathBuilder, cx, cy, r float32, clockwise bool, k float32) {
	kr := k * r
	if clockwise {
		b.Move(raster.Pt(cx, cy-r))
		b.Cubic(raster.Pt(cx-kr, cy-r), raster.Pt(cx-r, cy-kr), raster.Pt(cx-r, cy))
		b.Cubic(raster.Pt(cx-r, cy+kr), raster.Pt(cx-kr, cy+r), raster.Pt(cx, cy+r))
		b.Cubic(raster.Pt(cx+kr, cy+r), raster.Pt(cx+r, cy+kr), raster.Pt(cx+r, cy))
		b.Cubic(raster.Pt(cx+r, cy-kr), raster.Pt(cx+kr, cy-r), raster.Pt(cx, cy-r))
	} else {
		b.Move(raster.Pt(cx, cy-r))
		b.Cubic(raster.Pt(cx+kr, cy-r), raster.Pt(cx+r, cy-kr), raster.Pt(cx+r, cy))
		b.Cubic(raster.Pt(cx+r, cy+kr), raster.Pt(cx+kr, cy+r), raster.Pt(cx, cy+r))
		b.Cubic(raster.Pt(cx-kr, cy+r), raster.Pt(cx-r, cy+kr), raster.Pt(cx-r, cy))
		b.Cubic(raster.Pt(cx-r, cy-kr), raster.Pt(cx-kr, cy-r), raster.Pt(cx, cy-r))
	}
	b.Close()
}

// OpenPolyline returns a zig-zag polyline with no Close command, for
// exercising the stroker's butt-cap path.
func OpenPolyline() *raster.Path {
	return raster.NewPathBuilder().
		Move(raster.Pt(0, 0)).
		Line(raster.Pt(10, 10)).
		Line(raster.Pt(20, 0)).
		Line(raster.Pt(30, 10)).
		Path()
}

// ClosedPolyline returns the zig-zag of OpenPolyline plus one more
// vertex at (15, 20), explicitly closed, for exercising the stroker's
// closed-contour path.
func ClosedPolyline() *raster.Path {
	return raster.NewPathBuilder().
		Move(raster.Pt(0, 0)).
		Line(raster.Pt(10, 10)).
		Line(raster.Pt(20, 0)).
		Line(raster.Pt(30, 10)).
		Line(raster.Pt(15, 20)).
		Close().
		Path()
}
