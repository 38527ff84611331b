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

// Vec2 is a point or direction in 2D space. All rasteriser math runs in
// float32 to match the precision of the emitted coverage data.
type Vec2 struct {
	X, Y float32
}

// Pt is a convenience constructor for Vec2.
func Pt(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the componentwise sum of v and w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the componentwise difference v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul scales v by the scalar s.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z-component of the 3D cross product of v and w,
// treated as vectors in the XY plane.
func (v Vec2) Cross(w Vec2) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalized returns v scaled to unit length. The result is undefined if
// v has zero length; callers must check for degenerate vectors first.
func (v Vec2) Normalized() Vec2 {
	return v.Mul(1 / v.Length())
}

// Lerp linearly interpolates between a and b by t, where t=0 returns a
// and t=1 returns b.
func Lerp(t float32, a, b Vec2) Vec2 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Mat2x2 is a 2x2 matrix in row-major order:
//
//	[ M00 M01 ]
//	[ M10 M11 ]
type Mat2x2 struct {
	M00, M01 float32
	M10, M11 float32
}

// Identity2x2 is the identity linear map.
var Identity2x2 = Mat2x2{M00: 1, M11: 1}

// Apply applies the linear map to v (no translation).
func (m Mat2x2) Apply(v Vec2) Vec2 {
	return Vec2{
		X: m.M00*v.X + m.M01*v.Y,
		Y: m.M10*v.X + m.M11*v.Y,
	}
}

// Mul composes two linear maps such that (a.Mul(b)).Apply(v) ==
// a.Apply(b.Apply(v)).
func (a Mat2x2) Mul(b Mat2x2) Mat2x2 {
	return Mat2x2{
		M00: a.M00*b.M00 + a.M01*b.M10,
		M01: a.M00*b.M01 + a.M01*b.M11,
		M10: a.M10*b.M00 + a.M11*b.M10,
		M11: a.M10*b.M01 + a.M11*b.M11,
	}
}

// Transform is an affine map: Apply(v) = Linear.Apply(v) + Offset. This
// is the only kind of transform the rasteriser accepts; arbitrary
// projective transforms are out of scope.
type Transform struct {
	Linear Mat2x2
	Offset Vec2
}

// Identity is the identity affine transform.
var Identity = Transform{Linear: Identity2x2}

// Translate returns a pure translation.
func Translate(x, y float32) Transform {
	return Transform{Linear: Identity2x2, Offset: Vec2{X: x, Y: y}}
}

// Scale returns a uniform scaling about the origin.
func Scale(s float32) Transform {
	return Transform{Linear: Mat2x2{M00: s, M11: s}}
}

// Apply maps v from the transform's input space to its output space.
func (t Transform) Apply(v Vec2) Vec2 {
	return t.Linear.Apply(v).Add(t.Offset)
}

// Then composes t followed by next, such that for all v:
//
//	next.Apply(t.Apply(v)) == t.Then(next).Apply(v)
func (t Transform) Then(next Transform) Transform {
	return Transform{
		Linear: next.Linear.Mul(t.Linear),
		Offset: next.Linear.Apply(t.Offset).Add(next.Offset),
	}
}
