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

// Package raster implements an analytic, tile-based rasterizer for 2D
// vector paths.
//
// Unlike a supersampling rasterizer, coverage is computed exactly from
// the signed area and winding contribution of each path edge, then
// assembled into 8x8 pixel tiles (or runs of fully covered tiles, as
// compact spans) suitable for uploading to a sparse tile atlas. Only
// the nonzero fill rule, butt line caps, and miter line joins are
// supported.
//
// A typical pipeline builds a Path with PathBuilder, then rasterizes
// it with Rasterizer.Fill or Rasterizer.FillStroke against a
// TileBuilder implementation supplied by the caller.
package raster
