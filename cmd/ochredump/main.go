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

// Command ochredump rasterizes one of the built-in demo scenes and
// writes a side-by-side PNG: this module's own tile-based output next
// to golang.org/x/image/vector's scanline rasterization of the same
// path, for visual comparison.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/vector"

	"github.com/glowcoil/ochre"
	"github.com/glowcoil/ochre/testscenes"
)

func main() {
	scene := flag.String("scene", "star", "demo scene to rasterize")
	out := flag.String("o", "ochredump.png", "output PNG path")
	size := flag.Int("size", 128, "canvas size in pixels")
	flag.Parse()

	var chosen *testscenes.Scene
	for _, s := range testscenes.All() {
		s := s
		if s.Name == *scene {
			chosen = &s
			break
		}
	}
	if chosen == nil {
		log.Fatalf("unknown scene %q", *scene)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("creating output file: %v", err)
	}
	defer f.Close()

	img := renderComparison(chosen, *size)
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encoding PNG: %v", err)
	}
}

// tileBuilderImage composites ochre's Tile/Span output directly into a
// destination image.Alpha.
type tileBuilderImage struct {
	dst *image.Alpha
}

func (b *tileBuilderImage) Tile(x, y int, data *[64]uint8) {
	ox, oy := x*8, y*8
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			px, py := ox+c, oy+r
			if (image.Point{X: px, Y: py}).In(b.dst.Bounds()) {
				b.dst.SetAlpha(px, py, color.Alpha{A: data[r*8+c]})
			}
		}
	}
}

func (b *tileBuilderImage) Span(x, y, width int) {
	for px := x; px < x+width; px++ {
		for py := y; py < y+8; py++ {
			if (image.Point{X: px, Y: py}).In(b.dst.Bounds()) {
				b.dst.SetAlpha(px, py, color.Alpha{A: 255})
			}
		}
	}
}

// renderComparison renders the scene with this module's rasterizer on
// the left half of a size*2 x size image, and with x/image/vector's
// reference rasterizer on the right half.
func renderComparison(scene *testscenes.Scene, size int) image.Image {
	out := image.NewRGBA(image.Rect(0, 0, size*2, size))

	left := image.NewAlpha(image.Rect(0, 0, size, size))
	offset := raster.Translate(float32(size)/2, float32(size)/2)
	builder := &tileBuilderImage{dst: left}
	if scene.Width > 0 {
		raster.StrokePath(scene.Path, offset, scene.Width, builder)
	} else {
		raster.FillPath(scene.Path, offset, builder)
	}

	right := rasterizeWithVector(scene, size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			a := left.AlphaAt(x, y).A
			out.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})
			b := right.AlphaAt(x, y).A
			out.Set(x+size, y, color.RGBA{R: b, G: b, B: b, A: 255})
		}
	}
	return out
}

// rasterizeWithVector rasterizes the same scene's outline with
// golang.org/x/image/vector, flattening curves with this module's own
// flattener so both halves of a filled scene trace the same polygon.
// For a stroked scene this fills the unstroked path, not the stroke
// outline shown on the left.
func rasterizeWithVector(scene *testscenes.Scene, size int) *image.Alpha {
	r := vector.NewRasterizer(size, size)
	cx, cy := float32(size)/2, float32(size)/2

	raster.FlattenForVector(scene.Path, cx, cy, func(move bool, x, y float32) {
		if move {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	})
	r.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	src := image.NewUniform(color.Alpha{A: 255})
	r.Draw(dst, dst.Bounds(), src, image.Point{})
	return dst
}
