// seehuhn.de/go/polygon - ear-clipping triangulation and polygon clipping
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

// Package visualize rasterizes polygon loops to antialiased coverage masks
// for use in tests and examples. It is never imported by the package's own
// kernel, which does no rendering of any kind.
package visualize

import (
	"image"

	"golang.org/x/image/vector"

	"seehuhn.de/go/polygon"
)

// Rasterize draws the closed loop verts (the edge back to verts[0] is
// implicit, matching the library's own polygon convention) into a w x h
// alpha mask, using the nonzero winding rule. Coordinates are in pixel
// space; the caller is responsible for any scaling from polygon space.
func Rasterize(verts []polygon.Vector, w, h int) *image.Alpha {
	if len(verts) < 3 || w <= 0 || h <= 0 {
		return image.NewAlpha(image.Rect(0, 0, w, h))
	}

	r := vector.NewRasterizer(w, h)
	r.MoveTo(verts[0].X, verts[0].Y)
	for _, v := range verts[1:] {
		r.LineTo(v.X, v.Y)
	}
	r.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// Coverage returns the mean alpha of mask as a fraction of full opacity
// (partially covered, antialiased pixels count fractionally), a cheap proxy for comparing a rasterized polygon's area against an
// analytically computed one in tests.
func Coverage(mask *image.Alpha) float64 {
	b := mask.Bounds()
	if b.Empty() {
		return 0
	}
	var sum int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sum += int(mask.AlphaAt(x, y).A)
		}
	}
	total := b.Dx() * b.Dy() * 0xff
	return float64(sum) / float64(total)
}
