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

package polygon

import "github.com/arl/math32"

// Vector is a point or displacement in the Euclidean plane, stored as a pair
// of 32-bit floating-point coordinates. Vectors are treated strictly by
// value throughout this package.
type Vector struct {
	X, Y float32
}

// Add returns v+w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

// Sub returns v-w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y}
}

// Scale returns v scaled by s.
func (v Vector) Scale(s float32) Vector {
	return Vector{v.X * s, v.Y * s}
}

// Cross returns the z-component of the 3D cross product v×w, i.e.
// v.X*w.Y - v.Y*w.X. Its sign gives the winding direction of the turn
// from v to w.
func (v Vector) Cross(w Vector) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Dot returns the dot product v·w.
func (v Vector) Dot(w Vector) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Perp returns v rotated 90° counter-clockwise: (x,y) -> (-y,x).
func (v Vector) Perp() Vector {
	return Vector{-v.Y, v.X}
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// approxEqual reports whether a and b differ by no more than eps in each
// coordinate.
func approxEqual(a, b Vector, eps float32) bool {
	return math32.Abs(a.X-b.X) <= eps && math32.Abs(a.Y-b.Y) <= eps
}
