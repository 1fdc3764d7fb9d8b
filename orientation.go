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

// Orientation reports whether a closed vertex loop winds clockwise, under
// the screen convention that the Y axis points down. The edge from the last
// vertex back to the first is implicit and included in the sum.
//
// The result is computed from twice the signed area (the shoelace sum):
//
//	S = Σ (x[i-1]*y[i] - y[i-1]*x[i])
//
// Orientation returns true (clockwise) iff S >= 0. For degenerate loops
// (collinear or zero-area, including n < 3) this is an arbitrary but stable
// answer - the function is total over every slice, including nil and empty
// ones.
func Orientation(vertices []Vector) bool {
	n := len(vertices)
	if n < 2 {
		return true
	}

	var sum float32
	prev := vertices[n-1]
	for _, cur := range vertices {
		sum += prev.X*cur.Y - prev.Y*cur.X
		prev = cur
	}
	return sum >= 0
}
