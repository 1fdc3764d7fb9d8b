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

import assert "github.com/arl/assertgo"

// EmissionClockwise is the compile-time convention Triangulate emits
// triangles in. When an input polygon's orientation (the clockwise
// argument to Triangulate) disagrees with this convention, the last two
// indices of every emitted triangle are swapped so the winding of the
// output always matches EmissionClockwise.
const EmissionClockwise = false // counter-clockwise, the common index-buffer convention

// Triangulate ear-clips a simple polygon into a flat sequence of triangle
// indices, written into out three at a time. vertices is the polygon loop
// (edge n-1 -> 0 implicit); clockwise asserts its winding direction; scratch
// is caller-owned working storage of length >= len(vertices); begin is
// added to every emitted index. Triangulate performs no allocation.
//
// It returns the number of indices written, always a multiple of 3. A
// return value less than 3*(len(vertices)-2) means out was too small, or
// the input was not a simple polygon: the liveness guard gives up once
// more than 2*size consecutive ear tests have been rejected. A scratch
// shorter than len(vertices) is a precondition violation, checked by
// assertion, not reported through the return value.
//
// n < 3 returns 0 immediately.
func Triangulate(vertices []Vector, clockwise bool, scratch []int, begin int, out []int) int {
	n := len(vertices)
	if n < 3 {
		return 0
	}
	assert.True(len(scratch) >= n, "scratch ring smaller than vertex count")

	for i := range n {
		scratch[i] = i
	}
	size := n
	maxIndices := len(out)
	count := 0

	ai := 0
	noProgress := 0
	for size > 2 {
		bi := (ai + 1) % size
		ci := (ai + 2) % size
		a, b, c := scratch[ai], scratch[bi], scratch[ci]
		va, vb, vc := vertices[a], vertices[b], vertices[c]

		e1 := vb.Sub(va)
		e2 := vc.Sub(va)
		cross := e1.Cross(e2)

		isEar := cross != 0 && (cross >= 0) == clockwise
		for k := 0; isEar && k < size; k++ {
			if k == ai || k == bi || k == ci {
				continue
			}
			vp := vertices[scratch[k]].Sub(va)
			r := vp.Cross(e2) / cross
			s := e1.Cross(vp) / cross
			if r >= 0 && s >= 0 && r+s <= 1 {
				isEar = false
			}
		}

		if !isEar {
			ai = (ai + 1) % size
			noProgress++
			if noProgress > 2*size {
				return count
			}
			continue
		}

		if count+3 > maxIndices {
			return count
		}
		ra, rb, rc := a+begin, b+begin, c+begin
		if clockwise != EmissionClockwise {
			rb, rc = rc, rb
		}
		out[count], out[count+1], out[count+2] = ra, rb, rc
		count += 3

		// Compact scratch, removing b at position bi, then rewind the
		// triple so the next ear test starts at (prev-to-a, a, c).
		copy(scratch[bi:size-1], scratch[bi+1:size])
		newAiPos := ai
		if ai > bi {
			newAiPos--
		}
		size--
		ai = (newAiPos - 1 + size) % size
		noProgress = 0
	}
	return count
}
