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

import (
	assert "github.com/arl/assertgo"
	"github.com/arl/math32"
)

// Numerical tolerances for intersection finding. Exposed as package
// variables (rather than FindIntersections parameters) so the seven core
// signatures match the specification exactly while still letting a caller
// tune the degeneracy handling for pathological inputs.
var (
	// EpsilonCross is the minimum |cross product| for two edges to be
	// considered non-parallel. Edges with a smaller cross product are
	// skipped entirely.
	EpsilonCross float32 = 1e-7

	// DegeneracyEpsilon is how close an intersection's alpha must be to 0
	// or 1 to be treated as coincident with an edge endpoint.
	DegeneracyEpsilon float32 = 1e-5

	// DegeneracyShift scales the perturbation applied to an endpoint when a
	// coincident intersection is detected: the endpoint moves by the other
	// edge's direction vector, rotated 90°, times DegeneracyShift, so the
	// distance moved is DegeneracyShift times that edge's length.
	DegeneracyShift float32 = 1e-4
)

// FindIntersections computes every crossing between a's and b's original
// edges and splices a paired intersection node into both rings at the
// correct position (ascending alpha along each edge). It mutates both
// rings in place: inserting nodes at the tail of each slab, and perturbing
// up to a few original vertex positions (by DegeneracyShift times the
// length of the crossing edge) when an intersection would otherwise
// coincide exactly with an edge endpoint.
//
// FindIntersections performs no allocation; it asserts (see
// github.com/arl/assertgo) that both rings have enough spare slab capacity
// for every intersection it inserts.
func FindIntersections(a, b *ClipRing) {
	na, nb := a.OriginalSize, b.OriginalSize
	for i := 0; i < na; i++ {
		for j := 0; j < nb; {
			aPrevIdx, aCurIdx := i, (i+1)%na
			bPrevIdx, bCurIdx := j, (j+1)%nb

			aPrev, aCur := a.Nodes[aPrevIdx].Pos, a.Nodes[aCurIdx].Pos
			bPrev, bCur := b.Nodes[bPrevIdx].Pos, b.Nodes[bCurIdx].Pos
			aDir := aCur.Sub(aPrev)
			bDir := bCur.Sub(bPrev)

			c := aDir.Cross(bDir)
			if math32.Abs(c) <= EpsilonCross {
				j++
				continue
			}

			diff := bPrev.Sub(aPrev)
			aAlpha := diff.Cross(bDir) / c
			bAlpha := diff.Cross(aDir) / c
			if aAlpha < 0 || aAlpha > 1 || bAlpha < 0 || bAlpha > 1 {
				j++
				continue
			}

			switch {
			case nearEndpoint(aAlpha, 0):
				perturb(&a.Nodes[aPrevIdx].Pos, bDir)
				continue
			case nearEndpoint(aAlpha, 1):
				perturb(&a.Nodes[aCurIdx].Pos, bDir)
				continue
			case nearEndpoint(bAlpha, 0):
				perturb(&b.Nodes[bPrevIdx].Pos, aDir)
				continue
			case nearEndpoint(bAlpha, 1):
				perturb(&b.Nodes[bCurIdx].Pos, aDir)
				continue
			}

			p := aPrev.Add(aDir.Scale(aAlpha))
			assert.True(a.Size < a.Capacity, "ring A out of slab capacity for intersection insertion")
			assert.True(b.Size < b.Capacity, "ring B out of slab capacity for intersection insertion")

			newA, newB := a.Size, b.Size
			a.Nodes[newA] = ClipVertex{Pos: p, Alpha: aAlpha, Flags: FlagIntersect, Neighbor: newB}
			b.Nodes[newB] = ClipVertex{Pos: p, Alpha: bAlpha, Flags: FlagIntersect, Neighbor: newA}
			a.Size++
			b.Size++

			spliceIntersection(a, aCurIdx, newA, aAlpha)
			spliceIntersection(b, bCurIdx, newB, bAlpha)

			j++
		}
	}
}

// nearEndpoint reports whether alpha lies within DegeneracyEpsilon of target (0 or 1).
func nearEndpoint(alpha, target float32) bool {
	return math32.Abs(alpha-target) <= DegeneracyEpsilon
}

// perturb shifts v by otherDir rotated 90° and scaled by DegeneracyShift
// (otherDir is not normalized), moving an edge endpoint just off an exact
// intersection coincidence.
func perturb(v *Vector, otherDir Vector) {
	v.X -= otherDir.Y * DegeneracyShift
	v.Y += otherDir.X * DegeneracyShift
}

// spliceIntersection inserts the node at newIdx into ring, on the edge
// ending at curIdx, preserving ascending-alpha order among intersection
// nodes already inserted on that same edge. It walks backward from
// curIdx's current predecessor while that predecessor is itself an
// intersection node with a larger alpha, then splices newIdx in right
// after where the walk stopped.
func spliceIntersection(ring *ClipRing, curIdx, newIdx int, alpha float32) {
	cursor := ring.Nodes[curIdx].Prev
	for ring.Nodes[cursor].Flags&FlagIntersect != 0 && ring.Nodes[cursor].Alpha > alpha {
		cursor = ring.Nodes[cursor].Prev
	}
	next := ring.Nodes[cursor].Next
	ring.Nodes[cursor].Next = newIdx
	ring.Nodes[newIdx].Prev = cursor
	ring.Nodes[newIdx].Next = next
	ring.Nodes[next].Prev = newIdx
}
