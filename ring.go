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

// Flag is a bitset of per-vertex clip-ring states.
type Flag uint8

const (
	// FlagIntersect marks a node created by FindIntersections, as opposed
	// to an original input vertex.
	FlagIntersect Flag = 1 << iota
	// FlagExit marks an intersection node where the ring's traversal
	// transitions from inside to outside the other polygon. Set by
	// MarkEntryExit.
	FlagExit
	// FlagProcessed marks a node already visited by EmitPolygons.
	FlagProcessed
)

// ClipVertex is one node of a ClipRing: either an original polygon vertex,
// or an intersection inserted by FindIntersections.
type ClipVertex struct {
	Pos      Vector
	Next     int // index of the following node in the ring
	Prev     int // index of the preceding node in the ring
	Neighbor int // for intersection nodes, the paired node's index in the other ring
	Alpha    float32
	Flags    Flag
}

// ClipRing is a circular doubly-linked list of ClipVertex nodes embedded in
// a caller-owned slab, as produced by Transform and mutated in place by
// FindIntersections, MarkEntryExit, and EmitPolygons.
type ClipRing struct {
	Nodes        []ClipVertex // slab, length Capacity; populated prefix is [0, Size)
	OriginalSize int          // count of user-supplied vertices, occupying [0, OriginalSize)
	Size         int          // current populated count, including inserted intersections
	Capacity     int          // len(Nodes)
}

// Transform materializes a ClipRing from a plain vertex loop into slab, a
// caller-owned slice of capacity >= len(vertices). The first len(vertices)
// slots are initialized with positions and a full circular prev/next
// linkage; all flags and auxiliary fields are zeroed. slab must be sized to
// accommodate every intersection FindIntersections will later insert
// (typically len(vertices) + 2*expected-crossing-count).
//
// Transform performs no allocation.
func Transform(vertices []Vector, slab []ClipVertex) *ClipRing {
	n := len(vertices)
	assert.True(len(slab) >= n, "clip ring slab smaller than vertex count")

	for i, v := range vertices {
		slab[i] = ClipVertex{
			Pos:  v,
			Next: (i + 1) % n,
			Prev: (i - 1 + n) % n,
		}
	}
	return &ClipRing{
		Nodes:        slab,
		OriginalSize: n,
		Size:         n,
		Capacity:     len(slab),
	}
}

// bounds returns the axis-aligned bounding box of the ring's original
// vertices. Used by BatchIndex; not part of the clipper's own invariants.
func (r *ClipRing) bounds() (min, max Vector) {
	if r.OriginalSize == 0 {
		return Vector{}, Vector{}
	}
	min = r.Nodes[0].Pos
	max = min
	for i := 1; i < r.OriginalSize; i++ {
		p := r.Nodes[i].Pos
		min.X, max.X = minF(min.X, p.X), maxF(max.X, p.X)
		min.Y, max.Y = minF(min.Y, p.Y), maxF(max.Y, p.Y)
	}
	return min, max
}

func minF(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// insideOriginal reports whether p lies inside the ring's original (input)
// loop, using a horizontal-ray crossing-number test. Half-open y-intervals
// avoid double-counting rays that pass exactly through a vertex; a crossing
// is counted when the ray's intersection x lies to the right of p (i.e.
// p.x is less than the intersection x). Parity of the count decides
// inside/outside.
func (r *ClipRing) insideOriginal(p Vector) bool {
	inside := false
	n := r.OriginalSize
	prev := r.Nodes[n-1].Pos
	for i := 0; i < n; i++ {
		cur := r.Nodes[i].Pos
		if (p.Y <= prev.Y && p.Y > cur.Y) || (p.Y > prev.Y && p.Y <= cur.Y) {
			xIntersection := cur.X + (p.Y-cur.Y)/(prev.Y-cur.Y)*(prev.X-cur.X)
			if p.X < xIntersection {
				inside = !inside
			}
		}
		prev = cur
	}
	return inside
}
