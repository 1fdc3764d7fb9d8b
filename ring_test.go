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

import "testing"

func TestTransformLinkage(t *testing.T) {
	verts := []Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	slab := make([]ClipVertex, len(verts)+4)
	ring := Transform(verts, slab)

	if ring.OriginalSize != 4 || ring.Size != 4 || ring.Capacity != len(slab) {
		t.Fatalf("unexpected ring sizes: %+v", ring)
	}
	for i := range verts {
		if ring.Nodes[i].Pos != verts[i] {
			t.Errorf("node %d pos = %v, want %v", i, ring.Nodes[i].Pos, verts[i])
		}
		if ring.Nodes[i].Next != (i+1)%4 {
			t.Errorf("node %d next = %d, want %d", i, ring.Nodes[i].Next, (i+1)%4)
		}
		if ring.Nodes[i].Prev != (i-1+4)%4 {
			t.Errorf("node %d prev = %d, want %d", i, ring.Nodes[i].Prev, (i-1+4)%4)
		}
		if ring.Nodes[i].Flags != 0 {
			t.Errorf("node %d flags = %v, want 0", i, ring.Nodes[i].Flags)
		}
	}
}

func TestInsideOriginal(t *testing.T) {
	square := []Vector{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	slab := make([]ClipVertex, len(square))
	ring := Transform(square, slab)

	cases := []struct {
		name   string
		p      Vector
		inside bool
	}{
		{"center", Vector{X: 1, Y: 1}, true},
		{"outside_right", Vector{X: 3, Y: 1}, false},
		{"outside_above", Vector{X: 1, Y: -1}, false},
		{"far_outside", Vector{X: 10, Y: 10}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ring.insideOriginal(tc.p); got != tc.inside {
				t.Errorf("insideOriginal(%v) = %v, want %v", tc.p, got, tc.inside)
			}
		})
	}
}

func TestRingBounds(t *testing.T) {
	verts := []Vector{{X: -1, Y: 2}, {X: 3, Y: -4}, {X: 0, Y: 5}}
	slab := make([]ClipVertex, len(verts))
	ring := Transform(verts, slab)

	min, max := ring.bounds()
	if min.X != -1 || min.Y != -4 || max.X != 3 || max.Y != 5 {
		t.Errorf("bounds = (%v, %v), want ((-1,-4),(3,5))", min, max)
	}
}
