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

func ringFromLoop(t *testing.T, verts []Vector) *ClipRing {
	t.Helper()
	slab := make([]ClipVertex, len(verts))
	return Transform(verts, slab)
}

func TestBatchIndexCandidatePairs(t *testing.T) {
	idx := NewBatchIndex(4)

	a := ringFromLoop(t, []Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	b := ringFromLoop(t, []Vector{{X: 0.5, Y: 0.5}, {X: 1.5, Y: 0.5}, {X: 1.5, Y: 1.5}, {X: 0.5, Y: 1.5}})
	c := ringFromLoop(t, []Vector{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 11, Y: 11}, {X: 10, Y: 11}})

	if err := idx.Add(0, a); err != nil {
		t.Fatalf("Add(0, a): %v", err)
	}
	if err := idx.Add(1, b); err != nil {
		t.Fatalf("Add(1, b): %v", err)
	}
	if err := idx.Add(2, c); err != nil {
		t.Fatalf("Add(2, c): %v", err)
	}

	pairs := idx.CandidatePairs(0)
	if len(pairs) != 1 {
		t.Fatalf("got %d candidate pairs, want 1 (only a,b overlap)", len(pairs))
	}
	if pairs[0].A != 0 || pairs[0].B != 1 {
		t.Errorf("pair = %+v, want {A:0 B:1}", pairs[0])
	}
}

func TestBatchIndexPaddingFindsNearMisses(t *testing.T) {
	idx := NewBatchIndex(2)

	a := ringFromLoop(t, []Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	b := ringFromLoop(t, []Vector{{X: 1.01, Y: 0}, {X: 2.01, Y: 0}, {X: 2.01, Y: 1}, {X: 1.01, Y: 1}})

	if err := idx.Add(0, a); err != nil {
		t.Fatalf("Add(0, a): %v", err)
	}
	if err := idx.Add(1, b); err != nil {
		t.Fatalf("Add(1, b): %v", err)
	}

	if got := idx.CandidatePairs(0); len(got) != 0 {
		t.Fatalf("unpadded query found %d pairs, want 0 (boxes don't touch)", len(got))
	}
	if got := idx.CandidatePairs(0.02); len(got) != 1 {
		t.Fatalf("padded query found %d pairs, want 1", len(got))
	}
}

func TestBatchIndexEmpty(t *testing.T) {
	idx := NewBatchIndex(0)
	if pairs := idx.CandidatePairs(1); len(pairs) != 0 {
		t.Errorf("empty index returned %d pairs, want 0", len(pairs))
	}
}
