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
	"fmt"

	"github.com/dhconnelly/rtreego"
)

// rtree branching factors. The index is a broad-phase layer over a handful
// to a few thousand polygons per batch, not a persistent spatial database,
// so these are fixed rather than exposed as tuning knobs.
const (
	rtreeMinChildren = 2
	rtreeMaxChildren = 8
)

// BatchIndex is a broad-phase spatial index over the bounding boxes of a
// batch of polygons, letting a caller clipping many polygons pairwise skip
// pairs whose boxes don't even overlap. Unlike the rest of this package,
// BatchIndex allocates: it owns no per-frame hot-path state, and exists
// purely to cut down the O(n²) candidate-pair enumeration a caller would
// otherwise perform by hand.
//
// BatchIndex never runs FindIntersections, MarkEntryExit, or EmitPolygons
// itself; it only ever over-approximates, so the caller must still run the
// full pipeline on every returned candidate pair to get an authoritative
// answer.
type BatchIndex struct {
	tree  *rtreego.Rtree
	items []*boxedPolygon
}

// PolygonPair is one candidate pair of overlapping bounding boxes returned
// by CandidatePairs, identified by the opaque ids passed to Add.
type PolygonPair struct {
	A, B int
}

// boxedPolygon adapts one Add call to rtreego's Spatial interface. min/max
// are kept alongside rect (rather than read back out of it) so padding a
// box for a query never needs to introspect rtreego's own Rect type.
type boxedPolygon struct {
	id       int
	min, max Vector
	rect     *rtreego.Rect
}

func (b *boxedPolygon) Bounds() *rtreego.Rect { return b.rect }

// NewBatchIndex creates an empty index. capacityHint is not used: the
// index grows with every Add, and the hint does not bound how many
// polygons may later be added.
func NewBatchIndex(capacityHint int) *BatchIndex {
	return &BatchIndex{tree: rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren)}
}

// Add inserts ring's bounding box (computed from its original vertices)
// into the index under the caller-chosen id. Ids need not be contiguous or
// ordered, but must be unique within one BatchIndex.
func (bi *BatchIndex) Add(id int, ring *ClipRing) error {
	min, max := ring.bounds()
	rect, err := boundingRect(min, max, 0)
	if err != nil {
		return fmt.Errorf("polygon: batch index add id %d: %w", id, err)
	}
	item := &boxedPolygon{id: id, min: min, max: max, rect: rect}
	bi.tree.Insert(item)
	bi.items = append(bi.items, item)
	return nil
}

// CandidatePairs returns every pair of inserted bounding boxes that overlap
// once one box of the pair is padded by pad on every side (so boxes that
// are at most pad apart on both axes are reported) - a safety margin that
// should cover at least the degeneracy perturbation's shift (see DegeneracyShift)
// so a true intersection near a box edge is never missed. Each unordered
// pair is reported once, with A < B.
func (bi *BatchIndex) CandidatePairs(pad float32) []PolygonPair {
	pairs := make([]PolygonPair, 0, len(bi.items))

	for _, bp := range bi.items {
		padded, err := boundingRect(bp.min, bp.max, pad)
		if err != nil {
			continue
		}
		hits := bi.tree.SearchIntersect(padded)
		for _, h := range hits {
			other := h.(*boxedPolygon)
			if other.id <= bp.id {
				continue
			}
			pairs = append(pairs, PolygonPair{A: bp.id, B: other.id})
		}
	}
	return pairs
}

// boundingRect builds an rtreego rectangle spanning [min-pad, max+pad] in
// both axes. Zero-width/height boxes (a degenerate or axis-aligned input
// polygon) are nudged open slightly since rtreego rejects zero-length
// sides.
func boundingRect(min, max Vector, pad float32) (*rtreego.Rect, error) {
	w, h := float64(max.X-min.X+2*pad), float64(max.Y-min.Y+2*pad)
	if w <= 0 {
		w = 1e-6
	}
	if h <= 0 {
		h = 1e-6
	}
	return rtreego.NewRect(rtreego.Point{float64(min.X - pad), float64(min.Y - pad)}, []float64{w, h})
}
