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

// Polygon is a span into a caller-supplied vertex pool: the contiguous
// vertices [Start, Start+Size) of one polygon emitted by EmitPolygons.
type Polygon struct {
	Start int
	Size  int
}

// EmitPolygons traces the Boolean combination selected by a prior
// MarkEntryExit call, writing each resulting polygon as a contiguous span
// of vertices into verticesOut and recording that span in polygonsOut.
//
// The traversal follows next on a ring node without EXIT set and prev on
// one with EXIT set, crossing to the paired node in the other ring at
// every intersection; see the Direction table on MarkEntryExit for how
// this single rule covers all four Boolean operations. If a and b carry no
// intersection nodes at all (FindIntersections found nothing), the two
// original loops are tested for containment instead: the contained
// polygon, if any, is emitted verbatim. That fallback ignores the
// directions passed to MarkEntryExit, so it is correct only for A ∩ B
// (Forward, Forward); unions and differences of nested or disjoint
// polygons get the same output as the intersection.
//
// EmitPolygons performs no allocation. If polygonsOut or verticesOut is
// exhausted, it returns the counts successfully written so far; the caller
// must compare the returned counts against the expected sizes to detect
// truncation, then resize and rerun the whole pipeline.
func EmitPolygons(a, b *ClipRing, polygonsOut []Polygon, verticesOut []Vector) (polygonsEmitted, verticesUsed int) {
	if a.Size == a.OriginalSize {
		return emitContainment(a, b, polygonsOut, verticesOut)
	}

	polyCap := len(polygonsOut)
	poolCap := len(verticesOut)

	i := a.Nodes[0].Next
	for i != 0 {
		start := a.Nodes[i]
		if start.Flags&FlagIntersect == 0 || start.Flags&FlagProcessed != 0 {
			i = a.Nodes[i].Next
			continue
		}
		if polygonsEmitted >= polyCap {
			return polygonsEmitted, verticesUsed
		}

		spanStart := verticesUsed
		current, other := a, b
		curIdx := i
		truncated := false

		for {
			current.Nodes[curIdx].Flags |= FlagProcessed
			forward := current.Nodes[curIdx].Flags&FlagExit == 0

			for {
				if forward {
					curIdx = current.Nodes[curIdx].Next
				} else {
					curIdx = current.Nodes[curIdx].Prev
				}
				if verticesUsed >= poolCap {
					truncated = true
					break
				}
				verticesOut[verticesUsed] = current.Nodes[curIdx].Pos
				verticesUsed++
				current.Nodes[curIdx].Flags |= FlagProcessed
				if current.Nodes[curIdx].Flags&FlagIntersect != 0 {
					break
				}
			}
			if truncated {
				break
			}

			neighborIdx := current.Nodes[curIdx].Neighbor
			current, other = other, current
			curIdx = neighborIdx
			current.Nodes[curIdx].Flags |= FlagProcessed
			if current == a && curIdx == i {
				break
			}
		}

		if truncated {
			return polygonsEmitted, verticesUsed
		}

		polygonsOut[polygonsEmitted] = Polygon{Start: spanStart, Size: verticesUsed - spanStart}
		polygonsEmitted++

		i = a.Nodes[i].Next
	}

	return polygonsEmitted, verticesUsed
}

// emitContainment handles the no-intersections case: if one original loop
// lies entirely inside the other, it is emitted verbatim. This only
// produces a correct result for the A∩B operation; for unions or
// differences of nested disjoint polygons it is a documented limitation,
// not extended here.
func emitContainment(a, b *ClipRing, polygonsOut []Polygon, verticesOut []Vector) (int, int) {
	if len(polygonsOut) == 0 {
		return 0, 0
	}

	var src *ClipRing
	switch {
	case b.insideOriginal(a.Nodes[0].Pos):
		src = a
	case a.insideOriginal(b.Nodes[0].Pos):
		src = b
	default:
		return 0, 0
	}

	n := src.OriginalSize
	if n > len(verticesOut) {
		n = len(verticesOut)
	}
	for k := 0; k < n; k++ {
		verticesOut[k] = src.Nodes[k].Pos
	}
	polygonsOut[0] = Polygon{Start: 0, Size: n}
	return 1, n
}

// EmitSinglePolygon is a convenience wrapper around EmitPolygons for
// callers who know the result is a single polygon. It returns the number
// of vertices written, or 0 if no polygon was emitted.
func EmitSinglePolygon(a, b *ClipRing, verticesOut []Vector) int {
	var span [1]Polygon
	n, _ := EmitPolygons(a, b, span[:], verticesOut)
	if n == 0 {
		return 0
	}
	return span[0].Size
}
