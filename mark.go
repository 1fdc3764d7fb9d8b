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

// Direction is a per-ring traversal preference passed to MarkEntryExit. It
// selects which Boolean combination of the two input polygons EmitPolygons
// later produces; see the Direction table on MarkEntryExit.
type Direction bool

const (
	// Forward classifies an inside-to-outside crossing as EXIT, matching
	// the ring's natural inside/outside test.
	Forward Direction = false
	// Backward flips the classification, as if the ring's notion of
	// "inside" were inverted.
	Backward Direction = true
)

// MarkEntryExit classifies every intersection node of a and b as an entry
// or an exit, by walking each ring once and toggling an inside/outside flag
// each time an intersection node is crossed. The pair (dirA, dirB) selects
// the Boolean operation EmitPolygons will later compute:
//
//	dirA      dirB      result
//	Forward   Forward   A ∩ B
//	Backward  Forward   A ∖ B
//	Forward   Backward  B ∖ A
//	Backward  Backward  A ∪ B
//
// MarkEntryExit must run after FindIntersections and before EmitPolygons. It
// performs no allocation and only sets flag bits.
func MarkEntryExit(a, b *ClipRing, dirA, dirB Direction) {
	markRing(a, b, dirA)
	markRing(b, a, dirB)
}

// markRing walks r, classifying each of its intersection nodes against o.
func markRing(r, o *ClipRing, d Direction) {
	inside := o.insideOriginal(r.Nodes[0].Pos)
	if d == Backward {
		inside = !inside
	}
	for i := r.Nodes[0].Next; i != 0; i = r.Nodes[i].Next {
		if r.Nodes[i].Flags&FlagIntersect != 0 {
			if inside {
				r.Nodes[i].Flags |= FlagExit
			}
			inside = !inside
		}
	}
}
