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

func TestOrientation(t *testing.T) {
	cases := []struct {
		name   string
		verts  []Vector
		wantCW bool
	}{
		{"empty", nil, true},
		{"single", []Vector{{X: 0, Y: 0}}, true},
		{"square_a", []Vector{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}, false},
		{"square_b", []Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, true},
		{"triangle", []Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Orientation(tc.verts); got != tc.wantCW {
				t.Errorf("Orientation(%v) = %v, want %v", tc.verts, got, tc.wantCW)
			}
		})
	}
}

func TestOrientationReversalFlips(t *testing.T) {
	loop := []Vector{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 1}}
	reversed := make([]Vector, len(loop))
	for i, v := range loop {
		reversed[len(loop)-1-i] = v
	}

	if Orientation(loop) == Orientation(reversed) {
		t.Fatalf("reversing the loop did not flip orientation: %v vs %v", Orientation(loop), Orientation(reversed))
	}
}
