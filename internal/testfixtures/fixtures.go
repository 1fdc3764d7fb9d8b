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

// Package testfixtures holds the canonical polygon scenarios shared by the
// package's own tests.
package testfixtures

import "seehuhn.de/go/polygon"

// Scenario is a single named geometry fixture. Clip scenarios populate both
// A and B; triangulation-only scenarios leave B nil.
type Scenario struct {
	Name string
	A, B []polygon.Vector
}

// All contains every fixture, grouped by category, mirroring how the
// sample geometry for the triangulator and the clipper differ in shape.
var All = map[string][]Scenario{
	"triangulate": triangulateCases,
	"clip":        clipCases,
}

var triangulateCases = []Scenario{
	{Name: "triangle", A: []polygon.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}},
	{Name: "square", A: unitSquareAt(0, 0)},
	{Name: "l_shape", A: LShape()},
	{Name: "star", A: FivePointStar()},
}

var clipCases = []Scenario{
	{Name: "overlapping_squares", A: unitSquareAt(0, 0), B: unitSquareAt(0.5, 0.5)},
	{Name: "nested_containment", A: []polygon.Vector{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
	}, B: []polygon.Vector{
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2},
	}},
	{Name: "disjoint_squares", A: unitSquareAt(0, 0), B: unitSquareAt(5, 5)},
}

// unitSquareAt returns a counter-clockwise unit square with its lower-left
// corner at (x, y).
func unitSquareAt(x, y float32) []polygon.Vector {
	return []polygon.Vector{
		{X: x, Y: y},
		{X: x + 1, Y: y},
		{X: x + 1, Y: y + 1},
		{X: x, Y: y + 1},
	}
}

// LShape returns a concave hexagon: a 2x2 square with its top-right unit
// square notched out.
func LShape() []polygon.Vector {
	return []polygon.Vector{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 1},
		{X: 1, Y: 1},
		{X: 1, Y: 2},
		{X: 0, Y: 2},
	}
}

// FivePointStar returns a non-convex ten-vertex star polygon (five outer
// points at unit radius alternating with five inner points at the regular
// pentagram ratio), going counter-clockwise from the top point. It is a
// standard ear-clipping torture case: every ear test at a reflex (inner)
// vertex's neighbors must reject several non-adjacent vertices before
// finding a true ear.
func FivePointStar() []polygon.Vector {
	const innerR = 0.381966 // outer radius / golden ratio^2
	return []polygon.Vector{
		{X: 0, Y: 1},
		{X: innerR * -0.587785, Y: innerR * 0.809017},
		{X: -0.951057, Y: 0.309017},
		{X: innerR * -0.951057, Y: innerR * -0.309017},
		{X: -0.587785, Y: -0.809017},
		{X: 0, Y: innerR * -1},
		{X: 0.587785, Y: -0.809017},
		{X: innerR * 0.951057, Y: innerR * -0.309017},
		{X: 0.951057, Y: 0.309017},
		{X: innerR * 0.587785, Y: innerR * 0.809017},
	}
}
