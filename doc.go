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

// Package polygon implements two classical planar polygon algorithms: ear-clipping
// triangulation of a simple polygon, and Greiner–Hormann clipping of two simple
// polygons into their intersection, union, or one-sided difference.
//
// Both algorithms operate entirely on caller-supplied buffers. There is no
// internal allocation in the core pipeline (Transform, FindIntersections,
// MarkEntryExit, EmitPolygons, Triangulate): callers size scratch rings,
// output index buffers, and vertex pools themselves and reuse them across
// calls. Every function is total and non-throwing; truncation due to an
// undersized buffer is signaled by a returned count smaller than expected,
// never by a panic or error value (see the package-level assertions for the
// one exception: precondition violations panic in debug builds and compile
// out entirely in release builds, via github.com/arl/assertgo).
//
// The package does not support polygons with holes, self-intersecting
// input, 3D geometry, exact-arithmetic predicates, curve primitives,
// constrained triangulation, or streaming/incremental operation.
package polygon
