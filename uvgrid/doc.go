// SPDX-License-Identifier: MIT

// Package uvgrid builds a grid.Grid from the UV islands of a triangulated mesh.
//
// What:
//
//	Build reads faces through FaceSource and
//	  1. groups them into islands: connected components over edges whose
//	     endpoints agree in position AND UV,
//	  2. traces each island's outer edges into one closed boundary loop,
//	  3. splits the loop into four axis-aligned sides (a UV rectangle),
//	  4. subdivides the rectangle into width×height cells of CellSize
//	     texture pixels,
//	  5. links cells inside an island with identity adapters,
//	  6. links boundary cells across UV seams, where two islands (or two
//	     sides of one island) share a 3D edge, with the rotation adapter
//	     that reconciles the two cell frames.
//
// Frame:
//
//	Corner i of an island starts side i of its loop. The cell frame has its
//	origin at corner 1, x toward corner 0 and y toward corner 2, so island
//	side s is cell direction s (Top, Left, Bottom, Right) and cell (i, j)
//	carries corners in the same order.
//
// Seam adapter:
//
//	For a pivot side s meeting partner side t, the partner corner k that
//	touches the pivot's start corner decides the adapter. When the partner
//	edge runs against the pivot edge k = t+1 and the adapter is
//	Turn(t-s+2, false); when both run the same way (inconsistent winding,
//	a mirrored seam) k = t and the adapter is Turn(t+s+1, true). The partner
//	stores the inverse.
//
// Complexity:
//
//	O(F + C) time and memory for F faces and C cells. Steps 2–4 run per
//	island and may run on several goroutines (WithWorkers); cells are laid
//	out in island order either way.
//
// Errors:
//
//   - ErrOpenBoundary: an island's outer edges do not form exactly one loop.
//   - ErrDegenerateBoundary: the loop never changes direction or has a
//     zero-length edge.
//   - ErrNotRectangular: the loop is not four axis-aligned sides.
//   - ErrOptionViolation: an invalid option value.
//
// Builds are all or nothing: on error no grid is returned.
package uvgrid
