// SPDX-License-Identifier: MIT

// Package rule defines tile patterns ("rules") and the coordinate adapters
// used to read a neighbor's pattern in the reader's own frame.
//
// What:
//
//   - Rule: an immutable pair of square color grids. The logical grid (side R)
//     is used for adjacency matching; the detailed grid (side D) is used later
//     for pixel output. R and D are independent.
//   - Side: the four tile edges, Top, Left, Bottom, Right (0..3). Side(s) of a
//     tile and Side(s.Opposite()) of its neighbor in the same frame are aligned
//     position by position.
//   - Adapter: a closed tagged union of Identity and Rotation. A rotation adapter
//     maps (x, y) to origin + x*xAxis + y*yAxis, where origin is a corner of
//     the square and the axes are perpendicular axis-aligned unit vectors.
//
// Why:
//
//   - Cells on two UV islands are laid out with arbitrary rotation or
//     reflection in texture space. An adapter on the link between them lets
//     edge colors be compared in one common frame.
//
// Complexity:
//
//   - New:             O(R² + D²) time and memory.
//   - Side / SideKey:  O(1) (keys are precomputed per rule).
//   - Adapter.Access:  O(1); Adapter.Side: O(R).
//
// Errors:
//
//   - ErrEmptyPattern: a grid has no rows or no columns.
//   - ErrNotSquare:    a grid is not square (or rows have differing lengths).
//   - ErrOutOfRange:   coordinate access outside [0,R) or [0,D).
//   - ErrBadBasis:     rotation parameters do not describe a symmetry of the square.
//
// An invalid Side yields nil (Side) or "" (SideKey); grid rejects it when linking.
package rule
