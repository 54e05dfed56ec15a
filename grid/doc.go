// SPDX-License-Identifier: MIT

// Package grid defines the cell graph the solver works on.
//
// What:
//
//   - Cell: one tile slot on a UV island. It records its island, its four
//     corners in texture pixels, the island's planar normal, four neighbor
//     links and the remaining candidate rules.
//   - Link: a neighbor index plus the rule.Adapter that remaps the
//     neighbor's pattern into this cell's frame.
//   - Grid: an arena of cells addressed by index. Links hold indices, never
//     pointers, so the graph can be cyclic and copied freely.
//
// Directions are rule.Side values: the neighbor in direction s touches the
// cell's side s.
//
// Invariants:
//
//   - Links are symmetric: if A links to B in some direction, B links to A
//     in some direction (not necessarily the opposite one). Validate checks it.
//   - A missing neighbor is To == NoCell.
//   - The graph may be disconnected.
//
// Errors:
//
//   - ErrCellIndex for an index outside [0, Len()).
//   - ErrDirection for a direction outside Top..Right.
//   - ErrAsymmetricLink from Validate.
package grid
