// SPDX-License-Identifier: MIT

// Package mesh is the in-memory triangulated surface the grid builder reads:
// faces of three vertices, each with a 3D position and a UV coordinate.
//
// Two predicates separate the two notions of adjacency the builder needs:
//
//   - Face.SharesUVEdge: two shared endpoints equal in position AND UV.
//     Faces joined this way lie on the same UV island.
//   - Face.SharesEdge: two shared endpoints equal in position only.
//     Faces joined only this way meet across a UV seam.
//
// Equality is tested within an epsilon; the quantized keys in keys.go use the
// same epsilon so map lookups agree with the predicates.
//
// Builder assembles meshes from quads, and shapes.go provides the procedural
// surfaces used by tests and the wfcgrid command (plane, strip, tube, cube).
// Loading mesh files is left to callers.
package mesh
