// SPDX-License-Identifier: MIT

package mesh

import (
	"cogentcore.org/core/math32"
)

// PosKey is a position quantized to an epsilon grid.
type PosKey [3]int32

// VertexKey is a position and UV quantized to an epsilon grid.
type VertexKey struct {
	Pos PosKey
	UV  [2]int32
}

// EdgeKey identifies an undirected edge by both endpoints' VertexKeys.
type EdgeKey [2]VertexKey

// SegmentKey identifies an undirected edge by 3D positions only.
type SegmentKey [2]PosKey

func quantize(v, eps float32) int32 {
	return int32(math32.Round(v / eps))
}

// KeyPos quantizes a position.
func KeyPos(p math32.Vector3, eps float32) PosKey {
	return PosKey{quantize(p.X, eps), quantize(p.Y, eps), quantize(p.Z, eps)}
}

// KeyVertex quantizes a vertex.
func KeyVertex(v Vertex, eps float32) VertexKey {
	return VertexKey{
		Pos: KeyPos(v.Pos, eps),
		UV:  [2]int32{quantize(v.UV.X, eps), quantize(v.UV.Y, eps)},
	}
}

// KeyEdge returns the undirected key of edge (a, b).
func KeyEdge(a, b VertexKey) EdgeKey {
	if vertexLess(b, a) {
		a, b = b, a
	}
	return EdgeKey{a, b}
}

// KeySegment returns the undirected 3D key of segment (a, b).
func KeySegment(a, b PosKey) SegmentKey {
	if posLess(b, a) {
		a, b = b, a
	}
	return SegmentKey{a, b}
}

func posLess(a, b PosKey) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func vertexLess(a, b VertexKey) bool {
	if a.Pos != b.Pos {
		return posLess(a.Pos, b.Pos)
	}
	if a.UV[0] != b.UV[0] {
		return a.UV[0] < b.UV[0]
	}
	return a.UV[1] < b.UV[1]
}
