// SPDX-License-Identifier: MIT

package mesh

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_AddQuadTriangulation(t *testing.T) {
	v0 := V(0, 0, 0, 0, 0)
	v1 := V(1, 0, 0, 1, 0)
	v2 := V(1, 1, 0, 1, 1)
	v3 := V(0, 1, 0, 0, 1)
	m := NewBuilder().AddQuad(v0, v1, v2, v3).Mesh()

	require.Equal(t, 2, m.NumFaces())
	assert.Equal(t, [3]Vertex{v0, v1, v2}, m.Face(0).V)
	assert.Equal(t, [3]Vertex{v0, v2, v3}, m.Face(1).V)
	assert.True(t, m.Face(0).SharesUVEdge(m.Face(1), DefaultEpsilon))
}

func TestFace_Normal(t *testing.T) {
	f := Face{V: [3]Vertex{V(0, 0, 0, 0, 0), V(2, 0, 0, 1, 0), V(0, 2, 0, 0, 1)}}
	assert.Equal(t, math32.Vec3(0, 0, 1), f.Normal())
	assert.InDelta(t, 2.0, f.AreaNormal().Length(), 1e-6)
}

func TestFace_SharesEdgeVsUVEdge(t *testing.T) {
	a := Face{V: [3]Vertex{V(0, 0, 0, 0, 0), V(1, 0, 0, 1, 0), V(1, 1, 0, 1, 1)}}
	// Same 3D edge (1,0,0)-(1,1,0) but different UVs: a seam.
	seam := Face{V: [3]Vertex{V(1, 0, 0, 5, 5), V(2, 0, 0, 6, 5), V(1, 1, 0, 5, 6)}}
	// Same 3D edge with matching UVs.
	joined := Face{V: [3]Vertex{V(1, 0, 0, 1, 0), V(2, 0, 0, 2, 0), V(1, 1, 0, 1, 1)}}
	// One shared vertex only.
	corner := Face{V: [3]Vertex{V(1, 1, 0, 1, 1), V(2, 1, 0, 2, 1), V(2, 2, 0, 2, 2)}}

	assert.True(t, a.SharesEdge(seam, DefaultEpsilon))
	assert.False(t, a.SharesUVEdge(seam, DefaultEpsilon))
	assert.True(t, a.SharesEdge(joined, DefaultEpsilon))
	assert.True(t, a.SharesUVEdge(joined, DefaultEpsilon))
	assert.False(t, a.SharesEdge(corner, DefaultEpsilon))
}

func TestFace_EpsilonTolerance(t *testing.T) {
	a := Face{V: [3]Vertex{V(0, 0, 0, 0, 0), V(1, 0, 0, 1, 0), V(0, 1, 0, 0, 1)}}
	b := Face{V: [3]Vertex{V(0.00001, 0, 0, 0, 0.00001), V(1, 0.00002, 0, 1, 0), V(1, 1, 0, 1, 1)}}
	assert.True(t, a.SharesUVEdge(b, DefaultEpsilon))
	assert.False(t, a.SharesUVEdge(b, 1e-7))
}

func TestKeys_Undirected(t *testing.T) {
	a := KeyVertex(V(0, 0, 0, 0, 0), DefaultEpsilon)
	b := KeyVertex(V(1, 2, 3, 0.5, 0.25), DefaultEpsilon)
	assert.Equal(t, KeyEdge(a, b), KeyEdge(b, a))
	assert.Equal(t, KeySegment(a.Pos, b.Pos), KeySegment(b.Pos, a.Pos))

	c := KeyVertex(V(1, 2, 3, 0.75, 0.25), DefaultEpsilon)
	assert.Equal(t, b.Pos, c.Pos)
	assert.NotEqual(t, KeyEdge(a, b), KeyEdge(a, c))
	assert.Equal(t, KeySegment(a.Pos, b.Pos), KeySegment(a.Pos, c.Pos))
}

func TestShapes(t *testing.T) {
	assert.Equal(t, 2*3*3, Plane(3).NumFaces())
	assert.Equal(t, 2*5, Strip(5).NumFaces())

	cube := Cube()
	require.Equal(t, 12, cube.NumFaces())
	// Every face normal points away from the cube center.
	center := math32.Vec3(0.5, 0.5, 0.5)
	for i := 0; i < cube.NumFaces(); i++ {
		f := cube.Face(i)
		mid := f.V[0].Pos.Add(f.V[1].Pos).Add(f.V[2].Pos).DivScalar(3)
		assert.Greater(t, f.Normal().Dot(mid.Sub(center)), float32(0), "face %d", i)
	}
	// Quads on neighboring cube faces meet along a 3D edge but never share UVs.
	assert.True(t, cube.Face(0).SharesEdge(cube.Face(4), DefaultEpsilon))
	for i := 0; i < cube.NumFaces(); i++ {
		for j := 0; j < cube.NumFaces(); j++ {
			if i/2 == j/2 {
				continue
			}
			assert.False(t, cube.Face(i).SharesUVEdge(cube.Face(j), DefaultEpsilon), "faces %d %d", i, j)
		}
	}
}

func TestTube(t *testing.T) {
	tube := Tube(4)
	require.Equal(t, 2*4, tube.NumFaces())
	assert.Equal(t, 2*3, Tube(1).NumFaces())

	for i := 0; i < tube.NumFaces(); i++ {
		f := tube.Face(i)
		mid := f.V[0].Pos.Add(f.V[1].Pos).Add(f.V[2].Pos).DivScalar(3)
		mid.Y = 0
		assert.Greater(t, f.Normal().Dot(mid), float32(0), "face %d", i)
	}
	// The first and last quads close the ring in 3D but not in UV.
	first, last := tube.Face(1), tube.Face(6)
	assert.True(t, first.SharesEdge(last, DefaultEpsilon))
	assert.False(t, first.SharesUVEdge(last, DefaultEpsilon))
	assert.True(t, tube.Face(0).SharesUVEdge(tube.Face(3), DefaultEpsilon))
}
