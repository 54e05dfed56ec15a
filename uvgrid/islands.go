// SPDX-License-Identifier: MIT

package uvgrid

import (
	"slices"

	"github.com/katalvlaran/uvwfc/mesh"
)

// surface is the builder's read-only view of the input: faces and their
// quantized vertex keys, fetched once.
type surface struct {
	faces []mesh.Face
	keys  [][3]mesh.VertexKey
}

func newSurface(src FaceSource, eps float32) *surface {
	n := src.NumFaces()
	s := &surface{
		faces: make([]mesh.Face, n),
		keys:  make([][3]mesh.VertexKey, n),
	}
	for i := 0; i < n; i++ {
		f := src.Face(i)
		s.faces[i] = f
		for k, v := range f.V {
			s.keys[i][k] = mesh.KeyVertex(v, eps)
		}
	}
	return s
}

// edgeKey returns the undirected UV-continuous key of face f's edge e.
func (s *surface) edgeKey(f, e int) mesh.EdgeKey {
	return mesh.KeyEdge(s.keys[f][e], s.keys[f][(e+1)%3])
}

// islands returns the faces of each UV island, ascending within an island.
// Islands are numbered in order of their first face.
func (s *surface) islands() [][]int {
	byEdge := make(map[mesh.EdgeKey][]int, 3*len(s.faces))
	for f := range s.faces {
		for e := 0; e < 3; e++ {
			k := s.edgeKey(f, e)
			byEdge[k] = append(byEdge[k], f)
		}
	}

	owner := make([]int, len(s.faces))
	for i := range owner {
		owner[i] = -1
	}
	var out [][]int
	queue := make([]int, 0, len(s.faces))
	for start := range s.faces {
		if owner[start] != -1 {
			continue
		}
		id := len(out)
		owner[start] = id
		queue = append(queue[:0], start)
		var members []int
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			members = append(members, cur)
			for e := 0; e < 3; e++ {
				for _, nb := range byEdge[s.edgeKey(cur, e)] {
					if owner[nb] == -1 {
						owner[nb] = id
						queue = append(queue, nb)
					}
				}
			}
		}
		slices.Sort(members)
		out = append(out, members)
	}
	return out
}
