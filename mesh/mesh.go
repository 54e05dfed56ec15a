// SPDX-License-Identifier: MIT

package mesh

import (
	"cogentcore.org/core/math32"
)

// DefaultEpsilon is the tolerance used when comparing positions and UVs.
const DefaultEpsilon float32 = 1e-4

// Vertex is a mesh corner: a 3D position and its texture coordinate.
type Vertex struct {
	Pos math32.Vector3
	UV  math32.Vector2
}

// V is shorthand for building a Vertex.
func V(x, y, z, u, v float32) Vertex {
	return Vertex{Pos: math32.Vec3(x, y, z), UV: math32.Vec2(u, v)}
}

// Face is a triangle. Vertex order defines the winding.
type Face struct {
	V [3]Vertex
}

// Edge returns the i-th directed edge (V[i], V[i+1 mod 3]).
func (f Face) Edge(i int) (Vertex, Vertex) {
	return f.V[i%3], f.V[(i+1)%3]
}

// AreaNormal returns the face normal scaled by the triangle's area.
func (f Face) AreaNormal() math32.Vector3 {
	a := f.V[1].Pos.Sub(f.V[0].Pos)
	b := f.V[2].Pos.Sub(f.V[0].Pos)
	return a.Cross(b).MulScalar(0.5)
}

// Normal returns the unit face normal.
func (f Face) Normal() math32.Vector3 {
	return f.AreaNormal().Normal()
}

// SharesUVEdge reports whether f and o have two endpoints in common with
// equal positions and equal UVs, within eps.
func (f Face) SharesUVEdge(o Face, eps float32) bool {
	return f.shared(o, eps, true) >= 2
}

// SharesEdge reports whether f and o have two endpoints in common by
// position alone, within eps.
func (f Face) SharesEdge(o Face, eps float32) bool {
	return f.shared(o, eps, false) >= 2
}

func (f Face) shared(o Face, eps float32, withUV bool) int {
	n := 0
	for _, a := range f.V {
		for _, b := range o.V {
			if a.Pos.DistanceTo(b.Pos) > eps {
				continue
			}
			if withUV && a.UV.DistanceTo(b.UV) > eps {
				continue
			}
			n++
			break
		}
	}
	return n
}

// Mesh is a list of triangles.
type Mesh struct {
	Faces []Face
}

// NumFaces returns the number of faces.
func (m *Mesh) NumFaces() int { return len(m.Faces) }

// Face returns face i.
func (m *Mesh) Face(i int) Face { return m.Faces[i] }

// Builder accumulates faces.
type Builder struct {
	faces []Face
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// AddTriangle appends the triangle (a, b, c).
func (b *Builder) AddTriangle(v0, v1, v2 Vertex) *Builder {
	b.faces = append(b.faces, Face{V: [3]Vertex{v0, v1, v2}})
	return b
}

// AddQuad appends the quad v0 v1 v2 v3 as triangles (v0,v1,v2) and (v0,v2,v3).
func (b *Builder) AddQuad(v0, v1, v2, v3 Vertex) *Builder {
	return b.AddTriangle(v0, v1, v2).AddTriangle(v0, v2, v3)
}

// Mesh returns the faces added so far.
func (b *Builder) Mesh() *Mesh {
	faces := make([]Face, len(b.faces))
	copy(faces, b.faces)
	return &Mesh{Faces: faces}
}
