// SPDX-License-Identifier: MIT

package mesh

import (
	"cogentcore.org/core/math32"
)

// unitUV lists the UV corners of an island quad in vertex order before any shift.
var unitUV = [4]math32.Vector2{
	math32.Vec2(0, 0),
	math32.Vec2(1, 0),
	math32.Vec2(1, 1),
	math32.Vec2(0, 1),
}

// addIsland adds quad p as its own UV island: a square of side size at uvMin.
// shift rotates the vertex order, which changes the corner the island's
// boundary loop starts from without changing winding or geometry.
func (b *Builder) addIsland(p [4]math32.Vector3, uvMin math32.Vector2, size float32, shift int) {
	var v [4]Vertex
	for i := range v {
		k := (i + shift) % 4
		v[i] = Vertex{Pos: p[k], UV: uvMin.Add(unitUV[k].MulScalar(size))}
	}
	b.AddQuad(v[0], v[1], v[2], v[3])
}

// Plane returns an n×n grid of unit quads on the y = 0 plane facing +Y,
// mapped as a single UV island covering [0,1]².
func Plane(n int) *Mesh {
	if n < 1 {
		n = 1
	}
	b := NewBuilder()
	fn := float32(n)
	at := func(x, z int) Vertex {
		return V(float32(x), 0, float32(z), float32(x)/fn, float32(z)/fn)
	}
	for z := 0; z < n; z++ {
		for x := 0; x < n; x++ {
			b.AddQuad(at(x, z), at(x, z+1), at(x+1, z+1), at(x+1, z))
		}
	}
	return b.Mesh()
}

// Strip returns n unit quads side by side along +X on the z = 0 plane
// facing +Z. Each quad is its own UV island; quad i starts its vertex order
// i quarter turns later, so neighboring islands meet rotated.
func Strip(n int) *Mesh {
	if n < 1 {
		n = 1
	}
	b := NewBuilder()
	slot := 1 / float32(n)
	for i := 0; i < n; i++ {
		x := float32(i)
		p := [4]math32.Vector3{
			math32.Vec3(x, 0, 0),
			math32.Vec3(x+1, 0, 0),
			math32.Vec3(x+1, 1, 0),
			math32.Vec3(x, 1, 0),
		}
		b.addIsland(p, math32.Vec2(float32(i)*slot+slot/4, 0.25), slot/2, i)
	}
	return b.Mesh()
}

// Tube returns the side wall of an n-sided prism (n >= 3) around the Y
// axis, facing outward, unwrapped into a single UV island: quad k covers
// u in [k/n, (k+1)/n] and v in [0, 1/n]. The island's two short sides meet
// along the same 3D edge, so the island is linked to itself.
func Tube(n int) *Mesh {
	if n < 3 {
		n = 3
	}
	b := NewBuilder()
	fn := float32(n)
	rim := func(k int, y float32) math32.Vector3 {
		a := 2 * math32.Pi * float32(k%n) / fn
		return math32.Vec3(math32.Cos(a), y, -math32.Sin(a))
	}
	for k := 0; k < n; k++ {
		u0, u1 := float32(k)/fn, float32(k+1)/fn
		b.AddQuad(
			Vertex{Pos: rim(k, 0), UV: math32.Vec2(u0, 0)},
			Vertex{Pos: rim(k+1, 0), UV: math32.Vec2(u1, 0)},
			Vertex{Pos: rim(k+1, 1), UV: math32.Vec2(u1, 1/fn)},
			Vertex{Pos: rim(k, 1), UV: math32.Vec2(u0, 1/fn)},
		)
	}
	return b.Mesh()
}

// cubeFaces lists the six faces of the unit cube, counter-clockwise seen
// from outside: +Z, -Z, +X, -X, +Y, -Y.
var cubeFaces = [6][4]math32.Vector3{
	{{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1}},
	{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 1, Y: 0, Z: 0}},
	{{X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 0, Z: 1}},
	{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 0}},
	{{X: 0, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 0}},
	{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 1}},
}

// CubeIslandSize is the UV side of each cube face island.
const CubeIslandSize float32 = 0.25

// Cube returns the closed unit cube. Each face is a UV island of side
// CubeIslandSize in a 3×2 atlas; face f starts its vertex order f quarter
// turns later, so seams carry every rotation.
func Cube() *Mesh {
	b := NewBuilder()
	for f, p := range cubeFaces {
		col, row := f%3, f/3
		uvMin := math32.Vec2(float32(col)/3+0.04, float32(row)/2+0.04)
		b.addIsland(p, uvMin, CubeIslandSize, f)
	}
	return b.Mesh()
}
