// SPDX-License-Identifier: MIT

package uvgrid

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/katalvlaran/uvwfc/mesh"
)

// collinearTol bounds |sin| between unit UV directions treated as one side.
const collinearTol = 1e-3

// bedge is a directed outer edge of an island, in face winding order.
type bedge struct {
	a, b   mesh.Vertex
	ka, kb mesh.VertexKey
}

// boundaryLoop chains the island's outer edges into one closed loop that
// starts with the first outer edge in face order.
func (s *surface) boundaryLoop(id int, members []int) ([]bedge, error) {
	count := make(map[mesh.EdgeKey]int, 3*len(members))
	for _, f := range members {
		for e := 0; e < 3; e++ {
			count[s.edgeKey(f, e)]++
		}
	}

	var outer []bedge
	for _, f := range members {
		for e := 0; e < 3; e++ {
			if count[s.edgeKey(f, e)] != 1 {
				continue
			}
			a, b := s.faces[f].Edge(e)
			outer = append(outer, bedge{a: a, b: b, ka: s.keys[f][e], kb: s.keys[f][(e+1)%3]})
		}
	}
	if len(outer) == 0 {
		return nil, fmt.Errorf("%w: island %d has no outer edges", ErrOpenBoundary, id)
	}

	next := make(map[mesh.VertexKey]int, len(outer))
	for i, e := range outer {
		if _, dup := next[e.ka]; dup {
			return nil, fmt.Errorf("%w: island %d boundary touches itself at %v", ErrOpenBoundary, id, e.a.Pos)
		}
		next[e.ka] = i
	}

	loop := make([]bedge, 0, len(outer))
	loop = append(loop, outer[0])
	for cur := outer[0]; ; {
		i, ok := next[cur.kb]
		if !ok {
			return nil, fmt.Errorf("%w: island %d boundary breaks at %v", ErrOpenBoundary, id, cur.b.Pos)
		}
		if i == 0 {
			break
		}
		if len(loop) == len(outer) {
			return nil, fmt.Errorf("%w: island %d boundary does not return to its start", ErrOpenBoundary, id)
		}
		cur = outer[i]
		loop = append(loop, cur)
	}
	if len(loop) != len(outer) {
		return nil, fmt.Errorf("%w: island %d has %d outer edges off its main loop", ErrOpenBoundary, id, len(outer)-len(loop))
	}
	return loop, nil
}

// uvDir returns the unit UV direction of e.
func uvDir(e bedge) (math32.Vector2, bool) {
	d := e.b.UV.Sub(e.a.UV)
	l := d.Length()
	if l == 0 {
		return d, false
	}
	return d.DivScalar(l), true
}

func sameDir(a, b math32.Vector2) bool {
	return a.Dot(b) > 0 && math32.Abs(a.X*b.Y-a.Y*b.X) <= collinearTol
}

func axisAligned(d math32.Vector2) bool {
	return math32.Abs(d.X) <= collinearTol || math32.Abs(d.Y) <= collinearTol
}

// segment splits the loop into maximal collinear runs, starting at the
// first edge whose direction differs from its predecessor, and checks that
// the runs form an axis-aligned rectangle.
func segment(id int, loop []bedge) ([4][]bedge, error) {
	var sides [4][]bedge
	n := len(loop)
	dirs := make([]math32.Vector2, n)
	for i, e := range loop {
		d, ok := uvDir(e)
		if !ok {
			return sides, fmt.Errorf("%w: island %d has a zero-length UV edge at %v", ErrDegenerateBoundary, id, e.a.Pos)
		}
		dirs[i] = d
	}

	start := -1
	for i := range dirs {
		if !sameDir(dirs[(i+n-1)%n], dirs[i]) {
			start = i
			break
		}
	}
	if start < 0 {
		return sides, fmt.Errorf("%w: island %d boundary never turns", ErrDegenerateBoundary, id)
	}

	var runs [][]bedge
	var runDir []math32.Vector2
	for k := 0; k < n; k++ {
		i := (start + k) % n
		if k == 0 || !sameDir(runDir[len(runDir)-1], dirs[i]) {
			runs = append(runs, nil)
			runDir = append(runDir, dirs[i])
		}
		runs[len(runs)-1] = append(runs[len(runs)-1], loop[i])
	}
	if len(runs) != 4 {
		return sides, fmt.Errorf("%w: island %d has %d sides", ErrNotRectangular, id, len(runs))
	}

	var lengths [4]float32
	for i := range runs {
		if !axisAligned(runDir[i]) {
			return sides, fmt.Errorf("%w: island %d side %d is not axis-aligned", ErrNotRectangular, id, i)
		}
		if math32.Abs(runDir[i].Dot(runDir[(i+1)%4])) > collinearTol {
			return sides, fmt.Errorf("%w: island %d sides %d and %d are not perpendicular", ErrNotRectangular, id, i, (i+1)%4)
		}
		first, last := runs[i][0], runs[i][len(runs[i])-1]
		lengths[i] = last.b.UV.Sub(first.a.UV).Length()
		sides[i] = runs[i]
	}
	for i := 0; i < 2; i++ {
		tol := collinearTol * math32.Max(lengths[i], lengths[i+2])
		if math32.Abs(lengths[i]-lengths[i+2]) > tol {
			return sides, fmt.Errorf("%w: island %d opposite sides %d and %d differ in length", ErrNotRectangular, id, i, i+2)
		}
	}
	return sides, nil
}
