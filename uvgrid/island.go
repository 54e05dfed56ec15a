// SPDX-License-Identifier: MIT

package uvgrid

import (
	"cogentcore.org/core/math32"

	"github.com/katalvlaran/uvwfc/grid"
	"github.com/katalvlaran/uvwfc/mesh"
	"github.com/katalvlaran/uvwfc/rule"
)

// normalTol is the smallest summed normal, relative to the island's area,
// that still gives the island a direction.
const normalTol = 1e-3

// island is one traced UV rectangle and its place in the grid.
type island struct {
	id      int
	sides   [4][]bedge
	corners [4]mesh.Vertex

	// Cell frame in texture pixels: origin at corner 1, x toward corner 0,
	// y toward corner 2.
	origin, xAxis, yAxis math32.Vector2
	width, height        int
	normal               math32.Vector3

	// first is the grid index of cell (0, 0); cells are row-major.
	first int
}

// traceIsland runs the per-island steps: boundary loop, sides, frame.
func (s *surface) traceIsland(id int, members []int, o Options) (*island, error) {
	loop, err := s.boundaryLoop(id, members)
	if err != nil {
		return nil, err
	}
	sides, err := segment(id, loop)
	if err != nil {
		return nil, err
	}

	is := &island{id: id, sides: sides}
	for i := range sides {
		is.corners[i] = sides[i][0].a
	}
	tex := float32(o.TextureSize)
	is.origin = is.corners[1].UV.MulScalar(tex)
	is.xAxis = is.corners[0].UV.MulScalar(tex).Sub(is.origin)
	is.yAxis = is.corners[2].UV.MulScalar(tex).Sub(is.origin)
	is.width = cellCount(is.xAxis.Length(), o.CellSize)
	is.height = cellCount(is.yAxis.Length(), o.CellSize)

	var (
		n    math32.Vector3
		area float32
	)
	for _, f := range members {
		an := s.faces[f].AreaNormal()
		n = n.Add(an)
		area += an.Length()
	}
	// Faces wrapping all the way around (a tube) cancel out: no normal.
	if n.Length() > normalTol*area {
		is.normal = n.Normal()
	}
	return is, nil
}

func cellCount(px float32, cell int) int {
	n := int(math32.Round(px / float32(cell)))
	if n < 1 {
		n = 1
	}
	return n
}

// count returns how many cells line side s.
func (is *island) count(s rule.Side) int {
	if s == rule.Top || s == rule.Bottom {
		return is.width
	}
	return is.height
}

func (is *island) cellAt(i, j int) int { return is.first + j*is.width + i }

// sideCell returns the cell at position p along side s, counted from the
// side's start corner.
func (is *island) sideCell(s rule.Side, p int) int {
	switch s {
	case rule.Top:
		return is.cellAt(is.width-1-p, 0)
	case rule.Left:
		return is.cellAt(0, p)
	case rule.Bottom:
		return is.cellAt(p, is.height-1)
	default:
		return is.cellAt(is.width-1, is.height-1-p)
	}
}

// point returns the texture position at frame coordinates (u, v) in cells.
func (is *island) point(u, v int) math32.Vector2 {
	x := is.xAxis.MulScalar(float32(u) / float32(is.width))
	y := is.yAxis.MulScalar(float32(v) / float32(is.height))
	return is.origin.Add(x).Add(y)
}

// addCells appends the island's cells to g and links them to each other.
func (is *island) addCells(g *grid.Grid) error {
	is.first = g.Len()
	for j := 0; j < is.height; j++ {
		for i := 0; i < is.width; i++ {
			g.AddCell(grid.Cell{
				Island: is.id,
				Corners: [4]math32.Vector2{
					is.point(i+1, j),
					is.point(i, j),
					is.point(i, j+1),
					is.point(i+1, j+1),
				},
				Normal: is.normal,
			})
		}
	}

	id := rule.Identity()
	for j := 0; j < is.height; j++ {
		for i := 0; i < is.width; i++ {
			c := is.cellAt(i, j)
			if j > 0 {
				if err := g.Link(c, rule.Top, is.cellAt(i, j-1), id); err != nil {
					return err
				}
			}
			if i > 0 {
				if err := g.Link(c, rule.Left, is.cellAt(i-1, j), id); err != nil {
					return err
				}
			}
			if j < is.height-1 {
				if err := g.Link(c, rule.Bottom, is.cellAt(i, j+1), id); err != nil {
					return err
				}
			}
			if i < is.width-1 {
				if err := g.Link(c, rule.Right, is.cellAt(i+1, j), id); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
