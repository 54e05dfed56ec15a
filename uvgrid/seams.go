// SPDX-License-Identifier: MIT

package uvgrid

import (
	"log/slog"
	"slices"

	"cogentcore.org/core/math32"

	"github.com/katalvlaran/uvwfc/grid"
	"github.com/katalvlaran/uvwfc/mesh"
	"github.com/katalvlaran/uvwfc/rule"
)

// seamEdge is one outer edge of an island side, with the side positions
// [from, to) it covers.
type seamEdge struct {
	is       *island
	side     rule.Side
	e        bedge
	from, to int
}

// cells returns the boundary cells under the edge, in edge direction.
func (se seamEdge) cells() []int {
	out := make([]int, 0, se.to-se.from)
	for p := se.from; p < se.to; p++ {
		out = append(out, se.is.sideCell(se.side, p))
	}
	return out
}

// seamEdges lists every outer edge of the island with its side positions.
func (is *island) seamEdges(tex float32) []seamEdge {
	var out []seamEdge
	for _, s := range rule.Sides {
		edges := is.sides[s]
		start := edges[0].a.UV
		length := edges[len(edges)-1].b.UV.Sub(start).Length() * tex
		n := is.count(s)
		step := length / float32(n)
		pos := func(uv math32.Vector2) int {
			p := int(math32.Round(uv.Sub(start).Length() * tex / step))
			return min(max(p, 0), n)
		}
		for _, e := range edges {
			out = append(out, seamEdge{is: is, side: s, e: e, from: pos(e.a.UV), to: pos(e.b.UV)})
		}
	}
	return out
}

// seamAdapter returns the adapter stored on the pivot's link for pivot side
// s meeting partner side t. same reports that both edges run the same way.
func seamAdapter(s, t rule.Side, same bool) rule.Adapter {
	if same {
		return rule.Turn(int(t+s+1), true)
	}
	return rule.Turn(int(t-s+2), false)
}

// linkSeams pairs outer edges that share 3D endpoints and links the cells
// along them. Pairs are visited in island, side, edge order.
func linkSeams(g *grid.Grid, islands []*island, tex float32, log *slog.Logger) error {
	bySeg := make(map[mesh.SegmentKey][]seamEdge)
	var order []mesh.SegmentKey
	for _, is := range islands {
		for _, se := range is.seamEdges(tex) {
			k := mesh.KeySegment(se.e.ka.Pos, se.e.kb.Pos)
			if _, ok := bySeg[k]; !ok {
				order = append(order, k)
			}
			bySeg[k] = append(bySeg[k], se)
		}
	}

	seams := 0
	for _, k := range order {
		es := bySeg[k]
		if len(es) < 2 {
			continue
		}
		if len(es) > 2 {
			log.Warn("non-manifold seam edge, using first partner",
				"island", es[0].is.id, "side", es[0].side, "edges", len(es))
		}
		p, q := es[0], es[1]
		if p.is == q.is && p.side == q.side {
			log.Debug("seam edge folds onto its own side", "island", p.is.id, "side", p.side)
			continue
		}

		same := p.e.ka.Pos == q.e.ka.Pos
		pc, qc := p.cells(), q.cells()
		if !same {
			slices.Reverse(qc)
		}
		if len(pc) != len(qc) {
			log.Warn("seam runs differ in length, linking the shorter",
				"island", p.is.id, "side", p.side, "cells", len(pc),
				"partner", q.is.id, "partner_side", q.side, "partner_cells", len(qc))
		}
		ad := seamAdapter(p.side, q.side, same)
		for i := 0; i < min(len(pc), len(qc)); i++ {
			if err := g.Connect(pc[i], p.side, qc[i], q.side, ad, ad.Inverse()); err != nil {
				return err
			}
		}
		seams++
	}
	log.Debug("linked seams", "edges", seams)
	return nil
}
