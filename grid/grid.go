// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/katalvlaran/uvwfc/rule"
)

// NoCell marks a link without a neighbor.
const NoCell = -1

// Link is one neighbor slot of a cell.
type Link struct {
	// To is the neighbor's index, or NoCell.
	To int
	// Adapter remaps the neighbor's pattern into the owning cell's frame.
	Adapter rule.Adapter
}

// Valid reports whether the link points at a cell.
func (l Link) Valid() bool { return l.To != NoCell }

// Cell is one tile slot.
type Cell struct {
	Index  int
	Island int
	// Corners in texture pixels, ordered like the island's corners: corner i
	// starts side i.
	Corners [4]math32.Vector2
	Normal  math32.Vector3
	Links   [rule.NumSides]Link
	// Candidates are the rules still admissible here; exactly one once solved.
	Candidates []*rule.Rule
}

// Neighbor returns the link in direction d. An invalid direction yields a
// link to NoCell.
func (c *Cell) Neighbor(d rule.Side) Link {
	if !d.Valid() {
		return Link{To: NoCell}
	}
	return c.Links[d]
}

// SetCandidates replaces the candidates with a copy of rules, dropping nil
// entries and repeated pointers while keeping first-seen order.
func (c *Cell) SetCandidates(rules []*rule.Rule) {
	out := make([]*rule.Rule, 0, len(rules))
	seen := make(map[*rule.Rule]struct{}, len(rules))
	for _, r := range rules {
		if r == nil {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	c.Candidates = out
}

// Collapsed reports whether exactly one candidate remains.
func (c *Cell) Collapsed() bool { return len(c.Candidates) == 1 }

// Center returns the mean of the cell corners.
func (c *Cell) Center() math32.Vector2 {
	return c.Corners[0].Add(c.Corners[1]).Add(c.Corners[2]).Add(c.Corners[3]).MulScalar(0.25)
}

// Grid is an arena of cells.
type Grid struct {
	// Resolution is the logical pattern side the grid was built for.
	Resolution int
	Cells      []Cell
}

// New returns an empty grid for patterns of the given logical resolution.
func New(resolution int) *Grid {
	return &Grid{Resolution: resolution}
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.Cells) }

// Cell returns the cell at index i, or ErrCellIndex.
func (g *Grid) Cell(i int) (*Cell, error) {
	if i < 0 || i >= len(g.Cells) {
		return nil, fmt.Errorf("%w: %d of %d", ErrCellIndex, i, len(g.Cells))
	}
	return &g.Cells[i], nil
}

// AddCell appends a cell with no links and returns its index. The Index and
// Links fields of c are overwritten.
func (g *Grid) AddCell(c Cell) int {
	c.Index = len(g.Cells)
	for d := range c.Links {
		c.Links[d] = Link{To: NoCell}
	}
	g.Cells = append(g.Cells, c)
	return c.Index
}

// Link sets a's link in direction d to b through adapter. It does not touch b.
func (g *Grid) Link(a int, d rule.Side, b int, adapter rule.Adapter) error {
	if err := g.checkEnd(a, d); err != nil {
		return err
	}
	if b != NoCell {
		if _, err := g.Cell(b); err != nil {
			return err
		}
	}
	g.Cells[a].Links[d] = Link{To: b, Adapter: adapter}
	return nil
}

// Connect declares both ends of an edge: a reaches b in direction da through
// adA, and b reaches a in direction db through adB.
func (g *Grid) Connect(a int, da rule.Side, b int, db rule.Side, adA, adB rule.Adapter) error {
	if err := g.checkEnd(a, da); err != nil {
		return err
	}
	if err := g.checkEnd(b, db); err != nil {
		return err
	}
	g.Cells[a].Links[da] = Link{To: b, Adapter: adA}
	g.Cells[b].Links[db] = Link{To: a, Adapter: adB}
	return nil
}

// Validate checks that every link's target is in range and links back.
// Complexity: O(V).
func (g *Grid) Validate() error {
	for i := range g.Cells {
		for _, d := range rule.Sides {
			l := g.Cells[i].Links[d]
			if !l.Valid() {
				continue
			}
			if l.To < 0 || l.To >= len(g.Cells) {
				return fmt.Errorf("%w: cell %d %s -> %d", ErrCellIndex, i, d, l.To)
			}
			if !g.linksTo(l.To, i) {
				return fmt.Errorf("%w: cell %d %s -> %d has no way back", ErrAsymmetricLink, i, d, l.To)
			}
		}
	}
	return nil
}

// Degree returns how many of cell i's directions have a neighbor.
func (g *Grid) Degree(i int) int {
	n := 0
	for _, l := range g.Cells[i].Links {
		if l.Valid() {
			n++
		}
	}
	return n
}

func (g *Grid) linksTo(from, to int) bool {
	for _, l := range g.Cells[from].Links {
		if l.To == to {
			return true
		}
	}
	return false
}

func (g *Grid) checkEnd(i int, d rule.Side) error {
	if _, err := g.Cell(i); err != nil {
		return err
	}
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrDirection, int(d))
	}
	return nil
}
