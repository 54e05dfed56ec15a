// SPDX-License-Identifier: MIT

package wfc_test

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/uvwfc/grid"
	"github.com/katalvlaran/uvwfc/rule"
	"github.com/katalvlaran/uvwfc/wfc"
)

// ExampleSolve solves two linked cells with a black and a white rule. Each
// rule only matches itself, so both cells always end up with the same one.
func ExampleSolve() {
	tile := func(name string, c color.RGBA) *rule.Rule {
		g := [][]color.RGBA{{c, c}, {c, c}}
		r, _ := rule.New(name, g, g)
		return r
	}
	black := tile("black", color.RGBA{A: 255})
	white := tile("white", color.RGBA{R: 255, G: 255, B: 255, A: 255})

	g := grid.New(2)
	a := g.AddCell(grid.Cell{})
	b := g.AddCell(grid.Cell{})
	_ = g.Connect(a, rule.Right, b, rule.Left, rule.Identity(), rule.Identity())

	observed := 0
	err := wfc.Solve(g, func(*grid.Cell) []*rule.Rule { return []*rule.Rule{black, white} },
		wfc.WithSeed(3),
		wfc.WithObserver(wfc.ObserverFuncs{Observed: func(o wfc.Observation) {
			if o.Complete {
				fmt.Println("complete")
			}
			observed++
		}}))
	fmt.Println("error:", err)
	fmt.Println("same rule:", g.Cells[a].Candidates[0] == g.Cells[b].Candidates[0])
	fmt.Println("observed events:", observed)
	// Output:
	// complete
	// error: <nil>
	// same rule: true
	// observed events: 1
}
