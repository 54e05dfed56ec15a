// SPDX-License-Identifier: MIT

package rule_test

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/uvwfc/rule"
)

// ExampleTurn reads a 2×2 pattern through a quarter turn. The adapted top
// edge is the original left edge read backwards.
func ExampleTurn() {
	c := func(v uint8) color.RGBA { return color.RGBA{R: v, A: 255} }
	grid := [][]color.RGBA{
		{c(1), c(2)},
		{c(3), c(4)},
	}
	r, _ := rule.New("tiny", grid, grid)

	a := rule.Turn(1, false)
	for _, s := range rule.Sides {
		var reds []uint8
		for _, px := range a.Side(r, s) {
			reds = append(reds, px.R)
		}
		src, rev := a.SourceSide(s)
		fmt.Printf("%-6s %v <- %v reversed=%v\n", s, reds, src, rev)
	}

	// Output:
	// top    [3 1] <- left reversed=true
	// left   [3 4] <- bottom reversed=false
	// bottom [4 2] <- right reversed=true
	// right  [1 2] <- top reversed=false
}
