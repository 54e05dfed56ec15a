// SPDX-License-Identifier: MIT

package uvgrid_test

import (
	"fmt"

	"github.com/katalvlaran/uvwfc/mesh"
	"github.com/katalvlaran/uvwfc/uvgrid"
)

// ExampleBuild subdivides the six faces of a cube into 4×4 cells each and
// links them across every seam.
func ExampleBuild() {
	g, err := uvgrid.Build(mesh.Cube(), uvgrid.WithTextureSize(256), uvgrid.WithCellSize(16))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	links := 0
	for i := range g.Cells {
		links += g.Degree(i)
	}
	fmt.Println("cells:", g.Len())
	fmt.Println("links:", links)
	fmt.Println("valid:", g.Validate() == nil)
	// Output:
	// cells: 96
	// links: 384
	// valid: true
}
