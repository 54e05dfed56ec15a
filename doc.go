// Package uvwfc fills the UV islands of a mesh with tile patterns using
// wave function collapse.
//
// What it does:
//
//	mesh faces ──uvgrid.Build──▶ grid.Grid ──wfc.Solve──▶ one rule per cell
//
//	• rule/   : tile patterns (logical + detailed color grids), sides and
//	            coordinate adapters (identity, quarter turns, reflections)
//	• mesh/   : triangles with positions and UVs, quad builder, test shapes
//	• grid/   : cell arena: corners, normal, four links, candidates
//	• uvgrid/ : islands → boundary loop → four sides → cells → seam links
//	• wfc/    : seed, propagate, observe, contradiction recovery
//	• tileset/: TOML manifests of images, zones chosen by surface normal
//
// Why seams need adapters:
//
//	Each island gets its own cell frame. Two islands meeting along a 3D edge
//	usually disagree on which way is "up", so every cross-island link stores
//	the rotation (or reflection) that reads the neighbor in the local frame.
//
// Quick example:
//
//	g, _ := uvgrid.Build(mesh.Cube(), uvgrid.WithTextureSize(256), uvgrid.WithCellSize(16))
//	set, _ := tileset.Builtin(12)
//	_ = wfc.Solve(g, set.Selector(), wfc.WithSeed(7))
//	fmt.Println(g.Cells[0].Candidates[0].Name())
//
// See cmd/wfcgrid for a runnable command.
package uvwfc
