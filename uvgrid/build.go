// SPDX-License-Identifier: MIT

package uvgrid

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/uvwfc/grid"
	"github.com/katalvlaran/uvwfc/mesh"
)

// FaceSource is the mesh input: an indexed list of triangles.
// *mesh.Mesh implements it.
type FaceSource interface {
	NumFaces() int
	Face(i int) mesh.Face
}

// Build constructs the cell grid for src. Cells carry no candidates yet.
// Errors are returned for the first failing island in island order; no
// partial grid is returned.
func Build(src FaceSource, opts ...Option) (*grid.Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if src == nil {
		return nil, ErrNilSource
	}

	surf := newSurface(src, o.Epsilon)
	groups := surf.islands()
	o.Logger.Debug("found UV islands", "faces", len(surf.faces), "islands", len(groups))

	islands := make([]*island, len(groups))
	errs := make([]error, len(groups))
	var eg errgroup.Group
	eg.SetLimit(o.Workers)
	// Each island keeps its own error so the first failure in island order
	// is reported whatever order the workers finish in; the group only bounds
	// concurrency.
	for i, members := range groups {
		eg.Go(func() error {
			islands[i], errs[i] = surf.traceIsland(i, members, o)
			return nil
		})
	}
	_ = eg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	g := grid.New(o.Resolution)
	for _, is := range islands {
		if err := is.addCells(g); err != nil {
			return nil, err
		}
		o.Logger.Debug("island subdivided", "island", is.id, "width", is.width, "height", is.height)
	}
	if err := linkSeams(g, islands, float32(o.TextureSize), o.Logger); err != nil {
		return nil, err
	}
	o.Logger.Debug("grid built", "cells", g.Len())
	return g, nil
}
