// SPDX-License-Identifier: MIT

// Command wfcgrid builds a cell grid over the UV islands of a procedural
// mesh, solves it against a tile set and logs a per-island summary.
//
//	wfcgrid [tiles.toml] -shape cube -seed 7
package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"

	"github.com/katalvlaran/uvwfc/grid"
	"github.com/katalvlaran/uvwfc/mesh"
	"github.com/katalvlaran/uvwfc/tileset"
	"github.com/katalvlaran/uvwfc/uvgrid"
	"github.com/katalvlaran/uvwfc/wfc"
)

// Config is the configuration of the wfcgrid command.
type Config struct {

	// Tileset is a tile set manifest. Empty uses the built-in set.
	Tileset string `posarg:"0" required:"-"`

	// Shape is the procedural mesh: plane, strip, tube or cube.
	Shape string `default:"cube"`

	// Size is the plane's quads per side, the strip's quad count or the
	// tube's number of sides.
	Size int `default:"4"`

	// Seed drives every random choice of the solver.
	Seed int64 `default:"1"`

	// TextureSize is the texture side in pixels.
	TextureSize int `default:"256"`

	// CellSize is the nominal cell side in texture pixels.
	CellSize int `default:"16"`

	// MaxRestarts bounds global resets; 0 restarts forever.
	MaxRestarts int `default:"100"`

	// Workers bounds concurrent island tracing.
	Workers int `default:"1"`

	// Verbose logs every observation and build detail.
	Verbose bool `flag:"v,verbose"`
}

func main() {
	opts := cli.DefaultOptions("wfcgrid", "Wfcgrid solves wave function collapse over the UV islands of a mesh.")
	cli.Run(opts, &Config{}, Run)
}

// Run builds and solves the grid described by c.
func Run(c *Config) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	return run(c, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func run(c *Config, logger *slog.Logger) error {
	set, err := loadSet(c.Tileset)
	if err != nil {
		return errors.Log(err)
	}
	m, err := shape(c.Shape, c.Size)
	if err != nil {
		return errors.Log(err)
	}

	g, err := uvgrid.Build(m,
		uvgrid.WithTextureSize(c.TextureSize),
		uvgrid.WithCellSize(c.CellSize),
		uvgrid.WithResolution(set.Rules()[0].Resolution()),
		uvgrid.WithWorkers(max(c.Workers, 1)),
		uvgrid.WithLogger(logger))
	if err != nil {
		return errors.Log(err)
	}
	logger.Info("grid built", "shape", c.Shape, "faces", m.NumFaces(), "cells", g.Len())

	observed, deadlocks := 0, 0
	obs := wfc.ObserverFuncs{
		Observed: func(o wfc.Observation) {
			if o.Complete {
				return
			}
			observed++
			logger.Debug("observed", "cell", o.Cell, "rule", o.Rule.Name())
		},
		Deadlocked: func(restart int) {
			deadlocks++
			logger.Warn("deadlocked", "restart", restart)
		},
	}
	s, err := wfc.NewSolver(g, set.Selector(),
		wfc.WithSeed(c.Seed),
		wfc.WithMaxRestarts(c.MaxRestarts),
		wfc.WithObserver(obs),
		wfc.WithLogger(logger))
	if err != nil {
		return errors.Log(err)
	}
	if err := s.Run(); err != nil {
		return errors.Log(err)
	}
	st := s.Stats()
	logger.Info("solved", "observed", observed, "deadlocks", deadlocks,
		"collapses", st.Collapses, "propagations", st.Propagations, "contradictions", st.Contradictions)

	for _, sum := range summarize(g, set.Threshold) {
		logger.Info("island", "id", sum.island, "zone", sum.zone, "cells", sum.cells, "rules", sum.rules)
	}
	return nil
}

func loadSet(path string) (*tileset.Set, error) {
	if path == "" {
		return tileset.Builtin(12)
	}
	return tileset.Load(path)
}

func shape(name string, size int) (*mesh.Mesh, error) {
	switch name {
	case "plane":
		return mesh.Plane(size), nil
	case "strip":
		return mesh.Strip(size), nil
	case "tube":
		return mesh.Tube(size), nil
	case "cube":
		return mesh.Cube(), nil
	}
	return nil, fmt.Errorf("wfcgrid: unknown shape %q (want plane, strip, tube or cube)", name)
}

// islandSummary describes one island after solving.
type islandSummary struct {
	island int
	zone   tileset.Zone
	cells  int
	rules  int
}

func summarize(g *grid.Grid, threshold float32) []islandSummary {
	byIsland := map[int]*islandSummary{}
	distinct := map[int]map[string]bool{}
	for i := range g.Cells {
		c := &g.Cells[i]
		sum, ok := byIsland[c.Island]
		if !ok {
			sum = &islandSummary{island: c.Island, zone: tileset.ZoneOf(c.Normal, threshold)}
			byIsland[c.Island] = sum
			distinct[c.Island] = map[string]bool{}
		}
		sum.cells++
		if len(c.Candidates) == 1 {
			distinct[c.Island][c.Candidates[0].Name()] = true
		}
	}
	out := make([]islandSummary, 0, len(byIsland))
	for id, sum := range byIsland {
		sum.rules = len(distinct[id])
		out = append(out, *sum)
	}
	slices.SortFunc(out, func(a, b islandSummary) int { return a.island - b.island })
	return out
}
