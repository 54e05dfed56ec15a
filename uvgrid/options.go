// SPDX-License-Identifier: MIT

package uvgrid

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/uvwfc/mesh"
)

// Option configures Build. Invalid values are recorded and surfaced as
// ErrOptionViolation when Build runs.
type Option func(*Options)

// Options holds the builder parameters.
type Options struct {
	// TextureSize is the texture side in pixels; UVs are scaled by it.
	TextureSize int

	// CellSize is the nominal cell side in texture pixels.
	CellSize int

	// Resolution is the logical pattern side recorded on the grid.
	Resolution int

	// Epsilon is the tolerance for position and UV equality.
	Epsilon float32

	// Workers bounds how many islands are traced concurrently.
	Workers int

	// Logger receives build diagnostics. Defaults to a discard logger.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns the defaults:
//   - 1024 px texture, 32 px cells
//   - resolution 4
//   - epsilon mesh.DefaultEpsilon
//   - one worker (sequential)
//   - silent logger
func DefaultOptions() Options {
	return Options{
		TextureSize: 1024,
		CellSize:    32,
		Resolution:  4,
		Epsilon:     mesh.DefaultEpsilon,
		Workers:     1,
		Logger:      slog.New(slog.DiscardHandler),
	}
}

// WithTextureSize sets the texture side in pixels (> 0).
func WithTextureSize(px int) Option {
	return func(o *Options) {
		if px <= 0 {
			o.err = fmt.Errorf("%w: texture size must be positive (%d)", ErrOptionViolation, px)
			return
		}
		o.TextureSize = px
	}
}

// WithCellSize sets the nominal cell side in texture pixels (> 0).
func WithCellSize(px int) Option {
	return func(o *Options) {
		if px <= 0 {
			o.err = fmt.Errorf("%w: cell size must be positive (%d)", ErrOptionViolation, px)
			return
		}
		o.CellSize = px
	}
}

// WithResolution sets the logical pattern side recorded on the grid (> 0).
func WithResolution(r int) Option {
	return func(o *Options) {
		if r <= 0 {
			o.err = fmt.Errorf("%w: resolution must be positive (%d)", ErrOptionViolation, r)
			return
		}
		o.Resolution = r
	}
}

// WithEpsilon sets the equality tolerance (> 0).
func WithEpsilon(eps float32) Option {
	return func(o *Options) {
		if !(eps > 0) {
			o.err = fmt.Errorf("%w: epsilon must be positive (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithWorkers sets how many islands may be traced at once (≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the diagnostics logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
