// SPDX-License-Identifier: MIT

package wfc

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
)

// DefaultContradictionLimit is the number of local contradictions tolerated
// before a global reset.
const DefaultContradictionLimit = 1000

// Option configures a Solver. Invalid values are recorded and surfaced as
// ErrOptionViolation by NewSolver.
type Option func(*Options)

// Options holds solver parameters.
type Options struct {
	// Ctx is checked once per step.
	Ctx context.Context

	// Seed feeds the default random source; 0 selects the fixed default.
	Seed int64

	// Rand, when set, replaces the seeded source.
	Rand *rand.Rand

	// Observer receives observed and deadlocked events.
	Observer Observer

	// ContradictionLimit is the local contradiction count that triggers a
	// global reset.
	ContradictionLimit int

	// MaxRestarts bounds global resets; 0 means unlimited.
	MaxRestarts int

	// Logger receives solver diagnostics. Defaults to a discard logger.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns:
//   - context.Background()
//   - seed 0 (the fixed default seed)
//   - no observer
//   - DefaultContradictionLimit, unlimited restarts
//   - silent logger
func DefaultOptions() Options {
	return Options{
		Ctx:                context.Background(),
		Observer:           nopObserver{},
		ContradictionLimit: DefaultContradictionLimit,
		Logger:             slog.New(slog.DiscardHandler),
	}
}

// WithContext sets a context for cancellation; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed seeds the random source. Seed 0 selects the fixed default.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies the random source directly; nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithObserver registers an event observer; nil is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithContradictionLimit sets how many local contradictions trigger a
// global reset.
//
//	n ≥ 1: limit
//	n < 1: invalid option → ErrOptionViolation
func WithContradictionLimit(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: contradiction limit must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.ContradictionLimit = n
	}
}

// WithMaxRestarts bounds global resets: the solve fails with ErrRestartLimit
// after the n-th one.
//
//	n > 0: limit
//	n == 0: unlimited
//	n < 0: invalid option → ErrOptionViolation
func WithMaxRestarts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max restarts cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRestarts = n
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
