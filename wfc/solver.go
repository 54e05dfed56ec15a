// SPDX-License-Identifier: MIT

package wfc

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/uvwfc/grid"
	"github.com/katalvlaran/uvwfc/rule"
)

// Selector returns the rules admissible in a cell. It must be deterministic
// for a given cell.
type Selector func(c *grid.Cell) []*rule.Rule

// StepKind reports what a Step did.
type StepKind int

const (
	// StepSeeded collapsed a random cell to start (or restart) a solve.
	StepSeeded StepKind = iota
	// StepPropagated filtered one cell from the worklist.
	StepPropagated
	// StepLocalReset hit a contradiction and reset the cell and its neighbors.
	StepLocalReset
	// StepGlobalReset hit the contradiction limit and reset every cell.
	StepGlobalReset
	// StepObserved collapsed the cell with the most candidates.
	StepObserved
	// StepComplete found every cell collapsed.
	StepComplete
	// StepCanceled did nothing: the solver's context is done.
	StepCanceled
)

// String implements fmt.Stringer.
func (k StepKind) String() string {
	switch k {
	case StepSeeded:
		return "seeded"
	case StepPropagated:
		return "propagated"
	case StepLocalReset:
		return "local-reset"
	case StepGlobalReset:
		return "global-reset"
	case StepObserved:
		return "observed"
	case StepComplete:
		return "complete"
	case StepCanceled:
		return "canceled"
	}
	return fmt.Sprintf("StepKind(%d)", int(k))
}

// Stats counts solver work since NewSolver.
type Stats struct {
	Collapses      int
	Propagations   int
	Contradictions int
	Restarts       int
}

// Solver holds the state of one solve. The zero value is not usable; see
// NewSolver.
type Solver struct {
	g    *grid.Grid
	sel  Selector
	opts Options
	rng  *rand.Rand

	queue  []int
	queued []bool

	failures int
	seeded   bool
	done     bool
	err      error
	stats    Stats
}

// NewSolver validates its inputs and sets every cell's candidates to its
// selector rules.
func NewSolver(g *grid.Grid, sel Selector, opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if sel == nil {
		return nil, ErrNilSelector
	}

	s := &Solver{
		g:      g,
		sel:    sel,
		opts:   o,
		rng:    o.Rand,
		queued: make([]bool, g.Len()),
	}
	if s.rng == nil {
		s.rng = rngFromSeed(o.Seed)
	}
	for i := range g.Cells {
		if err := s.reset(i); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Solve collapses every cell of g to one rule. It returns nil on completion,
// ErrRestartLimit when WithMaxRestarts is exhausted, or the context's error.
func Solve(g *grid.Grid, sel Selector, opts ...Option) error {
	s, err := NewSolver(g, sel, opts...)
	if err != nil {
		return err
	}
	return s.Run()
}

// Run steps until the grid is complete or a step fails.
func (s *Solver) Run() error {
	for {
		kind, err := s.Step()
		if err != nil {
			return err
		}
		if kind == StepComplete {
			return nil
		}
	}
}

// Done reports whether the grid is complete.
func (s *Solver) Done() bool { return s.done }

// Stats returns the work counters.
func (s *Solver) Stats() Stats { return s.stats }

// Step performs one transition: seed, one propagation, or one observation.
// With a non-nil error the kind is StepCanceled when the context is done,
// StepComplete after ErrSolved, or the step that failed.
func (s *Solver) Step() (StepKind, error) {
	switch {
	case s.done:
		return StepComplete, ErrSolved
	case s.err != nil:
		return StepGlobalReset, s.err
	}
	if err := s.opts.Ctx.Err(); err != nil {
		return StepCanceled, err
	}
	if !s.seeded {
		s.seed()
		return StepSeeded, nil
	}
	if len(s.queue) > 0 {
		return s.propagate()
	}
	return s.observe(), nil
}

func (s *Solver) seed() {
	s.seeded = true
	if s.g.Len() == 0 {
		return
	}
	i := pick(s.rng, s.g.Len())
	s.collapse(i)
	s.enqueueNeighbors(i)
}

func (s *Solver) propagate() (StepKind, error) {
	i := s.queue[0]
	s.queue = s.queue[1:]
	s.queued[i] = false
	s.stats.Propagations++

	cell := &s.g.Cells[i]
	kept := s.filter(i)
	if len(kept) == 0 {
		return s.contradiction(i)
	}
	if len(kept) < len(cell.Candidates) {
		cell.Candidates = kept
		s.enqueueNeighbors(i)
	}
	return StepPropagated, nil
}

// filter returns the candidates of cell i that fit every linked neighbor.
func (s *Solver) filter(i int) []*rule.Rule {
	cell := &s.g.Cells[i]
	var (
		nbs  [rule.NumSides][]*rule.Rule
		src  [rule.NumSides]rule.Side
		rev  [rule.NumSides]bool
		live [rule.NumSides]bool
	)
	for _, d := range rule.Sides {
		l := cell.Links[d]
		if !l.Valid() {
			continue
		}
		live[d] = true
		nbs[d] = s.g.Cells[l.To].Candidates
		src[d], rev[d] = l.Adapter.SourceSide(d.Opposite())
	}

	kept := make([]*rule.Rule, 0, len(cell.Candidates))
	for _, c := range cell.Candidates {
		ok := true
		for _, d := range rule.Sides {
			if !live[d] {
				continue
			}
			want := c.SideKey(d, false)
			found := false
			for _, n := range nbs[d] {
				if n.SideKey(src[d], rev[d]) == want {
					found = true
					break
				}
			}
			if !found {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, c)
		}
	}
	return kept
}

func (s *Solver) contradiction(i int) (StepKind, error) {
	s.stats.Contradictions++
	s.failures++
	if s.failures < s.opts.ContradictionLimit {
		s.opts.Logger.Debug("local contradiction", "cell", i, "failures", s.failures)
		if err := s.reset(i); err != nil {
			return StepLocalReset, err
		}
		for _, l := range s.g.Cells[i].Links {
			if l.Valid() {
				if err := s.reset(l.To); err != nil {
					return StepLocalReset, err
				}
			}
		}
		return StepLocalReset, nil
	}

	for _, j := range s.queue {
		s.queued[j] = false
	}
	s.queue = s.queue[:0]
	for j := range s.g.Cells {
		if err := s.reset(j); err != nil {
			return StepGlobalReset, err
		}
	}
	s.failures = 0
	s.seeded = false
	s.stats.Restarts++
	s.opts.Logger.Info("deadlocked, restarting", "restart", s.stats.Restarts)
	s.opts.Observer.OnDeadlocked(s.stats.Restarts)
	if s.opts.MaxRestarts > 0 && s.stats.Restarts >= s.opts.MaxRestarts {
		s.err = fmt.Errorf("%w: %d global resets", ErrRestartLimit, s.stats.Restarts)
		return StepGlobalReset, s.err
	}
	return StepGlobalReset, nil
}

// observe collapses the cell with the most candidates, or completes.
func (s *Solver) observe() StepKind {
	best, most := -1, 1
	for i := range s.g.Cells {
		if n := len(s.g.Cells[i].Candidates); n > most {
			best, most = i, n
		}
	}
	if best < 0 {
		s.done = true
		s.opts.Observer.OnObserved(Observation{Cell: -1, Complete: true})
		return StepComplete
	}
	r := s.collapse(best)
	s.enqueueNeighbors(best)
	s.opts.Observer.OnObserved(Observation{Cell: best, Rule: r})
	return StepObserved
}

func (s *Solver) collapse(i int) *rule.Rule {
	cell := &s.g.Cells[i]
	r := cell.Candidates[pick(s.rng, len(cell.Candidates))]
	cell.Candidates = []*rule.Rule{r}
	s.stats.Collapses++
	return r
}

func (s *Solver) reset(i int) error {
	cell := &s.g.Cells[i]
	cell.SetCandidates(s.sel(cell))
	if len(cell.Candidates) == 0 {
		return fmt.Errorf("%w: cell %d", ErrNoCandidates, i)
	}
	return nil
}

func (s *Solver) enqueueNeighbors(i int) {
	for _, l := range s.g.Cells[i].Links {
		if l.Valid() && !s.queued[l.To] {
			s.queued[l.To] = true
			s.queue = append(s.queue, l.To)
		}
	}
}
