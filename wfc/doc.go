// SPDX-License-Identifier: MIT

// Package wfc collapses a grid.Grid to one rule per cell with wave function
// collapse style constraint propagation.
//
// What:
//
//	Every cell starts with the rules its Selector returns. The solver then
//	alternates between
//	  - seed: collapse one random cell to one random candidate,
//	  - propagate: drain a FIFO worklist, keeping only candidates whose
//	    side matches at least one candidate of each linked neighbor (read
//	    through the link's adapter); a cell that shrinks enqueues its
//	    neighbors,
//	  - observe: when the worklist is empty, collapse the cell with the
//	    LARGEST candidate count above one (first found on ties).
//	Solving is complete when no cell has more than one candidate.
//
// Contradictions:
//
//	A cell filtered down to nothing is a contradiction. Below the limit
//	(WithContradictionLimit, default 1000) the cell and its neighbors are
//	reset to their selector rules and draining continues. At the limit every
//	cell is reset, the worklist is cleared, Observer.OnDeadlocked fires and
//	the next step seeds again. Restarts are unbounded unless WithMaxRestarts
//	is set.
//
// Determinism:
//
//	One *rand.Rand drives every choice. The same seed, grid and selector
//	give the same observations and the same result.
//
// Errors:
//
//   - ErrNilGrid, ErrNilSelector, ErrOptionViolation from NewSolver/Solve.
//   - ErrNoCandidates when the selector returns no rules for a cell.
//   - ErrRestartLimit after WithMaxRestarts global resets.
//   - ErrSolved from Step once the grid is complete.
//   - The context's error when WithContext is cancelled.
//
// Concurrency:
//
//	A Solver is not safe for concurrent use, and a grid must not be solved
//	by two solvers at once.
package wfc
