// SPDX-License-Identifier: MIT

package wfc

import "github.com/katalvlaran/uvwfc/rule"

// Observation describes one "observed" event.
type Observation struct {
	// Cell is the collapsed cell, or -1 with Complete.
	Cell int
	// Rule is the candidate the cell collapsed to; nil with Complete.
	Rule *rule.Rule
	// Complete is set on the final event, when every cell has one candidate.
	Complete bool
}

// Observer receives solver progress.
type Observer interface {
	// OnObserved fires after every observation collapse and once on completion.
	OnObserved(Observation)
	// OnDeadlocked fires after every global reset; restart counts from 1.
	OnDeadlocked(restart int)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Observed   func(Observation)
	Deadlocked func(restart int)
}

// OnObserved implements Observer.
func (f ObserverFuncs) OnObserved(o Observation) {
	if f.Observed != nil {
		f.Observed(o)
	}
}

// OnDeadlocked implements Observer.
func (f ObserverFuncs) OnDeadlocked(restart int) {
	if f.Deadlocked != nil {
		f.Deadlocked(restart)
	}
}

type nopObserver struct{}

func (nopObserver) OnObserved(Observation) {}
func (nopObserver) OnDeadlocked(int)       {}
