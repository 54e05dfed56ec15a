// SPDX-License-Identifier: MIT

package wfc

import "errors"

var (
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("wfc: grid is nil")

	// ErrNilSelector is returned when a nil selector is passed.
	ErrNilSelector = errors.New("wfc: selector is nil")

	// ErrNoCandidates is returned when the selector yields no rules for a cell.
	ErrNoCandidates = errors.New("wfc: selector returned no candidates")

	// ErrRestartLimit is returned once the allowed global resets are used up.
	ErrRestartLimit = errors.New("wfc: restart limit reached")

	// ErrSolved is returned by Step after the grid is complete.
	ErrSolved = errors.New("wfc: grid already solved")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wfc: invalid option supplied")
)
