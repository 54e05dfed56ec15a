// SPDX-License-Identifier: MIT

package rule

import "errors"

var (
	// ErrEmptyPattern indicates a logical or detailed grid without rows or columns.
	ErrEmptyPattern = errors.New("rule: pattern grid must have at least one row and one column")
	// ErrNotSquare indicates a grid whose width differs from its height, or a ragged grid.
	ErrNotSquare = errors.New("rule: pattern grid must be square")
	// ErrOutOfRange indicates coordinate access outside the pattern.
	ErrOutOfRange = errors.New("rule: coordinate out of range")
	// ErrBadBasis indicates rotation adapter parameters that do not map the square onto itself.
	ErrBadBasis = errors.New("rule: invalid rotation basis")
)
