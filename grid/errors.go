// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrCellIndex indicates a cell index outside the grid.
	ErrCellIndex = errors.New("grid: cell index out of range")

	// ErrDirection indicates a direction other than Top, Left, Bottom, Right.
	ErrDirection = errors.New("grid: invalid direction")

	// ErrAsymmetricLink indicates a link whose target does not link back.
	ErrAsymmetricLink = errors.New("grid: asymmetric link")
)
