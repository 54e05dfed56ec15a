// SPDX-License-Identifier: MIT

package uvgrid

import "errors"

var (
	// ErrNilSource is returned when Build receives a nil FaceSource.
	ErrNilSource = errors.New("uvgrid: face source is nil")

	// ErrOpenBoundary indicates an island whose outer edges do not form a
	// single closed loop (holes, pinches, gaps or a closed island).
	ErrOpenBoundary = errors.New("uvgrid: island boundary is not one closed loop")

	// ErrDegenerateBoundary indicates a boundary without direction changes
	// or with zero-length edges.
	ErrDegenerateBoundary = errors.New("uvgrid: degenerate island boundary")

	// ErrNotRectangular indicates an island whose boundary is not an
	// axis-aligned UV rectangle.
	ErrNotRectangular = errors.New("uvgrid: island is not a UV rectangle")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("uvgrid: invalid option supplied")
)
