// SPDX-License-Identifier: MIT

package tileset

import "errors"

var (
	// ErrManifest indicates an unreadable or invalid manifest.
	ErrManifest = errors.New("tileset: invalid manifest")

	// ErrUnknownZone indicates a zone name that is not floor, wall or ceiling.
	ErrUnknownZone = errors.New("tileset: unknown zone")

	// ErrEmptySet indicates a manifest without rules.
	ErrEmptySet = errors.New("tileset: no rules")
)
