// SPDX-License-Identifier: MIT

// Package tileset loads rule sets from images and a TOML manifest and turns
// them into solver selectors.
//
// A manifest names the logical and detailed resolutions and lists rules:
//
//	logical = 4
//	detailed = 20
//	threshold = 0.7
//
//	[[rule]]
//	name = "floor_plain"
//	logical = "floor_plain.png"
//	detailed = "floor_plain_hd.png"
//	zones = ["floor"]
//
// Image paths are relative to the manifest. Images may be png, jpeg, gif,
// tiff, bmp or webp; each must be square and is scaled to its resolution
// with nearest-neighbor sampling so colors stay exact.
//
// Zones split rules by surface orientation: a cell whose normal points up
// (+Y) is a floor, down a ceiling, anything else a wall. A rule without
// zones belongs to all of them.
//
// Errors:
//
//   - ErrManifest for unreadable or invalid manifests.
//   - ErrUnknownZone for a zone name other than floor, wall, ceiling.
//   - ErrEmptySet when a manifest lists no rules.
//   - rule.ErrNotSquare for a non-square image.
package tileset
