// SPDX-License-Identifier: MIT

package tileset

import (
	"fmt"
	"strings"

	"cogentcore.org/core/math32"
)

// Zone classifies a surface by orientation.
type Zone int

const (
	Floor Zone = iota
	Wall
	Ceiling
)

// Zones lists every zone.
var Zones = [...]Zone{Floor, Wall, Ceiling}

// DefaultThreshold is the minimum |normal.Y| of floors and ceilings.
const DefaultThreshold float32 = 0.7

// String implements fmt.Stringer.
func (z Zone) String() string {
	switch z {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Ceiling:
		return "ceiling"
	}
	return fmt.Sprintf("Zone(%d)", int(z))
}

// ParseZone parses a zone name, ignoring case.
func ParseZone(name string) (Zone, error) {
	for _, z := range Zones {
		if strings.EqualFold(name, z.String()) {
			return z, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownZone, name)
}

// ZoneOf classifies a unit normal: Floor when n.Y ≥ threshold, Ceiling when
// n.Y ≤ -threshold, Wall otherwise. A zero normal is a wall.
func ZoneOf(n math32.Vector3, threshold float32) Zone {
	switch {
	case n.Y >= threshold:
		return Floor
	case n.Y <= -threshold:
		return Ceiling
	}
	return Wall
}
