// SPDX-License-Identifier: MIT

package tileset

import (
	"github.com/katalvlaran/uvwfc/grid"
	"github.com/katalvlaran/uvwfc/rule"
	"github.com/katalvlaran/uvwfc/wfc"
)

// Set is a rule set split by zone.
type Set struct {
	// Threshold is passed to ZoneOf by Selector.
	Threshold float32

	rules []*rule.Rule
	zones map[Zone][]*rule.Rule
}

// NewSet returns an empty set using DefaultThreshold.
func NewSet() *Set {
	return &Set{Threshold: DefaultThreshold, zones: make(map[Zone][]*rule.Rule)}
}

// Add appends r to the given zones, or to every zone when none are given.
func (s *Set) Add(r *rule.Rule, zones ...Zone) {
	s.rules = append(s.rules, r)
	if len(zones) == 0 {
		zones = Zones[:]
	}
	for _, z := range zones {
		s.zones[z] = append(s.zones[z], r)
	}
}

// Len returns the number of rules.
func (s *Set) Len() int { return len(s.rules) }

// Rules returns every rule in insertion order.
func (s *Set) Rules() []*rule.Rule { return s.rules }

// Rule returns the rule with the given name, or nil.
func (s *Set) Rule(name string) *rule.Rule {
	for _, r := range s.rules {
		if r.Name() == name {
			return r
		}
	}
	return nil
}

// Zone returns the rules of zone z, or every rule when z has none.
func (s *Set) Zone(z Zone) []*rule.Rule {
	if rs := s.zones[z]; len(rs) > 0 {
		return rs
	}
	return s.rules
}

// Selector returns a wfc.Selector picking rules by each cell's normal.
func (s *Set) Selector() wfc.Selector {
	return func(c *grid.Cell) []*rule.Rule {
		return s.Zone(ZoneOf(c.Normal, s.Threshold))
	}
}
