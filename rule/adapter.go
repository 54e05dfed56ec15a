// SPDX-License-Identifier: MIT

package rule

import (
	"fmt"
	"image/color"
)

// Kind tags the variant held by an Adapter.
type Kind uint8

const (
	// KindIdentity reads a pattern unchanged. It is the zero value.
	KindIdentity Kind = iota
	// KindRotation reads a pattern through a rotation or reflection of the square.
	KindRotation
)

// Vec is an integer 2D vector: a unit-square corner (components 0 or 1) or
// an axis-aligned unit direction.
type Vec struct{ X, Y int }

// Adapter remaps pattern coordinates read across a link. The zero value is
// the identity adapter. Adapters are small values; copy them freely.
type Adapter struct {
	kind   Kind
	origin Vec // unit-square corner, scaled by R-1 on access
	xAxis  Vec
	yAxis  Vec
}

// canonical holds one basis per square corner. Entry r describes reading a
// pattern turned by r quarter turns: origin corner, then the x and y axes.
var canonical = [NumSides][3]Vec{
	{{0, 0}, {1, 0}, {0, 1}},
	{{0, 1}, {0, -1}, {1, 0}},
	{{1, 1}, {-1, 0}, {0, -1}},
	{{1, 0}, {0, 1}, {-1, 0}},
}

// Identity returns the identity adapter.
func Identity() Adapter { return Adapter{} }

// NewRotation returns a rotation adapter with the given origin corner and
// axes. The axes must be perpendicular axis-aligned unit vectors and the
// resulting map must send the unit square onto itself; otherwise ErrBadBasis.
func NewRotation(origin, xAxis, yAxis Vec) (Adapter, error) {
	if !unitAxis(xAxis) || !unitAxis(yAxis) {
		return Adapter{}, fmt.Errorf("%w: axes %v, %v must be axis-aligned unit vectors", ErrBadBasis, xAxis, yAxis)
	}
	if xAxis.X*yAxis.X+xAxis.Y*yAxis.Y != 0 {
		return Adapter{}, fmt.Errorf("%w: axes %v, %v are not perpendicular", ErrBadBasis, xAxis, yAxis)
	}
	a := Adapter{kind: KindRotation, origin: origin, xAxis: xAxis, yAxis: yAxis}
	for u := 0; u <= 1; u++ {
		for v := 0; v <= 1; v++ {
			p := a.mapUnit(Vec{u, v})
			if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
				return Adapter{}, fmt.Errorf("%w: origin %v leaves the square", ErrBadBasis, origin)
			}
		}
	}

	return a, nil
}

// Turn returns the adapter for a pattern turned by quarterTurns (any integer,
// taken mod 4), with the two axes swapped when transpose is set. Turn(0, false)
// is the identity adapter.
//
// Reading side k through Turn(r, false) yields side (k+r) mod 4 of the
// original pattern (reversed for some sides, see SourceSide).
func Turn(quarterTurns int, transpose bool) Adapter {
	r := ((quarterTurns % NumSides) + NumSides) % NumSides
	if r == 0 && !transpose {
		return Identity()
	}
	b := canonical[r]
	a := Adapter{kind: KindRotation, origin: b[0], xAxis: b[1], yAxis: b[2]}
	if transpose {
		a.xAxis, a.yAxis = a.yAxis, a.xAxis
	}
	return a
}

// Kind returns the adapter variant.
func (a Adapter) Kind() Kind { return a.kind }

// Basis returns the origin corner and axes. For the identity adapter it
// returns the standard basis.
func (a Adapter) Basis() (origin, xAxis, yAxis Vec) {
	if a.kind == KindIdentity {
		return Vec{0, 0}, Vec{1, 0}, Vec{0, 1}
	}
	return a.origin, a.xAxis, a.yAxis
}

// Inverse returns the adapter undoing a: a.Inverse().Map(a.Map(x, y, n), n) == (x, y).
func (a Adapter) Inverse() Adapter {
	if a.kind == KindIdentity {
		return a
	}
	// The linear part is orthogonal, so its inverse is its transpose.
	x := Vec{a.xAxis.X, a.yAxis.X}
	y := Vec{a.xAxis.Y, a.yAxis.Y}
	o := Vec{
		-(a.origin.X*x.X + a.origin.Y*y.X),
		-(a.origin.X*x.Y + a.origin.Y*y.Y),
	}
	return Adapter{kind: KindRotation, origin: o, xAxis: x, yAxis: y}
}

// Map returns the source coordinates read for (x, y) on a square of side n.
// It does not validate its inputs.
func (a Adapter) Map(x, y, n int) (int, int) {
	if a.kind == KindIdentity {
		return x, y
	}
	m := n - 1
	return a.origin.X*m + x*a.xAxis.X + y*a.yAxis.X,
		a.origin.Y*m + x*a.xAxis.Y + y*a.yAxis.Y
}

// Access returns the logical color of r read through the adapter at (x, y).
// Returns ErrOutOfRange unless 0 ≤ x,y < R.
func (a Adapter) Access(r *Rule, x, y int) (color.RGBA, error) {
	n := r.Resolution()
	if x < 0 || y < 0 || x >= n || y >= n {
		return color.RGBA{}, fmt.Errorf("%w: adapted (%d,%d) in %dx%d", ErrOutOfRange, x, y, n, n)
	}
	sx, sy := a.Map(x, y, n)
	return r.at(sx, sy), nil
}

// Side reads side s of r through the adapter, in s's reading order.
// Returns nil for an invalid side.
func (a Adapter) Side(r *Rule, s Side) []color.RGBA {
	if !s.Valid() {
		return nil
	}
	n := r.Resolution()
	out := make([]color.RGBA, n)
	for i := range out {
		x, y := sidePoint(s, i, n)
		sx, sy := a.Map(x, y, n)
		out[i] = r.at(sx, sy)
	}
	return out
}

// SourceSide reports which side of the source pattern is read when reading
// side s through the adapter, and whether it is read backwards.
func (a Adapter) SourceSide(s Side) (Side, bool) {
	if a.kind == KindIdentity {
		return s, false
	}
	start, end := sideEnds(s)
	ms := a.mapUnit(Vec{start[0], start[1]})
	me := a.mapUnit(Vec{end[0], end[1]})
	for _, t := range Sides {
		ts, te := sideEnds(t)
		if ms == (Vec{ts[0], ts[1]}) && me == (Vec{te[0], te[1]}) {
			return t, false
		}
		if ms == (Vec{te[0], te[1]}) && me == (Vec{ts[0], ts[1]}) {
			return t, true
		}
	}
	// Unreachable for adapters built by Turn or NewRotation.
	return s, false
}

// SideKey returns the comparable key of side s of r read through the adapter.
// SideKey(r, s) == key(Side(r, s)) without allocating.
func (a Adapter) SideKey(r *Rule, s Side) string {
	t, rev := a.SourceSide(s)
	return r.SideKey(t, rev)
}

// Matches reports whether own's side s fits against other, where other is
// the neighbor in direction s read through a: own.Side(s) must equal
// a.Side(other, s.Opposite()).
func (a Adapter) Matches(own *Rule, s Side, other *Rule) bool {
	return own.SideKey(s, false) == a.SideKey(other, s.Opposite())
}

// String implements fmt.Stringer.
func (a Adapter) String() string {
	if a.kind == KindIdentity {
		return "identity"
	}
	return fmt.Sprintf("rotation(origin=%v x=%v y=%v)", a.origin, a.xAxis, a.yAxis)
}

// mapUnit maps a point of the unit square (corners only).
func (a Adapter) mapUnit(p Vec) Vec {
	return Vec{
		a.origin.X + p.X*a.xAxis.X + p.Y*a.yAxis.X,
		a.origin.Y + p.X*a.xAxis.Y + p.Y*a.yAxis.Y,
	}
}

func unitAxis(v Vec) bool {
	return (v.X == 0 && (v.Y == 1 || v.Y == -1)) || (v.Y == 0 && (v.X == 1 || v.X == -1))
}
