// SPDX-License-Identifier: MIT

package rule

import (
	"fmt"
	"image/color"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allAdapters lists the eight symmetries of the square.
func allAdapters() []Adapter {
	var out []Adapter
	for r := 0; r < NumSides; r++ {
		out = append(out, Turn(r, false), Turn(r, true))
	}
	return out
}

func TestIdentity_RoundTrip(t *testing.T) {
	r := mustRule(t)
	id := Identity()
	assert.Equal(t, KindIdentity, id.Kind())
	assert.Equal(t, Adapter{}, id)
	for y := 0; y < r.Resolution(); y++ {
		for x := 0; x < r.Resolution(); x++ {
			got, err := id.Access(r, x, y)
			require.NoError(t, err)
			want, _ := r.At(x, y)
			assert.Equal(t, want, got, "(%d,%d)", x, y)
		}
	}
	assert.Equal(t, Identity(), Turn(0, false))
	assert.Equal(t, Identity(), Turn(4, false))
}

// TestTurn_SideComposition checks that reading side k through a turn by r
// quarter turns reads side (k+r) mod 4 of the original pattern. Whether the
// side comes out backwards depends on the turn and the side.
func TestTurn_SideComposition(t *testing.T) {
	r := mustRule(t)
	reversed := map[int][NumSides]bool{
		1: {true, false, true, false},
		2: {true, true, true, true},
		3: {false, true, false, true},
	}
	for turns := 1; turns < NumSides; turns++ {
		a := Turn(turns, false)
		require.Equal(t, KindRotation, a.Kind())
		for _, k := range Sides {
			src := Side((int(k) + turns) % NumSides)
			want := r.Side(src)
			if reversed[turns][k] {
				slices.Reverse(want)
			}
			assert.Equal(t, want, a.Side(r, k), "turns=%d side=%v", turns, k)

			gotSide, rev := a.SourceSide(k)
			assert.Equal(t, src, gotSide, "turns=%d side=%v", turns, k)
			assert.Equal(t, reversed[turns][k], rev, "turns=%d side=%v", turns, k)
		}
	}
}

func TestTurn_QuarterTurnCoordinates(t *testing.T) {
	// One quarter turn reads (x, y) from (y, R-1-x).
	r := mustRule(t)
	a := Turn(1, false)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got, err := a.Access(r, x, y)
			require.NoError(t, err)
			assert.Equal(t, color.RGBA{R: uint8(y), G: uint8(3 - x), B: 7, A: 255}, got)
		}
	}
	// Negative turns wrap.
	assert.Equal(t, Turn(3, false), Turn(-1, false))
}

func TestTurn_Transpose(t *testing.T) {
	r := mustRule(t)
	a := Turn(0, true)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got, err := a.Access(r, x, y)
			require.NoError(t, err)
			want, _ := r.At(y, x)
			assert.Equal(t, want, got)
		}
	}
	// Transposing swaps the roles of Top and Left without reversing them.
	side, rev := a.SourceSide(Top)
	assert.Equal(t, Left, side)
	assert.False(t, rev)
}

func TestAdapter_SideKeyMatchesSlowPath(t *testing.T) {
	r := mustRule(t)
	for _, a := range allAdapters() {
		for _, s := range Sides {
			src, rev := a.SourceSide(s)
			want := r.Side(src)
			if rev {
				slices.Reverse(want)
			}
			require.Equal(t, want, a.Side(r, s), "%v side %v", a, s)
			assert.Equal(t, r.SideKey(src, rev), a.SideKey(r, s))
		}
	}
}

func TestAdapter_Inverse(t *testing.T) {
	const n = 5
	for _, a := range allAdapters() {
		inv := a.Inverse()
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				sx, sy := a.Map(x, y, n)
				require.True(t, sx >= 0 && sx < n && sy >= 0 && sy < n, "%v maps (%d,%d) outside", a, x, y)
				bx, by := inv.Map(sx, sy, n)
				assert.Equal(t, [2]int{x, y}, [2]int{bx, by}, "%v", a)
			}
		}
	}
	assert.Equal(t, Turn(3, false), Turn(1, false).Inverse())
	assert.Equal(t, Turn(2, true), Turn(2, true).Inverse())
}

func TestNewRotation(t *testing.T) {
	a, err := NewRotation(Vec{1, 0}, Vec{0, 1}, Vec{-1, 0})
	require.NoError(t, err)
	assert.Equal(t, Turn(3, false), a)
	origin, x, y := a.Basis()
	assert.Equal(t, [3]Vec{{1, 0}, {0, 1}, {-1, 0}}, [3]Vec{origin, x, y})

	cases := []struct {
		name         string
		origin, x, y Vec
	}{
		{"diagonal axis", Vec{0, 0}, Vec{1, 1}, Vec{0, 1}},
		{"zero axis", Vec{0, 0}, Vec{0, 0}, Vec{0, 1}},
		{"parallel axes", Vec{0, 0}, Vec{1, 0}, Vec{-1, 0}},
		{"origin leaves square", Vec{0, 0}, Vec{-1, 0}, Vec{0, 1}},
		{"origin off corner", Vec{2, 0}, Vec{-1, 0}, Vec{0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRotation(tc.origin, tc.x, tc.y)
			assert.ErrorIs(t, err, ErrBadBasis)
		})
	}
}

func TestAdapter_AccessOutOfRange(t *testing.T) {
	r := mustRule(t)
	for _, a := range allAdapters() {
		for _, p := range [][2]int{{-1, 0}, {0, 4}, {4, 4}} {
			_, err := a.Access(r, p[0], p[1])
			assert.ErrorIs(t, err, ErrOutOfRange, fmt.Sprintf("%v at %v", a, p))
		}
	}
}

func TestAdapter_Matches(t *testing.T) {
	white := uniform(t, "white", color.RGBA{255, 255, 255, 255})
	black := uniform(t, "black", color.RGBA{0, 0, 0, 255})
	for _, a := range allAdapters() {
		for _, s := range Sides {
			assert.True(t, a.Matches(white, s, white))
			assert.False(t, a.Matches(white, s, black))
		}
	}
}
