// SPDX-License-Identifier: MIT

package rule

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gradient returns an n×n grid whose colors are unique per position:
// (x, y) ↦ RGBA{x, y, seed, 255}.
func gradient(n int, seed uint8) [][]color.RGBA {
	g := make([][]color.RGBA, n)
	for y := range g {
		g[y] = make([]color.RGBA, n)
		for x := range g[y] {
			g[y][x] = color.RGBA{R: uint8(x), G: uint8(y), B: seed, A: 255}
		}
	}
	return g
}

// mustRule builds a rule with a 4×4 gradient logical grid.
func mustRule(t *testing.T) *Rule {
	t.Helper()
	r, err := New("gradient", gradient(4, 7), gradient(20, 7))
	require.NoError(t, err)
	return r
}

func TestNew_SquareInvariant(t *testing.T) {
	// Logical and detailed sides may differ.
	r, err := New("ok", gradient(4, 0), gradient(20, 0))
	require.NoError(t, err)
	assert.Equal(t, 4, r.Resolution())
	assert.Equal(t, 20, r.DetailResolution())

	// Wide logical grid.
	wide := [][]color.RGBA{make([]color.RGBA, 3), make([]color.RGBA, 3)}
	_, err = New("wide", wide, gradient(2, 0))
	require.ErrorIs(t, err, ErrNotSquare)

	// Ragged detailed grid.
	ragged := gradient(3, 0)
	ragged[1] = ragged[1][:2]
	_, err = New("ragged", gradient(3, 0), ragged)
	require.ErrorIs(t, err, ErrNotSquare)

	// Empty grids.
	_, err = New("empty", nil, gradient(2, 0))
	require.ErrorIs(t, err, ErrEmptyPattern)
	_, err = New("empty-row", [][]color.RGBA{{}}, gradient(2, 0))
	require.ErrorIs(t, err, ErrEmptyPattern)
}

func TestNew_CopiesInput(t *testing.T) {
	src := gradient(2, 0)
	r, err := New("copy", src, src)
	require.NoError(t, err)
	src[0][0] = color.RGBA{R: 99}

	c, err := r.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 0, A: 255}, c)
}

func TestRule_Sides(t *testing.T) {
	r := mustRule(t)
	px := func(x, y int) color.RGBA { return color.RGBA{R: uint8(x), G: uint8(y), B: 7, A: 255} }

	assert.Equal(t, []color.RGBA{px(0, 0), px(1, 0), px(2, 0), px(3, 0)}, r.Side(Top))
	assert.Equal(t, []color.RGBA{px(0, 0), px(0, 1), px(0, 2), px(0, 3)}, r.Side(Left))
	assert.Equal(t, []color.RGBA{px(0, 3), px(1, 3), px(2, 3), px(3, 3)}, r.Side(Bottom))
	assert.Equal(t, []color.RGBA{px(3, 0), px(3, 1), px(3, 2), px(3, 3)}, r.Side(Right))
	assert.Nil(t, r.Side(Side(4)))
}

func TestRule_SideKeys(t *testing.T) {
	r := mustRule(t)
	for _, s := range Sides {
		assert.NotEqual(t, r.SideKey(s, false), r.SideKey(s, true), "side %v", s)
		assert.Len(t, r.SideKey(s, false), 4*r.Resolution())
	}
	// Top and Left share the corner but differ elsewhere.
	assert.NotEqual(t, r.SideKey(Top, false), r.SideKey(Left, false))
	assert.Empty(t, r.SideKey(Side(-1), false))

	// A uniform rule has identical keys on every side, both ways.
	u := uniform(t, "white", color.RGBA{255, 255, 255, 255})
	for _, s := range Sides {
		assert.Equal(t, u.SideKey(Top, false), u.SideKey(s, true))
	}
}

func TestRule_AtOutOfRange(t *testing.T) {
	r := mustRule(t)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		_, err := r.At(p[0], p[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "At%v", p)
	}
	_, err := r.DetailAt(19, 19)
	assert.NoError(t, err)
	_, err = r.DetailAt(20, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFromImages(t *testing.T) {
	logical := image.NewRGBA(image.Rect(0, 0, 2, 2))
	logical.SetRGBA(1, 0, color.RGBA{R: 200, A: 255})
	detailed := image.NewRGBA(image.Rect(0, 0, 6, 6))

	r, err := FromImages("img", logical, detailed)
	require.NoError(t, err)
	c, err := r.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 200, A: 255}, c)
	assert.Equal(t, 6, r.DetailResolution())

	_, err = FromImages("wide", image.NewRGBA(image.Rect(0, 0, 3, 2)), detailed)
	require.ErrorIs(t, err, ErrNotSquare)
}

func TestSide_Opposite(t *testing.T) {
	assert.Equal(t, Bottom, Top.Opposite())
	assert.Equal(t, Right, Left.Opposite())
	assert.Equal(t, Top, Bottom.Opposite())
	assert.Equal(t, Left, Right.Opposite())
	assert.Equal(t, "right", Right.String())
	assert.False(t, Side(9).Valid())
}

// uniform builds a 4×4 rule of a single color.
func uniform(t *testing.T, name string, c color.RGBA) *Rule {
	t.Helper()
	g := make([][]color.RGBA, 4)
	for y := range g {
		g[y] = []color.RGBA{c, c, c, c}
	}
	r, err := New(name, g, g)
	require.NoError(t, err)
	return r
}
