// SPDX-License-Identifier: MIT

package rule

import (
	"fmt"
	"image"
	"image/color"
)

// Rule is an immutable tile pattern. It is loaded once and shared by pointer
// across every cell that admits it as a candidate, so two rules are the same
// candidate only if they are the same pointer.
type Rule struct {
	name     string
	logical  []color.RGBA // row-major, side r
	detailed []color.RGBA // row-major, side d
	r, d     int

	// keys[s] is the comparable form of Side(s), rev[s] the same read backwards.
	keys [NumSides]string
	rev  [NumSides]string
}

// New builds a Rule from a logical and a detailed grid, both indexed [y][x].
// The grids are deep-copied. Returns ErrEmptyPattern or ErrNotSquare
// (wrapped with the offending grid's name) when either grid is malformed.
// Complexity: O(R² + D²).
func New(name string, logical, detailed [][]color.RGBA) (*Rule, error) {
	lr, err := squareSide(logical)
	if err != nil {
		return nil, fmt.Errorf("%w: logical grid of %q", err, name)
	}
	dr, err := squareSide(detailed)
	if err != nil {
		return nil, fmt.Errorf("%w: detailed grid of %q", err, name)
	}
	r := &Rule{
		name:     name,
		logical:  flatten(logical, lr),
		detailed: flatten(detailed, dr),
		r:        lr,
		d:        dr,
	}
	r.buildKeys()

	return r, nil
}

// FromImages builds a Rule from two images. Each image must be square; its
// pixels become the grid colors one to one (see package tileset for scaling).
func FromImages(name string, logical, detailed image.Image) (*Rule, error) {
	return New(name, imageGrid(logical), imageGrid(detailed))
}

// Name returns the rule's name.
func (r *Rule) Name() string { return r.name }

// Resolution returns R, the side of the logical grid.
func (r *Rule) Resolution() int { return r.r }

// DetailResolution returns D, the side of the detailed grid.
func (r *Rule) DetailResolution() int { return r.d }

// At returns the logical color at (x, y).
// Returns ErrOutOfRange unless 0 ≤ x,y < R.
func (r *Rule) At(x, y int) (color.RGBA, error) {
	if x < 0 || y < 0 || x >= r.r || y >= r.r {
		return color.RGBA{}, fmt.Errorf("%w: logical (%d,%d) in %dx%d", ErrOutOfRange, x, y, r.r, r.r)
	}
	return r.logical[y*r.r+x], nil
}

// DetailAt returns the detailed color at (x, y).
// Returns ErrOutOfRange unless 0 ≤ x,y < D.
func (r *Rule) DetailAt(x, y int) (color.RGBA, error) {
	if x < 0 || y < 0 || x >= r.d || y >= r.d {
		return color.RGBA{}, fmt.Errorf("%w: detailed (%d,%d) in %dx%d", ErrOutOfRange, x, y, r.d, r.d)
	}
	return r.detailed[y*r.d+x], nil
}

// Side returns the R logical colors along side s in its reading order.
// Returns nil for an invalid side.
func (r *Rule) Side(s Side) []color.RGBA {
	if !s.Valid() {
		return nil
	}
	out := make([]color.RGBA, r.r)
	for i := range out {
		x, y := sidePoint(s, i, r.r)
		out[i] = r.logical[y*r.r+x]
	}
	return out
}

// SideKey returns a comparable key for side s, read backwards when reversed
// is set. Two sides match exactly when their keys are equal.
func (r *Rule) SideKey(s Side, reversed bool) string {
	if !s.Valid() {
		return ""
	}
	if reversed {
		return r.rev[s]
	}
	return r.keys[s]
}

// String implements fmt.Stringer.
func (r *Rule) String() string {
	return fmt.Sprintf("%s(%dx%d/%dx%d)", r.name, r.r, r.r, r.d, r.d)
}

// at is the unchecked logical lookup used once coordinates are known valid.
func (r *Rule) at(x, y int) color.RGBA { return r.logical[y*r.r+x] }

func (r *Rule) buildKeys() {
	for _, s := range Sides {
		colors := r.Side(s)
		fwd := make([]byte, 0, 4*len(colors))
		bwd := make([]byte, 0, 4*len(colors))
		for i := range colors {
			c := colors[i]
			fwd = append(fwd, c.R, c.G, c.B, c.A)
			b := colors[len(colors)-1-i]
			bwd = append(bwd, b.R, b.G, b.B, b.A)
		}
		r.keys[s] = string(fwd)
		r.rev[s] = string(bwd)
	}
}

// squareSide validates a [y][x] grid and returns its side.
func squareSide(g [][]color.RGBA) (int, error) {
	if len(g) == 0 || len(g[0]) == 0 {
		return 0, ErrEmptyPattern
	}
	n := len(g)
	for _, row := range g {
		if len(row) != n {
			return 0, ErrNotSquare
		}
	}
	return n, nil
}

func flatten(g [][]color.RGBA, n int) []color.RGBA {
	out := make([]color.RGBA, 0, n*n)
	for _, row := range g {
		out = append(out, row...)
	}
	return out
}

// imageGrid converts an image to a [y][x] grid of RGBA colors.
func imageGrid(img image.Image) [][]color.RGBA {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	g := make([][]color.RGBA, b.Dy())
	for y := range g {
		g[y] = make([]color.RGBA, b.Dx())
		for x := range g[y] {
			g[y][x] = color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
		}
	}
	return g
}
