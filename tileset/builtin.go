// SPDX-License-Identifier: MIT

package tileset

import (
	"fmt"
	"image"
	"image/color"

	"github.com/katalvlaran/uvwfc/rule"
)

// Palette of the built-in set.
var (
	Stone = color.RGBA{R: 96, G: 96, B: 96, A: 255}
	Sand  = color.RGBA{R: 222, G: 196, B: 140, A: 255}
	Moss  = color.RGBA{R: 70, G: 120, B: 60, A: 255}
)

// Builtin returns a 16-rule set at logical resolution 3: stone corners and
// center with each side's middle pixel sand or moss, in every combination.
// Its detailed patterns are the logical ones scaled to detailed×detailed.
// Every rule belongs to every zone.
func Builtin(detailed int) (*Set, error) {
	if detailed < 1 {
		detailed = 3
	}
	set := NewSet()
	mids := [rule.NumSides]image.Point{{1, 0}, {0, 1}, {1, 2}, {2, 1}}
	for m := 0; m < 1<<rule.NumSides; m++ {
		img := image.NewRGBA(image.Rect(0, 0, 3, 3))
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				img.SetRGBA(x, y, Stone)
			}
		}
		for s, p := range mids {
			c := Sand
			if m&(1<<s) != 0 {
				c = Moss
			}
			img.SetRGBA(p.X, p.Y, c)
		}
		r, err := rule.FromImages(fmt.Sprintf("builtin%02d", m), img, scale(img, detailed))
		if err != nil {
			return nil, err
		}
		set.Add(r)
	}
	return set, nil
}
