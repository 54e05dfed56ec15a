// SPDX-License-Identifier: MIT

package tileset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/draw"

	"github.com/katalvlaran/uvwfc/rule"
)

// Manifest is the TOML form of a tile set.
type Manifest struct {
	// Logical is the logical resolution R every rule is scaled to.
	Logical int `toml:"logical"`
	// Detailed is the detailed resolution D.
	Detailed int `toml:"detailed"`
	// Threshold overrides DefaultThreshold when positive.
	Threshold float32 `toml:"threshold"`
	Rules     []Entry `toml:"rule"`
}

// Entry is one [[rule]] table.
type Entry struct {
	Name     string   `toml:"name"`
	Logical  string   `toml:"logical"`
	Detailed string   `toml:"detailed"`
	Zones    []string `toml:"zones"`
}

// Load reads the manifest at path; image paths resolve against its directory.
func Load(file string) (*Set, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	return Parse(data, filepath.Dir(file))
}

// Parse decodes manifest data; image paths resolve against dir.
func Parse(data []byte, dir string) (*Set, error) {
	return ParseFS(data, os.DirFS(dir))
}

// LoadFS reads the manifest name from fsys; image paths resolve against
// the manifest's directory within fsys.
func LoadFS(fsys fs.FS, name string) (*Set, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	sub, err := fs.Sub(fsys, path.Dir(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	return ParseFS(data, sub)
}

// ParseFS decodes manifest data; image paths resolve within fsys.
// Unknown manifest keys are rejected.
func ParseFS(data []byte, fsys fs.FS) (*Set, error) {
	var m Manifest
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", ErrManifest, strict.String())
		}
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	set := NewSet()
	if m.Threshold > 0 {
		set.Threshold = m.Threshold
	}
	for _, e := range m.Rules {
		zones := make([]Zone, 0, len(e.Zones))
		for _, name := range e.Zones {
			z, err := ParseZone(name)
			if err != nil {
				return nil, fmt.Errorf("%w (rule %q)", err, e.Name)
			}
			zones = append(zones, z)
		}
		logical, err := openScaled(fsys, e.Logical, m.Logical)
		if err != nil {
			return nil, fmt.Errorf("rule %q logical: %w", e.Name, err)
		}
		detailed, err := openScaled(fsys, e.Detailed, m.Detailed)
		if err != nil {
			return nil, fmt.Errorf("rule %q detailed: %w", e.Name, err)
		}
		r, err := rule.FromImages(e.Name, logical, detailed)
		if err != nil {
			return nil, err
		}
		set.Add(r, zones...)
	}
	return set, nil
}

func (m *Manifest) validate() error {
	if m.Logical <= 0 || m.Detailed <= 0 {
		return fmt.Errorf("%w: resolutions must be positive (logical %d, detailed %d)", ErrManifest, m.Logical, m.Detailed)
	}
	if len(m.Rules) == 0 {
		return ErrEmptySet
	}
	seen := make(map[string]bool, len(m.Rules))
	for i, e := range m.Rules {
		if e.Name == "" || e.Logical == "" || e.Detailed == "" {
			return fmt.Errorf("%w: rule %d needs name, logical and detailed", ErrManifest, i)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: duplicate rule %q", ErrManifest, e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

// openScaled opens a square image and scales it to n×n.
func openScaled(fsys fs.FS, name string, n int) (image.Image, error) {
	img, _, err := imagex.OpenFS(fsys, name)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return nil, fmt.Errorf("%w: %s is %dx%d", rule.ErrNotSquare, name, b.Dx(), b.Dy())
	}
	return scale(img, n), nil
}

// scale resamples src to n×n with nearest-neighbor sampling.
func scale(src image.Image, n int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, n, n))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
