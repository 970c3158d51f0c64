// Package presets provides named duotone color pairs: a built-in catalog and catalogs
// loaded from YAML files.
package presets

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/nvr-ai/go-duotone/duotone"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrPresetNotFound is returned by Lookup for unknown names.
var ErrPresetNotFound = errors.New("preset not found")

// Preset is a named (dark, light) gradient pair.
type Preset struct {
	// Name identifies the preset. Lookups are case-insensitive.
	Name string `json:"name" yaml:"name"`
	// Dark is the color for luminance 0.
	Dark duotone.Color `json:"dark" yaml:"dark"`
	// Light is the color for luminance 255.
	Light duotone.Color `json:"light" yaml:"light"`
}

// Gradient builds the gradient table for the preset.
func (p Preset) Gradient() *duotone.GradientTable {
	return duotone.BuildGradient(p.Dark, p.Light)
}

// Catalog is an ordered set of presets with unique names.
type Catalog struct {
	presets []Preset
	index   map[string]int
}

// file is the on-disk YAML layout.
type file struct {
	Presets []Preset `yaml:"presets"`
}

// NewCatalog builds a catalog, rejecting empty or duplicate names.
func NewCatalog(presets ...Preset) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int, len(presets))}
	for _, p := range presets {
		if strings.TrimSpace(p.Name) == "" {
			return nil, errors.New("preset name is empty")
		}
		key := normalize(p.Name)
		if _, dup := c.index[key]; dup {
			return nil, errors.Errorf("duplicate preset %q", p.Name)
		}
		c.index[key] = len(c.presets)
		c.presets = append(c.presets, p)
	}
	return c, nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Len returns the number of presets.
func (c *Catalog) Len() int {
	return len(c.presets)
}

// Lookup returns the preset with the given name.
func (c *Catalog) Lookup(name string) (Preset, error) {
	i, ok := c.index[normalize(name)]
	if !ok {
		return Preset{}, errors.Wrapf(ErrPresetNotFound, "%q", name)
	}
	return c.presets[i], nil
}

// All returns the presets in catalog order.
func (c *Catalog) All() []Preset {
	out := make([]Preset, len(c.presets))
	copy(out, c.presets)
	return out
}

// Names returns the preset names sorted alphabetically.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.presets))
	for _, p := range c.presets {
		names = append(names, p.Name)
	}
	sort.Slice(names, func(i, j int) bool { return normalize(names[i]) < normalize(names[j]) })
	return names
}

// Merge returns a new catalog with the presets of c followed by those of other. A
// preset in other replaces the one in c with the same name, keeping c's position. A nil
// other yields a copy of c.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	var extra []Preset
	if other != nil {
		extra = other.presets
	}

	merged := &Catalog{
		presets: c.All(),
		index:   make(map[string]int, len(c.presets)+len(extra)),
	}
	for k, v := range c.index {
		merged.index[k] = v
	}
	for _, p := range extra {
		key := normalize(p.Name)
		if i, ok := merged.index[key]; ok {
			merged.presets[i] = p
			continue
		}
		merged.index[key] = len(merged.presets)
		merged.presets = append(merged.presets, p)
	}
	return merged
}

// Load decodes a YAML catalog:
//
//	presets:
//	  - name: sunset
//	    dark: "#4e0570"
//	    light: "#e2b203"
//
// Colors accept any form duotone.ParseColor understands. Hex values must be quoted
// since an unquoted # starts a YAML comment.
func Load(r io.Reader) (*Catalog, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to decode presets")
	}
	return NewCatalog(f.Presets...)
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open presets file")
	}
	defer fh.Close()

	c, err := Load(fh)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return c, nil
}

// Write encodes the catalog as YAML in the format Load reads.
func (c *Catalog) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file{Presets: c.presets}); err != nil {
		return errors.Wrap(err, "failed to encode presets")
	}
	return enc.Close()
}
