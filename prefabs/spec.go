package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// LoadSpec loads filename (see Load) and decodes it as YAML into T.
func LoadSpec[T any](dir, filename string) (T, error) {
	var zero T
	data, err := Load(dir, filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PaletteSpec maps tile, entity and level object ids to display colours.
type PaletteSpec struct {
	Background YAMLColor            `yaml:"background"`
	Tiles      map[string]YAMLColor `yaml:"tiles"`
	Entities   map[string]YAMLColor `yaml:"entities"`
	Objects    map[string]YAMLColor `yaml:"objects"`
	Fallback   YAMLColor            `yaml:"fallback"`
}

func LoadPaletteSpec(dir string) (*PaletteSpec, error) {
	spec, err := LoadSpec[PaletteSpec](dir, "palette.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// MergeTiles overlays tile colours onto p. Entries in other win.
func (p *PaletteSpec) MergeTiles(other map[string]YAMLColor) {
	if p.Tiles == nil {
		p.Tiles = map[string]YAMLColor{}
	}
	for id, c := range other {
		p.Tiles[id] = c
	}
}

// Color returns the colour for id from m, or the fallback.
func (p *PaletteSpec) Color(m map[string]YAMLColor, id string) color.Color {
	if c, ok := m[id]; ok && c.Color != nil {
		return c.Color
	}
	if p.Fallback.Color != nil {
		return p.Fallback.Color
	}
	return colornames.Magenta
}

// YAMLColor is a colour written as #rrggbb, #rrggbbaa or an SVG colour
// name such as "saddlebrown".
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
