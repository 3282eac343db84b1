// Package structure places pre-authored clusters of entities and level
// objects into a level without overlapping earlier structures.
package structure

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/levelgen/common"
)

var (
	ErrTemplateNotFound = errors.New("structure: template not found")
	ErrTemplateInvalid  = errors.New("structure: invalid template")
)

// Store looks templates up by structure id.
type Store interface {
	// Template returns ErrTemplateNotFound (possibly wrapped) for unknown ids.
	Template(ctx context.Context, id string) (*Template, error)
}

// Child is one member of a structure, positioned relative to the structure
// centre.
type Child struct {
	ID       string
	Position common.Point
	// SpawnChance gates the child when set; nil always spawns.
	SpawnChance *float64
}

// Template is an immutable structure definition.
type Template struct {
	ID           string
	Width        int
	Height       int
	Center       common.Point
	Entities     []Child
	LevelObjects []Child
}

type pointRecord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type boundsRecord struct {
	Center  pointRecord `yaml:"center"`
	BoundsX int         `yaml:"boundsX"`
	BoundsY int         `yaml:"boundsY"`
}

type childRecord struct {
	Position       pointRecord `yaml:"position"`
	GenerateChance *float64    `yaml:"generateChance,omitempty"`
}

// record is the stored shape of a template. Children are lists of
// single-key maps from child id to placement.
type record struct {
	StructureBounds boundsRecord             `yaml:"structureBounds"`
	Entities        []map[string]childRecord `yaml:"entities"`
	LevelObjects    []map[string]childRecord `yaml:"level_objects"`
}

// Decode parses a YAML or JSON template record.
func Decode(id string, data []byte) (*Template, error) {
	var rec record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrapf(ErrTemplateInvalid, "%s: %v", id, err)
	}

	t := &Template{
		ID:     id,
		Width:  rec.StructureBounds.BoundsX,
		Height: rec.StructureBounds.BoundsY,
		Center: common.Point{X: rec.StructureBounds.Center.X, Y: rec.StructureBounds.Center.Y},
	}
	if t.Width <= 0 || t.Height <= 0 {
		return nil, errors.Wrapf(ErrTemplateInvalid, "%s: bounds must be positive, got %dx%d", id, t.Width, t.Height)
	}

	var err error
	if t.Entities, err = decodeChildren(id, rec.Entities); err != nil {
		return nil, err
	}
	if t.LevelObjects, err = decodeChildren(id, rec.LevelObjects); err != nil {
		return nil, err
	}
	return t, nil
}

func decodeChildren(id string, recs []map[string]childRecord) ([]Child, error) {
	var out []Child
	for _, m := range recs {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			c := m[k]
			if c.GenerateChance != nil && (*c.GenerateChance < 0 || *c.GenerateChance > 1) {
				return nil, errors.Wrapf(ErrTemplateInvalid, "%s: %s: generateChance %v outside [0,1]", id, k, *c.GenerateChance)
			}
			out = append(out, Child{
				ID:          k,
				Position:    common.Point{X: c.Position.X, Y: c.Position.Y},
				SpawnChance: c.GenerateChance,
			})
		}
	}
	return out, nil
}
