// Package levels holds the level manifests, level-description scripts and
// hook scripts shipped with the generator.
package levels

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/levelgen/prefabs"
)

// DefaultDir is the on-disk override directory used by the CLI.
const DefaultDir = "levels"

//go:embed *.yaml *.lvl hooks/*.tengo
var LevelsFS embed.FS

// Manifest describes one level build.
type Manifest struct {
	Name   string `yaml:"name"`
	Script string `yaml:"script"`
	// SizeX, SizeY and BoundsDist are defaults; the script may override them
	// with VAR LEVEL_SIZE_X, LEVEL_SIZE_Y and LEVEL_BOUNDS_DIST.
	SizeX      int   `yaml:"size_x"`
	SizeY      int   `yaml:"size_y"`
	BoundsDist int   `yaml:"bounds_dist"`
	Seed       int64 `yaml:"seed"`

	Structures []StructureSpec              `yaml:"structures"`
	Hook       string                       `yaml:"hook"`
	Palette    map[string]prefabs.YAMLColor `yaml:"palette"`
}

// StructureSpec asks for Count placements of a structure template after the
// script has run.
type StructureSpec struct {
	ID            string `yaml:"id"`
	Count         int    `yaml:"count"`
	MinBoundsDist int    `yaml:"min_bounds_dist"`
}

func (m *Manifest) Validate() error {
	if m == nil {
		return errors.New("levels: manifest cannot be nil")
	}
	if strings.TrimSpace(m.Script) == "" {
		return errors.Errorf("levels: %s: script is required", m.Name)
	}
	if m.SizeX < 0 || m.SizeY < 0 || m.BoundsDist < 0 {
		return errors.Errorf("levels: %s: size and bounds_dist must not be negative", m.Name)
	}
	for i, s := range m.Structures {
		if s.ID == "" {
			return errors.Errorf("levels: %s: structures[%d]: id is required", m.Name, i)
		}
		if s.Count < 0 || s.MinBoundsDist < 0 {
			return errors.Errorf("levels: %s: structures[%d]: count and min_bounds_dist must not be negative", m.Name, i)
		}
	}
	return nil
}

// Read returns name from dir when present on disk and from the embedded
// tree otherwise. An empty dir disables the disk lookup.
func Read(dir, name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if dir != "" {
		if data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(clean))); err == nil {
			return data, nil
		}
	}
	data, err := LevelsFS.ReadFile(clean)
	if err != nil {
		return nil, errors.Wrapf(err, "levels: read %s", name)
	}
	return data, nil
}

// LoadManifest loads the manifest called name ("caves" or "caves.yaml").
// A manifest without a name takes it from the file name.
func LoadManifest(dir, name string) (*Manifest, error) {
	file := name
	if path.Ext(file) == "" {
		file += ".yaml"
	}
	data, err := Read(dir, file)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "levels: unmarshal %s", file)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(path.Base(file), path.Ext(file))
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadScript returns the level-description script the manifest names.
func (m *Manifest) LoadScript(dir string) ([]byte, error) {
	return Read(dir, m.Script)
}

// LoadHook returns the hook script, or nil when the manifest has none.
func (m *Manifest) LoadHook(dir string) ([]byte, error) {
	if m.Hook == "" {
		return nil, nil
	}
	name := m.Hook
	if !strings.Contains(filepath.ToSlash(name), "/") {
		name = path.Join("hooks", name)
	}
	return Read(dir, name)
}

// Names lists the manifests available in the embedded tree and dir.
func Names(dir string) []string {
	seen := map[string]bool{}
	if entries, err := LevelsFS.ReadDir("."); err == nil {
		for _, e := range entries {
			if strings.HasSuffix(e.Name(), ".yaml") {
				seen[strings.TrimSuffix(e.Name(), ".yaml")] = true
			}
		}
	}
	if dir != "" {
		if entries, err := os.ReadDir(dir); err == nil {
			for _, e := range entries {
				if !e.IsDir() && strings.HasSuffix(e.Name(), ".yaml") {
					seen[strings.TrimSuffix(e.Name(), ".yaml")] = true
				}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func cleanLevelPath(p string) string {
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		return after
	}
	return s
}
