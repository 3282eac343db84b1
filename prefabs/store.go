package prefabs

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/milk9111/levelgen/structure"
)

const structuresDir = "structures"

var templateExts = []string{".yaml", ".yml", ".json"}

// Store serves structure templates from structures/<id>.{yaml,yml,json}.
// Decoded templates are cached until the on-disk copy changes or the
// entry is invalidated.
type Store struct {
	dir   string
	mu    sync.Mutex
	cache map[string]cachedTemplate
}

type cachedTemplate struct {
	tpl  *structure.Template
	name string
	mod  time.Time
}

var _ structure.Store = (*Store)(nil)

// NewStore returns a Store reading overrides from dir. An empty dir serves
// only the embedded templates.
func NewStore(dir string) *Store {
	return &Store{dir: dir, cache: map[string]cachedTemplate{}}
}

func (s *Store) Template(_ context.Context, id string) (*structure.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.cache[id]; ok {
		mod, _ := ModTime(s.dir, c.name)
		if mod.Equal(c.mod) {
			return c.tpl, nil
		}
	}

	for _, ext := range templateExts {
		name := path.Join(structuresDir, id+ext)
		data, err := Load(s.dir, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "prefabs: load %s", name)
		}

		tpl, err := structure.Decode(id, data)
		if err != nil {
			return nil, err
		}
		mod, _ := ModTime(s.dir, name)
		s.cache[id] = cachedTemplate{tpl: tpl, name: name, mod: mod}
		return tpl, nil
	}

	return nil, errors.Wrapf(structure.ErrTemplateNotFound, "prefabs: %s", id)
}

// IDs lists every template id available to the store.
func (s *Store) IDs() ([]string, error) {
	names, err := List(s.dir, structuresDir)
	if err != nil {
		return nil, err
	}
	var ids []string
	seen := map[string]bool{}
	for _, name := range names {
		id, ok := TemplateID(name)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

// Invalidate drops the cached template for the file at p, if p names one.
func (s *Store) Invalidate(p string) {
	id, ok := TemplateID(p)
	if !ok {
		return
	}
	s.mu.Lock()
	delete(s.cache, id)
	s.mu.Unlock()
}

// Reset drops every cached template.
func (s *Store) Reset() {
	s.mu.Lock()
	s.cache = map[string]cachedTemplate{}
	s.mu.Unlock()
}

// TemplateID derives a template id from a template file name.
func TemplateID(p string) (string, bool) {
	base := filepath.Base(p)
	ext := strings.ToLower(filepath.Ext(base))
	for _, e := range templateExts {
		if ext == e {
			return strings.TrimSuffix(base, filepath.Ext(base)), true
		}
	}
	return "", false
}
