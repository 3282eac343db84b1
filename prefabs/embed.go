// Package prefabs loads authored content (structure templates and
// palettes) from the embedded tree, preferring an on-disk copy under a
// prefabs directory so edits take effect without a rebuild.
package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DefaultDir is the on-disk override directory used by the CLI.
const DefaultDir = "prefabs"

//go:embed structures/*.yaml palette.yaml
var PrefabsFS embed.FS

// Load returns name from dir when it exists on disk and from the embedded
// tree otherwise. An empty dir disables the disk lookup.
func Load(dir, name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if dir != "" {
		if data, err := os.ReadFile(diskPrefabPath(dir, clean)); err == nil {
			return data, nil
		}
	}
	return PrefabsFS.ReadFile(clean)
}

// ModTime reports the modification time of the on-disk copy of name.
func ModTime(dir, name string) (time.Time, bool) {
	if dir == "" {
		return time.Time{}, false
	}
	info, err := os.Stat(diskPrefabPath(dir, cleanPrefabPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// List returns the file names under sub, merging the embedded tree with
// the on-disk copy. Names are relative to sub and sorted.
func List(dir, sub string) ([]string, error) {
	seen := map[string]bool{}
	entries, err := fs.ReadDir(PrefabsFS, sub)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	for _, e := range entries {
		if !e.IsDir() {
			seen[e.Name()] = true
		}
	}
	if dir != "" {
		disk, err := os.ReadDir(filepath.Join(dir, sub))
		if err == nil {
			for _, e := range disk {
				if !e.IsDir() {
					seen[e.Name()] = true
				}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(dir, clean string) string {
	return filepath.Join(dir, filepath.FromSlash(clean))
}
