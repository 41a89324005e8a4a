package driver

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"ccheck/internal/config"
	"ccheck/internal/sections"
)

// ErrNoFiles is returned when discovery finds nothing to check.
var ErrNoFiles = errors.New("no files found")

// Target is one file selected for checking.
type Target struct {
	Path string // as reached from the command line
	Rel  string // slash separated, relative to the project root
	Kind sections.Kind
	// Classified is false for files that are neither header nor source;
	// only the naming check looks at those.
	Classified bool
}

// Discover expands paths into targets. Directories are walked recursively;
// dot-directories, exclude_dirs and exclude patterns are pruned. Explicit
// files are taken as given unless an exclude pattern matches them. The result
// is deduplicated and sorted by Rel.
func Discover(ctx context.Context, cfg *config.Config, paths []string) ([]Target, error) {
	var targets []Target
	seen := make(map[string]struct{})
	add := func(path string) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if _, ok := seen[abs]; ok {
			return nil
		}
		rel, err := cfg.Rel(abs)
		if err != nil {
			return err
		}
		if cfg.SkipFile(rel) {
			return nil
		}
		seen[abs] = struct{}{}
		kind, ok := cfg.Classify(path)
		targets = append(targets, Target{Path: path, Rel: rel, Kind: kind, Classified: ok})
		return nil
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if err := add(p); err != nil {
				return nil, err
			}
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path == p {
					return nil
				}
				rel, err := cfg.Rel(path)
				if err != nil {
					return err
				}
				if cfg.SkipDir(d.Name(), rel) {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			return add(path)
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(targets, func(i, j int) bool { return targets[i].Rel < targets[j].Rel })
	return targets, nil
}
