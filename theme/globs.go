package theme

import (
	"fmt"
	"iter"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/montre/themecfg/log"
	"github.com/spf13/afero"
)

// Match is the expansion of a single content pattern. Paths are absolute,
// sorted, and exclude files already matched by an earlier pattern.
type Match struct {
	Pattern string   `json:"pattern"`
	Paths   []string `json:"paths"`
}

// Resolution is the result of expanding every content pattern of a document.
type Resolution struct {
	Root     string
	Matches  []Match
	Warnings Diagnostics
}

// Paths iterates over all resolved files, pattern by pattern. The sequence can
// be ranged over any number of times.
func (r *Resolution) Paths() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, match := range r.Matches {
			for _, p := range match.Paths {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// All returns Paths as a slice.
func (r *Resolution) All() []string {
	return slices.Collect(r.Paths())
}

// ResolveGlobs expands the content patterns against rootDir on fs. Nothing is
// cached: every call walks the filesystem again.
func (c *Config) ResolveGlobs(fs afero.Fs, rootDir string) (*Resolution, error) {
	root, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", rootDir, err)
	}

	info, err := fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("resolve root: %s is not a directory", root)
	}

	var (
		fsys       = afero.NewIOFS(afero.NewBasePathFs(fs, root))
		resolution = &Resolution{Root: root}
		seen       = make(map[string]struct{})
	)

	for _, pattern := range c.ContentGlobs {
		found, err := doublestar.Glob(fsys, normalizePattern(pattern), doublestar.WithFilesOnly())
		if err != nil {
			log.Warnf("content pattern %q: %v", pattern, err)
			resolution.Warnings = append(resolution.Warnings, &GlobResolutionEmptyError{Pattern: pattern, Err: err})
			resolution.Matches = append(resolution.Matches, Match{Pattern: pattern, Paths: []string{}})
			continue
		}

		if len(found) == 0 {
			log.Warnf("content pattern %q matched no files", pattern)
			resolution.Warnings = append(resolution.Warnings, &GlobResolutionEmptyError{Pattern: pattern})
		}

		slices.Sort(found)
		match := Match{Pattern: pattern, Paths: make([]string, 0, len(found))}
		for _, rel := range found {
			abs := filepath.Join(root, filepath.FromSlash(rel))
			if _, dup := seen[abs]; dup {
				continue
			}
			seen[abs] = struct{}{}
			match.Paths = append(match.Paths, abs)
		}
		resolution.Matches = append(resolution.Matches, match)
	}

	return resolution, nil
}

// normalizePattern turns "./templates/**/*.html" into the io/fs form "templates/**/*.html".
func normalizePattern(pattern string) string {
	p := pattern
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	if p == "" {
		return "."
	}
	return path.Clean(p)
}
