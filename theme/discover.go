package theme

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/montre/themecfg/constant"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// skippedDirs are never searched for documents.
var skippedDirs = []string{"node_modules", "vendor"}

// Candidates lists the conventional document file names, in lookup order.
func Candidates() []string {
	return names(constant.ConfigExtensions)
}

// ScriptCandidates lists the conventional script config file names.
func ScriptCandidates() []string {
	return names(constant.ScriptExtensions)
}

func names(extensions []string) []string {
	return lo.Map(extensions, func(ext string, _ int) string {
		return constant.ConfigBaseName + ext
	})
}

// Discover finds the conventional documents in root and in its immediate
// sub-directories, root first, sub-directories in name order. Each result is
// an independent document; they are never merged.
func Discover(fs afero.Fs, root string) ([]string, error) {
	return discover(fs, root, Candidates())
}

// DiscoverScripts finds script configs in the same places as Discover. They
// cannot be loaded, callers only report them.
func DiscoverScripts(fs afero.Fs, root string) ([]string, error) {
	return discover(fs, root, ScriptCandidates())
}

func discover(fs afero.Fs, root string, candidates []string) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var found []string
	lookup := func(dir string) error {
		for _, name := range candidates {
			candidate := filepath.Join(dir, name)
			ok, err := afero.Exists(fs, candidate)
			if err != nil {
				return fmt.Errorf("discover: %w", err)
			}
			if ok {
				found = append(found, candidate)
			}
		}
		return nil
	}

	if err := lookup(root); err != nil {
		return nil, err
	}

	entries, err := afero.ReadDir(fs, root)
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") || lo.Contains(skippedDirs, name) {
			continue
		}
		if err := lookup(filepath.Join(root, name)); err != nil {
			return nil, err
		}
	}

	return found, nil
}
