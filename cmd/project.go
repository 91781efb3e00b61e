package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/montre/themecfg/color"
	"github.com/montre/themecfg/filesystem"
	"github.com/montre/themecfg/icon"
	"github.com/montre/themecfg/key"
	"github.com/montre/themecfg/log"
	"github.com/montre/themecfg/style"
	"github.com/montre/themecfg/theme"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// project is a loaded theme document together with the root its globs resolve against.
type project struct {
	Root  string
	File  string
	Cfg   *theme.Config
	Diags theme.Diagnostics
}

// projectRoot returns the absolute project root from the settings.
func projectRoot() (string, error) {
	root := viper.GetString(key.ProjectRoot)
	if root == "" {
		root = "."
	}
	return filepath.Abs(root)
}

// documentPath returns the document named by the settings, or the first one discovered under root.
func documentPath(root string) (string, error) {
	if file := viper.GetString(key.ProjectFile); file != "" {
		if !filepath.IsAbs(file) {
			file = filepath.Join(root, file)
		}
		return file, nil
	}

	found, err := theme.Discover(filesystem.API(), root)
	if err != nil {
		return "", err
	}
	scripts, err := scriptConfigs(root)
	if err != nil {
		return "", err
	}

	switch len(found) {
	case 0:
		if len(scripts) > 0 {
			return "", fmt.Errorf("no theme document found in %s, only the script config %s, which is not read", root, strings.Join(scripts, ", "))
		}
		return "", fmt.Errorf("no theme document found in %s, looked for %s", root, strings.Join(theme.Candidates(), ", "))
	case 1:
	default:
		others := lo.Map(found[1:], func(file string, _ int) string { return relative(root, file) })
		log.Infof("several theme documents found, using %s", found[0])
		warn(fmt.Sprintf("using %s, also found %s (select one with --file)", relative(root, found[0]), strings.Join(others, ", ")))
	}
	return found[0], nil
}

// scriptConfigs warns about every script config under root and returns their display paths.
func scriptConfigs(root string) ([]string, error) {
	scripts, err := theme.DiscoverScripts(filesystem.API(), root)
	if err != nil {
		return nil, err
	}

	return lo.Map(scripts, func(file string, _ int) string {
		file = relative(root, file)
		log.Infof("skipping script config %s", file)
		warn(scriptWarning(file))
		return file
	}), nil
}

func scriptWarning(file string) string {
	equivalent := filepath.Join(filepath.Dir(file), theme.Candidates()[0])
	return fmt.Sprintf("%s is a script config and is not read, author a JSON, YAML or TOML equivalent such as %s", file, equivalent)
}

// loadProject resolves and loads the theme document selected by the settings.
func loadProject() (*project, error) {
	root, err := projectRoot()
	if err != nil {
		return nil, err
	}

	file, err := documentPath(root)
	if err != nil {
		return nil, err
	}

	cfg, diags, err := theme.Load(filesystem.API(), file, theme.Options{
		File:   relative(root, file),
		Strict: viper.GetBool(key.ValidateStrict),
	})
	if err != nil {
		return nil, err
	}

	return &project{Root: root, File: file, Cfg: cfg, Diags: diags}, nil
}

// resolve expands the content globs and appends their warnings to the project diagnostics.
func (p *project) resolve() (*theme.Resolution, error) {
	resolution, err := p.Cfg.ResolveGlobs(filesystem.API(), p.Root)
	if err != nil {
		return nil, err
	}
	p.Diags = append(p.Diags, resolution.Warnings...)
	return resolution, nil
}

// warnings are the diagnostics worth printing under the current settings.
func (p *project) warnings() theme.Diagnostics {
	if viper.GetBool(key.ValidateWarnEmptyGlobs) {
		return p.Diags
	}
	return p.Diags.Without(theme.ErrGlobResolutionEmpty)
}

func (p *project) printWarnings() {
	for _, err := range p.warnings() {
		warn(err.Error())
	}
}

func warn(msg string) {
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)), msg)
}

// relative shortens path for display, keeping it absolute when it is outside root.
func relative(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
