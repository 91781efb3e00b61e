package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/montre/themecfg/color"
	"github.com/montre/themecfg/icon"
	"github.com/montre/themecfg/log"
	"github.com/montre/themecfg/style"
	"github.com/montre/themecfg/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// debounce is how long the watcher waits for a burst of writes to settle.
const debounce = 150 * time.Millisecond

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolP("watch", "w", false, "Check again whenever the theme document changes")
	checkCmd.SetOut(os.Stdout)
}

// checkCmd validates the theme document and resolves its content globs.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the theme document and resolve its content globs",
	Long: `Load the theme document, validate every color, font stack and animation,
and expand the content globs against the project root.

Invalid color literals are fatal with --strict and dropped with a warning otherwise.
Globs matching no files are reported as warnings.`,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("watch")) {
			handleErr(watch(cmd))
			return
		}

		handleErr(check(cmd))
	},
}

// check loads the project once and prints a summary line.
func check(cmd *cobra.Command) error {
	p, err := loadProject()
	if err != nil {
		return err
	}

	erase := func() {}
	if util.Interactive() {
		erase = util.PrintErasable(icon.Get(icon.Progress) + " resolving globs")
	}
	resolution, err := p.resolve()
	erase()
	if err != nil {
		return err
	}
	p.printWarnings()

	cmd.Printf(
		"%s %s: %s, %s, %s\n",
		style.Fg(color.Green)(icon.Get(icon.Success)),
		style.Bold(relative(p.Root, p.File)),
		util.Quantify(len(p.Cfg.ContentGlobs), "glob", "globs"),
		util.Quantify(len(resolution.All()), "file", "files"),
		util.Quantify(p.Cfg.Tokens().Len(), "token", "tokens"),
	)
	return nil
}

// watch checks the project, then again after every change to the document.
// Failures are printed and do not stop the watcher.
func watch(cmd *cobra.Command) error {
	root, err := projectRoot()
	if err != nil {
		return err
	}
	file, err := documentPath(root)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors replace the file on save.
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(file), err)
	}

	run := func() {
		util.ClearScreen()
		cmd.Printf("%s %s %s\n\n", style.Fg(color.Purple)(icon.Get(icon.Watch)), style.Title("watching"), relative(root, file))
		if err := check(cmd); err != nil {
			log.Error(err)
			cmd.PrintErrf("%s %s\n", style.ErrorTitle("failed"), err)
		}
	}
	run()

	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != file || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			log.Debugf("watch: %s", event)
			pending = time.After(debounce)
		case <-pending:
			pending = nil
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error(err)
			warn(err.Error())
		}
	}
}
