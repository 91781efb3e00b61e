package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/montre/themecfg/color"
	"github.com/montre/themecfg/constant"
	"github.com/montre/themecfg/filesystem"
	"github.com/montre/themecfg/icon"
	"github.com/montre/themecfg/style"
	"github.com/montre/themecfg/theme"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// defaultGlobs are offered when scaffolding a new document.
var defaultGlobs = []string{"./templates/**/*.html", "./static/js/**/*.js"}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("format", string(theme.FormatJSON), "Document format: json, yaml or toml")
	lo.Must0(initCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return theme.Formats(), cobra.ShellCompDirectiveNoFileComp
	}))
	initCmd.Flags().StringSliceP("content", "c", nil, "Content globs, relative to the project root")
	initCmd.Flags().BoolP("yes", "y", false, "Accept the defaults without prompting")
	initCmd.Flags().Bool("force", false, "Overwrite an existing document")
	initCmd.SetOut(os.Stdout)
}

// initCmd scaffolds a new theme document in the project root.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new theme document in the project root",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			yes   = lo.Must(cmd.Flags().GetBool("yes"))
			force = lo.Must(cmd.Flags().GetBool("force"))
			globs = lo.Must(cmd.Flags().GetStringSlice("content"))
		)

		root, err := projectRoot()
		handleErr(err)

		format, err := theme.ParseFormat(lo.Must(cmd.Flags().GetString("format")))
		handleErr(err)

		if len(globs) == 0 {
			globs = defaultGlobs
			if !yes {
				var answer string
				handleErr(survey.AskOne(&survey.Input{
					Message: "Content globs (comma separated)",
					Default: strings.Join(defaultGlobs, ", "),
				}, &answer, survey.WithValidator(survey.Required)))
				globs = splitGlobs(answer)
			}
		}

		if !yes && !cmd.Flags().Changed("format") {
			var answer string
			handleErr(survey.AskOne(&survey.Select{
				Message: "Document format",
				Options: theme.Formats(),
				Default: string(format),
			}, &answer))
			format = theme.Format(answer)
		}

		file := filepath.Join(root, constant.ConfigBaseName+format.Ext())
		exists, err := filesystem.API().Exists(file)
		handleErr(err)

		if exists && !force {
			if yes {
				handleErr(fmt.Errorf("%s already exists, use --force to overwrite it", relative(root, file)))
			}

			var overwrite bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("%s already exists. Overwrite?", relative(root, file)),
				Default: false,
			}, &overwrite))
			if !overwrite {
				return
			}
		}

		data, err := scaffold(globs, format)
		handleErr(err)
		handleErr(filesystem.API().WriteFile(file, data, 0o644))

		cmd.Printf(
			"%s created %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Yellow)(relative(root, file)),
		)
	},
}

// scaffold renders an empty document with the given globs, validated the same
// way a loaded document is.
func scaffold(globs []string, format theme.Format) ([]byte, error) {
	cfg := theme.New()
	cfg.ContentGlobs = globs

	data, err := theme.Encode(cfg, format)
	if err != nil {
		return nil, err
	}
	if _, _, err := theme.Parse(data, format, theme.Options{Strict: true}); err != nil {
		return nil, err
	}
	return data, nil
}

func splitGlobs(s string) []string {
	return lo.Compact(lo.Map(strings.Split(s, ","), func(glob string, _ int) string {
		return strings.TrimSpace(glob)
	}))
}
