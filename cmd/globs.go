package cmd

import (
	"encoding/json"
	"os"

	"github.com/montre/themecfg/color"
	"github.com/montre/themecfg/icon"
	"github.com/montre/themecfg/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(globsCmd)
	globsCmd.Flags().BoolP("json", "j", false, "Print the matches of every pattern as JSON")
	globsCmd.Flags().BoolP("relative", "R", false, "Print paths relative to the project root")
	globsCmd.Flags().BoolP("group", "g", false, "Group the paths under the pattern that matched them")
	globsCmd.MarkFlagsMutuallyExclusive("json", "relative")
	globsCmd.MarkFlagsMutuallyExclusive("json", "group")
	globsCmd.SetOut(os.Stdout)
}

// globsCmd prints the files the content globs resolve to.
var globsCmd = &cobra.Command{
	Use:   "globs",
	Short: "Print the files matched by the content globs, in order",
	Run: func(cmd *cobra.Command, args []string) {
		p, err := loadProject()
		handleErr(err)

		resolution, err := p.resolve()
		handleErr(err)
		p.printWarnings()

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(resolution.Matches))
			return
		}

		display := func(path string) string { return path }
		if lo.Must(cmd.Flags().GetBool("relative")) {
			display = func(path string) string { return relative(p.Root, path) }
		}

		if !lo.Must(cmd.Flags().GetBool("group")) {
			for path := range resolution.Paths() {
				cmd.Println(display(path))
			}
			return
		}

		for i, match := range resolution.Matches {
			cmd.Println(style.New().Bold(true).Foreground(color.HiPurple).Render(match.Pattern))
			for _, path := range match.Paths {
				cmd.Printf("  %s %s\n", style.Faint(icon.Get(icon.File)), display(path))
			}
			if i < len(resolution.Matches)-1 {
				cmd.Println()
			}
		}
	},
}
