package cmd

import (
	"os"

	"github.com/montre/themecfg/filesystem"
	"github.com/montre/themecfg/theme"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.Flags().BoolP("absolute", "a", false, "Print absolute paths")
	discoverCmd.SetOut(os.Stdout)
}

// discoverCmd lists the theme documents found by convention under the project root.
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "List the theme documents found in the project root and its sub-directories",
	Long: `List the theme documents found in the project root and its immediate sub-directories.

Each document is independent and is checked on its own with --file.`,
	Run: func(cmd *cobra.Command, args []string) {
		root, err := projectRoot()
		handleErr(err)

		found, err := theme.Discover(filesystem.API(), root)
		handleErr(err)

		_, err = scriptConfigs(root)
		handleErr(err)

		if len(found) == 0 {
			warn("no theme document found in " + root)
			return
		}

		absolute := lo.Must(cmd.Flags().GetBool("absolute"))
		for _, file := range found {
			if !absolute {
				file = relative(root, file)
			}
			cmd.Println(file)
		}
	},
}
