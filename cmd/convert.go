package cmd

import (
	"fmt"
	"os"

	"github.com/montre/themecfg/color"
	"github.com/montre/themecfg/filesystem"
	"github.com/montre/themecfg/icon"
	"github.com/montre/themecfg/style"
	"github.com/montre/themecfg/theme"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("to", "t", "", "Target format: json, yaml or toml")
	lo.Must0(convertCmd.MarkFlagRequired("to"))
	lo.Must0(convertCmd.RegisterFlagCompletionFunc("to", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return theme.Formats(), cobra.ShellCompDirectiveNoFileComp
	}))

	convertCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	convertCmd.Flags().Bool("force", false, "Overwrite the output file if it exists")
	convertCmd.SetOut(os.Stdout)
}

// convertCmd re-serializes the theme document into another format.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Re-serialize the theme document as JSON, YAML or TOML",
	Long: `Re-serialize the theme document as JSON, YAML or TOML.

The output loads back into the same document. Entries dropped during validation
(invalid color literals without --strict) are not written.`,
	Run: func(cmd *cobra.Command, args []string) {
		format, err := theme.ParseFormat(lo.Must(cmd.Flags().GetString("to")))
		handleErr(err)

		p, err := loadProject()
		handleErr(err)
		p.printWarnings()

		data, err := theme.Encode(p.Cfg, format)
		handleErr(err)

		output := lo.Must(cmd.Flags().GetString("output"))
		if output == "" {
			_, err = cmd.OutOrStdout().Write(data)
			handleErr(err)
			return
		}

		exists, err := filesystem.API().Exists(output)
		handleErr(err)
		if exists && !lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(fmt.Errorf("%s already exists, use --force to overwrite it", output))
		}

		handleErr(filesystem.API().WriteFile(output, data, 0o644))
		cmd.Printf(
			"%s wrote %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Yellow)(output),
		)
	},
}
