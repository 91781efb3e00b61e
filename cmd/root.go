// Package cmd implements the command-line interface for themecfg.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/montre/themecfg/color"
	"github.com/montre/themecfg/constant"
	"github.com/montre/themecfg/icon"
	"github.com/montre/themecfg/key"
	"github.com/montre/themecfg/log"
	"github.com/montre/themecfg/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("root", "r", "", "Project root the content globs are relative to")
	lo.Must0(viper.BindPFlag(key.ProjectRoot, rootCmd.PersistentFlags().Lookup("root")))

	rootCmd.PersistentFlags().StringP("file", "f", "", "Theme document to load instead of discovering one")
	lo.Must0(rootCmd.MarkPersistentFlagFilename("file", "json", "yaml", "yml", "toml"))
	lo.Must0(viper.BindPFlag(key.ProjectFile, rootCmd.PersistentFlags().Lookup("file")))

	rootCmd.PersistentFlags().Bool("strict", false, "Fail on invalid color literals instead of dropping them")
	lo.Must0(viper.BindPFlag(key.ValidateStrict, rootCmd.PersistentFlags().Lookup("strict")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))
}

// rootCmd defines the entry point for the themecfg application.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Validate and inspect theme configuration documents",
	Long: style.New().Bold(true).Foreground(color.HiCyan).Render(constant.App) + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - Design tokens and content globs for utility-first CSS, checked before the build runs"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
