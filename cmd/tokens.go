package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/montre/themecfg/color"
	"github.com/montre/themecfg/filesystem"
	"github.com/montre/themecfg/key"
	"github.com/montre/themecfg/style"
	"github.com/montre/themecfg/theme"
	"github.com/montre/themecfg/tokens"
	"github.com/montre/themecfg/util"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// swatchWidth fits a #rrggbb label with its padding.
const swatchWidth = 11

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringP("base", "b", "", "Base tokens to merge onto: default, none, or a path to a tokens file")
	lo.Must0(viper.BindPFlag(key.TokensBase, tokensCmd.Flags().Lookup("base")))

	tokensCmd.Flags().StringP("filter", "F", "", "Only show tokens whose path fuzzily matches the query")
	tokensCmd.Flags().BoolP("json", "j", false, "Print the tokens as JSON")
	tokensCmd.Flags().BoolP("swatch", "s", false, "Render color tokens as swatches")
	tokensCmd.Flags().BoolP("extended", "e", false, "Only show the tokens defined by the document")
	tokensCmd.MarkFlagsMutuallyExclusive("json", "swatch")
	tokensCmd.SetOut(os.Stdout)
}

// tokensCmd prints the effective design tokens.
var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Print the effective design tokens: the base merged with the document extensions",
	Long: `Print the effective design tokens.

The document extensions are merged onto the base tokens. An extension replaces the
base entry of the same name as a whole, so redefining a palette drops the base shades.
Tokens defined by the document are highlighted.`,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := loadProject()
		handleErr(err)
		p.printWarnings()

		base := theme.NewTokenSet()
		if !lo.Must(cmd.Flags().GetBool("extended")) {
			base, err = tokens.Resolve(filesystem.API(), viper.GetString(key.TokensBase))
			handleErr(err)
		}

		rows := p.Cfg.MergeWithBase(base).Flatten()
		if query := lo.Must(cmd.Flags().GetString("filter")); query != "" {
			rows = lo.Filter(rows, func(token theme.Token, _ int) bool {
				return fuzzy.MatchFold(query, token.Path)
			})
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(rows))
			return
		}

		if len(rows) == 0 {
			warn("no tokens to show")
			return
		}

		extended := lo.SliceToMap(p.Cfg.Tokens().Flatten(), func(token theme.Token) (string, string) {
			return token.Path, token.Value
		})
		var (
			swatch = lo.Must(cmd.Flags().GetBool("swatch"))
			pad    = util.Max(lo.Map(rows, func(token theme.Token, _ int) int { return len(token.Path) })...)
			width  = util.Max(util.TerminalWidth(80)-pad-2, 16)
		)

		for _, token := range rows {
			label := fmt.Sprintf("%-*s", pad, token.Path)
			if value, ok := extended[token.Path]; ok && value == token.Value {
				label = style.Fg(color.Purple)(label)
			} else {
				label = style.Faint(label)
			}

			value := truncate.StringWithTail(token.Value, uint(width), "…")
			if swatch && token.Kind == theme.KindColor {
				value = style.Swatch(token.Value, token.Value, swatchWidth)
			}
			cmd.Println(label + "  " + value)
		}
	},
}
