package cmd

import (
	"encoding/json"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/montre/themecfg/constant"
	"github.com/montre/themecfg/theme"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd prints the JSON Schema of the theme document.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the theme document",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := &jsonschema.Reflector{
			ExpandedStruct: true,
			DoNotReference: true,
		}

		schema := reflector.Reflect(&theme.Document{})
		schema.Title = constant.ConfigBaseName
		schema.Description = "Theme configuration document: design token extensions and content globs"

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
