// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Validation - these keys govern how strictly theme documents are checked.
const (
	ValidateStrict         = "validate.strict"
	ValidateWarnEmptyGlobs = "validate.warn_empty_globs"
)

// Project - these keys locate the project and its theme document.
const (
	ProjectRoot = "project.root"
	ProjectFile = "project.file"
)

// Tokens - these keys select the base design tokens extensions are merged onto.
const (
	TokensBase = "tokens.base"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal output.
const (
	CliColored = "cli.colored"
)
