package constant

// ConfigBaseName is the conventional file name of a theme document, without extension.
const ConfigBaseName = "tailwind.config"

// ConfigExtensions are the recognized document extensions, in lookup order.
var ConfigExtensions = []string{".json", ".yaml", ".yml", ".toml"}

// ScriptExtensions are extensions of script configs, which are recognized but never read.
var ScriptExtensions = []string{".js", ".cjs", ".mjs", ".ts"}

// DefaultBaseTokens and NoBaseTokens are the reserved values of the tokens.base setting.
const (
	DefaultBaseTokens = "default"
	NoBaseTokens      = "none"
)
