package constants

const (
	NotApplicable = "N/A"
)

// Output formats supported by the CLI commands.
const (
	FormatNames = "names"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
	FormatTable = "table"
)
