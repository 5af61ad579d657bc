// Package key defines the configuration identifiers shared by config, log and cmd.
package key

// Logging - these keys control the file-backed logrus sink.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// Command Line Interface - presentation of help and status output.
const (
	CliColored   = "cli.colored"
	IconsVariant = "icons.variant"
)

// Law Checking - bounds for generated stacks in "lifo check".
const (
	CheckMaxCount = "check.max_count"
	CheckMaxSize  = "check.max_size"
)

// Draining - output of "lifo drain".
const (
	DrainShowEmpty = "drain.show_empty"
	DrainSeparator = "drain.separator"
)
