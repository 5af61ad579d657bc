// Package constant defines immutable application-level identifiers.
package constant

const (
	// Lifo is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	Lifo = "lifo"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
