// Package formatter invokes the external c_formatter_42 tool.
package formatter

import "context"

// ToolName is the executable the pipeline delegates base formatting to.
const ToolName = "c_formatter_42"

// PathEnvVar points at a c_formatter_42 executable, overriding PATH lookup.
const PathEnvVar = "C_FORMATTER_42_PATH"

// Formatter reformats file content. filename is advisory; implementations may
// use it to pick a file suffix for the tool invocation.
type Formatter interface {
	Format(ctx context.Context, content []byte, filename string) ([]byte, error)
}
