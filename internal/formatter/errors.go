package formatter

import "fmt"

// ToolUnavailableError means the external formatter could not be located or
// is not executable. The pipeline treats it as "formatting unavailable" and
// carries on.
type ToolUnavailableError struct {
	Name string
}

func (e *ToolUnavailableError) Error() string {
	return fmt.Sprintf("%s not found: install it or set %s", e.Name, PathEnvVar)
}

// ToolFailedError means the external formatter ran but exited with failure or
// timed out. Handled identically to ToolUnavailableError.
type ToolFailedError struct {
	Name    string
	Output  string
	Wrapped error
}

func (e *ToolFailedError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("%s failed: %v (output: %s)", e.Name, e.Wrapped, e.Output)
	}
	return fmt.Sprintf("%s failed: %v", e.Name, e.Wrapped)
}

func (e *ToolFailedError) Unwrap() error { return e.Wrapped }
