package formatter

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout bounds one external formatter invocation.
const DefaultTimeout = 10 * time.Second

// CLIFormatter runs c_formatter_42 as a subprocess: content is written to a
// temporary file, the tool rewrites it in place, and the result is read back.
type CLIFormatter struct {
	path    string // explicit executable path; empty means PATH lookup
	timeout time.Duration

	lookPath func(string) (string, error)
}

// NewCLIFormatter creates a CLIFormatter. path may be empty; timeout <= 0
// selects DefaultTimeout.
func NewCLIFormatter(path string, timeout time.Duration) *CLIFormatter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &CLIFormatter{path: path, timeout: timeout, lookPath: exec.LookPath}
}

func (f *CLIFormatter) locate() (string, error) {
	if f.path != "" {
		info, err := os.Stat(f.path)
		if err != nil || info.IsDir() {
			return "", &ToolUnavailableError{Name: f.path}
		}
		return f.path, nil
	}
	bin, err := f.lookPath(ToolName)
	if err != nil {
		return "", &ToolUnavailableError{Name: ToolName}
	}
	return bin, nil
}

// Format invokes the tool under the configured timeout. The temporary file is
// always removed.
func (f *CLIFormatter) Format(ctx context.Context, content []byte, filename string) ([]byte, error) {
	bin, err := f.locate()
	if err != nil {
		return nil, err
	}

	suffix := filepath.Ext(filename)
	if suffix == "" {
		suffix = ".c"
	}
	tmp, err := os.CreateTemp("", "c42fmt-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("writing temp file: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, tmpPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, &ToolFailedError{Name: bin, Output: strings.TrimSpace(string(out)), Wrapped: err}
	}

	formatted, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("reading formatted output: %w", err)
	}
	return formatted, nil
}
