package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/martamakes/c-formatter-42-ext/internal/config"
)

// Run is the CLI entry point. All errors are reported on stderr and returned;
// nothing escapes as a panic.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, env config.EnvProvider) error {
	logLevel := &slog.LevelVar{}
	logLevel.Set(slog.LevelError)

	// Local lazy instance ensures t.Parallel() safety
	lazy := &LazyManager{}

	if env == nil {
		env = config.NewEnvProvider()
	}

	rootCmd := NewRootCmd(lazy, logLevel, stderr, env)
	rootCmd.SetArgs(args[1:]) // Skip the program name
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print error to stderr for script tests and CLI users (SilenceErrors is set)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
