package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/martamakes/c-formatter-42-ext/internal/config"
	"github.com/martamakes/c-formatter-42-ext/internal/formatter"
	"github.com/martamakes/c-formatter-42-ext/internal/repo"
	"github.com/martamakes/c-formatter-42-ext/internal/rules"
)

// Version is the current version of c42fmt, set at build time.
var Version = "dev"

var LongDescription = `
c42fmt formats C source files against the 42 norminette. Base formatting is
delegated to c_formatter_42 when it is installed; a sequence of rewrite passes
then fixes what the base formatter does not cover: the 42 header, leading
tab indentation, declaration/initializer separation, blank lines after
declarations and opening braces, and the trailing newline.

With no FILE arguments content is read from stdin and written to stdout.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyManager, ll *slog.LevelVar, stderr io.Writer, env config.EnvProvider) *cobra.Command {
	var verbose bool
	var confirm bool
	var noHeader bool
	var check bool
	var watch bool
	var noColour bool
	var author string
	var email string
	outputVal := formatValue("text")

	rootCmd := &cobra.Command{
		Use:           "c42fmt [flags] [FILE ...]",
		Short:         "Format C files according to 42 norminette rules",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          LongDescription,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || isCompletionCommand(cmd) {
				return nil
			}
			// Skip if already initialised (e.g., in tests)
			if lazy.HasInner() {
				if verbose {
					ll.Set(slog.LevelDebug)
				}
				return nil
			}

			cfg, err := config.Load(env)
			if err != nil {
				return err
			}
			if verbose || cfg.Debug {
				ll.Set(slog.LevelDebug)
			}

			logger, _, err := setupLogger(stderr, ll, cfg.LogFile)
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}

			gitter := repo.NewCLIGitter()
			external := formatter.NewCLIFormatter(cfg.FormatterPath, cfg.FormatterTimeout)
			pipeline := rules.NewPipeline(logger, external, gitter, cfg)

			lazy.SetInner(NewCLIManager(logger, cfg, pipeline, cmd.InOrStdin(), cmd.OutOrStdout()))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if check && confirm {
				return fmt.Errorf("--check cannot be combined with --confirm")
			}
			if watch && confirm {
				return fmt.Errorf("--watch cannot be combined with --confirm")
			}

			opts := FormatOptions{
				SkipHeader: noHeader,
				Author:     author,
				Email:      email,
				Confirm:    confirm,
				Check:      check,
				Output:     string(outputVal),
				UseColour:  !noColour,
				Verbose:    verbose,
			}

			if watch {
				if len(args) == 0 {
					return fmt.Errorf("--watch requires at least one file or directory")
				}
				return lazy.Watch(cmd.Context(), args, opts)
			}
			if len(args) == 0 {
				if check {
					return fmt.Errorf("--check requires at least one file")
				}
				return lazy.FormatStdin(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
			}
			return lazy.FormatPaths(cmd.Context(), args, opts)
		},
	}

	rootCmd.Flags().BoolVarP(&confirm, "confirm", "c", false, "Ask confirmation before overwriting any file")
	rootCmd.Flags().BoolVar(&noHeader, "no-header", false, "Skip adding the 42 header")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().StringVar(&author, "username", "", "Custom username for 42 header")
	rootCmd.Flags().StringVar(&email, "email", "", "Custom email for 42 header")
	rootCmd.Flags().BoolVar(&check, "check", false, "Report files that need formatting without rewriting them")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Watch for changes and reformat until interrupted")
	rootCmd.Flags().VarP(&outputVal, "output", "o", "Output format (text, json)")

	rootCmd.Flags().BoolVar(&noColour, "nocolour", false, "Disable colour in output")
	// Support alternate spellings
	rootCmd.Flags().BoolVar(&noColour, "nocolor", false, "")
	_ = rootCmd.Flags().MarkHidden("nocolor")

	return rootCmd
}

// isCompletionCommand returns true if the command or any of its parents is the "completion" command.
func isCompletionCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" {
			return true
		}
	}
	return false
}
