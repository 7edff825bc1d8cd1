package app

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/martamakes/c-formatter-42-ext/internal/config"
	"github.com/martamakes/c-formatter-42-ext/internal/report"
	"github.com/martamakes/c-formatter-42-ext/internal/rules"
)

// FormatOptions carries per-invocation settings from flags to the manager.
type FormatOptions struct {
	SkipHeader bool
	Author     string
	Email      string
	Confirm    bool
	Check      bool
	Output     string
	UseColour  bool
	Verbose    bool
}

// Manager defines the business logic for formatting operations.
type Manager interface {
	// FormatPaths formats files in place, sequentially and in input order.
	// An I/O failure aborts the remainder of the run.
	// With opts.Check set, files are inspected concurrently and never
	// written; the error is non-nil when any file needs formatting.
	FormatPaths(ctx context.Context, paths []string, opts FormatOptions) error
	// FormatStdin formats one document read from in and writes it to out.
	FormatStdin(ctx context.Context, in io.Reader, out io.Writer, opts FormatOptions) error
	// Watch reformats C sources under the given roots as they change,
	// until the context is cancelled.
	Watch(ctx context.Context, paths []string, opts FormatOptions) error
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager acts as a placeholder for a real Manager implementation,
// allowing for deferred initialization of dependencies.
type LazyManager struct {
	inner Manager
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// HasInner returns true if the inner manager has been set.
// This is used by PersistentPreRunE to skip initialization if already configured (e.g., in tests).
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) FormatPaths(ctx context.Context, paths []string, opts FormatOptions) error {
	return l.check().FormatPaths(ctx, paths, opts)
}

func (l *LazyManager) FormatStdin(ctx context.Context, in io.Reader, out io.Writer, opts FormatOptions) error {
	return l.check().FormatStdin(ctx, in, out, opts)
}

func (l *LazyManager) Watch(ctx context.Context, paths []string, opts FormatOptions) error {
	return l.check().Watch(ctx, paths, opts)
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager is the concrete implementation of the Manager interface.
type CLIManager struct {
	logger   *slog.Logger
	cfg      *config.Config
	pipeline *rules.Pipeline
	stdin    io.Reader
	stdout   io.Writer
}

func NewCLIManager(l *slog.Logger, cfg *config.Config, p *rules.Pipeline, stdin io.Reader, stdout io.Writer) *CLIManager {
	return &CLIManager{
		logger:   l,
		cfg:      cfg,
		pipeline: p,
		stdin:    stdin,
		stdout:   stdout,
	}
}

func (m *CLIManager) pipelineOptions(path string, opts FormatOptions) rules.Options {
	return rules.Options{
		SkipHeader: opts.SkipHeader || m.cfg.SkipHeader,
		Author:     opts.Author,
		Email:      opts.Email,
		Filename:   filepath.Base(path),
	}
}

func (m *CLIManager) reporter(opts FormatOptions) report.Reporter {
	if opts.Output == "json" {
		return report.JSONReporter{}
	}
	return &report.TextReporter{Verbose: opts.Verbose, UseColour: opts.UseColour}
}

func (m *CLIManager) FormatPaths(ctx context.Context, paths []string, opts FormatOptions) error {
	m.logger.Debug("formatting files", "paths", paths, "check", opts.Check)

	r := &report.FormatReport{StartTime: time.Now(), Check: opts.Check}
	var runErr error
	if opts.Check {
		r.Results, runErr = m.checkPaths(ctx, paths, opts)
	} else {
		r.Results, runErr = m.rewritePaths(ctx, paths, opts)
	}
	r.EndTime = time.Now()

	if wErr := m.reporter(opts).Write(m.stdout, r); wErr != nil {
		return wErr
	}
	if runErr != nil {
		return runErr
	}
	if opts.Check && r.Changed() > 0 {
		return fmt.Errorf("formatting changes required")
	}
	return nil
}

// rewritePaths processes files one at a time in input order so that
// confirmation prompts and "Writing to" notices appear predictably.
func (m *CLIManager) rewritePaths(ctx context.Context, paths []string, opts FormatOptions) ([]report.FileResult, error) {
	results := make([]report.FileResult, 0, len(paths))
	prompts := bufio.NewReader(m.stdin)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := m.rewriteFile(ctx, prompts, path, opts)
		results = append(results, res)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

func (m *CLIManager) rewriteFile(ctx context.Context, prompts *bufio.Reader, path string, opts FormatOptions) (report.FileResult, error) {
	res := report.FileResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res, err
	}

	formatted := m.pipeline.Apply(ctx, rules.NewDocument(data), m.pipelineOptions(path, opts)).Render()
	res.Changed = !bytes.Equal(data, formatted)

	if opts.Confirm {
		ok, pErr := m.confirmOverwrite(prompts, path)
		if pErr != nil {
			res.Err = pErr
			return res, pErr
		}
		if !ok {
			res.Skipped = true
			return res, nil
		}
	}

	if opts.Output != "json" {
		fmt.Fprintf(m.stdout, "Writing to %s\n", path)
	}
	if err := m.writeFile(path, formatted); err != nil {
		res.Err = err
		return res, err
	}
	res.Written = true
	return res, nil
}

func (m *CLIManager) writeFile(path string, content []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, content, mode.Perm())
}

func (m *CLIManager) confirmOverwrite(prompts *bufio.Reader, path string) (bool, error) {
	fmt.Fprintf(m.stdout, "Are you sure you want to overwrite %s? [y/N] ", path)
	line, err := prompts.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

// checkPaths never writes and never prompts, so files are processed
// concurrently; results are collected by index and rendered in input order.
func (m *CLIManager) checkPaths(ctx context.Context, paths []string, opts FormatOptions) ([]report.FileResult, error) {
	results := make([]report.FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			res := report.FileResult{Path: path}
			data, err := os.ReadFile(path)
			if err != nil {
				res.Err = err
				results[i] = res
				return err
			}
			formatted := m.pipeline.Apply(gctx, rules.NewDocument(data), m.pipelineOptions(path, opts)).Render()
			res.Changed = !bytes.Equal(data, formatted)
			results[i] = res
			return nil
		})
	}
	return results, g.Wait()
}

func (m *CLIManager) FormatStdin(ctx context.Context, in io.Reader, out io.Writer, opts FormatOptions) error {
	m.logger.Debug("formatting stdin")

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	doc := m.pipeline.Apply(ctx, rules.NewDocument(data), m.pipelineOptions("stdin.c", opts))
	_, err = out.Write(doc.Render())
	return err
}

func (m *CLIManager) Watch(ctx context.Context, paths []string, opts FormatOptions) error {
	m.logger.Debug("watching", "paths", paths)

	watcher := rules.NewWatcher(m.logger)
	fmt.Fprintf(m.stdout, "Watching %s for changes\n", strings.Join(paths, ", "))

	return watcher.Watch(ctx, paths, func(ev rules.WatchEvent) {
		if err := m.reformatChanged(ctx, ev.Path, opts); err != nil {
			m.logger.Error("reformat failed", "path", ev.Path, "error", err)
		}
	})
}

// reformatChanged rewrites a watched file only when formatting alters it, so
// our own writes do not retrigger the watcher indefinitely.
func (m *CLIManager) reformatChanged(ctx context.Context, path string, opts FormatOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	formatted := m.pipeline.Apply(ctx, rules.NewDocument(data), m.pipelineOptions(path, opts)).Render()
	if bytes.Equal(data, formatted) {
		return nil
	}
	fmt.Fprintf(m.stdout, "Writing to %s\n", path)
	return m.writeFile(path, formatted)
}
