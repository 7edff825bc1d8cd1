package rules

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martamakes/c-formatter-42-ext/internal/config"
	"github.com/martamakes/c-formatter-42-ext/internal/formatter"
	"github.com/martamakes/c-formatter-42-ext/internal/repo"
)

// stubFormatter implements formatter.Formatter for pipeline tests.
type stubFormatter struct {
	out []byte
	err error
}

func (s *stubFormatter) Format(_ context.Context, content []byte, _ string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.out != nil {
		return s.out, nil
	}
	return content, nil
}

// stubGitter implements repo.Gitter for pipeline tests.
type stubGitter struct {
	email string
	err   error
}

func (s *stubGitter) UserEmail(_ context.Context) (string, error) {
	return s.email, s.err
}

var testNow = time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)

func newTestPipeline(t *testing.T, f *stubFormatter, g *stubGitter) *Pipeline {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Author: "student"}
	var fmtr formatter.Formatter
	if f != nil {
		fmtr = f
	}
	var gitter repo.Gitter
	if g != nil {
		gitter = g
	}
	p := NewPipeline(logger, fmtr, gitter, cfg)
	p.now = func() time.Time { return testNow }
	return p
}

func apply(t *testing.T, p *Pipeline, input string, opts Options) string {
	t.Helper()
	return p.Apply(context.Background(), NewDocument([]byte(input)), opts).String()
}

func TestPipelineEndToEnd(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(t, &stubFormatter{}, nil)
	input := "int main(void)\n{\nint a = 42;\nreturn(a);\n}\n"
	want := "int main(void)\n{\n\nint a;\na = 42;\n\nreturn(a);\n}\n"

	got := apply(t, p, input, Options{SkipHeader: true, Filename: "main.c"})
	assert.Equal(t, want, got)
}

func TestPipelineIsIdempotent(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(t, nil, &stubGitter{email: "student@student.42.fr"})
	input := "int main(void)\n{\nint a = 42;\nreturn(a);\n}\n"
	opts := Options{Filename: "main.c"}

	once := apply(t, p, input, opts)
	twice := apply(t, p, once, opts)
	assert.Equal(t, once, twice)
}

func TestPipelineGracefulDegradation(t *testing.T) {
	t.Parallel()

	// A failing external formatter must be a true no-op: the output equals
	// the remaining passes applied to the untouched input.
	input := "int main(void)\n{\nint a = 42;\nreturn(a);\n}\n"
	opts := Options{SkipHeader: true, Filename: "main.c"}

	broken := newTestPipeline(t, &stubFormatter{err: errors.New("exit status 1")}, nil)
	absent := newTestPipeline(t, nil, nil)

	assert.Equal(t, apply(t, absent, input, opts), apply(t, broken, input, opts))
}

func TestPipelineUsesExternalFormatterOutput(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(t, &stubFormatter{out: []byte("int\tmain(void);\n")}, nil)
	got := apply(t, p, "int   main(void)   ;", Options{SkipHeader: true, Filename: "main.c"})
	assert.Equal(t, "int\tmain(void);\n", got)
}

func TestPipelinePassOrder(t *testing.T) {
	t.Parallel()

	// Indentation is normalized before the declaration passes run, so a
	// four-space-indented initializer is both split and tabbed.
	p := newTestPipeline(t, nil, nil)
	input := "void f(void)\n{\n    int a = 5;\n}\n"
	want := "void f(void)\n{\n\n\tint a;\n\ta = 5;\n\n}\n"

	got := apply(t, p, input, Options{SkipHeader: true, Filename: "f.c"})
	assert.Equal(t, want, got)
}

func TestEnsureTrailingNewline(t *testing.T) {
	t.Parallel()

	t.Run("appends exactly one terminator", func(t *testing.T) {
		t.Parallel()
		got := ensureTrailingNewline(NewDocument([]byte("int a;")))
		assert.Equal(t, "int a;\n", got.String())
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		once := ensureTrailingNewline(NewDocument([]byte("int a;")))
		twice := ensureTrailingNewline(once)
		assert.Equal(t, once.String(), twice.String())
	})

	t.Run("empty content gains a newline", func(t *testing.T) {
		t.Parallel()
		got := ensureTrailingNewline(NewDocument(nil))
		assert.Equal(t, "\n", got.String())
	})
}

func TestNormalizeTabs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"four spaces become one tab", "    int a;", "\tint a;"},
		{"seven spaces round down", "       int a;", "\t   int a;"},
		{"ten spaces become two tabs two spaces", "          int a;", "\t\t  int a;"},
		{"existing tabs untouched", "\tint a;", "\tint a;"},
		{"tab then spaces untouched", "\t  int a;", "\t  int a;"},
		{"non-leading whitespace untouched", "int     a;", "int     a;"},
		{"blank line untouched", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := normalizeTabs(NewDocumentFromLines([]string{tt.input}))
			assert.Equal(t, tt.want, got.Lines()[0])
		})
	}
}

func TestSplitDeclarations(t *testing.T) {
	t.Parallel()

	t.Run("splits into declaration then assignment", func(t *testing.T) {
		t.Parallel()
		got := splitDeclarations(NewDocument([]byte("int a = 5;")))
		require.Equal(t, []string{"int a;", "a = 5;"}, got.Lines())
	})

	t.Run("preserves indent on both lines", func(t *testing.T) {
		t.Parallel()
		got := splitDeclarations(NewDocument([]byte("\tint a = 5;")))
		require.Equal(t, []string{"\tint a;", "\ta = 5;"}, got.Lines())
	})

	t.Run("pointer types pass through", func(t *testing.T) {
		t.Parallel()
		line := "char *s = NULL;"
		got := splitDeclarations(NewDocument([]byte(line)))
		require.Equal(t, []string{line}, got.Lines())
	})

	t.Run("multi-word types pass through", func(t *testing.T) {
		t.Parallel()
		line := "unsigned int n = 0;"
		got := splitDeclarations(NewDocument([]byte(line)))
		require.Equal(t, []string{line}, got.Lines())
	})

	t.Run("plain statements pass through", func(t *testing.T) {
		t.Parallel()
		line := "return (a);"
		got := splitDeclarations(NewDocument([]byte(line)))
		require.Equal(t, []string{line}, got.Lines())
	})
}

func TestSpaceDeclarations(t *testing.T) {
	t.Parallel()

	t.Run("inserts blank after declaration", func(t *testing.T) {
		t.Parallel()
		got := spaceDeclarations(NewDocumentFromLines([]string{"int a;", "foo();"}))
		assert.Equal(t, []string{"int a;", "", "foo();"}, got.Lines())
	})

	t.Run("keeps split pair together", func(t *testing.T) {
		t.Parallel()
		got := spaceDeclarations(NewDocumentFromLines([]string{"int a;", "a = 5;", "foo();"}))
		assert.Equal(t, []string{"int a;", "a = 5;", "", "foo();"}, got.Lines())
	})

	t.Run("no-op when blank already present", func(t *testing.T) {
		t.Parallel()
		lines := []string{"int a;", "", "foo();"}
		got := spaceDeclarations(NewDocumentFromLines(lines))
		assert.Equal(t, lines, got.Lines())
	})

	t.Run("no-op at end of document", func(t *testing.T) {
		t.Parallel()
		lines := []string{"int a;"}
		got := spaceDeclarations(NewDocumentFromLines(lines))
		assert.Equal(t, lines, got.Lines())
	})

	t.Run("assignment to other identifier is not part of the unit", func(t *testing.T) {
		t.Parallel()
		got := spaceDeclarations(NewDocumentFromLines([]string{"int a;", "b = 5;"}))
		assert.Equal(t, []string{"int a;", "", "b = 5;"}, got.Lines())
	})
}

func TestSpaceBraces(t *testing.T) {
	t.Parallel()

	t.Run("inserts blank after opening brace", func(t *testing.T) {
		t.Parallel()
		got := spaceBraces(NewDocumentFromLines([]string{"{", "foo();"}))
		assert.Equal(t, []string{"{", "", "foo();"}, got.Lines())
	})

	t.Run("matches trailing brace", func(t *testing.T) {
		t.Parallel()
		got := spaceBraces(NewDocumentFromLines([]string{"while (1) {", "foo();"}))
		assert.Equal(t, []string{"while (1) {", "", "foo();"}, got.Lines())
	})

	t.Run("no double blank line", func(t *testing.T) {
		t.Parallel()
		lines := []string{"{", "", "foo();"}
		got := spaceBraces(NewDocumentFromLines(lines))
		assert.Equal(t, lines, got.Lines())
	})

	t.Run("closing brace untouched", func(t *testing.T) {
		t.Parallel()
		lines := []string{"}", "foo();"}
		got := spaceBraces(NewDocumentFromLines(lines))
		assert.Equal(t, lines, got.Lines())
	})
}
