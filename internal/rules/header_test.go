package rules

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyHeader(t *testing.T, p *Pipeline, input string, opts Options) string {
	t.Helper()
	return p.insertHeader(context.Background(), NewDocument([]byte(input)), opts).String()
}

func TestInsertHeader(t *testing.T) {
	t.Parallel()

	t.Run("prepends the header block", func(t *testing.T) {
		t.Parallel()
		p := newTestPipeline(t, nil, &stubGitter{email: "student@student.42.fr"})
		got := applyHeader(t, p, "int main(void);\n", Options{Filename: "main.c"})

		lines := strings.Split(got, "\n")
		require.Greater(t, len(lines), 12)
		assert.Equal(t, HeaderBorder, lines[0])
		assert.Equal(t, HeaderBorder, lines[10])
		assert.Equal(t, "", lines[11])
		assert.Equal(t, "int main(void);", lines[12])
		assert.Contains(t, got, "By: student <student@student.42.fr>")
		assert.Contains(t, got, "Created: 2026/08/30 14:30:00 by student")
		assert.Contains(t, got, "Updated: 2026/08/30 14:30:00 by student")
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		p := newTestPipeline(t, nil, &stubGitter{email: "student@student.42.fr"})
		opts := Options{Filename: "main.c"}
		once := applyHeader(t, p, "int main(void);\n", opts)
		twice := applyHeader(t, p, once, opts)
		assert.Equal(t, once, twice)
	})

	t.Run("no-op when border appears anywhere", func(t *testing.T) {
		t.Parallel()
		p := newTestPipeline(t, nil, nil)
		input := "int main(void);\n" + HeaderBorder + "\n"
		assert.Equal(t, input, applyHeader(t, p, input, Options{Filename: "main.c"}))
	})

	t.Run("filename padded to fixed column width", func(t *testing.T) {
		t.Parallel()
		p := newTestPipeline(t, nil, &stubGitter{email: "s@student.42.fr"})
		got := applyHeader(t, p, "", Options{Filename: "a.c"})

		lines := strings.Split(got, "\n")
		// "/*   " + 51-wide field + the template's fixed art suffix; the
		// total width is a byte-for-byte contract with the reference tool.
		assert.Len(t, lines[3], 5+filenameFieldWidth+42+24)
		assert.True(t, strings.HasPrefix(lines[3], "/*   a.c "))
		assert.True(t, strings.HasSuffix(lines[3], ":+:      :+:    :+:   */"))
	})

	t.Run("overrides win over config and git", func(t *testing.T) {
		t.Parallel()
		p := newTestPipeline(t, nil, &stubGitter{email: "git@student.42.fr"})
		got := applyHeader(t, p, "", Options{
			Filename: "a.c",
			Author:   "alice",
			Email:    "alice@example.com",
		})
		assert.Contains(t, got, "By: alice <alice@example.com>")
	})

	t.Run("email from git config", func(t *testing.T) {
		t.Parallel()
		p := newTestPipeline(t, nil, &stubGitter{email: "git@student.42.fr"})
		got := applyHeader(t, p, "", Options{Filename: "a.c"})
		assert.Contains(t, got, "<git@student.42.fr>")
	})

	t.Run("conventional fallback when git fails", func(t *testing.T) {
		t.Parallel()
		p := newTestPipeline(t, nil, &stubGitter{err: errors.New("no repo")})
		got := applyHeader(t, p, "", Options{Filename: "a.c"})
		assert.Contains(t, got, "<student@student.42.fr>")
	})

	t.Run("fallback without a gitter", func(t *testing.T) {
		t.Parallel()
		p := newTestPipeline(t, nil, nil)
		got := applyHeader(t, p, "", Options{Filename: "a.c"})
		assert.Contains(t, got, "<student@student.42.fr>")
	})
}

func TestPadField(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a.c"+strings.Repeat(" ", 48), padField("a.c", 51))
	assert.Equal(t, "abc", padField("abc", 3))
	long := strings.Repeat("x", 60)
	assert.Equal(t, long, padField(long, 51))
}
