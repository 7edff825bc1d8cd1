package rules

import (
	"context"
	"log/slog"
	"time"

	"github.com/martamakes/c-formatter-42-ext/internal/config"
	"github.com/martamakes/c-formatter-42-ext/internal/formatter"
	"github.com/martamakes/c-formatter-42-ext/internal/repo"
)

// Options carries the per-invocation settings of one Apply call.
type Options struct {
	SkipHeader bool
	Author     string // header author override; empty means use config
	Email      string // header email override; empty means git, then fallback
	Filename   string // base name rendered into the header
}

// Pipeline owns the rewrite passes and their collaborators. It never reads
// environment state directly; configuration is resolved at the boundary and
// passed in.
type Pipeline struct {
	logger    *slog.Logger
	formatter formatter.Formatter
	gitter    repo.Gitter
	cfg       *config.Config
	now       func() time.Time
}

// NewPipeline wires a pipeline. formatter and gitter may be nil, in which case
// the external-format pass is a no-op and the header email falls straight
// through to the conventional fallback.
func NewPipeline(logger *slog.Logger, f formatter.Formatter, g repo.Gitter, cfg *config.Config) *Pipeline {
	return &Pipeline{
		logger:    logger.With("component", "pipeline"),
		formatter: f,
		gitter:    g,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Apply runs every pass in order and returns the rewritten document. The
// order is a correctness requirement: the external formatter sees the raw
// content, the header is prepended before any line rewriting, and indentation
// is settled before the declaration and brace passes run.
func (p *Pipeline) Apply(ctx context.Context, doc Document, opts Options) Document {
	doc = p.externalFormat(ctx, doc, opts.Filename)
	if !opts.SkipHeader {
		doc = p.insertHeader(ctx, doc, opts)
	}
	doc = normalizeTabs(doc)
	doc = splitDeclarations(doc)
	doc = spaceDeclarations(doc)
	doc = spaceBraces(doc)
	doc = ensureTrailingNewline(doc)
	return doc
}

// externalFormat delegates the whole document to c_formatter_42. Any failure
// (tool missing, non-zero exit, timeout) leaves the document untouched; the
// remaining passes still run.
func (p *Pipeline) externalFormat(ctx context.Context, doc Document, filename string) Document {
	if p.formatter == nil {
		return doc
	}
	out, err := p.formatter.Format(ctx, doc.Render(), filename)
	if err != nil {
		p.logger.Error("external formatter unavailable, continuing", "file", filename, "error", err)
		return doc
	}
	return NewDocument(out)
}
