// Package rules implements the norminette rule pipeline: a fixed, ordered
// sequence of line-oriented rewrite passes applied to one file's contents.
// Pass order is a contract; later passes rely on invariants established by
// earlier ones.
package rules

import "strings"

// Document is the in-memory line sequence for one file while it flows through
// the pipeline. Lines carry no terminators; Render joins them with "\n", so a
// document whose last line is empty renders with a trailing newline.
type Document struct {
	lines []string
}

// NewDocument splits raw file content into a Document.
func NewDocument(content []byte) Document {
	return Document{lines: strings.Split(string(content), "\n")}
}

// NewDocumentFromLines wraps an already-split line sequence.
func NewDocumentFromLines(lines []string) Document {
	return Document{lines: lines}
}

// Lines returns a copy of the document's lines.
func (d Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// Render reassembles the document into file content.
func (d Document) Render() []byte {
	return []byte(d.String())
}

func (d Document) String() string {
	return strings.Join(d.lines, "\n")
}
