package rules

import "strings"

// ensureTrailingNewline appends exactly one line terminator when the rendered
// document lacks one. Idempotent.
func ensureTrailingNewline(doc Document) Document {
	text := doc.String()
	if strings.HasSuffix(text, "\n") {
		return doc
	}
	return NewDocument([]byte(text + "\n"))
}
