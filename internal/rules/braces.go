package rules

import "strings"

// spaceBraces inserts one blank line after every line whose trimmed content
// ends with (or is exactly) an opening brace, unless the next line is already
// blank or the brace closes the document.
func spaceBraces(doc Document) Document {
	lines := doc.lines
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		out = append(out, line)
		if !strings.HasSuffix(strings.TrimSpace(line), "{") {
			continue
		}
		if i+1 < len(lines) && !isBlank(lines[i+1]) {
			out = append(out, "")
		}
	}
	return NewDocumentFromLines(out)
}
