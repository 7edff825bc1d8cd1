package rules

import "strings"

// normalizeTabs rewrites leading indentation: every run of 4 leading spaces
// becomes one tab, a remainder of fewer than 4 stays as literal spaces
// (7 spaces -> 1 tab + 3 spaces). Tabs already present and non-leading
// whitespace are untouched.
func normalizeTabs(doc Document) Document {
	lines := doc.Lines()
	for i, line := range lines {
		rest := strings.TrimLeft(line, " ")
		leading := len(line) - len(rest)
		if leading == 0 {
			continue
		}
		lines[i] = strings.Repeat("\t", leading/4) + strings.Repeat(" ", leading%4) + rest
	}
	return NewDocumentFromLines(lines)
}
