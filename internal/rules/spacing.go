package rules

// spaceDeclarations inserts one blank line after each declaration unit that
// is followed by a non-blank line. A declaration split from its initializer
// stays adjacent to the assignment; the blank line goes after the pair.
func spaceDeclarations(doc Document) Document {
	lines := doc.lines
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		out = append(out, lines[i])

		decl, ok := matchBareDecl(lines[i])
		if !ok {
			continue
		}
		if i+1 < len(lines) && matchAssign(lines[i+1], decl.ident) {
			out = append(out, lines[i+1])
			i++
		}
		if i+1 < len(lines) && !isBlank(lines[i+1]) {
			out = append(out, "")
		}
	}
	return NewDocumentFromLines(out)
}
