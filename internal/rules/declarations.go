package rules

// splitDeclarations replaces each declaration-with-initializer with a bare
// declaration followed by the assignment, both keeping the original indent:
//
//	int a = 5;   ->   int a;
//	                  a = 5;
//
// Lines that do not match pass through unchanged.
func splitDeclarations(doc Document) Document {
	out := make([]string, 0, len(doc.lines))
	for _, line := range doc.lines {
		m, ok := matchDeclInit(line)
		if !ok {
			out = append(out, line)
			continue
		}
		out = append(out, m.indent+m.decl+";")
		out = append(out, m.indent+m.ident+" = "+m.value+";")
	}
	return NewDocumentFromLines(out)
}
