package rules

import (
	"regexp"
	"strings"
)

// The matchers deliberately recognise only two-token "type identifier"
// declarations. Pointer, qualified and multi-word types never match and pass
// through the declaration passes untouched.
var (
	declInitRe = regexp.MustCompile(`^(\s*)([a-zA-Z_][a-zA-Z0-9_]*\s+[a-zA-Z_][a-zA-Z0-9_]*)\s*=\s*(.+);$`)
	bareDeclRe = regexp.MustCompile(`^(\s*)([a-zA-Z_][a-zA-Z0-9_]*\s+[a-zA-Z_][a-zA-Z0-9_]*);$`)
	assignRe   = regexp.MustCompile(`^(\s*)([a-zA-Z_][a-zA-Z0-9_]*)\s*=\s*([^=].*);$`)
)

// declInit is a structured match of a declaration-with-initializer line,
// e.g. "\tint a = 5;".
type declInit struct {
	indent string
	decl   string // the "type identifier" portion, spacing preserved
	ident  string // last whitespace-separated token of decl
	value  string // right-hand expression, without the semicolon
}

func matchDeclInit(line string) (declInit, bool) {
	m := declInitRe.FindStringSubmatch(line)
	if m == nil {
		return declInit{}, false
	}
	fields := strings.Fields(m[2])
	return declInit{
		indent: m[1],
		decl:   m[2],
		ident:  fields[len(fields)-1],
		value:  m[3],
	}, true
}

// bareDecl is a structured match of a declaration without initializer,
// e.g. "\tint a;".
type bareDecl struct {
	indent string
	ident  string
}

func matchBareDecl(line string) (bareDecl, bool) {
	m := bareDeclRe.FindStringSubmatch(line)
	if m == nil {
		return bareDecl{}, false
	}
	fields := strings.Fields(m[2])
	return bareDecl{indent: m[1], ident: fields[len(fields)-1]}, true
}

// matchAssign reports whether line is an assignment statement to ident.
func matchAssign(line, ident string) bool {
	m := assignRe.FindStringSubmatch(line)
	return m != nil && m[2] == ident
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
