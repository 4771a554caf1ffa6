package runner

import (
	"strings"
)

const (
	mainOpen  = "fn main() {"
	mainClose = "}"

	// valueBinding holds the value of a bare expression statement so it can
	// be printed.
	valueBinding = "__ares_value"
)

var declarationKeywords = []string{"fn", "impl", "trait", "struct", "enum", "union", "mod"}

var declarationModifiers = map[string]bool{
	"pub":        true,
	"pub(crate)": true,
	"pub(super)": true,
	"unsafe":     true,
	"async":      true,
	"const":      true,
	"default":    true,
}

var rustStringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Render turns the buffered lines into a complete program. The last line
// is instrumented so that running the program prints something about it.
// Lines are re-indented from their own braces.
func Render(lines []string) string {
	var sb strings.Builder
	sb.WriteString(mainOpen)
	sb.WriteString("\n")

	depth := 0
	for _, line := range instrument(lines) {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "}") && depth > 0 {
			depth--
		}
		sb.WriteString(strings.Repeat("\t", depth+1))
		sb.WriteString(trimmed)
		sb.WriteString("\n")
		if lastChar(trimmed) == '{' {
			depth++
		}
	}

	sb.WriteString(mainClose)
	sb.WriteString("\n")
	return sb.String()
}

// instrument returns lines with the final line rewritten so its effect is
// printed.
func instrument(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:len(lines)-1]...)
	return append(out, instrumentLast(lines)...)
}

func instrumentLast(lines []string) []string {
	last := strings.TrimSpace(lines[len(lines)-1])

	switch lastChar(last) {
	case ';':
		if path, ok := importPath(last); ok {
			return []string{last, printDisplay("Using `{}`", path)}
		}
		if idx := topLevelAssign(last); idx >= 0 {
			return []string{last, printDebug(boundName(last[:idx]))}
		}
		if isBareLet(last) {
			return []string{last}
		}
		expr := strings.TrimSpace(strings.TrimSuffix(last, ";"))
		return []string{
			"let " + valueBinding + " = " + expr + ";",
			printDebug(valueBinding),
		}
	case '}':
		if open, balanced := braceBalance(last); balanced && open >= 0 {
			// The scope opens and closes on this line, e.g. `struct P { x: i32 }`.
			if sig, ok := declarationSignature(last[:open]); ok {
				return []string{last, printDisplay("{}", sig)}
			}
			return []string{last}
		}
		opener := openerIndex(lines, len(lines)-1)
		if opener < 0 {
			return []string{last}
		}
		if sig, ok := declarationSignature(lines[opener]); ok {
			return []string{last, printDisplay("{}", sig)}
		}
	}
	return []string{last}
}

// braceBalance returns the index of the first `{` outside literals and
// whether every brace opened on the line is also closed on it.
func braceBalance(s string) (int, bool) {
	first := -1
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			i = skipString(s, i)
		case '\'':
			i = skipChar(s, i)
		case '{':
			if first < 0 {
				first = i
			}
			depth++
		case '}':
			depth--
			if depth < 0 {
				return first, false
			}
		}
	}
	return first, depth == 0
}

func printDebug(expr string) string {
	return `println!("{:?}", ` + expr + `);`
}

func printDisplay(format, text string) string {
	return `println!("` + format + `", "` + rustStringEscaper.Replace(text) + `");`
}

// importPath reports the imported path of a `use` declaration.
func importPath(stmt string) (string, bool) {
	rest, ok := strings.CutPrefix(stmt, "use ")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(strings.TrimSuffix(rest, ";")), true
}

// isBareLet reports a declaration without an initializer, such as `let x;`.
func isBareLet(stmt string) bool {
	return strings.HasPrefix(stmt, "let ")
}

// declarationSignature returns the opener text without its trailing brace
// when the opener starts an item declaration.
func declarationSignature(opener string) (string, bool) {
	trimmed := strings.TrimSpace(opener)
	fields := strings.Fields(trimmed)
	i := 0
	for i < len(fields) && declarationModifiers[fields[i]] {
		i++
	}
	if i == len(fields) {
		return "", false
	}
	head := fields[i]
	for _, kw := range declarationKeywords {
		if head == kw || strings.HasPrefix(head, kw+"<") {
			return strings.TrimSpace(strings.TrimSuffix(trimmed, "{")), true
		}
	}
	return "", false
}

// topLevelAssign returns the index of the first assignment `=` outside any
// brackets or literals, or -1. Comparison operators and `=>` are skipped;
// compound assignments such as `+=` and `<<=` count.
func topLevelAssign(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			i = skipString(s, i)
		case '\'':
			i = skipChar(s, i)
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case '=':
			if depth > 0 {
				continue
			}
			if i+1 < len(s) && (s[i+1] == '=' || s[i+1] == '>') {
				i++
				continue
			}
			if i == 0 {
				return i
			}
			switch prev := s[i-1]; prev {
			case '=', '!':
				continue
			case '<', '>':
				if i >= 2 && s[i-2] == prev {
					return i
				}
				continue
			}
			return i
		}
	}
	return -1
}

// skipString returns the index of the closing quote of the string literal
// starting at i.
func skipString(s string, i int) int {
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '"':
			return j
		}
	}
	return len(s)
}

// skipChar skips a char literal starting at i. Lifetimes are left alone.
func skipChar(s string, i int) int {
	if i+2 < len(s) && s[i+1] != '\\' && s[i+2] == '\'' {
		return i + 2
	}
	if i+1 < len(s) && s[i+1] == '\\' {
		if end := strings.IndexByte(s[i+2:], '\''); end >= 0 {
			return i + 2 + end
		}
	}
	return i
}

// boundName extracts the assigned place from the text before `=`. The
// binding keywords, a type annotation and compound operator characters are
// dropped, so `let mut x: i32` yields `x` and `total +` yields `total`.
func boundName(lhs string) string {
	name := strings.TrimSpace(lhs)
	name = strings.TrimRight(name, "+-*/%&|^<> \t")
	if rest, ok := strings.CutPrefix(name, "let "); ok {
		name = strings.TrimSpace(rest)
	}
	if colon := annotationColon(name); colon >= 0 {
		name = strings.TrimSpace(name[:colon])
	}
	name = strings.ReplaceAll(name, "mut ", "")
	name = strings.ReplaceAll(name, "ref ", "")
	fields := strings.Fields(name)
	if len(fields) == 1 {
		return fields[0]
	}
	return strings.Join(fields, " ")
}

// annotationColon returns the index of a single `:` at the top level,
// skipping `::` path separators.
func annotationColon(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '<':
			depth++
		case ')', ']', '>':
			if depth > 0 {
				depth--
			}
		case ':':
			if i+1 < len(s) && s[i+1] == ':' {
				i++
				continue
			}
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
