package runner

import "strings"

// Classification is the outcome of classifying one statement-line.
type Classification int

const (
	// Rejected lines are not buffered and leave the indent level alone.
	Rejected Classification = iota
	// Continuation lines are buffered until the open scopes close.
	Continuation
	// ReadyToExecute means the buffer plus this line forms a runnable program.
	ReadyToExecute
)

func (c Classification) String() string {
	switch c {
	case Rejected:
		return "rejected"
	case Continuation:
		return "continuation"
	case ReadyToExecute:
		return "ready"
	default:
		return "unknown"
	}
}

// RejectHint is printed for lines that cannot end a statement.
const RejectHint = "Statements must end with `;`, `{` or `}`."

// Classify decides what to do with line given the current number of open
// scopes, and returns the indent level that results from accepting it.
//
// Lines ending in `{` open a scope and lines ending in `}` close one
// (floored at zero). A line ending in `;` runs only at the top level.
// Inside an open scope an unterminated line is buffered, since it may be
// the tail expression of a block; at the top level it is rejected.
func Classify(line string, indent int) (Classification, int) {
	switch lastChar(line) {
	case '{':
		return Continuation, indent + 1
	case '}':
		indent--
		if indent <= 0 {
			return ReadyToExecute, 0
		}
		return Continuation, indent
	case ';':
		if indent == 0 {
			return ReadyToExecute, 0
		}
		return Continuation, indent
	default:
		if indent > 0 {
			return Continuation, indent
		}
		return Rejected, indent
	}
}

// lastChar returns the last non-whitespace byte of s, or 0 when s is blank.
func lastChar(s string) byte {
	t := strings.TrimRight(s, " \t\r\n")
	if t == "" {
		return 0
	}
	return t[len(t)-1]
}

// openerIndex walks lines backwards from end (exclusive) and returns the
// index of the line that opened the innermost scope still open at end, or
// -1 if every scope before end is closed.
func openerIndex(lines []string, end int) int {
	depth := 0
	for i := end - 1; i >= 0; i-- {
		switch lastChar(lines[i]) {
		case '}':
			depth++
		case '{':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}
