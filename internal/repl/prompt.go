package repl

import "fmt"

// PromptSuffix ends the prompt and shows whether input is pending.
type PromptSuffix string

const (
	// SuffixStandard is shown when no scope is being buffered.
	SuffixStandard PromptSuffix = "->"
	// SuffixPending is shown while accumulating a multi-line scope.
	SuffixPending PromptSuffix = "-*"
)

// PromptName is the program name shown in the prompt.
const PromptName = "ares"

// Prompt renders the prompt for the given session position. Line numbers
// below 1000 are zero-padded to three digits.
func Prompt(name string, lineNumber, indentLevel int, suffix PromptSuffix) string {
	if lineNumber < 1000 {
		return fmt.Sprintf(" %s:%03d:%d%s ", name, lineNumber, indentLevel, suffix)
	}
	return fmt.Sprintf(" %s:%d:%d%s ", name, lineNumber, indentLevel, suffix)
}
