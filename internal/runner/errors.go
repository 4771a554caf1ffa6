package runner

import (
	"fmt"
	"strings"
)

// CompilationError carries the compiler diagnostic for a rejected program.
// It is the only recoverable execution failure: the offending line is
// rolled back and the session continues.
type CompilationError struct {
	Diagnostic string
}

func (e *CompilationError) Error() string {
	return e.Diagnostic
}

// RuntimeError reports a non-zero exit from the produced executable.
// SessionID names the runner whose log lines describe the failed program.
type RuntimeError struct {
	ExitCode  int
	Stderr    string
	SessionID string
}

func (e *RuntimeError) Error() string {
	msg := fmt.Sprintf("program exited with status %d", e.ExitCode)
	if e.SessionID != "" {
		msg += fmt.Sprintf(" (session %s)", e.SessionID)
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// WorkspaceError wraps an I/O failure on the scratch workspace.
type WorkspaceError struct {
	Op   string
	Path string
	Err  error
}

func (e *WorkspaceError) Error() string {
	return fmt.Sprintf("workspace %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WorkspaceError) Unwrap() error {
	return e.Err
}
