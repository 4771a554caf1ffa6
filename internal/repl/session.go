// Package repl drives an interactive session: it reads statement-lines,
// decides when the accumulated input is ready and hands it to an Executor.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/itsmostafa/ares/internal/logger"
	"github.com/itsmostafa/ares/internal/runner"
)

// Exit statuses returned by Session.Run.
const (
	ExitOK          = 0
	ExitFatal       = 1
	ExitInterrupted = 2
)

// Executor accumulates lines and runs complete programs.
type Executor interface {
	// Append buffers a line that is part of an open scope.
	Append(line string)
	// Execute appends line and runs the program built so far.
	Execute(ctx context.Context, line string) (string, error)
	// Unwind drops the innermost open scope from the buffer.
	Unwind() bool
}

// State is the session bookkeeping shown in the prompt.
type State struct {
	LineNumber  int
	IndentLevel int
	Interrupted bool
	Suffix      PromptSuffix
}

// Session is the read-eval-print loop.
type Session struct {
	reader LineReader
	exec   Executor
	out    io.Writer
	state  State
}

// NewSession creates a session reading from reader and running on exec.
func NewSession(reader LineReader, exec Executor, out io.Writer) *Session {
	return &Session{
		reader: reader,
		exec:   exec,
		out:    out,
		state: State{
			LineNumber: 1,
			Suffix:     SuffixStandard,
		},
	}
}

// State returns a snapshot of the session state.
func (s *Session) State() State {
	return s.state
}

// Prompt returns the prompt for the next line.
func (s *Session) Prompt() string {
	return Prompt(PromptName, s.state.LineNumber, s.state.IndentLevel, s.state.Suffix)
}

// Run reads lines until the session terminates and returns the exit status.
// A non-nil error is always paired with ExitFatal.
func (s *Session) Run(ctx context.Context) (int, error) {
	FormatBanner(s.out)
	for {
		status, done, err := s.Step(ctx)
		if done {
			return status, err
		}
	}
}

// Step handles one read from the line reader. done reports whether the
// session has terminated with status.
func (s *Session) Step(ctx context.Context) (status int, done bool, err error) {
	line, err := s.reader.Readline(s.Prompt())
	switch {
	case err == nil:
		if err := s.handleLine(ctx, line); err != nil {
			return ExitFatal, true, err
		}
		return 0, false, nil
	case errors.Is(err, ErrInterrupt):
		return s.handleInterrupt()
	case errors.Is(err, io.EOF):
		return s.handleEOF()
	default:
		return ExitFatal, true, fmt.Errorf("failed to read line: %w", err)
	}
}

func (s *Session) handleLine(ctx context.Context, line string) error {
	class, indent := runner.Classify(line, s.state.IndentLevel)
	if class == runner.Rejected {
		FormatHint(s.out, runner.RejectHint)
		return nil
	}

	s.state.Interrupted = false
	if err := s.reader.AddHistory(line); err != nil {
		logger.Warnf("failed to save history: %v", err)
	}
	s.state.LineNumber++

	previous := s.state.IndentLevel
	s.state.IndentLevel = indent

	if class == runner.Continuation {
		s.exec.Append(line)
		s.state.Suffix = SuffixPending
		return nil
	}

	s.state.Suffix = SuffixStandard
	output, err := s.exec.Execute(ctx, line)
	if err != nil {
		var compErr *runner.CompilationError
		if !errors.As(err, &compErr) {
			return err
		}
		FormatDiagnostic(s.out, compErr.Diagnostic)
		// The rejected line was rolled back, so any scope it closed is open again.
		s.state.IndentLevel = previous
		if previous > 0 {
			s.state.Suffix = SuffixPending
		}
		return nil
	}
	FormatResult(s.out, output)
	return nil
}

func (s *Session) handleInterrupt() (int, bool, error) {
	if s.state.Interrupted {
		return ExitInterrupted, true, nil
	}
	s.state.Interrupted = true
	FormatInterruptWarning(s.out)
	return 0, false, nil
}

func (s *Session) handleEOF() (int, bool, error) {
	if s.state.IndentLevel == 0 {
		return ExitOK, true, nil
	}
	s.state.IndentLevel--
	s.exec.Unwind()
	if s.state.IndentLevel == 0 {
		s.state.Suffix = SuffixStandard
	}
	return 0, false, nil
}
