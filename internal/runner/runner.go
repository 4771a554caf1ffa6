// Package runner accumulates statement-lines into a program, compiles it
// with an external toolchain and runs the result, rolling back lines the
// compiler rejects.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/itsmostafa/ares/internal/logger"
)

// abortMarker starts the trailer rustc appends after its diagnostics.
const abortMarker = "error: aborting due to"

// Config holds configuration for a Runner.
type Config struct {
	// BaseDir is where the scratch directory is created (default: current directory)
	BaseDir string

	// Compiler is the compiler binary (default: "rustc")
	Compiler string

	// CompilerArgs are extra arguments for the compiler
	CompilerArgs []string

	// SourceName is the source file name inside the workspace (default: "ares.rs")
	SourceName string

	// BinaryName is the executable the compiler produces (default: "ares")
	BinaryName string

	// Timeout bounds each child process. Zero means wait indefinitely.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Compiler:   "rustc",
		SourceName: "ares.rs",
		BinaryName: "ares",
	}
}

// Runner owns the code buffer and the workspace it compiles in.
type Runner struct {
	id        string
	buffer    Buffer
	workspace *Workspace
	toolchain Toolchain
	timeout   time.Duration
}

// New creates a Runner and its workspace. Callers must Close it.
func New(cfg Config) (*Runner, error) {
	defaults := DefaultConfig()
	if cfg.Compiler == "" {
		cfg.Compiler = defaults.Compiler
	}
	if cfg.SourceName == "" {
		cfg.SourceName = defaults.SourceName
	}
	if cfg.BinaryName == "" {
		cfg.BinaryName = defaults.BinaryName
	}
	return NewWithToolchain(cfg, NewRustc(cfg))
}

// NewWithToolchain creates a Runner that builds programs with tc.
func NewWithToolchain(cfg Config, tc Toolchain) (*Runner, error) {
	if cfg.SourceName == "" {
		cfg.SourceName = DefaultConfig().SourceName
	}
	ws, err := CreateWorkspace(cfg.BaseDir, cfg.SourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	r := &Runner{
		id:        uuid.New().String(),
		workspace: ws,
		toolchain: tc,
		timeout:   cfg.Timeout,
	}
	logger.Infof("[%s] workspace created at %s (toolchain %s)", r.id, ws.Dir(), tc.Name())
	return r, nil
}

// Close removes the workspace.
func (r *Runner) Close() error {
	logger.Infof("[%s] removing workspace %s", r.id, r.workspace.Dir())
	return r.workspace.Destroy()
}

// ID returns the session id that tags this runner's log lines.
func (r *Runner) ID() string {
	return r.id
}

// Workspace returns the runner's workspace.
func (r *Runner) Workspace() *Workspace {
	return r.workspace
}

// Lines returns a copy of the buffered program lines.
func (r *Runner) Lines() []string {
	return r.buffer.Lines()
}

// Append buffers a line that does not complete a statement yet.
func (r *Runner) Append(line string) {
	r.buffer.Push(line)
}

// Unwind drops the buffered lines of the innermost open scope, including
// its opener. It reports whether anything was removed.
func (r *Runner) Unwind() bool {
	lines := r.buffer.Lines()
	idx := openerIndex(lines, len(lines))
	if idx < 0 {
		return false
	}
	r.buffer.Truncate(idx)
	logger.Debugf("[%s] unwound scope opened by %q", r.id, lines[idx])
	return true
}

// Execute appends line and runs the program. If the program fails to
// compile, line is removed again before the *CompilationError is returned.
func (r *Runner) Execute(ctx context.Context, line string) (string, error) {
	r.buffer.Push(line)
	out, err := r.run(ctx)
	var compErr *CompilationError
	if errors.As(err, &compErr) {
		r.buffer.Pop()
		logger.Debugf("[%s] rolled back %q", r.id, line)
	}
	return out, err
}

func (r *Runner) run(ctx context.Context) (string, error) {
	source := Render(r.buffer.Lines())
	if err := r.workspace.Write(source); err != nil {
		return "", err
	}
	if err := r.compile(ctx, source); err != nil {
		return "", err
	}
	return r.execute(ctx)
}

func (r *Runner) compile(ctx context.Context, source string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cmd := r.toolchain.CompileCommand(ctx, r.workspace.Dir())
	if r.timeout > 0 {
		cmd.WaitDelay = r.timeout
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger.Debugf("[%s] compiling: %s", r.id, strings.Join(cmd.Args, " "))
	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return fmt.Errorf("failed to run %s: %w", r.toolchain.Name(), err)
	}

	logger.Debugf("[%s] compilation failed, rendered source:\n%s", r.id, source)
	return &CompilationError{Diagnostic: extractDiagnostic(stderr.String())}
}

func (r *Runner) execute(ctx context.Context) (string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cmd := r.toolchain.RunCommand(ctx, r.workspace.Dir())
	if r.timeout > 0 {
		cmd.WaitDelay = r.timeout
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &RuntimeError{ExitCode: exitErr.ExitCode(), Stderr: stderr.String(), SessionID: r.id}
		}
		return "", fmt.Errorf("failed to run program: %w", err)
	}

	return strings.ToValidUTF8(stdout.String(), "\uFFFD"), nil
}

func (r *Runner) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout > 0 {
		return context.WithTimeout(ctx, r.timeout)
	}
	return context.WithCancel(ctx)
}

// extractDiagnostic trims compiler output at the abort trailer.
func extractDiagnostic(stderr string) string {
	if idx := strings.Index(stderr, abortMarker); idx >= 0 {
		stderr = stderr[:idx]
	}
	return strings.TrimRight(stderr, " \t\r\n")
}
