package runner

import (
	"context"
	"os/exec"
	"path/filepath"
)

// Toolchain builds the compiler and program commands for a workspace.
type Toolchain interface {
	// Name returns a human-readable name for this toolchain (e.g., "rustc")
	Name() string

	// CompileCommand creates an exec.Cmd that compiles the source file in dir.
	CompileCommand(ctx context.Context, dir string) *exec.Cmd

	// RunCommand creates an exec.Cmd that runs the produced executable in dir.
	RunCommand(ctx context.Context, dir string) *exec.Cmd
}

// Rustc compiles the workspace source with rustc.
type Rustc struct {
	// Compiler is the compiler binary (default: "rustc")
	Compiler string

	// Args are extra arguments passed before the source file name
	Args []string

	// SourceName is the source file name inside the workspace
	SourceName string

	// BinaryName is the executable produced by the compiler
	BinaryName string
}

// NewRustc creates a Rustc toolchain from the runner config.
func NewRustc(cfg Config) *Rustc {
	return &Rustc{
		Compiler:   cfg.Compiler,
		Args:       cfg.CompilerArgs,
		SourceName: cfg.SourceName,
		BinaryName: cfg.BinaryName,
	}
}

// Name returns the compiler name
func (r *Rustc) Name() string {
	return filepath.Base(r.Compiler)
}

// CompileCommand creates the rustc command
func (r *Rustc) CompileCommand(ctx context.Context, dir string) *exec.Cmd {
	args := append([]string{}, r.Args...)
	args = append(args, r.SourceName)
	cmd := exec.CommandContext(ctx, r.Compiler, args...)
	cmd.Dir = dir
	return cmd
}

// RunCommand creates the command for the compiled program
func (r *Rustc) RunCommand(ctx context.Context, dir string) *exec.Cmd {
	// exec resolves a relative Path against cmd.Dir when it contains a separator.
	cmd := exec.CommandContext(ctx, "."+string(filepath.Separator)+r.BinaryName)
	cmd.Dir = dir
	return cmd
}
