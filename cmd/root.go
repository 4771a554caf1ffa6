package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/itsmostafa/ares/internal/config"
	"github.com/itsmostafa/ares/internal/logger"
	"github.com/itsmostafa/ares/internal/repl"
	"github.com/itsmostafa/ares/internal/runner"
	"github.com/itsmostafa/ares/internal/version"
	"github.com/spf13/cobra"
)

// exitStatus is the process exit code chosen by the session.
var exitStatus int

var rootCmd = &cobra.Command{
	Use:   "ares",
	Short: "Interactive REPL for Rust",
	Long: `Ares is a read-eval-print loop for Rust. Each statement is appended to a
growing main function, compiled with rustc and run, and its value is echoed.

Lines must end with ';', '{' or '}'. Ctrl-D closes the innermost open scope
(or exits at the top level); press Ctrl-C twice to quit.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		closeLog, err := setupLogging(cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		status, err := runSession(cmd, cfg)
		exitStatus = status
		return err
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("ares %s\n", version.String()))
}

// runSession owns the runner for the lifetime of the session so that the
// workspace is removed on every return path.
func runSession(cmd *cobra.Command, cfg *config.Config) (status int, err error) {
	r, err := runner.New(cfg.Runner)
	if err != nil {
		return repl.ExitFatal, fmt.Errorf("failed to initialize runner: %w", err)
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			err = errors.Join(err, cerr)
			status = repl.ExitFatal
		}
	}()

	rl, err := repl.NewReadline(cfg.HistoryFile)
	if err != nil {
		return repl.ExitFatal, fmt.Errorf("failed to open line editor: %w", err)
	}
	defer rl.Close()

	session := repl.NewSession(rl, r, rl.Stdout())
	status, err = session.Run(cmd.Context())
	if err != nil {
		logger.Errorf("[%s] session ended with status %d: %v", r.ID(), status, err)
	}
	return status, err
}

func setupLogging(cfg *config.Config) (func(), error) {
	logger.SetLevel(cfg.LogLevel)
	if cfg.LogFile == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(f)
	logger.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { f.Close() }, nil
}

// Execute runs the root command and exits with the session status
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		repl.FormatFatal(os.Stderr, err)
		if exitStatus == 0 {
			exitStatus = repl.ExitFatal
		}
	}
	os.Exit(exitStatus)
}
