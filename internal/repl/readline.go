package repl

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
)

// ErrInterrupt is returned by a LineReader when the user presses Ctrl-C.
var ErrInterrupt = errors.New("interrupt")

// LineReader reads one line at a time and keeps the line-editing history.
// Readline returns ErrInterrupt on interrupt and io.EOF at end of input.
type LineReader interface {
	Readline(prompt string) (string, error)
	AddHistory(line string) error
}

// Readline is a LineReader backed by a terminal line editor.
type Readline struct {
	rl *readline.Instance
}

// NewReadline creates a terminal line reader. History is persisted to
// historyFile when it is not empty.
func NewReadline(historyFile string) (*Readline, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:            historyFile,
		InterruptPrompt:        "^C",
		HistorySearchFold:      true,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return nil, err
	}
	return &Readline{rl: rl}, nil
}

// Readline reads a line using prompt.
func (r *Readline) Readline(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupt
	}
	return line, err
}

// AddHistory appends line to the history.
func (r *Readline) AddHistory(line string) error {
	return r.rl.SaveHistory(line)
}

// Stdout returns a writer that does not clobber the prompt.
func (r *Readline) Stdout() io.Writer {
	return r.rl.Stdout()
}

// Close restores the terminal.
func (r *Readline) Close() error {
	return r.rl.Close()
}
