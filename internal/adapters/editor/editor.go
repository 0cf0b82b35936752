package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/AntonioJCosta/prog/internal/core/ports"
	"golang.org/x/term"
)

// ErrUnavailable is returned when no editor can be started.
var ErrUnavailable = errors.New("no editor available")

// ExternalEditor implements ports.Editor by running the user's editor with
// the file path as its last argument.
type ExternalEditor struct {
	command    string
	lookupEnv  func(string) (string, bool)
	lookPath   func(string) (string, error)
	isTerminal func() bool
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

// NewExternalEditor creates an editor. command overrides $VISUAL and $EDITOR
// when it is not empty.
func NewExternalEditor(command string) ports.Editor {
	return &ExternalEditor{
		command:    command,
		lookupEnv:  os.LookupEnv,
		lookPath:   exec.LookPath,
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// Open implements the ports.Editor interface. It blocks until the editor exits.
// Closing the editor without saving leaves the file untouched.
func (e *ExternalEditor) Open(path string) error {
	if !e.isTerminal() {
		return fmt.Errorf("%w: standard input is not a terminal", ErrUnavailable)
	}

	argv, err := e.resolve()
	if err != nil {
		return err
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s failed on %s: %w", argv[0], path, err)
	}
	return nil
}
