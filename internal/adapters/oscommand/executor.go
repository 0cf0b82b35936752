package oscommand

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/AntonioJCosta/prog/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface using the operating system's shell.
// The command line is handed to the shell verbatim; the configuration file it
// comes from is trusted like any other script of the local user.
type OSCommandExecutor struct {
	shell  string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Option configures an OSCommandExecutor.
type Option func(*OSCommandExecutor)

// WithShell sets the shell binary. An empty value keeps the platform default.
func WithShell(shell string) Option {
	return func(e *OSCommandExecutor) {
		if shell != "" {
			e.shell = shell
		}
	}
}

// WithStreams replaces the inherited standard streams.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(e *OSCommandExecutor) {
		e.stdin = stdin
		e.stdout = stdout
		e.stderr = stderr
	}
}

// NewOSCommandExecutor creates a new OSCommandExecutor that inherits the
// process standard streams.
func NewOSCommandExecutor(opts ...Option) ports.CommandExecutor {
	e := &OSCommandExecutor{
		shell:  DefaultShell(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DefaultShell is /bin/sh, or cmd on Windows.
func DefaultShell() string {
	if runtime.GOOS == "windows" {
		return "cmd"
	}
	return "/bin/sh"
}

// Run executes command with "<shell> -c <command>" ("/C" for cmd) and waits for it.
func (e *OSCommandExecutor) Run(command string) (int, error) {
	cmd := exec.Command(e.shell, shellFlag(e.shell), command)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("starting shell '%s': %w", e.shell, err)
}

// shellFlag picks the "run this command line" flag for shell, which may be a
// bare name or a full path.
func shellFlag(shell string) string {
	base := strings.ToLower(shell[strings.LastIndexAny(shell, `/\`)+1:])
	switch base {
	case "cmd", "cmd.exe":
		return "/C"
	default:
		return "-c"
	}
}
