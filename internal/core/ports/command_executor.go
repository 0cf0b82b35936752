package ports

// CommandExecutor runs a command line through the operating system shell.
type CommandExecutor interface {
	// Run blocks until the command finishes and returns its exit code.
	// The error is non-nil only when the shell could not be started.
	Run(command string) (exitCode int, err error)
}
