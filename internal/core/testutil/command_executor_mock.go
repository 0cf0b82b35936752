package testutil

import "errors"

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
// Every command passed to Run is appended to Commands.
type MockCommandExecutor struct {
	RunFunc  func(command string) (exitCode int, err error)
	Commands []string
}

// Run records the command and calls the mock RunFunc.
func (m *MockCommandExecutor) Run(command string) (int, error) {
	m.Commands = append(m.Commands, command)
	if m.RunFunc != nil {
		return m.RunFunc(command)
	}
	return 0, nil
}

// FailingRun is a RunFunc that cannot start the shell.
func FailingRun(string) (int, error) {
	return -1, errors.New("shell not found")
}
