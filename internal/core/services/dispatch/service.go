package dispatch

import (
	"fmt"

	"github.com/AntonioJCosta/prog/internal/core/domain/alias"
	"github.com/AntonioJCosta/prog/internal/core/domain/config"
	"github.com/AntonioJCosta/prog/internal/core/ports"
	"go.uber.org/zap"
)

type service struct {
	executor ports.CommandExecutor
	observer ports.DispatchObserver
	logger   *zap.Logger
}

// NewService creates a new dispatch service.
// It panics if the executor is nil. A nil observer or logger is replaced by a no-op.
func NewService(executor ports.CommandExecutor, observer ports.DispatchObserver, logger *zap.Logger) ports.DispatchService {
	if executor == nil {
		panic("executor cannot be nil")
	}
	if observer == nil {
		observer = noopObserver{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{executor: executor, observer: observer, logger: logger}
}

// Dispatch runs the command of each alias in names, in order, waiting for each
// one before starting the next. The first alias missing from cfg stops the run
// with an *alias.NotFoundError; aliases after it are not looked at.
// A command's own exit status never stops the run.
func (s *service) Dispatch(cfg config.Configuration, names []string) ([]ports.Execution, error) {
	executions := make([]ports.Execution, 0, len(names))

	for _, name := range names {
		s.observer.Resolving(name)

		resolved, ok := cfg.Lookup(name)
		if !ok {
			s.logger.Debug("alias not found",
				zap.String("alias", name),
				zap.String("path", cfg.Path),
				zap.Bool("config_exists", cfg.Exists))
			return executions, &alias.NotFoundError{Name: name}
		}

		s.observer.Executing(resolved)
		exitCode, err := s.executor.Run(resolved.Command)
		if err != nil {
			return executions, fmt.Errorf("failed to run alias '%s': %w", name, err)
		}
		if exitCode != 0 {
			s.logger.Debug("command exited with non-zero status",
				zap.String("alias", name),
				zap.Int("exit_code", exitCode))
		}

		s.observer.Finished(resolved, exitCode)
		executions = append(executions, ports.Execution{Alias: resolved, ExitCode: exitCode})
	}

	return executions, nil
}

type noopObserver struct{}

func (noopObserver) Resolving(string)          {}
func (noopObserver) Executing(alias.Alias)     {}
func (noopObserver) Finished(alias.Alias, int) {}
