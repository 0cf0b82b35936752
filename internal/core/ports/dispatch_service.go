package ports

import (
	"github.com/AntonioJCosta/prog/internal/core/domain/alias"
	"github.com/AntonioJCosta/prog/internal/core/domain/config"
)

// Execution records one dispatched alias and the exit code of its command.
type Execution struct {
	Alias    alias.Alias
	ExitCode int
}

// DispatchObserver is notified as aliases are resolved and executed.
type DispatchObserver interface {
	Resolving(name string)
	Executing(a alias.Alias)
	Finished(a alias.Alias, exitCode int)
}

// DispatchService resolves aliases and runs their commands in order.
type DispatchService interface {
	// Dispatch stops at the first unresolved alias and returns an
	// *alias.NotFoundError for it. The executions that already happened are
	// returned in every case.
	Dispatch(cfg config.Configuration, names []string) ([]Execution, error)
}
