package dispatch

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/AntonioJCosta/prog/internal/core/domain/alias"
	"github.com/AntonioJCosta/prog/internal/core/domain/config"
	"github.com/AntonioJCosta/prog/internal/core/ports"
	"github.com/AntonioJCosta/prog/internal/core/testutil"
	"github.com/google/go-cmp/cmp"
)

func makeConfig(aliases map[string]string) config.Configuration {
	return config.Configuration{Path: "./prog.json", Format: config.FormatJSON, Exists: aliases != nil, Aliases: aliases}
}

func TestNewService(t *testing.T) {
	t.Run("should return a service with nil observer and logger", func(t *testing.T) {
		if svc := NewService(&testutil.MockCommandExecutor{}, nil, nil); svc == nil {
			t.Fatal("NewService() returned nil, expected a service instance")
		}
	})

	t.Run("should panic if executor is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil executor")
			}
		}()
		_ = NewService(nil, nil, nil)
	})
}

func TestService_Dispatch(t *testing.T) {
	buildTest := map[string]string{"build": "make all", "test": "make test"}

	tests := []struct {
		name         string
		aliases      map[string]string
		names        []string
		wantCommands []string
		wantMissing  string
	}{
		{
			name:         "two aliases run in the given order",
			aliases:      buildTest,
			names:        []string{"build", "test"},
			wantCommands: []string{"make all", "make test"},
		},
		{
			name:         "order follows the request, not the file",
			aliases:      buildTest,
			names:        []string{"test", "build", "test"},
			wantCommands: []string{"make test", "make all", "make test"},
		},
		{
			name:        "unknown alias runs nothing",
			aliases:     buildTest,
			names:       []string{"deploy"},
			wantMissing: "deploy",
		},
		{
			name:         "halts at the first miss",
			aliases:      buildTest,
			names:        []string{"build", "deploy", "test"},
			wantCommands: []string{"make all"},
			wantMissing:  "deploy",
		},
		{
			name:        "missing configuration file",
			aliases:     nil,
			names:       []string{"build"},
			wantMissing: "build",
		},
		{
			name:    "empty request runs nothing",
			aliases: buildTest,
			names:   nil,
		},
		{
			name:         "lookup is case sensitive",
			aliases:      map[string]string{"Build": "make release", "build": "make all"},
			names:        []string{"Build"},
			wantCommands: []string{"make release"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := &testutil.MockCommandExecutor{}
			svc := NewService(executor, nil, nil)

			executions, err := svc.Dispatch(makeConfig(tt.aliases), tt.names)

			if diff := cmp.Diff(tt.wantCommands, executor.Commands); diff != "" {
				t.Errorf("executed commands mismatch (-want +got):\n%s", diff)
			}
			if len(executions) != len(tt.wantCommands) {
				t.Errorf("Dispatch() returned %d executions, want %d", len(executions), len(tt.wantCommands))
			}

			if tt.wantMissing == "" {
				if err != nil {
					t.Fatalf("Dispatch() unexpected error = %v", err)
				}
				return
			}
			var notFound *alias.NotFoundError
			if !errors.As(err, &notFound) {
				t.Fatalf("Dispatch() error = %v, want *alias.NotFoundError", err)
			}
			if notFound.Name != tt.wantMissing {
				t.Errorf("NotFoundError.Name = %q, want %q", notFound.Name, tt.wantMissing)
			}
			if want := "No command specified: " + tt.wantMissing; err.Error() != want {
				t.Errorf("Dispatch() error message = %q, want %q", err.Error(), want)
			}
		})
	}
}

// For every prefix length i, a request whose first miss is at index i runs
// exactly the first i commands.
func TestService_Dispatch_FailFastProperty(t *testing.T) {
	aliases := map[string]string{}
	for i := 0; i < 6; i++ {
		aliases[fmt.Sprintf("a%d", i)] = fmt.Sprintf("cmd %d", i)
	}

	for missAt := 0; missAt <= 6; missAt++ {
		t.Run(fmt.Sprintf("miss at %d", missAt), func(t *testing.T) {
			names := make([]string, 0, 7)
			for i := 0; i < 6; i++ {
				if i == missAt {
					names = append(names, "missing")
				}
				names = append(names, fmt.Sprintf("a%d", i))
			}
			if missAt == 6 {
				names = append(names, "missing")
			}

			executor := &testutil.MockCommandExecutor{}
			_, err := NewService(executor, nil, nil).Dispatch(makeConfig(aliases), names)

			if len(executor.Commands) != missAt {
				t.Errorf("ran %d commands, want %d", len(executor.Commands), missAt)
			}
			for i, got := range executor.Commands {
				if want := fmt.Sprintf("cmd %d", i); got != want {
					t.Errorf("command %d = %q, want %q", i, got, want)
				}
			}
			var notFound *alias.NotFoundError
			if !errors.As(err, &notFound) || notFound.Name != "missing" {
				t.Errorf("Dispatch() error = %v, want NotFoundError for %q", err, "missing")
			}
		})
	}
}

func TestService_Dispatch_NonZeroExitContinues(t *testing.T) {
	executor := &testutil.MockCommandExecutor{
		RunFunc: func(command string) (int, error) {
			if strings.Contains(command, "fail") {
				return 2, nil
			}
			return 0, nil
		},
	}
	cfg := makeConfig(map[string]string{"lint": "fail-lint", "build": "make all"})

	executions, err := NewService(executor, nil, nil).Dispatch(cfg, []string{"lint", "build"})
	if err != nil {
		t.Fatalf("Dispatch() unexpected error = %v", err)
	}

	want := []ports.Execution{
		{Alias: alias.Alias{Name: "lint", Command: "fail-lint"}, ExitCode: 2},
		{Alias: alias.Alias{Name: "build", Command: "make all"}, ExitCode: 0},
	}
	if diff := cmp.Diff(want, executions); diff != "" {
		t.Errorf("executions mismatch (-want +got):\n%s", diff)
	}
}

func TestService_Dispatch_ShellStartFailureAborts(t *testing.T) {
	executor := &testutil.MockCommandExecutor{RunFunc: testutil.FailingRun}
	cfg := makeConfig(map[string]string{"build": "make all", "test": "make test"})

	executions, err := NewService(executor, nil, nil).Dispatch(cfg, []string{"build", "test"})
	if err == nil {
		t.Fatal("Dispatch() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "failed to run alias 'build'") {
		t.Errorf("Dispatch() error = %q", err.Error())
	}
	var notFound *alias.NotFoundError
	if errors.As(err, &notFound) {
		t.Error("shell start failure must not be reported as a missing alias")
	}
	if len(executions) != 0 || len(executor.Commands) != 1 {
		t.Errorf("executions = %v, commands = %v; want none completed and one attempted", executions, executor.Commands)
	}
}

func TestService_Dispatch_ObserverEvents(t *testing.T) {
	executor := &testutil.MockCommandExecutor{}
	observer := &testutil.RecordingObserver{}
	cfg := makeConfig(map[string]string{"build": "make all"})

	_, _ = NewService(executor, observer, nil).Dispatch(cfg, []string{"build", "deploy", "build"})

	want := []string{
		"resolve build",
		"execute make all",
		"finish build 0",
		"resolve deploy",
	}
	if diff := cmp.Diff(want, observer.Events); diff != "" {
		t.Errorf("observer events mismatch (-want +got):\n%s", diff)
	}
}
