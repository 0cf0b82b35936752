package testutil

import (
	"fmt"

	"github.com/AntonioJCosta/prog/internal/core/domain/alias"
)

// RecordingObserver is a ports.DispatchObserver that records every event as a string.
type RecordingObserver struct {
	Events []string
}

func (r *RecordingObserver) Resolving(name string) {
	r.Events = append(r.Events, "resolve "+name)
}

func (r *RecordingObserver) Executing(a alias.Alias) {
	r.Events = append(r.Events, "execute "+a.Command)
}

func (r *RecordingObserver) Finished(a alias.Alias, exitCode int) {
	r.Events = append(r.Events, fmt.Sprintf("finish %s %d", a.Name, exitCode))
}
