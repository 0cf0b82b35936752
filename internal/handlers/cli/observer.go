package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/prog/internal/core/domain/alias"
	"github.com/AntonioJCosta/prog/internal/handlers/ui"
)

// verboseObserver echoes each step of a dispatch. It never changes control flow.
type verboseObserver struct {
	out io.Writer
}

func newVerboseObserver(out io.Writer) *verboseObserver {
	return &verboseObserver{out: out}
}

func (o *verboseObserver) Resolving(name string) {
	fmt.Fprintln(o.out)
	fmt.Fprintln(o.out, ui.InfoColor("Resolving command: ")+ui.AliasNameColor(name))
}

func (o *verboseObserver) Executing(a alias.Alias) {
	fmt.Fprintln(o.out, ui.InfoColor("Executing command: ")+ui.AliasCmdColor(a.Command))
	fmt.Fprintln(o.out)
}

func (o *verboseObserver) Finished(a alias.Alias, exitCode int) {
	if exitCode != 0 {
		fmt.Fprintln(o.out, ui.DetailColor(fmt.Sprintf("(%s exited with status %d)", a.Name, exitCode)))
	}
}
