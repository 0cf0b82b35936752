/*
Package invocation defines what a single run of prog was asked to do.
*/
package invocation

import "github.com/AntonioJCosta/prog/internal/core/domain/config"

// Mode selects the action of a run. Exactly one mode is active per run.
type Mode int

const (
	ModeDispatch Mode = iota
	ModeGenerate
	ModeEdit
	ModeList
	ModeConvert
)

/*
Request is built once from the parsed command line and passed explicitly to
the services. Aliases keeps the order given by the user.
*/
type Request struct {
	Mode Mode
	// Aliases to resolve in ModeDispatch.
	Aliases []string
	// Path is the explicit configuration path, empty for the defaults.
	Path string
	// Format overrides the format otherwise derived from the path.
	Format config.Format
	// Template names the bundled template used by ModeGenerate.
	Template string
	// Edit opens the generated file in an editor after ModeGenerate.
	Edit bool
	// Target is the output format of ModeConvert.
	Target config.Format
	// Verbose echoes each step of the run.
	Verbose bool
}
