/*
Package config defines the alias configuration loaded from a prog file.
*/
package config

import (
	"sort"

	"github.com/AntonioJCosta/prog/internal/core/domain/alias"
)

// DefaultBaseName is the file name, without extension, of a prog configuration.
const DefaultBaseName = "prog"

/*
Configuration is the alias to command mapping read from a single file.
Exists is false when no file was found; Aliases is then empty.
*/
type Configuration struct {
	Path    string
	Format  Format
	Exists  bool
	Aliases map[string]string
}

// Lookup resolves name against the configuration.
func (c Configuration) Lookup(name string) (alias.Alias, bool) {
	command, ok := c.Aliases[name]
	if !ok {
		return alias.Alias{}, false
	}
	return alias.Alias{Name: name, Command: command}, true
}

// Sorted returns every alias ordered by name.
func (c Configuration) Sorted() []alias.Alias {
	names := make([]string, 0, len(c.Aliases))
	for name := range c.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]alias.Alias, 0, len(names))
	for _, name := range names {
		out = append(out, alias.Alias{Name: name, Command: c.Aliases[name]})
	}
	return out
}
