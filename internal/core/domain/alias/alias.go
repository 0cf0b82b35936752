/*
Package alias defines the core domain entity for an alias.
*/
package alias

import "fmt"

/*
Alias is a short name bound to the shell command line it runs.
This is a core domain entity.
*/
type Alias struct {
	Name    string
	Command string
}

// NotFoundError reports an alias that has no command in the loaded configuration.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No command specified: %s", e.Name)
}
