package cli

import (
	"github.com/spf13/cobra"
)

// optionalPathDefault is the value pflag stores for --generate and --edit
// given without a path. It means "use the default configuration path". A NUL
// byte cannot appear in a file name, so no path typed by the user matches it.
const optionalPathDefault = "\x00"

func registerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("file", "f", "", "Path to the configuration file (must exist)")
	flags.BoolP("verbose", "v", false, "Show verbose output")
	flags.StringP("generate", "g", "", "Generate a default configuration file at `path`, then open it in the editor")
	flags.StringP("edit", "e", "", "Open the configuration file at `path` in the editor")
	flags.StringP("template", "t", "", "Template used by --generate: default, bare, cmake, cargo, go, make, node, python")
	flags.String("format", "", "Configuration format, json or yaml (default: from the file extension)")
	flags.Bool("no-edit", false, "With --generate, do not open the editor")
	flags.StringP("convert", "c", "", "Write the configuration in another format (json or yaml) next to the original")
	flags.BoolP("list", "l", false, "List the aliases of the configuration file")
	flags.String("shell", "", "Shell used to run commands (default /bin/sh)")
	flags.String("editor", "", "Editor command used by --edit and --generate (default $VISUAL or $EDITOR)")
	flags.BoolP("version", "V", false, "Print the version and license, then exit")

	flags.Lookup("generate").NoOptDefVal = optionalPathDefault
	flags.Lookup("edit").NoOptDefVal = optionalPathDefault
	flags.SortFlags = false
}
