package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/prog/internal/config"
	domainconfig "github.com/AntonioJCosta/prog/internal/core/domain/config"
	"github.com/AntonioJCosta/prog/internal/core/domain/invocation"
	"github.com/spf13/cobra"
)

// buildRequest turns the parsed command line into the single Request of this run.
func buildRequest(cmd *cobra.Command, args []string, settings config.Settings) (invocation.Request, error) {
	flags := cmd.Flags()
	req := invocation.Request{
		Mode:    invocation.ModeDispatch,
		Aliases: args,
		Path:    settings.File,
		Verbose: settings.Verbose,
	}

	if settings.Format != "" {
		format, err := domainconfig.ParseFormat(settings.Format)
		if err != nil {
			return invocation.Request{}, err
		}
		req.Format = format
	}

	var modes []string
	for _, name := range []string{"generate", "edit", "list", "convert"} {
		if flags.Changed(name) {
			modes = append(modes, "--"+name)
		}
	}
	if len(modes) > 1 {
		return invocation.Request{}, fmt.Errorf("%s cannot be used together", strings.Join(modes, " and "))
	}
	if len(modes) == 0 {
		return req, nil
	}

	switch modes[0] {
	case "--generate":
		req.Mode = invocation.ModeGenerate
		req.Template, _ = flags.GetString("template")
		noEdit, _ := flags.GetBool("no-edit")
		req.Edit = !noEdit
		value, _ := flags.GetString("generate")
		path, err := optionalPath(value, args)
		if err != nil {
			return invocation.Request{}, fmt.Errorf("--generate: %w", err)
		}
		req.Path = path
		req.Aliases = nil
	case "--edit":
		req.Mode = invocation.ModeEdit
		value, _ := flags.GetString("edit")
		path, err := optionalPath(value, args)
		if err != nil {
			return invocation.Request{}, fmt.Errorf("--edit: %w", err)
		}
		if path != "" {
			req.Path = path
		}
		req.Aliases = nil
	case "--list":
		req.Mode = invocation.ModeList
		if len(args) > 0 {
			return invocation.Request{}, fmt.Errorf("--list does not take aliases")
		}
	case "--convert":
		req.Mode = invocation.ModeConvert
		value, _ := flags.GetString("convert")
		target, err := domainconfig.ParseFormat(value)
		if err != nil {
			return invocation.Request{}, fmt.Errorf("--convert: %w", err)
		}
		req.Target = target
		if len(args) > 0 {
			return invocation.Request{}, fmt.Errorf("--convert does not take aliases")
		}
	}
	return req, nil
}

// optionalPath resolves the path of --generate and --edit. Those modes never
// run aliases, so "prog -g aliases.yml" names the file with its only argument.
func optionalPath(value string, args []string) (string, error) {
	explicit := value != optionalPathDefault
	switch {
	case len(args) > 1:
		return "", fmt.Errorf("expected at most one path, got %d arguments", len(args))
	case len(args) == 1 && explicit:
		return "", fmt.Errorf("path given twice: %q and %q", value, args[0])
	case len(args) == 1:
		return args[0], nil
	case explicit:
		return value, nil
	default:
		return "", nil
	}
}
