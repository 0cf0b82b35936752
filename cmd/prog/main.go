package main

import (
	"os"

	"github.com/AntonioJCosta/prog/internal/adapters/configcodec"
	"github.com/AntonioJCosta/prog/internal/adapters/editor"
	"github.com/AntonioJCosta/prog/internal/adapters/oscommand"
	"github.com/AntonioJCosta/prog/internal/adapters/templates"
	"github.com/AntonioJCosta/prog/internal/config"
	"github.com/AntonioJCosta/prog/internal/core/ports"
	"github.com/AntonioJCosta/prog/internal/core/services/configfile"
	"github.com/AntonioJCosta/prog/internal/core/services/dispatch"
	"github.com/AntonioJCosta/prog/internal/handlers/cli"
	"github.com/AntonioJCosta/prog/internal/observability"
	filestore "github.com/AntonioJCosta/prog/internal/repositories/configfile"
)

// Version is set at build time
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(Version, newServices)
	os.Exit(cli.Execute(rootCmd))
}

// newServices wires the adapters for one run from its settings.
func newServices(settings config.Settings, observer ports.DispatchObserver) (*cli.Services, error) {
	logger := observability.NewLogger(observability.LoggerConfig{
		Verbose: settings.Verbose,
		LogFile: settings.LogFile,
	}, os.Stderr)

	templateProvider, err := templates.NewEmbeddedProvider()
	if err != nil {
		return nil, err
	}

	codec := configcodec.NewCodec()
	store := filestore.NewConfigFileStore("", codec, logger)
	cmdExec := oscommand.NewOSCommandExecutor(oscommand.WithShell(settings.Shell))
	textEditor := editor.NewExternalEditor(settings.Editor)

	return &cli.Services{
		ConfigFiles: configfile.NewService(store, codec, templateProvider, textEditor, logger),
		Dispatch:    dispatch.NewService(cmdExec, observer, logger),
	}, nil
}
