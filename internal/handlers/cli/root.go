package cli

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/prog/internal/config"
	"github.com/AntonioJCosta/prog/internal/core/domain/alias"
	"github.com/AntonioJCosta/prog/internal/core/domain/invocation"
	"github.com/AntonioJCosta/prog/internal/core/ports"
	"github.com/AntonioJCosta/prog/internal/handlers/ui"
	"github.com/spf13/cobra"
)

const versionTemplate = `prog {{.Version}}

BSD 3-Clause License
Copyright (c) 2021, Brian Reece
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the conditions listed in the license are met.
`

// Services are the components a run needs. They are built by a ServiceFactory
// once the settings of the run are known.
type Services struct {
	ConfigFiles ports.ConfigFileService
	Dispatch    ports.DispatchService
}

// ServiceFactory builds the services for one run. observer is nil unless
// verbose output was requested.
type ServiceFactory func(settings config.Settings, observer ports.DispatchObserver) (*Services, error)

func NewRootCommand(version string, factory ServiceFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prog [flags] [alias...]",
		Short: "prog runs the shell commands mapped to aliases in prog.json or prog.yml.",
		Long: `prog centralizes scripted shell commands in a JSON or YAML file.

Each alias given on the command line is looked up in ./prog.json (or ./prog.yml)
and its command is run through the shell, in order. prog stops at the first
alias that has no command.`,
		Example: `  prog build test
  prog -f ~/aliases.yml deploy
  prog --generate --template go
  prog -e`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, args, factory)
		},
	}
	cmd.SetVersionTemplate(versionTemplate)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w\nRun 'prog --help' for usage.", err)
	})
	registerFlags(cmd)
	return cmd
}

// Execute runs cmd and reports its error. It returns the process exit code.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var notFound *alias.NotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintln(cmd.OutOrStdout(), ui.WarningColor(notFound.Error()))
		return 1
	}
	fmt.Fprintln(cmd.ErrOrStderr(), ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
	return 1
}

func runRootCmd(cmd *cobra.Command, args []string, factory ServiceFactory) error {
	settings, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	req, err := buildRequest(cmd, args, settings)
	if err != nil {
		return err
	}

	if req.Mode == invocation.ModeDispatch && len(req.Aliases) == 0 {
		// Nothing to run, so no configuration file is needed either.
		return cmd.Help()
	}

	out := cmd.OutOrStdout()

	var observer ports.DispatchObserver
	if req.Verbose {
		fmt.Fprintln(out, ui.DetailColor("prog "+cmd.Version))
		observer = newVerboseObserver(out)
	}
	services, err := factory(settings, observer)
	if err != nil {
		return fmt.Errorf("could not initialize: %w", err)
	}

	return runRequest(out, req, services)
}
