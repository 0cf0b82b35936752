package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/prog/internal/core/domain/invocation"
	"github.com/AntonioJCosta/prog/internal/core/ports"
	"github.com/AntonioJCosta/prog/internal/handlers/ui"
)

func runRequest(out io.Writer, req invocation.Request, services *Services) error {
	if services == nil || services.ConfigFiles == nil || services.Dispatch == nil {
		return fmt.Errorf("services not initialized")
	}

	switch req.Mode {
	case invocation.ModeGenerate:
		return runGenerate(out, req, services.ConfigFiles)
	case invocation.ModeEdit:
		return runEdit(out, req, services.ConfigFiles)
	case invocation.ModeList:
		return runList(out, req, services.ConfigFiles)
	case invocation.ModeConvert:
		return runConvert(out, req, services.ConfigFiles)
	default:
		return runDispatch(out, req, services)
	}
}

func runDispatch(out io.Writer, req invocation.Request, services *Services) error {
	cfg, err := services.ConfigFiles.Load(req.Path, req.Format)
	if err != nil {
		return err
	}
	if req.Verbose && cfg.Exists {
		fmt.Fprintln(out, ui.InfoColor("Opening file: "+cfg.Path))
	}

	_, err = services.Dispatch.Dispatch(cfg, req.Aliases)
	return err
}

func runGenerate(out io.Writer, req invocation.Request, svc ports.ConfigFileService) error {
	result, err := svc.Generate(ports.GenerateOptions{
		Path:     req.Path,
		Format:   req.Format,
		Template: req.Template,
		Edit:     req.Edit,
	})
	if err != nil {
		return fmt.Errorf("could not generate configuration: %w", err)
	}

	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Generated %s", result.Path)))
	if result.EditErr != nil {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("Warning: %v", result.EditErr)))
	}
	return nil
}

func runEdit(out io.Writer, req invocation.Request, svc ports.ConfigFileService) error {
	path, err := svc.Edit(req.Path)
	if err != nil {
		return fmt.Errorf("could not edit configuration: %w", err)
	}
	if req.Verbose {
		fmt.Fprintln(out, ui.DetailColor("Edited "+path))
	}
	return nil
}

func runConvert(out io.Writer, req invocation.Request, svc ports.ConfigFileService) error {
	cfg, err := svc.Load(req.Path, req.Format)
	if err != nil {
		return err
	}
	written, err := svc.Convert(cfg, req.Target)
	if err != nil {
		return fmt.Errorf("could not convert configuration: %w", err)
	}
	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Converted %s to %s", cfg.Path, written)))
	return nil
}
