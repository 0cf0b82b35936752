package ports

import "github.com/AntonioJCosta/prog/internal/core/domain/config"

// GenerateOptions controls ConfigFileService.Generate.
type GenerateOptions struct {
	// Path of the file to write. Empty selects the default path for Format.
	Path     string
	Format   config.Format
	Template string
	Edit     bool
}

// GenerateResult describes a generated configuration file.
type GenerateResult struct {
	Path string
	// EditErr is set when the file was written but could not be opened in the editor.
	EditErr error
}

// ConfigFileService manages prog configuration files.
type ConfigFileService interface {
	// Load locates and reads the configuration. format overrides the format
	// derived from the file extension when it is not config.FormatUnknown.
	Load(path string, format config.Format) (config.Configuration, error)
	Generate(opts GenerateOptions) (GenerateResult, error)
	Edit(path string) (string, error)
	// Convert writes cfg next to its source in the target format and returns the new path.
	Convert(cfg config.Configuration, target config.Format) (string, error)
	Templates() []string
}
