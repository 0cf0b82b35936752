package configfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/AntonioJCosta/prog/internal/core/domain/config"
	"github.com/AntonioJCosta/prog/internal/core/ports"
	"go.uber.org/zap"
)

type service struct {
	store     ports.ConfigStore
	codec     ports.ConfigCodec
	templates ports.TemplateProvider
	editor    ports.Editor
	logger    *zap.Logger
}

// NewService creates a new configuration file service.
// It panics if store, codec or templates is nil. The editor may be nil, in
// which case Edit and editing after Generate fail.
func NewService(
	store ports.ConfigStore,
	codec ports.ConfigCodec,
	templates ports.TemplateProvider,
	editor ports.Editor,
	logger *zap.Logger,
) ports.ConfigFileService {
	if store == nil || codec == nil || templates == nil {
		panic("store, codec and templates cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{store: store, codec: codec, templates: templates, editor: editor, logger: logger}
}

// Load locates the configuration file and reads it. A missing default file is
// not an error: the configuration is returned empty with Exists set to false.
func (s *service) Load(path string, format config.Format) (config.Configuration, error) {
	located, exists, err := s.store.Locate(path)
	if err != nil {
		return config.Configuration{}, err
	}
	if !exists {
		// Keep the format of the default path so the result describes a real file name.
		if format == config.FormatUnknown {
			format, _ = config.FormatFromPath(located)
		}
		return config.Configuration{Path: located, Format: format, Aliases: map[string]string{}}, nil
	}

	cfg, err := s.store.Load(located, format)
	if err != nil {
		return config.Configuration{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// Generate writes the requested template to opts.Path, replacing any existing
// file, and then opens it in the editor when opts.Edit is set. An editor
// failure after a successful write is returned in GenerateResult.EditErr.
func (s *service) Generate(opts ports.GenerateOptions) (ports.GenerateResult, error) {
	path, format, err := resolveTarget(opts.Path, opts.Format)
	if err != nil {
		return ports.GenerateResult{}, err
	}

	if opts.Template != "" && !slices.Contains(s.Templates(), opts.Template) {
		return ports.GenerateResult{}, fmt.Errorf("unknown template %q, available: %s",
			opts.Template, strings.Join(s.Templates(), ", "))
	}
	aliases, err := s.templates.Template(opts.Template)
	if err != nil {
		return ports.GenerateResult{}, fmt.Errorf("failed to load template: %w", err)
	}
	data, err := s.codec.Encode(format, aliases)
	if err != nil {
		return ports.GenerateResult{}, err
	}
	if err := s.store.Write(path, data); err != nil {
		return ports.GenerateResult{}, err
	}
	s.logger.Debug("generated configuration",
		zap.String("path", path),
		zap.Stringer("format", format),
		zap.String("template", opts.Template))

	result := ports.GenerateResult{Path: path}
	if opts.Edit {
		result.EditErr = s.open(path)
	}
	return result, nil
}

// Edit opens the configuration in the editor. Without an explicit path the
// first existing default file is used; if there is none, config.ErrNotFound
// is returned. The edited path is returned.
func (s *service) Edit(path string) (string, error) {
	located, exists, err := s.store.Locate(path)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("%w: no %s.json or %s.yml in the current directory", config.ErrNotFound, config.DefaultBaseName, config.DefaultBaseName)
	}
	if err := s.open(located); err != nil {
		return located, err
	}
	return located, nil
}

// Convert writes cfg as prog.<ext> in the directory of cfg.Path. The source
// file is left in place.
func (s *service) Convert(cfg config.Configuration, target config.Format) (string, error) {
	if !cfg.Exists {
		return "", fmt.Errorf("%w: nothing to convert", config.ErrNotFound)
	}
	if target == config.FormatUnknown {
		return "", fmt.Errorf("%w: no target format given", config.ErrUnsupportedFormat)
	}
	if target == cfg.Format {
		return "", fmt.Errorf("%s is already in %s format", cfg.Path, target)
	}

	out := filepath.Join(filepath.Dir(cfg.Path), config.DefaultBaseName+target.Extension())
	data, err := s.codec.Encode(target, cfg.Aliases)
	if err != nil {
		return "", err
	}
	if err := s.store.Write(out, data); err != nil {
		return "", err
	}
	s.logger.Debug("converted configuration",
		zap.String("from", cfg.Path),
		zap.String("to", out),
		zap.Int("aliases", len(cfg.Aliases)))
	return out, nil
}

// Templates lists the bundled template names.
func (s *service) Templates() []string {
	return s.templates.Names()
}

func (s *service) open(path string) error {
	if s.editor == nil {
		return errors.New("no editor configured")
	}
	if err := s.editor.Open(path); err != nil {
		return fmt.Errorf("could not open %s: %w", path, err)
	}
	return nil
}

// resolveTarget picks the output path and format of Generate. The format
// comes from the explicit format, then the path extension; the path defaults
// to ./prog.<ext> for that format.
func resolveTarget(path string, format config.Format) (string, config.Format, error) {
	if path == "" {
		return config.DefaultPath(format), orJSON(format), nil
	}
	if format != config.FormatUnknown {
		return path, format, nil
	}
	format, err := config.FormatFromPath(path)
	if err != nil {
		return "", config.FormatUnknown, fmt.Errorf("%w, pass --format", err)
	}
	return path, format, nil
}

func orJSON(f config.Format) config.Format {
	if f == config.FormatUnknown {
		return config.FormatJSON
	}
	return f
}
