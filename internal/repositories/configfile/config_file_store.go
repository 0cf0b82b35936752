package configfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/prog/internal/core/domain/config"
	"github.com/AntonioJCosta/prog/internal/core/ports"
	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"
)

// ConfigFileStore reads and writes prog configuration files on the file system.
type ConfigFileStore struct {
	dir    string
	codec  ports.ConfigCodec
	logger *zap.Logger
}

// NewConfigFileStore creates a store resolving default file names in dir.
// An empty dir means the current working directory.
func NewConfigFileStore(dir string, codec ports.ConfigCodec, logger *zap.Logger) ports.ConfigStore {
	if codec == nil {
		panic("codec cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfigFileStore{dir: dir, codec: codec, logger: logger}
}

// Locate implements the ports.ConfigStore interface.
func (s *ConfigFileStore) Locate(explicit string) (string, bool, error) {
	if explicit != "" {
		path, err := homedir.Expand(explicit)
		if err != nil {
			return "", false, fmt.Errorf("failed to expand path %s: %w", explicit, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", false, fmt.Errorf("%w: %s", config.ErrNotFound, explicit)
			}
			return "", false, fmt.Errorf("failed to stat %s: %w", explicit, err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("%s is a directory, not a configuration file", explicit)
		}
		return path, true, nil
	}

	for _, candidate := range s.defaultCandidates() {
		if fileExists(candidate) {
			s.logger.Debug("found configuration file", zap.String("path", candidate))
			return candidate, true, nil
		}
	}
	fallback := s.defaultCandidates()[0]
	s.logger.Debug("no configuration file found", zap.String("path", fallback))
	return fallback, false, nil
}

// Load implements the ports.ConfigStore interface.
func (s *ConfigFileStore) Load(path string, format config.Format) (config.Configuration, error) {
	if format == config.FormatUnknown {
		var err error
		format, err = config.FormatFromPath(path)
		if err != nil {
			return config.Configuration{}, err
		}
	}

	cfg := config.Configuration{Path: path, Format: format, Aliases: map[string]string{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return config.Configuration{}, fmt.Errorf("failed to read configuration file %s: %w", toUserFriendlyPath(path), err)
	}

	aliases, err := s.codec.Decode(format, data)
	if err != nil {
		var parseErr *config.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = toUserFriendlyPath(path)
		}
		return config.Configuration{}, err
	}

	cfg.Exists = true
	cfg.Aliases = aliases
	s.logger.Debug("loaded configuration",
		zap.String("path", path),
		zap.Stringer("format", format),
		zap.Int("aliases", len(aliases)))
	return cfg, nil
}

// Write implements the ports.ConfigStore interface.
func (s *ConfigFileStore) Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: failed to create directory %s: %v", config.ErrWrite, dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", config.ErrWrite, toUserFriendlyPath(path), err)
	}
	s.logger.Debug("wrote configuration file", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}
