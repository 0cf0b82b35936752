package ports

import "github.com/AntonioJCosta/prog/internal/core/domain/config"

// ConfigStore reads and writes configuration files.
type ConfigStore interface {
	// Locate resolves the effective configuration path. An explicit path must
	// exist; otherwise the default file names are tried in order and the first
	// one present wins. exists is false when no default file was found.
	Locate(explicit string) (path string, exists bool, err error)
	// Load reads and decodes the file at path. A missing file yields an empty
	// configuration with Exists set to false.
	Load(path string, format config.Format) (config.Configuration, error)
	// Write replaces the file at path with data.
	Write(path string, data []byte) error
}
