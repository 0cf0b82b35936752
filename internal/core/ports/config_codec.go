package ports

import "github.com/AntonioJCosta/prog/internal/core/domain/config"

// ConfigCodec converts between file contents and the alias mapping.
type ConfigCodec interface {
	Decode(format config.Format, data []byte) (map[string]string, error)
	Encode(format config.Format, aliases map[string]string) ([]byte, error)
}
