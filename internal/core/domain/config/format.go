package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format tags the markup language of a configuration file.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Extension returns the file extension, dot included, used when a path is
// derived for this format.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yml"
	default:
		return ""
	}
}

// ParseFormat maps a user supplied name ("json", "yaml", "yml") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q (expected json or yaml)", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath derives the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: cannot infer format of %s from its extension", ErrUnsupportedFormat, path)
	}
}

// DefaultPath is the configuration file prog looks for in the working
// directory for the given format.
func DefaultPath(f Format) string {
	if f == FormatUnknown {
		f = FormatJSON
	}
	return "." + string(filepath.Separator) + DefaultBaseName + f.Extension()
}
