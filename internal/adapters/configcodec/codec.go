package configcodec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/prog/internal/core/domain/config"
	"github.com/AntonioJCosta/prog/internal/core/ports"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Codec implements ports.ConfigCodec for JSON and YAML documents.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() ports.ConfigCodec {
	return &Codec{}
}

// Decode parses data as a flat mapping of alias names to command lines.
// Empty or whitespace-only input decodes to an empty mapping.
func (c *Codec) Decode(format config.Format, data []byte) (map[string]string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]string{}, nil
	}

	var raw interface{}
	switch format {
	case config.FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, &config.ParseError{Format: format, Err: err}
		}
		// yaml.v3 rejects repeated keys itself; JSON decoding keeps the last one.
		if key, ok := duplicateJSONKey(data); ok {
			return nil, &config.ParseError{Format: format, Err: fmt.Errorf("alias %q is defined more than once", key)}
		}
	case config.FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		if err := decoder.Decode(&raw); err != nil {
			// A document holding only comments or "---" has no content.
			if errors.Is(err, io.EOF) {
				return map[string]string{}, nil
			}
			return nil, &config.ParseError{Format: format, Err: err}
		}
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnsupportedFormat, format)
	}

	aliases, err := flatten(raw)
	if err != nil {
		return nil, &config.ParseError{Format: format, Err: err}
	}
	return aliases, nil
}

// Encode renders aliases in the given format. Keys are written in sorted order.
func (c *Codec) Encode(format config.Format, aliases map[string]string) ([]byte, error) {
	if aliases == nil {
		aliases = map[string]string{}
	}
	switch format {
	case config.FormatJSON:
		out, err := json.MarshalIndent(aliases, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json configuration: %w", err)
		}
		return append(out, '\n'), nil
	case config.FormatYAML:
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(aliases); err != nil {
			return nil, fmt.Errorf("failed to encode yaml configuration: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml configuration: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnsupportedFormat, format)
	}
}
