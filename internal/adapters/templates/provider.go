package templates

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"

	"github.com/AntonioJCosta/prog/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// DefaultTemplate is used by --generate when no template is named.
const DefaultTemplate = "default"

//go:embed templates.yml
var embeddedTemplates []byte

// EmbeddedProvider implements ports.TemplateProvider from the templates
// compiled into the binary.
type EmbeddedProvider struct {
	templates map[string]map[string]string
}

// NewEmbeddedProvider parses the embedded templates.
func NewEmbeddedProvider() (ports.TemplateProvider, error) {
	return newProviderFromBytes(embeddedTemplates)
}

func newProviderFromBytes(data []byte) (*EmbeddedProvider, error) {
	parsed := map[string]map[string]string{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal embedded templates: %w", err)
	}
	if _, ok := parsed[DefaultTemplate]; !ok {
		return nil, fmt.Errorf("embedded templates are missing the %q template", DefaultTemplate)
	}
	return &EmbeddedProvider{templates: parsed}, nil
}

// Names implements the ports.TemplateProvider interface.
func (p *EmbeddedProvider) Names() []string {
	names := make([]string, 0, len(p.templates))
	for name := range p.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Template implements the ports.TemplateProvider interface.
// The returned map is a copy and may be modified by the caller.
func (p *EmbeddedProvider) Template(name string) (map[string]string, error) {
	if name == "" {
		name = DefaultTemplate
	}
	tmpl, ok := p.templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q (available: %v)", name, p.Names())
	}
	out := make(map[string]string, len(tmpl))
	for k, v := range tmpl {
		out[k] = v
	}
	return out, nil
}
