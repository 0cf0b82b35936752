package testutil

import (
	"errors"
	"sort"
)

// MockTemplateProvider is a mock implementation of ports.TemplateProvider
// serving the templates in Templates.
type MockTemplateProvider struct {
	Templates map[string]map[string]string
}

func (m *MockTemplateProvider) Names() []string {
	names := make([]string, 0, len(m.Templates))
	for name := range m.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *MockTemplateProvider) Template(name string) (map[string]string, error) {
	if name == "" {
		name = "default"
	}
	tmpl, ok := m.Templates[name]
	if !ok {
		return nil, errors.New("MockTemplateProvider: unknown template " + name)
	}
	return tmpl, nil
}
