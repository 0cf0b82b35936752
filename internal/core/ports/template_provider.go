package ports

// TemplateProvider supplies the bundled configuration templates.
type TemplateProvider interface {
	// Names lists the available templates, sorted.
	Names() []string
	// Template returns the aliases of the named template.
	Template(name string) (map[string]string, error)
}
