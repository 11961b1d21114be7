package ports

// TemplateStore defines the interface for looking up source templates.
//
//go:generate mockgen -source=templates.go -destination=mocks/mock_templates.go -package=mocks
type TemplateStore interface {
	// Get returns the named template, falling back to a builtin of the same name.
	Get(name string) (string, error)

	// List returns the template directory and the names of the templates in it.
	List() (dir string, names []string, err error)
}
