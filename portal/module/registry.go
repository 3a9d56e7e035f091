package module

import "fmt"

// Registry is an ordered, read-only set of modules.
type Registry struct {
	modules []Module
	index   map[string]int
}

// NewRegistry creates a registry preserving the supplied order. Later
// duplicates of an id are ignored.
func NewRegistry(modules ...Module) *Registry {
	r := &Registry{index: make(map[string]int, len(modules))}
	for _, m := range modules {
		if _, dup := r.index[m.ID]; dup {
			continue
		}
		r.index[m.ID] = len(r.modules)
		r.modules = append(r.modules, m)
	}
	return r
}

// Modules returns a copy of all modules in display order.
func (r *Registry) Modules() []Module {
	out := make([]Module, len(r.modules))
	copy(out, r.modules)
	return out
}

// Lookup returns the module with the given id.
func (r *Registry) Lookup(id string) (Module, error) {
	idx, ok := r.index[id]
	if !ok {
		return Module{}, fmt.Errorf("%w: %q", ErrUnknownModule, id)
	}
	return r.modules[idx], nil
}

// Target returns the launch URL for id, or ErrNotConfigured wrapped with the
// module warning.
func (r *Registry) Target(id string) (string, error) {
	m, err := r.Lookup(id)
	if err != nil {
		return "", err
	}
	link := m.Link()
	if !link.Active {
		return "", fmt.Errorf("%w: %s", ErrNotConfigured, link.Warning)
	}
	return link.Href, nil
}

// Status is the machine-readable gate result of one module.
type Status struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Label      string `json:"label,omitempty"`
	URL        string `json:"url,omitempty"`
	Configured bool   `json:"configured"`
	Warning    string `json:"warning,omitempty"`
}

// Status returns the gate result of a module.
func (m *Module) Status() Status {
	link := m.Link()
	return Status{
		ID:         m.ID,
		Title:      m.Title,
		Label:      link.Label,
		URL:        link.Href,
		Configured: link.Active,
		Warning:    link.Warning,
	}
}

// Statuses returns the gate result of every module in display order.
func (r *Registry) Statuses() []Status {
	out := make([]Status, 0, len(r.modules))
	for i := range r.modules {
		out = append(out, r.modules[i].Status())
	}
	return out
}
