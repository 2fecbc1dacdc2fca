package report

import (
	"fmt"
	"sort"
)

// Registry maps format names to renderers.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
	}
}

// DefaultRegistry returns a registry holding the debug, json, yaml and text
// renderers.
func DefaultRegistry() (*Registry, error) {
	text, err := NewText()
	if err != nil {
		return nil, err
	}
	r := NewRegistry()
	for _, renderer := range []Renderer{NewDebug(), NewJSON(), NewYAML(), text} {
		if err := r.Register(renderer); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a renderer by its Name(). Duplicate names return an error.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil || renderer.Name() == "" {
		return fmt.Errorf("report: named renderer is required")
	}
	name := renderer.Name()
	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("report: renderer %q already registered", name)
	}
	r.renderers[name] = renderer
	return nil
}

// Get retrieves a renderer by format name.
func (r *Registry) Get(name string) (Renderer, error) {
	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("report: format %q not found (available: %v)", name, r.List())
	}
	return renderer, nil
}

// List returns the sorted format names.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
