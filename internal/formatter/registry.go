package formatter

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
)

// ===== Errors =====

// ErrUnknownFormatter is returned when a name is not in the registry.
var ErrUnknownFormatter = errors.New("unknown formatter")

// errNilTemplate is returned when trying to register a nil template.
var errNilTemplate = fmt.Errorf("cannot register nil template")

// errEmptyName is returned when trying to register a descriptor without a name.
var errEmptyName = fmt.Errorf("cannot register formatter without a name")

// ===== Registry =====

// Registration pairs a descriptor with its template.
type Registration struct {
	Descriptor Descriptor
	Template   Template
}

// Registry manages formatter registrations.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*Registration
}

var (
	globalRegistry *Registry
	once           sync.Once
)

// Global returns the singleton registry instance.
func Global() *Registry {
	once.Do(func() {
		globalRegistry = NewRegistry()
	})
	return globalRegistry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]*Registration),
	}
}

// Register adds a formatter descriptor and its template.
func (r *Registry) Register(desc Descriptor, tmpl Template) error {
	if desc.Name == "" {
		return errEmptyName
	}
	if tmpl == nil {
		return errNilTemplate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Warn on duplicate registration (init order issues)
	if _, exists := r.tools[desc.Name]; exists {
		log.Printf("warning: formatter already registered: %s (ignoring duplicate)", desc.Name)
		return nil
	}

	r.tools[desc.Name] = &Registration{
		Descriptor: desc,
		Template:   tmpl,
	}

	return nil
}

// Get returns the descriptor registered under name.
func (r *Registry) Get(name string) (Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if reg, ok := r.tools[name]; ok {
		return reg.Descriptor, nil
	}
	return Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownFormatter, name)
}

// Template returns the template registered under name.
func (r *Registry) Template(name string) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if reg, ok := r.tools[name]; ok {
		return reg.Template, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormatter, name)
}

// All returns every descriptor in registry order.
func (r *Registry) All() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descs := make([]Descriptor, 0, len(r.tools))
	for _, reg := range r.tools {
		descs = append(descs, reg.Descriptor)
	}
	sort.Slice(descs, func(i, j int) bool {
		if descs[i].Order != descs[j].Order {
			return descs[i].Order < descs[j].Order
		}
		return descs[i].Name < descs[j].Name
	})
	return descs
}

// Names returns all registered formatter names in registry order.
func (r *Registry) Names() []string {
	descs := r.All()
	names := make([]string, 0, len(descs))
	for _, d := range descs {
		names = append(names, d.Name)
	}
	return names
}

// Select returns the descriptors for names, in registry order.
// Unknown names yield ErrUnknownFormatter.
func (r *Registry) Select(names []string) ([]Descriptor, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		if _, err := r.Get(n); err != nil {
			return nil, err
		}
		want[n] = true
	}

	var selected []Descriptor
	for _, d := range r.All() {
		if want[d.Name] {
			selected = append(selected, d)
		}
	}
	return selected, nil
}
