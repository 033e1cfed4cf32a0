package pasquans

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Provider declares a set of backend factories. This is the single method a
// concrete provider implements; resolution is derived by the Registry.
type Provider interface {
	Simulators() []BackendFactory
}

var (
	// ErrBackendNotFound reports a lookup for a name no declared backend
	// carries.
	ErrBackendNotFound = errors.New("backend not found")

	// ErrDuplicateBackend reports two declared factories reporting the
	// same name. Declaration order must never decide which one wins, so
	// registration fails instead.
	ErrDuplicateBackend = errors.New("duplicate backend name")
)

// Registry resolves backend names to factories. It is built once from a
// provider's declared factories and holds no other state.
type Registry struct {
	factories map[string]BackendFactory
	names     []string // sorted, for deterministic listings
}

// NewRegistry builds a registry from the provider's declared factories.
// Each factory is probed with nil options to learn its self-reported name.
// A factory that fails to instantiate, or a name declared twice, is a
// registration error.
func NewRegistry(p Provider) (*Registry, error) {
	factories := make(map[string]BackendFactory)
	var names []string
	for i, factory := range p.Simulators() {
		probe, err := factory(nil)
		if err != nil {
			return nil, fmt.Errorf("backend %d could not be instantiated: %w", i, err)
		}
		name := probe.Name()
		if _, exists := factories[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateBackend, name)
		}
		factories[name] = factory
		names = append(names, name)
		logrus.Debugf("registered backend %q", name)
	}
	sort.Strings(names)
	return &Registry{factories: factories, names: names}, nil
}

// Names returns the registered backend names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Backend instantiates the named backend with the supplied options.
func (r *Registry) Backend(name string, options map[string]any) (SimulatorBackend, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: the %q backend is not installed", ErrBackendNotFound, name)
	}
	return factory(options)
}
