package pasquans

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// namedBackend is a minimal SimulatorBackend for registry tests.
type namedBackend struct {
	name string
}

func (b *namedBackend) Name() string { return b.name }

func (b *namedBackend) Simulate(_ *SimulationRequest) (Result, error) {
	return Result{"state_populations": []float64{1}, "backend_options": map[string]any{}}, nil
}

func (b *namedBackend) Information() map[string]any {
	return map[string]any{"name": b.name}
}

// factoryProvider declares a fixed factory list.
type factoryProvider struct {
	factories []BackendFactory
}

func (p factoryProvider) Simulators() []BackendFactory { return p.factories }

func namedFactory(name string) BackendFactory {
	return func(_ map[string]any) (SimulatorBackend, error) {
		return &namedBackend{name: name}, nil
	}
}

func TestNewRegistry_KeysByReportedName(t *testing.T) {
	registry, err := NewRegistry(factoryProvider{factories: []BackendFactory{
		namedFactory("zeta"), namedFactory("alpha"),
	}})
	require.NoError(t, err)

	// Names are sorted regardless of declaration order.
	assert.Equal(t, []string{"alpha", "zeta"}, registry.Names())
}

func TestRegistry_UnknownBackend(t *testing.T) {
	registry, err := NewRegistry(MockProvider{})
	require.NoError(t, err)

	_, err = registry.Backend("nonexistent", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBackendNotFound))
}

func TestNewRegistry_DuplicateNameRejected(t *testing.T) {
	_, err := NewRegistry(factoryProvider{factories: []BackendFactory{
		namedFactory("twin"), namedFactory("twin"),
	}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateBackend))
	assert.Contains(t, err.Error(), "twin")
}

func TestNewRegistry_FactoryFailureSurfaces(t *testing.T) {
	broken := func(_ map[string]any) (SimulatorBackend, error) {
		return nil, fmt.Errorf("missing shared library")
	}
	_, err := NewRegistry(factoryProvider{factories: []BackendFactory{broken}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not be instantiated")
}

func TestRegistry_LookupIsDeterministic(t *testing.T) {
	registry, err := NewRegistry(MockProvider{})
	require.NoError(t, err)

	first, err := registry.Backend("mock_simulator", map[string]any{"shots": 100})
	require.NoError(t, err)
	second, err := registry.Backend("mock_simulator", map[string]any{"shots": 100})
	require.NoError(t, err)

	assert.Equal(t, first.Information(), second.Information())
}

func TestRegistry_NameRoundTrip(t *testing.T) {
	// Information()["name"] equals the name the backend registered under.
	registry, err := NewRegistry(MockProvider{})
	require.NoError(t, err)

	for _, name := range registry.Names() {
		backend, err := registry.Backend(name, nil)
		require.NoError(t, err)
		assert.Equal(t, name, backend.Information()["name"])
		assert.Equal(t, name, backend.Name())
	}
}
