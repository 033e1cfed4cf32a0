package pasquans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qruise/pasquans-go/pasquans/unit"
)

func TestMockSimulator_Information(t *testing.T) {
	backend, err := NewMockSimulator(map[string]any{"shots": 500})
	require.NoError(t, err)

	info := backend.Information()
	assert.Equal(t, "mock_simulator", info["name"])
	assert.Equal(t, map[string]any{"shots": 500}, info["backend_options"])
}

func TestMockSimulator_IgnoresUnits(t *testing.T) {
	// The v1 mock performs no unit validation: a dimensionless request
	// still succeeds.
	backend, err := NewMockSimulator(nil)
	require.NoError(t, err)

	req := exampleRequest("mock_simulator")
	req.GlobalRabiFrequency = unit.New([]float64{1, 1}, unit.Scalar)
	req.LatticeSites = unit.NewCoordinates([][]float64{{0, 0}, {1, 1}}, unit.Scalar)

	result, err := backend.Simulate(req)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.7, 0.3}, result["state_populations"])
}

func TestMockSimulator_EchoesOptions(t *testing.T) {
	backend, err := NewMockSimulator(nil)
	require.NoError(t, err)

	req := exampleRequest("mock_simulator")
	req.BackendOptions = map[string]any{"noise_model": "depolarizing"}

	result, err := backend.Simulate(req)
	require.NoError(t, err)
	assert.Equal(t, req.BackendOptions, result["backend_options"])
}

func TestMockSimulatorV2_ThreeDimensionalSites(t *testing.T) {
	req := exampleRequest("mock_simulator_v2")
	req.LatticeSites = unit.NewCoordinates([][]float64{{0, 0, 0}, {1, 1, 1}}, unit.Micrometer)

	result := Simulate(req, MockProvider{})
	assert.False(t, result.Failed(), "unexpected error: %v", result["error"])
}

func TestMockSimulatorV2_RejectsDenormalizedInitState(t *testing.T) {
	backend, err := NewMockSimulatorV2(nil)
	require.NoError(t, err)

	req := exampleRequest("mock_simulator_v2")
	req.InitState = []float64{0.9, 0.9}

	_, err = backend.Simulate(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init_state")
}

func TestMockSimulatorV2_GroundStateDefault(t *testing.T) {
	// nil init_state means ground state; validation does not reject it.
	req := exampleRequest("mock_simulator_v2")
	req.InitState = nil

	result := Simulate(req, MockProvider{})
	assert.False(t, result.Failed(), "unexpected error: %v", result["error"])
}

func TestMockSimulatorV2_InformationListsCanonicalUnits(t *testing.T) {
	backend, err := NewMockSimulatorV2(nil)
	require.NoError(t, err)

	info := backend.Information()
	assert.Equal(t, "mock_simulator_v2", info["name"])
	units, ok := info["canonical_units"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "MHz", units["drives"])
}

func TestMockProvider_DeclaresBothMocks(t *testing.T) {
	registry, err := NewRegistry(MockProvider{})
	require.NoError(t, err)
	assert.Equal(t, []string{"mock_simulator", "mock_simulator_v2"}, registry.Names())
}
