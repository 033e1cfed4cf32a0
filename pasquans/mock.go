package pasquans

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/qruise/pasquans-go/pasquans/unit"
)

// mockPopulations is the fixed two-state result both mock backends return
// regardless of input.
var mockPopulations = []float64{0.7, 0.3}

// MockSimulator is a reference backend that exercises the dispatch path
// end to end. It performs no unit validation and no physical computation:
// it returns fixed example populations and echoes the options it was
// invoked with.
type MockSimulator struct {
	options map[string]any
}

// NewMockSimulator is the BackendFactory for MockSimulator.
func NewMockSimulator(options map[string]any) (SimulatorBackend, error) {
	return &MockSimulator{options: options}, nil
}

func (m *MockSimulator) Name() string { return "mock_simulator" }

func (m *MockSimulator) Simulate(req *SimulationRequest) (Result, error) {
	options := req.BackendOptions
	if options == nil {
		options = map[string]any{}
	}
	return Result{
		"state_populations": append([]float64(nil), mockPopulations...),
		"backend_options":   options,
	}, nil
}

func (m *MockSimulator) Information() map[string]any {
	return map[string]any{
		"name":            m.Name(),
		"backend_options": m.options,
	}
}

// Canonical units MockSimulatorV2 converts validated inputs into.
var (
	v2SiteUnit  = unit.Micrometer
	v2DriveUnit = unit.Megahertz
	v2TimeUnit  = unit.Microsecond
)

// MockSimulatorV2 is the unit-aware reference backend: it checks each
// dimensioned input against its semantic role, converts to its canonical
// units (µm, MHz, µs), and verifies the initial state is a normalized
// population vector. The populations it returns are still fixed — only the
// validation path is real.
type MockSimulatorV2 struct {
	options map[string]any
}

// NewMockSimulatorV2 is the BackendFactory for MockSimulatorV2.
func NewMockSimulatorV2(options map[string]any) (SimulatorBackend, error) {
	return &MockSimulatorV2{options: options}, nil
}

func (m *MockSimulatorV2) Name() string { return "mock_simulator_v2" }

func (m *MockSimulatorV2) Simulate(req *SimulationRequest) (Result, error) {
	if err := req.CheckDimensions(); err != nil {
		return nil, err
	}
	if err := req.CheckShapes(); err != nil {
		return nil, err
	}
	if _, err := req.LatticeSites.To(v2SiteUnit); err != nil {
		return nil, err
	}
	for _, drive := range []unit.Quantity{req.GlobalRabiFrequency, req.GlobalDetuning, req.LocalDetuning} {
		if _, err := drive.To(v2DriveUnit); err != nil {
			return nil, err
		}
	}
	if _, err := req.Timegrid.To(v2TimeUnit); err != nil {
		return nil, err
	}
	if len(req.InitState) > 0 {
		if sum := floats.Sum(req.InitState); math.Abs(sum-1) > 1e-9 {
			return nil, fmt.Errorf("init_state populations sum to %v, want 1", sum)
		}
	}

	options := req.BackendOptions
	if options == nil {
		options = map[string]any{}
	}
	return Result{
		"state_populations": append([]float64(nil), mockPopulations...),
		"backend_options":   options,
	}, nil
}

func (m *MockSimulatorV2) Information() map[string]any {
	return map[string]any{
		"name":            m.Name(),
		"backend_options": m.options,
		"canonical_units": map[string]string{
			"lattice_sites": v2SiteUnit.Symbol,
			"drives":        v2DriveUnit.Symbol,
			"timegrid":      v2TimeUnit.Symbol,
		},
	}
}

// MockProvider declares both mock backends.
type MockProvider struct{}

// Simulators implements Provider.
func (MockProvider) Simulators() []BackendFactory {
	return []BackendFactory{NewMockSimulator, NewMockSimulatorV2}
}
