package pasquans

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/qruise/pasquans-go/pasquans/unit"
)

// QuantitySpec is the YAML shape of a unit-tagged value array.
type QuantitySpec struct {
	Values []float64 `yaml:"values"`
	Unit   string    `yaml:"unit,omitempty"`
}

// quantity parses the unit symbol and builds the quantity.
func (q *QuantitySpec) quantity(field string) (unit.Quantity, error) {
	u, err := unit.Parse(q.Unit)
	if err != nil {
		return unit.Quantity{}, fmt.Errorf("%s: %w", field, err)
	}
	return unit.New(q.Values, u), nil
}

// JobSpec is the YAML description of one simulation request.
// Loaded via LoadJobSpec(path).
type JobSpec struct {
	LatticeSites        [][]float64    `yaml:"lattice_sites"`
	LatticeUnit         string         `yaml:"lattice_unit,omitempty"`
	GlobalRabiFrequency QuantitySpec   `yaml:"global_rabi_frequency"`
	GlobalPhase         QuantitySpec   `yaml:"global_phase"`
	GlobalDetuning      QuantitySpec   `yaml:"global_detuning"`
	LocalDetuning       QuantitySpec   `yaml:"local_detuning"`
	InitState           []float64      `yaml:"init_state,omitempty"`
	Timegrid            QuantitySpec   `yaml:"timegrid"`
	Backend             string         `yaml:"backend"`
	BackendOptions      map[string]any `yaml:"backend_options,omitempty"`
}

// LoadJobSpec reads and strictly decodes a job spec; unknown fields are
// rejected so typos fail loudly instead of silently dropping a drive.
func LoadJobSpec(path string) (*JobSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job spec: %w", err)
	}
	var spec JobSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing job spec: %w", err)
	}
	return &spec, nil
}

// Validate checks structural consistency before request construction.
func (s *JobSpec) Validate() error {
	if s.Backend == "" {
		return fmt.Errorf("backend name required")
	}
	if len(s.LatticeSites) == 0 {
		return fmt.Errorf("at least one lattice site required")
	}
	if len(s.Timegrid.Values) == 0 {
		return fmt.Errorf("timegrid must not be empty")
	}
	return nil
}

// Request parses units and builds the SimulationRequest this job describes.
func (s *JobSpec) Request() (*SimulationRequest, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.LatticeUnit == "" {
		logrus.Warnf("job spec has no lattice_unit; positions are treated as dimensionless and will be rejected by unit-aware backends")
	}
	latticeUnit, err := unit.Parse(s.LatticeUnit)
	if err != nil {
		return nil, fmt.Errorf("lattice_unit: %w", err)
	}
	rabi, err := s.GlobalRabiFrequency.quantity("global_rabi_frequency")
	if err != nil {
		return nil, err
	}
	phase, err := s.GlobalPhase.quantity("global_phase")
	if err != nil {
		return nil, err
	}
	globalDetuning, err := s.GlobalDetuning.quantity("global_detuning")
	if err != nil {
		return nil, err
	}
	localDetuning, err := s.LocalDetuning.quantity("local_detuning")
	if err != nil {
		return nil, err
	}
	timegrid, err := s.Timegrid.quantity("timegrid")
	if err != nil {
		return nil, err
	}
	return &SimulationRequest{
		LatticeSites:        unit.NewCoordinates(s.LatticeSites, latticeUnit),
		GlobalRabiFrequency: rabi,
		GlobalPhase:         phase,
		GlobalDetuning:      globalDetuning,
		LocalDetuning:       localDetuning,
		InitState:           s.InitState,
		Timegrid:            timegrid,
		Backend:             s.Backend,
		BackendOptions:      s.BackendOptions,
	}, nil
}
