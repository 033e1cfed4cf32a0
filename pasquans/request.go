package pasquans

import (
	"fmt"

	"github.com/qruise/pasquans-go/pasquans/unit"
)

// SimulationRequest groups the inputs of one simulation call. Every field is
// supplied by the caller; nothing survives the call.
type SimulationRequest struct {
	LatticeSites        unit.Coordinates // atom positions, 2D or 3D, length unit
	GlobalRabiFrequency unit.Quantity    // time-dependent global Rabi frequency
	GlobalPhase         unit.Quantity    // time-dependent global phase (angle or dimensionless)
	GlobalDetuning      unit.Quantity    // time-dependent global detuning
	LocalDetuning       unit.Quantity    // per-site detuning, in lattice-site order
	InitState           []float64        // initial state vector (nil = ground state)
	Timegrid            unit.Quantity    // simulation time points
	Backend             string           // backend name to resolve through the provider
	BackendOptions      map[string]any   // backend-specific configuration, open map
}

// CheckDimensions validates every dimensioned field against its semantic
// role: length for lattice sites, frequency for Rabi and detuning terms,
// angle (or dimensionless) for phase, time for the time grid. It reports
// the first violation and checks nothing else; unit-aware backends call
// this before converting.
func (r *SimulationRequest) CheckDimensions() error {
	if err := r.LatticeSites.CheckDimension("lattice_sites"); err != nil {
		return err
	}
	if err := r.GlobalRabiFrequency.CheckDimension("global_rabi_frequency", unit.Frequency); err != nil {
		return err
	}
	if err := r.GlobalPhase.CheckDimension("global_phase", unit.Angle); err != nil {
		return err
	}
	if err := r.GlobalDetuning.CheckDimension("global_detuning", unit.Frequency); err != nil {
		return err
	}
	if err := r.LocalDetuning.CheckDimension("local_detuning", unit.Frequency); err != nil {
		return err
	}
	return r.Timegrid.CheckDimension("timegrid", unit.Time)
}

// CheckShapes validates cross-field lengths: the local detuning covers every
// lattice site and the global drives share the timegrid's sample count.
func (r *SimulationRequest) CheckShapes() error {
	if n, sites := len(r.LocalDetuning.Values), r.LatticeSites.Len(); n != sites {
		return fmt.Errorf("local_detuning has %d entries for %d lattice sites", n, sites)
	}
	steps := len(r.Timegrid.Values)
	for _, drive := range []struct {
		name string
		q    unit.Quantity
	}{
		{"global_rabi_frequency", r.GlobalRabiFrequency},
		{"global_phase", r.GlobalPhase},
		{"global_detuning", r.GlobalDetuning},
	} {
		if len(drive.q.Values) != steps {
			return fmt.Errorf("%s has %d samples for %d timegrid points", drive.name, len(drive.q.Values), steps)
		}
	}
	return nil
}
