package pasquans

// SimulatorBackend is the contract every backend implements. Conformance is
// structural: no base type is required, only the three methods.
//
// Backends are constructed per call and discarded after it; a backend that
// keeps internal state is responsible for its own thread-safety.
type SimulatorBackend interface {
	// Name returns the backend's registry key. It must be stable across
	// instantiations with different options.
	Name() string

	// Simulate runs one simulation. Unit-aware backends validate each
	// dimensioned input against its semantic role and convert to their
	// canonical units before computing; a mismatch is a caller error,
	// reported, never silently coerced. The returned result carries at
	// minimum "state_populations" and an echo of "backend_options".
	Simulate(req *SimulationRequest) (Result, error)

	// Information returns backend metadata, at least "name". No side
	// effects; used for introspection and debugging.
	Information() map[string]any
}

// BackendFactory instantiates a backend with backend-specific options.
// Factories are what providers declare; the registry probes each with nil
// options to learn its name.
type BackendFactory func(options map[string]any) (SimulatorBackend, error)
