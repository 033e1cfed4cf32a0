// Package pasquans dispatches simulation requests to pluggable
// quantum-simulator backends resolved by name through a provider.
//
// # Reading Guide
//
// Start with these three files to understand the dispatch path:
//   - backend.go: the SimulatorBackend contract and BackendFactory
//   - provider.go: Provider declaration and the name-keyed Registry
//   - simulate.go: Simulate, the single uniform entry point
//
// # Architecture
//
// The package holds no state across calls: each Simulate call builds a
// registry from the provider's declared factories, instantiates one backend
// with the supplied options, invokes it, and discards it. Implementations
// live wherever their authors put them; anything satisfying SimulatorBackend
// can be declared by a Provider. Reference implementations are in mock.go.
//
// Physical inputs carry explicit units (see the unit sub-package). Unit
// validation is a backend concern: a unit-aware backend checks each
// argument's dimension against its semantic role and converts to its own
// canonical units before computing. The dispatch layer enforces only the
// result convention.
//
// # Result Convention
//
// Results are open maps. The presence of an "error" key is the only
// success/failure discriminator: every failure class (unknown backend,
// dimension mismatch, backend error, backend panic) surfaces as data under
// that key, never as an uncaught fault crossing the dispatch boundary.
// Successful results carry "state_populations" and an echo of
// "backend_options"; "backend_information" is attached whenever a backend
// was resolved.
package pasquans
