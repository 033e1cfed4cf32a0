package pasquans

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Simulate resolves req.Backend through the provider, runs the simulation,
// and returns the backend's result. Every failure class — registry
// construction, unknown backend name, an error returned by the backend, or
// a panic inside it — surfaces as an "error" entry in the result rather
// than a fault crossing this boundary, so callers have a single success
// predicate. Whenever a backend was resolved the result also carries its
// "backend_information", success or not.
//
// There is no retry, no timeout, and no partial result: one request, one
// backend instance, one response.
func Simulate(req *SimulationRequest, provider Provider) Result {
	registry, err := NewRegistry(provider)
	if err != nil {
		return errorResult(err)
	}
	backend, err := registry.Backend(req.Backend, req.BackendOptions)
	if err != nil {
		return errorResult(err)
	}

	result := invoke(backend, req)
	result["backend_information"] = backend.Information()
	return result
}

// invoke runs the backend and normalizes its three failure shapes (error
// return, nil result, panic) into error results.
func invoke(backend SimulatorBackend, req *SimulationRequest) (result Result) {
	defer func() {
		if rec := recover(); rec != nil {
			logrus.Warnf("backend %q panicked: %v", backend.Name(), rec)
			result = errorResult(fmt.Errorf("backend %q panicked: %v", backend.Name(), rec))
		}
	}()

	result, err := backend.Simulate(req)
	if err != nil {
		return errorResult(err)
	}
	if result == nil {
		return errorResult(fmt.Errorf("backend %q returned no result", backend.Name()))
	}
	return result
}
