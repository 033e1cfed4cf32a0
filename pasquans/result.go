package pasquans

// Result is the open mapping a simulation call returns. Conventional keys:
// "state_populations" ([]float64), "backend_options", "backend_information",
// and "error". The dispatch layer constrains nothing beyond the error
// convention below.
type Result map[string]any

// Failed reports whether the result carries an "error" key. Its absence is
// the only documented success discriminator.
func (r Result) Failed() bool {
	_, ok := r["error"]
	return ok
}

// StatePopulations returns the per-state populations, accepting either the
// "state_populations" or the legacy "populations" key. The second return is
// false when neither key holds a []float64.
func (r Result) StatePopulations() ([]float64, bool) {
	for _, key := range []string{"state_populations", "populations"} {
		if pops, ok := r[key].([]float64); ok {
			return pops, true
		}
	}
	return nil, false
}

// errorResult builds a failure result from an error.
func errorResult(err error) Result {
	return Result{"error": err.Error()}
}
