package check

// Result holds the outcome of a single check.
type Result struct {
	Label  string // e.g., "Build", "Biome check"
	Action Action // what was run
	Passed bool
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Passed
}

// AllPassed reports whether every result passed. An empty slice passes.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
