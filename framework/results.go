package framework

import (
	"strings"
)

// ScenarioID identifies a scenario by the names of the nested Run calls
// that produced it, joined with slashes (e.g. "single user/user 1 has the
// expected profile").
type ScenarioID struct {
	Path []string
}

func (id ScenarioID) String() string {
	return strings.Join(id.Path, "/")
}

// ScenarioResult is the recorded outcome of one scenario. A scenario with
// no errors and Skipped false passed.
type ScenarioResult struct {
	ID         ScenarioID
	Errors     []error
	Skipped    bool
	SkipReason string
}

// Failed returns true if the scenario reported at least one error.
func (r ScenarioResult) Failed() bool {
	return len(r.Errors) > 0
}

// Results accumulates the outcomes of an entire suite run. Failures holds
// the subset of Scenarios that failed, in the order they were recorded.
type Results struct {
	Scenarios []ScenarioResult
	Failures  []ScenarioResult
}

// OK returns true if no scenario failed.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// RunCount returns how many scenarios were actually executed.
func (r Results) RunCount() int {
	return len(r.Scenarios) - r.SkipCount()
}

// SkipCount returns how many scenarios were skipped.
func (r Results) SkipCount() int {
	n := 0
	for _, s := range r.Scenarios {
		if s.Skipped {
			n++
		}
	}
	return n
}
