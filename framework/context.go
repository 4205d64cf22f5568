package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

const skippedByFilter = "excluded by filter parameters"

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the execution scope of one scenario. Scenario functions use
// it to run subscenarios, report failures, and emit debug output that is
// captured and replayed after the scenario ends. It fills the same role
// testing.T does under "go test", but outside the Go test runner: the
// suite runner records pass/fail explicitly rather than relying on stack
// unwinding as the primary signal.
type Context struct {
	env         *environment
	id          ScenarioID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
}

// Run executes a suite of scenarios and returns every recorded outcome.
// The filter, if non-nil, decides which scenarios run; the logger, if
// non-nil, observes progress as it happens. A panic inside a scenario
// fails that scenario only.
func Run(filter Filter, testLogger TestLogger, action func(*Context)) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	root := &Context{env: env}
	root.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				c.record()
				return
			}
			c.failed = true
			var panicErr error
			if _, ok := r.(*Context); ok {
				// FailNow was called; the failure message, if any, is already recorded
				if len(c.errors) == 0 {
					panicErr = errors.New("scenario failed without reporting an error")
				}
			} else {
				panicErr = fmt.Errorf("unexpected panic in scenario: %+v\n%s", r, string(debug.Stack()))
			}
			if panicErr != nil {
				c.errors = append(c.errors, panicErr)
				c.env.testLogger.TestError(c.id, panicErr)
			}
		}
		c.record()
	}()

	action(c)
}

// record appends the scenario's outcome to the suite results. The root
// context only groups scenarios and is not normally recorded, but a
// failure there (a panic while registering scenarios, say) must still
// fail the run: scenarios registered after the panic never got to run.
func (c *Context) record() {
	id := c.id
	if len(id.Path) == 0 {
		if !c.failed {
			return
		}
		id = ScenarioID{Path: []string{"(suite)"}}
	}
	result := ScenarioResult{
		ID:         id,
		Errors:     c.errors,
		Skipped:    c.skipped,
		SkipReason: c.skipReason,
	}
	c.env.results.Scenarios = append(c.env.results.Scenarios, result)
	if c.failed {
		c.env.results.Failures = append(c.env.results.Failures, result)
	}
}

// ID returns the identifier of the current scenario.
func (c *Context) ID() ScenarioID {
	return c.id
}

// Run executes a named subscenario in its own scope. A failure or skip in
// the subscenario does not affect the caller.
func (c *Context) Run(name string, action func(*Context)) {
	id := ScenarioID{Path: append(append([]string(nil), c.id.Path...), name)}

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, skippedByFilter)
		c.env.results.Scenarios = append(c.env.results.Scenarios,
			ScenarioResult{ID: id, Skipped: true, SkipReason: skippedByFilter})
		return
	}

	child := &Context{id: id, env: c.env}
	child.run(action)
	if child.skipped {
		c.env.testLogger.TestSkipped(id, child.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, child.failed, child.debugLogger.Output())
	}
}

// Errorf records a scenario failure without stopping the scenario.
// Assertions call this.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, reformatError(err))
}

// FailNow stops the scenario immediately. The require package calls this
// after Errorf.
func (c *Context) FailNow() {
	panic(c)
}

// Skip stops the scenario and marks it as skipped rather than failed.
func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

// SkipWithReason is Skip with an explanation that appears in the results.
func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Debug records debug output. It is shown only if the test logger chooses
// to replay it when the scenario finishes.
func (c *Context) Debug(format string, args ...interface{}) {
	c.debugLogger.Printf(format, args...)
}

// DebugLogger exposes the scenario's capturing logger so lower-level
// components can write to the same captured output.
func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// reformatError cleans up multi-line assertion messages (testify indents
// them with tabs) so they read well in console output.
func reformatError(err error) error {
	lines := strings.Split(err.Error(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(strings.ReplaceAll(line, "\t", "    "), " ")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return errors.New(strings.Join(out, "\n"))
}
