package framework

// TestLogger observes scenario progress while a suite is running. The
// final Results are authoritative; a TestLogger only affects what is shown
// along the way.
type TestLogger interface {
	TestStarted(id ScenarioID)
	TestError(id ScenarioID, err error)
	TestFinished(id ScenarioID, failed bool, debugOutput CapturedOutput)
	TestSkipped(id ScenarioID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(ScenarioID)                        {}
func (n nullTestLogger) TestError(ScenarioID, error)                   {}
func (n nullTestLogger) TestFinished(ScenarioID, bool, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(ScenarioID, string)                {}
