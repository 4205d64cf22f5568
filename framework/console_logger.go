package framework

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
	skipColor = color.New(color.FgYellow)
)

// ConsoleTestLogger reports scenario progress on the console as the suite
// runs. Debug output captured during a scenario is replayed according to
// the DebugOutput settings.
type ConsoleTestLogger struct {
	Output               io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) out() io.Writer {
	if c.Output == nil {
		return os.Stdout
	}
	return c.Output
}

func (c *ConsoleTestLogger) TestStarted(id ScenarioID) {
	fmt.Fprintf(c.out(), "[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id ScenarioID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.out(), "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id ScenarioID, failed bool, debugOutput CapturedOutput) {
	if failed {
		failColor.Fprintf(c.out(), "  FAILED: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.out(), "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id ScenarioID, reason string) {
	if reason == "" {
		skipColor.Fprintf(c.out(), "  SKIPPED: %s\n", id)
	} else {
		skipColor.Fprintf(c.out(), "  SKIPPED: %s (%s)\n", id, reason)
	}
}

// PrintResults writes the end-of-run summary for a suite.
func PrintResults(w io.Writer, results Results) {
	if results.OK() {
		passColor.Fprintf(w, "All scenarios passed (%d run, %d skipped)\n",
			results.RunCount(), results.SkipCount())
		return
	}
	failColor.Fprintf(w, "Failed scenarios (%d of %d run):\n",
		len(results.Failures), results.RunCount())
	for _, f := range results.Failures {
		fmt.Fprintf(w, "  %s\n", f.ID)
	}
}
