package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/servalue/reqres-contract-tests/framework"
)

type commandParams struct {
	envFile  string
	filters  framework.RegexFilters
	debug    bool
	debugAll bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.envFile, "env", "", "path to a dotenv file with API settings")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select scenarios to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select scenarios not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed scenarios")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all scenarios")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a shell command that reruns exactly the scenarios
// that failed in this run.
func rerunCommand(program string, params commandParams, failures []framework.ScenarioResult) string {
	var b commandBuilder
	b.add(program)
	if params.envFile != "" {
		b.add("-env", params.envFile)
	}
	for _, f := range failures {
		b.add("-run", rerunPattern(f.ID))
	}
	return b.String()
}

// rerunPattern builds a regex matching the scenario and each of its
// ancestor groups; the groups must pass the filter too or the run never
// descends to the scenario itself.
func rerunPattern(id framework.ScenarioID) string {
	parts := id.Path
	pattern := regexp.QuoteMeta(parts[len(parts)-1])
	for i := len(parts) - 2; i >= 0; i-- {
		pattern = regexp.QuoteMeta(parts[i]) + "(/" + pattern + ")?"
	}
	return "^" + pattern + "$"
}
