package main

import (
	"fmt"
	"os"

	"github.com/servalue/reqres-contract-tests/config"
	"github.com/servalue/reqres-contract-tests/framework"
	"github.com/servalue/reqres-contract-tests/usertests"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	var cfg *config.Config
	if params.envFile != "" {
		cfg = config.Load(params.envFile)
	} else {
		cfg = config.Load()
	}
	if cfg.BaseURL == "" {
		fmt.Fprintln(os.Stderr, "BASE_URL must be set in the environment or a dotenv file")
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(params.filters)
	fmt.Printf("Running scenarios against %s\n\n", cfg.BaseURL)

	testLogger := &framework.ConsoleTestLogger{
		Output:               os.Stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := usertests.RunTestSuite(cfg, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To rerun only the failed scenarios:")
		fmt.Printf("  %s\n", rerunCommand(os.Args[0], params, results.Failures))
		os.Exit(1)
	}
}
