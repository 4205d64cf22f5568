// Package usertests contains the scenarios of the users API suite. Each
// scenario issues one kind of request, validates the response body against
// its contract model, and asserts on specific field values.
package usertests

import (
	"github.com/servalue/reqres-contract-tests/config"
	"github.com/servalue/reqres-contract-tests/framework"
)

// RunTestSuite runs every users API scenario and returns the results.
// Scenarios are independent: each gets its own API client and shares no
// state with the others, so their relative order carries no meaning.
func RunTestSuite(cfg *config.Config, filter framework.Filter, testLogger framework.TestLogger) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{context: c, cfg: cfg}

		t.Run("list users", DoListUsersTests)
		t.Run("single user", DoSingleUserTests)
		t.Run("missing user", DoMissingUserTests)
	})
}
