package usertests

import (
	"context"

	"github.com/stretchr/testify/require"

	"github.com/servalue/reqres-contract-tests/config"
	"github.com/servalue/reqres-contract-tests/framework"
	"github.com/servalue/reqres-contract-tests/restapi"
)

// T represents one scenario in the users API suite.
//
// It implements the surface the assert and require packages need (Errorf
// and FailNow), so testify assertions can be used against it even though
// the suite runs outside the Go test runner. Each T owns an API client
// scoped to its scenario; the client is released when the scenario
// returns, so no connection outlives the scenario that opened it.
type T struct {
	context *framework.Context
	cfg     *config.Config
	client  *restapi.Client
}

func newScenarioScope(context *framework.Context, cfg *config.Config) *T {
	return &T{
		context: context,
		cfg:     cfg,
		client:  restapi.New(cfg, context.DebugLogger()),
	}
}

func (t *T) close() {
	if t.client != nil {
		t.client.Close()
	}
}

// Errorf records a scenario failure without stopping the scenario. The
// assert package calls this.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow records a failure and stops the scenario immediately. The
// require package calls this.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run executes a named subscenario with its own scenario-scoped client.
func (t *T) Run(name string, action func(*T)) {
	var child *T
	t.context.Run(name, func(c *framework.Context) {
		child = newScenarioScope(c, t.cfg)
		action(child)
	})
	if child != nil {
		child.close()
	}
}

// Debug records debug output that the console logger can replay after the
// scenario finishes.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// RequireUserList issues the list request, failing the scenario on a
// transport error. Non-200 statuses are returned for the scenario to judge.
func (t *T) RequireUserList(params restapi.ListUsersParams) *restapi.Response {
	resp, err := t.client.GetUserList(context.Background(), params)
	require.NoError(t, err, "transport failure requesting user list")
	return resp
}

// RequireUser issues the single-user request, failing the scenario on a
// transport error.
func (t *T) RequireUser(id int) *restapi.Response {
	resp, err := t.client.GetUser(context.Background(), id)
	require.NoError(t, err, "transport failure requesting user %d", id)
	return resp
}
