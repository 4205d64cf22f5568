package usertests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servalue/reqres-contract-tests/contract"
)

// Reference values for user 1, as served by the live API.
const (
	knownUserID        = 1
	knownUserEmail     = "george.bluth@reqres.in"
	knownUserFirstName = "George"
	knownUserLastName  = "Bluth"
	knownSupportText   = "Tired of writing endless social media content? Let Content Caddy generate it for you."
)

func DoSingleUserTests(t *T) {
	t.Run("user 1 has the expected profile", func(t *T) {
		resp := t.RequireUser(knownUserID)
		require.Equal(t, 200, resp.StatusCode, "status code check")

		user, err := contract.ParseSingleUserResponse(resp.Body)
		require.NoError(t, err, "response schema check")

		assert.Equal(t, knownUserID, user.Data.ID, "user id check")
		assert.Equal(t, knownUserEmail, user.Data.Email, "user email check")
		assert.Equal(t, knownUserFirstName, user.Data.FirstName, "user first name check")
		assert.Equal(t, knownUserLastName, user.Data.LastName, "user last name check")
		assert.Equal(t, knownSupportText, user.Support.Text, "support text check")
	})

	t.Run("repeated request returns identical fields", func(t *T) {
		first := t.RequireUser(knownUserID)
		require.Equal(t, 200, first.StatusCode, "status code check (first request)")

		second := t.RequireUser(knownUserID)
		require.Equal(t, 200, second.StatusCode, "status code check (second request)")

		firstUser, err := contract.ParseSingleUserResponse(first.Body)
		require.NoError(t, err, "response schema check (first request)")

		secondUser, err := contract.ParseSingleUserResponse(second.Body)
		require.NoError(t, err, "response schema check (second request)")

		assert.Equal(t, firstUser, secondUser, "read-only endpoint idempotence check")
	})
}
