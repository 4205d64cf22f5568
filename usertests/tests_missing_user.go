package usertests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servalue/reqres-contract-tests/contract"
)

// The live API has 12 users; this ID is past the end of the collection.
const missingUserID = 23

func DoMissingUserTests(t *T) {
	t.Run("unknown user id returns 404", func(t *T) {
		resp := t.RequireUser(missingUserID)
		require.Equal(t, 404, resp.StatusCode, "status code check for a missing user")

		// The 404 body must fail contract validation cleanly, never
		// produce a partial model or crash.
		user, err := contract.ParseSingleUserResponse(resp.Body)
		assert.Nil(t, user, "missing-user body must not produce a model")
		require.Error(t, err, "missing-user body must not validate as a user response")

		var verr *contract.ValidationError
		assert.ErrorAs(t, err, &verr, "validation failure check")
	})
}
