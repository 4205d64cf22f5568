package usertests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/servalue/reqres-contract-tests/contract"
	"github.com/servalue/reqres-contract-tests/restapi"
)

func DoListUsersTests(t *T) {
	t.Run("page 2 with 2 users per page", func(t *T) {
		resp := t.RequireUserList(restapi.ListUsersParams{
			Page:    ldvalue.NewOptionalInt(2),
			PerPage: ldvalue.NewOptionalInt(2),
		})
		require.Equal(t, 200, resp.StatusCode, "status code check")

		list, err := contract.ParseListUsersResponse(resp.Body)
		require.NoError(t, err, "response schema check")

		assert.Equal(t, 2, list.Page, "pagination page field check")
		assert.Equal(t, 2, list.PerPage, "pagination per_page field check")
		assert.LessOrEqual(t, len(list.Data), list.PerPage, "page size check")
	})
}
