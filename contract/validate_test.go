package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const supportText = "Tired of writing endless social media content? Let Content Caddy generate it for you."

const validSingleUserBody = `{
	"data": {
		"id": 1,
		"email": "george.bluth@reqres.in",
		"first_name": "George",
		"last_name": "Bluth",
		"avatar": "https://reqres.in/img/faces/1-image.jpg"
	},
	"support": {
		"url": "https://contentcaddy.io?utm_source=reqres&utm_medium=json&utm_campaign=referral",
		"text": "` + supportText + `"
	}
}`

const validListUsersBody = `{
	"page": 2,
	"per_page": 2,
	"total": 12,
	"total_pages": 6,
	"data": [
		{
			"id": 3,
			"email": "emma.wong@reqres.in",
			"first_name": "Emma",
			"last_name": "Wong",
			"avatar": "https://reqres.in/img/faces/3-image.jpg"
		},
		{
			"id": 4,
			"email": "eve.holt@reqres.in",
			"first_name": "Eve",
			"last_name": "Holt",
			"avatar": "https://reqres.in/img/faces/4-image.jpg"
		}
	],
	"support": {
		"url": "https://contentcaddy.io?utm_source=reqres&utm_medium=json&utm_campaign=referral",
		"text": "` + supportText + `"
	}
}`

func requireValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	return verr
}

func fieldNames(verr *ValidationError) []string {
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestParseSingleUserResponseWithValidBody(t *testing.T) {
	user, err := ParseSingleUserResponse([]byte(validSingleUserBody))
	require.NoError(t, err)

	assert.Equal(t, 1, user.Data.ID)
	assert.Equal(t, "george.bluth@reqres.in", user.Data.Email)
	assert.Equal(t, "George", user.Data.FirstName)
	assert.Equal(t, "Bluth", user.Data.LastName)
	assert.Equal(t, "https://reqres.in/img/faces/1-image.jpg", user.Data.Avatar)
	assert.Equal(t, supportText, user.Support.Text)
}

func TestParseSingleUserResponseEnumeratesAllMissingFields(t *testing.T) {
	body := `{
		"data": {
			"email": "george.bluth@reqres.in",
			"first_name": "George",
			"last_name": "Bluth",
			"avatar": "https://reqres.in/img/faces/1-image.jpg"
		},
		"support": {
			"text": "some text"
		}
	}`

	user, err := ParseSingleUserResponse([]byte(body))
	assert.Nil(t, user, "no partial model on validation failure")

	verr := requireValidationError(t, err)
	assert.Equal(t, "SingleUserResponse", verr.Model)
	assert.ElementsMatch(t, []string{"data.id", "support.url"}, fieldNames(verr))
	assert.Contains(t, verr.Error(), "data.id")
	assert.Contains(t, verr.Error(), "support.url")
}

func TestParseSingleUserResponseRejectsMistypedField(t *testing.T) {
	body := `{
		"data": {
			"id": "1",
			"email": "george.bluth@reqres.in",
			"first_name": "George",
			"last_name": "Bluth",
			"avatar": "https://reqres.in/img/faces/1-image.jpg"
		},
		"support": {"url": "https://example.invalid", "text": "t"}
	}`

	user, err := ParseSingleUserResponse([]byte(body))
	assert.Nil(t, user)

	verr := requireValidationError(t, err)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "data.id", verr.Fields[0].Field)
	assert.Contains(t, verr.Fields[0].Message, "expected int")
}

func TestParseSingleUserResponseReportsMistypedAndMissingFieldsTogether(t *testing.T) {
	body := `{
		"data": {
			"id": "1",
			"email": "george.bluth@reqres.in",
			"first_name": "George",
			"avatar": "https://reqres.in/img/faces/1-image.jpg"
		},
		"support": {"url": "https://example.invalid", "text": "t"}
	}`

	user, err := ParseSingleUserResponse([]byte(body))
	assert.Nil(t, user)

	verr := requireValidationError(t, err)
	assert.ElementsMatch(t, []string{"data.id", "data.last_name"}, fieldNames(verr),
		"the missing field must be reported alongside the type mismatch")
}

func TestParseSingleUserResponseRejectsEmptyObject(t *testing.T) {
	user, err := ParseSingleUserResponse([]byte(`{}`))
	assert.Nil(t, user)

	verr := requireValidationError(t, err)
	assert.ElementsMatch(t, []string{"data", "support"}, fieldNames(verr))
}

func TestParseSingleUserResponseRejectsMalformedJSON(t *testing.T) {
	user, err := ParseSingleUserResponse([]byte(`<html>not json</html>`))
	assert.Nil(t, user)

	verr := requireValidationError(t, err)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "(body)", verr.Fields[0].Field)
}

func TestParseSingleUserResponseRejectsInvalidEmail(t *testing.T) {
	body := `{
		"data": {
			"id": 1,
			"email": "not-an-email",
			"first_name": "George",
			"last_name": "Bluth",
			"avatar": "https://reqres.in/img/faces/1-image.jpg"
		},
		"support": {"url": "https://example.invalid", "text": "t"}
	}`

	_, err := ParseSingleUserResponse([]byte(body))
	verr := requireValidationError(t, err)
	assert.Equal(t, []string{"data.email"}, fieldNames(verr))
}

func TestParseListUsersResponseWithValidBody(t *testing.T) {
	list, err := ParseListUsersResponse([]byte(validListUsersBody))
	require.NoError(t, err)

	assert.Equal(t, 2, list.Page)
	assert.Equal(t, 2, list.PerPage)
	assert.Equal(t, 12, list.Total)
	assert.Equal(t, 6, list.TotalPages)
	require.Len(t, list.Data, 2)
	assert.Equal(t, "Emma", list.Data[0].FirstName)
	assert.Equal(t, 4, list.Data[1].ID)
	assert.Equal(t, supportText, list.Support.Text)
}

func TestParseListUsersResponseRequiresPaginationFields(t *testing.T) {
	body := `{
		"page": 2,
		"total": 12,
		"total_pages": 6,
		"data": [],
		"support": {"url": "https://example.invalid", "text": "t"}
	}`

	list, err := ParseListUsersResponse([]byte(body))
	assert.Nil(t, list)

	verr := requireValidationError(t, err)
	assert.Equal(t, []string{"per_page"}, fieldNames(verr))
}

func TestParseListUsersResponseValidatesEveryElement(t *testing.T) {
	body := `{
		"page": 1,
		"per_page": 2,
		"total": 12,
		"total_pages": 6,
		"data": [
			{
				"id": 3,
				"email": "emma.wong@reqres.in",
				"first_name": "Emma",
				"last_name": "Wong",
				"avatar": "https://reqres.in/img/faces/3-image.jpg"
			},
			{
				"id": 4,
				"email": "eve.holt@reqres.in",
				"first_name": "Eve",
				"last_name": "Holt"
			}
		],
		"support": {"url": "https://example.invalid", "text": "t"}
	}`

	list, err := ParseListUsersResponse([]byte(body))
	assert.Nil(t, list)

	verr := requireValidationError(t, err)
	assert.Equal(t, []string{"data[1].avatar"}, fieldNames(verr))
}

func TestParseListUsersResponseAllowsEmptyPage(t *testing.T) {
	body := `{
		"page": 99,
		"per_page": 2,
		"total": 12,
		"total_pages": 6,
		"data": [],
		"support": {"url": "https://example.invalid", "text": "t"}
	}`

	list, err := ParseListUsersResponse([]byte(body))
	require.NoError(t, err)
	assert.Empty(t, list.Data)
}

func TestCreateUserRequestValidation(t *testing.T) {
	assert.NoError(t, CreateUserRequest{Name: "morpheus", Job: "leader"}.Validate())

	err := CreateUserRequest{Name: "morpheus"}.Validate()
	verr := requireValidationError(t, err)
	assert.Equal(t, "CreateUserRequest", verr.Model)
	assert.Equal(t, []string{"job"}, fieldNames(verr))
}
