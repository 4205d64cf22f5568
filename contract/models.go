// Package contract defines the typed request and response shapes of the
// users API, plus the validation that turns a raw response body into one
// of those shapes or a field-by-field error.
package contract

// User is one user record as returned by the users API.
type User struct {
	ID        int
	Email     string
	FirstName string
	LastName  string
	Avatar    string
}

// Support is the auxiliary promotional block the API returns alongside
// user data. It is unrelated to the user entity itself.
type Support struct {
	URL  string
	Text string
}

// SingleUserResponse is the body of GET /users/{id}.
type SingleUserResponse struct {
	Data    User
	Support Support
}

// ListUsersResponse is the body of GET /users, a page of users plus
// pagination counters.
type ListUsersResponse struct {
	Page       int
	PerPage    int
	Total      int
	TotalPages int
	Data       []User
	Support    Support
}

// CreateUserRequest is the body for creating a user. No scenario exercises
// the creation endpoint; the model is kept so the contract covers both
// directions of the API for callers that do use it.
type CreateUserRequest struct {
	Name string `json:"name" validate:"required"`
	Job  string `json:"job" validate:"required"`
}

// Validate checks that every field of the request is populated.
func (r CreateUserRequest) Validate() error {
	return validateStruct("CreateUserRequest", r)
}
