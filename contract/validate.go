package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError reports one field that is missing, mistyped, or violates a
// constraint. Field is the dotted JSON path, e.g. "data.first_name".
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError reports every offending field of a body that failed
// validation. A body either parses completely into its model or fails with
// one of these; partial models are never produced.
type ValidationError struct {
	Model  string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.String())
	}
	return fmt.Sprintf("%s: invalid body: %s", e.Model, strings.Join(msgs, "; "))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their JSON names, not Go struct field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Wire structs mirror the JSON exactly, with pointer fields so that an
// absent field is distinguishable from a zero value. They exist only as an
// intermediate step; callers always receive the exported value models.

type supportWire struct {
	URL  *string `json:"url" validate:"required,url"`
	Text *string `json:"text" validate:"required"`
}

type userWire struct {
	ID        *int    `json:"id" validate:"required"`
	Email     *string `json:"email" validate:"required,email"`
	FirstName *string `json:"first_name" validate:"required"`
	LastName  *string `json:"last_name" validate:"required"`
	Avatar    *string `json:"avatar" validate:"required,url"`
}

type singleUserWire struct {
	Data    *userWire    `json:"data" validate:"required"`
	Support *supportWire `json:"support" validate:"required"`
}

type listUsersWire struct {
	Page       *int         `json:"page" validate:"required"`
	PerPage    *int         `json:"per_page" validate:"required"`
	Total      *int         `json:"total" validate:"required"`
	TotalPages *int         `json:"total_pages" validate:"required"`
	Data       []userWire   `json:"data" validate:"required,dive"`
	Support    *supportWire `json:"support" validate:"required"`
}

// ParseSingleUserResponse validates raw JSON against the single-user
// response contract and returns the typed model.
func ParseSingleUserResponse(data []byte) (*SingleUserResponse, error) {
	var wire singleUserWire
	if err := decodeAndValidate("SingleUserResponse", data, &wire); err != nil {
		return nil, err
	}
	return &SingleUserResponse{
		Data:    wire.Data.materialize(),
		Support: wire.Support.materialize(),
	}, nil
}

// ParseListUsersResponse validates raw JSON against the user-list response
// contract and returns the typed model.
func ParseListUsersResponse(data []byte) (*ListUsersResponse, error) {
	var wire listUsersWire
	if err := decodeAndValidate("ListUsersResponse", data, &wire); err != nil {
		return nil, err
	}
	users := make([]User, 0, len(wire.Data))
	for _, u := range wire.Data {
		users = append(users, u.materialize())
	}
	return &ListUsersResponse{
		Page:       *wire.Page,
		PerPage:    *wire.PerPage,
		Total:      *wire.Total,
		TotalPages: *wire.TotalPages,
		Data:       users,
		Support:    wire.Support.materialize(),
	}, nil
}

func (w *userWire) materialize() User {
	return User{
		ID:        *w.ID,
		Email:     *w.Email,
		FirstName: *w.FirstName,
		LastName:  *w.LastName,
		Avatar:    *w.Avatar,
	}
}

func (w *supportWire) materialize() Support {
	return Support{URL: *w.URL, Text: *w.Text}
}

// decodeAndValidate unmarshals data into the wire struct and checks every
// field as a single unit. The returned error is always a *ValidationError
// for malformed input.
func decodeAndValidate(model string, data []byte, wire interface{}) error {
	if err := json.Unmarshal(data, wire); err != nil {
		fields := []FieldError{decodeFieldError(err)}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// decoding continues past a type mismatch, so the rest of the
			// wire value is intact; report any missing or invalid fields
			// alongside the mismatch rather than the mismatch alone
			fields = append(fields, remainingFieldErrors(model, wire, fields[0].Field)...)
		}
		return &ValidationError{Model: model, Fields: fields}
	}
	return validateStruct(model, wire)
}

func remainingFieldErrors(model string, wire interface{}, alreadyReported string) []FieldError {
	err := validateStruct(model, wire)
	if err == nil {
		return nil
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	var fields []FieldError
	for _, f := range verr.Fields {
		// the mistyped field is left unset by the decoder; skip the
		// duplicate "required" report for it
		if f.Field != alreadyReported {
			fields = append(fields, f)
		}
	}
	return fields
}

func validateStruct(model string, value interface{}) error {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// an unusable value was passed to the validator; not an input problem
		return err
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   jsonPath(fe.Namespace()),
			Message: constraintMessage(fe),
		})
	}
	return &ValidationError{Model: model, Fields: fields}
}

// jsonPath strips the wire struct's own name from a validator namespace,
// leaving the dotted JSON path ("listUsersWire.data[1].email" becomes
// "data[1].email").
func jsonPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field is missing"
	case "email":
		return "not a valid email address"
	case "url":
		return "not a valid URL"
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}

// decodeFieldError converts an encoding/json error into a FieldError. Type
// mismatches carry the offending field's path; anything else (truncated or
// non-JSON input) is reported against the body as a whole.
func decodeFieldError(err error) FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "(body)"
		}
		return FieldError{
			Field:   field,
			Message: fmt.Sprintf("expected %s, got JSON %s", typeErr.Type, typeErr.Value),
		}
	}
	return FieldError{Field: "(body)", Message: "malformed JSON: " + err.Error()}
}
