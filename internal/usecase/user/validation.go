package user

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "user-management-api/pkg/errors"
)

// emailPattern accepts local@domain.tld shaped addresses. Whitespace covers
// \v, NEL and the Unicode separators; a single trailing newline is tolerated.
var emailPattern = regexp.MustCompile(`^[^@\s\v\x85\p{Z}]+@[^@\s\v\x85\p{Z}]+\.[^@\s\v\x85\p{Z}]+\n?$`)

// userFields is validated in field order; validator stops at the first failing tag per field.
type userFields struct {
	Name  string `validate:"notblank"`
	Email string `validate:"notblank,emailshape"`
}

// validationMessages maps field and tag to the message returned to clients.
var validationMessages = map[string]map[string]string{
	"Name": {
		"notblank": "Name cannot be empty.",
	},
	"Email": {
		"notblank":   "Email cannot be empty.",
		"emailshape": "Email is not valid.",
	},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidateUser checks the client-supplied fields of a user. It returns nil or a
// *errors.ValidationError describing the first rule that failed.
func ValidateUser(name, email string) error {
	err := validate.Struct(userFields{Name: name, Email: email})
	if err == nil {
		return nil
	}
	return formatValidationError(err)
}

// formatValidationError converts the first validator.FieldError into a ValidationError.
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err
	}

	e := validationErrors[0]
	msg, ok := validationMessages[e.Field()][e.Tag()]
	if !ok {
		msg = e.Field() + " is not valid."
	}
	return pkgerrors.NewValidationError(strings.ToLower(e.Field()), msg)
}
