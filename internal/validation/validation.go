// Package validation implements the client-side form validation for the
// add/edit student dialog.
//
// The rules here are advisory UX only — they run before a request is
// sent, and nothing stops a caller from skipping them and submitting a
// FormData straight to the Remote Data Service. The mock API performs
// its own (coarser) payload validation independently.
//
// The heavy lifting is done by go-playground/validator with two custom
// validators registered at init:
//
//	notblank    — fails on empty or whitespace-only strings
//	email_shape — fails unless the string looks like local@domain.tld
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AvdhutBhokare/student-management-dashboard/internal/types"
)

// Errors maps a form field name ("name", "email", "course") to the
// human-readable message shown next to that field. An empty map means
// the form is valid.
type Errors map[string]string

// Valid reports whether the validation pass found no problems.
func (e Errors) Valid() bool { return len(e) == 0 }

// emailShape is the same permissive pattern the dashboard has always
// used: at least one non-whitespace, non-@ character before the @, one
// between the @ and the last dot, and one after the last dot. It is a
// shape check, not an RFC 5322 parser.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report errors under the json tag names ("name", not "Name") so the
	// Errors map keys line up with the form fields.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("notblank", notBlank)
	_ = validate.RegisterValidation("email_shape", emailShapeValidation)
}

// Check runs every rule against the form and returns one message per
// failing field. All fields are evaluated independently — a missing
// name does not suppress the email or course checks.
func Check(form types.FormData) Errors {
	errs := Errors{}

	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	// validator.Struct returns ValidationErrors for rule failures; any
	// other error type would be a programming error (bad struct).
	for _, fe := range err.(validator.ValidationErrors) {
		errs[fe.Field()] = message(fe)
	}
	return errs
}

// message converts a single field error into the exact string the
// dashboard displays. The validator stops at the first failing tag per
// field, so an empty email reports "required", not "invalid".
func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		return "Name is required"
	case "email":
		if fe.Tag() == "notblank" {
			return "Email is required"
		}
		return "Please enter a valid email address"
	case "course":
		return "Course selection is required"
	}
	return "field " + fe.Field() + " is invalid"
}

func notBlank(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

func emailShapeValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return emailShape.MatchString(str)
	}
	return false
}
