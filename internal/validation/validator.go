// Package validation wraps go-playground/validator so the rest of the app never
// deals with validator.ValidationErrors directly. Failures come back as an
// *apperror.AppError carrying a field → message map keyed by JSON tag names,
// which the HTTP layer echoes verbatim in 400 responses.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/wearecreatives/api/internal/apperror"
)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report field names as they appear on the wire (camelCase JSON tags),
	// not as Go struct field names. "ArtistName" would mean nothing to the client.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Check validates input against its `validate` tags. On failure it returns an
// apperror.Validation carrying the given summary message and one entry per
// failing field. A nil return means the input is valid.
func (v *Validator) Check(message string, input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation outcome — a misuse of the validator itself
		// (e.g. passing a non-struct). Let it surface as a 500.
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = describe(fe)
	}
	return apperror.Validation(message, fields)
}

// describe turns a single field failure into a client-facing message.
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("Invalid value (failed on '%s')", fe.Tag())
	}
}
