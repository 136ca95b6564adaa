// Package validation provides request validation for CargoTrack API types.
//
// It uses go-playground/validator for struct-level validation and reports
// failures keyed by the JSON field name so handlers can return them to the
// client directly.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator validates request structs against their validate tags.
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new Validator instance. Field names in error output follow
// the json tag, not the Go field name.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{structValidator: v}
}

// Struct validates s and returns one message per failed field. A nil map
// means the struct is valid.
func (v *Validator) Struct(s interface{}) map[string]string {
	err := v.structValidator.Struct(s)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"request": err.Error()}
	}

	fieldErrors := make(map[string]string, len(invalid))
	for _, fe := range invalid {
		fieldErrors[fe.Field()] = message(fe)
	}
	return fieldErrors
}

// message renders a single validation failure for the client.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
