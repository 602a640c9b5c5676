// Package validation builds the struct validator shared by services and handlers.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var shared = sync.OnceValue(build)

// New returns the shared validator. It understands decimal.Decimal fields, so
// tags like gte=0 work on money columns.
func New() *validator.Validate {
	return shared()
}

func build() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// FieldErrors turns a validation error into a field -> message map. Errors
// that are not validation errors are reported under "_".
func FieldErrors(err error) map[string]string {
	messages := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		messages["_"] = err.Error()
		return messages
	}
	for _, e := range validationErrors {
		messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return messages
}

// Summary renders a validation error as a single line.
func Summary(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", e.Field(), e.Tag()))
	}
	return strings.Join(parts, "; ")
}

// Blank reports whether s is empty or only whitespace.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
