// Package validation checks candidate entities with go-playground/validator
// and reports violations keyed by their JSON field names.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/petowners/petregistry/internal/core/domain"
)

// Validator implements ports.UserValidator and ports.InputValidator.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	v.RegisterCustomTypeFunc(optionalValue, domain.Optional[string]{}, domain.Optional[int64]{})
	return &Validator{v: v}
}

// ValidateUser returns field → message for every violated constraint on u.
// Fields hidden from JSON are reported under their lower-camel Go name.
func (val *Validator) ValidateUser(u *domain.User) map[string]string {
	return val.Struct(u)
}

// Struct validates any tagged struct. A nil map means no violations.
func (val *Validator) Struct(s any) map[string]string {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		if _, dup := out[fe.Field()]; dup {
			continue
		}
		out[fe.Field()] = fieldError(fe)
	}
	return out
}

// optionalValue validates a partial-update field by its value. Absent and
// null fields yield the zero value, which omitempty skips.
func optionalValue(field reflect.Value) any {
	switch o := field.Interface().(type) {
	case domain.Optional[string]:
		return o.Value
	case domain.Optional[int64]:
		return o.Value
	}
	return nil
}

// jsonName reports a field by its JSON key, or by its lower-camel Go name
// when the JSON tag hides it.
func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return lowerFirst(f.Name)
	}
	return name
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
