package request

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
)

// ValidationError reports the first rule a request failed. Later fields are
// not checked once one fails.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type fieldRules struct {
	name  string
	value interface{}
	rules []validation.Rule
}

func field(name string, value interface{}, rules ...validation.Rule) fieldRules {
	return fieldRules{name: name, value: value, rules: rules}
}

func firstError(fields ...fieldRules) error {
	for _, f := range fields {
		err := validation.Validate(f.value, f.rules...)
		if err == nil {
			continue
		}

		var internal validation.InternalError
		if errors.As(err, &internal) {
			return fmt.Errorf("validate %q -> %w", f.name, internal.InternalError())
		}

		return &ValidationError{Field: f.name, Message: err.Error()}
	}

	return nil
}

func required(name string) validation.Rule {
	return validation.Required.Error(fmt.Sprintf("%q is required", name))
}

func minLength(name string, min int) validation.Rule {
	return validation.RuneLength(min, 0).Error(fmt.Sprintf("%q length must be at least %d characters long", name, min))
}

// minInt rejects ints below min. validation.Min treats 0 as empty and skips it.
func minInt(name string, min int) validation.Rule {
	return validation.By(func(value interface{}) error {
		n, ok := value.(int)
		if !ok {
			return validation.NewInternalError(fmt.Errorf("%q is not an int", name))
		}
		if n < min {
			return fmt.Errorf("%q must be greater than or equal to %d", name, min)
		}
		return nil
	})
}
