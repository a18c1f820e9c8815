// Package apperror maps validation errors to messages fit for a user.
package apperror

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	errRequired      = errors.New("is required")
	errNonNegative   = errors.New("must not be negative")
	errInvalidMeal   = errors.New("must be one of breakfast, lunch, dinner, snack, full_day")
	errInvalidFormat = errors.New("is invalid")
)

var tagErrors = map[string]error{
	"required": errRequired,
	"gte":      errNonNegative,
	"mealtype": errInvalidMeal,
}

// ValidationMessages converts validator errors, possibly wrapped, into one
// {field: message} entry per failed field. It returns nil for other errors.
func ValidationMessages(err error) []map[string]string {
	var validationErr validator.ValidationErrors
	if !errors.As(err, &validationErr) {
		return nil
	}

	errList := make([]map[string]string, 0, len(validationErr))
	for _, e := range validationErr {
		msg, ok := tagErrors[e.Tag()]
		if !ok {
			msg = errInvalidFormat
		}
		errList = append(errList, map[string]string{e.Field(): msg.Error()})
	}
	return errList
}

// Summary renders ValidationMessages as a single line, falling back to
// err.Error() for non-validation errors.
func Summary(err error) string {
	msgs := ValidationMessages(err)
	if msgs == nil {
		return err.Error()
	}
	out := ""
	for i, m := range msgs {
		for field, msg := range m {
			if i > 0 {
				out += "; "
			}
			out += fmt.Sprintf("%s %s", field, msg)
		}
	}
	return out
}
