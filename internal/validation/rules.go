package validation

import (
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/oscli/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// OneOfFold validates that a string matches one of the choices, ignoring case.
// Empty strings pass so optional choices can be combined with Required.
func OneOfFold(choices ...string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return validation.NewError("validation_choice_type", "must be a string")
		}
		if s == "" {
			return nil
		}
		for _, c := range choices {
			if strings.EqualFold(s, c) {
				return nil
			}
		}
		return validation.NewError(
			"validation_choice",
			fmt.Sprintf("invalid choice: %s. (choose from %s)", s, strings.Join(choices, ", ")),
		)
	})
}
