// Package validation provides the jellydator/validation rules shared by the
// command inputs and the key material deriver.
package validation

import (
	"encoding/base64"
	"strings"

	validation "github.com/jellydator/validation"
)

// ErrBase64 is the validation error returned for text that does not decode
// as standard, padded base64.
var ErrBase64 = validation.NewError("validation_base64", "must be valid base64-encoded data")

// Base64 validates that a string is valid base64-encoded data. Surrounding
// whitespace is ignored so key files ending with a newline pass.
var Base64 = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_base64_type", "must be a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if _, err := base64.StdEncoding.DecodeString(s); err != nil {
		return ErrBase64
	}
	return nil
})
