package domain

import (
	"github.com/allisson/oscli/internal/errors"
)

// ErrInvalidKeyMaterial indicates the key file is empty or does not hold
// base64 text. No parameters are derived when it is returned.
var ErrInvalidKeyMaterial = errors.Wrap(errors.ErrInvalidInput, "invalid key material")
