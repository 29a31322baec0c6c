// Package service derives SSE-C request parameters from customer key files.
package service

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/oscli/internal/errors"
	sseDomain "github.com/allisson/oscli/internal/sse/domain"
	customValidation "github.com/allisson/oscli/internal/validation"
)

// DeriveKeyMaterial reads r once, from its current position to EOF, and
// returns the key material for the base64 key it holds. The decoded key bytes
// are zeroed before returning.
func DeriveKeyMaterial(r io.Reader) (*sseDomain.KeyMaterial, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read key material: %w", err)
	}

	keyText := strings.TrimSpace(string(raw))
	if err := validation.Validate(keyText, validation.Required, customValidation.Base64); err != nil {
		return nil, errors.Wrap(sseDomain.ErrInvalidKeyMaterial, err.Error())
	}

	key, err := base64.StdEncoding.DecodeString(keyText)
	if err != nil {
		return nil, errors.Wrap(sseDomain.ErrInvalidKeyMaterial, err.Error())
	}
	defer sseDomain.Zero(key)

	digest := sha256.Sum256(key)

	return &sseDomain.KeyMaterial{
		Algorithm:       sseDomain.AES256,
		KeyBase64:       keyText,
		KeySha256Base64: base64.StdEncoding.EncodeToString(digest[:]),
	}, nil
}

// DeriveParams derives the three-entry parameter set for prefix.
func DeriveParams(r io.Reader, prefix string) (sseDomain.ParameterSet, error) {
	material, err := DeriveKeyMaterial(r)
	if err != nil {
		return nil, err
	}
	return material.Params(prefix), nil
}

// DeriveEncryptionKeyParams derives the opc_sse_customer_* parameters.
func DeriveEncryptionKeyParams(r io.Reader) (sseDomain.ParameterSet, error) {
	return DeriveParams(r, sseDomain.PrimaryPrefix)
}

// DeriveSourceEncryptionKeyParams derives the opc_source_sse_customer_* parameters.
func DeriveSourceEncryptionKeyParams(r io.Reader) (sseDomain.ParameterSet, error) {
	return DeriveParams(r, sseDomain.SourcePrefix)
}

// DeriveKeyDetails derives the JSON payload form used in request bodies.
func DeriveKeyDetails(r io.Reader) (*sseDomain.KeyDetails, error) {
	material, err := DeriveKeyMaterial(r)
	if err != nil {
		return nil, err
	}
	return material.Details(), nil
}

// LoadKeyFile opens path, derives its key material and closes the file on
// every path out.
func LoadKeyFile(path string) (material *sseDomain.KeyMaterial, err error) {
	//nolint:gosec // path is an operator-supplied key file
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open key file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close key file: %w", closeErr)
			material = nil
		}
	}()

	return DeriveKeyMaterial(f)
}
