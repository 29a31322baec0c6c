package domain

import (
	"time"

	validation "github.com/jellydator/validation"

	sseDomain "github.com/allisson/oscli/internal/sse/domain"
	customValidation "github.com/allisson/oscli/internal/validation"
)

// BulkInput is shared by bulk-upload, bulk-download and sync. Dir is the
// local directory: the source for uploads and the destination for downloads.
type BulkInput struct {
	Namespace      string
	Bucket         string
	Dir            string
	Prefix         string
	SSE            *sseDomain.KeyMaterial
	VerifyChecksum bool
	Overwrite      bool
	DryRun         bool
}

// Validate checks the bucket name and the local directory.
func (b *BulkInput) Validate() error {
	err := validation.ValidateStruct(b,
		validation.Field(&b.Bucket, validation.Required, customValidation.NotBlank),
		validation.Field(&b.Dir, validation.Required, customValidation.NotBlank),
	)
	return customValidation.WrapValidationError(err)
}

// ObjectName maps a local key to its remote object name.
func (b *BulkInput) ObjectName(key string) string {
	return b.Prefix + key
}

// BulkFailure records a single item that could not be transferred.
type BulkFailure struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// BulkResult summarises a bulk operation.
type BulkResult struct {
	Transferred []string      `json:"transferred"`
	Skipped     []string      `json:"skipped"`
	Failed      []BulkFailure `json:"failed"`
	DryRun      bool          `json:"dry-run,omitempty"`
	Elapsed     time.Duration `json:"-"`
}

// Err returns ErrBulkFailures when any item failed.
func (r *BulkResult) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	return ErrBulkFailures
}
