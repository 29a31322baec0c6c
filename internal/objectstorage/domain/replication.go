package domain

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/oscli/internal/validation"
)

// ReplicationPolicyInput describes a new replication policy.
type ReplicationPolicyInput struct {
	Namespace         string
	Bucket            string
	Name              string
	DestinationBucket string
	DestinationRegion string
}

// Validate requires every field except the namespace.
func (r *ReplicationPolicyInput) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Bucket, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Name, validation.Required, customValidation.NotBlank),
		validation.Field(&r.DestinationBucket, validation.Required, customValidation.NotBlank),
		validation.Field(&r.DestinationRegion, validation.Required, customValidation.NotBlank),
	)
	return customValidation.WrapValidationError(err)
}
