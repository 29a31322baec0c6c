package domain

import (
	validation "github.com/jellydator/validation"
	"github.com/oracle/oci-go-sdk/v65/objectstorage"

	customValidation "github.com/allisson/oscli/internal/validation"
)

// CreateBucketInput describes a new bucket.
type CreateBucketInput struct {
	Namespace        string
	Name             string
	CompartmentID    string
	StorageTier      string
	PublicAccessType string
	KmsKeyID         string
	Versioning       bool
	Metadata         map[string]string
}

// Validate checks the required names and the enumerated options.
func (c *CreateBucketInput) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required, customValidation.NotBlank, customValidation.NoWhitespace),
		validation.Field(&c.CompartmentID, validation.Required, customValidation.NotBlank),
		validation.Field(&c.StorageTier, customValidation.OneOfFold(storageTiers()...)),
		validation.Field(&c.PublicAccessType, customValidation.OneOfFold(publicAccessTypes()...)),
	)
	return customValidation.WrapValidationError(err)
}

// Details converts the input to the SDK create payload.
func (c *CreateBucketInput) Details() objectstorage.CreateBucketDetails {
	details := objectstorage.CreateBucketDetails{
		Name:          &c.Name,
		CompartmentId: &c.CompartmentID,
		Metadata:      c.Metadata,
	}
	if tier, ok := objectstorage.GetMappingCreateBucketDetailsStorageTierEnum(c.StorageTier); ok {
		details.StorageTier = tier
	}
	if access, ok := objectstorage.GetMappingCreateBucketDetailsPublicAccessTypeEnum(c.PublicAccessType); ok {
		details.PublicAccessType = access
	}
	if c.KmsKeyID != "" {
		details.KmsKeyId = &c.KmsKeyID
	}
	if c.Versioning {
		details.Versioning = objectstorage.CreateBucketDetailsVersioningEnabled
	}
	return details
}

func storageTiers() []string {
	var out []string
	for _, v := range objectstorage.GetCreateBucketDetailsStorageTierEnumValues() {
		out = append(out, string(v))
	}
	return out
}

func publicAccessTypes() []string {
	var out []string
	for _, v := range objectstorage.GetCreateBucketDetailsPublicAccessTypeEnumValues() {
		out = append(out, string(v))
	}
	return out
}
