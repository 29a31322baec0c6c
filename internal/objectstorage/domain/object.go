// Package domain defines the inputs and results of object storage operations.
// Inputs validate themselves before any request reaches the service.
package domain

import (
	validation "github.com/jellydator/validation"

	sseDomain "github.com/allisson/oscli/internal/sse/domain"
	customValidation "github.com/allisson/oscli/internal/validation"
)

// ObjectLocation addresses a single object.
type ObjectLocation struct {
	Namespace string
	Bucket    string
	Object    string
}

// Validate checks bucket and object names. Namespace may be empty and is then resolved.
func (l ObjectLocation) Validate() error {
	err := validation.ValidateStruct(&l,
		validation.Field(&l.Bucket, validation.Required, customValidation.NotBlank),
		validation.Field(&l.Object, validation.Required, customValidation.NotBlank),
	)
	return customValidation.WrapValidationError(err)
}

// PutObjectInput describes a single object upload.
type PutObjectInput struct {
	ObjectLocation
	ContentType        string
	ContentDisposition string
	CacheControl       string
	Metadata           map[string]string
	SSE                *sseDomain.KeyMaterial
	VerifyChecksum     bool
}

// Validate checks the object location.
func (p *PutObjectInput) Validate() error {
	return p.ObjectLocation.Validate()
}

// PutObjectResult is returned after a successful upload.
type PutObjectResult struct {
	ETag       string `json:"etag"`
	ContentMD5 string `json:"opc-content-md5"`
	VersionID  string `json:"version-id,omitempty"`
	Size       int64  `json:"size"`
}

// GetObjectInput describes a single object download.
type GetObjectInput struct {
	ObjectLocation
	VersionID string
	SSE       *sseDomain.KeyMaterial
}

// Validate checks the object location.
func (g *GetObjectInput) Validate() error {
	return g.ObjectLocation.Validate()
}

// GetObjectResult is returned after a successful download.
type GetObjectResult struct {
	ETag       string `json:"etag"`
	ContentMD5 string `json:"content-md5,omitempty"`
	Size       int64  `json:"size"`
}

// HeadObjectInput describes an object metadata lookup.
type HeadObjectInput = GetObjectInput

// ObjectHead is the metadata returned for an object.
type ObjectHead struct {
	Name          string            `json:"name"`
	ETag          string            `json:"etag"`
	ContentLength int64             `json:"content-length"`
	ContentMD5    string            `json:"content-md5,omitempty"`
	ContentType   string            `json:"content-type,omitempty"`
	VersionID     string            `json:"version-id,omitempty"`
	Metadata      map[string]string `json:"opc-meta,omitempty"`
}

// CopyObjectInput describes a server side copy, possibly across regions.
type CopyObjectInput struct {
	ObjectLocation
	SourceVersionID       string
	DestinationRegion     string
	DestinationNamespace  string
	DestinationBucket     string
	DestinationObjectName string
	SSE                   *sseDomain.KeyMaterial
	SourceSSE             *sseDomain.KeyMaterial
}

// Validate checks source location and destination.
func (c *CopyObjectInput) Validate() error {
	if err := c.ObjectLocation.Validate(); err != nil {
		return err
	}
	err := validation.ValidateStruct(c,
		validation.Field(&c.DestinationRegion, validation.Required, customValidation.NotBlank),
		validation.Field(&c.DestinationBucket, validation.Required, customValidation.NotBlank),
	)
	return customValidation.WrapValidationError(err)
}

// DestinationName returns the destination object name, defaulting to the source name.
func (c *CopyObjectInput) DestinationName() string {
	if c.DestinationObjectName != "" {
		return c.DestinationObjectName
	}
	return c.Object
}

// ReencryptObjectInput describes a re-encryption of an object's data key.
type ReencryptObjectInput struct {
	ObjectLocation
	VersionID string
	KmsKeyID  string
	SSE       *sseDomain.KeyMaterial
	SourceSSE *sseDomain.KeyMaterial
}

// Validate checks the object location.
func (r *ReencryptObjectInput) Validate() error {
	return r.ObjectLocation.Validate()
}

// DeleteObjectInput describes an object deletion.
type DeleteObjectInput struct {
	ObjectLocation
	VersionID string
}

// ListObjectsInput describes an object listing. Limit 0 lists everything.
type ListObjectsInput struct {
	Namespace string
	Bucket    string
	Prefix    string
	Start     string
	Limit     int
}

// Validate checks the bucket name and limit.
func (l *ListObjectsInput) Validate() error {
	err := validation.ValidateStruct(l,
		validation.Field(&l.Bucket, validation.Required, customValidation.NotBlank),
		validation.Field(&l.Limit, validation.Min(0)),
	)
	return customValidation.WrapValidationError(err)
}

// ObjectSummary is one entry of an object listing.
type ObjectSummary struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	MD5  string `json:"md5,omitempty"`
	ETag string `json:"etag,omitempty"`
}
