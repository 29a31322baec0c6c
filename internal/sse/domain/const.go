// Package domain defines the customer-supplied encryption key (SSE-C) models
// exchanged with the object storage service.
package domain

// Algorithm represents the symmetric cipher the service applies with a
// customer-supplied key.
type Algorithm string

// AES256 is the only algorithm the service accepts for SSE-C.
const AES256 Algorithm = "AES256"

// Parameter set prefixes. Primary keys are sent for the object being written
// or read; Source keys describe the object being copied or re-encrypted.
const (
	PrimaryPrefix = ""
	SourcePrefix  = "source_"
)

const (
	paramRoot      = "opc_"
	paramAlgorithm = "sse_customer_algorithm"
	paramKey       = "sse_customer_key"
	paramKeySha256 = "sse_customer_key_sha256"
)
