package domain

import (
	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/objectstorage"
)

// KeyMaterial holds a customer-supplied key exactly as the service expects it.
//
// KeyBase64 is the key text read from the key file. KeySha256Base64 is the
// base64 form of the SHA-256 digest of the decoded key bytes; it is always
// computed, never read from input.
type KeyMaterial struct {
	Algorithm       Algorithm
	KeyBase64       string
	KeySha256Base64 string
}

// ParameterSet is the flat request-parameter form of a KeyMaterial. It always
// holds exactly three entries: opc_<prefix>sse_customer_algorithm,
// opc_<prefix>sse_customer_key and opc_<prefix>sse_customer_key_sha256.
type ParameterSet map[string]string

// KeyDetails is the JSON body form of a KeyMaterial used by reencrypt.
type KeyDetails struct {
	Algorithm Algorithm `json:"algorithm"`
	Key       string    `json:"key"`
	KeySha256 string    `json:"keySha256"`
}

// Params returns the parameter set for the given prefix (PrimaryPrefix or
// SourcePrefix).
func (k *KeyMaterial) Params(prefix string) ParameterSet {
	return ParameterSet{
		AlgorithmParam(prefix): string(k.Algorithm),
		KeyParam(prefix):       k.KeyBase64,
		KeySha256Param(prefix): k.KeySha256Base64,
	}
}

// Details returns the JSON payload form.
func (k *KeyMaterial) Details() *KeyDetails {
	return &KeyDetails{
		Algorithm: k.Algorithm,
		Key:       k.KeyBase64,
		KeySha256: k.KeySha256Base64,
	}
}

// AlgorithmParam returns the algorithm parameter name for prefix.
func AlgorithmParam(prefix string) string { return paramRoot + prefix + paramAlgorithm }

// KeyParam returns the key parameter name for prefix.
func KeyParam(prefix string) string { return paramRoot + prefix + paramKey }

// KeySha256Param returns the checksum parameter name for prefix.
func KeySha256Param(prefix string) string { return paramRoot + prefix + paramKeySha256 }

// ToSDK converts the payload into the SDK body model.
func (d *KeyDetails) ToSDK() *objectstorage.SseCustomerKeyDetails {
	if d == nil {
		return nil
	}
	return &objectstorage.SseCustomerKeyDetails{
		Algorithm: objectstorage.SseCustomerKeyDetailsAlgorithmEnum(d.Algorithm),
		Key:       common.String(d.Key),
		KeySha256: common.String(d.KeySha256),
	}
}
