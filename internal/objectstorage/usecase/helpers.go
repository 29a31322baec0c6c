package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/oracle/oci-go-sdk/v65/common"

	sseDomain "github.com/allisson/oscli/internal/sse/domain"
)

// namespaceResolver returns the caller supplied namespace or looks up the
// tenancy namespace once and caches it.
type namespaceResolver struct {
	client Client
	mu     sync.Mutex
	cached string
}

func newNamespaceResolver(client Client) *namespaceResolver {
	return &namespaceResolver{client: client}
}

func (r *namespaceResolver) resolve(ctx context.Context, namespace string) (string, error) {
	if namespace = strings.TrimSpace(namespace); namespace != "" {
		return namespace, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cached != "" {
		return r.cached, nil
	}

	resp, err := r.client.GetNamespace(ctx, newGetNamespaceRequest())
	if err != nil {
		return "", fmt.Errorf("failed to resolve namespace: %w", err)
	}
	r.cached = deref(resp.Value)
	return r.cached, nil
}

// requestID returns a new opc-client-request-id.
func requestID() *string {
	return common.String(uuid.NewString())
}

// sseFields returns the algorithm, key and key checksum request fields for
// the given key material and parameter prefix. Nil material yields nils.
func sseFields(material *sseDomain.KeyMaterial, prefix string) (algorithm, key, keySha256 *string) {
	if material == nil {
		return nil, nil, nil
	}
	params := material.Params(prefix)
	return common.String(params[sseDomain.AlgorithmParam(prefix)]),
		common.String(params[sseDomain.KeyParam(prefix)]),
		common.String(params[sseDomain.KeySha256Param(prefix)])
}

// optional returns nil for an empty string so the SDK omits the field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return common.String(s)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt64(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}
