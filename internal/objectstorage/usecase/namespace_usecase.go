package usecase

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/objectstorage"
)

func newGetNamespaceRequest() objectstorage.GetNamespaceRequest {
	return objectstorage.GetNamespaceRequest{OpcClientRequestId: requestID()}
}

type namespaceUseCase struct {
	client   Client
	resolver *namespaceResolver
}

// Get returns the namespace for the tenancy or the given compartment.
func (n *namespaceUseCase) Get(ctx context.Context, compartmentID string) (string, error) {
	if compartmentID == "" {
		return n.resolver.resolve(ctx, "")
	}

	req := newGetNamespaceRequest()
	req.CompartmentId = optional(compartmentID)
	resp, err := n.client.GetNamespace(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to get namespace: %w", err)
	}
	return deref(resp.Value), nil
}

// GetMetadata returns the default compartments of the namespace.
func (n *namespaceUseCase) GetMetadata(ctx context.Context, namespace string) (*objectstorage.NamespaceMetadata, error) {
	ns, err := n.resolver.resolve(ctx, namespace)
	if err != nil {
		return nil, err
	}

	resp, err := n.client.GetNamespaceMetadata(ctx, objectstorage.GetNamespaceMetadataRequest{
		NamespaceName:      &ns,
		OpcClientRequestId: requestID(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get namespace metadata: %w", err)
	}
	return &resp.NamespaceMetadata, nil
}

// NewNamespaceUseCase creates a NamespaceUseCase.
func NewNamespaceUseCase(client Client) NamespaceUseCase {
	return &namespaceUseCase{client: client, resolver: newNamespaceResolver(client)}
}
