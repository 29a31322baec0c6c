package usecase

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/objectstorage"

	"github.com/allisson/oscli/internal/objectstorage/domain"
)

type replicationUseCase struct {
	client   Client
	resolver *namespaceResolver
}

// Create creates a replication policy towards another bucket and region.
func (r *replicationUseCase) Create(
	ctx context.Context,
	input *domain.ReplicationPolicyInput,
) (*objectstorage.ReplicationPolicy, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	ns, err := r.resolver.resolve(ctx, input.Namespace)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.CreateReplicationPolicy(ctx, objectstorage.CreateReplicationPolicyRequest{
		NamespaceName: &ns,
		BucketName:    &input.Bucket,
		CreateReplicationPolicyDetails: objectstorage.CreateReplicationPolicyDetails{
			Name:                  &input.Name,
			DestinationRegionName: &input.DestinationRegion,
			DestinationBucketName: &input.DestinationBucket,
		},
		OpcClientRequestId: requestID(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create replication policy: %w", err)
	}
	return &resp.ReplicationPolicy, nil
}

// Get returns a single policy.
func (r *replicationUseCase) Get(
	ctx context.Context,
	namespace, bucket, replicationID string,
) (*objectstorage.ReplicationPolicy, error) {
	ns, err := r.resolver.resolve(ctx, namespace)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.GetReplicationPolicy(ctx, objectstorage.GetReplicationPolicyRequest{
		NamespaceName:      &ns,
		BucketName:         &bucket,
		ReplicationId:      &replicationID,
		OpcClientRequestId: requestID(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get replication policy: %w", err)
	}
	return &resp.ReplicationPolicy, nil
}

// List returns every policy of a bucket.
func (r *replicationUseCase) List(
	ctx context.Context,
	namespace, bucket string,
) ([]objectstorage.ReplicationPolicySummary, error) {
	ns, err := r.resolver.resolve(ctx, namespace)
	if err != nil {
		return nil, err
	}

	var (
		out  []objectstorage.ReplicationPolicySummary
		page *string
	)
	for {
		resp, err := r.client.ListReplicationPolicies(ctx, objectstorage.ListReplicationPoliciesRequest{
			NamespaceName:      &ns,
			BucketName:         &bucket,
			Page:               page,
			OpcClientRequestId: requestID(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list replication policies: %w", err)
		}
		out = append(out, resp.Items...)
		if resp.OpcNextPage == nil {
			return out, nil
		}
		page = resp.OpcNextPage
	}
}

// Delete removes a policy. Objects already replicated stay in place.
func (r *replicationUseCase) Delete(ctx context.Context, namespace, bucket, replicationID string) error {
	ns, err := r.resolver.resolve(ctx, namespace)
	if err != nil {
		return err
	}

	_, err = r.client.DeleteReplicationPolicy(ctx, objectstorage.DeleteReplicationPolicyRequest{
		NamespaceName:      &ns,
		BucketName:         &bucket,
		ReplicationId:      &replicationID,
		OpcClientRequestId: requestID(),
	})
	if err != nil {
		return fmt.Errorf("failed to delete replication policy: %w", err)
	}
	return nil
}

// NewReplicationUseCase creates a ReplicationUseCase.
func NewReplicationUseCase(client Client) ReplicationUseCase {
	return &replicationUseCase{client: client, resolver: newNamespaceResolver(client)}
}
