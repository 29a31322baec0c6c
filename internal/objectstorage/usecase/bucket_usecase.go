package usecase

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/objectstorage"

	"github.com/allisson/oscli/internal/objectstorage/domain"
)

type bucketUseCase struct {
	client   Client
	resolver *namespaceResolver
}

// Create validates the input and creates the bucket.
func (b *bucketUseCase) Create(ctx context.Context, input *domain.CreateBucketInput) (*objectstorage.Bucket, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	ns, err := b.resolver.resolve(ctx, input.Namespace)
	if err != nil {
		return nil, err
	}

	resp, err := b.client.CreateBucket(ctx, objectstorage.CreateBucketRequest{
		NamespaceName:       &ns,
		CreateBucketDetails: input.Details(),
		OpcClientRequestId:  requestID(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}
	return &resp.Bucket, nil
}

// Get returns a bucket.
func (b *bucketUseCase) Get(ctx context.Context, namespace, bucket string) (*objectstorage.Bucket, error) {
	ns, err := b.resolver.resolve(ctx, namespace)
	if err != nil {
		return nil, err
	}

	resp, err := b.client.GetBucket(ctx, objectstorage.GetBucketRequest{
		NamespaceName:      &ns,
		BucketName:         &bucket,
		OpcClientRequestId: requestID(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket: %w", err)
	}
	return &resp.Bucket, nil
}

// List pages through the buckets of a compartment. limit 0 returns every bucket.
func (b *bucketUseCase) List(
	ctx context.Context,
	namespace, compartmentID string,
	limit int,
) ([]objectstorage.BucketSummary, error) {
	ns, err := b.resolver.resolve(ctx, namespace)
	if err != nil {
		return nil, err
	}

	var (
		out  []objectstorage.BucketSummary
		page *string
	)
	for {
		req := objectstorage.ListBucketsRequest{
			NamespaceName:      &ns,
			CompartmentId:      &compartmentID,
			Page:               page,
			OpcClientRequestId: requestID(),
		}
		if limit > 0 {
			req.Limit = common.Int(limit - len(out))
		}

		resp, err := b.client.ListBuckets(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("failed to list buckets: %w", err)
		}
		out = append(out, resp.Items...)

		if resp.OpcNextPage == nil || (limit > 0 && len(out) >= limit) {
			return out, nil
		}
		page = resp.OpcNextPage
	}
}

// Delete removes an empty bucket.
func (b *bucketUseCase) Delete(ctx context.Context, namespace, bucket string) error {
	ns, err := b.resolver.resolve(ctx, namespace)
	if err != nil {
		return err
	}

	_, err = b.client.DeleteBucket(ctx, objectstorage.DeleteBucketRequest{
		NamespaceName:      &ns,
		BucketName:         &bucket,
		OpcClientRequestId: requestID(),
	})
	if err != nil {
		return fmt.Errorf("failed to delete bucket: %w", err)
	}
	return nil
}

// NewBucketUseCase creates a BucketUseCase.
func NewBucketUseCase(client Client) BucketUseCase {
	return &bucketUseCase{client: client, resolver: newNamespaceResolver(client)}
}
