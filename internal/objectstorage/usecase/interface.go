// Package usecase implements the object storage operations behind the CLI
// commands. Every operation resolves the namespace when the caller leaves it
// empty, tags the request with a fresh opc-client-request-id and applies
// customer-provided encryption keys to the SDK request.
package usecase

import (
	"context"
	"io"

	"github.com/oracle/oci-go-sdk/v65/objectstorage"

	"github.com/allisson/oscli/internal/objectstorage/domain"
	"github.com/allisson/oscli/internal/progress"
)

// Client is the subset of the object storage SDK client used by the CLI.
type Client interface {
	GetNamespace(ctx context.Context, req objectstorage.GetNamespaceRequest) (objectstorage.GetNamespaceResponse, error)
	GetNamespaceMetadata(
		ctx context.Context,
		req objectstorage.GetNamespaceMetadataRequest,
	) (objectstorage.GetNamespaceMetadataResponse, error)

	CreateBucket(ctx context.Context, req objectstorage.CreateBucketRequest) (objectstorage.CreateBucketResponse, error)
	GetBucket(ctx context.Context, req objectstorage.GetBucketRequest) (objectstorage.GetBucketResponse, error)
	ListBuckets(ctx context.Context, req objectstorage.ListBucketsRequest) (objectstorage.ListBucketsResponse, error)
	DeleteBucket(ctx context.Context, req objectstorage.DeleteBucketRequest) (objectstorage.DeleteBucketResponse, error)

	PutObject(ctx context.Context, req objectstorage.PutObjectRequest) (objectstorage.PutObjectResponse, error)
	GetObject(ctx context.Context, req objectstorage.GetObjectRequest) (objectstorage.GetObjectResponse, error)
	HeadObject(ctx context.Context, req objectstorage.HeadObjectRequest) (objectstorage.HeadObjectResponse, error)
	CopyObject(ctx context.Context, req objectstorage.CopyObjectRequest) (objectstorage.CopyObjectResponse, error)
	ReencryptObject(
		ctx context.Context,
		req objectstorage.ReencryptObjectRequest,
	) (objectstorage.ReencryptObjectResponse, error)
	DeleteObject(ctx context.Context, req objectstorage.DeleteObjectRequest) (objectstorage.DeleteObjectResponse, error)
	ListObjects(ctx context.Context, req objectstorage.ListObjectsRequest) (objectstorage.ListObjectsResponse, error)

	CreateRetentionRule(
		ctx context.Context,
		req objectstorage.CreateRetentionRuleRequest,
	) (objectstorage.CreateRetentionRuleResponse, error)
	GetRetentionRule(
		ctx context.Context,
		req objectstorage.GetRetentionRuleRequest,
	) (objectstorage.GetRetentionRuleResponse, error)
	ListRetentionRules(
		ctx context.Context,
		req objectstorage.ListRetentionRulesRequest,
	) (objectstorage.ListRetentionRulesResponse, error)
	UpdateRetentionRule(
		ctx context.Context,
		req objectstorage.UpdateRetentionRuleRequest,
	) (objectstorage.UpdateRetentionRuleResponse, error)
	DeleteRetentionRule(
		ctx context.Context,
		req objectstorage.DeleteRetentionRuleRequest,
	) (objectstorage.DeleteRetentionRuleResponse, error)

	CreateReplicationPolicy(
		ctx context.Context,
		req objectstorage.CreateReplicationPolicyRequest,
	) (objectstorage.CreateReplicationPolicyResponse, error)
	GetReplicationPolicy(
		ctx context.Context,
		req objectstorage.GetReplicationPolicyRequest,
	) (objectstorage.GetReplicationPolicyResponse, error)
	ListReplicationPolicies(
		ctx context.Context,
		req objectstorage.ListReplicationPoliciesRequest,
	) (objectstorage.ListReplicationPoliciesResponse, error)
	DeleteReplicationPolicy(
		ctx context.Context,
		req objectstorage.DeleteReplicationPolicyRequest,
	) (objectstorage.DeleteReplicationPolicyResponse, error)
}

var _ Client = (*objectstorage.ObjectStorageClient)(nil)

// NamespaceUseCase resolves and describes the tenancy namespace.
type NamespaceUseCase interface {
	// Get returns the namespace of the caller's tenancy, or of compartmentID when set.
	Get(ctx context.Context, compartmentID string) (string, error)
	GetMetadata(ctx context.Context, namespace string) (*objectstorage.NamespaceMetadata, error)
}

// BucketUseCase manages buckets.
type BucketUseCase interface {
	Create(ctx context.Context, input *domain.CreateBucketInput) (*objectstorage.Bucket, error)
	Get(ctx context.Context, namespace, bucket string) (*objectstorage.Bucket, error)
	List(ctx context.Context, namespace, compartmentID string, limit int) ([]objectstorage.BucketSummary, error)
	Delete(ctx context.Context, namespace, bucket string) error
}

// ObjectUseCase manages single objects.
type ObjectUseCase interface {
	// Put uploads size bytes from body. body is rewound after hashing when
	// checksum verification is requested.
	Put(ctx context.Context, input *domain.PutObjectInput, body io.ReadSeeker, size int64) (*domain.PutObjectResult, error)
	// Get streams the object content to w.
	Get(ctx context.Context, input *domain.GetObjectInput, w io.Writer) (*domain.GetObjectResult, error)
	Head(ctx context.Context, input *domain.HeadObjectInput) (*domain.ObjectHead, error)
	// Copy starts an asynchronous copy and returns its work request id.
	Copy(ctx context.Context, input *domain.CopyObjectInput) (string, error)
	Reencrypt(ctx context.Context, input *domain.ReencryptObjectInput) error
	Delete(ctx context.Context, input *domain.DeleteObjectInput) error
	List(ctx context.Context, input *domain.ListObjectsInput) ([]domain.ObjectSummary, error)
}

// RetentionRuleUseCase manages bucket retention rules.
type RetentionRuleUseCase interface {
	Create(ctx context.Context, input *domain.RetentionRuleInput) (*objectstorage.RetentionRule, error)
	Get(ctx context.Context, namespace, bucket, ruleID string) (*objectstorage.RetentionRule, error)
	List(ctx context.Context, namespace, bucket string) ([]objectstorage.RetentionRuleSummary, error)
	Update(ctx context.Context, input *domain.RetentionRuleInput) (*objectstorage.RetentionRule, error)
	Delete(ctx context.Context, namespace, bucket, ruleID string) error
}

// ReplicationUseCase manages bucket replication policies.
type ReplicationUseCase interface {
	Create(ctx context.Context, input *domain.ReplicationPolicyInput) (*objectstorage.ReplicationPolicy, error)
	Get(ctx context.Context, namespace, bucket, replicationID string) (*objectstorage.ReplicationPolicy, error)
	List(ctx context.Context, namespace, bucket string) ([]objectstorage.ReplicationPolicySummary, error)
	Delete(ctx context.Context, namespace, bucket, replicationID string) error
}

// BulkUseCase transfers whole directory trees.
type BulkUseCase interface {
	Upload(ctx context.Context, input *domain.BulkInput, tracker *progress.Tracker) (*domain.BulkResult, error)
	Download(ctx context.Context, input *domain.BulkInput, tracker *progress.Tracker) (*domain.BulkResult, error)
	// Sync uploads local files whose MD5 differs from the remote copy.
	Sync(ctx context.Context, input *domain.BulkInput, tracker *progress.Tracker) (*domain.BulkResult, error)
}
