package mocks

import (
	"context"

	"github.com/oracle/oci-go-sdk/v65/objectstorage"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/oscli/internal/objectstorage/domain"
	"github.com/allisson/oscli/internal/progress"
)

// MockNamespaceUseCase is a mock implementation of NamespaceUseCase.
type MockNamespaceUseCase struct {
	mock.Mock
}

func (m *MockNamespaceUseCase) Get(ctx context.Context, compartmentID string) (string, error) {
	args := m.Called(ctx, compartmentID)
	return args.String(0), args.Error(1)
}

func (m *MockNamespaceUseCase) GetMetadata(
	ctx context.Context,
	namespace string,
) (*objectstorage.NamespaceMetadata, error) {
	args := m.Called(ctx, namespace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*objectstorage.NamespaceMetadata), args.Error(1)
}

// MockBucketUseCase is a mock implementation of BucketUseCase.
type MockBucketUseCase struct {
	mock.Mock
}

func (m *MockBucketUseCase) Create(ctx context.Context, input *domain.CreateBucketInput) (*objectstorage.Bucket, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*objectstorage.Bucket), args.Error(1)
}

func (m *MockBucketUseCase) Get(ctx context.Context, namespace, bucket string) (*objectstorage.Bucket, error) {
	args := m.Called(ctx, namespace, bucket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*objectstorage.Bucket), args.Error(1)
}

func (m *MockBucketUseCase) List(
	ctx context.Context,
	namespace, compartmentID string,
	limit int,
) ([]objectstorage.BucketSummary, error) {
	args := m.Called(ctx, namespace, compartmentID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]objectstorage.BucketSummary), args.Error(1)
}

func (m *MockBucketUseCase) Delete(ctx context.Context, namespace, bucket string) error {
	args := m.Called(ctx, namespace, bucket)
	return args.Error(0)
}

// MockRetentionRuleUseCase is a mock implementation of RetentionRuleUseCase.
type MockRetentionRuleUseCase struct {
	mock.Mock
}

func (m *MockRetentionRuleUseCase) Create(
	ctx context.Context,
	input *domain.RetentionRuleInput,
) (*objectstorage.RetentionRule, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*objectstorage.RetentionRule), args.Error(1)
}

func (m *MockRetentionRuleUseCase) Get(
	ctx context.Context,
	namespace, bucket, ruleID string,
) (*objectstorage.RetentionRule, error) {
	args := m.Called(ctx, namespace, bucket, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*objectstorage.RetentionRule), args.Error(1)
}

func (m *MockRetentionRuleUseCase) List(
	ctx context.Context,
	namespace, bucket string,
) ([]objectstorage.RetentionRuleSummary, error) {
	args := m.Called(ctx, namespace, bucket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]objectstorage.RetentionRuleSummary), args.Error(1)
}

func (m *MockRetentionRuleUseCase) Update(
	ctx context.Context,
	input *domain.RetentionRuleInput,
) (*objectstorage.RetentionRule, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*objectstorage.RetentionRule), args.Error(1)
}

func (m *MockRetentionRuleUseCase) Delete(ctx context.Context, namespace, bucket, ruleID string) error {
	args := m.Called(ctx, namespace, bucket, ruleID)
	return args.Error(0)
}

// MockReplicationUseCase is a mock implementation of ReplicationUseCase.
type MockReplicationUseCase struct {
	mock.Mock
}

func (m *MockReplicationUseCase) Create(
	ctx context.Context,
	input *domain.ReplicationPolicyInput,
) (*objectstorage.ReplicationPolicy, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*objectstorage.ReplicationPolicy), args.Error(1)
}

func (m *MockReplicationUseCase) Get(
	ctx context.Context,
	namespace, bucket, replicationID string,
) (*objectstorage.ReplicationPolicy, error) {
	args := m.Called(ctx, namespace, bucket, replicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*objectstorage.ReplicationPolicy), args.Error(1)
}

func (m *MockReplicationUseCase) List(
	ctx context.Context,
	namespace, bucket string,
) ([]objectstorage.ReplicationPolicySummary, error) {
	args := m.Called(ctx, namespace, bucket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]objectstorage.ReplicationPolicySummary), args.Error(1)
}

func (m *MockReplicationUseCase) Delete(ctx context.Context, namespace, bucket, replicationID string) error {
	args := m.Called(ctx, namespace, bucket, replicationID)
	return args.Error(0)
}

// MockBulkUseCase is a mock implementation of BulkUseCase. Tracker calls are
// not recorded; tests assert on the returned result.
type MockBulkUseCase struct {
	mock.Mock
}

func (m *MockBulkUseCase) Upload(
	ctx context.Context,
	input *domain.BulkInput,
	_ *progress.Tracker,
) (*domain.BulkResult, error) {
	return m.result(m.Called(ctx, input))
}

func (m *MockBulkUseCase) Download(
	ctx context.Context,
	input *domain.BulkInput,
	_ *progress.Tracker,
) (*domain.BulkResult, error) {
	return m.result(m.Called(ctx, input))
}

func (m *MockBulkUseCase) Sync(
	ctx context.Context,
	input *domain.BulkInput,
	_ *progress.Tracker,
) (*domain.BulkResult, error) {
	return m.result(m.Called(ctx, input))
}

func (m *MockBulkUseCase) result(args mock.Arguments) (*domain.BulkResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BulkResult), args.Error(1)
}
