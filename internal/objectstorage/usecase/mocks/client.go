// Package mocks provides testify mocks for the object storage use cases.
package mocks

import (
	"context"

	"github.com/oracle/oci-go-sdk/v65/objectstorage"
	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of the object storage SDK client.
type MockClient struct {
	mock.Mock
}

// NewMockClient creates a MockClient whose expectations are asserted on cleanup.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	m := &MockClient{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// GetNamespace mocks the GetNamespace method of Client.
func (m *MockClient) GetNamespace(
	ctx context.Context,
	req objectstorage.GetNamespaceRequest,
) (objectstorage.GetNamespaceResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.GetNamespaceResponse)
	return resp, args.Error(1)
}

// GetNamespaceMetadata mocks the GetNamespaceMetadata method of Client.
func (m *MockClient) GetNamespaceMetadata(
	ctx context.Context,
	req objectstorage.GetNamespaceMetadataRequest,
) (objectstorage.GetNamespaceMetadataResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.GetNamespaceMetadataResponse)
	return resp, args.Error(1)
}

// CreateBucket mocks the CreateBucket method of Client.
func (m *MockClient) CreateBucket(
	ctx context.Context,
	req objectstorage.CreateBucketRequest,
) (objectstorage.CreateBucketResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.CreateBucketResponse)
	return resp, args.Error(1)
}

// GetBucket mocks the GetBucket method of Client.
func (m *MockClient) GetBucket(
	ctx context.Context,
	req objectstorage.GetBucketRequest,
) (objectstorage.GetBucketResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.GetBucketResponse)
	return resp, args.Error(1)
}

// ListBuckets mocks the ListBuckets method of Client.
func (m *MockClient) ListBuckets(
	ctx context.Context,
	req objectstorage.ListBucketsRequest,
) (objectstorage.ListBucketsResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.ListBucketsResponse)
	return resp, args.Error(1)
}

// DeleteBucket mocks the DeleteBucket method of Client.
func (m *MockClient) DeleteBucket(
	ctx context.Context,
	req objectstorage.DeleteBucketRequest,
) (objectstorage.DeleteBucketResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.DeleteBucketResponse)
	return resp, args.Error(1)
}

// PutObject mocks the PutObject method of Client.
func (m *MockClient) PutObject(
	ctx context.Context,
	req objectstorage.PutObjectRequest,
) (objectstorage.PutObjectResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.PutObjectResponse)
	return resp, args.Error(1)
}

// GetObject mocks the GetObject method of Client.
func (m *MockClient) GetObject(
	ctx context.Context,
	req objectstorage.GetObjectRequest,
) (objectstorage.GetObjectResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.GetObjectResponse)
	return resp, args.Error(1)
}

// HeadObject mocks the HeadObject method of Client.
func (m *MockClient) HeadObject(
	ctx context.Context,
	req objectstorage.HeadObjectRequest,
) (objectstorage.HeadObjectResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.HeadObjectResponse)
	return resp, args.Error(1)
}

// CopyObject mocks the CopyObject method of Client.
func (m *MockClient) CopyObject(
	ctx context.Context,
	req objectstorage.CopyObjectRequest,
) (objectstorage.CopyObjectResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.CopyObjectResponse)
	return resp, args.Error(1)
}

// ReencryptObject mocks the ReencryptObject method of Client.
func (m *MockClient) ReencryptObject(
	ctx context.Context,
	req objectstorage.ReencryptObjectRequest,
) (objectstorage.ReencryptObjectResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.ReencryptObjectResponse)
	return resp, args.Error(1)
}

// DeleteObject mocks the DeleteObject method of Client.
func (m *MockClient) DeleteObject(
	ctx context.Context,
	req objectstorage.DeleteObjectRequest,
) (objectstorage.DeleteObjectResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.DeleteObjectResponse)
	return resp, args.Error(1)
}

// ListObjects mocks the ListObjects method of Client.
func (m *MockClient) ListObjects(
	ctx context.Context,
	req objectstorage.ListObjectsRequest,
) (objectstorage.ListObjectsResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.ListObjectsResponse)
	return resp, args.Error(1)
}

// CreateRetentionRule mocks the CreateRetentionRule method of Client.
func (m *MockClient) CreateRetentionRule(
	ctx context.Context,
	req objectstorage.CreateRetentionRuleRequest,
) (objectstorage.CreateRetentionRuleResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.CreateRetentionRuleResponse)
	return resp, args.Error(1)
}

// GetRetentionRule mocks the GetRetentionRule method of Client.
func (m *MockClient) GetRetentionRule(
	ctx context.Context,
	req objectstorage.GetRetentionRuleRequest,
) (objectstorage.GetRetentionRuleResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.GetRetentionRuleResponse)
	return resp, args.Error(1)
}

// ListRetentionRules mocks the ListRetentionRules method of Client.
func (m *MockClient) ListRetentionRules(
	ctx context.Context,
	req objectstorage.ListRetentionRulesRequest,
) (objectstorage.ListRetentionRulesResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.ListRetentionRulesResponse)
	return resp, args.Error(1)
}

// UpdateRetentionRule mocks the UpdateRetentionRule method of Client.
func (m *MockClient) UpdateRetentionRule(
	ctx context.Context,
	req objectstorage.UpdateRetentionRuleRequest,
) (objectstorage.UpdateRetentionRuleResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.UpdateRetentionRuleResponse)
	return resp, args.Error(1)
}

// DeleteRetentionRule mocks the DeleteRetentionRule method of Client.
func (m *MockClient) DeleteRetentionRule(
	ctx context.Context,
	req objectstorage.DeleteRetentionRuleRequest,
) (objectstorage.DeleteRetentionRuleResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.DeleteRetentionRuleResponse)
	return resp, args.Error(1)
}

// CreateReplicationPolicy mocks the CreateReplicationPolicy method of Client.
func (m *MockClient) CreateReplicationPolicy(
	ctx context.Context,
	req objectstorage.CreateReplicationPolicyRequest,
) (objectstorage.CreateReplicationPolicyResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.CreateReplicationPolicyResponse)
	return resp, args.Error(1)
}

// GetReplicationPolicy mocks the GetReplicationPolicy method of Client.
func (m *MockClient) GetReplicationPolicy(
	ctx context.Context,
	req objectstorage.GetReplicationPolicyRequest,
) (objectstorage.GetReplicationPolicyResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.GetReplicationPolicyResponse)
	return resp, args.Error(1)
}

// ListReplicationPolicies mocks the ListReplicationPolicies method of Client.
func (m *MockClient) ListReplicationPolicies(
	ctx context.Context,
	req objectstorage.ListReplicationPoliciesRequest,
) (objectstorage.ListReplicationPoliciesResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.ListReplicationPoliciesResponse)
	return resp, args.Error(1)
}

// DeleteReplicationPolicy mocks the DeleteReplicationPolicy method of Client.
func (m *MockClient) DeleteReplicationPolicy(
	ctx context.Context,
	req objectstorage.DeleteReplicationPolicyRequest,
) (objectstorage.DeleteReplicationPolicyResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(objectstorage.DeleteReplicationPolicyResponse)
	return resp, args.Error(1)
}
