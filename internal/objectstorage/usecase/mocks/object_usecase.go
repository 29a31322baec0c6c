package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/oscli/internal/objectstorage/domain"
)

// MockObjectUseCase is a mock implementation of ObjectUseCase.
type MockObjectUseCase struct {
	mock.Mock
}

// Put mocks the Put method of ObjectUseCase. The body is drained so tests can
// assert what would have been uploaded.
func (m *MockObjectUseCase) Put(
	ctx context.Context,
	input *domain.PutObjectInput,
	body io.ReadSeeker,
	size int64,
) (*domain.PutObjectResult, error) {
	content, _ := io.ReadAll(body)
	args := m.Called(ctx, input, content, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PutObjectResult), args.Error(1)
}

// Get mocks the Get method of ObjectUseCase. The first return value may be a
// []byte written to w before the result is returned.
func (m *MockObjectUseCase) Get(
	ctx context.Context,
	input *domain.GetObjectInput,
	w io.Writer,
) (*domain.GetObjectResult, error) {
	args := m.Called(ctx, input)
	if content, ok := args.Get(0).([]byte); ok {
		if _, err := w.Write(content); err != nil {
			return nil, err
		}
		if args.Error(1) != nil {
			return nil, args.Error(1)
		}
		return &domain.GetObjectResult{Size: int64(len(content))}, nil
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GetObjectResult), args.Error(1)
}

// Head mocks the Head method of ObjectUseCase.
func (m *MockObjectUseCase) Head(ctx context.Context, input *domain.HeadObjectInput) (*domain.ObjectHead, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ObjectHead), args.Error(1)
}

// Copy mocks the Copy method of ObjectUseCase.
func (m *MockObjectUseCase) Copy(ctx context.Context, input *domain.CopyObjectInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

// Reencrypt mocks the Reencrypt method of ObjectUseCase.
func (m *MockObjectUseCase) Reencrypt(ctx context.Context, input *domain.ReencryptObjectInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

// Delete mocks the Delete method of ObjectUseCase.
func (m *MockObjectUseCase) Delete(ctx context.Context, input *domain.DeleteObjectInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

// List mocks the List method of ObjectUseCase.
func (m *MockObjectUseCase) List(ctx context.Context, input *domain.ListObjectsInput) ([]domain.ObjectSummary, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ObjectSummary), args.Error(1)
}
