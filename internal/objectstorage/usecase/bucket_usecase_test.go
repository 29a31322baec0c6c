package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/objectstorage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/oscli/internal/errors"
	"github.com/allisson/oscli/internal/objectstorage/domain"
	"github.com/allisson/oscli/internal/objectstorage/usecase/mocks"
)

func TestBucketUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client := mocks.NewMockClient(t)
		client.On("CreateBucket", ctx, mock.MatchedBy(func(req objectstorage.CreateBucketRequest) bool {
			d := req.CreateBucketDetails
			return *req.NamespaceName == "ns" &&
				*d.Name == "logs" &&
				*d.CompartmentId == "ocid1.compartment" &&
				d.StorageTier == objectstorage.CreateBucketDetailsStorageTierStandard
		})).Return(objectstorage.CreateBucketResponse{
			Bucket: objectstorage.Bucket{Name: common.String("logs")},
		}, nil).Once()

		bucket, err := NewBucketUseCase(client).Create(ctx, &domain.CreateBucketInput{
			Namespace:     "ns",
			Name:          "logs",
			CompartmentID: "ocid1.compartment",
			StorageTier:   "standard",
		})
		require.NoError(t, err)
		assert.Equal(t, "logs", *bucket.Name)
	})

	t.Run("Error_Validation", func(t *testing.T) {
		client := mocks.NewMockClient(t)

		_, err := NewBucketUseCase(client).Create(ctx, &domain.CreateBucketInput{Name: "logs"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestBucketUseCase_List(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockClient(t)
	client.On("ListBuckets", ctx, mock.MatchedBy(func(req objectstorage.ListBucketsRequest) bool {
		return req.Page == nil
	})).Return(objectstorage.ListBucketsResponse{
		Items:       []objectstorage.BucketSummary{{Name: common.String("a")}},
		OpcNextPage: common.String("page-2"),
	}, nil).Once()
	client.On("ListBuckets", ctx, mock.MatchedBy(func(req objectstorage.ListBucketsRequest) bool {
		return req.Page != nil && *req.Page == "page-2"
	})).Return(objectstorage.ListBucketsResponse{
		Items: []objectstorage.BucketSummary{{Name: common.String("b")}},
	}, nil).Once()

	buckets, err := NewBucketUseCase(client).List(ctx, "ns", "ocid1.compartment", 0)
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, "b", *buckets[1].Name)
}

func TestBucketUseCase_GetAndDelete(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockClient(t)
	client.On("GetBucket", ctx, mock.Anything).Return(objectstorage.GetBucketResponse{
		Bucket: objectstorage.Bucket{Name: common.String("logs")},
	}, nil).Once()
	client.On("DeleteBucket", ctx, mock.Anything).
		Return(objectstorage.DeleteBucketResponse{}, errors.New("bucket not empty")).
		Once()

	uc := NewBucketUseCase(client)
	bucket, err := uc.Get(ctx, "ns", "logs")
	require.NoError(t, err)
	assert.Equal(t, "logs", *bucket.Name)

	err = uc.Delete(ctx, "ns", "logs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket not empty")
}
