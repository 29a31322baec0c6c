package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/objectstorage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/oscli/internal/errors"
	"github.com/allisson/oscli/internal/objectstorage/domain"
	"github.com/allisson/oscli/internal/objectstorage/usecase/mocks"
	sseDomain "github.com/allisson/oscli/internal/sse/domain"
)

// md5 of "hello world"
const helloMD5 = "XrY7u+Ae7tCTyyK7j1rNww=="

func testKey() *sseDomain.KeyMaterial {
	return &sseDomain.KeyMaterial{
		Algorithm:       sseDomain.AES256,
		KeyBase64:       "AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8=",
		KeySha256Base64: "Y2hlY2tzdW0=",
	}
}

func location() domain.ObjectLocation {
	return domain.ObjectLocation{Namespace: "ns", Bucket: "bucket", Object: "hello.txt"}
}

func TestObjectUseCase_Put(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_WithEncryptionKey", func(t *testing.T) {
		client := mocks.NewMockClient(t)
		key := testKey()
		client.On("PutObject", ctx, mock.MatchedBy(func(req objectstorage.PutObjectRequest) bool {
			body, _ := io.ReadAll(req.PutObjectBody)
			return *req.NamespaceName == "ns" &&
				*req.BucketName == "bucket" &&
				*req.ObjectName == "hello.txt" &&
				*req.ContentLength == 11 &&
				string(body) == "hello world" &&
				*req.OpcSseCustomerAlgorithm == "AES256" &&
				*req.OpcSseCustomerKey == key.KeyBase64 &&
				*req.OpcSseCustomerKeySha256 == key.KeySha256Base64
		})).Return(objectstorage.PutObjectResponse{
			ETag:          common.String("etag-1"),
			OpcContentMd5: common.String(helloMD5),
		}, nil).Once()

		uc := NewObjectUseCase(client)
		result, err := uc.Put(ctx, &domain.PutObjectInput{ObjectLocation: location(), SSE: key},
			strings.NewReader("hello world"), 11)

		require.NoError(t, err)
		assert.Equal(t, "etag-1", result.ETag)
		assert.Equal(t, helloMD5, result.ContentMD5)
	})

	t.Run("Success_WithResponseHeaders", func(t *testing.T) {
		client := mocks.NewMockClient(t)
		client.On("PutObject", ctx, mock.MatchedBy(func(req objectstorage.PutObjectRequest) bool {
			return *req.ContentType == "text/plain" &&
				*req.ContentDisposition == "attachment; filename=hello.txt" &&
				*req.CacheControl == "no-cache" &&
				req.ContentEncoding == nil
		})).Return(objectstorage.PutObjectResponse{}, nil).Once()

		uc := NewObjectUseCase(client)
		_, err := uc.Put(ctx, &domain.PutObjectInput{
			ObjectLocation:     location(),
			ContentType:        "text/plain",
			ContentDisposition: "attachment; filename=hello.txt",
			CacheControl:       "no-cache",
		}, strings.NewReader("hello world"), 11)

		assert.NoError(t, err)
	})

	t.Run("Success_OmitsEmptyResponseHeaders", func(t *testing.T) {
		client := mocks.NewMockClient(t)
		client.On("PutObject", ctx, mock.MatchedBy(func(req objectstorage.PutObjectRequest) bool {
			return req.ContentDisposition == nil && req.CacheControl == nil
		})).Return(objectstorage.PutObjectResponse{}, nil).Once()

		uc := NewObjectUseCase(client)
		_, err := uc.Put(ctx, &domain.PutObjectInput{ObjectLocation: location()},
			strings.NewReader("hello world"), 11)

		assert.NoError(t, err)
	})

	t.Run("Success_VerifyChecksum", func(t *testing.T) {
		client := mocks.NewMockClient(t)
		client.On("PutObject", ctx, mock.MatchedBy(func(req objectstorage.PutObjectRequest) bool {
			body, _ := io.ReadAll(req.PutObjectBody)
			return string(body) == "hello world" && req.OpcSseCustomerKey == nil
		})).Return(objectstorage.PutObjectResponse{OpcContentMd5: common.String(helloMD5)}, nil).Once()

		uc := NewObjectUseCase(client)
		_, err := uc.Put(ctx, &domain.PutObjectInput{ObjectLocation: location(), VerifyChecksum: true},
			strings.NewReader("hello world"), 11)

		assert.NoError(t, err)
	})

	t.Run("Error_ChecksumMismatch", func(t *testing.T) {
		client := mocks.NewMockClient(t)
		client.On("PutObject", ctx, mock.Anything).
			Return(objectstorage.PutObjectResponse{OpcContentMd5: common.String("bm90LXRoZS1zYW1l")}, nil).
			Once()

		uc := NewObjectUseCase(client)
		result, err := uc.Put(ctx, &domain.PutObjectInput{ObjectLocation: location(), VerifyChecksum: true},
			strings.NewReader("hello world"), 11)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrChecksumMismatch)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Contains(t, err.Error(), helloMD5)
		require.NotNil(t, result)
	})

	t.Run("Error_ServicePropagates", func(t *testing.T) {
		client := mocks.NewMockClient(t)
		serviceErr := errors.New("service unavailable")
		client.On("PutObject", ctx, mock.Anything).Return(objectstorage.PutObjectResponse{}, serviceErr).Once()

		uc := NewObjectUseCase(client)
		_, err := uc.Put(ctx, &domain.PutObjectInput{ObjectLocation: location(), VerifyChecksum: true},
			strings.NewReader("hello world"), 11)

		require.Error(t, err)
		assert.ErrorIs(t, err, serviceErr)
		assert.NotErrorIs(t, err, domain.ErrChecksumMismatch)
	})

	t.Run("Error_InvalidInputNeverCallsService", func(t *testing.T) {
		client := mocks.NewMockClient(t)

		uc := NewObjectUseCase(client)
		_, err := uc.Put(ctx, &domain.PutObjectInput{}, strings.NewReader(""), 0)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Success_ResolvesNamespace", func(t *testing.T) {
		client := mocks.NewMockClient(t)
		client.On("GetNamespace", ctx, mock.Anything).
			Return(objectstorage.GetNamespaceResponse{Value: common.String("tenancy")}, nil).
			Once()
		client.On("PutObject", ctx, mock.MatchedBy(func(req objectstorage.PutObjectRequest) bool {
			return *req.NamespaceName == "tenancy"
		})).Return(objectstorage.PutObjectResponse{}, nil).Once()

		loc := location()
		loc.Namespace = ""
		_, err := NewObjectUseCase(client).Put(ctx, &domain.PutObjectInput{ObjectLocation: loc},
			strings.NewReader("x"), 1)

		assert.NoError(t, err)
	})
}

func TestObjectUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client := mocks.NewMockClient(t)
		client.On("GetObject", ctx, mock.MatchedBy(func(req objectstorage.GetObjectRequest) bool {
			return *req.ObjectName == "hello.txt" && *req.VersionId == "v1" && *req.OpcSseCustomerAlgorithm == "AES256"
		})).Return(objectstorage.GetObjectResponse{
			Content:    io.NopCloser(strings.NewReader("hello world")),
			ETag:       common.String("etag-1"),
			ContentMd5: common.String(helloMD5),
		}, nil).Once()

		var buf bytes.Buffer
		result, err := NewObjectUseCase(client).Get(ctx, &domain.GetObjectInput{
			ObjectLocation: location(),
			VersionID:      "v1",
			SSE:            testKey(),
		}, &buf)

		require.NoError(t, err)
		assert.Equal(t, "hello world", buf.String())
		assert.Equal(t, int64(11), result.Size)
		assert.Equal(t, helloMD5, result.ContentMD5)
	})

	t.Run("Error", func(t *testing.T) {
		client := mocks.NewMockClient(t)
		client.On("GetObject", ctx, mock.MatchedBy(func(req objectstorage.GetObjectRequest) bool {
			return req.VersionId == nil && req.OpcSseCustomerKey == nil
		})).Return(objectstorage.GetObjectResponse{}, errors.New("not found")).Once()

		_, err := NewObjectUseCase(client).Get(ctx, &domain.GetObjectInput{ObjectLocation: location()}, io.Discard)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get object")
	})
}

func TestObjectUseCase_Head(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockClient(t)
	client.On("HeadObject", ctx, mock.Anything).Return(objectstorage.HeadObjectResponse{
		ETag:          common.String("etag-1"),
		ContentLength: common.Int64(11),
		ContentType:   common.String("text/plain"),
		OpcMeta:       map[string]string{"owner": "ops"},
	}, nil).Once()

	head, err := NewObjectUseCase(client).Head(ctx, &domain.HeadObjectInput{ObjectLocation: location()})

	require.NoError(t, err)
	assert.Equal(t, "hello.txt", head.Name)
	assert.Equal(t, int64(11), head.ContentLength)
	assert.Equal(t, "text/plain", head.ContentType)
	assert.Equal(t, "ops", head.Metadata["owner"])
}

func TestObjectUseCase_Copy(t *testing.T) {
	ctx := context.Background()
	dest := &sseDomain.KeyMaterial{Algorithm: sseDomain.AES256, KeyBase64: "ZGVzdA==", KeySha256Base64: "ZGVzdC1zaGE="}
	source := testKey()

	client := mocks.NewMockClient(t)
	client.On("CopyObject", ctx, mock.MatchedBy(func(req objectstorage.CopyObjectRequest) bool {
		d := req.CopyObjectDetails
		return *d.SourceObjectName == "hello.txt" &&
			*d.DestinationNamespace == "ns" &&
			*d.DestinationRegion == "us-phoenix-1" &&
			*d.DestinationBucket == "archive" &&
			*d.DestinationObjectName == "hello.txt" &&
			*req.OpcSseCustomerKey == dest.KeyBase64 &&
			*req.OpcSourceSseCustomerKey == source.KeyBase64 &&
			*req.OpcSourceSseCustomerKeySha256 == source.KeySha256Base64
	})).Return(objectstorage.CopyObjectResponse{OpcWorkRequestId: common.String("wr-1")}, nil).Once()

	id, err := NewObjectUseCase(client).Copy(ctx, &domain.CopyObjectInput{
		ObjectLocation:    location(),
		DestinationRegion: "us-phoenix-1",
		DestinationBucket: "archive",
		SSE:               dest,
		SourceSSE:         source,
	})

	require.NoError(t, err)
	assert.Equal(t, "wr-1", id)
}

func TestObjectUseCase_Reencrypt(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_KeysInBody", func(t *testing.T) {
		key := testKey()
		client := mocks.NewMockClient(t)
		client.On("ReencryptObject", ctx, mock.MatchedBy(func(req objectstorage.ReencryptObjectRequest) bool {
			d := req.ReencryptObjectDetails
			return d.SseCustomerKey != nil &&
				d.SseCustomerKey.Algorithm == objectstorage.SseCustomerKeyDetailsAlgorithmAes256 &&
				*d.SseCustomerKey.Key == key.KeyBase64 &&
				*d.SseCustomerKey.KeySha256 == key.KeySha256Base64 &&
				d.SourceSseCustomerKey == nil &&
				d.KmsKeyId == nil
		})).Return(objectstorage.ReencryptObjectResponse{}, nil).Once()

		err := NewObjectUseCase(client).Reencrypt(ctx, &domain.ReencryptObjectInput{
			ObjectLocation: location(),
			SSE:            key,
		})
		assert.NoError(t, err)
	})

	t.Run("Error", func(t *testing.T) {
		client := mocks.NewMockClient(t)
		client.On("ReencryptObject", ctx, mock.Anything).
			Return(objectstorage.ReencryptObjectResponse{}, errors.New("conflict")).
			Once()

		err := NewObjectUseCase(client).Reencrypt(ctx, &domain.ReencryptObjectInput{ObjectLocation: location()})
		assert.Error(t, err)
	})
}

func TestObjectUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockClient(t)
	client.On("DeleteObject", ctx, mock.MatchedBy(func(req objectstorage.DeleteObjectRequest) bool {
		return *req.ObjectName == "hello.txt" && req.VersionId == nil
	})).Return(objectstorage.DeleteObjectResponse{}, nil).Once()

	assert.NoError(t, NewObjectUseCase(client).Delete(ctx, &domain.DeleteObjectInput{ObjectLocation: location()}))
}

func TestObjectUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_FollowsNextStartWith", func(t *testing.T) {
		client := mocks.NewMockClient(t)
		client.On("ListObjects", ctx, mock.MatchedBy(func(req objectstorage.ListObjectsRequest) bool {
			return req.Start == nil && *req.Prefix == "logs/"
		})).Return(objectstorage.ListObjectsResponse{ListObjects: objectstorage.ListObjects{
			Objects:       []objectstorage.ObjectSummary{{Name: common.String("logs/a"), Size: common.Int64(1)}},
			NextStartWith: common.String("logs/b"),
		}}, nil).Once()
		client.On("ListObjects", ctx, mock.MatchedBy(func(req objectstorage.ListObjectsRequest) bool {
			return req.Start != nil && *req.Start == "logs/b"
		})).Return(objectstorage.ListObjectsResponse{ListObjects: objectstorage.ListObjects{
			Objects: []objectstorage.ObjectSummary{{Name: common.String("logs/b"), Md5: common.String(helloMD5)}},
		}}, nil).Once()

		objects, err := NewObjectUseCase(client).List(ctx, &domain.ListObjectsInput{
			Namespace: "ns",
			Bucket:    "bucket",
			Prefix:    "logs/",
		})

		require.NoError(t, err)
		require.Len(t, objects, 2)
		assert.Equal(t, "logs/a", objects[0].Name)
		assert.Equal(t, int64(1), objects[0].Size)
		assert.Equal(t, helloMD5, objects[1].MD5)
	})

	t.Run("Success_StopsAtLimit", func(t *testing.T) {
		client := mocks.NewMockClient(t)
		client.On("ListObjects", ctx, mock.MatchedBy(func(req objectstorage.ListObjectsRequest) bool {
			return *req.Limit == 1
		})).Return(objectstorage.ListObjectsResponse{ListObjects: objectstorage.ListObjects{
			Objects:       []objectstorage.ObjectSummary{{Name: common.String("a")}},
			NextStartWith: common.String("b"),
		}}, nil).Once()

		objects, err := NewObjectUseCase(client).List(ctx, &domain.ListObjectsInput{
			Namespace: "ns",
			Bucket:    "bucket",
			Limit:     1,
		})

		require.NoError(t, err)
		assert.Len(t, objects, 1)
	})
}
