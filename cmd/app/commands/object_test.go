package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/oscli/internal/errors"
	"github.com/allisson/oscli/internal/objectstorage/domain"
	objectStorageMocks "github.com/allisson/oscli/internal/objectstorage/usecase/mocks"
)

func TestRunPutObject(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	t.Run("file upload defaults name to base name", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.csv")
		require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0o600))

		mockUseCase := &objectStorageMocks.MockObjectUseCase{}
		mockUseCase.On("Put", ctx, mock.MatchedBy(func(in *domain.PutObjectInput) bool {
			return in.Bucket == "b1" && in.Object == "report.csv" && in.SSE == nil &&
				in.Metadata["owner"] == "ops" && in.VerifyChecksum
		}), []byte("a,b\n"), int64(4)).Return(&domain.PutObjectResult{ETag: "etag-1", Size: 4}, nil)

		var out bytes.Buffer
		err := RunPutObject(ctx, mockUseCase, logger, PutObjectOptions{
			Bucket:         "b1",
			File:           path,
			Metadata:       `{"owner":"ops"}`,
			VerifyChecksum: true,
		}, IOTuple{Writer: &out})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "etag-1")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("stdin with key file", func(t *testing.T) {
		mockUseCase := &objectStorageMocks.MockObjectUseCase{}
		mockUseCase.On("Put", ctx, mock.MatchedBy(func(in *domain.PutObjectInput) bool {
			return in.Object == "from-stdin" && in.SSE != nil && in.SSE.KeySha256Base64 == testKeySha256
		}), []byte("hello"), int64(5)).Return(&domain.PutObjectResult{}, nil)

		err := RunPutObject(ctx, mockUseCase, logger, PutObjectOptions{
			Bucket:            "b1",
			Name:              "from-stdin",
			File:              "-",
			EncryptionKeyFile: writeKeyFile(t),
		}, IOTuple{Reader: strings.NewReader("hello"), Writer: &bytes.Buffer{}})
		require.NoError(t, err)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("directory is rejected", func(t *testing.T) {
		mockUseCase := &objectStorageMocks.MockObjectUseCase{}
		err := RunPutObject(ctx, mockUseCase, logger, PutObjectOptions{
			Bucket: "b1",
			File:   t.TempDir(),
		}, IOTuple{Writer: &bytes.Buffer{}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is a directory")
		mockUseCase.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid key file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.key")
		require.NoError(t, os.WriteFile(path, []byte("not base64!"), 0o600))

		mockUseCase := &objectStorageMocks.MockObjectUseCase{}
		err := RunPutObject(ctx, mockUseCase, logger, PutObjectOptions{
			Bucket:            "b1",
			File:              "-",
			EncryptionKeyFile: path,
		}, IOTuple{Reader: strings.NewReader("x"), Writer: &bytes.Buffer{}})
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})
}

func TestPutObjectOptions_Validate(t *testing.T) {
	t.Run("name defaults to file name", func(t *testing.T) {
		assert.NoError(t, PutObjectOptions{Bucket: "b1", File: "/tmp/report.csv"}.Validate())
	})

	t.Run("stdin needs a name", func(t *testing.T) {
		err := PutObjectOptions{Bucket: "b1", File: "-"}.Validate()
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})

	t.Run("invalid metadata", func(t *testing.T) {
		err := PutObjectOptions{Bucket: "b1", File: "/tmp/report.csv", Metadata: "{"}.Validate()
		assert.ErrorIs(t, err, errors.ErrUsage)
	})
}

func TestRunPutObject_ResponseHeaders(t *testing.T) {
	ctx := context.Background()
	mockUseCase := &objectStorageMocks.MockObjectUseCase{}
	mockUseCase.On("Put", ctx, mock.MatchedBy(func(in *domain.PutObjectInput) bool {
		return in.Object == "page.html" &&
			in.ContentType == "text/html" &&
			in.ContentDisposition == "inline" &&
			in.CacheControl == "max-age=60"
	}), []byte("<p>"), int64(3)).Return(&domain.PutObjectResult{}, nil)

	err := RunPutObject(ctx, mockUseCase, discardLogger(), PutObjectOptions{
		Bucket:             "b1",
		Name:               "page.html",
		File:               "-",
		ContentType:        "text/html",
		ContentDisposition: "inline",
		CacheControl:       "max-age=60",
	}, IOTuple{Reader: strings.NewReader("<p>"), Writer: &bytes.Buffer{}})
	require.NoError(t, err)
	mockUseCase.AssertExpectations(t)
}

func TestCopyObjectOptions_Validate(t *testing.T) {
	opts := CopyObjectOptions{
		Bucket:            "b1",
		SourceObjectName:  "a.txt",
		DestinationBucket: "b2",
		DestinationRegion: "us-ashburn-1",
	}
	assert.NoError(t, opts.Validate())

	opts.DestinationRegion = ""
	assert.ErrorIs(t, opts.Validate(), errors.ErrInvalidInput)
}

func TestRunGetObject(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	t.Run("to file", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "out.txt")

		mockUseCase := &objectStorageMocks.MockObjectUseCase{}
		mockUseCase.On("Get", ctx, mock.MatchedBy(func(in *domain.GetObjectInput) bool {
			return in.Object == "o1" && in.VersionID == "v1"
		})).Return([]byte("payload"), nil)

		err := RunGetObject(ctx, mockUseCase, logger, GetObjectOptions{
			Bucket:    "b1",
			Name:      "o1",
			File:      target,
			VersionID: "v1",
		}, IOTuple{})
		require.NoError(t, err)

		content, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(content))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("to stdout", func(t *testing.T) {
		mockUseCase := &objectStorageMocks.MockObjectUseCase{}
		mockUseCase.On("Get", ctx, mock.Anything).Return([]byte("payload"), nil)

		var out bytes.Buffer
		err := RunGetObject(ctx, mockUseCase, logger, GetObjectOptions{
			Bucket: "b1",
			Name:   "o1",
			File:   "-",
		}, IOTuple{Writer: &out})
		require.NoError(t, err)
		assert.Equal(t, "payload", out.String())
	})

	t.Run("failure leaves no file", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "out.txt")

		mockUseCase := &objectStorageMocks.MockObjectUseCase{}
		mockUseCase.On("Get", ctx, mock.Anything).Return([]byte("part"), errors.ErrConflict)

		err := RunGetObject(ctx, mockUseCase, logger, GetObjectOptions{
			Bucket: "b1",
			Name:   "o1",
			File:   target,
		}, IOTuple{})
		assert.ErrorIs(t, err, errors.ErrConflict)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestRunHeadObject(t *testing.T) {
	ctx := context.Background()
	mockUseCase := &objectStorageMocks.MockObjectUseCase{}
	mockUseCase.On("Head", ctx, mock.MatchedBy(func(in *domain.HeadObjectInput) bool {
		return in.Object == "o1" && in.SSE != nil
	})).Return(&domain.ObjectHead{ETag: "etag-9"}, nil)

	var out bytes.Buffer
	err := RunHeadObject(ctx, mockUseCase, "", "b1", "o1", "", writeKeyFile(t), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "etag-9")
	mockUseCase.AssertExpectations(t)
}

func TestRunCopyObject(t *testing.T) {
	ctx := context.Background()
	keyFile := writeKeyFile(t)

	mockUseCase := &objectStorageMocks.MockObjectUseCase{}
	mockUseCase.On("Copy", ctx, mock.MatchedBy(func(in *domain.CopyObjectInput) bool {
		return in.Object == "src" && in.DestinationBucket == "b2" && in.DestinationRegion == "us-ashburn-1" &&
			in.SSE != nil && in.SourceSSE != nil
	})).Return("wr-1", nil)

	var out bytes.Buffer
	err := RunCopyObject(ctx, mockUseCase, discardLogger(), CopyObjectOptions{
		Bucket:                  "b1",
		SourceObjectName:        "src",
		DestinationRegion:       "us-ashburn-1",
		DestinationBucket:       "b2",
		EncryptionKeyFile:       keyFile,
		SourceEncryptionKeyFile: keyFile,
	}, &out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"opc-work-request-id":"wr-1"}`, out.String())
}

func TestRunReencryptObject(t *testing.T) {
	ctx := context.Background()

	mockUseCase := &objectStorageMocks.MockObjectUseCase{}
	mockUseCase.On("Reencrypt", ctx, mock.MatchedBy(func(in *domain.ReencryptObjectInput) bool {
		return in.Object == "o1" && in.KmsKeyID == "kms-1" && in.SSE == nil && in.SourceSSE != nil
	})).Return(nil)

	err := RunReencryptObject(ctx, mockUseCase, discardLogger(), ReencryptObjectOptions{
		Bucket:                  "b1",
		Name:                    "o1",
		KmsKeyID:                "kms-1",
		SourceEncryptionKeyFile: writeKeyFile(t),
	})
	require.NoError(t, err)
	mockUseCase.AssertExpectations(t)
}

func TestRunDeleteObject(t *testing.T) {
	ctx := context.Background()

	mockUseCase := &objectStorageMocks.MockObjectUseCase{}
	mockUseCase.On("Delete", ctx, &domain.DeleteObjectInput{
		ObjectLocation: domain.ObjectLocation{Bucket: "b1", Object: "o1"},
		VersionID:      "v2",
	}).Return(errors.ErrNotFound)

	err := RunDeleteObject(ctx, mockUseCase, discardLogger(), "", "b1", "o1", "v2")
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestRunListObjects(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockUseCase := &objectStorageMocks.MockObjectUseCase{}
		mockUseCase.On("List", ctx, &domain.ListObjectsInput{Bucket: "b1", Prefix: "logs/", Limit: 10}).
			Return([]domain.ObjectSummary{{Name: "logs/a", Size: 3}}, nil)

		var out bytes.Buffer
		require.NoError(t, RunListObjects(ctx, mockUseCase, "", "b1", "logs/", "", 10, &out))
		assert.Contains(t, out.String(), `"logs/a"`)
	})

	t.Run("empty list", func(t *testing.T) {
		mockUseCase := &objectStorageMocks.MockObjectUseCase{}
		mockUseCase.On("List", ctx, mock.Anything).Return(nil, nil)

		var out bytes.Buffer
		require.NoError(t, RunListObjects(ctx, mockUseCase, "", "b1", "", "", 0, &out))
		assert.JSONEq(t, `{"data":[]}`, out.String())
	})
}
