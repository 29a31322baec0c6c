package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/allisson/oscli/internal/objectstorage/domain"
	objectStorageUseCase "github.com/allisson/oscli/internal/objectstorage/usecase"
	sseDomain "github.com/allisson/oscli/internal/sse/domain"
)

// PutObjectOptions are the options of `os object put`.
type PutObjectOptions struct {
	Namespace          string
	Bucket             string
	Name               string
	File               string
	ContentType        string
	ContentDisposition string
	CacheControl       string
	Metadata           string
	EncryptionKeyFile  string
	VerifyChecksum     bool
}

// Validate checks the options that need no service call.
func (o PutObjectOptions) Validate() error {
	metadata, err := parseMetadata(o.Metadata)
	if err != nil {
		return err
	}
	return o.input(metadata, nil).Validate()
}

// objectName defaults to the uploaded file name.
func (o PutObjectOptions) objectName() string {
	if o.Name == "" && o.File != "-" {
		return filepath.Base(o.File)
	}
	return o.Name
}

func (o PutObjectOptions) input(metadata map[string]string, key *sseDomain.KeyMaterial) *domain.PutObjectInput {
	return &domain.PutObjectInput{
		ObjectLocation: domain.ObjectLocation{
			Namespace: o.Namespace,
			Bucket:    o.Bucket,
			Object:    o.objectName(),
		},
		ContentType:        o.ContentType,
		ContentDisposition: o.ContentDisposition,
		CacheControl:       o.CacheControl,
		Metadata:           metadata,
		SSE:                key,
		VerifyChecksum:     o.VerifyChecksum,
	}
}

// RunPutObject uploads a local file, or stdin when File is "-". The object
// name defaults to the file name.
func RunPutObject(
	ctx context.Context,
	objectUseCase objectStorageUseCase.ObjectUseCase,
	logger *slog.Logger,
	opts PutObjectOptions,
	stdio IOTuple,
) error {
	key, err := loadKeyMaterial(opts.EncryptionKeyFile)
	if err != nil {
		return err
	}
	metadata, err := parseMetadata(opts.Metadata)
	if err != nil {
		return err
	}

	body, size, closeBody, err := openUpload(opts.File, stdio)
	if err != nil {
		return err
	}
	defer closeBody()

	input := opts.input(metadata, key)
	logger.Info("uploading object",
		slog.String("bucket", opts.Bucket),
		slog.String("object", input.Object),
		slog.Int64("size", size),
	)

	result, err := objectUseCase.Put(ctx, input, body, size)
	if err != nil {
		return err
	}

	return writeJSON(stdio.Writer, result)
}

// GetObjectOptions are the options of `os object get`.
type GetObjectOptions struct {
	Namespace         string
	Bucket            string
	Name              string
	File              string
	VersionID         string
	EncryptionKeyFile string
}

// RunGetObject downloads an object to File, or to stdout when File is "-".
// A failed download never leaves a partial file behind.
func RunGetObject(
	ctx context.Context,
	objectUseCase objectStorageUseCase.ObjectUseCase,
	logger *slog.Logger,
	opts GetObjectOptions,
	stdio IOTuple,
) error {
	key, err := loadKeyMaterial(opts.EncryptionKeyFile)
	if err != nil {
		return err
	}

	input := &domain.GetObjectInput{
		ObjectLocation: domain.ObjectLocation{
			Namespace: opts.Namespace,
			Bucket:    opts.Bucket,
			Object:    opts.Name,
		},
		VersionID: opts.VersionID,
		SSE:       key,
	}

	if opts.File == "-" {
		_, err := objectUseCase.Get(ctx, input, stdio.Writer)
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(opts.File), ".oscli-download-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := f.Name()
	defer func() { _ = os.Remove(tmpName) }()

	result, err := objectUseCase.Get(ctx, input, f)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to write %s: %w", opts.File, closeErr)
	}
	if err != nil {
		return err
	}
	if err := os.Rename(tmpName, opts.File); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.File, err)
	}

	logger.Info("object downloaded",
		slog.String("object", opts.Name),
		slog.String("file", opts.File),
		slog.Int64("size", result.Size),
	)
	return nil
}

// RunHeadObject prints the metadata of an object.
func RunHeadObject(
	ctx context.Context,
	objectUseCase objectStorageUseCase.ObjectUseCase,
	namespace, bucket, name, versionID, encryptionKeyFile string,
	writer io.Writer,
) error {
	key, err := loadKeyMaterial(encryptionKeyFile)
	if err != nil {
		return err
	}

	head, err := objectUseCase.Head(ctx, &domain.HeadObjectInput{
		ObjectLocation: domain.ObjectLocation{Namespace: namespace, Bucket: bucket, Object: name},
		VersionID:      versionID,
		SSE:            key,
	})
	if err != nil {
		return err
	}
	return writeJSON(writer, head)
}

// CopyObjectOptions are the options of `os object copy`.
type CopyObjectOptions struct {
	Namespace               string
	Bucket                  string
	SourceObjectName        string
	SourceVersionID         string
	DestinationRegion       string
	DestinationNamespace    string
	DestinationBucket       string
	DestinationObjectName   string
	EncryptionKeyFile       string
	SourceEncryptionKeyFile string
}

// Validate checks the options that need no service call.
func (o CopyObjectOptions) Validate() error {
	return o.input(nil, nil).Validate()
}

func (o CopyObjectOptions) input(key, sourceKey *sseDomain.KeyMaterial) *domain.CopyObjectInput {
	return &domain.CopyObjectInput{
		ObjectLocation: domain.ObjectLocation{
			Namespace: o.Namespace,
			Bucket:    o.Bucket,
			Object:    o.SourceObjectName,
		},
		SourceVersionID:       o.SourceVersionID,
		DestinationRegion:     o.DestinationRegion,
		DestinationNamespace:  o.DestinationNamespace,
		DestinationBucket:     o.DestinationBucket,
		DestinationObjectName: o.DestinationObjectName,
		SSE:                   key,
		SourceSSE:             sourceKey,
	}
}

// RunCopyObject starts an asynchronous copy and prints its work request id.
func RunCopyObject(
	ctx context.Context,
	objectUseCase objectStorageUseCase.ObjectUseCase,
	logger *slog.Logger,
	opts CopyObjectOptions,
	writer io.Writer,
) error {
	key, err := loadKeyMaterial(opts.EncryptionKeyFile)
	if err != nil {
		return err
	}
	sourceKey, err := loadKeyMaterial(opts.SourceEncryptionKeyFile)
	if err != nil {
		return err
	}

	workRequestID, err := objectUseCase.Copy(ctx, opts.input(key, sourceKey))
	if err != nil {
		return err
	}

	logger.Info("copy started", slog.String("work_request_id", workRequestID))
	return writeJSON(writer, map[string]string{"opc-work-request-id": workRequestID})
}

// ReencryptObjectOptions are the options of `os object reencrypt`.
type ReencryptObjectOptions struct {
	Namespace               string
	Bucket                  string
	Name                    string
	VersionID               string
	KmsKeyID                string
	EncryptionKeyFile       string
	SourceEncryptionKeyFile string
}

// RunReencryptObject re-encrypts an object's data key.
func RunReencryptObject(
	ctx context.Context,
	objectUseCase objectStorageUseCase.ObjectUseCase,
	logger *slog.Logger,
	opts ReencryptObjectOptions,
) error {
	key, err := loadKeyMaterial(opts.EncryptionKeyFile)
	if err != nil {
		return err
	}
	sourceKey, err := loadKeyMaterial(opts.SourceEncryptionKeyFile)
	if err != nil {
		return err
	}

	err = objectUseCase.Reencrypt(ctx, &domain.ReencryptObjectInput{
		ObjectLocation: domain.ObjectLocation{Namespace: opts.Namespace, Bucket: opts.Bucket, Object: opts.Name},
		VersionID:      opts.VersionID,
		KmsKeyID:       opts.KmsKeyID,
		SSE:            key,
		SourceSSE:      sourceKey,
	})
	if err != nil {
		return err
	}

	logger.Info("object reencrypted", slog.String("object", opts.Name))
	return nil
}

// RunDeleteObject deletes an object or one of its versions.
func RunDeleteObject(
	ctx context.Context,
	objectUseCase objectStorageUseCase.ObjectUseCase,
	logger *slog.Logger,
	namespace, bucket, name, versionID string,
) error {
	err := objectUseCase.Delete(ctx, &domain.DeleteObjectInput{
		ObjectLocation: domain.ObjectLocation{Namespace: namespace, Bucket: bucket, Object: name},
		VersionID:      versionID,
	})
	if err != nil {
		return err
	}
	logger.Info("object deleted", slog.String("object", name))
	return nil
}

// RunListObjects prints the objects of a bucket.
func RunListObjects(
	ctx context.Context,
	objectUseCase objectStorageUseCase.ObjectUseCase,
	namespace, bucket, prefix, start string,
	limit int,
	writer io.Writer,
) error {
	objects, err := objectUseCase.List(ctx, &domain.ListObjectsInput{
		Namespace: namespace,
		Bucket:    bucket,
		Prefix:    prefix,
		Start:     start,
		Limit:     limit,
	})
	if err != nil {
		return err
	}
	if objects == nil {
		objects = []domain.ObjectSummary{}
	}
	return writeData(writer, objects)
}

// openUpload opens the upload source. Stdin is buffered in memory because the
// body must be seekable for checksum verification.
func openUpload(path string, stdio IOTuple) (body io.ReadSeeker, size int64, closeFn func(), err error) {
	if path == "-" {
		content, err := io.ReadAll(stdio.Reader)
		if err != nil {
			return nil, 0, nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return bytes.NewReader(content), int64(len(content)), func() {}, nil
	}

	f, err := os.Open(path) //nolint:gosec // user-supplied upload path
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, 0, nil, fmt.Errorf("%s is a directory, use bulk-upload", path)
	}
	return f, info.Size(), func() { _ = f.Close() }, nil
}
