package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/oracle/oci-go-sdk/v65/objectstorage"

	"github.com/allisson/oscli/internal/objectstorage/domain"
	objectStorageUseCase "github.com/allisson/oscli/internal/objectstorage/usecase"
)

// CreateBucketOptions are the options of `os bucket create`.
type CreateBucketOptions struct {
	Namespace        string
	Name             string
	CompartmentID    string
	StorageTier      string
	PublicAccessType string
	KmsKeyID         string
	Versioning       bool
	Metadata         string
}

// Validate checks the options that need no service call.
func (o CreateBucketOptions) Validate() error {
	input, err := o.input()
	if err != nil {
		return err
	}
	return input.Validate()
}

func (o CreateBucketOptions) input() (*domain.CreateBucketInput, error) {
	metadata, err := parseMetadata(o.Metadata)
	if err != nil {
		return nil, err
	}
	return &domain.CreateBucketInput{
		Namespace:        o.Namespace,
		Name:             o.Name,
		CompartmentID:    o.CompartmentID,
		StorageTier:      o.StorageTier,
		PublicAccessType: o.PublicAccessType,
		KmsKeyID:         o.KmsKeyID,
		Versioning:       o.Versioning,
		Metadata:         metadata,
	}, nil
}

// RunCreateBucket creates a bucket and prints it.
func RunCreateBucket(
	ctx context.Context,
	bucketUseCase objectStorageUseCase.BucketUseCase,
	logger *slog.Logger,
	opts CreateBucketOptions,
	writer io.Writer,
) error {
	input, err := opts.input()
	if err != nil {
		return err
	}

	bucket, err := bucketUseCase.Create(ctx, input)
	if err != nil {
		return err
	}

	logger.Info("bucket created", slog.String("bucket", opts.Name))
	return writeData(writer, bucket)
}

// RunGetBucket prints a bucket.
func RunGetBucket(
	ctx context.Context,
	bucketUseCase objectStorageUseCase.BucketUseCase,
	namespace, bucket string,
	writer io.Writer,
) error {
	b, err := bucketUseCase.Get(ctx, namespace, bucket)
	if err != nil {
		return err
	}
	return writeData(writer, b)
}

// RunListBuckets prints the buckets of a compartment.
func RunListBuckets(
	ctx context.Context,
	bucketUseCase objectStorageUseCase.BucketUseCase,
	namespace, compartmentID string,
	limit int,
	writer io.Writer,
) error {
	buckets, err := bucketUseCase.List(ctx, namespace, compartmentID, limit)
	if err != nil {
		return err
	}
	if buckets == nil {
		buckets = []objectstorage.BucketSummary{}
	}
	return writeData(writer, buckets)
}

// RunDeleteBucket deletes an empty bucket.
func RunDeleteBucket(
	ctx context.Context,
	bucketUseCase objectStorageUseCase.BucketUseCase,
	logger *slog.Logger,
	namespace, bucket string,
) error {
	if err := bucketUseCase.Delete(ctx, namespace, bucket); err != nil {
		return err
	}
	logger.Info("bucket deleted", slog.String("bucket", bucket))
	return nil
}
