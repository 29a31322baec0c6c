package usecase

import (
	"context"
	"io"
	"time"

	"github.com/allisson/oscli/internal/metrics"
	"github.com/allisson/oscli/internal/objectstorage/domain"
)

const objectDomain = "object"

// objectUseCaseWithMetrics decorates ObjectUseCase with metrics instrumentation.
type objectUseCaseWithMetrics struct {
	next    ObjectUseCase
	metrics metrics.BusinessMetrics
}

// NewObjectUseCaseWithMetrics wraps an ObjectUseCase with metrics recording.
func NewObjectUseCaseWithMetrics(useCase ObjectUseCase, m metrics.BusinessMetrics) ObjectUseCase {
	return &objectUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (o *objectUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}
	o.metrics.RecordOperation(ctx, objectDomain, operation, status)
	o.metrics.RecordDuration(ctx, objectDomain, operation, time.Since(start), status)
}

// Put records metrics and uploaded bytes for object uploads.
func (o *objectUseCaseWithMetrics) Put(
	ctx context.Context,
	input *domain.PutObjectInput,
	body io.ReadSeeker,
	size int64,
) (*domain.PutObjectResult, error) {
	start := time.Now()
	result, err := o.next.Put(ctx, input, body, size)
	o.record(ctx, "put", start, err)
	if err == nil {
		o.metrics.RecordBytes(ctx, "upload", size)
	}
	return result, err
}

// Get records metrics and downloaded bytes for object downloads.
func (o *objectUseCaseWithMetrics) Get(
	ctx context.Context,
	input *domain.GetObjectInput,
	w io.Writer,
) (*domain.GetObjectResult, error) {
	start := time.Now()
	result, err := o.next.Get(ctx, input, w)
	o.record(ctx, "get", start, err)
	if err == nil && result != nil {
		o.metrics.RecordBytes(ctx, "download", result.Size)
	}
	return result, err
}

// Head records metrics for object metadata lookups.
func (o *objectUseCaseWithMetrics) Head(ctx context.Context, input *domain.HeadObjectInput) (*domain.ObjectHead, error) {
	start := time.Now()
	head, err := o.next.Head(ctx, input)
	o.record(ctx, "head", start, err)
	return head, err
}

// Copy records metrics for copy requests.
func (o *objectUseCaseWithMetrics) Copy(ctx context.Context, input *domain.CopyObjectInput) (string, error) {
	start := time.Now()
	workRequestID, err := o.next.Copy(ctx, input)
	o.record(ctx, "copy", start, err)
	return workRequestID, err
}

// Reencrypt records metrics for reencrypt requests.
func (o *objectUseCaseWithMetrics) Reencrypt(ctx context.Context, input *domain.ReencryptObjectInput) error {
	start := time.Now()
	err := o.next.Reencrypt(ctx, input)
	o.record(ctx, "reencrypt", start, err)
	return err
}

// Delete records metrics for object deletions.
func (o *objectUseCaseWithMetrics) Delete(ctx context.Context, input *domain.DeleteObjectInput) error {
	start := time.Now()
	err := o.next.Delete(ctx, input)
	o.record(ctx, "delete", start, err)
	return err
}

// List records metrics for object listings.
func (o *objectUseCaseWithMetrics) List(
	ctx context.Context,
	input *domain.ListObjectsInput,
) ([]domain.ObjectSummary, error) {
	start := time.Now()
	objects, err := o.next.List(ctx, input)
	o.record(ctx, "list", start, err)
	return objects, err
}
