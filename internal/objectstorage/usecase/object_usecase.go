package usecase

import (
	"context"
	"crypto/md5" //nolint:gosec // content-md5 is the service's integrity checksum
	"encoding/base64"
	"fmt"
	"io"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/objectstorage"

	apperrors "github.com/allisson/oscli/internal/errors"
	"github.com/allisson/oscli/internal/objectstorage/domain"
	sseDomain "github.com/allisson/oscli/internal/sse/domain"
)

type objectUseCase struct {
	client   Client
	resolver *namespaceResolver
}

// Put uploads a single object and, when requested, compares the local MD5
// with the opc-content-md5 returned by the service.
func (o *objectUseCase) Put(
	ctx context.Context,
	input *domain.PutObjectInput,
	body io.ReadSeeker,
	size int64,
) (*domain.PutObjectResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	ns, err := o.resolver.resolve(ctx, input.Namespace)
	if err != nil {
		return nil, err
	}

	var localMD5 string
	if input.VerifyChecksum {
		if localMD5, err = contentMD5(body); err != nil {
			return nil, err
		}
	}

	req := objectstorage.PutObjectRequest{
		NamespaceName:      &ns,
		BucketName:         &input.Bucket,
		ObjectName:         &input.Object,
		ContentLength:      common.Int64(size),
		PutObjectBody:      io.NopCloser(body),
		ContentType:        optional(input.ContentType),
		ContentDisposition: optional(input.ContentDisposition),
		CacheControl:       optional(input.CacheControl),
		OpcMeta:            input.Metadata,
		OpcClientRequestId: requestID(),
	}
	req.OpcSseCustomerAlgorithm, req.OpcSseCustomerKey, req.OpcSseCustomerKeySha256 = sseFields(
		input.SSE,
		sseDomain.PrimaryPrefix,
	)

	resp, err := o.client.PutObject(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to put object: %w", err)
	}

	result := &domain.PutObjectResult{
		ETag:       deref(resp.ETag),
		ContentMD5: deref(resp.OpcContentMd5),
		VersionID:  deref(resp.VersionId),
		Size:       size,
	}
	if input.VerifyChecksum && result.ContentMD5 != localMD5 {
		return result, apperrors.Wrapf(
			domain.ErrChecksumMismatch,
			"object %s: local md5 %s, remote md5 %s",
			input.Object, localMD5, result.ContentMD5,
		)
	}
	return result, nil
}

// Get streams the object to w.
func (o *objectUseCase) Get(
	ctx context.Context,
	input *domain.GetObjectInput,
	w io.Writer,
) (*domain.GetObjectResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	ns, err := o.resolver.resolve(ctx, input.Namespace)
	if err != nil {
		return nil, err
	}

	req := objectstorage.GetObjectRequest{
		NamespaceName:      &ns,
		BucketName:         &input.Bucket,
		ObjectName:         &input.Object,
		VersionId:          optional(input.VersionID),
		OpcClientRequestId: requestID(),
	}
	req.OpcSseCustomerAlgorithm, req.OpcSseCustomerKey, req.OpcSseCustomerKeySha256 = sseFields(
		input.SSE,
		sseDomain.PrimaryPrefix,
	)

	resp, err := o.client.GetObject(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer func() {
		if resp.Content != nil {
			_ = resp.Content.Close()
		}
	}()

	var n int64
	if resp.Content != nil {
		if n, err = io.Copy(w, resp.Content); err != nil {
			return nil, fmt.Errorf("failed to read object content: %w", err)
		}
	}

	return &domain.GetObjectResult{
		ETag:       deref(resp.ETag),
		ContentMD5: deref(resp.ContentMd5),
		Size:       n,
	}, nil
}

// Head returns the object metadata without its content.
func (o *objectUseCase) Head(ctx context.Context, input *domain.HeadObjectInput) (*domain.ObjectHead, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	ns, err := o.resolver.resolve(ctx, input.Namespace)
	if err != nil {
		return nil, err
	}

	req := objectstorage.HeadObjectRequest{
		NamespaceName:      &ns,
		BucketName:         &input.Bucket,
		ObjectName:         &input.Object,
		VersionId:          optional(input.VersionID),
		OpcClientRequestId: requestID(),
	}
	req.OpcSseCustomerAlgorithm, req.OpcSseCustomerKey, req.OpcSseCustomerKeySha256 = sseFields(
		input.SSE,
		sseDomain.PrimaryPrefix,
	)

	resp, err := o.client.HeadObject(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to head object: %w", err)
	}

	return &domain.ObjectHead{
		Name:          input.Object,
		ETag:          deref(resp.ETag),
		ContentLength: derefInt64(resp.ContentLength),
		ContentMD5:    deref(resp.ContentMd5),
		ContentType:   deref(resp.ContentType),
		VersionID:     deref(resp.VersionId),
		Metadata:      resp.OpcMeta,
	}, nil
}

// Copy starts a server side copy. The destination key applies to the new
// object and the source key decrypts the existing one.
func (o *objectUseCase) Copy(ctx context.Context, input *domain.CopyObjectInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}
	ns, err := o.resolver.resolve(ctx, input.Namespace)
	if err != nil {
		return "", err
	}
	destNamespace := input.DestinationNamespace
	if destNamespace == "" {
		destNamespace = ns
	}

	req := objectstorage.CopyObjectRequest{
		NamespaceName: &ns,
		BucketName:    &input.Bucket,
		CopyObjectDetails: objectstorage.CopyObjectDetails{
			SourceObjectName:      &input.Object,
			SourceVersionId:       optional(input.SourceVersionID),
			DestinationRegion:     &input.DestinationRegion,
			DestinationNamespace:  &destNamespace,
			DestinationBucket:     &input.DestinationBucket,
			DestinationObjectName: common.String(input.DestinationName()),
		},
		OpcClientRequestId: requestID(),
	}
	req.OpcSseCustomerAlgorithm, req.OpcSseCustomerKey, req.OpcSseCustomerKeySha256 = sseFields(
		input.SSE,
		sseDomain.PrimaryPrefix,
	)
	req.OpcSourceSseCustomerAlgorithm, req.OpcSourceSseCustomerKey, req.OpcSourceSseCustomerKeySha256 = sseFields(
		input.SourceSSE,
		sseDomain.SourcePrefix,
	)

	resp, err := o.client.CopyObject(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to copy object: %w", err)
	}
	return deref(resp.OpcWorkRequestId), nil
}

// Reencrypt rotates the data encryption key of an object. Customer keys travel
// in the request body rather than in headers.
func (o *objectUseCase) Reencrypt(ctx context.Context, input *domain.ReencryptObjectInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	ns, err := o.resolver.resolve(ctx, input.Namespace)
	if err != nil {
		return err
	}

	details := objectstorage.ReencryptObjectDetails{
		KmsKeyId: optional(input.KmsKeyID),
	}
	if input.SSE != nil {
		details.SseCustomerKey = input.SSE.Details().ToSDK()
	}
	if input.SourceSSE != nil {
		details.SourceSseCustomerKey = input.SourceSSE.Details().ToSDK()
	}

	_, err = o.client.ReencryptObject(ctx, objectstorage.ReencryptObjectRequest{
		NamespaceName:          &ns,
		BucketName:             &input.Bucket,
		ObjectName:             &input.Object,
		VersionId:              optional(input.VersionID),
		ReencryptObjectDetails: details,
		OpcClientRequestId:     requestID(),
	})
	if err != nil {
		return fmt.Errorf("failed to reencrypt object: %w", err)
	}
	return nil
}

// Delete removes an object or one of its versions.
func (o *objectUseCase) Delete(ctx context.Context, input *domain.DeleteObjectInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	ns, err := o.resolver.resolve(ctx, input.Namespace)
	if err != nil {
		return err
	}

	_, err = o.client.DeleteObject(ctx, objectstorage.DeleteObjectRequest{
		NamespaceName:      &ns,
		BucketName:         &input.Bucket,
		ObjectName:         &input.Object,
		VersionId:          optional(input.VersionID),
		OpcClientRequestId: requestID(),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// List pages through the objects of a bucket, following nextStartWith.
func (o *objectUseCase) List(ctx context.Context, input *domain.ListObjectsInput) ([]domain.ObjectSummary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	ns, err := o.resolver.resolve(ctx, input.Namespace)
	if err != nil {
		return nil, err
	}

	var (
		out   []domain.ObjectSummary
		start = optional(input.Start)
	)
	for {
		req := objectstorage.ListObjectsRequest{
			NamespaceName:      &ns,
			BucketName:         &input.Bucket,
			Prefix:             optional(input.Prefix),
			Start:              start,
			Fields:             common.String("name,size,md5,etag"),
			OpcClientRequestId: requestID(),
		}
		if input.Limit > 0 {
			req.Limit = common.Int(input.Limit - len(out))
		}

		resp, err := o.client.ListObjects(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		for _, obj := range resp.Objects {
			out = append(out, domain.ObjectSummary{
				Name: deref(obj.Name),
				Size: derefInt64(obj.Size),
				MD5:  deref(obj.Md5),
				ETag: deref(obj.Etag),
			})
		}

		if resp.NextStartWith == nil || (input.Limit > 0 && len(out) >= input.Limit) {
			return out, nil
		}
		start = resp.NextStartWith
	}
}

// contentMD5 hashes body and rewinds it.
func contentMD5(body io.ReadSeeker) (string, error) {
	h := md5.New() //nolint:gosec
	if _, err := io.Copy(h, body); err != nil {
		return "", fmt.Errorf("failed to compute md5: %w", err)
	}
	if _, err := body.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind content: %w", err)
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil)), nil
}

// NewObjectUseCase creates an ObjectUseCase.
func NewObjectUseCase(client Client) ObjectUseCase {
	return &objectUseCase{client: client, resolver: newNamespaceResolver(client)}
}
