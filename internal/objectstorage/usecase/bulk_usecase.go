package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/allisson/oscli/internal/objectstorage/domain"
	"github.com/allisson/oscli/internal/progress"
)

// BulkConfig bounds the concurrency and request rate of bulk operations.
type BulkConfig struct {
	// Parallelism is the maximum number of concurrent transfers.
	Parallelism int
	// RequestsPerSecond throttles transfers; zero disables throttling.
	RequestsPerSecond float64
	// Burst is the limiter bucket size.
	Burst int
}

type bulkUseCase struct {
	objects     ObjectUseCase
	parallelism int
	limiter     *rate.Limiter
}

// Upload sends every file under input.Dir to the bucket. Remote objects that
// already exist are skipped unless input.Overwrite is set.
func (b *bulkUseCase) Upload(
	ctx context.Context,
	input *domain.BulkInput,
	tracker *progress.Tracker,
) (*domain.BulkResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	local, err := openLocalDir(input.Dir, false)
	if err != nil {
		return nil, err
	}
	defer func() { _ = local.Close() }()

	keys, err := listLocal(ctx, local)
	if err != nil {
		return nil, err
	}

	existing := map[string]string{}
	if !input.Overwrite {
		if existing, err = b.remoteIndex(ctx, input); err != nil {
			return nil, err
		}
	}

	return b.run(ctx, input, tracker, keys, func(ctx context.Context, key string) (bool, error) {
		if _, ok := existing[input.ObjectName(key)]; ok {
			return false, nil
		}
		if input.DryRun {
			return true, nil
		}
		return true, b.uploadOne(ctx, local, input, key)
	})
}

// Download writes every object under input.Prefix into input.Dir, creating
// directories as needed. Local files that already exist are skipped unless
// input.Overwrite is set.
func (b *bulkUseCase) Download(
	ctx context.Context,
	input *domain.BulkInput,
	tracker *progress.Tracker,
) (*domain.BulkResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	local, err := openLocalDir(input.Dir, true)
	if err != nil {
		return nil, err
	}
	defer func() { _ = local.Close() }()

	objects, err := b.objects.List(ctx, &domain.ListObjectsInput{
		Namespace: input.Namespace,
		Bucket:    input.Bucket,
		Prefix:    input.Prefix,
	})
	if err != nil {
		return nil, err
	}

	var keys []string
	for _, obj := range objects {
		key := strings.TrimPrefix(obj.Name, input.Prefix)
		if key == "" || strings.HasSuffix(key, "/") {
			continue
		}
		keys = append(keys, key)
	}

	return b.run(ctx, input, tracker, keys, func(ctx context.Context, key string) (bool, error) {
		if !input.Overwrite {
			exists, err := local.Exists(ctx, key)
			if err != nil {
				return false, err
			}
			if exists {
				return false, nil
			}
		}
		if input.DryRun {
			return true, nil
		}
		return true, b.downloadOne(ctx, local, input, key)
	})
}

// Sync uploads local files that are missing remotely or whose MD5 differs.
func (b *bulkUseCase) Sync(
	ctx context.Context,
	input *domain.BulkInput,
	tracker *progress.Tracker,
) (*domain.BulkResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	local, err := openLocalDir(input.Dir, false)
	if err != nil {
		return nil, err
	}
	defer func() { _ = local.Close() }()

	keys, err := listLocal(ctx, local)
	if err != nil {
		return nil, err
	}
	remote, err := b.remoteIndex(ctx, input)
	if err != nil {
		return nil, err
	}

	return b.run(ctx, input, tracker, keys, func(ctx context.Context, key string) (bool, error) {
		if remoteMD5, ok := remote[input.ObjectName(key)]; ok && remoteMD5 != "" {
			localMD5, err := localMD5(ctx, local, key)
			if err != nil {
				return false, err
			}
			if localMD5 == remoteMD5 {
				return false, nil
			}
		}
		if input.DryRun {
			return true, nil
		}
		return true, b.uploadOne(ctx, local, input, key)
	})
}

// itemFunc processes one key. It reports whether the item was transferred
// (false means skipped).
type itemFunc func(ctx context.Context, key string) (bool, error)

// run fans keys out to a bounded worker pool. Item failures are collected in
// the result; only context cancellation aborts the whole run.
func (b *bulkUseCase) run(
	ctx context.Context,
	input *domain.BulkInput,
	tracker *progress.Tracker,
	keys []string,
	fn itemFunc,
) (*domain.BulkResult, error) {
	started := time.Now()
	collector := &resultCollector{result: &domain.BulkResult{DryRun: input.DryRun}}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.parallelism)

	for _, key := range keys {
		g.Go(func() error {
			if b.limiter != nil {
				if err := b.limiter.Wait(gctx); err != nil {
					return err
				}
			}

			transferred, err := fn(gctx, key)
			switch {
			case err != nil:
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				collector.fail(key, err)
				tracker.Failed(key, err)
			case transferred:
				collector.transfer(key)
				tracker.Done(key)
			default:
				collector.skip(key)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("bulk operation interrupted: %w", err)
	}

	result := collector.finish()
	result.Elapsed = time.Since(started)
	return result, nil
}

func (b *bulkUseCase) uploadOne(ctx context.Context, local *blob.Bucket, input *domain.BulkInput, key string) error {
	r, err := local.NewReader(ctx, key, nil)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", key, err)
	}
	defer func() { _ = r.Close() }()

	_, err = b.objects.Put(ctx, &domain.PutObjectInput{
		ObjectLocation: domain.ObjectLocation{
			Namespace: input.Namespace,
			Bucket:    input.Bucket,
			Object:    input.ObjectName(key),
		},
		SSE:            input.SSE,
		VerifyChecksum: input.VerifyChecksum,
	}, r, r.Size())
	return err
}

func (b *bulkUseCase) downloadOne(ctx context.Context, local *blob.Bucket, input *domain.BulkInput, key string) error {
	// Cancelling the writer's context before Close discards the partial file.
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := local.NewWriter(wctx, key, nil)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", key, err)
	}

	_, err = b.objects.Get(wctx, &domain.GetObjectInput{
		ObjectLocation: domain.ObjectLocation{
			Namespace: input.Namespace,
			Bucket:    input.Bucket,
			Object:    input.ObjectName(key),
		},
		SSE: input.SSE,
	}, w)
	if err != nil {
		cancel()
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// remoteIndex maps remote object names under the prefix to their MD5.
func (b *bulkUseCase) remoteIndex(ctx context.Context, input *domain.BulkInput) (map[string]string, error) {
	objects, err := b.objects.List(ctx, &domain.ListObjectsInput{
		Namespace: input.Namespace,
		Bucket:    input.Bucket,
		Prefix:    input.Prefix,
	})
	if err != nil {
		return nil, err
	}
	index := make(map[string]string, len(objects))
	for _, obj := range objects {
		index[obj.Name] = obj.MD5
	}
	return index, nil
}

func openLocalDir(dir string, create bool) (*blob.Bucket, error) {
	if !create {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open local directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", dir)
		}
	}
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{
		CreateDir: create,
		NoTempDir: true,
		Metadata:  fileblob.MetadataDontWrite,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local directory: %w", err)
	}
	return bucket, nil
}

func listLocal(ctx context.Context, local *blob.Bucket) ([]string, error) {
	var keys []string
	iter := local.List(nil)
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list local directory: %w", err)
		}
		if obj.IsDir {
			continue
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

func localMD5(ctx context.Context, local *blob.Bucket, key string) (string, error) {
	r, err := local.NewReader(ctx, key, nil)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", key, err)
	}
	defer func() { _ = r.Close() }()
	return contentMD5(r)
}

type resultCollector struct {
	mu     sync.Mutex
	result *domain.BulkResult
}

func (c *resultCollector) transfer(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.result.Transferred = append(c.result.Transferred, name)
}

func (c *resultCollector) skip(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.result.Skipped = append(c.result.Skipped, name)
}

func (c *resultCollector) fail(name string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.result.Failed = append(c.result.Failed, domain.BulkFailure{Name: name, Error: err.Error()})
}

func (c *resultCollector) finish() *domain.BulkResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	sort.Strings(c.result.Transferred)
	sort.Strings(c.result.Skipped)
	sort.Slice(c.result.Failed, func(i, j int) bool { return c.result.Failed[i].Name < c.result.Failed[j].Name })
	return c.result
}

// NewBulkUseCase creates a BulkUseCase on top of an ObjectUseCase so that
// every transfer shares its checksum, encryption and metrics behaviour.
func NewBulkUseCase(objects ObjectUseCase, cfg BulkConfig) BulkUseCase {
	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = 1
	}
	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	return &bulkUseCase{
		objects:     objects,
		parallelism: parallelism,
		limiter:     limiter,
	}
}
