package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/oscli/internal/objectstorage/domain"
	objectStorageUseCase "github.com/allisson/oscli/internal/objectstorage/usecase"
	"github.com/allisson/oscli/internal/progress"
	sseDomain "github.com/allisson/oscli/internal/sse/domain"
)

// BulkMode selects the bulk operation.
type BulkMode string

// Bulk modes.
const (
	BulkUpload   BulkMode = "upload"
	BulkDownload BulkMode = "download"
	BulkSync     BulkMode = "sync"
)

// BulkOptions are the options shared by bulk-upload, bulk-download and sync.
type BulkOptions struct {
	Mode              BulkMode
	Namespace         string
	Bucket            string
	Dir               string
	Prefix            string
	EncryptionKeyFile string
	VerifyChecksum    bool
	Overwrite         bool
	DryRun            bool
	Format            string
}

// Validate checks the options that need no service call.
func (o BulkOptions) Validate() error {
	if err := validateFormat(o.Format); err != nil {
		return err
	}
	return o.input(nil).Validate()
}

func (o BulkOptions) input(key *sseDomain.KeyMaterial) *domain.BulkInput {
	return &domain.BulkInput{
		Namespace:      o.Namespace,
		Bucket:         o.Bucket,
		Dir:            o.Dir,
		Prefix:         o.Prefix,
		SSE:            key,
		VerifyChecksum: o.VerifyChecksum,
		Overwrite:      o.Overwrite,
		DryRun:         o.DryRun,
	}
}

// RunBulk runs a bulk transfer. Per-item progress goes to progressWriter and
// the final report to writer. It fails when any item failed.
func RunBulk(
	ctx context.Context,
	bulkUseCase objectStorageUseCase.BulkUseCase,
	logger *slog.Logger,
	opts BulkOptions,
	writer io.Writer,
	progressWriter io.Writer,
	width int,
) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}
	key, err := loadKeyMaterial(opts.EncryptionKeyFile)
	if err != nil {
		return err
	}

	input := opts.input(key)
	tracker := progress.NewTracker(progressWriter, bulkVerb(opts.Mode, opts.DryRun), width)

	logger.Info("starting bulk operation",
		slog.String("mode", string(opts.Mode)),
		slog.String("bucket", opts.Bucket),
		slog.String("dir", opts.Dir),
		slog.Bool("dry_run", opts.DryRun),
	)

	var result *domain.BulkResult
	switch opts.Mode {
	case BulkUpload:
		result, err = bulkUseCase.Upload(ctx, input, tracker)
	case BulkDownload:
		result, err = bulkUseCase.Download(ctx, input, tracker)
	case BulkSync:
		result, err = bulkUseCase.Sync(ctx, input, tracker)
	default:
		return fmt.Errorf("unknown bulk mode: %s", opts.Mode)
	}
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		if err := writeJSON(writer, result); err != nil {
			return err
		}
	} else {
		tracker.Summary()
		_, _ = fmt.Fprintf(writer, "%d transferred, %d skipped, %d failed\n",
			len(result.Transferred), len(result.Skipped), len(result.Failed))
	}

	logger.Info("bulk operation finished",
		slog.Int("transferred", len(result.Transferred)),
		slog.Int("skipped", len(result.Skipped)),
		slog.Int("failed", len(result.Failed)),
		slog.Duration("elapsed", result.Elapsed),
	)
	return result.Err()
}

func bulkVerb(mode BulkMode, dryRun bool) string {
	switch {
	case dryRun && mode == BulkDownload:
		return "Would download"
	case dryRun:
		return "Would upload"
	case mode == BulkDownload:
		return "Downloaded"
	default:
		return "Uploaded"
	}
}
