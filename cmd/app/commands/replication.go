package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/oracle/oci-go-sdk/v65/objectstorage"

	"github.com/allisson/oscli/internal/objectstorage/domain"
	objectStorageUseCase "github.com/allisson/oscli/internal/objectstorage/usecase"
)

// RunCreateReplicationPolicy creates a replication policy and prints it.
func RunCreateReplicationPolicy(
	ctx context.Context,
	replicationUseCase objectStorageUseCase.ReplicationUseCase,
	logger *slog.Logger,
	input *domain.ReplicationPolicyInput,
	writer io.Writer,
) error {
	policy, err := replicationUseCase.Create(ctx, input)
	if err != nil {
		return err
	}
	logger.Info("replication policy created",
		slog.String("bucket", input.Bucket),
		slog.String("destination_region", input.DestinationRegion),
	)
	return writeData(writer, policy)
}

// RunGetReplicationPolicy prints a replication policy.
func RunGetReplicationPolicy(
	ctx context.Context,
	replicationUseCase objectStorageUseCase.ReplicationUseCase,
	namespace, bucket, replicationID string,
	writer io.Writer,
) error {
	policy, err := replicationUseCase.Get(ctx, namespace, bucket, replicationID)
	if err != nil {
		return err
	}
	return writeData(writer, policy)
}

// RunListReplicationPolicies prints the replication policies of a bucket.
func RunListReplicationPolicies(
	ctx context.Context,
	replicationUseCase objectStorageUseCase.ReplicationUseCase,
	namespace, bucket string,
	writer io.Writer,
) error {
	policies, err := replicationUseCase.List(ctx, namespace, bucket)
	if err != nil {
		return err
	}
	if policies == nil {
		policies = []objectstorage.ReplicationPolicySummary{}
	}
	return writeData(writer, policies)
}

// RunDeleteReplicationPolicy deletes a replication policy.
func RunDeleteReplicationPolicy(
	ctx context.Context,
	replicationUseCase objectStorageUseCase.ReplicationUseCase,
	logger *slog.Logger,
	namespace, bucket, replicationID string,
) error {
	if err := replicationUseCase.Delete(ctx, namespace, bucket, replicationID); err != nil {
		return err
	}
	logger.Info("replication policy deleted", slog.String("replication_id", replicationID))
	return nil
}
