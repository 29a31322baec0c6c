package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/oracle/oci-go-sdk/v65/objectstorage"

	"github.com/allisson/oscli/internal/objectstorage/domain"
	objectStorageUseCase "github.com/allisson/oscli/internal/objectstorage/usecase"
)

// RetentionRuleOptions are the options of `os retention-rule create|update`.
type RetentionRuleOptions struct {
	Namespace       string
	Bucket          string
	RetentionRuleID string
	DisplayName     string
	TimeAmount      string
	TimeUnit        string
	TimeRuleLocked  string
}

func (o RetentionRuleOptions) input() *domain.RetentionRuleInput {
	return &domain.RetentionRuleInput{
		Namespace:       o.Namespace,
		Bucket:          o.Bucket,
		RetentionRuleID: o.RetentionRuleID,
		DisplayName:     o.DisplayName,
		TimeAmount:      o.TimeAmount,
		TimeUnit:        o.TimeUnit,
		TimeRuleLocked:  o.TimeRuleLocked,
	}
}

// ValidateCreate checks the create options before any client is built.
func (o RetentionRuleOptions) ValidateCreate() error {
	return o.input().Validate()
}

// ValidateUpdate checks the update options before any client is built.
func (o RetentionRuleOptions) ValidateUpdate() error {
	return o.input().ValidateUpdate()
}

// RunCreateRetentionRule creates a retention rule and prints it.
func RunCreateRetentionRule(
	ctx context.Context,
	retentionRuleUseCase objectStorageUseCase.RetentionRuleUseCase,
	logger *slog.Logger,
	opts RetentionRuleOptions,
	writer io.Writer,
) error {
	rule, err := retentionRuleUseCase.Create(ctx, opts.input())
	if err != nil {
		return err
	}
	logger.Info("retention rule created", slog.String("bucket", opts.Bucket))
	return writeData(writer, rule)
}

// RunUpdateRetentionRule updates a retention rule and prints it.
func RunUpdateRetentionRule(
	ctx context.Context,
	retentionRuleUseCase objectStorageUseCase.RetentionRuleUseCase,
	logger *slog.Logger,
	opts RetentionRuleOptions,
	writer io.Writer,
) error {
	rule, err := retentionRuleUseCase.Update(ctx, opts.input())
	if err != nil {
		return err
	}
	logger.Info("retention rule updated", slog.String("retention_rule_id", opts.RetentionRuleID))
	return writeData(writer, rule)
}

// RunGetRetentionRule prints a retention rule.
func RunGetRetentionRule(
	ctx context.Context,
	retentionRuleUseCase objectStorageUseCase.RetentionRuleUseCase,
	namespace, bucket, ruleID string,
	writer io.Writer,
) error {
	rule, err := retentionRuleUseCase.Get(ctx, namespace, bucket, ruleID)
	if err != nil {
		return err
	}
	return writeData(writer, rule)
}

// RunListRetentionRules prints the retention rules of a bucket.
func RunListRetentionRules(
	ctx context.Context,
	retentionRuleUseCase objectStorageUseCase.RetentionRuleUseCase,
	namespace, bucket string,
	writer io.Writer,
) error {
	rules, err := retentionRuleUseCase.List(ctx, namespace, bucket)
	if err != nil {
		return err
	}
	if rules == nil {
		rules = []objectstorage.RetentionRuleSummary{}
	}
	return writeData(writer, rules)
}

// RunDeleteRetentionRule deletes a retention rule.
func RunDeleteRetentionRule(
	ctx context.Context,
	retentionRuleUseCase objectStorageUseCase.RetentionRuleUseCase,
	logger *slog.Logger,
	namespace, bucket, ruleID string,
) error {
	if err := retentionRuleUseCase.Delete(ctx, namespace, bucket, ruleID); err != nil {
		return err
	}
	logger.Info("retention rule deleted", slog.String("retention_rule_id", ruleID))
	return nil
}
