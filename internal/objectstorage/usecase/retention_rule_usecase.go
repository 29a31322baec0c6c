package usecase

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/objectstorage"

	"github.com/allisson/oscli/internal/objectstorage/domain"
)

type retentionRuleUseCase struct {
	client   Client
	resolver *namespaceResolver
}

// Create validates the time options and creates the rule.
func (r *retentionRuleUseCase) Create(
	ctx context.Context,
	input *domain.RetentionRuleInput,
) (*objectstorage.RetentionRule, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	duration, locked, err := retentionTimes(input)
	if err != nil {
		return nil, err
	}
	ns, err := r.resolver.resolve(ctx, input.Namespace)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.CreateRetentionRule(ctx, objectstorage.CreateRetentionRuleRequest{
		NamespaceName: &ns,
		BucketName:    &input.Bucket,
		CreateRetentionRuleDetails: objectstorage.CreateRetentionRuleDetails{
			DisplayName:    optional(input.DisplayName),
			Duration:       duration,
			TimeRuleLocked: locked,
		},
		OpcClientRequestId: requestID(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create retention rule: %w", err)
	}
	return &resp.RetentionRule, nil
}

// Get returns a single rule.
func (r *retentionRuleUseCase) Get(
	ctx context.Context,
	namespace, bucket, ruleID string,
) (*objectstorage.RetentionRule, error) {
	ns, err := r.resolver.resolve(ctx, namespace)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.GetRetentionRule(ctx, objectstorage.GetRetentionRuleRequest{
		NamespaceName:      &ns,
		BucketName:         &bucket,
		RetentionRuleId:    &ruleID,
		OpcClientRequestId: requestID(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get retention rule: %w", err)
	}
	return &resp.RetentionRule, nil
}

// List returns every rule of a bucket.
func (r *retentionRuleUseCase) List(
	ctx context.Context,
	namespace, bucket string,
) ([]objectstorage.RetentionRuleSummary, error) {
	ns, err := r.resolver.resolve(ctx, namespace)
	if err != nil {
		return nil, err
	}

	var (
		out  []objectstorage.RetentionRuleSummary
		page *string
	)
	for {
		resp, err := r.client.ListRetentionRules(ctx, objectstorage.ListRetentionRulesRequest{
			NamespaceName: &ns,
			BucketName:    &bucket,
			Page:          page,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list retention rules: %w", err)
		}
		out = append(out, resp.Items...)
		if resp.OpcNextPage == nil {
			return out, nil
		}
		page = resp.OpcNextPage
	}
}

// Update changes the display name, duration or lock time of a rule.
func (r *retentionRuleUseCase) Update(
	ctx context.Context,
	input *domain.RetentionRuleInput,
) (*objectstorage.RetentionRule, error) {
	if err := input.ValidateUpdate(); err != nil {
		return nil, err
	}
	duration, locked, err := retentionTimes(input)
	if err != nil {
		return nil, err
	}
	ns, err := r.resolver.resolve(ctx, input.Namespace)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.UpdateRetentionRule(ctx, objectstorage.UpdateRetentionRuleRequest{
		NamespaceName:   &ns,
		BucketName:      &input.Bucket,
		RetentionRuleId: &input.RetentionRuleID,
		UpdateRetentionRuleDetails: objectstorage.UpdateRetentionRuleDetails{
			DisplayName:    optional(input.DisplayName),
			Duration:       duration,
			TimeRuleLocked: locked,
		},
		OpcClientRequestId: requestID(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update retention rule: %w", err)
	}
	return &resp.RetentionRule, nil
}

// Delete removes an unlocked rule.
func (r *retentionRuleUseCase) Delete(ctx context.Context, namespace, bucket, ruleID string) error {
	ns, err := r.resolver.resolve(ctx, namespace)
	if err != nil {
		return err
	}

	_, err = r.client.DeleteRetentionRule(ctx, objectstorage.DeleteRetentionRuleRequest{
		NamespaceName:      &ns,
		BucketName:         &bucket,
		RetentionRuleId:    &ruleID,
		OpcClientRequestId: requestID(),
	})
	if err != nil {
		return fmt.Errorf("failed to delete retention rule: %w", err)
	}
	return nil
}

func retentionTimes(input *domain.RetentionRuleInput) (*objectstorage.Duration, *common.SDKTime, error) {
	duration, err := input.Duration()
	if err != nil {
		return nil, nil, err
	}
	locked, err := input.LockTime()
	if err != nil {
		return nil, nil, err
	}
	return duration, locked, nil
}

// NewRetentionRuleUseCase creates a RetentionRuleUseCase.
func NewRetentionRuleUseCase(client Client) RetentionRuleUseCase {
	return &retentionRuleUseCase{client: client, resolver: newNamespaceResolver(client)}
}
