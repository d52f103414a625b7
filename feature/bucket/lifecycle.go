package bucket

import (
	"context"
	"fmt"

	"bucket-manager/core/storage"
	"bucket-manager/feature/audit"
	"bucket-manager/feature/bucket/models"

	"github.com/minio/minio-go/v7/pkg/lifecycle"
	"go.uber.org/zap"
)

const (
	// ExpiryRuleID identifies the rule installed by ApplyLifecycleRule.
	ExpiryRuleID = "30DayDelete"
	// ExpiryDays is how long objects live under that rule.
	ExpiryDays = 30
)

// ExpiryConfiguration returns a lifecycle configuration expiring every object
// (empty prefix) after ExpiryDays.
func ExpiryConfiguration() *lifecycle.Configuration {
	cfg := lifecycle.NewConfiguration()
	cfg.Rules = []lifecycle.Rule{
		{
			ID:         ExpiryRuleID,
			Status:     "Enabled",
			RuleFilter: lifecycle.Filter{Prefix: ""},
			Expiration: lifecycle.Expiration{Days: lifecycle.ExpirationDays(ExpiryDays)},
		},
	}
	return cfg
}

// ApplyLifecycleRule replaces the bucket's lifecycle configuration with the
// 30 day expiry rule.
func (s *Service) ApplyLifecycleRule(ctx context.Context, bucket string) error {
	if err := s.client.SetBucketLifecycle(ctx, bucket, ExpiryConfiguration()); err != nil {
		return fmt.Errorf("failed to set lifecycle of %s: %w", bucket, err)
	}

	s.logger.Info("Applied lifecycle rule", zap.String("bucket", bucket), zap.String("rule", ExpiryRuleID))
	s.record(ctx, bucket, "", audit.ActionApplyLifecycle, ExpiryRuleID)
	return nil
}

// GetLifecycle returns the installed rules. A bucket without a lifecycle
// configuration has no rules.
func (s *Service) GetLifecycle(ctx context.Context, bucket string) ([]models.LifecycleRule, error) {
	cfg, err := s.client.GetBucketLifecycle(ctx, bucket)
	if err != nil {
		if storage.ErrorCode(err) == "NoSuchLifecycleConfiguration" {
			return []models.LifecycleRule{}, nil
		}
		return nil, fmt.Errorf("failed to get lifecycle of %s: %w", bucket, err)
	}

	rules := []models.LifecycleRule{}
	if cfg == nil {
		return rules, nil
	}
	for _, r := range cfg.Rules {
		prefix := r.RuleFilter.Prefix
		if prefix == "" {
			prefix = r.Prefix
		}
		rules = append(rules, models.LifecycleRule{
			ID:             r.ID,
			Status:         r.Status,
			Prefix:         prefix,
			ExpirationDays: int(r.Expiration.Days),
		})
	}
	return rules, nil
}
