package bucket

import (
	"context"
	"errors"
	"fmt"

	"bucket-manager/feature/bucket/models"
)

// ErrBucketNotFound is returned by Status when the bucket is missing.
var ErrBucketNotFound = errors.New("bucket does not exist")

// Status reports whether the bucket exists, its versioning state and whether
// the expiry rule is installed and enabled.
func (s *Service) Status(ctx context.Context, bucket string) (*models.StatusReport, error) {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}

	versioning, err := s.GetVersioningStatus(ctx, bucket)
	if err != nil {
		return nil, err
	}

	rules, err := s.GetLifecycle(ctx, bucket)
	if err != nil {
		return nil, err
	}

	report := &models.StatusReport{
		Bucket:     bucket,
		Exists:     true,
		Versioning: versioning,
		Rules:      rules,
	}
	for _, r := range rules {
		if r.ID == ExpiryRuleID && r.Status == "Enabled" {
			report.ExpiryRuleActive = true
		}
	}
	return report, nil
}
