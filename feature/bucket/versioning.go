package bucket

import (
	"context"
	"errors"
	"fmt"

	"bucket-manager/feature/audit"
	"bucket-manager/feature/bucket/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrInvalidVersioningStatus is returned for anything but Enabled or Suspended.
var ErrInvalidVersioningStatus = errors.New("versioning status must be Enabled or Suspended")

// GetVersioningStatus returns Enabled, Suspended, or Disabled when the bucket
// was never versioned.
func (s *Service) GetVersioningStatus(ctx context.Context, bucket string) (string, error) {
	cfg, err := s.client.GetBucketVersioning(ctx, bucket)
	if err != nil {
		return "", fmt.Errorf("failed to get versioning of %s: %w", bucket, err)
	}
	if cfg.Status == "" {
		return models.VersioningDisabled, nil
	}
	return cfg.Status, nil
}

// SetVersioning enables or suspends versioning.
func (s *Service) SetVersioning(ctx context.Context, bucket, status string) error {
	if status != models.VersioningEnabled && status != models.VersioningSuspended {
		return fmt.Errorf("%w: got %q", ErrInvalidVersioningStatus, status)
	}

	if err := s.client.SetBucketVersioning(ctx, bucket, minio.BucketVersioningConfiguration{Status: status}); err != nil {
		return fmt.Errorf("failed to set versioning of %s: %w", bucket, err)
	}

	s.logger.Info("Changed bucket versioning", zap.String("bucket", bucket), zap.String("status", status))
	s.record(ctx, bucket, "", audit.ActionSetVersioning, status)
	return nil
}
