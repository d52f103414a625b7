package bucket

import (
	"context"

	"bucket-manager/core/storage"
	"bucket-manager/feature/audit"

	"go.uber.org/zap"
)

// Service maps bucket operations one-to-one onto storage calls.
type Service struct {
	client   storage.Client
	recorder audit.Recorder
	logger   *zap.Logger
}

// NewService creates a new bucket service. A nil recorder disables auditing.
func NewService(client storage.Client, recorder audit.Recorder, logger *zap.Logger) *Service {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &Service{
		client:   client,
		recorder: recorder,
		logger:   logger,
	}
}

// record appends an audit entry. Failures are logged, never returned.
func (s *Service) record(ctx context.Context, bucket, key, action, detail string) {
	entry := audit.Entry{Bucket: bucket, ObjectKey: key, Action: action, Detail: detail}
	if err := s.recorder.Record(ctx, entry); err != nil {
		s.logger.Warn("Failed to record audit entry",
			zap.String("bucket", bucket),
			zap.String("action", action),
			zap.Error(err))
	}
}
