package audit

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Recorder appends audit entries.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// NopRecorder discards every entry. It is used when no database is configured.
type NopRecorder struct{}

// Record implements Recorder.
func (NopRecorder) Record(context.Context, Entry) error { return nil }

// Store persists audit entries through GORM.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on an open connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the audit table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("failed to migrate audit table: %w", err)
	}
	return nil
}

// Record inserts an entry. The ray id stored on ctx is used when the entry has none.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	if entry.RayID == "" {
		entry.RayID = RayIDFrom(ctx)
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}

// List returns the newest entries first, optionally filtered by bucket.
func (s *Store) List(ctx context.Context, bucket string, limit int) ([]Entry, error) {
	q := s.db.WithContext(ctx).Model(&Entry{})
	if bucket != "" {
		q = q.Where("bucket = ?", bucket)
	}

	var entries []Entry
	if err := q.Order("id desc").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}

type rayIDKey struct{}

// WithRayID stores the request's ray id on ctx for later recording.
func WithRayID(ctx context.Context, rid string) context.Context {
	if rid == "" {
		return ctx
	}
	return context.WithValue(ctx, rayIDKey{}, rid)
}

// RayIDFrom returns the ray id stored by WithRayID, or "".
func RayIDFrom(ctx context.Context) string {
	rid, _ := ctx.Value(rayIDKey{}).(string)
	return rid
}
