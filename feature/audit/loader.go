package audit

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	store   *Store
	handler *Handler
}

// NewFeature creates the audit feature. A nil db yields a disabled feature.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	if db == nil {
		return &Feature{}
	}
	store := NewStore(db)
	return &Feature{store: store, handler: NewHandler(store, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "audit"
}

// IsEnabled reports whether a database is available.
func (f *Feature) IsEnabled() bool {
	return f.store != nil
}

// Recorder returns the store, or a NopRecorder when disabled.
func (f *Feature) Recorder() Recorder {
	if f.store == nil {
		return NopRecorder{}
	}
	return f.store
}

// Load migrates the table and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.store.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
