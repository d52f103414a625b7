package audit

import "time"

// Actions recorded by the bucket feature.
const (
	ActionUpload         = "upload"
	ActionDelete         = "delete"
	ActionSetVersioning  = "set_versioning"
	ActionApplyLifecycle = "apply_lifecycle"
)

// Entry is one mutating storage operation.
type Entry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Bucket    string    `gorm:"size:255;index" json:"bucket"`
	ObjectKey string    `gorm:"size:1024" json:"key,omitempty"`
	Action    string    `gorm:"size:64;index" json:"action"`
	Detail    string    `gorm:"size:255" json:"detail,omitempty"`
	RayID     string    `gorm:"size:64" json:"ray_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name used by Entry.
func (Entry) TableName() string {
	return "audit_entries"
}
