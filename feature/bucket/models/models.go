package models

import "time"

// Versioning states accepted by S3. A bucket that was never versioned reports
// no status at all, which is surfaced as VersioningDisabled.
const (
	VersioningEnabled   = "Enabled"
	VersioningSuspended = "Suspended"
	VersioningDisabled  = "Disabled"
)

// ObjectVersion describes one stored version of an object.
type ObjectVersion struct {
	ID           string    `json:"id"`
	LastModified time.Time `json:"last_modified"`
	// SizeKiB is the object size in KiB rounded to two decimals.
	SizeKiB  float64 `json:"size"`
	IsLatest bool    `json:"is_latest"`
}

// LifecycleRule is a read-back view of one bucket lifecycle rule.
type LifecycleRule struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	Prefix         string `json:"prefix"`
	ExpirationDays int    `json:"expiration_days,omitempty"`
}

// UploadResult acknowledges an upload.
type UploadResult struct {
	Bucket    string `json:"bucket"`
	Key       string `json:"key"`
	ETag      string `json:"etag"`
	Size      int64  `json:"size"`
	VersionID string `json:"version_id,omitempty"`
}

// StatusReport summarises the configuration of a bucket.
type StatusReport struct {
	Bucket           string          `json:"bucket"`
	Exists           bool            `json:"exists"`
	Versioning       string          `json:"versioning"`
	ExpiryRuleActive bool            `json:"expiry_rule_active"`
	Rules            []LifecycleRule `json:"rules"`
}
