// Package audit keeps a trail of mutating storage operations.
//
// Uploads, deletions, versioning changes and lifecycle installs are appended to
// the audit_entries table when a database is configured. Without one the feature
// is disabled and the bucket service receives a NopRecorder. A failed write is
// logged by the caller and never fails the storage operation itself.
//
// # HTTP Endpoints
//
//   - GET /audit?bucket=&limit= : List entries, newest first.
package audit
