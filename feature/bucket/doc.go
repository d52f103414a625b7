// Package bucket exposes the object storage operations of a bucket.
//
// Each Service method maps onto a single storage call and returns the storage
// error unchanged (wrapped with context). Mutations are appended to the audit
// trail when one is configured.
//
// # Operations
//
//   - ListObjects, UploadObject, DeleteObject
//   - ListObjectVersions: versions of exactly one key, sizes in KiB
//   - GetDownloadURL: one hour presigned link with an attachment disposition
//   - GetVersioningStatus / SetVersioning
//   - ApplyLifecycleRule ("30DayDelete") / GetLifecycle
//   - Status: existence, versioning and expiry rule in one report
//
// # HTTP Endpoints
//
//   - GET    /buckets/:bucket/objects
//   - POST   /buckets/:bucket/objects            (multipart "file", optional "key")
//   - DELETE /buckets/:bucket/objects?key=
//   - GET    /buckets/:bucket/objects/url?key=
//   - GET    /buckets/:bucket/objects/versions?key=
//   - GET    /buckets/:bucket/versioning
//   - PUT    /buckets/:bucket/versioning         ({"status": "Enabled"})
//   - GET    /buckets/:bucket/lifecycle
//   - PUT    /buckets/:bucket/lifecycle
//   - GET    /buckets/:bucket/status
package bucket
