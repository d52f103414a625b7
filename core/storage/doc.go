// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the rest of the application only sees the
// handful of S3 calls it actually makes. This abstraction supports both AWS S3
// and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
// A Client is built once from Config and passed explicitly to every consumer.
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - PutObject / GetObject / RemoveObject: Object content.
//   - ListObjects: Lists objects (and, with WithVersions, object versions).
//   - GetBucketVersioning / SetBucketVersioning: Bucket versioning state.
//   - PresignedGetObject: Time-limited download links.
//   - GetBucketLifecycle / SetBucketLifecycle: Expiration rules.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "files")
package storage
