// Package search implements word search over objects stored in a bucket.
//
// The Service downloads the object (bounded by Config.MaxObjectBytes) and hands
// the bytes to the textsearch engine. Storage failures propagate unchanged; an
// object that cannot be decoded as text is reported as {"error": "..."} rather
// than as a failed request.
//
// # HTTP Endpoints
//
//   - GET /buckets/:bucket/search?key=&word=&case_sensitive= : Search one object.
package search
