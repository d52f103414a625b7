// Package metrics exposes Prometheus collectors for storage calls and searches.
//
// InstrumentStorage decorates a storage.Client so every S3 call is counted by
// operation and outcome, and timed. Handler serves the private registry at /metrics.
package metrics
