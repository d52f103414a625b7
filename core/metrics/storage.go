package metrics

import (
	"context"
	"errors"
	"io"
	"net/url"
	"sync"
	"time"

	"bucket-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/lifecycle"
)

// InstrumentStorage wraps a storage client so every call is counted and timed.
func InstrumentStorage(client storage.Client, m *Metrics) storage.Client {
	return &instrumentedClient{next: client, metrics: m}
}

type instrumentedClient struct {
	next    storage.Client
	metrics *Metrics
}

func (c *instrumentedClient) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	start := time.Now()
	ok, err := c.next.BucketExists(ctx, bucketName)
	c.metrics.ObserveStorage("bucket_exists", start, err)
	return ok, err
}

func (c *instrumentedClient) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	start := time.Now()
	info, err := c.next.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
	c.metrics.ObserveStorage("put_object", start, err)
	return info, err
}

// GetObject records the call once the object is first read or closed. minio
// issues the request lazily, so a missing key only fails on the first Read.
func (c *instrumentedClient) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	start := time.Now()
	obj, err := c.next.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		c.metrics.ObserveStorage("get_object", start, err)
		return nil, err
	}
	return &observedObject{
		ReadCloser: obj,
		observe:    func(err error) { c.metrics.ObserveStorage("get_object", start, err) },
	}, nil
}

// observedObject reports the outcome of a get_object call exactly once.
type observedObject struct {
	io.ReadCloser
	observe func(error)
	once    sync.Once
}

func (o *observedObject) Read(p []byte) (int, error) {
	n, err := o.ReadCloser.Read(p)
	switch {
	case err != nil && !errors.Is(err, io.EOF):
		o.once.Do(func() { o.observe(err) })
	case n > 0 || err != nil:
		o.once.Do(func() { o.observe(nil) })
	}
	return n, err
}

func (o *observedObject) Close() error {
	o.once.Do(func() { o.observe(nil) })
	return o.ReadCloser.Close()
}

// ListObjects forwards the listing and records the call once the channel is drained.
func (c *instrumentedClient) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	operation := "list_objects"
	if opts.WithVersions {
		operation = "list_object_versions"
	}

	start := time.Now()
	in := c.next.ListObjects(ctx, bucketName, opts)
	out := make(chan minio.ObjectInfo)

	go func() {
		defer close(out)
		var listErr error
		defer func() { c.metrics.ObserveStorage(operation, start, listErr) }()

		for obj := range in {
			if obj.Err != nil {
				listErr = obj.Err
			}
			select {
			case out <- obj:
			case <-ctx.Done():
				listErr = ctx.Err()
				return
			}
		}
	}()

	return out
}

func (c *instrumentedClient) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	start := time.Now()
	err := c.next.RemoveObject(ctx, bucketName, objectName, opts)
	c.metrics.ObserveStorage("remove_object", start, err)
	return err
}

func (c *instrumentedClient) GetBucketVersioning(ctx context.Context, bucketName string) (minio.BucketVersioningConfiguration, error) {
	start := time.Now()
	cfg, err := c.next.GetBucketVersioning(ctx, bucketName)
	c.metrics.ObserveStorage("get_bucket_versioning", start, err)
	return cfg, err
}

func (c *instrumentedClient) SetBucketVersioning(ctx context.Context, bucketName string, config minio.BucketVersioningConfiguration) error {
	start := time.Now()
	err := c.next.SetBucketVersioning(ctx, bucketName, config)
	c.metrics.ObserveStorage("set_bucket_versioning", start, err)
	return err
}

func (c *instrumentedClient) PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error) {
	start := time.Now()
	u, err := c.next.PresignedGetObject(ctx, bucketName, objectName, expires, reqParams)
	c.metrics.ObserveStorage("presigned_get_object", start, err)
	return u, err
}

func (c *instrumentedClient) GetBucketLifecycle(ctx context.Context, bucketName string) (*lifecycle.Configuration, error) {
	start := time.Now()
	cfg, err := c.next.GetBucketLifecycle(ctx, bucketName)
	c.metrics.ObserveStorage("get_bucket_lifecycle", start, err)
	return cfg, err
}

func (c *instrumentedClient) SetBucketLifecycle(ctx context.Context, bucketName string, config *lifecycle.Configuration) error {
	start := time.Now()
	err := c.next.SetBucketLifecycle(ctx, bucketName, config)
	c.metrics.ObserveStorage("set_bucket_lifecycle", start, err)
	return err
}
