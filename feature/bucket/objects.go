package bucket

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/url"
	"strings"
	"time"

	"bucket-manager/feature/audit"
	"bucket-manager/feature/bucket/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// DownloadURLExpiry is how long a presigned download link stays valid.
const DownloadURLExpiry = 3600 * time.Second

// ListObjects returns every object key in the bucket, in listing order.
func (s *Service) ListObjects(ctx context.Context, bucket string) ([]string, error) {
	keys := []string{}
	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

// UploadObject streams r to bucket/key. size may be -1 when unknown.
func (s *Service) UploadObject(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) (*models.UploadResult, error) {
	info, err := s.client.PutObject(ctx, bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	s.logger.Info("Uploaded object",
		zap.String("bucket", bucket),
		zap.String("key", key),
		zap.Int64("size", info.Size))
	s.record(ctx, bucket, key, audit.ActionUpload, "")

	return &models.UploadResult{
		Bucket:    bucket,
		Key:       key,
		ETag:      info.ETag,
		Size:      info.Size,
		VersionID: info.VersionID,
	}, nil
}

// ListObjectVersions returns the versions of exactly key, skipping delete markers
// and objects that merely share the prefix.
func (s *Service) ListObjectVersions(ctx context.Context, bucket, key string) ([]models.ObjectVersion, error) {
	opts := minio.ListObjectsOptions{
		Prefix:       key,
		Recursive:    true,
		WithVersions: true,
	}

	versions := []models.ObjectVersion{}
	for obj := range s.client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list versions of %s: %w", key, obj.Err)
		}
		if obj.Key != key || obj.IsDeleteMarker {
			continue
		}
		versions = append(versions, models.ObjectVersion{
			ID:           obj.VersionID,
			LastModified: obj.LastModified,
			SizeKiB:      KiB(obj.Size),
			IsLatest:     obj.IsLatest,
		})
	}
	return versions, nil
}

// GetDownloadURL presigns a GET that makes browsers save the object under the
// last segment of its key.
func (s *Service) GetDownloadURL(ctx context.Context, bucket, key string) (string, error) {
	params := url.Values{}
	params.Set("response-content-disposition", fmt.Sprintf(`attachment; filename="%s"`, FileName(key)))

	u, err := s.client.PresignedGetObject(ctx, bucket, key, DownloadURLExpiry, params)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return u.String(), nil
}

// DeleteObject removes key from the bucket.
func (s *Service) DeleteObject(ctx context.Context, bucket, key string) error {
	if err := s.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	s.logger.Info("Deleted object", zap.String("bucket", bucket), zap.String("key", key))
	s.record(ctx, bucket, key, audit.ActionDelete, "")
	return nil
}

// KiB converts bytes to KiB rounded to two decimals.
func KiB(size int64) float64 {
	return math.Round(float64(size)/1024*100) / 100
}

// FileName returns the part of key after the last "/". A key ending in "/" yields "".
func FileName(key string) string {
	return key[strings.LastIndex(key, "/")+1:]
}
