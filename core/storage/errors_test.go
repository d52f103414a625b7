package storage_test

import (
	"errors"
	"fmt"
	"testing"

	"bucket-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	denied := minio.ErrorResponse{Code: "AccessDenied", StatusCode: 403}

	assert.Equal(t, 403, storage.StatusCode(denied))
	assert.Equal(t, 403, storage.StatusCode(fmt.Errorf("failed to list objects: %w", denied)))
	assert.Equal(t, 500, storage.StatusCode(errors.New("dial tcp: refused")))
	assert.Equal(t, 500, storage.StatusCode(minio.ErrorResponse{Code: "Weird"}))
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "NoSuchLifecycleConfiguration", storage.ErrorCode(minio.ErrorResponse{Code: "NoSuchLifecycleConfiguration", StatusCode: 404}))
	assert.Equal(t, "NoSuchKey", storage.ErrorCode(fmt.Errorf("wrapped: %w", minio.ErrorResponse{Code: "NoSuchKey"})))
	assert.Equal(t, "", storage.ErrorCode(errors.New("boom")))
}
