package storage

import (
	"errors"
	"net/http"

	"github.com/minio/minio-go/v7"
)

// StatusCode returns the HTTP status carried by an S3 error response anywhere
// in err's chain, or 500 when there is none.
func StatusCode(err error) int {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) && resp.StatusCode != 0 {
		return resp.StatusCode
	}
	return http.StatusInternalServerError
}

// ErrorCode returns the S3 error code (e.g. "NoSuchKey") in err's chain, or "".
func ErrorCode(err error) string {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code
	}
	return ""
}
