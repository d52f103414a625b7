package search

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"testing"

	"bucket-manager/core/metrics"
	"bucket-manager/core/storage"
	"bucket-manager/core/storage/mocks"
	"bucket-manager/feature/search/textsearch"

	"github.com/minio/minio-go/v7"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func body(s string) io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte(s)))
}

func TestService_FindWord(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.Client)
		m := metrics.New()
		svc := NewService(mockClient, Config{MaxObjectBytes: 1024}, zap.NewNop(), m)

		mockClient.On("GetObject", mock.Anything, "files", "logs/app.log", mock.Anything).
			Return(body("foo bar\nbar baz\nFOO\n"), nil)

		res, err := svc.FindWord(context.Background(), "files", "logs/app.log", "foo", false)
		require.NoError(t, err)
		require.NotNil(t, res.Result)

		assert.Empty(t, res.Error)
		assert.Equal(t, "logs/app.log", res.Filename)
		assert.Equal(t, "foo", res.Word)
		assert.Equal(t, 2, res.TotalMatches)
		assert.Equal(t, 2, res.TotalOccurrences)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues(metrics.StatusSuccess)))
	})

	t.Run("StorageErrorPropagates", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, Config{}, zap.NewNop(), nil)

		notFound := minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}
		mockClient.On("GetObject", mock.Anything, "files", "missing.txt", mock.Anything).Return(nil, notFound)

		res, err := svc.FindWord(context.Background(), "files", "missing.txt", "x", false)
		assert.Nil(t, res)
		assert.Error(t, err)
		assert.Equal(t, 404, storage.StatusCode(err))
	})

	t.Run("ReadErrorPropagates", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, Config{}, zap.NewNop(), nil)

		mockClient.On("GetObject", mock.Anything, "files", "broken.txt", mock.Anything).
			Return(io.NopCloser(&failingReader{}), nil)

		_, err := svc.FindWord(context.Background(), "files", "broken.txt", "x", false)
		assert.ErrorIs(t, err, errRead)
	})

	t.Run("TooLarge", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, Config{MaxObjectBytes: 4}, zap.NewNop(), nil)

		mockClient.On("GetObject", mock.Anything, "files", "big.txt", mock.Anything).Return(body("12345"), nil)

		_, err := svc.FindWord(context.Background(), "files", "big.txt", "1", false)
		assert.ErrorIs(t, err, ErrObjectTooLarge)
	})

	t.Run("ExactlyAtLimit", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, Config{MaxObjectBytes: 4}, zap.NewNop(), nil)

		mockClient.On("GetObject", mock.Anything, "files", "fits.txt", mock.Anything).Return(body("1234"), nil)

		res, err := svc.FindWord(context.Background(), "files", "fits.txt", "23", false)
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalMatches)
	})

	t.Run("MaxInt64LimitReadsWholeObject", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, Config{MaxObjectBytes: math.MaxInt64}, zap.NewNop(), nil)

		mockClient.On("GetObject", mock.Anything, "files", "notes.txt", mock.Anything).Return(body("alpha\nbeta\n"), nil)

		data, err := svc.FetchObjectBytes(context.Background(), "files", "notes.txt")
		require.NoError(t, err)
		assert.Equal(t, "alpha\nbeta\n", string(data))
	})

	t.Run("DecodingFailureIsStructured", func(t *testing.T) {
		mockClient := new(mocks.Client)
		m := metrics.New()
		svc := NewService(mockClient, Config{}, zap.NewNop(), m)
		svc.engine = textsearch.NewEngine(textsearch.DecodeUTF8)

		mockClient.On("GetObject", mock.Anything, "files", "image.bin", mock.Anything).
			Return(body(string([]byte{0xff, 0xd8, 0xff})), nil)

		res, err := svc.FindWord(context.Background(), "files", "image.bin", "x", false)
		require.NoError(t, err)
		assert.Nil(t, res.Result)
		assert.Equal(t, textsearch.ErrUndecodable.Error(), res.Error)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues("decoding_failure")))
	})
}

var errRead = errors.New("connection reset")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errRead }
