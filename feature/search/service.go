package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"bucket-manager/core/metrics"
	"bucket-manager/core/storage"
	"bucket-manager/feature/search/textsearch"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrObjectTooLarge is returned when an object exceeds Config.MaxObjectBytes.
var ErrObjectTooLarge = errors.New("object exceeds the search size limit")

// Response is either a search result or a decoding failure message.
type Response struct {
	*textsearch.Result
	Error string `json:"error,omitempty"`
}

// Service fetches objects and searches their text.
type Service struct {
	client  storage.Client
	engine  *textsearch.Engine
	cfg     Config
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewService creates a new search service. m may be nil.
func NewService(client storage.Client, cfg Config, logger *zap.Logger, m *metrics.Metrics) *Service {
	return &Service{
		client:  client,
		engine:  textsearch.NewEngine(),
		cfg:     cfg,
		logger:  logger,
		metrics: m,
	}
}

// FetchObjectBytes downloads the whole object.
func (s *Service) FetchObjectBytes(ctx context.Context, bucket, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer obj.Close()

	// One byte past the cap tells an exact fit from an oversized object.
	var r io.Reader = obj
	if limit := s.cfg.MaxObjectBytes; limit > 0 && limit < math.MaxInt64 {
		r = io.LimitReader(obj, limit+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	if s.cfg.MaxObjectBytes > 0 && int64(len(data)) > s.cfg.MaxObjectBytes {
		return nil, fmt.Errorf("%s: %w (%d bytes)", key, ErrObjectTooLarge, s.cfg.MaxObjectBytes)
	}
	return data, nil
}

// FindWord searches the object for word. Storage errors are returned as-is;
// an undecodable object yields a Response carrying only an error message.
func (s *Service) FindWord(ctx context.Context, bucket, key, word string, caseSensitive bool) (*Response, error) {
	raw, err := s.FetchObjectBytes(ctx, bucket, key)
	if err != nil {
		s.observe(metrics.StatusError, 0)
		return nil, err
	}

	res, err := s.engine.Search(raw, word, caseSensitive)
	if err != nil {
		s.logger.Warn("Object could not be decoded",
			zap.String("bucket", bucket),
			zap.String("key", key),
			zap.Error(err))
		s.observe("decoding_failure", 0)
		return &Response{Error: err.Error()}, nil
	}

	res.Filename = key
	s.observe(metrics.StatusSuccess, res.TotalOccurrences)
	return &Response{Result: res}, nil
}

func (s *Service) observe(status string, occurrences int) {
	if s.metrics != nil {
		s.metrics.ObserveSearch(status, occurrences)
	}
}
