package search

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"bucket-manager/core/storage/mocks"
	"bucket-manager/feature/search/textsearch"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(cfg Config) (*fiber.App, *mocks.Client, *Service) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, cfg, zap.NewNop(), nil)
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient, svc
}

func TestHandleSearch(t *testing.T) {
	t.Run("CaseSensitive", func(t *testing.T) {
		app, mockClient, _ := setupTestApp(Config{})
		mockClient.On("GetObject", mock.Anything, "files", "notes/a.txt", mock.Anything).
			Return(body("foo bar\nbar baz\nFOO\n"), nil)

		req := httptest.NewRequest("GET", "/buckets/files/search?key=notes/a.txt&word=bar&case_sensitive=true", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var res textsearch.Result
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, "notes/a.txt", res.Filename)
		assert.Equal(t, 2, res.TotalMatches)
		assert.Equal(t, 1, res.Matches[0].LineNumber)
		assert.Equal(t, 2, res.Matches[1].LineNumber)
		assert.Equal(t, "bar baz", res.Matches[1].Content)
	})

	t.Run("MissingKey", func(t *testing.T) {
		app, _, _ := setupTestApp(Config{})

		resp, err := app.Test(httptest.NewRequest("GET", "/buckets/files/search?word=x", nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		app, mockClient, _ := setupTestApp(Config{})
		mockClient.On("GetObject", mock.Anything, "files", "nope.txt", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})

		resp, err := app.Test(httptest.NewRequest("GET", "/buckets/files/search?key=nope.txt&word=x", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("TooLarge", func(t *testing.T) {
		app, mockClient, _ := setupTestApp(Config{MaxObjectBytes: 2})
		mockClient.On("GetObject", mock.Anything, "files", "big.txt", mock.Anything).Return(body("abc"), nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/buckets/files/search?key=big.txt&word=a", nil))
		require.NoError(t, err)
		assert.Equal(t, 413, resp.StatusCode)
	})

	t.Run("DecodingFailure", func(t *testing.T) {
		app, mockClient, svc := setupTestApp(Config{})
		svc.engine = textsearch.NewEngine(textsearch.DecodeUTF8)
		mockClient.On("GetObject", mock.Anything, "files", "bin", mock.Anything).
			Return(body(string([]byte{0xc3, 0x28})), nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/buckets/files/search?key=bin&word=x", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, textsearch.ErrUndecodable.Error(), payload["error"])
		assert.NotContains(t, payload, "matches")
	})
}

func TestFeature(t *testing.T) {
	feature := NewFeature(new(mocks.Client), Config{}, zap.NewNop(), nil)

	assert.Equal(t, "search", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
