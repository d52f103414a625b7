package search

import (
	"errors"

	"bucket-manager/core/logger"
	"bucket-manager/core/storage"
	"bucket-manager/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for word search.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the search routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/buckets/:bucket/search", h.HandleSearch)
}

// HandleSearch searches an object for a word.
// @Summary Search Object
// @Description Downloads an object and reports every line containing the word, with occurrence counts. Undecodable objects yield {"error": "..."} with status 200.
// @Tags search
// @Security ApiKeyAuth
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key query string true "Object key"
// @Param word query string false "Word to search for (empty matches every line)"
// @Param case_sensitive query boolean false "Match case exactly"
// @Success 200 {object} Response "Search Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 413 {object} map[string]string "Object Too Large"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /buckets/{bucket}/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	bucket := c.Params("bucket")
	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "key is required"})
	}
	word := c.Query("word")
	caseSensitive := utils.ToBool(c.Query("case_sensitive"))

	res, err := h.service.FindWord(c.Context(), bucket, key, word, caseSensitive)
	if err != nil {
		l.Error("Search failed", zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
		status := storage.StatusCode(err)
		if errors.Is(err, ErrObjectTooLarge) {
			status = fiber.StatusRequestEntityTooLarge
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(res)
}
