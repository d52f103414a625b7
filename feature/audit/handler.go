package audit

import (
	"bucket-manager/core/logger"
	"bucket-manager/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// Handler handles HTTP requests for the audit trail.
type Handler struct {
	store  *Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/audit", h.HandleList)
}

// HandleList lists recorded operations.
// @Summary List Audit Entries
// @Description Lists mutating storage operations, newest first.
// @Tags audit
// @Security ApiKeyAuth
// @Produce json
// @Param bucket query string false "Only entries for this bucket"
// @Param limit query int false "Maximum entries (default 50, max 500)"
// @Success 200 {array} Entry "Audit Entries"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	limit := utils.Clamp(utils.ToInt(c.Query("limit")), defaultLimit, 1, maxLimit)

	entries, err := h.store.List(c.Context(), c.Query("bucket"), limit)
	if err != nil {
		l.Error("Audit listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(entries)
}
