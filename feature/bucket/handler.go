package bucket

import (
	"context"
	"errors"

	"bucket-manager/core/logger"
	"bucket-manager/core/storage"
	"bucket-manager/feature/audit"
	"bucket-manager/feature/bucket/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for bucket operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = models.StatusReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the bucket routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/buckets/:bucket")
	group.Get("/objects", h.HandleListObjects)
	group.Post("/objects", h.HandleUploadObject)
	group.Delete("/objects", h.HandleDeleteObject)
	group.Get("/objects/url", h.HandleGetDownloadURL)
	group.Get("/objects/versions", h.HandleListVersions)
	group.Get("/versioning", h.HandleGetVersioning)
	group.Put("/versioning", h.HandleSetVersioning)
	group.Get("/lifecycle", h.HandleGetLifecycle)
	group.Put("/lifecycle", h.HandleApplyLifecycle)
	group.Get("/status", h.HandleStatus)
}

// requestContext carries the ray id so audit entries can be correlated with logs.
func requestContext(c *fiber.Ctx) context.Context {
	return audit.WithRayID(c.Context(), logger.RayID(c))
}

// fail logs err and answers with the status carried by the storage error.
func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Error(msg, zap.String("bucket", c.Params("bucket")), zap.Error(err))

	status := storage.StatusCode(err)
	switch {
	case errors.Is(err, ErrInvalidVersioningStatus):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrBucketNotFound):
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func missingKey(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "key is required"})
}

// HandleListObjects lists object keys.
// @Summary List Objects
// @Description Lists every object key in the bucket.
// @Tags objects
// @Security ApiKeyAuth
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} map[string]interface{} "Keys"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /buckets/{bucket}/objects [get]
func (h *Handler) HandleListObjects(c *fiber.Ctx) error {
	bucket := c.Params("bucket")
	keys, err := h.service.ListObjects(c.Context(), bucket)
	if err != nil {
		return h.fail(c, "Listing objects failed", err)
	}
	return c.JSON(fiber.Map{"bucket": bucket, "keys": keys})
}

// HandleUploadObject uploads a multipart file.
// @Summary Upload Object
// @Description Uploads the multipart "file" field. The key defaults to the uploaded file name.
// @Tags objects
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param file formData file true "File to upload"
// @Param key formData string false "Object key"
// @Success 201 {object} models.UploadResult "Upload Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /buckets/{bucket}/objects [post]
func (h *Handler) HandleUploadObject(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	key := c.FormValue("key")
	if key == "" {
		key = file.Filename
	}

	f, err := file.Open()
	if err != nil {
		return h.fail(c, "Opening upload failed", err)
	}
	defer f.Close()

	res, err := h.service.UploadObject(requestContext(c), c.Params("bucket"), key, f, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return h.fail(c, "Upload failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// HandleDeleteObject deletes one object.
// @Summary Delete Object
// @Tags objects
// @Security ApiKeyAuth
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key query string true "Object key"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /buckets/{bucket}/objects [delete]
func (h *Handler) HandleDeleteObject(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return missingKey(c)
	}

	if err := h.service.DeleteObject(requestContext(c), c.Params("bucket"), key); err != nil {
		return h.fail(c, "Delete failed", err)
	}
	return c.JSON(fiber.Map{"status": "deleted", "key": key})
}

// HandleGetDownloadURL presigns a download link.
// @Summary Get Download URL
// @Description Returns a presigned URL valid for one hour that downloads the object as an attachment.
// @Tags objects
// @Security ApiKeyAuth
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key query string true "Object key"
// @Success 200 {object} map[string]string "URL"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /buckets/{bucket}/objects/url [get]
func (h *Handler) HandleGetDownloadURL(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return missingKey(c)
	}

	u, err := h.service.GetDownloadURL(c.Context(), c.Params("bucket"), key)
	if err != nil {
		return h.fail(c, "Presign failed", err)
	}
	return c.JSON(fiber.Map{"url": u, "expires_in": int(DownloadURLExpiry.Seconds())})
}

// HandleListVersions lists versions of one object.
// @Summary List Object Versions
// @Tags objects
// @Security ApiKeyAuth
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key query string true "Object key"
// @Success 200 {object} map[string]interface{} "Versions"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /buckets/{bucket}/objects/versions [get]
func (h *Handler) HandleListVersions(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return missingKey(c)
	}

	versions, err := h.service.ListObjectVersions(c.Context(), c.Params("bucket"), key)
	if err != nil {
		return h.fail(c, "Listing versions failed", err)
	}
	return c.JSON(fiber.Map{"key": key, "versions": versions})
}

// HandleGetVersioning returns the versioning status.
// @Summary Get Versioning
// @Tags versioning
// @Security ApiKeyAuth
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} map[string]string "Status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /buckets/{bucket}/versioning [get]
func (h *Handler) HandleGetVersioning(c *fiber.Ctx) error {
	status, err := h.service.GetVersioningStatus(c.Context(), c.Params("bucket"))
	if err != nil {
		return h.fail(c, "Getting versioning failed", err)
	}
	return c.JSON(fiber.Map{"status": status})
}

type versioningRequest struct {
	Status string `json:"status"`
}

// HandleSetVersioning enables or suspends versioning.
// @Summary Set Versioning
// @Tags versioning
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param body body versioningRequest true "Enabled or Suspended"
// @Success 200 {object} map[string]string "Status"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /buckets/{bucket}/versioning [put]
func (h *Handler) HandleSetVersioning(c *fiber.Ctx) error {
	var req versioningRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.service.SetVersioning(requestContext(c), c.Params("bucket"), req.Status); err != nil {
		return h.fail(c, "Setting versioning failed", err)
	}
	return c.JSON(fiber.Map{"status": req.Status})
}

// HandleGetLifecycle lists lifecycle rules.
// @Summary Get Lifecycle Rules
// @Tags lifecycle
// @Security ApiKeyAuth
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} map[string]interface{} "Rules"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /buckets/{bucket}/lifecycle [get]
func (h *Handler) HandleGetLifecycle(c *fiber.Ctx) error {
	rules, err := h.service.GetLifecycle(c.Context(), c.Params("bucket"))
	if err != nil {
		return h.fail(c, "Getting lifecycle failed", err)
	}
	return c.JSON(fiber.Map{"rules": rules})
}

// HandleApplyLifecycle installs the 30 day expiry rule.
// @Summary Apply Expiry Rule
// @Description Replaces the bucket lifecycle configuration with a rule deleting every object after 30 days.
// @Tags lifecycle
// @Security ApiKeyAuth
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} map[string]string "Applied"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /buckets/{bucket}/lifecycle [put]
func (h *Handler) HandleApplyLifecycle(c *fiber.Ctx) error {
	if err := h.service.ApplyLifecycleRule(requestContext(c), c.Params("bucket")); err != nil {
		return h.fail(c, "Applying lifecycle failed", err)
	}
	return c.JSON(fiber.Map{"status": "applied", "rule": ExpiryRuleID})
}

// HandleStatus reports the bucket configuration.
// @Summary Bucket Status
// @Description Checks that the bucket exists and reports versioning and lifecycle state.
// @Tags buckets
// @Security ApiKeyAuth
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} models.StatusReport "Status Report"
// @Failure 404 {object} map[string]string "Bucket Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /buckets/{bucket}/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	report, err := h.service.Status(c.Context(), c.Params("bucket"))
	if err != nil {
		return h.fail(c, "Status check failed", err)
	}
	return c.JSON(report)
}
