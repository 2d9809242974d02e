package health

import (
	"card-assets/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/health")
	group.Get("/", h.HandleHealth)
	group.Get("/storage", h.HandleStorage)
	group.Get("/database", h.HandleDatabase)
}

// HandleHealth runs every check.
// @Summary Service Health
// @Description Reports storage availability, bucket reachability and catalog schema. Returns 503 when signed URLs cannot be served.
// @Tags health
// @Produce json
// @Success 200 {object} Report
// @Failure 503 {object} Report
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	report := h.service.Check(c.Context())

	status := fiber.StatusOK
	if report.Status == StatusUnavailable {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(report)
}

// HandleStorage checks the object store only.
// @Summary Storage Health
// @Description Reports whether the storage client is configured and the bucket exists.
// @Tags health
// @Produce json
// @Success 200 {object} checks.StorageReport
// @Failure 503 {object} checks.StorageReport
// @Router /health/storage [get]
func (h *Handler) HandleStorage(c *fiber.Ctx) error {
	report := h.service.CheckStorage(c.Context())
	if !report.Healthy() {
		logger.WithRayID(h.service.logger, c).Warn("Storage health check failed",
			zap.String("bucket_status", report.Status),
			zap.String("error", report.Error),
		)
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}

// HandleDatabase checks the catalog schema only.
// @Summary Database Health
// @Description Compares the catalog tables against the columns the service reads.
// @Tags health
// @Produce json
// @Success 200 {object} checks.SchemaReport
// @Router /health/database [get]
func (h *Handler) HandleDatabase(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckDatabase())
}
