package catalog

import (
	"errors"
	"strconv"

	"card-assets/core/logger"
	"card-assets/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the card catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/categories", h.HandleListCategories)
	group.Get("/categories/:slug/cards", h.HandleListCards)
	group.Get("/cards/:id", h.HandleGetCard)
	group.Get("/cards/:id/audit", h.HandleAuditCard)
	group.Get("/audit", h.HandleAudit)
}

// HandleListCategories lists the card categories.
// @Summary List Categories
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/categories [get]
func (h *Handler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(categories)
}

// HandleListCards lists the cards of a category.
// @Summary List Cards
// @Description Lists the gift cards of a category with signed image URLs.
// @Tags catalog
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {array} models.CardView
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/categories/{slug}/cards [get]
func (h *Handler) HandleListCards(c *fiber.Ctx) error {
	cards, err := h.service.ListCards(c.UserContext(), c.Params("slug"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(cards)
}

// HandleGetCard returns a single card.
// @Summary Get Card
// @Description Returns a gift card with a signed image URL.
// @Tags catalog
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} models.CardView
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/cards/{id} [get]
func (h *Handler) HandleGetCard(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid card id"})
	}

	card, err := h.service.GetCard(c.UserContext(), uint(id))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(card)
}

// HandleAudit compares catalog image references with the bucket.
// @Summary Audit Card Images
// @Description Lists card images missing from storage and stored images no card references. Results may be cached; pass refresh=true to rebuild.
// @Tags catalog
// @Produce json
// @Param refresh query boolean false "Rebuild the cached snapshot"
// @Success 200 {object} reconcile.Report
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/audit [get]
func (h *Handler) HandleAudit(c *fiber.Ctx) error {
	report, err := h.service.AuditImages(c.UserContext(), c.QueryBool("refresh"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleAuditCard checks a single card image.
// @Summary Audit Card Image
// @Tags catalog
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} reconcile.Result
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /catalog/cards/{id}/audit [get]
func (h *Handler) HandleAuditCard(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid card id"})
	}

	result, err := h.service.AuditCard(c.UserContext(), uint(id))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"card_id":         id,
		"key":             result.Key,
		"storage_present": result.StoragePresent,
	})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if errors.Is(err, storage.ErrUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": storage.ErrUnavailable.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Catalog request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
