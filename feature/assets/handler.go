package assets

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"card-assets/core/logger"
	"card-assets/core/storage"
	"card-assets/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SignedURLResponse is returned by GET /assets/url.
type SignedURLResponse struct {
	URL       string `json:"url"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expires_in"`
}

// FilenameResponse is returned by GET /assets/filename.
type FilenameResponse struct {
	Filename string `json:"filename"`
}

// Handler handles HTTP requests for signed asset URLs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the asset routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/assets")
	group.Get("/url", h.HandleSignedURL)
	group.Get("/filename", h.HandleFilename)
	group.Get("/redirect/*", h.HandleRedirect)
}

// HandleSignedURL returns a signed URL for an object key.
// @Summary Get Signed URL
// @Description Generates a time-limited GET URL for an object in the asset bucket.
// @Tags assets
// @Produce json
// @Param key query string true "Object key (a single leading '/' is stripped)"
// @Param expires query int false "Lifetime in seconds (default 3600, max 604800)"
// @Param download query boolean false "Force download with the extracted filename"
// @Success 200 {object} SignedURLResponse
// @Failure 400 {object} map[string]string "Invalid argument"
// @Failure 502 {object} map[string]string "Signing failed"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /assets/url [get]
func (h *Handler) HandleSignedURL(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Query("key")
	expires, err := h.expiry(c)
	if err != nil {
		l.Warn("Signed URL request rejected", zap.String("expires", c.Query("expires")), zap.Error(err))
		return c.Status(HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	var params url.Values
	if c.QueryBool("download") {
		params = DownloadParams(utils.ExtractFilename(key))
	}

	signed, err := h.service.ResolveSignedURLWithParams(c.UserContext(), key, expires, params)
	if err != nil {
		l.Warn("Signed URL request failed", zap.String("key", key), zap.Error(err))
		return c.Status(HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	if expires == 0 {
		expires = h.service.DefaultExpiry()
	}
	return c.JSON(SignedURLResponse{
		URL:       signed,
		Key:       NormalizeKey(key),
		ExpiresIn: int(expires / time.Second),
	})
}

// HandleRedirect redirects to a freshly signed URL for the key in the path.
// @Summary Redirect to Asset
// @Description Signs the object key taken from the path and answers with a temporary redirect.
// @Tags assets
// @Param key path string true "Object key"
// @Param expires query int false "Lifetime in seconds (default 3600, max 604800)"
// @Success 307
// @Failure 400 {object} map[string]string "Invalid argument"
// @Failure 502 {object} map[string]string "Signing failed"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /assets/redirect/{key} [get]
func (h *Handler) HandleRedirect(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	key, err := url.PathUnescape(c.Params("*"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed object key"})
	}

	expires, err := h.expiry(c)
	if err != nil {
		return c.Status(HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	signed, err := h.service.ResolveSignedURL(c.UserContext(), key, expires)
	if err != nil {
		l.Warn("Signed redirect failed", zap.String("key", key), zap.Error(err))
		return c.Status(HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Redirect(signed, fiber.StatusTemporaryRedirect)
}

// HandleFilename extracts the filename referenced by a stored URL or path.
// @Summary Extract Filename
// @Description Returns the trailing timestamp filename, or the last path segment.
// @Tags assets
// @Produce json
// @Param source query string true "URL or path"
// @Success 200 {object} FilenameResponse
// @Router /assets/filename [get]
func (h *Handler) HandleFilename(c *fiber.Ctx) error {
	return c.JSON(FilenameResponse{Filename: utils.ExtractFilename(c.Query("source"))})
}

// expiry reads the expires query parameter in whole seconds; absent means zero
// (service default). Malformed, negative or over-long values are invalid arguments.
func (h *Handler) expiry(c *fiber.Ctx) (time.Duration, error) {
	raw := c.Query("expires")
	if raw == "" {
		return 0, nil
	}

	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || seconds < 0 {
		return 0, storage.InvalidArgument(fmt.Sprintf("expires must be a non-negative number of seconds, got %q", raw))
	}
	if seconds > int64(storage.MaxExpiry/time.Second) {
		return 0, storage.InvalidArgument(fmt.Sprintf("expires must not exceed %d seconds", int64(storage.MaxExpiry/time.Second)))
	}
	return time.Duration(seconds) * time.Second, nil
}
