package assets

import (
	"errors"

	"card-assets/core/storage"

	"github.com/gofiber/fiber/v2"
)

// HTTPStatus maps storage errors onto response codes.
func HTTPStatus(err error) int {
	if errors.Is(err, storage.ErrInvalidArgument) {
		return fiber.StatusBadRequest
	}

	if errors.Is(err, storage.ErrUnavailable) {
		return fiber.StatusServiceUnavailable
	}

	var signErr *storage.SignedURLError
	if errors.As(err, &signErr) {
		return fiber.StatusBadGateway
	}

	return fiber.StatusInternalServerError
}
