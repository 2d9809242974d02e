package catalog

import (
	"card-assets/feature/assets"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates the catalog feature. A nil db disables it.
func NewFeature(db *gorm.DB, assetSvc *assets.Service, cfg Config, logger *zap.Logger) *Feature {
	if db == nil {
		return &Feature{}
	}
	svc := NewService(NewRepository(db), assetSvc, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc), enabled: true}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled reports whether a catalog database is connected.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
