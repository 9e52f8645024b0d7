package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"quest-zone/feature/content"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Admin feature.
func NewFeature(db *gorm.DB, store *content.Store, logger *zap.Logger, jwtSecret string, tokenTTL time.Duration) *Feature {
	svc := NewService(db, store, logger, jwtSecret, tokenTTL)
	h := NewHandler(svc, store)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "admin"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
