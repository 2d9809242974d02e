package health

import (
	"context"
	"time"

	"card-assets/core/storage"
	"card-assets/feature/catalog/models"
	"card-assets/feature/health/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Overall statuses.
const (
	StatusOK          = "ok"
	StatusDegraded    = "degraded"
	StatusUnavailable = "unavailable"
)

// Report combines every check.
type Report struct {
	Status   string               `json:"status"`
	Storage  checks.StorageReport `json:"storage"`
	Database checks.SchemaReport  `json:"database"`
}

// Service handles health checks.
type Service struct {
	storage *storage.Handle
	db      *gorm.DB
	logger  *zap.Logger
	timeout time.Duration
}

// NewService creates a new health service. db may be nil.
func NewService(handle *storage.Handle, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		storage: handle,
		db:      db,
		logger:  logger,
		timeout: 5 * time.Second,
	}
}

// CheckStorage probes the storage handle and bucket.
func (s *Service) CheckStorage(ctx context.Context) checks.StorageReport {
	return checks.CheckStorage(ctx, s.storage, s.timeout)
}

// CheckDatabase verifies the catalog schema.
func (s *Service) CheckDatabase() checks.SchemaReport {
	return checks.CheckSchema(s.db, models.ExpectedColumns)
}

// Check runs all checks. Storage problems make the service unavailable;
// catalog problems only degrade it.
func (s *Service) Check(ctx context.Context) Report {
	report := Report{
		Storage:  s.CheckStorage(ctx),
		Database: s.CheckDatabase(),
	}

	switch {
	case !report.Storage.Healthy():
		report.Status = StatusUnavailable
	case report.Database.Status == checks.DatabaseError || report.Database.Status == checks.DatabaseIncomplete:
		report.Status = StatusDegraded
	default:
		report.Status = StatusOK
	}

	if report.Status != StatusOK {
		s.logger.Warn("Health check not ok",
			zap.String("status", report.Status),
			zap.String("bucket_status", report.Storage.Status),
			zap.String("database_status", report.Database.Status),
		)
	}
	return report
}
