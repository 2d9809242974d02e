package catalog

import "time"

// Config holds configuration for the card catalog feature.
type Config struct {
	// ImagePrefix is the object key prefix under which card images are stored.
	ImagePrefix string `mapstructure:"image_prefix" default:"cards/"`
	// AutoMigrate creates or updates the catalog tables at startup.
	AutoMigrate bool `mapstructure:"auto_migrate" default:"false"`
	// AuditCacheSeconds keeps image audit snapshots for this long. Zero disables caching.
	AuditCacheSeconds int `mapstructure:"audit_cache_seconds" default:"300"`
}

func (c Config) auditTTL() time.Duration {
	if c.AuditCacheSeconds <= 0 {
		return 0
	}
	return time.Duration(c.AuditCacheSeconds) * time.Second
}
