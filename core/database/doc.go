// Package database handles the catalog database connection and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (production) or SQLite
// (tests, local development) connections from the application's configuration.
//
// # Connect
//
// Connect opens the connection, applies pool settings and pings with the configured
// timeout. The catalog is optional: callers log the error and disable the feature.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table. The health feature uses it to confirm
// that the catalog tables exist before reporting the database as healthy.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Catalog disabled", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "gift_cards")
package database
