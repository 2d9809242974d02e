// Package config provides configuration management for the card-assets service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (loaded with godotenv). Defaults come from `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, API key, public paths
//   - Storage: provider, region, credentials, bucket, signed URL lifetime
//   - Log: Logging level and format
//   - Database: catalog database connection (optional)
//   - Catalog: image key prefix
//
// Loading is done once at startup; the resulting struct is passed down explicitly.
// Storage settings are validated by storage.Initialize, which reports every missing
// key together.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	handle := storage.Initialize(cfg.Storage, logger)
package config
