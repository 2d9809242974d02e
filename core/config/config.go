package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"card-assets/core/database"
	"card-assets/core/logger"
	"card-assets/core/server"
	"card-assets/core/storage"
	"card-assets/feature/catalog"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (S3 or MinIO).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the catalog database.
	Database database.Config `mapstructure:"database"`
	// Catalog holds configuration for the card catalog feature.
	Catalog catalog.Config `mapstructure:"catalog"`
}

// LoadConfig loads configuration from environment variables and an optional .env file in path.
// Missing storage credentials are not an error here; storage.Initialize reports them.
func LoadConfig(path string) (*Config, error) {
	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Register every key with its default so AutomaticEnv can resolve it
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. STORAGE_ACCESS_KEY -> storage.access_key)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and sets Viper defaults from the 'default' and
// 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
