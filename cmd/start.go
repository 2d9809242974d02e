package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"card-assets/core/config"
	"card-assets/core/database"
	"card-assets/core/loader"
	"card-assets/core/logger"
	"card-assets/core/metrics"
	"card-assets/core/middleware/auth"
	"card-assets/core/middleware/rayid"
	"card-assets/core/storage"

	"card-assets/feature/assets"
	"card-assets/feature/catalog"
	"card-assets/feature/health"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "card-assets/docs/swagger"
)

// @title Card Assets API
// @version 1.0
// @description Signed URLs for gift card assets and the card catalog.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the card assets server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// Storage never stops startup; an incomplete config yields an unavailable handle.
		handle := storage.Initialize(cfg.Storage, logg)

		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		signing := metrics.NewSigning("", registry)

		// Catalog database (optional)
		var db *gorm.DB
		if cfg.Database.Enabled {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed, catalog disabled", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to catalog database", zap.String("driver", cfg.Database.Driver))
				if cfg.Catalog.AutoMigrate {
					if err := catalog.Migrate(db); err != nil {
						logg.Fatal("Failed to migrate catalog", zap.Error(err))
					}
				}
			}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
		})

		assetSvc := assets.NewService(handle, cfg.Storage.Expiry(), logg, signing)

		mgr := loader.NewManager(logg)
		mgr.Register(assets.NewFeature(assetSvc))
		mgr.Register(catalog.NewFeature(db, assetSvc, cfg.Catalog, logg))
		mgr.Register(health.NewFeature(handle, db, logg))

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

		app.Use(auth.New(auth.Config{
			ApiKey:      cfg.Server.ApiKey,
			PublicPaths: cfg.Server.PublicPrefixes(),
		}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server",
				zap.String("address", cfg.Server.Address()),
				zap.Bool("signing_available", handle.Available()),
			)
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
