package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bucket-manager/core/config"
	"bucket-manager/core/database"
	"bucket-manager/core/loader"
	"bucket-manager/core/logger"
	"bucket-manager/core/metrics"
	"bucket-manager/core/middleware/auth"
	"bucket-manager/core/middleware/rayid"
	"bucket-manager/core/storage"

	"bucket-manager/feature/audit"
	"bucket-manager/feature/bucket"
	"bucket-manager/feature/search"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "bucket-manager/docs/swagger"
)

// @title Bucket Manager API
// @version 1.0
// @description API for managing objects in S3-compatible buckets and searching text objects.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bucket manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to the audit database (optional)
		var db *gorm.DB
		if cfg.Database.Enabled {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to audit database", zap.String("driver", cfg.Database.Driver))
			}
		}

		// 4. Initialize Storage
		m := metrics.New()
		raw, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		store := metrics.InstrumentStorage(raw, m)
		checkDefaultBucket(logg, store, cfg.Storage.Bucket)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()

		auditFeature := audit.NewFeature(db, logg)
		mgr.Register(bucket.NewFeature(store, auditFeature.Recorder(), logg))
		mgr.Register(search.NewFeature(store, cfg.Search, logg, m))
		mgr.Register(auditFeature)

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id attached
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

		// 3. Auth (Protect API). Docs and metrics are skipped.
		if !cfg.Server.AuthEnabled() {
			logg.Warn("No API key configured, the API is unauthenticated")
		}
		app.Use(auth.New(auth.Config{
			ApiKey: cfg.Server.ApiKey,
			Next:   auth.SkipPrefixes("/swagger", "/metrics"),
		}))

		// 4. Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", m.Handler())

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// checkDefaultBucket warns when the configured bucket is missing. Requests may
// still target other buckets, so this is not fatal.
func checkDefaultBucket(logg *zap.Logger, client storage.Client, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, name)
	switch {
	case err != nil:
		logg.Warn("Could not reach object storage", zap.String("bucket", name), zap.Error(err))
	case !exists:
		logg.Warn("Default bucket does not exist", zap.String("bucket", name))
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
