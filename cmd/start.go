package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quest-zone/core/config"
	"quest-zone/core/database"
	"quest-zone/core/loader"
	"quest-zone/core/logger"
	"quest-zone/core/middleware/auth"
	"quest-zone/core/middleware/rayid"
	"quest-zone/core/storage"

	"quest-zone/feature/admin"
	"quest-zone/feature/booking"
	"quest-zone/feature/content"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "quest-zone/docs/swagger"
)

// @title Quest Zone API
// @version 1.0
// @description API for the Quest Zone escape room site.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the quest zone server",
	Long:  `Starts the HTTP server, reconciles the site content, and initializes all enabled features.`,
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

		// 3. Connect to the remote content tables (Optional)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Remote content tables unavailable, serving bundled content", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to remote content tables")
		}

		// 4. Initialize Storage (Optional)
		var client storage.Client
		if c, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Image storage unavailable, gallery uploads disabled", zap.Error(err))
		} else {
			client = c
		}

		// 5. Build the content store and run the first reconcile pass
		store := content.NewStore(content.NewGateway(db), client, cfg.Storage, logg)
		snap := store.Refresh(context.Background())
		logg.Info("Initial content loaded", zap.String("source", string(snap.Source)))

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()

		tokenTTL := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
		mgr.Register(content.NewFeature(store))
		mgr.Register(admin.NewFeature(db, store, logg, cfg.Auth.JwtSecret, tokenTTL))
		mgr.Register(booking.NewFeature(store, logg))

		// Middleware Registration
		// RayID first so everything downstream is traceable
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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// API key protection, disabled when no key is configured
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
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
