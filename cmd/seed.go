package cmd

import (
	"context"
	"fmt"
	"log"

	"quest-zone/core/config"
	"quest-zone/core/database"
	"quest-zone/core/logger"
	"quest-zone/core/storage"
	"quest-zone/feature/content"
	"quest-zone/feature/content/fallback"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the remote content tables from the bundled dataset",
	Long: `Publishes the bundled fallback content into the remote content
tables, replacing whatever is there. A starting point for a fresh database
the admin panel can edit from.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("remote content tables are required for seeding: %w", err)
		}

		store := content.NewStore(content.NewGateway(db), nil, storage.Config{}, logg)
		ctx := context.Background()
		seed := fallback.Clone()

		if err := store.SaveSettings(ctx, seed.SiteSettings); err != nil {
			return fmt.Errorf("seed settings: %w", err)
		}
		if err := store.SaveQuests(ctx, seed.Quests); err != nil {
			return fmt.Errorf("seed quests: %w", err)
		}
		if err := store.SaveGallery(ctx, seed.Gallery); err != nil {
			return fmt.Errorf("seed gallery: %w", err)
		}
		if err := store.SaveReviews(ctx, seed.Reviews); err != nil {
			return fmt.Errorf("seed reviews: %w", err)
		}
		if err := store.SaveOffers(ctx, seed.Offers); err != nil {
			return fmt.Errorf("seed offers: %w", err)
		}

		logg.Info("Remote content tables seeded",
			zap.Int("quests", len(seed.Quests)),
			zap.Int("gallery", len(seed.Gallery)),
			zap.Int("reviews", len(seed.Reviews)),
			zap.Int("offers", len(seed.Offers)),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)
}
