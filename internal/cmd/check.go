package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/juliogsp/restaurante-seeder/internal/config"
	"github.com/juliogsp/restaurante-seeder/internal/database"
	"github.com/juliogsp/restaurante-seeder/internal/models"
)

var checkCmd = &cobra.Command{
	Use:   "check-connection",
	Short: "Check database connectivity and collection counts",
	Long: `Connects to the configured MongoDB database, pings it and reports
the document count of every collection the seeder touches. Useful to verify
the connection string and to confirm articulos_menu is populated before
running 'seed'.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()

	fmt.Printf("🔍 Checking connection to %s...\n", cfg.Mongo.Database)
	db, err := database.NewConnection(ctx, &cfg.Mongo)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close(context.Background())

	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	fmt.Println("✅ Connection OK")

	collections := []string{
		models.CollRestaurants,
		models.CollUsers,
		models.CollMenuItems,
		models.CollOrders,
		models.CollReviews,
	}

	var menuCount int64
	for _, name := range collections {
		n, err := db.Collection(name).CountDocuments(ctx, bson.D{})
		if err != nil {
			return fmt.Errorf("failed to count %s: %w", name, err)
		}
		fmt.Printf("   📊 %-16s %d documents\n", name, n)
		if name == models.CollMenuItems {
			menuCount = n
		}
	}

	if menuCount < 5 {
		fmt.Println("\n⚠️  articulos_menu has fewer than 5 items - 'seed' will fail when an order samples more items than exist")
	}

	return nil
}
