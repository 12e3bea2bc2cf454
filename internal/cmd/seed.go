package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/juliogsp/restaurante-seeder/internal/config"
	"github.com/juliogsp/restaurante-seeder/internal/database"
	"github.com/juliogsp/restaurante-seeder/internal/seed"
)

var (
	userCount   int
	orderCount  int
	reviewCount int
	randSeed    int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with synthetic restaurants, users, orders and reviews",
	Long: `Runs the full seeding pipeline against the configured MongoDB database:

1. Insert the fixed restaurant set
2. Insert the seed accounts plus the generated users
3. Load the existing menu items (articulos_menu is never written)
4. Insert the generated orders, in bounded batches
5. Insert the generated reviews, in bounded batches

The menu collection must already contain at least 5 items, since each order
samples up to 5 distinct items from it. Any failure aborts the run and
leaves the batches committed so far in place.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().IntVar(&userCount, "users", 0, "Number of users to generate (0 = config value)")
	seedCmd.Flags().IntVar(&orderCount, "orders", 0, "Number of orders to generate (0 = config value)")
	seedCmd.Flags().IntVar(&reviewCount, "reviews", 0, "Number of reviews to generate (0 = config value)")
	seedCmd.Flags().Int64Var(&randSeed, "seed", 0, "Random seed for reproducible runs (0 = config value or clock)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if userCount > 0 {
		cfg.Seed.Users = userCount
	}
	if orderCount > 0 {
		cfg.Seed.Orders = orderCount
	}
	if reviewCount > 0 {
		cfg.Seed.Reviews = reviewCount
	}
	if randSeed != 0 {
		cfg.Seed.RandSeed = randSeed
	}

	ctx := context.Background()

	fmt.Printf("🍽️  Connecting to %s...\n", cfg.Mongo.Database)
	db, err := database.NewConnection(ctx, &cfg.Mongo)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close(context.Background())

	gen := seed.NewGenerator(cfg.Seed.RandSeed)

	fmt.Println("🏠 Inserting restaurants...")
	restaurantIDs, err := insertRestaurants(ctx, db, gen)
	if err != nil {
		return err
	}
	fmt.Printf("   ✅ %d restaurants inserted\n", len(restaurantIDs))

	fmt.Printf("👥 Generating %d users...\n", cfg.Seed.Users)
	users := gen.Users(cfg.Seed.Users)
	userIDs, err := seed.CollectionSink{Coll: db.Users()}.InsertMany(ctx, seed.Docs(users))
	if err != nil {
		return fmt.Errorf("failed to insert users: %w", err)
	}
	fmt.Printf("   ✅ %d users inserted\n", len(userIDs))

	fmt.Println("🍕 Loading existing menu items...")
	menu, err := db.LoadMenuItems(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("   ✅ %d menu items loaded\n", len(menu))

	fmt.Printf("🛒 Generating %d orders...\n", cfg.Seed.Orders)
	orders, err := gen.Orders(cfg.Seed.Orders, userIDs, restaurantIDs, menu)
	if err != nil {
		return fmt.Errorf("failed to generate orders: %w", err)
	}
	orderIDs, err := seed.InsertBatches(ctx, seed.CollectionSink{Coll: db.Orders()}, seed.Docs(orders), cfg.Seed.OrderBatchSize)
	if err != nil {
		return fmt.Errorf("failed to insert orders: %w", err)
	}
	fmt.Printf("   ✅ %d orders inserted (batches of %d)\n", len(orderIDs), cfg.Seed.OrderBatchSize)

	fmt.Printf("⭐ Generating %d reviews...\n", cfg.Seed.Reviews)
	reviews, err := gen.Reviews(cfg.Seed.Reviews, userIDs, orderIDs, orders)
	if err != nil {
		return fmt.Errorf("failed to generate reviews: %w", err)
	}
	reviewIDs, err := seed.InsertBatches(ctx, seed.CollectionSink{Coll: db.Reviews()}, seed.Docs(reviews), cfg.Seed.ReviewBatchSize)
	if err != nil {
		return fmt.Errorf("failed to insert reviews: %w", err)
	}
	fmt.Printf("   ✅ %d reviews inserted (batches of %d)\n", len(reviewIDs), cfg.Seed.ReviewBatchSize)

	fmt.Println("\n✅ Seeding complete!")
	return nil
}

// insertRestaurants writes the fixed restaurant set one document at a time
// and collects the assigned ids for the order generator.
func insertRestaurants(ctx context.Context, db *database.DB, gen *seed.Generator) ([]primitive.ObjectID, error) {
	restaurants := gen.Restaurants()
	ids := make([]primitive.ObjectID, 0, len(restaurants))
	for _, r := range restaurants {
		res, err := db.Restaurants().InsertOne(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("failed to insert restaurant %q: %w", r.Name, err)
		}
		id, ok := res.InsertedID.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
		}
		fmt.Printf("   🏠 %s (%s)\n", r.Name, id.Hex())
		ids = append(ids, id)
	}
	return ids, nil
}
