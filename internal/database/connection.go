package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/juliogsp/restaurante-seeder/internal/config"
	"github.com/juliogsp/restaurante-seeder/internal/models"
)

type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewConnection creates a new database connection using the provided config
func NewConnection(ctx context.Context, cfg *config.MongoConfig) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Test connection
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &DB{client: client, db: client.Database(cfg.Database)}, nil
}

// HealthCheck performs a simple health check on the database
func (d *DB) HealthCheck(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// Collection returns a handle to the named collection.
func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *DB) Restaurants() *mongo.Collection { return d.db.Collection(models.CollRestaurants) }
func (d *DB) Users() *mongo.Collection       { return d.db.Collection(models.CollUsers) }
func (d *DB) Orders() *mongo.Collection      { return d.db.Collection(models.CollOrders) }
func (d *DB) Reviews() *mongo.Collection     { return d.db.Collection(models.CollReviews) }

// LoadMenuItems reads the full pre-existing menu catalog, projecting only
// the fields order generation snapshots.
func (d *DB) LoadMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1, "nombre": 1, "precio": 1})

	cur, err := d.db.Collection(models.CollMenuItems).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer cur.Close(ctx)

	var items []models.MenuItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}

	return items, nil
}
