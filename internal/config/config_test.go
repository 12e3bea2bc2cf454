package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	require.Equal(t, "Restaurante", cfg.Mongo.Database)
	require.Equal(t, 10000, cfg.Seed.Users)
	require.Equal(t, 1000, cfg.Seed.Orders)
	require.Equal(t, 50000, cfg.Seed.Reviews)
	require.Equal(t, 5000, cfg.Seed.OrderBatchSize)
	require.Equal(t, 10000, cfg.Seed.ReviewBatchSize)
	require.Equal(t, int64(0), cfg.Seed.RandSeed)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SEEDER_SEED_USERS", "25")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 25, cfg.Seed.Users)
}
