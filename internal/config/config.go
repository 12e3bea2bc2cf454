package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Mongo MongoConfig `mapstructure:"mongo"`
	Seed  SeedConfig  `mapstructure:"seed"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type SeedConfig struct {
	Users           int   `mapstructure:"users"`
	Orders          int   `mapstructure:"orders"`
	Reviews         int   `mapstructure:"reviews"`
	OrderBatchSize  int   `mapstructure:"order_batch_size"`
	ReviewBatchSize int   `mapstructure:"review_batch_size"`
	RandSeed        int64 `mapstructure:"rand_seed"`
}

// LoadConfig loads configuration from config.yaml and environment variables.
// Every key has a default, so the tool runs against a local MongoDB with no
// config file at all.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.restaurante-seeder/")
	v.AddConfigPath("/etc/restaurante-seeder/")

	// Enable environment variable override with SEEDER_ prefix
	v.SetEnvPrefix("SEEDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults mirror the record counts and batch sizes the tool has always
	// used; rand_seed 0 means "derive from the clock".
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "Restaurante")
	v.SetDefault("seed.users", 10000)
	v.SetDefault("seed.orders", 1000)
	v.SetDefault("seed.reviews", 50000)
	v.SetDefault("seed.order_batch_size", 5000)
	v.SetDefault("seed.review_batch_size", 10000)
	v.SetDefault("seed.rand_seed", 0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
