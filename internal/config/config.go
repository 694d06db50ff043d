package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string `validate:"required,hostname_port"`
	}
	Log struct {
		Level string `validate:"oneof=debug info warn warning error"`
	}
	Store struct {
		Driver string `validate:"oneof=mongo sqlite memory"`
	}
	Mongo struct {
		URI          string `validate:"required"`
		Database     string `validate:"required"`
		Transactions bool
		Timeout      time.Duration
	}
	SQLite struct {
		Path string `validate:"required"`
	}
	Snapshot struct {
		Bucket    string
		KeyPrefix string
		Keep      int `validate:"gte=0"`
		Region    string
		Endpoint  string
	}
	AWS struct {
		Profile string
	}
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	// optional; variables already in the environment win
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("HOBBIES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:5000")
	v.SetDefault("log.level", "info")
	v.SetDefault("store.driver", "mongo")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "hobbies")
	v.SetDefault("mongo.transactions", false)
	v.SetDefault("mongo.timeout", 10*time.Second)
	v.SetDefault("sqlite.path", "data/hobbies.db")
	v.SetDefault("snapshot.bucket", "")
	v.SetDefault("snapshot.keyprefix", "snapshots")
	v.SetDefault("snapshot.keep", 0)
	v.SetDefault("snapshot.region", "us-east-1")
	v.SetDefault("snapshot.endpoint", "")
	v.SetDefault("aws.profile", "")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints after defaults and overrides are applied.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
