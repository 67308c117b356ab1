package config

import (
	"fmt"
	"log"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort             string        `env:"HTTP_PORT,default=8080"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	ReplyDelay           time.Duration `env:"REPLY_DELAY,default=1s"`
	RecommendationLimit  int           `env:"RECOMMENDATION_LIMIT,default=3"`
	RequireSessionToList bool          `env:"REQUIRE_SESSION_TO_LIST,default=false"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=30s"`
}

var AppConfig Config

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() error {
	err := godotenv.Load() // Load .env file if it exists
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Parse()
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

// Parse builds a Config from the current environment without touching AppConfig.
func Parse() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}

	if cfg.ReplyDelay < 0 {
		return Config{}, fmt.Errorf("REPLY_DELAY must not be negative, got %s", cfg.ReplyDelay)
	}
	if cfg.RecommendationLimit <= 0 {
		return Config{}, fmt.Errorf("RECOMMENDATION_LIMIT must be positive, got %d", cfg.RecommendationLimit)
	}
	return cfg, nil
}
