package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "chargeshare/backend/libs/config"
)

// Config defines marketplace service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"MARKETPLACE_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		DSN string `yaml:"dsn" env:"MARKETPLACE_POSTGRES_DSN"`
	} `yaml:"database"`
	Redis struct {
		Addr             string `yaml:"addr" env:"MARKETPLACE_REDIS_ADDR"`
		Password         string `yaml:"password" env:"MARKETPLACE_REDIS_PASSWORD"`
		DB               int    `yaml:"db" env:"MARKETPLACE_REDIS_DB"`
		ListingTTL       int    `yaml:"listingTtlSeconds" env:"MARKETPLACE_LISTING_TTL"`
		LiveSessionTTL   int    `yaml:"liveSessionTtlSeconds" env:"MARKETPLACE_LIVE_SESSION_TTL"`
	} `yaml:"redis"`
	Token struct {
		Secret         string `yaml:"secret" env:"MARKETPLACE_TOKEN_SECRET"`
		ExpiresInHours int    `yaml:"expiresInHours" env:"MARKETPLACE_TOKEN_EXPIRES_HOURS"`
	} `yaml:"token"`
	Feed struct {
		PushIntervalMs int `yaml:"pushIntervalMs" env:"MARKETPLACE_FEED_PUSH_INTERVAL_MS"`
	} `yaml:"feed"`
}

// Load reads configuration via shared helper.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8084"
	cfg.Redis.Addr = "localhost:6379"
	cfg.Redis.ListingTTL = 300
	cfg.Redis.LiveSessionTTL = 43200
	cfg.Token.ExpiresInHours = 24
	cfg.Feed.PushIntervalMs = 2000

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return nil, errors.New("config: database dsn required")
	}
	if strings.TrimSpace(cfg.Redis.Addr) == "" {
		return nil, errors.New("config: redis addr required")
	}
	if strings.TrimSpace(cfg.Token.Secret) == "" {
		return nil, errors.New("config: token secret required")
	}
	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8084"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// ListingCacheTTL returns listing cache ttl as duration.
func (c *Config) ListingCacheTTL() time.Duration {
	if c.Redis.ListingTTL <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.Redis.ListingTTL) * time.Second
}

// LiveSessionTTL returns live session ttl as duration.
func (c *Config) LiveSessionTTL() time.Duration {
	if c.Redis.LiveSessionTTL <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(c.Redis.LiveSessionTTL) * time.Second
}

// TokenExpiry returns session token lifetime.
func (c *Config) TokenExpiry() time.Duration {
	if c.Token.ExpiresInHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.Token.ExpiresInHours) * time.Hour
}

// FeedPushInterval returns the websocket push cadence.
func (c *Config) FeedPushInterval() time.Duration {
	if c.Feed.PushIntervalMs <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.Feed.PushIntervalMs) * time.Millisecond
}
