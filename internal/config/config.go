package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the process configuration, loaded from the environment
// with an optional .env file on top.
type Config struct {
	Port        int
	DatabaseDSN string
	GitHubToken string // empty means anonymous GitHub access (60 req/h)
	CacheTTL    time.Duration
}

// Load reads the configuration. Missing .env is fine; the environment
// alone is enough.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ️ no .env file found, using environment variables only")
	}

	cfg := &Config{
		Port:        8080,
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		GitHubToken: os.Getenv("GITHUB_TOKEN"),
		CacheTTL:    18 * time.Hour,
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			cfg.Port = p
		} else {
			log.Printf("⚠️ invalid PORT %q, keeping default %d", v, cfg.Port)
		}
	}

	if v := os.Getenv("PICKS_CACHE_TTL_HOURS"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h > 0 {
			cfg.CacheTTL = time.Duration(h) * time.Hour
		} else {
			log.Printf("⚠️ invalid PICKS_CACHE_TTL_HOURS %q, keeping default", v)
		}
	}

	return cfg
}
