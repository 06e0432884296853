// Package bootstrap wires up runtime dependencies shared by the server and
// the CLI tools.
package bootstrap

import (
	"fmt"

	"anondo/internal/cache"
	"anondo/internal/config"
	"anondo/internal/database"
	"anondo/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedBuiltIns upserts the curated event categories after connecting.
	SeedBuiltIns bool
}

// InitRuntime connects to DB and Redis and optionally seeds built-in data.
// The Redis client may be nil when the cache is unreachable; callers treat
// the cache as optional.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedBuiltIns {
		if err := seed.Categories(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed built-in categories: %w", err)
		}
	}

	return db, r, nil
}
