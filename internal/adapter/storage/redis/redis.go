package redis

import (
	"context"
	"fmt"
	"time"

	"ruleteo/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Roles a Redis client can serve in Ruleteo.
const (
	RoleState     = "state"
	RoleRateLimit = "ratelimit"
)

const pingTimeout = 5 * time.Second

// NewClient opens the client shared by the state blob store and the rate
// limiter. The startup ping is bounded by pingTimeout; on failure the client
// is closed and nothing is returned.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger, roles ...string) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis at %s unreachable: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Strs("roles", roles).
		Msg("redis ready")

	return client, nil
}
