package postgres

import (
	"context"
	"fmt"
	"time"

	"ruleteo/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// ApplicationName tags Ruleteo sessions in pg_stat_activity.
const ApplicationName = "ruleteo"

const pingTimeout = 5 * time.Second

// NewPool opens the pool behind the app_state blob table. Unset pool sizes
// keep pgx defaults; the state is a single row, so a small pool is enough.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("invalid postgres settings for %s/%s: %w", cfg.Host, cfg.DBName, err)
	}

	poolCfg.ConnConfig.RuntimeParams["application_name"] = ApplicationName
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 && cfg.MinConns <= poolCfg.MaxConns {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("opening postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres at %s:%d unreachable: %w", cfg.Host, cfg.Port, err)
	}

	log.Info().
		Str("host", cfg.Host).
		Str("database", cfg.DBName).
		Int32("max_conns", poolCfg.MaxConns).
		Msg("postgres ready for app_state")

	return pool, nil
}
