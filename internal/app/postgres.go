package app

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tarefas/internal/config"
)

func MustConnectPostgres(ctx context.Context, logger zerolog.Logger, cfg config.PostgresConfig) *pgxpool.Pool {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to parse postgres config")
		panic(err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to connect to postgres")
		panic(err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()

	err = pool.Ping(pingCtx)
	if err != nil {
		pool.Close()
		logger.Error().
			Err(err).
			Msg("failed to ping postgres")
		panic(err)
	}
	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("connected to postgres")

	return pool
}

func DisconnectPostgres(logger zerolog.Logger, pool *pgxpool.Pool) {
	pool.Close()
	logger.Info().Msg("disconnected from postgres")
}
