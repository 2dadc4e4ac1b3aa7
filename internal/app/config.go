package app

import (
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tarefas/internal/config"
)

func MustReadConfig(logger zerolog.Logger) *config.Config {
	cfg, err := config.NewReader().Read()
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to read config")
		panic(err)
	}
	logger.Info().
		Str("env", cfg.Env).
		Msg("read config")

	return cfg
}
