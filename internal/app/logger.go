package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tarefas/internal/config"
)

// NewDefaultLogger returns the logger used until the config is known.
func NewDefaultLogger() zerolog.Logger {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimestampFieldName = "timestamp"

	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Int("pid", os.Getpid()).
		Logger()

	logger.Info().Msg("initialized default logger")
	return logger
}

// NewApplicationLogger adjusts level and output of logger for env.
func NewApplicationLogger(logger zerolog.Logger, env string) (zerolog.Logger, error) {
	w := io.Writer(os.Stdout)
	switch env {
	case config.EnvDev:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case config.EnvProd:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case config.EnvLocal:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)

		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = os.Stdout
		w = consoleWriter
	default:
		return logger, fmt.Errorf("unknown env: %s", env)
	}

	logger = logger.Output(w)
	logger.Info().Msg("initialized application logger")
	return logger, nil
}

func MustInitApplicationLogger(logger zerolog.Logger, env string) zerolog.Logger {
	appLogger, err := NewApplicationLogger(logger, env)
	if err != nil {
		logger.Error().
			Err(err).
			Str("env", env).
			Msg("unknown env")
		panic(err)
	}
	return appLogger
}
