package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tarefas/internal/config"
	v1 "github.com/adanyl0v/go-tarefas/internal/delivery/http/v1"
)

func NewRouter(env string, httpCfg config.HTTPConfig, handler v1.Handler) *gin.Engine {
	if env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handler.HandleRequestID)
	router.Use(handler.HandleAccessLog)
	router.Use(v1.Timeout(httpCfg.RequestTimeout))
	v1.RegisterRoutes(router, handler)

	return router
}

func MustListenAndServeHTTP(logger zerolog.Logger, httpCfg config.HTTPConfig, router http.Handler) {
	server := &http.Server{
		Addr:              net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler:           router,
		ReadHeaderTimeout: httpCfg.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// kill (no params) by default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case err, ok := <-serveErr:
		if ok {
			logger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}

	logger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	logger.Info().Msg("shut down http server")
}
