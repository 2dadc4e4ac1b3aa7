package main

import (
	"context"

	"github.com/adanyl0v/go-tarefas/internal/app"
	"github.com/adanyl0v/go-tarefas/internal/delivery/http/v1"
	"github.com/adanyl0v/go-tarefas/internal/services"
	"github.com/adanyl0v/go-tarefas/internal/store"
)

func main() {
	logger := app.NewDefaultLogger()
	cfg := app.MustReadConfig(logger)
	logger = app.MustInitApplicationLogger(logger, cfg.Env)

	pool := app.MustConnectPostgres(context.Background(), logger, cfg.Postgres)
	defer app.DisconnectPostgres(logger, pool)

	handle := store.NewPostgres(pool)
	handler := v1.New(
		logger,
		handle,
		services.NewTaskService(logger, handle),
		services.NewUserService(logger, handle),
	)

	router := app.NewRouter(cfg.Env, cfg.HTTP, handler)
	app.MustListenAndServeHTTP(logger, cfg.HTTP, router)
}
