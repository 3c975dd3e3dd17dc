package app

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
)

type App struct {
	log *slog.Logger
	srv Runner
}

func New(log *slog.Logger, srv Runner) *App {
	return &App{log: log, srv: srv}
}

// Run blocks until the server stops or SIGINT/SIGTERM arrives.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := a.srv.Run(ctx)
	if err != nil {
		a.log.Error("server stopped with error", "err", err)
		return err
	}
	a.log.Info("server stopped")
	return nil
}
