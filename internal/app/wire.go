package app

import (
	"log/slog"

	"github.com/dayanaadylkhanova/shipment-tracker/internal/adapter/upstream"
	"github.com/dayanaadylkhanova/shipment-tracker/internal/service"
	"github.com/dayanaadylkhanova/shipment-tracker/pkg/config"
)

// NewTracker assembles the tracking pipeline described by cfg.
func NewTracker(log *slog.Logger, cfg config.Config) *service.Tracker {
	pow := service.NewSolver(cfg.SolverWorkers, cfg.SolverMaxNonce)
	return service.NewTracker(log, upstream.NewClient(), service.NewChallengeSolver(pow), service.TrackerConfig{
		BaseURL:        cfg.BaseURL,
		MaxRetries:     cfg.MaxRetries,
		RequestTimeout: cfg.RequestTimeout,
		UserAgent:      cfg.UserAgent,
	})
}
