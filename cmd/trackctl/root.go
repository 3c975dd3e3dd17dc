package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayanaadylkhanova/shipment-tracker/internal/app"
	"github.com/dayanaadylkhanova/shipment-tracker/internal/entity"
	"github.com/dayanaadylkhanova/shipment-tracker/internal/service"
	"github.com/dayanaadylkhanova/shipment-tracker/pkg/config"
	"github.com/dayanaadylkhanova/shipment-tracker/pkg/logger"
)

type options struct {
	baseURL    string
	maxRetries int
	timeout    time.Duration
	workers    int
	logLevel   string

	newTracker trackerFactory
}

type trackerFactory func(log *slog.Logger, cfg config.Config) Tracker

func defaultTracker(log *slog.Logger, cfg config.Config) Tracker {
	return app.NewTracker(log, cfg)
}

func newRootCmd(stdout, stderr io.Writer, newTracker trackerFactory) *cobra.Command {
	opts := &options{newTracker: newTracker}

	root := &cobra.Command{
		Use:           "trackctl",
		Short:         "Track DB Schenker land shipments from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	f := root.PersistentFlags()
	f.StringVar(&opts.baseURL, "base-url", "", "tracking API base URL (overrides TRACKING_BASE_URL)")
	f.IntVar(&opts.maxRetries, "max-retries", -1, "captcha retries per stage (overrides TRACKING_MAX_RETRIES)")
	f.DurationVar(&opts.timeout, "timeout", 0, "per-request timeout (overrides TRACKING_REQUEST_TIMEOUT)")
	f.IntVar(&opts.workers, "workers", 0, "solver goroutines per puzzle (overrides SOLVER_WORKERS)")
	f.StringVar(&opts.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	root.AddCommand(
		&cobra.Command{
			Use:   "track <reference>",
			Short: "Print the full shipment snapshot as JSON",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tr, err := opts.tracker(stderr)
				if err != nil {
					return err
				}
				snap, err := tr.TrackShipment(cmd.Context(), args[0])
				return emit(cmd, snap, err)
			},
		},
		&cobra.Command{
			Use:   "summary <reference>",
			Short: "Print the search hit for a reference as JSON",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tr, err := opts.tracker(stderr)
				if err != nil {
					return err
				}
				sum, err := tr.SearchShipment(cmd.Context(), args[0])
				return emit(cmd, sum, err)
			},
		},
	)
	return root
}

// tracker loads the environment configuration and applies flag overrides.
func (o *options) tracker(stderr io.Writer) (Tracker, error) {
	cfg, err := config.Parse()
	if err != nil {
		return nil, err
	}
	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}
	if o.maxRetries >= 0 {
		cfg.MaxRetries = o.maxRetries
	}
	if o.timeout > 0 {
		cfg.RequestTimeout = o.timeout
	}
	if o.workers > 0 {
		cfg.SolverWorkers = o.workers
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logger.NewJSON(stderr, "trackctl", logger.LevelFromEnv(cfg.LogLevel))
	return o.newTracker(log, cfg), nil
}

type failure struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func emit(cmd *cobra.Command, v any, err error) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err != nil {
		_ = json.NewEncoder(cmd.ErrOrStderr()).Encode(failure{Code: entity.CodeOf(err), Message: err.Error()})
		return err
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

var _ Tracker = (*service.Tracker)(nil)
