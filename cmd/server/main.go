package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dayanaadylkhanova/shipment-tracker/internal/adapter/transport/rest"
	"github.com/dayanaadylkhanova/shipment-tracker/internal/app"
	"github.com/dayanaadylkhanova/shipment-tracker/internal/metrics"
	"github.com/dayanaadylkhanova/shipment-tracker/pkg/config"
	"github.com/dayanaadylkhanova/shipment-tracker/pkg/logger"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.NewJSON(os.Stdout, "shipment-tracker", logger.LevelFromEnv(cfg.LogLevel))

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		log.Error("metrics registration failed", "err", err)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	tracker := app.NewTracker(log, cfg)
	srv := rest.NewServer(log, cfg.ListenAddr, cfg.ShutdownWait, tracker)

	if err := app.New(log, srv).Run(); err != nil {
		os.Exit(1)
	}
}
