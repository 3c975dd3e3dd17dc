package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	log       *slog.Logger
	addr      string
	shutdownT time.Duration
	tracker   Tracker
	r         *gin.Engine
}

func NewServer(log *slog.Logger, addr string, shutdown time.Duration, tracker Tracker) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{
		log:       log,
		addr:      addr,
		shutdownT: shutdown,
		tracker:   tracker,
		r:         r,
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.r }

func (s *Server) routes() {
	s.r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.r.Group("/api/v1", requestID(), s.instrument())
	{
		v1.GET("/shipments/:reference", s.handleTrack)
		v1.GET("/shipments/:reference/summary", s.handleSummary)
	}
}

// Run serves until ctx is done, then drains in-flight requests for at most
// the shutdown budget.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	srv := &http.Server{
		Handler:           s.r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info("server started", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		s.log.Info("shutdown: draining requests")
		sctx, cancel := context.WithTimeout(context.Background(), s.shutdownT)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			s.log.Warn("shutdown: force-close remaining connections", "err", err)
			_ = srv.Close()
		} else {
			s.log.Info("shutdown: all requests drained")
		}
		<-errCh
		return nil

	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}
