package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dayanaadylkhanova/shipment-tracker/internal/entity"
	"github.com/dayanaadylkhanova/shipment-tracker/internal/metrics"
)

const (
	HeaderCaptchaPuzzle   = "captcha-puzzle"
	HeaderCaptchaSolution = "captcha-solution"
)

const (
	stageResolve = "resolve"
	stageFetch   = "fetch"
)

const (
	DefaultMaxRetries     = 10
	DefaultRequestTimeout = 15 * time.Second
	DefaultUserAgent      = "Mozilla/5.0"
)

// upstream error bodies are cut to this length in error info
const bodySnippet = 256

type TrackerConfig struct {
	BaseURL        string
	MaxRetries     int
	RequestTimeout time.Duration
	UserAgent      string
}

// Tracker resolves a reference to the backend's internal id and then fetches
// the shipment detail, answering captcha challenges on the way.
type Tracker struct {
	log       *slog.Logger
	transport Transport
	captcha   CaptchaSolver
	cfg       TrackerConfig
}

func NewTracker(log *slog.Logger, transport Transport, captcha CaptchaSolver, cfg TrackerConfig) *Tracker {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Tracker{log: log, transport: transport, captcha: captcha, cfg: cfg}
}

// TrackShipment returns the full snapshot of the shipment behind reference.
func (t *Tracker) TrackShipment(ctx context.Context, reference string) (snap entity.ShipmentSnapshot, err error) {
	defer func() { t.record("track", reference, err) }()

	ref, err := validateReference(reference)
	if err != nil {
		return snap, err
	}
	summary, err := t.resolve(ctx, ref)
	if err != nil {
		return snap, err
	}
	body, err := t.query(ctx, stageFetch, t.cfg.BaseURL+"/land/"+url.PathEscape(summary.ID))
	if err != nil {
		return snap, err
	}
	snap, err = MapShipment(body)
	if err != nil {
		return entity.ShipmentSnapshot{}, err
	}

	if t.log.Enabled(ctx, slog.LevelDebug) {
		for _, pkg := range snap.PackageTracking {
			for _, ev := range pkg.Events {
				t.log.Debug("package event", "package_id", pkg.PackageID, "date", ev.Date, "code", ev.Code)
			}
		}
	}
	return snap, nil
}

// SearchShipment runs only the resolve stage and returns its first hit.
func (t *Tracker) SearchShipment(ctx context.Context, reference string) (summary entity.ShipmentSummary, err error) {
	defer func() { t.record("search", reference, err) }()

	ref, err := validateReference(reference)
	if err != nil {
		return summary, err
	}
	return t.resolve(ctx, ref)
}

func validateReference(reference string) (string, error) {
	ref := strings.TrimSpace(reference)
	if ref == "" {
		return "", entity.NewError("validate reference", entity.ErrInvalidReference, nil, "reference is blank")
	}
	return ref, nil
}

func (t *Tracker) resolve(ctx context.Context, ref string) (entity.ShipmentSummary, error) {
	body, err := t.query(ctx, stageResolve, t.cfg.BaseURL+"?query="+url.QueryEscape(ref))
	if err != nil {
		return entity.ShipmentSummary{}, err
	}
	return MapSummary(body)
}

// query issues GETs to target until the backend answers with something other
// than a captcha challenge. Challenges are solved and replayed at most
// MaxRetries times, so at most MaxRetries+1 requests are sent.
func (t *Tracker) query(ctx context.Context, stage, target string) ([]byte, error) {
	var solution string
	for attempt := 0; ; attempt++ {
		resp, err := t.do(ctx, stage, target, solution)
		if err != nil {
			return nil, err
		}

		switch {
		case resp.Status >= 200 && resp.Status < 300:
			return resp.Body, nil

		case resp.Status == http.StatusTooManyRequests:
			metrics.CaptchaChallengesTotal.WithLabelValues(stage).Inc()
			if attempt >= t.cfg.MaxRetries {
				return nil, entity.NewError(stage, entity.ErrRetryBudgetExceeded, nil,
					fmt.Sprintf("%d requests challenged", attempt+1))
			}
			puzzle := resp.Header.Get(HeaderCaptchaPuzzle)
			if puzzle == "" {
				return nil, entity.NewError(stage, entity.ErrChallengeRequired, nil, "no "+HeaderCaptchaPuzzle+" header")
			}
			t.log.Debug("captcha challenge", "stage", stage, "attempt", attempt+1)
			solution, err = t.captcha.Solve(ctx, puzzle)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", stage, err)
			}

		case resp.Status >= 500:
			return nil, entity.NewError(stage, entity.ErrUpstreamServer, nil,
				fmt.Sprintf("status %d: %s", resp.Status, snippet(resp.Body)))

		default:
			return nil, entity.NewError(stage, entity.ErrUpstreamProtocol, nil,
				fmt.Sprintf("unexpected status %d", resp.Status))
		}
	}
}

func (t *Tracker) do(ctx context.Context, stage, target, solution string) (entity.UpstreamResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, t.cfg.RequestTimeout)
	defer cancel()

	resp, err := t.transport.Do(reqCtx, entity.UpstreamRequest{URL: target, Header: t.headers(solution)})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return resp, fmt.Errorf("%s: %w", stage, ctxErr)
		}
		metrics.UpstreamRequestsTotal.WithLabelValues(stage, "error").Inc()
		return resp, entity.NewError(stage, entity.ErrUpstreamProtocol, err, "request failed")
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(stage, strconv.Itoa(resp.Status)).Inc()
	return resp, nil
}

func (t *Tracker) headers(solution string) http.Header {
	h := make(http.Header, 4)
	h.Set("User-Agent", t.cfg.UserAgent)
	h.Set("Accept", "application/json, text/plain, */*")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	if solution != "" {
		h.Set(HeaderCaptchaSolution, solution)
	}
	return h
}

func (t *Tracker) record(op, reference string, err error) {
	if err == nil {
		metrics.TrackingResultsTotal.WithLabelValues("ok").Inc()
		t.log.Info("shipment tracked", "op", op, "reference", reference)
		return
	}
	code := entity.CodeOf(err)
	metrics.TrackingResultsTotal.WithLabelValues(strings.ToLower(code)).Inc()
	t.log.Warn("shipment tracking failed", "op", op, "reference", reference, "code", code, "err", err)
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > bodySnippet {
		return s[:bodySnippet] + "..."
	}
	return s
}
