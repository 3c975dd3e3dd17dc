package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dayanaadylkhanova/shipment-tracker/internal/entity"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func loggerSilent() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServer_TrackShipment(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := NewMockTracker(ctrl)
	tracker.EXPECT().TrackShipment(gomock.Any(), "1806203236").Return(entity.ShipmentSnapshot{
		Sender:          entity.Party{Name: "[SENYB550963155-sender]", Address: entity.Address{City: "Nybro"}},
		Receiver:        entity.Party{Address: entity.Address{City: "Tranås"}},
		PackageDetails:  entity.PackageDetails{PieceCount: 1, Dimensions: []entity.Dimension{}},
		TrackingHistory: []entity.TrackingEvent{{Code: "DLV", Date: "2025-03-19"}},
		PackageTracking: []entity.PackageTracking{},
	}, nil).Times(1)

	srv := NewServer(loggerSilent(), ":0", time.Second, tracker)
	rec := get(t, srv.Handler(), "/api/v1/shipments/1806203236")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get(requestIDHeader))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "[SENYB550963155-sender]", body["sender"].(map[string]any)["name"])
	require.Equal(t, []any{}, body["packageDetails"].(map[string]any)["dimensions"])
	require.Nil(t, body["trackingHistory"].([]any)[0].(map[string]any)["location"])
}

func TestServer_Summary(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := NewMockTracker(ctrl)
	tracker.EXPECT().SearchShipment(gomock.Any(), "1806203236").
		Return(entity.ShipmentSummary{ID: "LandStt:SENYB550963155", PercentageProgress: 100}, nil).Times(1)

	srv := NewServer(loggerSilent(), ":0", time.Second, tracker)
	rec := get(t, srv.Handler(), "/api/v1/shipments/1806203236/summary")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"id":"LandStt:SENYB550963155","stt":"","transportMode":"","percentageProgress":100,
		"lastEventCode":"","fromLocation":"","toLocation":"","startDate":"","endDate":""}`, rec.Body.String())
}

func TestServer_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid_reference", entity.NewError("validate", entity.ErrInvalidReference, nil, "blank"), http.StatusBadRequest, "INVALID_REFERENCE"},
		{"malformed_challenge", entity.NewError("decode", entity.ErrMalformedChallenge, nil, ""), http.StatusTooManyRequests, "MALFORMED_CHALLENGE"},
		{"solver_exhausted", entity.NewError("solve", entity.ErrSolverExhausted, nil, ""), http.StatusTooManyRequests, "SOLVER_EXHAUSTED"},
		{"challenge_required", entity.NewError("resolve", entity.ErrChallengeRequired, nil, ""), http.StatusTooManyRequests, "CHALLENGE_REQUIRED"},
		{"retry_budget", entity.NewError("fetch", entity.ErrRetryBudgetExceeded, nil, ""), http.StatusTooManyRequests, "RETRY_BUDGET_EXCEEDED"},
		{"upstream_server", entity.NewError("fetch", entity.ErrUpstreamServer, nil, "status 500: secret"), http.StatusBadGateway, "UPSTREAM_SERVER_ERROR"},
		{"upstream_protocol", entity.NewError("fetch", entity.ErrUpstreamProtocol, errors.New("dial tcp"), ""), http.StatusBadGateway, "UPSTREAM_PROTOCOL_ERROR"},
		{"cancelled", fmt.Errorf("resolve: %w", context.Canceled), http.StatusInternalServerError, entity.CodeInternal},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, entity.CodeInternal},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tracker := NewMockTracker(ctrl)
			tracker.EXPECT().TrackShipment(gomock.Any(), gomock.Any()).Return(entity.ShipmentSnapshot{}, tc.err).Times(1)

			srv := NewServer(loggerSilent(), ":0", time.Second, tracker)
			rec := get(t, srv.Handler(), "/api/v1/shipments/ref")

			require.Equal(t, tc.wantStatus, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, tc.wantCode, resp.Code)
			require.NotContains(t, resp.Message, "secret")
			require.NotContains(t, resp.Message, "dial tcp")
			if tc.wantStatus == http.StatusInternalServerError {
				require.Equal(t, internalMessage, resp.Message)
			}
		})
	}
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := NewMockTracker(ctrl)
	tracker.EXPECT().SearchShipment(gomock.Any(), gomock.Any()).Return(entity.ShipmentSummary{ID: "x"}, nil)

	srv := NewServer(loggerSilent(), ":0", time.Second, tracker)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/shipments/abc/summary", nil)
	req.Header.Set(requestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, "req-42", rec.Header().Get(requestIDHeader))
}

func TestServer_HealthAndMetrics(t *testing.T) {
	t.Parallel()

	srv := NewServer(loggerSilent(), ":0", time.Second, nil)

	rec := get(t, srv.Handler(), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = get(t, srv.Handler(), "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	srv := NewServer(loggerSilent(), "127.0.0.1:0", 200*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServer_RunListenError(t *testing.T) {
	t.Parallel()

	srv := NewServer(loggerSilent(), "bad-addr", time.Second, nil)
	require.Error(t, srv.Run(context.Background()))
}
