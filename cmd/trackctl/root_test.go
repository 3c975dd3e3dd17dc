package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dayanaadylkhanova/shipment-tracker/internal/entity"
	"github.com/dayanaadylkhanova/shipment-tracker/pkg/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TRACKING_BASE_URL", "TRACKING_MAX_RETRIES", "TRACKING_REQUEST_TIMEOUT", "SOLVER_WORKERS", "LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func run(t *testing.T, tracker Tracker, args ...string) (stdout, stderr string, cfg config.Config, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut, func(_ *slog.Logger, c config.Config) Tracker {
		cfg = c
		return tracker
	})
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), cfg, err
}

func TestTrack_PrintsSnapshot(t *testing.T) {
	clearEnv(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := NewMockTracker(ctrl)
	tracker.EXPECT().TrackShipment(gomock.Any(), "1806203236").Return(entity.ShipmentSnapshot{
		Sender:         entity.Party{Name: "[SENYB550963155-sender]"},
		PackageDetails: entity.PackageDetails{PieceCount: 1, Dimensions: []entity.Dimension{}},
	}, nil).Times(1)

	out, _, _, err := run(t, tracker, "track", "1806203236")
	require.NoError(t, err)

	var got entity.ShipmentSnapshot
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "[SENYB550963155-sender]", got.Sender.Name)
}

func TestSummary_FlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRACKING_MAX_RETRIES", "7")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := NewMockTracker(ctrl)
	tracker.EXPECT().SearchShipment(gomock.Any(), "1806203236").
		Return(entity.ShipmentSummary{ID: "LandStt:SENYB550963155"}, nil).Times(1)

	out, _, cfg, err := run(t, tracker, "summary", "1806203236",
		"--base-url", "http://localhost:1/shipments", "--max-retries", "0", "--timeout", "3s", "--workers", "2")
	require.NoError(t, err)
	require.Contains(t, out, "LandStt:SENYB550963155")

	require.Equal(t, "http://localhost:1/shipments", cfg.BaseURL)
	require.Equal(t, 0, cfg.MaxRetries)
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
	require.Equal(t, 2, cfg.SolverWorkers)
}

func TestSummary_EnvironmentUsedWithoutFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRACKING_MAX_RETRIES", "7")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := NewMockTracker(ctrl)
	tracker.EXPECT().SearchShipment(gomock.Any(), "x").Return(entity.ShipmentSummary{ID: "x"}, nil).Times(1)

	_, _, cfg, err := run(t, tracker, "summary", "x")
	require.NoError(t, err)
	require.Equal(t, 7, cfg.MaxRetries)
	require.Equal(t, config.DefaultBaseURL, cfg.BaseURL)
}

func TestTrack_FailureReportsCode(t *testing.T) {
	clearEnv(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := NewMockTracker(ctrl)
	tracker.EXPECT().TrackShipment(gomock.Any(), "1806203236").
		Return(entity.ShipmentSnapshot{}, entity.NewError("fetch", entity.ErrRetryBudgetExceeded, nil, "")).Times(1)

	out, errOut, _, err := run(t, tracker, "track", "1806203236")
	require.ErrorIs(t, err, entity.ErrRetryBudgetExceeded)
	require.Empty(t, out)

	var f failure
	require.NoError(t, json.Unmarshal([]byte(errOut), &f))
	require.Equal(t, "RETRY_BUDGET_EXCEEDED", f.Code)
}

func TestTrack_RequiresOneReference(t *testing.T) {
	clearEnv(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := NewMockTracker(ctrl)
	tracker.EXPECT().TrackShipment(gomock.Any(), gomock.Any()).Times(0)

	_, _, _, err := run(t, tracker, "track")
	require.Error(t, err)
}
