package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestLevelFromEnv(t *testing.T) {
	t.Parallel()

	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := LevelFromEnv(in); got != want {
			t.Fatalf("LevelFromEnv(%q) = %v; want %v", in, got, want)
		}
	}
}

func TestNewJSON_TagsServiceAndFiltersLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewJSON(&buf, "shipment-tracker", slog.LevelInfo)
	log.Debug("hidden")
	log.Info("shown", "reference", "1806203236")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected exactly one json record, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "shown" || rec["service"] != "shipment-tracker" || rec["reference"] != "1806203236" {
		t.Fatalf("record = %v", rec)
	}
}
